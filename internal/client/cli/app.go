// Package cli is the interactive shell for the Movieshelf API.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/movieshelf/movieshelf/internal/client/api"
	"github.com/movieshelf/movieshelf/internal/client/config"
	"github.com/movieshelf/movieshelf/internal/client/storage"
)

// App holds the shell's dependencies and session state.
type App struct {
	config  *config.Config
	api     *api.Client
	store   *storage.Storage
	login   string
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the shell: local sqlite store plus API client.
// A token saved by a previous session is restored, so the user
// stays logged in across invocations.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := storage.Open(ctx, cfg.DataDir)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.ServerURL)
	if token, err := store.Token(ctx); err == nil && token != "" {
		client.SetToken(token)
	}

	return &App{
		config: cfg,
		api:    client,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.store.Close()
}
