// Package main is the entrypoint for the Movieshelf client shell.
package main

import (
	"context"
	"log"

	"github.com/movieshelf/movieshelf/internal/client/cli"
	"github.com/movieshelf/movieshelf/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
