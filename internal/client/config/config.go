// Package config holds runtime settings for the Movieshelf CLI.
package config

import (
	"flag"
	"os"
)

// Config holds runtime settings for the client shell.
//
// Fields:
//   - ServerURL: base URL of the Movieshelf API.
//   - DataDir: directory for the local sqlite database (session + favorites).
type Config struct {
	ServerURL string
	DataDir   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.DataDir = "."
}

// Load constructs a Config, applies defaults, then overlays environment
// variables and command-line flags. Later sources take precedence.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	applyEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MOVIESHELF_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("MOVIESHELF_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
}

func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("movieshelf", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "base URL of the Movieshelf API")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for local client data")
	_ = fs.Parse(args)
}
