package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.ServerURL != "http://localhost:3000" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.DataDir != "." {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("MOVIESHELF_SERVER_URL", "https://api.example.com")
	t.Setenv("MOVIESHELF_DATA_DIR", "/tmp/shelf")

	cfg := &Config{}
	cfg.LoadDefaults()
	applyEnv(cfg)

	if cfg.ServerURL != "https://api.example.com" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.DataDir != "/tmp/shelf" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MOVIESHELF_SERVER_URL", "https://api.example.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	applyEnv(cfg)
	parseFlags(cfg, []string{"-s", "https://flag.example.com"})

	if cfg.ServerURL != "https://flag.example.com" {
		t.Errorf("ServerURL = %q, flags must win", cfg.ServerURL)
	}
}
