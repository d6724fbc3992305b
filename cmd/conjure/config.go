package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type demoConfig struct {
	LogLevel  string
	Instances int
	Greet     []string
	Seed      []float64
}

type fileConfig struct {
	LogLevel  string    `toml:"log_level"`
	Instances int       `toml:"instances"`
	Greet     []string  `toml:"greet"`
	Seed      []float64 `toml:"seed"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		LogLevel:  "info",
		Instances: 3,
		Greet:     []string{"world"},
		Seed:      []float64{1, 2, 3},
	}
}

// loadConfig overlays the TOML file at path onto the defaults. An empty path
// keeps the defaults.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return demoConfig{}, fmt.Errorf("load demo config: %w", err)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = raw.LogLevel
	}
	if meta.IsDefined("instances") {
		cfg.Instances = raw.Instances
	}
	if meta.IsDefined("greet") {
		cfg.Greet = raw.Greet
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if cfg.Instances < 1 {
		return demoConfig{}, fmt.Errorf("load demo config: instances must be >= 1, got %d", cfg.Instances)
	}
	return cfg, nil
}
