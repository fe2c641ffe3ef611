// Package config loads the optional tally.yaml configuration with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the configuration file name looked up in the working
// directory.
const ConfigFile = "tally.yaml"

// Config is the top-level tally.yaml configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Import   ImportConfig   `yaml:"import"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ImportConfig describes where transaction fields live in a bank export,
// as column indices into each row.
type ImportConfig struct {
	DateColumn        int    `yaml:"date_column"`
	DescriptionColumn int    `yaml:"description_column"`
	AmountColumn      int    `yaml:"amount_column"`
	StatusColumn      int    `yaml:"status_column"`
	DateFormat        string `yaml:"date_format"`
}

// Default returns the configuration used when no tally.yaml exists.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "local.db",
		},
		Import: ImportConfig{
			DateColumn:        0,
			DescriptionColumn: 2,
			AmountColumn:      4,
			StatusColumn:      5,
			DateFormat:        "2006-01-02",
		},
	}
}

// Load reads tally.yaml from dir if present, layered over defaults. A
// .env file in dir is honored, and DATABASE_PATH overrides the database
// location from either source.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env")) // .env is optional

	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.Database.Path = path
	}
	return cfg, nil
}
