package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the configuration from env-default tags, an optional YAML file
// and the environment, in increasing order of precedence.
//
// CONFIG_PATH names the YAML file. A missing ./config.yaml is not an error;
// a missing file named by CONFIG_PATH is.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(cfg *Config) error {
	path, explicit := os.Getenv("CONFIG_PATH"), true
	if path == "" {
		path, explicit = defaultConfigPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
