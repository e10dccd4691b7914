package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Size int `yaml:"size" env:"BOARD_SIZE" env-default:"8"`
}

// MustLoad - load all configurations in config.yml file.
// Without the file the config comes from environment variables and defaults.
func MustLoad(path string) *Config {
	load := Load
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		load = func(string) (*Config, error) {
			return LoadFromEnv()
		}
	}

	config, err := load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, environment variables take precedence over it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadFromEnv - builds the config from environment variables and defaults only.
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}
