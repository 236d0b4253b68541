package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ROSTERSHOP_"

// Config is the full server configuration
type Config struct {
	Server  Server  `koanf:"server"`
	Storage Storage `koanf:"storage"`
	Redis   Redis   `koanf:"redis"`
	Account Account `koanf:"account"`
	Log     Log     `koanf:"log"`
}

// Server holds HTTP listener settings
type Server struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// Storage selects the storage backend
type Storage struct {
	// Type is "memory" or "redis"
	Type string `koanf:"type"`
}

// Redis holds Redis connection settings
type Redis struct {
	URL string `koanf:"url"`
}

// Account holds account service settings
type Account struct {
	// Balance is the initial balance credited on registration
	Balance float64 `koanf:"balance"`
}

// Log holds logging settings
type Log struct {
	Level string `koanf:"level"`
}

// Default returns the configuration used when no file or environment
// overrides are present
func Default() Config {
	return Config{
		Server: Server{
			Host: "",
			Port: 8080,
		},
		Storage: Storage{
			Type: "memory",
		},
		Redis: Redis{
			URL: "redis://localhost:6379",
		},
		Account: Account{
			Balance: 0,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file and ROSTERSHOP_*
// environment variables, on top of the defaults. Environment variables win
// over the file: ROSTERSHOP_SERVER_PORT overrides server.port.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			if !strings.HasPrefix(key, envPrefix) {
				return "", nil
			}
			key = strings.TrimPrefix(key, envPrefix)
			return strings.ReplaceAll(strings.ToLower(key), "_", "."), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
