// Package config loads hbnb settings from defaults, a YAML file, a .env
// file and HBNB_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds server and client settings.
type Config struct {
	Host           string  `yaml:"host"`
	Port           int     `yaml:"port"`
	DevMode        bool    `yaml:"dev"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
	ServerURL      string  `yaml:"server_url"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:           8080,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
		ServerURL:      "http://localhost:8080",
	}
}

// DefaultPath returns the path to the config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hbnb", "config.yaml"), nil
}

// Load builds a Config. An empty path reads the default config file if it
// exists; an explicit path must exist. envFile, when set, is loaded into
// the process environment without overriding variables already set.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	if err := readFile(path, explicit, &cfg); err != nil {
		return Config{}, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading env file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, required bool, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("HBNB_HOST"); ok {
		cfg.Host = v
	}
	if v := os.Getenv("HBNB_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("HBNB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing HBNB_PORT: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("HBNB_DEV"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing HBNB_DEV: %w", err)
		}
		cfg.DevMode = dev
	}
	if v := os.Getenv("HBNB_RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing HBNB_RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = rps
	}
	if v := os.Getenv("HBNB_RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing HBNB_RATE_LIMIT_BURST: %w", err)
		}
		cfg.RateLimitBurst = burst
	}
	return nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit burst must not be negative")
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
