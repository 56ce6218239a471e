// Package config resolves animalgen settings from defaults, an optional YAML
// file, a .env file, and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAPIKey  = "API_KEY"
	EnvBaseURL = "ANIMALGEN_BASE_URL"
	EnvOutput  = "ANIMALGEN_OUTPUT"
)

// Config holds all animalgen configuration.
type Config struct {
	DataPath     string `yaml:"data"`
	TemplatePath string `yaml:"template"`
	OutputPath   string `yaml:"output"`

	Lookup  LookupConfig  `yaml:"lookup"`
	Logging LoggingConfig `yaml:"logging"`
}

// LookupConfig configures the remote animals API.
type LookupConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
	// APIKey only comes from the environment or the .env file.
	APIKey string `yaml:"-"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataPath:     "animals_data.json",
		TemplatePath: "animals_template.html",
		OutputPath:   "animals.html",
		Lookup: LookupConfig{
			BaseURL: "https://api.api-ninjas.com/v1/animals",
			Timeout: "20s",
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// Options selects the files Load reads. Empty paths are skipped.
type Options struct {
	File    string
	EnvFile string
}

// Load resolves configuration. A missing YAML file or .env file is not an
// error; real environment variables win over values from the .env file.
func Load(opts Options) (*Config, error) {
	cfg := DefaultConfig()

	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", opts.File, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", opts.File, err)
			}
		}
	}

	dotenv := map[string]string{}
	if opts.EnvFile != "" {
		values, err := godotenv.Read(opts.EnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", opts.EnvFile, err)
		}
		if err == nil {
			dotenv = values
		}
	}

	cfg.applyEnvOverrides(func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return dotenv[key]
	})

	return cfg, nil
}

func (c *Config) applyEnvOverrides(getenv func(string) string) {
	if key := strings.TrimSpace(getenv(EnvAPIKey)); key != "" {
		c.Lookup.APIKey = key
	}
	if url := strings.TrimSpace(getenv(EnvBaseURL)); url != "" {
		c.Lookup.BaseURL = url
	}
	if out := strings.TrimSpace(getenv(EnvOutput)); out != "" {
		c.OutputPath = out
	}
}

// LookupTimeout returns the request timeout, falling back to 20s when unset or
// invalid.
func (c *Config) LookupTimeout() time.Duration {
	d, err := time.ParseDuration(c.Lookup.Timeout)
	if err != nil || d <= 0 {
		return 20 * time.Second
	}
	return d
}

// Validate reports settings that can never work.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TemplatePath) == "" {
		return errors.New("config: template path is required")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if c.Lookup.Timeout != "" {
		if _, err := time.ParseDuration(c.Lookup.Timeout); err != nil {
			return fmt.Errorf("config: invalid lookup timeout %q: %w", c.Lookup.Timeout, err)
		}
	}
	return nil
}
