package config

import (
	"fmt"
	"os"

	"github.com/oarkflow/errors"
	"github.com/oarkflow/log"
	"gopkg.in/yaml.v3"
)

type CacheConfig struct {
	Enabled bool  `yaml:"enabled" json:"enabled"`
	MaxCost int64 `yaml:"max_cost,omitempty" json:"max_cost,omitempty"`
}

type ServerConfig struct {
	Address string `yaml:"address" json:"address"`
}

type Config struct {
	Prelude     bool         `yaml:"prelude" json:"prelude"`
	Definitions []string     `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	MaxSteps    uint64       `yaml:"max_steps" json:"max_steps"`
	LogLevel    string       `yaml:"log_level" json:"log_level"`
	Output      string       `yaml:"output" json:"output"`
	Cache       CacheConfig  `yaml:"cache" json:"cache"`
	Server      ServerConfig `yaml:"server" json:"server"`
}

const (
	OutputText = "text"
	OutputJSON = "json"
)

func Default() *Config {
	return &Config{
		Prelude:  true,
		LogLevel: "info",
		Output:   OutputText,
		Cache:    CacheConfig{MaxCost: 1 << 24},
		Server:   ServerConfig{Address: ":8080"},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return errors.New("Config: output must be text or json")
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return errors.New("Config: unknown log level")
	}
	if c.Cache.Enabled && c.Cache.MaxCost <= 0 {
		return errors.New("Config: cache max_cost must be positive")
	}
	if c.Server.Address == "" {
		return errors.New("Config: server address must be provided")
	}
	return nil
}

// Logger builds a logger at the configured level writing to stderr.
func (c *Config) Logger() *log.Logger {
	return &log.Logger{
		Level:  log.ParseLevel(c.LogLevel),
		Writer: &log.IOWriter{Writer: os.Stderr},
	}
}
