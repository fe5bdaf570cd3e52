package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ClientConfig is the root configuration for the cashboard client.
type ClientConfig struct {
	API    APIConfig    `yaml:"api"`
	Live   LiveConfig   `yaml:"live"`
	Stream StreamConfig `yaml:"stream"`
	Sound  SoundConfig  `yaml:"sound"`
}

// APIConfig holds backend REST API settings.
type APIConfig struct {
	BaseURL    string   `yaml:"base_url"`
	Timeout    Duration `yaml:"timeout"`
	MaxRetries int      `yaml:"max_retries"`
}

// LiveConfig holds game-view refresh settings.
type LiveConfig struct {
	PollInterval  Duration `yaml:"poll_interval"`
	ClockInterval Duration `yaml:"clock_interval"`
	FetchTimeout  Duration `yaml:"fetch_timeout"`
}

// StreamConfig holds the optional push-based snapshot subscription.
// Polling remains the default; the stream is opt-in.
type StreamConfig struct {
	Enabled            bool     `yaml:"enabled"`
	URL                string   `yaml:"url"`
	HandshakeTimeout   Duration `yaml:"handshake_timeout"`
	ReadTimeout        Duration `yaml:"read_timeout"`
	ReconnectBaseDelay Duration `yaml:"reconnect_base_delay"`
	ReconnectMaxDelay  Duration `yaml:"reconnect_max_delay"`
}

// SoundConfig holds the full-hour chime settings.
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Asset   string `yaml:"asset"`  // Path to the chime audio file
	Player  string `yaml:"player"` // External player command; empty = terminal bell
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg ClientConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads config and applies default values.
func LoadWithDefaults(path string) (*ClientConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*ClientConfig, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Default returns a configuration with every default applied, for running
// without a config file.
func Default() *ClientConfig {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	return cfg
}
