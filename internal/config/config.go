package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the completion backend. The Hugging Face router is the
// stock backend; any OpenAI-compatible chat completions endpoint works.
const (
	DefaultBaseURL        = "https://router.huggingface.co/v1"
	DefaultModel          = "meta-llama/Llama-3.1-8B-Instruct"
	DefaultDataDir        = "data"
	DefaultTimeoutSeconds = 60
)

// Config holds backend and storage settings loaded from
// ~/.config/costopt/config.yaml with environment overrides.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	APIKey         string `yaml:"api_key"`
	DataDir        string `yaml:"data_dir"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Load reads the config file, applies environment overrides, then fills
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	cfg := &Config{}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "costopt", "config.yaml")
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("HF_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("HF_MODEL_NAME"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("HF_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("COSTOPT_DATA_DIR"); v != "" {
		c.DataDir = v
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// Validate checks settings required to reach the completion backend.
// A missing API key is fatal for any command that calls the backend.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("HF_API_KEY not set: add it to your environment or api_key to ~/.config/costopt/config.yaml")
	}
	return nil
}

// Timeout returns the per-call HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
