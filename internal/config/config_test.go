package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{BaseURL: "http://localhost:8080/v1", TimeoutSeconds: 30}
	cfg.applyDefaults()
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("HF_API_KEY", "hf_test_key")
	t.Setenv("HF_MODEL_NAME", "mistralai/Mistral-7B-Instruct-v0.2")
	t.Setenv("COSTOPT_DATA_DIR", "/tmp/costopt")

	cfg := &Config{Model: "from-file", DataDir: "from-file"}
	cfg.applyEnv()
	assert.Equal(t, "hf_test_key", cfg.APIKey)
	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.2", cfg.Model)
	assert.Equal(t, "/tmp/costopt", cfg.DataDir)
}

func TestUnmarshal_ValidFile(t *testing.T) {
	data := []byte("base_url: http://example.test/v1\nmodel: google/gemma-7b-it\ntimeout_seconds: 90\n")
	var cfg Config
	err := yaml.Unmarshal(data, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/v1", cfg.BaseURL)
	assert.Equal(t, "google/gemma-7b-it", cfg.Model)
	assert.Equal(t, 90, cfg.TimeoutSeconds)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HF_API_KEY")
}

func TestValidate_WithAPIKey(t *testing.T) {
	cfg := &Config{APIKey: "hf_abc"}
	assert.NoError(t, cfg.Validate())
}
