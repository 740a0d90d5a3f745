package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Analysis.DefaultIntensity)
	assert.False(t, cfg.OpenAI.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DECISION_CRITIC_HOST", "0.0.0.0")
	t.Setenv("DECISION_CRITIC_PORT", "9090")
	t.Setenv("DECISION_CRITIC_DEFAULT_INTENSITY", "5")
	t.Setenv("DECISION_CRITIC_USE_MODEL", "true")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("DECISION_CRITIC_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Analysis.DefaultIntensity)
	assert.True(t, cfg.Analysis.UseModel)
	assert.True(t, cfg.OpenAI.Enabled())
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_InvalidNumbersKeepDefaults(t *testing.T) {
	t.Setenv("DECISION_CRITIC_PORT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  host: api.internal
  port: 7070
analysis:
  default_intensity: 4
openai:
  model: gpt-4-turbo
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "api.internal", cfg.Server.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Analysis.DefaultIntensity)
	assert.Equal(t, "gpt-4-turbo", cfg.OpenAI.Model)
	// Defaults survive where the file is silent.
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
}

func TestLoadConfigFile_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600))

	t.Setenv("DECISION_CRITIC_PORT", "6060")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"intensity out of range", func(c *Config) { c.Analysis.DefaultIntensity = 9 }, true},
		{"zero max tokens", func(c *Config) { c.OpenAI.MaxTokens = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
