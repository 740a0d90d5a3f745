// Package config loads Decision Critic configuration from environment
// variables, with an optional YAML file overlay for defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server"`
	OpenAI   OpenAIConfig   `json:"openai" yaml:"openai"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	ReadTimeout  int    `json:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	WriteTimeout int    `json:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

// OpenAIConfig represents the external-model collaborator configuration.
// The credential is injected here at load time and queried per analysis;
// there is no process-global flag.
type OpenAIConfig struct {
	APIKey         string `json:"-" yaml:"-"` // Never serialize API key
	BaseURL        string `json:"base_url" yaml:"base_url"`
	Model          string `json:"model" yaml:"model"`
	MaxTokens      int    `json:"max_tokens" yaml:"max_tokens"`
	RequestTimeout int    `json:"request_timeout_seconds" yaml:"request_timeout_seconds"`
}

// Enabled reports whether external-call mode is available. Absence of the
// credential disables it regardless of what the caller requests.
func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

// AnalysisConfig represents analysis pipeline defaults.
type AnalysisConfig struct {
	DefaultIntensity int  `json:"default_intensity" yaml:"default_intensity"`
	UseModel         bool `json:"use_model" yaml:"use_model"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "localhost",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
		},
		OpenAI: OpenAIConfig{
			BaseURL:        "https://api.openai.com/v1/chat/completions",
			Model:          "gpt-4o",
			MaxTokens:      1024,
			RequestTimeout: 30,
		},
		Analysis: AnalysisConfig{
			DefaultIntensity: 3,
			UseModel:         false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig loads configuration from environment variables and defaults.
// A .env file is honored when present but is never required.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	loadServerConfig(cfg)
	loadOpenAIConfig(cfg)
	loadAnalysisConfig(cfg)
	loadLoggingConfig(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile loads configuration from a YAML file layered over the
// defaults, then applies environment variables on top.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	loadServerConfig(cfg)
	loadOpenAIConfig(cfg)
	loadAnalysisConfig(cfg)
	loadLoggingConfig(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadServerConfig(cfg *Config) {
	if host := os.Getenv("DECISION_CRITIC_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("DECISION_CRITIC_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if readTimeout := os.Getenv("DECISION_CRITIC_READ_TIMEOUT_SECONDS"); readTimeout != "" {
		if t, err := strconv.Atoi(readTimeout); err == nil {
			cfg.Server.ReadTimeout = t
		}
	}
	if writeTimeout := os.Getenv("DECISION_CRITIC_WRITE_TIMEOUT_SECONDS"); writeTimeout != "" {
		if t, err := strconv.Atoi(writeTimeout); err == nil {
			cfg.Server.WriteTimeout = t
		}
	}
}

func loadOpenAIConfig(cfg *Config) {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.OpenAI.BaseURL = baseURL
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.OpenAI.Model = model
	}
	if maxTokens := os.Getenv("OPENAI_MAX_TOKENS"); maxTokens != "" {
		if n, err := strconv.Atoi(maxTokens); err == nil {
			cfg.OpenAI.MaxTokens = n
		}
	}
	if timeout := os.Getenv("OPENAI_REQUEST_TIMEOUT_SECONDS"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			cfg.OpenAI.RequestTimeout = t
		}
	}
}

func loadAnalysisConfig(cfg *Config) {
	if intensity := os.Getenv("DECISION_CRITIC_DEFAULT_INTENSITY"); intensity != "" {
		if n, err := strconv.Atoi(intensity); err == nil {
			cfg.Analysis.DefaultIntensity = n
		}
	}
	if useModel := os.Getenv("DECISION_CRITIC_USE_MODEL"); useModel != "" {
		if b, err := strconv.ParseBool(useModel); err == nil {
			cfg.Analysis.UseModel = b
		}
	}
}

func loadLoggingConfig(cfg *Config) {
	if level := os.Getenv("DECISION_CRITIC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("DECISION_CRITIC_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Analysis.DefaultIntensity < 1 || c.Analysis.DefaultIntensity > 5 {
		return fmt.Errorf("default intensity must be between 1 and 5, got %d", c.Analysis.DefaultIntensity)
	}
	if c.OpenAI.MaxTokens < 1 {
		return fmt.Errorf("openai max tokens must be positive, got %d", c.OpenAI.MaxTokens)
	}
	return nil
}
