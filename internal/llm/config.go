package llm

import (
	"fmt"
	"time"
)

// Provider names accepted in BackendConfig.Provider.
const (
	ProviderCerebras   = "cerebras"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
	ProviderOllama     = "ollama"
	ProviderMock       = "mock"
)

// Config holds the LLM facade configuration: two interchangeable backends
// for failover plus shared retry and timeout settings.
type Config struct {
	Primary BackendConfig

	// Secondary is optional. An empty Provider disables failover.
	Secondary BackendConfig

	Retry RetryConfig

	// Timeout bounds one backend call including its retries. Default: 2m.
	Timeout time.Duration
}

// BackendConfig selects and configures one credentialed backend.
type BackendConfig struct {
	// Provider is one of: cerebras, openai, openrouter, anthropic, gemini,
	// ollama, mock.
	Provider string
	APIKey   string
	Model    string
	BaseURL  string // Optional endpoint override.
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Primary: BackendConfig{
			Provider: ProviderCerebras,
			Model:    "qwen-coder",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 2 * time.Minute,
	}
}

// HasSecondary reports whether a failover backend is configured.
func (c Config) HasSecondary() bool {
	return c.Secondary.Provider != ""
}

// Validate checks that each configured backend is usable.
func (c Config) Validate() error {
	if err := c.Primary.Validate(); err != nil {
		return fmt.Errorf("primary: %w", err)
	}
	if c.HasSecondary() {
		if err := c.Secondary.Validate(); err != nil {
			return fmt.Errorf("secondary: %w", err)
		}
	}
	return nil
}

// Validate checks that the backend has a known provider and credentials.
func (b BackendConfig) Validate() error {
	switch b.Provider {
	case ProviderCerebras, ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic, ProviderGemini:
		if b.APIKey == "" {
			return fmt.Errorf("api key is required for the %s provider", b.Provider)
		}
	case ProviderOllama:
		if b.Model == "" {
			return fmt.Errorf("model is required for the ollama provider")
		}
	case ProviderMock:
		// No credentials needed.
	case "":
		return fmt.Errorf("no LLM provider configured")
	default:
		return fmt.Errorf("unknown LLM provider: %q", b.Provider)
	}
	return nil
}
