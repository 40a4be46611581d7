package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/store"
)

// NewProvider creates the LLM facade from configuration: each backend is
// wrapped with logging and retry, and the pair is joined by failover.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	primary, err := newBackend(ctx, cfg.Primary, cfg.Retry, eventRepo)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}

	var secondary Provider
	if cfg.HasSecondary() {
		secondary, err = newBackend(ctx, cfg.Secondary, cfg.Retry, eventRepo)
		if err != nil {
			return nil, fmt.Errorf("secondary: %w", err)
		}
	}

	return NewFailover(primary, secondary, cfg.Timeout, log), nil
}

func newBackend(ctx context.Context, b BackendConfig, retry RetryConfig, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch b.Provider {
	case ProviderCerebras:
		base, err = NewCerebrasProvider(b)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(b)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(b)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(b)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, b)
	case ProviderOllama:
		base, err = NewOllamaProvider(b)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", b.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", b.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, b.Provider, eventRepo)
	return WithRetry(logged, retry), nil
}
