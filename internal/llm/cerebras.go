package llm

import "fmt"

const defaultCerebrasBaseURL = "https://api.cerebras.ai/v1"

// cerebrasModels maps friendly names to Cerebras model IDs.
var cerebrasModels = map[string]string{
	"qwen-coder":    "qwen-3-coder-480b",
	"qwen-instruct": "qwen-3-235b-a22b-instruct-2507",
	"llama":         "llama-3.3-70b",
}

// NewCerebrasProvider creates a provider for the Cerebras inference API,
// which speaks the OpenAI chat completions protocol.
func NewCerebrasProvider(cfg BackendConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("cerebras API key is required")
	}
	return newOpenAICompatible("cerebras", cfg, defaultCerebrasBaseURL, cerebrasModels), nil
}
