package content

// Config controls the content generators.
type Config struct {
	// Model overrides the backend's configured model when non-empty.
	Model string

	// MaxTokens is the token budget for each LLM response.
	MaxTokens int

	// Temperature and TopP are the sampling parameters of the article and
	// query calls. Zero leaves the backend default.
	Temperature float64
	TopP        float64

	// TopK is the number of corpus snippets retrieved per article.
	TopK int

	// MinWebScore is the relevance a web result needs to become an
	// external-article lesson.
	MinWebScore float64
}

// DefaultConfig returns the defaults used by the generation pipeline.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   20000,
		Temperature: 0.7,
		TopP:        0.8,
		TopK:        3,
		MinWebScore: 0.5,
	}
}
