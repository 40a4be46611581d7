package grading

// Config holds grading settings.
type Config struct {
	// PassThreshold is the fraction of the maximum score that marks the
	// lesson complete.
	PassThreshold float64

	// FallbackScore is given to every answer when free-text grading fails.
	FallbackScore int

	// Model overrides the backend's configured model when non-empty.
	Model     string
	MaxTokens int
}

// DefaultConfig returns the defaults used by the service.
func DefaultConfig() Config {
	return Config{
		PassThreshold: 0.7,
		FallbackScore: 50,
		MaxTokens:     4096,
	}
}
