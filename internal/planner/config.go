package planner

// Config holds planning settings.
type Config struct {
	MaxChapters int
	MinLessons  int
	MaxLessons  int

	// Model overrides the backend's configured model when non-empty.
	Model       string
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the defaults used by the generation pipeline.
func DefaultConfig() Config {
	return Config{
		MaxChapters: 5,
		MinLessons:  5,
		MaxLessons:  8,
		MaxTokens:   20000,
	}
}
