package generation

import "time"

// DefaultExperience is assumed when a request names no experience level.
const DefaultExperience = "I know nothing, I don't even know how to run code or anything."

// Config holds orchestration settings.
type Config struct {
	// MaxWorkers bounds how many chapters are generated at once.
	MaxWorkers int

	// ChapterTimeout is the wall-clock budget of one chapter worker,
	// lesson planning and content included. Zero disables it.
	ChapterTimeout time.Duration
}

// DefaultConfig returns the defaults used by the pipeline.
func DefaultConfig() Config {
	return Config{
		MaxWorkers:     4,
		ChapterTimeout: 10 * time.Minute,
	}
}
