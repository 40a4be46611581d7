package generation

import (
	"errors"
	"fmt"
)

// ErrEmptyPrompt is returned before any row is written when the prompt is
// blank.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

// GenerationError is a fatal failure of a generation run. The run has been
// marked failed when CourseGenerationID is non-zero.
type GenerationError struct {
	CourseGenerationID int
	Step               string
	Err                error
}

func (e *GenerationError) Error() string {
	if e.CourseGenerationID == 0 {
		return fmt.Sprintf("generation failed at %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("generation %d failed at %s: %v", e.CourseGenerationID, e.Step, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
