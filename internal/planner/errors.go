package planner

import "fmt"

// ChapterPlanningError means no usable chapter plan was produced. It is
// fatal to the generation run.
type ChapterPlanningError struct {
	Err error
}

func (e *ChapterPlanningError) Error() string {
	return fmt.Sprintf("chapter planning failed: %v", e.Err)
}

func (e *ChapterPlanningError) Unwrap() error { return e.Err }

// LessonPlanningError means no usable lesson plan was produced for one
// chapter. It is fatal to that chapter only.
type LessonPlanningError struct {
	ChapterNumber int
	Err           error
}

func (e *LessonPlanningError) Error() string {
	return fmt.Sprintf("lesson planning failed for chapter %d: %v", e.ChapterNumber, e.Err)
}

func (e *LessonPlanningError) Unwrap() error { return e.Err }
