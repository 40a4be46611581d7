// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Article is the predicate function for article builders.
type Article func(*sql.Selector)

// Chapter is the predicate function for chapter builders.
type Chapter func(*sql.Selector)

// CourseGeneration is the predicate function for coursegeneration builders.
type CourseGeneration func(*sql.Selector)

// ExternalArticle is the predicate function for externalarticle builders.
type ExternalArticle func(*sql.Selector)

// GenerationLog is the predicate function for generationlog builders.
type GenerationLog func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectFile is the predicate function for projectfile builders.
type ProjectFile func(*sql.Selector)

// Quiz is the predicate function for quiz builders.
type Quiz func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)

// TextResponseQuestion is the predicate function for textresponsequestion builders.
type TextResponseQuestion func(*sql.Selector)

// TextResponseSubmission is the predicate function for textresponsesubmission builders.
type TextResponseSubmission func(*sql.Selector)

// Video is the predicate function for video builders.
type Video func(*sql.Selector)
