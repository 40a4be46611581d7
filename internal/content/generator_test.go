package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry(Deps{Provider: llm.NewMockProvider(), Config: DefaultConfig()})

	for _, typ := range []course.LessonType{
		course.LessonVideo, course.LessonArticle, course.LessonSummary, course.LessonExternalArticle,
		course.LessonExercise, course.LessonQuiz, course.LessonTextResponse,
	} {
		_, ok := r.Lookup(typ)
		assert.True(t, ok, typ)
	}
	for _, typ := range []course.LessonType{course.LessonFillInBlank, course.LessonFinalProject, course.LessonUnknown} {
		_, ok := r.Lookup(typ)
		assert.False(t, ok, typ)
	}
	assert.Same(t, r[course.LessonArticle], r[course.LessonSummary])
}

func TestDispatcher_SavesArtifact(t *testing.T) {
	saver := &fakeSaver{}
	quiz := &course.Quiz{Questions: []course.QuizQuestion{{Question: "q"}}}
	d := NewDispatcher(Registry{
		course.LessonQuiz: GeneratorFunc(func(context.Context, course.Lesson) (course.Artifact, error) {
			return quiz, nil
		}),
	}, saver)

	got, err := d.Run(context.Background(), testLesson(course.LessonQuiz))
	require.NoError(t, err)
	assert.Same(t, quiz, got)
	assert.Same(t, quiz, saver.saved[42])
}

func TestDispatcher_NoGenerator(t *testing.T) {
	d := NewDispatcher(Registry{}, &fakeSaver{})
	_, err := d.Run(context.Background(), testLesson(course.LessonFillInBlank))
	assert.ErrorIs(t, err, ErrNoGenerator)
}

func TestDispatcher_NilArtifactNotSaved(t *testing.T) {
	saver := &fakeSaver{}
	d := NewDispatcher(Registry{
		course.LessonExternalArticle: GeneratorFunc(func(context.Context, course.Lesson) (course.Artifact, error) {
			return nil, nil
		}),
	}, saver)

	got, err := d.Run(context.Background(), testLesson(course.LessonExternalArticle))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, saver.saved)
}

func TestDispatcher_WrapsFailures(t *testing.T) {
	tests := []struct {
		name    string
		genErr  error
		saveErr error
	}{
		{name: "generate", genErr: errBoom},
		{name: "save", saveErr: errBoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(Registry{
				course.LessonQuiz: GeneratorFunc(func(context.Context, course.Lesson) (course.Artifact, error) {
					if tt.genErr != nil {
						return nil, tt.genErr
					}
					return &course.Quiz{}, nil
				}),
			}, &fakeSaver{err: tt.saveErr})

			_, err := d.Run(context.Background(), testLesson(course.LessonQuiz))
			var lessonErr *LessonError
			require.True(t, errors.As(err, &lessonErr))
			assert.Equal(t, 42, lessonErr.LessonID)
			assert.Equal(t, 3, lessonErr.LessonNumber)
			assert.Equal(t, course.LessonQuiz, lessonErr.Type)
			assert.ErrorIs(t, err, errBoom)
		})
	}
}
