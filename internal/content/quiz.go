package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
)

// QuizGenerator writes multiple-choice quizzes.
type QuizGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewQuizGenerator creates a quiz generator.
func NewQuizGenerator(provider llm.Provider, cfg Config) *QuizGenerator {
	return &QuizGenerator{provider: provider, cfg: cfg}
}

type quizOutput struct {
	Questions []struct {
		Question      string            `json:"question"`
		Options       map[string]string `json:"options"`
		CorrectAnswer string            `json:"correct_answer"`
		Explanation   llmjson.String    `json:"explanation"`
	} `json:"questions"`
}

func (g *QuizGenerator) Generate(ctx context.Context, lesson course.Lesson) (course.Artifact, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    quizSystemPrompt,
		Messages:  llm.UserMessage(lessonContext(lesson, false)),
		Model:     g.cfg.Model,
		MaxTokens: g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var out quizOutput
	if err := llmjson.Decode(resp.Content, llmjson.Object, QuizContract, &out); err != nil {
		return nil, err
	}

	quiz := &course.Quiz{Questions: make([]course.QuizQuestion, 0, len(out.Questions))}
	for _, q := range out.Questions {
		options := make(map[string]string, 4)
		for _, key := range []string{"A", "B", "C", "D"} {
			options[key] = q.Options[key]
		}
		quiz.Questions = append(quiz.Questions, course.QuizQuestion{
			Question:      strings.TrimSpace(q.Question),
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   strings.TrimSpace(string(q.Explanation)),
		})
	}
	return quiz, nil
}
