package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
)

// maxTextQuestions caps the open questions kept per lesson.
const maxTextQuestions = 5

// TextResponseGenerator writes open questions with reference answers.
type TextResponseGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewTextResponseGenerator creates a text-response generator.
func NewTextResponseGenerator(provider llm.Provider, cfg Config) *TextResponseGenerator {
	return &TextResponseGenerator{provider: provider, cfg: cfg}
}

type textResponseOutput struct {
	Questions []struct {
		Question        llmjson.String `json:"question"`
		ReferenceAnswer llmjson.String `json:"reference_answer"`
	} `json:"questions"`
}

func (g *TextResponseGenerator) Generate(ctx context.Context, lesson course.Lesson) (course.Artifact, error) {
	ctx = llm.WithPurpose(ctx, "text-response")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    textResponseSystemPrompt,
		Messages:  llm.UserMessage(lessonContext(lesson, true)),
		Model:     g.cfg.Model,
		MaxTokens: g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate text questions: %w", err)
	}

	var out textResponseOutput
	if err := llmjson.Decode(resp.Content, llmjson.Object, TextResponseContract, &out); err != nil {
		return nil, err
	}

	set := &course.TextQuestionSet{}
	for _, q := range out.Questions {
		if len(set.Questions) == maxTextQuestions {
			break
		}
		set.Questions = append(set.Questions, course.TextQuestion{
			Number:          len(set.Questions) + 1,
			Question:        strings.TrimSpace(string(q.Question)),
			ReferenceAnswer: strings.TrimSpace(string(q.ReferenceAnswer)),
		})
	}
	return set, nil
}
