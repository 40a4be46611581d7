package content

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
)

// ExerciseGenerator writes programming exercises with starter files.
type ExerciseGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewExerciseGenerator creates an exercise generator.
func NewExerciseGenerator(provider llm.Provider, cfg Config) *ExerciseGenerator {
	return &ExerciseGenerator{provider: provider, cfg: cfg}
}

type projectOutput struct {
	Name           string            `json:"project_name"`
	Description    string            `json:"description"`
	StarterFiles   map[string]string `json:"starter_files"`
	GradingMethod  string            `json:"grading_method"`
	ExpectedOutput string            `json:"expected_output"`
}

func (g *ExerciseGenerator) Generate(ctx context.Context, lesson course.Lesson) (course.Artifact, error) {
	ctx = llm.WithPurpose(ctx, "exercise")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    exerciseSystemPrompt,
		Messages:  llm.UserMessage(lessonContext(lesson, true)),
		Model:     g.cfg.Model,
		MaxTokens: g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate exercise: %w", err)
	}

	var out projectOutput
	if err := llmjson.Decode(resp.Content, llmjson.Object, ExerciseContract, &out); err != nil {
		return nil, err
	}

	p := &course.Project{
		Name:        "Exercise for " + lesson.Name,
		Description: "Programming exercise: " + lesson.Description,
		Files:       projectFiles(out.StarterFiles),
	}
	p.GradingMethod, p.ExpectedOutput = grading(out.GradingMethod, out.ExpectedOutput)
	return p, nil
}

// grading defaults to AI review. Expected output is only kept for
// terminal matching.
func grading(method, expected string) (course.GradingMethod, string) {
	if course.GradingMethod(method) == course.GradingTerminalMatching {
		return course.GradingTerminalMatching, expected
	}
	return course.GradingAIReview, ""
}

// projectFiles converts a filename map into files sorted by path.
func projectFiles(files map[string]string) []course.ProjectFile {
	out := make([]course.ProjectFile, 0, len(files))
	for path, content := range files {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		out = append(out, course.ProjectFile{Path: path, Content: content})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
