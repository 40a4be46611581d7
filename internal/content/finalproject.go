package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
	"github.com/abhisek/coursegen/internal/logger"
)

// minFinalProjectFiles is the smallest starter project a capstone gets.
const minFinalProjectFiles = 4

// FinalProjectInput is what the capstone is built from.
type FinalProjectInput struct {
	Prompt     string
	Experience string
	Chapters   []course.ChapterSpec
}

// FinalProject is the capstone chapter, its single lesson and the starter
// project. The Fallback flags report which parts came from templates.
type FinalProject struct {
	Chapter         course.ChapterSpec
	Lesson          course.LessonSpec
	Project         *course.Project
	LessonFallback  bool
	ProjectFallback bool
}

// Synthesizer writes the capstone project after all chapters are done.
type Synthesizer struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewSynthesizer creates a final-project synthesizer.
func NewSynthesizer(provider llm.Provider, cfg Config, log *logger.Logger) *Synthesizer {
	return &Synthesizer{provider: provider, cfg: cfg, log: log}
}

type finalLessonOutput struct {
	Name        llmjson.String `json:"lesson_name"`
	Description llmjson.String `json:"lesson_description"`
	Details     llmjson.String `json:"lesson_details"`
	Goals       llmjson.String `json:"lesson_goals"`
	Guidelines  llmjson.String `json:"lesson_guidelines"`
}

// Synthesize makes two sequential calls: the lesson narrative, then the
// starter project. A call that fails because no backend is available is
// replaced by a template; any other failure is returned.
func (s *Synthesizer) Synthesize(ctx context.Context, in FinalProjectInput) (*FinalProject, error) {
	fp := &FinalProject{Chapter: finalChapter(in.Chapters)}

	lesson, err := s.lesson(ctx, in)
	switch {
	case err == nil:
		fp.Lesson = lesson
	case isUnavailable(err):
		s.log.Warn("final project lesson call failed, using template", "error", err)
		fp.Lesson = fallbackFinalLesson(in.Prompt)
		fp.LessonFallback = true
	default:
		return nil, fmt.Errorf("final project lesson: %w", err)
	}

	project, err := s.project(ctx, in, fp.Lesson)
	switch {
	case err == nil:
		fp.Project = project
	case isUnavailable(err):
		s.log.Warn("final project files call failed, using template", "error", err)
		fp.Project = fallbackFinalProject(fp.Lesson)
		fp.ProjectFallback = true
	default:
		return nil, fmt.Errorf("final project files: %w", err)
	}

	fp.Project.IsFinalProject = true
	fp.Project.Files = padFiles(fp.Project.Files, fallbackFiles(fp.Lesson))
	return fp, nil
}

func (s *Synthesizer) lesson(ctx context.Context, in FinalProjectInput) (course.LessonSpec, error) {
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "final-project-lesson"), llm.Request{
		System:    finalLessonSystemPrompt,
		Messages:  llm.UserMessage(finalProjectMessage(in)),
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return course.LessonSpec{}, err
	}

	var out finalLessonOutput
	if err := llmjson.Decode(resp.Content, llmjson.Object, FinalLessonContract, &out); err != nil {
		return course.LessonSpec{}, err
	}
	return course.LessonSpec{
		Number:      1,
		Type:        course.LessonFinalProject,
		TypeID:      course.LessonFinalProject.ID(),
		Name:        strings.TrimSpace(string(out.Name)),
		Description: strings.TrimSpace(string(out.Description)),
		Details:     strings.TrimSpace(string(out.Details)),
		Goals:       strings.TrimSpace(string(out.Goals)),
		Guidelines:  strings.TrimSpace(string(out.Guidelines)),
	}, nil
}

func (s *Synthesizer) project(ctx context.Context, in FinalProjectInput, lesson course.LessonSpec) (*course.Project, error) {
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "final-project-files"), llm.Request{
		System:    finalProjectSystemPrompt,
		Messages:  llm.UserMessage(finalFilesMessage(in, lesson)),
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var out projectOutput
	if err := llmjson.Decode(resp.Content, llmjson.Object, FinalProjectContract, &out); err != nil {
		return nil, err
	}

	p := &course.Project{
		Name:        lo.Ternary(strings.TrimSpace(out.Name) != "", strings.TrimSpace(out.Name), lesson.Name),
		Description: lo.Ternary(strings.TrimSpace(out.Description) != "", strings.TrimSpace(out.Description), lesson.Description),
		Files:       projectFiles(out.StarterFiles),
	}
	p.GradingMethod, p.ExpectedOutput = grading(out.GradingMethod, out.ExpectedOutput)
	return p, nil
}

func isUnavailable(err error) bool {
	var unavailable *llm.ErrUnavailable
	return errors.As(err, &unavailable)
}

// finalChapter is rated as hard as the hardest planned chapter.
func finalChapter(chapters []course.ChapterSpec) course.ChapterSpec {
	difficulty := 10
	if len(chapters) > 0 {
		difficulty = lo.MaxBy(chapters, func(a, b course.ChapterSpec) bool {
			return a.Difficulty > b.Difficulty
		}).Difficulty
		if difficulty < 1 {
			difficulty = 10
		}
	}
	return course.ChapterSpec{
		Name:        "Final Project",
		Description: "A capstone project that brings together everything covered in the course.",
		Difficulty:  difficulty,
	}
}

// padFiles tops files up from extra until the project has the minimum
// number of files. Existing paths are never replaced.
func padFiles(files, extra []course.ProjectFile) []course.ProjectFile {
	for _, f := range extra {
		if len(files) >= minFinalProjectFiles {
			break
		}
		if lo.ContainsBy(files, func(x course.ProjectFile) bool { return x.Path == f.Path }) {
			continue
		}
		files = append(files, f)
	}
	return files
}
