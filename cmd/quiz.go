package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/grading"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/ui/theme"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take multiple-choice quizzes of generated courses",
}

var quizShowCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Print the quiz of a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid lesson ID %q: %w", args[0], err)
		}
		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lc, err := st.Artifacts().LessonContent(cmd.Context(), lessonID)
		if err != nil {
			return fmt.Errorf("get lesson: %w", err)
		}
		if lc.Quiz == nil {
			return fmt.Errorf("lesson %d has no quiz", lessonID)
		}
		fmt.Print(renderQuiz(lc.Quiz))
		return nil
	},
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit <quiz-id> <answer>...",
	Short: "Grade answers (A-D, one per question in order) for a quiz",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quizID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid quiz ID %q: %w", args[0], err)
		}
		cfg, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		answers := make(map[int]string, len(args)-1)
		for i, a := range args[1:] {
			answers[i] = grading.NormalizeAnswer(a)
		}

		gradeCfg := grading.DefaultConfig()
		gradeCfg.PassThreshold = cfg.Grading.PassThreshold
		// SubmitQuiz never touches the text grader.
		svc := grading.NewService(st.Artifacts(), st.Submissions(), st.Generations(), nil, gradeCfg, logger.Nop())
		res, err := svc.SubmitQuiz(cmd.Context(), quizID, answers)
		if err != nil {
			return err
		}
		fmt.Print(renderQuizResult(res))
		return nil
	},
}

func init() {
	quizCmd.AddCommand(quizShowCmd)
	quizCmd.AddCommand(quizSubmitCmd)
}

func renderQuiz(q *course.Quiz) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Quiz %d", q.ID)) + "\n\n")
	for i, question := range q.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, question.Question)
		for _, key := range []string{"A", "B", "C", "D"} {
			fmt.Fprintf(&b, "   %s) %s\n", key, question.Options[key])
		}
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Answer with: coursegen quiz submit %d A B C ...", q.ID)) + "\n")
	return b.String()
}

func renderQuizResult(res *grading.QuizResult) string {
	var b strings.Builder
	for _, r := range res.Attempt.Results {
		mark := theme.Done.Render("✓")
		if !r.IsCorrect {
			mark = theme.Failed.Render("✗")
		}
		answer := r.UserAnswer
		if answer == "" {
			answer = "-"
		}
		fmt.Fprintf(&b, "%s %d. %s  (you: %s, correct: %s)\n", mark, r.QuestionIndex+1, r.Question, answer, r.CorrectAnswer)
		if r.Explanation != "" {
			b.WriteString("   " + theme.Hint.Render(r.Explanation) + "\n")
		}
	}
	summary := fmt.Sprintf("Score: %d/%d (%d%%)", res.Attempt.Score, res.Attempt.Total, res.Percentage)
	if res.Passed {
		summary += " · passed"
		if res.LessonCompleted {
			summary += ", lesson complete"
		}
		b.WriteString("\n" + theme.Done.Render(summary) + "\n")
	} else {
		b.WriteString("\n" + theme.Failed.Render(summary+" · not passed") + "\n")
	}
	return b.String()
}
