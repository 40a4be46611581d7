package cmd

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/abhisek/coursegen/internal/generation"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate a course synchronously and print a summary",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("experience", "e", "", "Learner's prior experience (default: complete beginner)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := buildPipeline(ctx, cfg, st, log)
	if err != nil {
		return err
	}
	defer p.Close()

	experience, _ := cmd.Flags().GetString("experience")
	res, err := p.Orchestrator.StartGeneration(ctx, generation.Request{
		Prompt:          strings.Join(args, " "),
		ExperienceLevel: experience,
	})
	if err != nil {
		var genErr *generation.GenerationError
		if errors.As(err, &genErr) && genErr.CourseGenerationID != 0 {
			fmt.Printf("Generation %d failed. Inspect it with: coursegen show %d --logs\n",
				genErr.CourseGenerationID, genErr.CourseGenerationID)
		}
		return err
	}

	fmt.Printf("Course generation %d completed: %d chapters, %d lessons\n",
		res.CourseGenerationID, res.TotalChapters, res.TotalLessons)
	for _, ch := range res.Chapters {
		status := fmt.Sprintf("%d lessons", ch.LessonsCount)
		if ch.FailedLessons > 0 {
			status += fmt.Sprintf(", %d without content", ch.FailedLessons)
		}
		if ch.Error != "" {
			status = "failed: " + ch.Error
		}
		fmt.Printf("  Chapter %d: %s\n", ch.ChapterNumber, status)
	}
	if res.FinalProject {
		fmt.Println("  Final project: added")
	}
	fmt.Printf("\nView it with: coursegen show %d\n", res.CourseGenerationID)
	return nil
}
