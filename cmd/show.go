package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/ui/theme"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a generated course as a tree (lists recent courses without an id)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("logs", false, "Also print the generation's audit log")
	showCmd.Flags().IntP("limit", "n", 20, "Number of courses to list")
}

func runShow(cmd *cobra.Command, args []string) error {
	_, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	ctx := cmd.Context()

	if len(args) == 0 {
		limit, _ := cmd.Flags().GetInt("limit")
		gens, err := st.Generations().List(ctx, limit)
		if err != nil {
			return fmt.Errorf("list generations: %w", err)
		}
		fmt.Print(renderGenerationList(gens))
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ID %q: %w", args[0], err)
	}
	gen, err := st.Generations().Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get generation: %w", err)
	}
	fmt.Print(renderCourse(gen))

	if withLogs, _ := cmd.Flags().GetBool("logs"); withLogs {
		entries, err := st.Logs().List(ctx, id)
		if err != nil {
			return fmt.Errorf("list logs: %w", err)
		}
		fmt.Print(renderLogs(entries))
	}
	return nil
}

func renderGenerationList(gens []course.Generation) string {
	if len(gens) == 0 {
		return "No courses generated yet.\n"
	}
	var b strings.Builder
	for _, g := range gens {
		fmt.Fprintf(&b, "%-5d  %-19s  %-10s  %3d ch  %3d lessons  %s\n",
			g.ID,
			g.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			theme.StatusStyle(g.Status).Render(string(g.Status)),
			g.TotalChapters,
			g.TotalLessons,
			truncate(g.Prompt, 48),
		)
	}
	return b.String()
}

// renderCourse draws the chapter and lesson tree of a generation.
func renderCourse(g *course.Generation) string {
	var b strings.Builder

	header := theme.Title.Render(fmt.Sprintf("Course %d", g.ID)) + "  " +
		theme.StatusStyle(g.Status).Render(string(g.Status)) + "\n" +
		theme.Body.Render(g.Prompt) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("%d chapters · %d lessons · %s",
			g.TotalChapters, g.TotalLessons, g.ExperienceLevel))
	b.WriteString(theme.Card.Render(header))
	b.WriteString("\n")

	for i, ch := range g.Chapters {
		lastChapter := i == len(g.Chapters)-1
		branch, indent := "├── ", "│   "
		if lastChapter {
			branch, indent = "└── ", "    "
		}
		title := fmt.Sprintf("Chapter %d: %s", ch.Number, ch.Name)
		if ch.Difficulty != course.DifficultyUnset {
			title += fmt.Sprintf(" (%d/10)", ch.Difficulty)
		}
		b.WriteString(theme.Branch.Render(branch) + theme.Chapter.Render(title) + "\n")

		for j, l := range ch.Lessons {
			leaf := "├── "
			if j == len(ch.Lessons)-1 {
				leaf = "└── "
			}
			line := fmt.Sprintf("%d. %s", l.Number, l.Name)
			if l.Complete {
				line += " " + theme.Done.Render("✓")
			}
			b.WriteString(theme.Branch.Render(indent+leaf) + theme.LessonTag(l.Type) + " " +
				theme.Body.Render(line) + theme.Hint.Render(fmt.Sprintf("  #%d", l.ID)) + "\n")
		}
	}
	return b.String()
}

func renderLogs(entries []course.LogEntry) string {
	var b strings.Builder
	b.WriteString("\n" + theme.Title.Render("Audit log") + "\n")
	for _, e := range entries {
		style := theme.Body
		switch e.Level {
		case course.LevelError:
			style = theme.Failed
		case course.LevelWarning:
			style = theme.Pending
		case course.LevelDebug:
			style = theme.Hint
		}
		fmt.Fprintf(&b, "%s  %-36s  %-11s  %s\n",
			e.CreatedAt.Local().Format("15:04:05"),
			e.Step,
			e.Status,
			style.Render(e.Message),
		)
	}
	return b.String()
}
