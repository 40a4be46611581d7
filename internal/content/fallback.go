package content

import (
	"fmt"

	"github.com/abhisek/coursegen/internal/course"
)

func fallbackFinalLesson(prompt string) course.LessonSpec {
	return course.LessonSpec{
		Number:      1,
		Type:        course.LessonFinalProject,
		TypeID:      course.LessonFinalProject.ID(),
		Name:        "Final Project",
		Description: fmt.Sprintf("Build a complete project that applies what you learned about: %s", prompt),
		Details: "Plan a small but complete program, split it into modules, implement it step by step " +
			"and test each part as you go.",
		Goals: "Combine the concepts from every chapter in one working program. " +
			"Practice structuring code across several files.",
		Guidelines: "Start from the starter files. Read README.md first, fill in the TODOs in order " +
			"and run the program after each step.",
	}
}

func fallbackFinalProject(lesson course.LessonSpec) *course.Project {
	return &course.Project{
		Name:          lesson.Name,
		Description:   lesson.Description,
		GradingMethod: course.GradingAIReview,
		Files:         fallbackFiles(lesson),
	}
}

func fallbackFiles(lesson course.LessonSpec) []course.ProjectFile {
	return []course.ProjectFile{
		{Path: "README.md", Content: fmt.Sprintf("# %s\n\n%s\n\n## Steps\n\n%s\n", lesson.Name, lesson.Description, lesson.Guidelines)},
		{Path: "main.py", Content: "from app import run\n\n\nif __name__ == \"__main__\":\n    run()\n"},
		{Path: "app.py", Content: "from helpers import greet\n\n\ndef run():\n    # TODO: build the project here\n    print(greet(\"world\"))\n"},
		{Path: "helpers.py", Content: "def greet(name):\n    return f\"Hello, {name}!\"\n"},
	}
}
