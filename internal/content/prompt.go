package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/search"
)

const quizSystemPrompt = `You are an assessment designer writing a multiple-choice quiz for one lesson of a programming course.

Write 5 to 10 questions that test the key ideas of the lesson. Each question has:
- a clear, short question
- exactly four options keyed "A", "B", "C" and "D"
- the key of the correct option
- a one or two sentence explanation of why it is correct

Make the questions progressively harder and cover different parts of the lesson.

Respond with ONLY a JSON object of this shape:
{"questions": [{"question": "...", "options": {"A": "...", "B": "...", "C": "...", "D": "..."}, "correct_answer": "B", "explanation": "..."}]}`

const exerciseSystemPrompt = `You are a programming instructor designing a hands-on exercise for one lesson of a course.

Provide minimal but runnable starter code the learner builds on, as a map of filename to file content.
Choose a grading method:
- "terminal_matching" only for small programs whose output is fully predictable; then give the exact expected stdout
- "ai_review" for anything that needs a code review; expected_output may then be empty

Respond with ONLY a JSON object of this shape:
{"starter_files": {"main.py": "..."}, "grading_method": "ai_review", "expected_output": ""}`

const textResponseSystemPrompt = `You are a teacher writing open-ended review questions for one lesson of a programming course.

Write 2 to 5 questions that make the learner explain the lesson's ideas in their own words. For each question give a concise reference answer a grader can compare against.

Respond with ONLY a JSON object of this shape:
{"questions": [{"question": "...", "reference_answer": "..."}]}`

const videoQuerySystemPrompt = `You pick search terms for finding one educational video on YouTube that teaches a lesson.

Respond with ONLY a JSON object of this shape:
{"query": "short search terms", "relevanceLanguage": "en", "regionCode": "US", "videoCategoryId": "27"}

"query" is required. The other fields are optional hints; omit any you are unsure about.`

const articleSystemPrompt = `You are an experienced technical writer. You write thorough, accurate articles that break complex ideas into clear explanations with examples, adjusting tone to the reader.

Write the article for the lesson below. Stay within the lesson's scope, use the reference material where it helps and cover the topic completely without becoming overwhelming.

Return only the article, in markdown, with no commentary before or after it.`

// lessonContext renders the fields of a lesson that generators send to
// the model.
func lessonContext(l course.Lesson, guidelines bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lesson Name: %s\n", l.Name)
	fmt.Fprintf(&b, "Lesson Description: %s\n", l.Description)
	fmt.Fprintf(&b, "Lesson Details: %s\n", l.Details)
	fmt.Fprintf(&b, "Lesson Goals: %s\n", l.Goals)
	if guidelines {
		fmt.Fprintf(&b, "Lesson Guidelines: %s\n", l.Guidelines)
	}
	return b.String()
}

func articleContext(l course.Lesson) string {
	return fmt.Sprintf("Description: %s\nDetails: %s\nGoals: %s\nGuidelines: %s",
		l.Description, l.Details, l.Goals, l.Guidelines)
}

func keywordsMessage(input string) string {
	return "Reduce the following material to a few main ideas of a few words each.\n\n" +
		"Input: " + input + "\n\n" +
		"Return only the main ideas. Do not explain or add anything."
}

func webQueryMessage(l course.Lesson) string {
	input := strings.TrimSpace(fmt.Sprintf("%s. %s %s", l.Name, l.Description, l.Details))
	return "Turn the following material into one short search question that captures its main ideas.\n\n" +
		"Input: " + input + "\n\n" +
		"Return only the question. Do not explain or add anything."
}

func articleUserMessage(l course.Lesson, snippets []search.Snippet) string {
	var b strings.Builder
	b.WriteString("Lesson:\n")
	b.WriteString(articleContext(l))
	b.WriteString("\n\nReference material:\n")
	if len(snippets) == 0 {
		b.WriteString("(none)\n")
	}
	for _, s := range snippets {
		if s.Category != "" {
			fmt.Fprintf(&b, "- [%s] %s\n", s.Category, s.Text)
		} else {
			fmt.Fprintf(&b, "- %s\n", s.Text)
		}
	}
	return b.String()
}

func videoQueryMessage(l course.Lesson) string {
	return fmt.Sprintf("Lesson Name: %s\nLesson Description: %s\nLesson Goals: %s\n",
		l.Name, l.Description, l.Goals)
}

const finalLessonSystemPrompt = `You are a curriculum designer writing the capstone lesson that closes a programming course.

Describe one final project that exercises the ideas of every chapter at a level fitting the learner.

Respond with ONLY a JSON object of this shape:
{"lesson_name": "...", "lesson_description": "...", "lesson_details": "...", "lesson_goals": "...", "lesson_guidelines": "..."}`

const finalProjectSystemPrompt = `You are a programming instructor preparing the starter project for a course's capstone.

Provide a multi-file starter project of at least 4 files, including a README.md that explains the steps. Leave the real work for the learner, marked with TODO comments. Choose "terminal_matching" grading only when the finished program's output is fully predictable, otherwise "ai_review".

Respond with ONLY a JSON object of this shape:
{"project_name": "...", "description": "...", "starter_files": {"README.md": "...", "main.py": "..."}, "grading_method": "ai_review", "expected_output": ""}`

func finalProjectMessage(in FinalProjectInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course goal: %s\n", in.Prompt)
	fmt.Fprintf(&b, "Learner experience: %s\n\nChapters:\n", in.Experience)
	for _, ch := range in.Chapters {
		fmt.Fprintf(&b, "%s\n", ch.OutlineLine())
	}
	return b.String()
}

func finalFilesMessage(in FinalProjectInput, lesson course.LessonSpec) string {
	var b strings.Builder
	b.WriteString(finalProjectMessage(in))
	fmt.Fprintf(&b, "\nProject: %s\nDescription: %s\nDetails: %s\nGoals: %s\nGuidelines: %s\n",
		lesson.Name, lesson.Description, lesson.Details, lesson.Goals, lesson.Guidelines)
	return b.String()
}
