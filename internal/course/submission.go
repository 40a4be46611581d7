package course

import "time"

// QuestionResult is the graded outcome of one quiz question.
type QuestionResult struct {
	QuestionIndex int    `json:"question_index"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// QuizAttempt is an immutable record of one quiz submission.
type QuizAttempt struct {
	ID        int              `json:"id"`
	QuizID    int              `json:"quiz_id"`
	Answers   map[int]string   `json:"answers"`
	Results   []QuestionResult `json:"results"`
	Score     int              `json:"score"`
	Total     int              `json:"total"`
	CreatedAt time.Time        `json:"created_at"`
}

// Percentage returns the score as a whole-number percentage.
func (a QuizAttempt) Percentage() int {
	if a.Total == 0 {
		return 0
	}
	return int(float64(a.Score)/float64(a.Total)*100 + 0.5)
}

// TextGrade is the rubric grade of one free-text answer.
type TextGrade struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// TextSubmission is one graded batch of free-text answers for a lesson.
type TextSubmission struct {
	ID             int               `json:"id"`
	LessonID       int               `json:"lesson_id"`
	Answers        map[int]string    `json:"answers"`
	Grades         map[int]TextGrade `json:"grades"`
	TotalScore     float64           `json:"total_score"`
	TotalQuestions int               `json:"total_questions"`
	Fallback       bool              `json:"fallback"`
	SubmittedAt    time.Time         `json:"submitted_at"`
}
