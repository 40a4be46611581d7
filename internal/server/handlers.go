package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/coursegen/internal/generation"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type startGenerationResponse struct {
	Success            bool                       `json:"success"`
	Message            string                     `json:"message,omitempty"`
	Error              string                     `json:"error,omitempty"`
	CourseGenerationID int                        `json:"course_generation_id,omitempty"`
	TotalChapters      int                        `json:"total_chapters,omitempty"`
	TotalLessons       int                        `json:"total_lessons,omitempty"`
	Result             []generation.ChapterResult `json:"result,omitempty"`
	FinalProject       bool                       `json:"final_project,omitempty"`
	CourseData         map[string]any             `json:"course_data,omitempty"`
}

// POST /api/generations
// Runs a whole generation synchronously and returns its aggregate.
func (s *Server) startGeneration(c *gin.Context) {
	var req generation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	res, err := s.courses.StartGeneration(c.Request.Context(), req)
	if err != nil {
		var genErr *generation.GenerationError
		switch {
		case errors.Is(err, generation.ErrEmptyPrompt):
			c.JSON(http.StatusBadRequest, startGenerationResponse{Error: err.Error()})
		case errors.As(err, &genErr) && genErr.CourseGenerationID != 0:
			_ = c.Error(err)
			c.JSON(http.StatusBadRequest, startGenerationResponse{
				Error:              err.Error(),
				CourseGenerationID: genErr.CourseGenerationID,
			})
		default:
			respondError(c, http.StatusInternalServerError, "internal", err)
		}
		return
	}

	c.JSON(http.StatusOK, startGenerationResponse{
		Success:            true,
		Message:            "Course generated successfully",
		CourseGenerationID: res.CourseGenerationID,
		TotalChapters:      res.TotalChapters,
		TotalLessons:       res.TotalLessons,
		Result:             res.Chapters,
		FinalProject:       res.FinalProject,
		CourseData:         res.CourseData,
	})
}

// GET /api/generations?limit=N
func (s *Server) listGenerations(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "invalid_limit", errors.New("limit must be a positive integer"))
			return
		}
		limit = min(n, maxListLimit)
	}

	gens, err := s.courses.ListGenerations(c.Request.Context(), limit)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"generations": gens})
}

// GET /api/generations/:id
// The course tree with chapters and lessons nested.
func (s *Server) getGeneration(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	gen, err := s.courses.GetCourse(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gen)
}

// GET /api/generations/:id/logs
func (s *Server) generationLogs(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := s.courses.GetCourse(c.Request.Context(), id); err != nil {
		respondLookupError(c, err)
		return
	}
	entries, err := s.courses.Logs(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course_generation_id": id, "logs": entries})
}

// GET /api/lessons/:id/artifact
func (s *Server) lessonArtifact(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	content, err := s.courses.GetLessonArtifact(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

type answersRequest struct {
	Answers map[int]string `json:"answers"`
}

// POST /api/quizzes/:id/attempts
// Answers are keyed by zero-based question index.
func (s *Server) submitQuiz(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req answersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	res, err := s.grader.SubmitQuiz(c.Request.Context(), id, req.Answers)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/lessons/:id/text-responses
// Answers are keyed by question number.
func (s *Server) submitTextResponses(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req answersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	res, err := s.grader.SubmitTextResponses(c.Request.Context(), id, req.Answers)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
