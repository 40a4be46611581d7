package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/coursegen/internal/grading"
	"github.com/abhisek/coursegen/internal/store"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
		_ = c.Error(err)
	}
	c.JSON(status, errorEnvelope{Error: apiError{Message: msg, Code: code}})
}

// respondLookupError maps repository errors onto status codes.
func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, grading.ErrNoQuestions):
		respondError(c, http.StatusNotFound, "no_questions", err)
	default:
		respondError(c, http.StatusInternalServerError, "internal", err)
	}
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", errors.New("id must be a positive integer"))
		return 0, false
	}
	return id, true
}
