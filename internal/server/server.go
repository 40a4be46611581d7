// Package server exposes course generation and grading over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/generation"
	"github.com/abhisek/coursegen/internal/grading"
	"github.com/abhisek/coursegen/internal/logger"
)

// Courses is the generation side the API drives.
type Courses interface {
	StartGeneration(ctx context.Context, req generation.Request) (*generation.Result, error)
	GetCourse(ctx context.Context, id int) (*course.Generation, error)
	GetLessonArtifact(ctx context.Context, lessonID int) (*course.LessonContent, error)
	ListGenerations(ctx context.Context, limit int) ([]course.Generation, error)
	Logs(ctx context.Context, generationID int) ([]course.LogEntry, error)
}

// Grader grades learner submissions.
type Grader interface {
	SubmitQuiz(ctx context.Context, quizID int, answers map[int]string) (*grading.QuizResult, error)
	SubmitTextResponses(ctx context.Context, lessonID int, answers map[int]string) (*grading.TextResponseResult, error)
}

// Server owns the gin engine and its handlers.
type Server struct {
	courses Courses
	grader  Grader
	log     *logger.Logger
	engine  *gin.Engine
}

// New builds the router. mode is a gin mode ("release", "debug", "test").
func New(courses Courses, grader Grader, mode string, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if mode != "" {
		gin.SetMode(mode)
	}
	s := &Server{
		courses: courses,
		grader:  grader,
		log:     log.With("component", "http"),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLog(s.log))

	r.GET("/healthcheck", healthCheck)

	api := r.Group("/api")
	{
		api.POST("/generations", s.startGeneration)
		api.GET("/generations", s.listGenerations)
		api.GET("/generations/:id", s.getGeneration)
		api.GET("/generations/:id/logs", s.generationLogs)

		api.GET("/lessons/:id/artifact", s.lessonArtifact)
		api.POST("/lessons/:id/text-responses", s.submitTextResponses)

		api.POST("/quizzes/:id/attempts", s.submitQuiz)
	}
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// Generation requests are long-running, so no write timeout is set.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
