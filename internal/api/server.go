package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/leadbrief/internal/summary"
)

// Summarizer is the summarization capability the HTTP layer exposes.
// *summary.Orchestrator satisfies it.
type Summarizer interface {
	Summarize(ctx context.Context, leadID string) (*summary.Summary, error)
	Ask(ctx context.Context, leadID, question string) (string, error)
}

// Server represents the API server
type Server struct {
	echo       *echo.Echo
	port       int
	summarizer Summarizer
	artifacts  []string
}

// NewServer creates a new API server. artifacts lists the local
// configuration files whose presence the readiness endpoint reports
// (credentials file, settings file).
func NewServer(port int, summarizer Summarizer, artifacts []string) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server := &Server{
		echo:       e,
		port:       port,
		summarizer: summarizer,
		artifacts:  artifacts,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	s.echo.GET("/ready", s.getReadiness)

	// API v1 group
	v1 := s.echo.Group("/api/v1")

	v1.POST("/leads/summarize", s.summarizeLead)
	v1.POST("/leads/ask", s.askLead)
}

// Start begins the API server
func (s *Server) Start() error {
	// Start server in a goroutine
	go func() {
		if err := s.echo.Start(fmt.Sprintf(":%d", s.port)); err != nil && err != http.ErrServerClosed {
			s.echo.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}
