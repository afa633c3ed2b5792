package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/leadbrief/internal/summary"
)

// summarizeRequest models the POST payload to /api/v1/leads/summarize
type summarizeRequest struct {
	LeadID string `json:"lead_id"`
}

// askRequest models the POST payload to /api/v1/leads/ask
type askRequest struct {
	LeadID   string `json:"lead_id"`
	Question string `json:"question"`
}

// summarizeLead validates the lead ID and runs the summarization
// pipeline. Callers receive either the complete flat summary payload
// or a single-key error structure, never a partial shape.
func (s *Server) summarizeLead(c echo.Context) error {
	var req summarizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorPayload("invalid JSON payload"))
	}

	if strings.TrimSpace(req.LeadID) == "" {
		// Rejected before the orchestrator is invoked: no CRM query
		// and no generation call is spent on an incomplete request.
		return c.JSON(http.StatusBadRequest, errorPayload("Lead ID not provided"))
	}

	result, err := s.summarizer.Summarize(c.Request().Context(), req.LeadID)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result.Payload())
}

// askLead answers a free-form question about a lead.
func (s *Server) askLead(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorPayload("invalid JSON payload"))
	}

	if strings.TrimSpace(req.LeadID) == "" {
		return c.JSON(http.StatusBadRequest, errorPayload("Lead ID not provided"))
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.JSON(http.StatusBadRequest, errorPayload("question not provided"))
	}

	answer, err := s.summarizer.Ask(c.Request().Context(), req.LeadID, req.Question)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"answer": answer})
}

// getReadiness reports whether the expected local configuration
// artifacts are present on disk.
func (s *Server) getReadiness(c echo.Context) error {
	artifacts := make(map[string]bool, len(s.artifacts))
	ready := true
	for _, path := range s.artifacts {
		_, err := os.Stat(path)
		present := err == nil
		artifacts[filepath.Base(path)] = present
		ready = ready && present
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]interface{}{
		"ready":     ready,
		"artifacts": artifacts,
	})
}

// errorResponse maps the summarization error taxonomy to HTTP
// statuses, always with the single-key error shape.
func (s *Server) errorResponse(c echo.Context, err error) error {
	switch summary.KindOf(err) {
	case summary.KindMissingInput:
		return c.JSON(http.StatusBadRequest, errorPayload(err.Error()))
	case summary.KindNotFound:
		return c.JSON(http.StatusNotFound, errorPayload(err.Error()))
	case summary.KindUnparseable:
		return c.JSON(http.StatusBadGateway, errorPayload(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, errorPayload(err.Error()))
	}
}

func errorPayload(message string) map[string]string {
	return map[string]string{"error": message}
}
