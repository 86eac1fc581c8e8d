package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database_connection"`
	Version     string `json:"api_version"`
	Subscribers int    `json:"subscribers"`
	Detail      string `json:"detail,omitempty"`
}

// Health handles GET /health. It answers 503 when the store cannot be
// reached.
func (s *Server) Health(c echo.Context) error {
	resp := HealthResponse{
		Status:      "ok",
		Database:    "successful",
		Version:     s.version,
		Subscribers: s.hub.Count(),
	}

	if err := s.ping(c.Request().Context()); err != nil {
		s.logger.WithError(err).Warn("health check failed")
		resp.Status = "error"
		resp.Database = "failed"
		resp.Detail = err.Error()
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}
