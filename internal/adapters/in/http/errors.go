package http

import (
	"errors"
	"fmt"
	"net/http"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with the status its class maps to. Internal errors are
// logged and replaced by a generic message.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.WithError(err).WithField("path", c.Path()).Error("request failed")
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}

func (s *Server) badRequest(c echo.Context, err error) error {
	detail := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		detail = fmt.Sprint(httpErr.Message)
	}
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "invalid request body: " + detail,
	})
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}
