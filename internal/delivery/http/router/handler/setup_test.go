package handler

import (
	"io"
	"log/slog"
	"testing"

	"relate/internal/delivery/http/middleware"
	"relate/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

// newTestEcho builds an Echo instance wired the way the server wires it:
// request validation plus the error handler that maps application errors
// to their HTTP envelope.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}
