// Package response centralizes the JSON bodies handlers write.
//
// Success responses are the raw entity, array or null payload; error
// responses carry a single "error" object whose message the client UI
// shows verbatim.
package response

import (
	"net/http"

	domainerrors "relate/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// JSON writes a successful response with the payload as the whole body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 response with the payload as the whole body.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Error writes an error response in the unified error envelope.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
		},
	})
}

// ValidationError writes a 400 response listing per-field failures.
func ValidationError(c echo.Context, message string, fields []domainerrors.FieldError) error {
	if message == "" {
		message = "Invalid request payload"
	}

	return c.JSON(http.StatusBadRequest, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    "VALIDATION_ERROR",
			Message: message,
			Fields:  fields,
		},
	})
}

// BindingError writes a 400 response for unparseable request bodies.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_ERROR", message)
}

// Unauthorized writes a 401 response.
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message)
}

// InternalServerError writes an opaque 500 response.
func InternalServerError(c echo.Context, message string) error {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}

	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}
