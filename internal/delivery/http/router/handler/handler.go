// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"relate/internal/delivery/http/response"
	domainerrors "relate/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// validationFailed writes the 400 response for a payload that bound but
// failed struct validation, listing each offending field.
func validationFailed(c echo.Context, err error) error {
	var fieldErrs validatorlib.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return response.ValidationError(c, "Invalid request payload", nil)
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:  fe.Field(),
			Reason: fe.Tag(),
		})
	}

	return response.ValidationError(c, "Invalid request payload", fields)
}

// pathUUID parses a UUID path parameter. Malformed identifiers are a
// validation error, not a store fault.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.ValidationError(c, "Invalid "+name+" path parameter", nil)
	}

	return id, true, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
