package handler

import (
	"log/slog"

	"relate/internal/delivery/http/response"
	"relate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SalesHandler holds dependencies for sales metric handlers.
type SalesHandler struct {
	uc     usecase.SalesUsecase
	logger *slog.Logger
}

// NewSalesHandler is the constructor for SalesHandler, injected by Fx.
func NewSalesHandler(uc usecase.SalesUsecase, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		uc:     uc,
		logger: logger,
	}
}

// Record handles POST /api/sales.
func (h *SalesHandler) Record(c echo.Context) error {
	var input usecase.RecordSalesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid sales payload")
	}
	if err := c.Validate(&input); err != nil {
		return validationFailed(c, err)
	}

	output, err := h.uc.Record(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// List handles GET /api/sales/:businessId, newest first by date.
func (h *SalesHandler) List(c echo.Context) error {
	businessID, ok, resp := pathUUID(c, "businessId")
	if !ok {
		return resp
	}

	outputs, err := h.uc.ListByBusiness(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, outputs)
}

// Latest handles GET /api/sales/:businessId/latest.
// A business with no records yields a literal null body, not an error.
func (h *SalesHandler) Latest(c echo.Context) error {
	businessID, ok, resp := pathUUID(c, "businessId")
	if !ok {
		return resp
	}

	output, err := h.uc.Latest(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}
