package handler

import (
	"log/slog"

	"relate/internal/delivery/http/response"
	"relate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for feedback handlers.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles POST /api/feedback.
// The stored status is forced to "pending" server-side; a status field in
// the payload is ignored by binding.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var input usecase.SubmitFeedbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid feedback payload")
	}
	if err := c.Validate(&input); err != nil {
		return validationFailed(c, err)
	}

	output, err := h.uc.Submit(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// History handles GET /api/feedback/:userId, newest first.
func (h *FeedbackHandler) History(c echo.Context) error {
	userID, ok, resp := pathUUID(c, "userId")
	if !ok {
		return resp
	}

	outputs, err := h.uc.History(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, outputs)
}
