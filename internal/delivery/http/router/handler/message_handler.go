package handler

import (
	"log/slog"

	"relate/internal/delivery/http/response"
	"relate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for support message handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:     uc,
		logger: logger,
	}
}

// Send handles POST /api/messages.
func (h *MessageHandler) Send(c echo.Context) error {
	var input usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid message payload")
	}
	if err := c.Validate(&input); err != nil {
		return validationFailed(c, err)
	}

	output, err := h.uc.Send(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// History handles GET /api/messages/:userId, newest first.
func (h *MessageHandler) History(c echo.Context) error {
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
