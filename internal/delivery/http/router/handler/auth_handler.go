package handler

import (
	"log/slog"

	"relate/internal/delivery/http/response"
	"relate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for signup and login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles POST /api/auth/signup.
// The created account is returned without its password field; duplicate
// email or username surfaces as a 400 conflict via the error middleware.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid signup payload")
	}
	if err := c.Validate(&input); err != nil {
		return validationFailed(c, err)
	}

	output, err := h.uc.SignUp(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// Login handles POST /api/auth/login.
// Any mismatch, unknown email included, is a 401; the response body on
// success is the account without its password field.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return validationFailed(c, err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}
