// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a new account.
// Everything except email, password and type is optional; the account type
// is fixed at creation.
type SignUpInput struct {
	Username     *string `json:"username" validate:"omitempty,min=1"`
	BusinessName *string `json:"businessName"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=consumer business"`
	Category     *string `json:"category"`
	UniqueCode   *string `json:"uniqueCode"`
	Whatsapp     *string `json:"whatsapp"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserOutput is the client-facing view of an account.
// It deliberately has no password field; the stored credential never
// crosses the delivery boundary.
type UserOutput struct {
	ID           uuid.UUID `json:"id"`
	Username     *string   `json:"username"`
	BusinessName *string   `json:"businessName"`
	Email        string    `json:"email"`
	Type         string    `json:"type"`
	Category     *string   `json:"category"`
	UniqueCode   *string   `json:"uniqueCode"`
	Whatsapp     *string   `json:"whatsapp"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUserOutput maps a domain User to its client-facing view,
// stripping the credential.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:           user.ID,
		Username:     user.Username,
		BusinessName: user.BusinessName,
		Email:        user.Email,
		Type:         string(user.Type),
		Category:     user.Category,
		UniqueCode:   user.UniqueCode,
		Whatsapp:     user.Whatsapp,
		CreatedAt:    user.CreatedAt,
	}
}

// AuthUsecase defines the interface for account registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*UserOutput, error)
	Login(ctx context.Context, input *LoginInput) (*UserOutput, error)
}
