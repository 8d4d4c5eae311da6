// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "relate/internal/delivery/context"
	"relate/internal/domain/entity"
	domainerrors "relate/internal/domain/errors"
	"relate/internal/domain/repository"
	"relate/internal/domain/service"
	"relate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	verifier service.CredentialVerifier
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Verifier service.CredentialVerifier
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates a new account after checking both unique identifiers.
// The pre-checks give precise conflict messages; the insert's unique
// constraints remain the authority under concurrent signups.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email), slog.String("type", input.Type))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	if input.Username != nil && *input.Username != "" {
		_, err := srv.userRepo.FindByUsername(ctx, *input.Username)
		if err == nil {
			srv.log(ctx).Warn("Signup rejected, username taken", slog.String("username", *input.Username))

			return nil, domainerrors.ErrUsernameTaken.WrapMessage("username already taken")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check username availability")
		}
	}

	newUser := &entity.User{
		Username:     input.Username,
		BusinessName: input.BusinessName,
		Email:        input.Email,
		Password:     input.Password,
		Type:         entity.UserType(input.Type),
		Category:     input.Category,
		UniqueCode:   input.UniqueCode,
		Whatsapp:     input.Whatsapp,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return usecase.NewUserOutput(newUser), nil
}

// Login checks the credential for the account registered under the email.
// Unknown emails and wrong passwords are indistinguishable to the caller;
// both yield invalid credentials, never a store fault.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.verifier.Verify(input.Password, user.Password) {
		srv.log(ctx).Warn("Login rejected, credential mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("credential mismatch")
	}

	srv.log(ctx).Debug("Login successful", slog.Any("userID", user.ID))

	return usecase.NewUserOutput(user), nil
}
