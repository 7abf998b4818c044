package services

import (
	"context"
	"strings"

	"vidgram/internal/core/domain"
	"vidgram/internal/core/ports"
	"vidgram/pkg/errors"
	"vidgram/pkg/utils"
	"vidgram/pkg/validation"

	"go.uber.org/zap"
)

type accountService struct {
	authAPI ports.AuthAPI
	session ports.SessionService
	logger  *zap.SugaredLogger
}

// NewAccountService creates the registration/sign-in orchestrator.
func NewAccountService(authAPI ports.AuthAPI, session ports.SessionService, logger *zap.SugaredLogger) ports.AccountService {
	return &accountService{
		authAPI: authAPI,
		session: session,
		logger:  logger,
	}
}

// Register validates the form client-side and submits it. The confirm
// password never leaves the process.
func (s *accountService) Register(ctx context.Context, form ports.RegisterForm) error {
	username := strings.TrimSpace(form.Username)
	email := utils.NormalizeEmail(form.Email)

	if err := validation.ValidateUsername(username); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(form.Password); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := validation.ValidatePasswordConfirmation(form.Password, form.ConfirmPassword); err != nil {
		return errors.NewValidationError(err.Error())
	}

	params := ports.RegisterParams{
		Username: username,
		Email:    email,
		Password: form.Password,
		Role:     domain.ParseRole(form.Role),
	}

	if err := s.authAPI.Register(ctx, params); err != nil {
		return err
	}

	s.logger.Infow("account registered", "username", username, "role", params.Role)
	return nil
}

// SignIn exchanges credentials for a session and returns the user record.
func (s *accountService) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	email = utils.NormalizeEmail(email)
	if utils.IsEmpty(email) || password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	result, err := s.authAPI.Login(ctx, ports.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if result.Token == "" || result.User == nil {
		return nil, errors.NewMalformedResponseError(nil)
	}

	if err := s.session.Login(ctx, result.User, result.Token); err != nil {
		return nil, err
	}
	return result.User, nil
}
