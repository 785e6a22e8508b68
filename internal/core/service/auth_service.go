package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/auth"
	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

// AuthService implements login, token refresh, and bearer-token resolution.
type AuthService struct {
	users  ports.UserRepository
	tokens *auth.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *auth.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable.
		return nil, domain.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	access, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	s.logger.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("user logged in")

	return &ports.LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         user,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	// The user must still exist and be active; a refresh token does not
	// outlive its account.
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", domain.ErrInactiveUser
	}

	return s.tokens.IssueAccess(user.ID)
}

func (s *AuthService) ResolveUser(ctx context.Context, accessToken string) (*domain.User, error) {
	userID, err := s.tokens.Validate(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}
