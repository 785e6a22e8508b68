package ports

import (
	"context"

	"github.com/wisensor/wisensor-api/internal/core/domain"
)

// LoginResult is what a successful authentication yields: a short-lived
// access token, a refresh token, and the resolved user with roles and
// permissions materialized.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	User         *domain.User
}

type AuthService interface {
	// Login verifies the credentials and issues tokens. Bad email and bad
	// password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// ResolveUser validates an access token and loads the user it names.
	// Missing or inactive users fail even when the token is structurally
	// valid: tokens carry no authority independent of database state.
	ResolveUser(ctx context.Context, accessToken string) (*domain.User, error)
}
