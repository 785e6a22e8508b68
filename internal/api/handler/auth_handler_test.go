package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	refreshFn func(ctx context.Context, token string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, token string) (string, error) {
	return s.refreshFn(ctx, token)
}

func (s *stubAuthService) ResolveUser(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func newTestContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testAdminUser() *domain.User {
	return &domain.User{
		ID:       1,
		Username: "admin",
		Email:    "admin@wisensor.com",
		IsActive: true,
		Roles: []domain.Role{{
			ID:   1,
			Name: "admin",
			Permissions: []domain.Permission{
				{ID: 1, Name: domain.PermViewUsers},
				{ID: 2, Name: domain.PermManageConfig},
			},
		}},
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "admin@wisensor.com" || password != "admin123" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return &ports.LoginResult{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				TokenType:    "bearer",
				User:         testAdminUser(),
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@wisensor.com","password":"admin123"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "access-token" {
		t.Fatalf("unexpected access_token: %v", resp["access_token"])
	}
	if resp["token_type"] != "bearer" {
		t.Fatalf("unexpected token_type: %v", resp["token_type"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("missing user object: %v", resp)
	}
	if user["name"] != "admin" {
		t.Fatalf("unexpected user name: %v", user["name"])
	}
	perms, ok := user["permissions"].([]any)
	if !ok || len(perms) != 2 {
		t.Fatalf("expected 2 permissions, got %v", user["permissions"])
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(e, http.MethodPost, "/api/auth/login", `{"email":"not-an-email"}`)

	err := handler.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@wisensor.com","password":"wrong"}`)

	// Domain errors bubble up to the central error handler.
	if err := handler.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		refreshFn: func(_ context.Context, token string) (string, error) {
			if token != "refresh-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return "new-access-token", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/api/auth/refresh",
		`{"refresh_token":"refresh-token"}`)

	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp refreshResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.AccessToken != "new-access-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(e, http.MethodGet, "/api/auth/me", "")
	c.Set("current_user", testAdminUser())

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp meResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Username != "admin" || len(resp.Roles) != 1 || len(resp.Permissions) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Me_NoUser(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(e, http.MethodGet, "/api/auth/me", "")

	err := handler.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
