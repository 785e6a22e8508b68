package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/auth"
	"github.com/wisensor/wisensor-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrValidation, http.StatusBadRequest, "validation failed"},
		{fmt.Errorf("%w: username is required", domain.ErrValidation), http.StatusBadRequest, "validation failed: username is required"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrInactiveUser, http.StatusUnauthorized, "user is inactive"},
		{auth.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{auth.ErrTokenSignatureInvalid, http.StatusUnauthorized, "token signature invalid"},
		{auth.ErrTokenMalformed, http.StatusUnauthorized, "token malformed"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrUserNotFound, http.StatusNotFound, domain.ErrUserNotFound.Error()},
		{domain.ErrRoleNotFound, http.StatusNotFound, domain.ErrRoleNotFound.Error()},
		{domain.ErrProjectNotFound, http.StatusNotFound, domain.ErrProjectNotFound.Error()},
		{domain.ErrAssignmentNotFound, http.StatusNotFound, domain.ErrAssignmentNotFound.Error()},
		{domain.ErrCenterNotFound, http.StatusNotFound, domain.ErrCenterNotFound.Error()},
		{domain.ErrUserExists, http.StatusConflict, domain.ErrUserExists.Error()},
		{domain.ErrRoleExists, http.StatusConflict, domain.ErrRoleExists.Error()},
		{domain.ErrAssignmentExists, http.StatusConflict, domain.ErrAssignmentExists.Error()},
		{domain.ErrCenterExists, http.StatusConflict, domain.ErrCenterExists.Error()},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.code, code)
		}
		if msg != tc.msg {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.msg, msg)
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", code)
	}
	if msg != "short and stout" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	code, msg := renderError(t, fmt.Errorf("driver: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// Internal details must never leak to the client.
	if msg != "internal server error" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
