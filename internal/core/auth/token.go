package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation failures, distinguishable so callers can report the
// exact reason. All of them map to 401 at the API layer.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)

const refreshTokenType = "refresh"

// TokenIssuer creates and validates HS256-signed JWTs. The signing secret
// is process-wide configuration, loaded once at startup; rotating it
// invalidates every outstanding token.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssueAccess signs a short-lived access token carrying the user id.
func (ti *TokenIssuer) IssueAccess(userID uint) (string, error) {
	return ti.sign(jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(ti.accessTTL).Unix(),
	})
}

// IssueRefresh signs a long-lived refresh token. Refresh tokens are only
// accepted by ValidateRefresh, never as bearer credentials.
func (ti *TokenIssuer) IssueRefresh(userID uint) (string, error) {
	return ti.sign(jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"exp":  time.Now().Add(ti.refreshTTL).Unix(),
		"type": refreshTokenType,
	})
}

// Validate checks an access token and returns the embedded user id.
func (ti *TokenIssuer) Validate(token string) (uint, error) {
	claims, err := ti.parse(token)
	if err != nil {
		return 0, err
	}
	if t, _ := claims["type"].(string); t == refreshTokenType {
		return 0, ErrTokenMalformed
	}
	return subject(claims)
}

// ValidateRefresh checks a refresh token and returns the embedded user id.
func (ti *TokenIssuer) ValidateRefresh(token string) (uint, error) {
	claims, err := ti.parse(token)
	if err != nil {
		return 0, err
	}
	if t, _ := claims["type"].(string); t != refreshTokenType {
		return 0, ErrTokenMalformed
	}
	return subject(claims)
}

func (ti *TokenIssuer) sign(claims jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (ti *TokenIssuer) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return ti.secret, nil
	})
	switch {
	case err == nil && tkn.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrTokenSignatureInvalid
	default:
		return nil, ErrTokenMalformed
	}
}

func subject(claims jwt.MapClaims) (uint, error) {
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrTokenMalformed
	}
	return uint(id), nil
}
