package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wisensor/wisensor-api/internal/api/metrics"
	"github.com/wisensor/wisensor-api/internal/core/domain"
)

// RequirePermission gates a route on a single permission name. It expects
// the Auth middleware to have run first; the check itself is pure set
// membership over the associations loaded with the user.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !user.HasPermission(permission) {
				metrics.PermissionDeniedTotal.WithLabelValues(permission).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
