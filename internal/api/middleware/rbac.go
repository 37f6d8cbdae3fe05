package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
)

// RequireRoles enforces role-based access: the authenticated role must be
// in the allowed set or the request terminates with 403. Roles are typed
// constants, so a typo in a route table fails to compile instead of
// silently denying everyone.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
