// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/karetou/karetou_backend/models"
	"github.com/labstack/echo/v4"
)

// RequireRole checks if the authenticated account has one of the
// allowed roles. Super-admins pass every admin gate.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := ExtractRole(c)

			if role == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Authentication failed: role not found",
				})
			}

			for _, allowed := range allowedRoles {
				if role == allowed {
					return next(c)
				}
				// superadmin inherits admin access
				if role == models.RoleSuperAdmin && allowed == models.RoleAdmin {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, models.Response{
				Status:  http.StatusForbidden,
				Message: "Access denied for your role",
			})
		}
	}
}
