package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karetou/karetou_backend/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithRole(t *testing.T, role string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	handler := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		rec := runWithRole(t, models.RoleAdmin, models.RoleAdmin)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("superadmin passes admin gates", func(t *testing.T) {
		rec := runWithRole(t, models.RoleSuperAdmin, models.RoleAdmin)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin cannot pass superadmin gates", func(t *testing.T) {
		rec := runWithRole(t, models.RoleAdmin, models.RoleSuperAdmin)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("mobile user cannot reach admin routes", func(t *testing.T) {
		rec := runWithRole(t, "user", models.RoleAdmin)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is unauthorized", func(t *testing.T) {
		rec := runWithRole(t, "", models.RoleAdmin)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
