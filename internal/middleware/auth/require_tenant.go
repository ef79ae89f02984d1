package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/service"
)

// RequireTenant must run after RequireAuth. It pins the request to the caller's college.
func (g *Gate) RequireTenant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		t, err := service.TenantOf(CurrentUser(c))
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		c.Set(ctxTenant, t)
		return next(c)
	}
}
