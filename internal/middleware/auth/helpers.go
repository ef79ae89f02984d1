package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/service"
)

const (
	ctxUser   = "auth.user"
	ctxUserID = "auth.user_id"
	ctxTenant = "auth.tenant"
)

func setUserContext(c echo.Context, u *models.User) {
	c.Set(ctxUser, u)
	c.Set(ctxUserID, u.ID)
}

// CurrentUser returns the user resolved by RequireAuth, or nil on unprotected routes.
func CurrentUser(c echo.Context) *models.User {
	u, _ := c.Get(ctxUser).(*models.User)
	return u
}

func TenantFrom(c echo.Context) (service.Tenant, bool) {
	t, ok := c.Get(ctxTenant).(service.Tenant)
	return t, ok
}

// bearerToken extracts the token from "Authorization: Bearer <token>". The scheme is case-insensitive.
func bearerToken(c echo.Context) (string, bool) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
