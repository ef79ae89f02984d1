package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type RejectionRecorder interface {
	AuthRejected(reason string)
}

type Gate struct {
	Auth    Authenticator
	Metrics RejectionRecorder
}

// RequireAuth admits requests carrying a valid, unrevoked bearer token for an existing user.
func (g *Gate) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "auth.require_login")

		token, ok := bearerToken(c)
		if !ok {
			return g.reject(c, "missing", "Not authenticated")
		}

		user, err := g.Auth.Authenticate(ctx, token)
		if err != nil {
			var se *service.Error
			if !errors.As(err, &se) {
				l.Error("auth_error", "status", 500, "reason", "cannot load user", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}
			return g.reject(c, reasonOf(err), se.Msg)
		}

		setUserContext(c, user)
		return next(c)
	}
}

func (g *Gate) reject(c echo.Context, reason, msg string) error {
	logging.FromContext(c.Request().Context()).Warn("auth_rejected", "status", 401, "reason", reason)
	if g.Metrics != nil {
		g.Metrics.AuthRejected(reason)
	}
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}

func reasonOf(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, service.ErrUserGone):
		return "user_gone"
	default:
		return "invalid_token"
	}
}
