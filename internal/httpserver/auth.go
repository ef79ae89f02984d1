package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/campus_admin/internal/middleware/auth"
	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

// Login takes an OAuth2 password-grant style form: username (or email) and password.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := bind(c, &req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return fail(l, "login_error", err)
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	if err := h.Svc.Logout(ctx, authmw.CurrentUser(c)); err != nil {
		return fail(l, "logout_error", err)
	}

	l.Info("logout_success")
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.register")

	var req transport.RegisterRequest
	if err := bind(c, &req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		return fail(l, "register_error", err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, authmw.CurrentUser(c))
}

func (h *AuthHTTP) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.change_password")

	var req transport.ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		l.Warn("change_password_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	if err := h.Svc.ChangePassword(ctx, authmw.CurrentUser(c), req.CurrentPassword, req.NewPassword); err != nil {
		return fail(l, "change_password_error", err)
	}

	l.Info("change_password_success")
	return c.JSON(http.StatusOK, echo.Map{"message": "Password changed"})
}
