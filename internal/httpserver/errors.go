package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/campus_admin/internal/middleware/auth"
	"github.com/Skotchmaster/campus_admin/internal/service"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrUserGone),
		errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNoTenant):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err under event and converts it into the HTTP error the client sees.
// Unclassified errors become a bare 500.
func fail(l *slog.Logger, event string, err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		code := statusOf(se)
		l.Warn(event, "status", code, "reason", se.Msg, "error", err)
		return echo.NewHTTPError(code, se.Msg)
	}
	l.Error(event, "status", http.StatusInternalServerError, "reason", "internal", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not a positive integer")
	}
	return uint(id), nil
}

// tenant reads the tenant stored by RequireTenant. Missing means the route was mounted without it.
func tenant(c echo.Context) (service.Tenant, error) {
	t, ok := authmw.TenantFrom(c)
	if !ok {
		return service.Tenant{}, echo.NewHTTPError(http.StatusForbidden, "User is not assigned to a college")
	}
	return t, nil
}
