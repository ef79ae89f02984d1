package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type RoleHTTP struct {
	Svc *service.RoleService
}

func (h *RoleHTTP) CreateRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "role.create")

	var req transport.CreateRoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	role, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "role_create_error", err)
	}
	return c.JSON(http.StatusCreated, role)
}

func (h *RoleHTTP) ListRoles(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "role.list")

	items, err := h.Svc.List(ctx, c.QueryParam("name"))
	if err != nil {
		return fail(l, "role_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *RoleHTTP) GetRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "role.get")

	id, err := pathID(c)
	if err != nil {
		return err
	}
	role, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "role_get_error", err)
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHTTP) DeleteRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "role.delete")

	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return fail(l, "role_delete_error", err)
	}
	return c.JSON(http.StatusOK, res)
}
