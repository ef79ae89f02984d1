package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type DepartmentHTTP struct {
	Svc *service.DepartmentService
}

func (h *DepartmentHTTP) CreateDepartment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "department.create")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	var req transport.CreateDepartmentRequest
	if err := bind(c, &req); err != nil {
		l.Warn("department_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Create(ctx, t, req)
	if err != nil {
		return fail(l, "department_create_error", err)
	}

	l.Info("department_create_success", "department_id", item.ID, "college_id", t.CollegeID)
	return c.JSON(http.StatusCreated, item)
}

func (h *DepartmentHTTP) ListDepartments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "department.list")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	items, err := h.Svc.List(ctx, t, c.QueryParam("name"))
	if err != nil {
		return fail(l, "department_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *DepartmentHTTP) GetDepartment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "department.get")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := h.Svc.Get(ctx, t, id)
	if err != nil {
		return fail(l, "department_get_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *DepartmentHTTP) UpdateDepartment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "department.update")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.UpdateDepartmentRequest
	if err := bind(c, &req); err != nil {
		l.Warn("department_update_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Update(ctx, t, id, req)
	if err != nil {
		return fail(l, "department_update_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *DepartmentHTTP) DeleteDepartment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "department.delete")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.Svc.Delete(ctx, t, id)
	if err != nil {
		return fail(l, "department_delete_error", err)
	}

	l.Info("department_delete_success", "department_id", id, "college_id", t.CollegeID)
	return c.JSON(http.StatusOK, res)
}
