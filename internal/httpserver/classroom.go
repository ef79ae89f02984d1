package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type ClassroomHTTP struct {
	Svc *service.ClassroomService
}

func (h *ClassroomHTTP) CreateClassroom(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "classroom.create")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	var req transport.CreateClassroomRequest
	if err := bind(c, &req); err != nil {
		l.Warn("classroom_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Create(ctx, t, req)
	if err != nil {
		return fail(l, "classroom_create_error", err)
	}

	l.Info("classroom_create_success", "classroom_id", item.ID, "college_id", t.CollegeID)
	return c.JSON(http.StatusCreated, item)
}

func (h *ClassroomHTTP) ListClassrooms(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "classroom.list")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	items, err := h.Svc.List(ctx, t, c.QueryParam("building"))
	if err != nil {
		return fail(l, "classroom_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ClassroomHTTP) GetClassroom(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "classroom.get")

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
		return fail(l, "classroom_get_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ClassroomHTTP) UpdateClassroom(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "classroom.update")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.UpdateClassroomRequest
	if err := bind(c, &req); err != nil {
		l.Warn("classroom_update_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Update(ctx, t, id, req)
	if err != nil {
		return fail(l, "classroom_update_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ClassroomHTTP) DeleteClassroom(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "classroom.delete")

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
		return fail(l, "classroom_delete_error", err)
	}

	l.Info("classroom_delete_success", "classroom_id", id, "college_id", t.CollegeID)
	return c.JSON(http.StatusOK, res)
}
