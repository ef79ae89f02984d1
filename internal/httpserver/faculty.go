package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type FacultyHTTP struct {
	Svc *service.FacultyService
}

func (h *FacultyHTTP) CreateFaculty(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "faculty.create")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	var req transport.CreateFacultyRequest
	if err := bind(c, &req); err != nil {
		l.Warn("faculty_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Create(ctx, t, req)
	if err != nil {
		return fail(l, "faculty_create_error", err)
	}

	l.Info("faculty_create_success", "faculty_id", item.ID, "college_id", t.CollegeID)
	return c.JSON(http.StatusCreated, item)
}

func (h *FacultyHTTP) ListFaculty(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "faculty.list")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	items, err := h.Svc.List(ctx, t, c.QueryParam("name"))
	if err != nil {
		return fail(l, "faculty_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *FacultyHTTP) GetFaculty(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "faculty.get")

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
		return fail(l, "faculty_get_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *FacultyHTTP) UpdateFaculty(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "faculty.update")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.UpdateFacultyRequest
	if err := bind(c, &req); err != nil {
		l.Warn("faculty_update_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Update(ctx, t, id, req)
	if err != nil {
		return fail(l, "faculty_update_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *FacultyHTTP) DeleteFaculty(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "faculty.delete")

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
		return fail(l, "faculty_delete_error", err)
	}

	l.Info("faculty_delete_success", "faculty_id", id, "college_id", t.CollegeID)
	return c.JSON(http.StatusOK, res)
}
