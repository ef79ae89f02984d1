package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type TimetableHTTP struct {
	Svc *service.TimetableService
}

func (h *TimetableHTTP) CreateTimetable(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "timetable.create")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	var req transport.CreateTimetableRequest
	if err := bind(c, &req); err != nil {
		l.Warn("timetable_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Create(ctx, t, req)
	if err != nil {
		return fail(l, "timetable_create_error", err)
	}

	l.Info("timetable_create_success", "timetable_id", item.ID, "college_id", t.CollegeID)
	return c.JSON(http.StatusCreated, item)
}

func (h *TimetableHTTP) ListTimetables(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "timetable.list")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	items, err := h.Svc.List(ctx, t)
	if err != nil {
		return fail(l, "timetable_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TimetableHTTP) GetTimetable(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "timetable.get")

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
		return fail(l, "timetable_get_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *TimetableHTTP) UpdateTimetable(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "timetable.update")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.UpdateTimetableRequest
	if err := bind(c, &req); err != nil {
		l.Warn("timetable_update_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Update(ctx, t, id, req)
	if err != nil {
		return fail(l, "timetable_update_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *TimetableHTTP) DeleteTimetable(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "timetable.delete")

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
		return fail(l, "timetable_delete_error", err)
	}

	l.Info("timetable_delete_success", "timetable_id", id, "college_id", t.CollegeID)
	return c.JSON(http.StatusOK, res)
}
