package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type SubjectHTTP struct {
	Svc *service.SubjectService
}

func (h *SubjectHTTP) CreateSubject(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "subject.create")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	var req transport.CreateSubjectRequest
	if err := bind(c, &req); err != nil {
		l.Warn("subject_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Create(ctx, t, req)
	if err != nil {
		return fail(l, "subject_create_error", err)
	}

	l.Info("subject_create_success", "subject_id", item.ID, "college_id", t.CollegeID)
	return c.JSON(http.StatusCreated, item)
}

func (h *SubjectHTTP) ListSubjects(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "subject.list")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	items, err := h.Svc.List(ctx, t, c.QueryParam("name"))
	if err != nil {
		return fail(l, "subject_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SubjectHTTP) GetSubject(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "subject.get")

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
		return fail(l, "subject_get_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *SubjectHTTP) UpdateSubject(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "subject.update")

	t, err := tenant(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.UpdateSubjectRequest
	if err := bind(c, &req); err != nil {
		l.Warn("subject_update_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	item, err := h.Svc.Update(ctx, t, id, req)
	if err != nil {
		return fail(l, "subject_update_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *SubjectHTTP) DeleteSubject(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "subject.delete")

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
		return fail(l, "subject_delete_error", err)
	}

	l.Info("subject_delete_success", "subject_id", id, "college_id", t.CollegeID)
	return c.JSON(http.StatusOK, res)
}
