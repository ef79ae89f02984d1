package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/internal/util"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

type CollegeHTTP struct {
	Svc *service.CollegeService
}

func (h *CollegeHTTP) CreateCollege(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "college.create")

	var req transport.CreateCollegeRequest
	if err := bind(c, &req); err != nil {
		l.Warn("college_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	college, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "college_create_error", err)
	}

	l.Info("college_create_success", "college_id", college.ID)
	return c.JSON(http.StatusCreated, college)
}

// ListColleges serves both the authenticated and the public listing.
func (h *CollegeHTTP) ListColleges(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "college.list")

	items, err := h.Svc.List(ctx, c.QueryParam("name"))
	if err != nil {
		return fail(l, "college_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CollegeHTTP) SearchColleges(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "college.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	page, offset, limit := util.Calculate(
		util.ParseIntDefault(c.QueryParam("page"), 1),
		util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize),
	)

	total, items, err := h.Svc.Search(ctx, q, offset, limit)
	if err != nil {
		return fail(l, "college_search_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewPage(items, page, offset, limit, total))
}

func (h *CollegeHTTP) GetCollege(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "college.get")

	id, err := pathID(c)
	if err != nil {
		return err
	}
	college, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "college_get_error", err)
	}
	return c.JSON(http.StatusOK, college)
}

func (h *CollegeHTTP) UpdateCollege(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "college.update")

	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.UpdateCollegeRequest
	if err := bind(c, &req); err != nil {
		l.Warn("college_update_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	college, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "college_update_error", err)
	}
	return c.JSON(http.StatusOK, college)
}

func (h *CollegeHTTP) DeleteCollege(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "college.delete")

	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return fail(l, "college_delete_error", err)
	}

	l.Info("college_delete_success", "college_id", id)
	return c.JSON(http.StatusOK, res)
}
