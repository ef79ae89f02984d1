package loggingmw

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &m))
	return m
}

func TestRequestLogger_InjectsLoggerAndLogsStatus(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(logging.NewWithWriter(&buf, "info")))

	var fromCtx bool
	e.GET("/college/:id", func(c echo.Context) error {
		fromCtx = logging.FromContext(c.Request().Context()) != nil
		c.Set("auth.user_id", uint(7))
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/college/3", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.True(t, fromCtx)
	require.Equal(t, "rid-1", rec.Header().Get(echo.HeaderXRequestID))

	m := lastLine(t, &buf)
	require.Equal(t, "INFO", m["level"])
	require.Equal(t, "/college/:id", m["path"])
	require.Equal(t, "/college/3", m["url"])
	require.Equal(t, "rid-1", m["request_id"])
	require.EqualValues(t, 200, m["status"])
	require.EqualValues(t, 7, m["user_id"])
}

func TestRequestLogger_RendersHTTPError(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(logging.NewWithWriter(&buf, "info")))
	e.GET("/x", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "College not found")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "College not found")

	m := lastLine(t, &buf)
	require.Equal(t, "WARN", m["level"])
	require.EqualValues(t, 404, m["status"])
	require.Contains(t, m["error"], "College not found")
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	cases := []struct {
		name    string
		handler echo.HandlerFunc
		status  int
		level   string
	}{
		{"ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, 200, "INFO"},
		{"written 4xx", func(c echo.Context) error { return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad"}) }, 400, "WARN"},
		{"returned 401", func(c echo.Context) error { return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated") }, 401, "WARN"},
		{"returned 500", func(c echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError, "internal server error") }, 500, "ERROR"},
		{"plain error", func(c echo.Context) error { return errors.New("boom") }, 500, "ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(RequestLogger(logging.NewWithWriter(&buf, "info")))
			e.GET("/x", tc.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
			require.Equal(t, tc.status, rec.Code)

			m := lastLine(t, &buf)
			require.Equal(t, tc.level, m["level"])
			require.EqualValues(t, tc.status, m["status"])
		})
	}
}
