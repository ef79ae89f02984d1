package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/campus_admin/internal/metrics"
	authmw "github.com/Skotchmaster/campus_admin/internal/middleware/auth"
	loggingmw "github.com/Skotchmaster/campus_admin/pkg/middleware/logging"
)

type Deps struct {
	Auth       *AuthHTTP
	College    *CollegeHTTP
	Role       *RoleHTTP
	Department *DepartmentHTTP
	Faculty    *FacultyHTTP
	Subject    *SubjectHTTP
	Classroom  *ClassroomHTTP
	Timetable  *TimetableHTTP

	Gate    *authmw.Gate
	Metrics *metrics.Metrics

	// Ready reports whether dependencies (the database) are reachable.
	Ready func(ctx context.Context) error

	// LoginRateLimit is the number of login attempts allowed per client IP per minute. Zero disables it.
	LoginRateLimit int
	CORSOrigins    []string
}

func NewEcho(logger *slog.Logger, d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	if d.Metrics != nil {
		e.Use(d.Metrics.Middleware())
	}
	if len(d.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: d.CORSOrigins,
			AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
		}))
	}
	e.Use(middleware.Secure())

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	if d.Metrics != nil {
		e.GET("/metrics", d.Metrics.Handler())
	}

	requireAuth := d.Gate.RequireAuth

	auth := e.Group("/auth")
	if d.LoginRateLimit > 0 {
		limiter := httprate.Limit(d.LoginRateLimit, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP))
		auth.POST("/login", d.Auth.Login, echo.WrapMiddleware(limiter))
	} else {
		auth.POST("/login", d.Auth.Login)
	}
	auth.POST("/logout", d.Auth.Logout, requireAuth)

	user := e.Group("/user")
	user.POST("", d.Auth.Register)
	user.GET("/me", d.Auth.Me, requireAuth)
	user.PUT("/me/password", d.Auth.ChangePassword, requireAuth)

	college := e.Group("/college")
	college.GET("/public", d.College.ListColleges)
	college.GET("/search", d.College.SearchColleges, requireAuth)
	college.POST("", d.College.CreateCollege, requireAuth)
	college.GET("", d.College.ListColleges, requireAuth)
	college.GET("/:id", d.College.GetCollege, requireAuth)
	college.PUT("/:id", d.College.UpdateCollege, requireAuth)
	college.DELETE("/:id", d.College.DeleteCollege, requireAuth)

	role := e.Group("/role", requireAuth)
	role.POST("", d.Role.CreateRole)
	role.GET("", d.Role.ListRoles)
	role.GET("/:id", d.Role.GetRole)
	role.DELETE("/:id", d.Role.DeleteRole)

	tenant := []echo.MiddlewareFunc{requireAuth, d.Gate.RequireTenant}

	department := e.Group("/department", tenant...)
	department.POST("", d.Department.CreateDepartment)
	department.GET("", d.Department.ListDepartments)
	department.GET("/:id", d.Department.GetDepartment)
	department.PUT("/:id", d.Department.UpdateDepartment)
	department.DELETE("/:id", d.Department.DeleteDepartment)

	faculty := e.Group("/faculty", tenant...)
	faculty.POST("", d.Faculty.CreateFaculty)
	faculty.GET("", d.Faculty.ListFaculty)
	faculty.GET("/:id", d.Faculty.GetFaculty)
	faculty.PUT("/:id", d.Faculty.UpdateFaculty)
	faculty.DELETE("/:id", d.Faculty.DeleteFaculty)

	subject := e.Group("/subject", tenant...)
	subject.POST("", d.Subject.CreateSubject)
	subject.GET("", d.Subject.ListSubjects)
	subject.GET("/:id", d.Subject.GetSubject)
	subject.PUT("/:id", d.Subject.UpdateSubject)
	subject.DELETE("/:id", d.Subject.DeleteSubject)

	classroom := e.Group("/classroom", tenant...)
	classroom.POST("", d.Classroom.CreateClassroom)
	classroom.GET("", d.Classroom.ListClassrooms)
	classroom.GET("/:id", d.Classroom.GetClassroom)
	classroom.PUT("/:id", d.Classroom.UpdateClassroom)
	classroom.DELETE("/:id", d.Classroom.DeleteClassroom)

	timetable := e.Group("/timetable", tenant...)
	timetable.POST("", d.Timetable.CreateTimetable)
	timetable.GET("", d.Timetable.ListTimetables)
	timetable.GET("/:id", d.Timetable.GetTimetable)
	timetable.PUT("/:id", d.Timetable.UpdateTimetable)
	timetable.DELETE("/:id", d.Timetable.DeleteTimetable)
}
