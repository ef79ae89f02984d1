package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/campus_admin/internal/events"
	"github.com/Skotchmaster/campus_admin/internal/httpserver"
	"github.com/Skotchmaster/campus_admin/internal/metrics"
	authmw "github.com/Skotchmaster/campus_admin/internal/middleware/auth"
	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/search"
	"github.com/Skotchmaster/campus_admin/internal/service"
	"github.com/Skotchmaster/campus_admin/pkg/config"
	"github.com/Skotchmaster/campus_admin/pkg/db"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
	"github.com/Skotchmaster/campus_admin/pkg/tokens"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logging.New("error").Error("config_error", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	ctx := logging.IntoContext(context.Background(), logger)

	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Error("db_open_error", "error", err)
		os.Exit(1)
	}
	if cfg.AutoMigrate {
		if err := models.Migrate(gdb); err != nil {
			logger.Error("db_migrate_error", "error", err)
			os.Exit(1)
		}
	}

	issuer, err := tokens.NewIssuer([]byte(cfg.JWTSecret), cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		logger.Error("token_issuer_error", "error", err)
		os.Exit(1)
	}

	var pub events.Publisher = events.Nop{}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		pub = events.NewKafkaPublisher(brokers)
		logger.Info("kafka_enabled", "brokers", brokers)
	}

	var index service.CollegeIndex
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("search_disabled", "reason", "elasticsearch unreachable", "error", err)
		} else {
			index = &search.CollegeIndex{ES: es, Index: cfg.ESIndex}
		}
	}

	r := &repo.GormRepo{DB: gdb}
	m := metrics.New()
	authSvc := &service.AuthService{Repo: r, Tokens: issuer, Events: pub}

	e := httpserver.NewEcho(logger, &httpserver.Deps{
		Auth:       &httpserver.AuthHTTP{Svc: authSvc},
		College:    &httpserver.CollegeHTTP{Svc: &service.CollegeService{Repo: r, Events: pub, Index: index}},
		Role:       &httpserver.RoleHTTP{Svc: &service.RoleService{Repo: r}},
		Department: &httpserver.DepartmentHTTP{Svc: &service.DepartmentService{Repo: r}},
		Faculty:    &httpserver.FacultyHTTP{Svc: &service.FacultyService{Repo: r}},
		Subject:    &httpserver.SubjectHTTP{Svc: &service.SubjectService{Repo: r}},
		Classroom:  &httpserver.ClassroomHTTP{Svc: &service.ClassroomService{Repo: r}},
		Timetable:  &httpserver.TimetableHTTP{Svc: &service.TimetableService{Repo: r, Events: pub}},
		Gate:       &authmw.Gate{Auth: authSvc, Metrics: m},
		Metrics:    m,
		Ready: func(ctx context.Context) error {
			return db.Ping(ctx, gdb)
		},
		LoginRateLimit: cfg.LoginRateLimit,
		CORSOrigins:    cfg.AllowedOrigins(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	go func() {
		<-quit
		logger.Warn("force exit")
		os.Exit(1)
	}()

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}

	db.Close(gdb)

	if err := pub.Close(); err != nil {
		logger.Error("kafka_close_error", "error", err)
	}

	logger.Info("shutdown complete")
}
