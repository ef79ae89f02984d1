package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/campus_admin/internal/events"
	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/testutil"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/tokens"
)

type testEnv struct {
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Events *events.Recorder
	Auth   *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	r := &repo.GormRepo{DB: db}
	rec := &events.Recorder{}

	iss, err := tokens.NewIssuer([]byte("test-jwt-secret"), "HS256", 15*time.Minute)
	require.NoError(t, err)

	return &testEnv{
		DB:     db,
		Repo:   r,
		Events: rec,
		Auth:   &AuthService{Repo: r, Tokens: iss, Events: rec},
	}
}

func (e *testEnv) register(t *testing.T, username string, collegeID *uint) *models.User {
	t.Helper()
	u, err := e.Auth.Register(context.Background(), transport.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password-" + username,
		CollegeID: collegeID,
	})
	require.NoError(t, err)
	return u
}

func requireKind(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var se *Error
	require.True(t, errors.As(err, &se), "expected *service.Error, got %T", err)
	require.Equal(t, msg, se.Msg)
}

func ptr[T any](v T) *T { return &v }

// insertOnWrite makes the next create (or update) of table first run stmt in the same
// transaction, so the write loses a race that the service's pre-check could not see.
func insertOnWrite(t *testing.T, db *gorm.DB, update bool, table, stmt string, args ...any) {
	t.Helper()
	fired := false
	fn := func(tx *gorm.DB) {
		if fired || tx.Statement.Schema == nil || tx.Statement.Schema.Table != table {
			return
		}
		fired = true
		if err := tx.Session(&gorm.Session{NewDB: true}).Exec(stmt, args...).Error; err != nil {
			_ = tx.AddError(err)
		}
	}

	var err error
	if update {
		err = db.Callback().Update().Before("gorm:update").Register("test:insert_on_update", fn)
	} else {
		err = db.Callback().Create().Before("gorm:create").Register("test:insert_on_create", fn)
	}
	require.NoError(t, err)
}
