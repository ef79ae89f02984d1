package testutil

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Skotchmaster/campus_admin/internal/models"
	pkgdb "github.com/Skotchmaster/campus_admin/pkg/db"
)

// NewDB opens a fresh migrated SQLite database under t.TempDir with foreign keys enforced.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := pkgdb.SQLiteDSN(filepath.Join(t.TempDir(), "campus.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.Migrate(db))
	return db
}

func College(t *testing.T, db *gorm.DB, name string) *models.College {
	t.Helper()
	c := &models.College{Name: name, Address: name + " street", Contact: "office@" + name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func Department(t *testing.T, db *gorm.DB, collegeID uint, name string) *models.Department {
	t.Helper()
	d := &models.Department{Name: name, Year: 1, CollegeID: collegeID}
	require.NoError(t, db.Create(d).Error)
	return d
}

func Faculty(t *testing.T, db *gorm.DB, dep *models.Department, name string) *models.Faculty {
	t.Helper()
	f := &models.Faculty{Name: name, DepartmentID: dep.ID, CollegeID: dep.CollegeID}
	require.NoError(t, db.Create(f).Error)
	return f
}

func Timetable(t *testing.T, db *gorm.DB, dep *models.Department, coord *models.Faculty, year string, sem models.Semester) *models.Timetable {
	t.Helper()
	tt := &models.Timetable{
		CollegeID:          dep.CollegeID,
		DepartmentID:       dep.ID,
		ClassCoordinatorID: coord.ID,
		AcademicYear:       year,
		Semester:           sem,
	}
	require.NoError(t, db.Create(tt).Error)
	return tt
}
