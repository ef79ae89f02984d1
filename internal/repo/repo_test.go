package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/testutil"
)

func newTestRepo(t *testing.T) (*GormRepo, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return &GormRepo{DB: db}, db
}

func TestGetDepartment_ScopedToCollege(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	a := testutil.College(t, db, "alpha")
	b := testutil.College(t, db, "beta")
	dep := testutil.Department(t, db, a.ID, "Physics")

	got, err := r.GetDepartment(ctx, a.ID, dep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.Name)

	_, err = r.GetDepartment(ctx, b.ID, dep.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = r.GetDepartment(ctx, a.ID, dep.ID+100)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListDepartments_NamePrefix(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	a := testutil.College(t, db, "alpha")
	b := testutil.College(t, db, "beta")
	testutil.Department(t, db, a.ID, "  Mechanical")
	testutil.Department(t, db, a.ID, "Mathematics")
	testutil.Department(t, db, a.ID, "Civil")
	testutil.Department(t, db, a.ID, "M%_odd")
	testutil.Department(t, db, b.ID, "Mining")

	all, err := r.ListDepartments(ctx, a.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	m, err := r.ListDepartments(ctx, a.ID, "  mE ")
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, "  Mechanical", m[0].Name)

	ms, err := r.ListDepartments(ctx, a.ID, "m")
	require.NoError(t, err)
	assert.Len(t, ms, 3)

	literal, err := r.ListDepartments(ctx, a.ID, "m%")
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, "M%_odd", literal[0].Name)
}

func TestDeleteDepartment_OtherCollegeIsNotFound(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	a := testutil.College(t, db, "alpha")
	b := testutil.College(t, db, "beta")
	dep := testutil.Department(t, db, a.ID, "Physics")

	require.ErrorIs(t, r.DeleteDepartment(ctx, b.ID, dep.ID), gorm.ErrRecordNotFound)
	require.NoError(t, r.DeleteDepartment(ctx, a.ID, dep.ID))
	require.ErrorIs(t, r.DeleteDepartment(ctx, a.ID, dep.ID), gorm.ErrRecordNotFound)
}

func TestCreateCollege_DuplicateName(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateCollege(ctx, &models.College{Name: "MIT"}))
	err := r.CreateCollege(ctx, &models.College{Name: "MIT"})
	require.ErrorIs(t, err, ErrDuplicate)

	taken, err := r.CollegeNameTaken(ctx, "MIT", 0)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestCreateTimetable_DuplicateTripleCaughtByStorage(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	c := testutil.College(t, db, "alpha")
	dep := testutil.Department(t, db, c.ID, "CS")
	f := testutil.Faculty(t, db, dep, "Ada")
	testutil.Timetable(t, db, dep, f, "2024-2025", 3)

	err := r.CreateTimetable(ctx, &models.Timetable{
		CollegeID:          c.ID,
		DepartmentID:       dep.ID,
		ClassCoordinatorID: f.ID,
		AcademicYear:       "2024-2025",
		Semester:           3,
	})
	require.ErrorIs(t, err, ErrDuplicate)

	err = r.CreateTimetable(ctx, &models.Timetable{
		CollegeID:          c.ID,
		DepartmentID:       dep.ID,
		ClassCoordinatorID: f.ID,
		AcademicYear:       "2024-2025",
		Semester:           4,
	})
	require.NoError(t, err)
}

func TestTimetableTaken_ExcludesSelf(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	c := testutil.College(t, db, "alpha")
	dep := testutil.Department(t, db, c.ID, "CS")
	f := testutil.Faculty(t, db, dep, "Ada")
	tt := testutil.Timetable(t, db, dep, f, "2024-2025", 1)

	taken, err := r.TimetableTaken(ctx, dep.ID, "2024-2025", 1, 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = r.TimetableTaken(ctx, dep.ID, "2024-2025", 1, tt.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestGetTimetable_PreloadsReferences(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	c := testutil.College(t, db, "alpha")
	dep := testutil.Department(t, db, c.ID, "CS")
	f := testutil.Faculty(t, db, dep, "Ada")
	tt := testutil.Timetable(t, db, dep, f, "2024-2025", 2)

	got, err := r.GetTimetable(ctx, c.ID, tt.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Department)
	require.NotNil(t, got.ClassCoordinator)
	assert.Equal(t, "CS", got.Department.Name)
	assert.Equal(t, "Ada", got.ClassCoordinator.Name)
}

func TestDeleteFaculty_RestrictedWhileCoordinating(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	c := testutil.College(t, db, "alpha")
	dep := testutil.Department(t, db, c.ID, "CS")
	f := testutil.Faculty(t, db, dep, "Ada")
	testutil.Timetable(t, db, dep, f, "2024-2025", 1)

	coordinates, err := r.FacultyCoordinates(ctx, f.ID)
	require.NoError(t, err)
	assert.True(t, coordinates)

	require.ErrorIs(t, r.DeleteFaculty(ctx, c.ID, f.ID), ErrReferenced)
}

func TestDeleteCollege_Cascades(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	c := testutil.College(t, db, "alpha")
	dep := testutil.Department(t, db, c.ID, "CS")
	f := testutil.Faculty(t, db, dep, "Ada")
	testutil.Timetable(t, db, dep, f, "2024-2025", 1)
	require.NoError(t, db.Create(&models.Classroom{BuildingName: "A", RoomNo: "101", DepartmentID: dep.ID, CollegeID: c.ID}).Error)
	require.NoError(t, db.Create(&models.Subject{Name: "Algebra", FacultyID: f.ID, DepartmentID: dep.ID, CollegeID: c.ID}).Error)

	u := &models.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x", CollegeID: &c.ID}
	require.NoError(t, r.CreateUser(ctx, u))

	require.NoError(t, r.DeleteCollege(ctx, c.ID))

	for _, m := range []any{&models.Department{}, &models.Faculty{}, &models.Subject{}, &models.Classroom{}, &models.Timetable{}} {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Zero(t, n, "%T", m)
	}

	got, err := r.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CollegeID)

	require.ErrorIs(t, r.DeleteCollege(ctx, c.ID), gorm.ErrRecordNotFound)
}

func TestDeleteRole_NullsUserRole(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	role := &models.Role{RoleName: "admin"}
	require.NoError(t, r.CreateRole(ctx, role))
	u := &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x", RoleID: &role.ID}
	require.NoError(t, r.CreateUser(ctx, u))

	require.NoError(t, r.DeleteRole(ctx, role.ID))

	got, err := r.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RoleID)
}

func TestUserTokenVersion(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	u := &models.User{Username: "carol", Email: "carol@example.com", PasswordHash: "old"}
	require.NoError(t, r.CreateUser(ctx, u))

	got, err := r.UserByLogin(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, got.TokenVersion)

	require.NoError(t, r.BumpTokenVersion(ctx, u.ID))
	require.NoError(t, r.SetPassword(ctx, u.ID, "new"))

	got, err = r.UserByLogin(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, 2, got.TokenVersion)
	assert.Equal(t, "new", got.PasswordHash)

	require.ErrorIs(t, r.BumpTokenVersion(ctx, u.ID+50), gorm.ErrRecordNotFound)

	err = r.CreateUser(ctx, &models.User{Username: "carol", Email: "other@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()

	err := r.InTx(ctx, func(tx *GormRepo) error {
		require.NoError(t, tx.CreateCollege(ctx, &models.College{Name: "temp"}))
		return ErrDuplicate
	})
	require.ErrorIs(t, err, ErrDuplicate)

	var n int64
	require.NoError(t, db.Model(&models.College{}).Count(&n).Error)
	assert.Zero(t, n)
}
