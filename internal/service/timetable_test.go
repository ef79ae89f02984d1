package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/testutil"
	"github.com/Skotchmaster/campus_admin/internal/transport"
)

type timetableFixture struct {
	env    *testEnv
	svc    *TimetableService
	tenant Tenant
	other  Tenant
	dep    *models.Department
	dep2   *models.Department
	coord  *models.Faculty
	// rows owned by the other college
	foreignDep   *models.Department
	foreignCoord *models.Faculty
}

func newTimetableFixture(t *testing.T) *timetableFixture {
	t.Helper()
	env := newTestEnv(t)

	a := testutil.College(t, env.DB, "alpha")
	b := testutil.College(t, env.DB, "beta")
	dep := testutil.Department(t, env.DB, a.ID, "CS")
	dep2 := testutil.Department(t, env.DB, a.ID, "EE")
	fdep := testutil.Department(t, env.DB, b.ID, "Bio")

	return &timetableFixture{
		env:          env,
		svc:          &TimetableService{Repo: env.Repo, Events: env.Events},
		tenant:       Tenant{CollegeID: a.ID},
		other:        Tenant{CollegeID: b.ID},
		dep:          dep,
		dep2:         dep2,
		coord:        testutil.Faculty(t, env.DB, dep, "Ada"),
		foreignDep:   fdep,
		foreignCoord: testutil.Faculty(t, env.DB, fdep, "Darwin"),
	}
}

func (f *timetableFixture) req(year string, sem int) transport.CreateTimetableRequest {
	return transport.CreateTimetableRequest{
		DepartmentID:       f.dep.ID,
		ClassCoordinatorID: f.coord.ID,
		AcademicYear:       year,
		Semester:           sem,
	}
}

func TestTimetableService_Create(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	tt, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	require.NoError(t, err)
	assert.Equal(t, f.tenant.CollegeID, tt.CollegeID)
	require.NotNil(t, tt.Department)
	require.NotNil(t, tt.ClassCoordinator)
	assert.Equal(t, "CS", tt.Department.Name)
	assert.Equal(t, "Ada", tt.ClassCoordinator.Name)
	assert.Equal(t, []string{"timetable_created"}, f.env.Events.Types())
}

func TestTimetableService_Create_Duplicate(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	requireKind(t, err, ErrConflict, "Timetable for this department, academic year and semester already exists")

	var n int64
	require.NoError(t, f.env.DB.Model(&models.Timetable{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestTimetableService_Create_MissingReferences(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	req := f.req("2024-2025", 1)
	req.DepartmentID = 9999
	_, err := f.svc.Create(ctx, f.tenant, req)
	requireKind(t, err, ErrNotFound, "Department not found")

	req = f.req("2024-2025", 1)
	req.ClassCoordinatorID = 9999
	_, err = f.svc.Create(ctx, f.tenant, req)
	requireKind(t, err, ErrNotFound, "Class coordinator not found")
}

func TestTimetableService_Create_ForeignReferences(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	req := f.req("2024-2025", 1)
	req.DepartmentID = f.foreignDep.ID
	_, err := f.svc.Create(ctx, f.tenant, req)
	requireKind(t, err, ErrNotFound, "Department not found")

	req = f.req("2024-2025", 1)
	req.ClassCoordinatorID = f.foreignCoord.ID
	_, err = f.svc.Create(ctx, f.tenant, req)
	requireKind(t, err, ErrNotFound, "Class coordinator not found")
}

func TestTimetableService_Create_InvalidSemester(t *testing.T) {
	f := newTimetableFixture(t)

	_, err := f.svc.Create(context.Background(), f.tenant, f.req("2024-2025", 9))
	require.ErrorIs(t, err, ErrValidation)
}

func TestTimetableService_CrossTenantIsNotFound(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	tt, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, f.other, tt.ID)
	requireKind(t, err, ErrNotFound, "Timetable not found")

	_, err = f.svc.Get(ctx, f.tenant, tt.ID+100)
	requireKind(t, err, ErrNotFound, "Timetable not found")

	_, err = f.svc.Update(ctx, f.other, tt.ID, transport.UpdateTimetableRequest{Semester: ptr(2)})
	requireKind(t, err, ErrNotFound, "Timetable not found")

	_, err = f.svc.Delete(ctx, f.other, tt.ID)
	requireKind(t, err, ErrNotFound, "Timetable not found")

	list, err := f.svc.List(ctx, f.other)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTimetableService_Update_SemesterOnly(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	tt, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	require.NoError(t, err)

	got, err := f.svc.Update(ctx, f.tenant, tt.ID, transport.UpdateTimetableRequest{Semester: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, models.Semester(2), got.Semester)
	assert.Equal(t, "2024-2025", got.AcademicYear)
	assert.Equal(t, f.dep.ID, got.DepartmentID)
	assert.Equal(t, f.coord.ID, got.ClassCoordinatorID)
	require.NotNil(t, got.Department)
	assert.Equal(t, "CS", got.Department.Name)
}

func TestTimetableService_Update_UnchangedTripleIsNotConflict(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	tt, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.tenant, tt.ID, transport.UpdateTimetableRequest{
		AcademicYear: ptr("2024-2025"),
		Semester:     ptr(1),
	})
	require.NoError(t, err)
}

func TestTimetableService_Update_Collision(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 2))
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.tenant, second.ID, transport.UpdateTimetableRequest{Semester: ptr(1)})
	requireKind(t, err, ErrConflict, "Timetable for this department, academic year and semester already exists")

	got, err := f.svc.Get(ctx, f.tenant, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Semester(2), got.Semester)

	moved, err := f.svc.Update(ctx, f.tenant, second.ID, transport.UpdateTimetableRequest{DepartmentID: ptr(f.dep2.ID), Semester: ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, f.dep2.ID, moved.DepartmentID)
	assert.Equal(t, "EE", moved.Department.Name)
}

func TestTimetableService_Update_ForeignReferences(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	tt, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.tenant, tt.ID, transport.UpdateTimetableRequest{DepartmentID: ptr(f.foreignDep.ID)})
	requireKind(t, err, ErrNotFound, "Department not found")

	_, err = f.svc.Update(ctx, f.tenant, tt.ID, transport.UpdateTimetableRequest{ClassCoordinatorID: ptr(f.foreignCoord.ID)})
	requireKind(t, err, ErrNotFound, "Class coordinator not found")
}

func TestTimetableService_Delete(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	tt, err := f.svc.Create(ctx, f.tenant, f.req("2024-2025", 1))
	require.NoError(t, err)

	res, err := f.svc.Delete(ctx, f.tenant, tt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Timetable deleted successfully", res.Message)
	data, ok := res.Data.(*models.Timetable)
	require.True(t, ok)
	assert.Equal(t, tt.ID, data.ID)

	_, err = f.svc.Get(ctx, f.tenant, tt.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"timetable_created", "timetable_deleted"}, f.env.Events.Types())
}

func (f *timetableFixture) countTriple(t *testing.T, year string, sem int) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.env.DB.Model(&models.Timetable{}).
		Where("department_id = ? AND academic_year = ? AND semester = ?", f.dep.ID, year, sem).
		Count(&n).Error)
	return n
}

func TestTimetableService_Create_LostRaceIsConflict(t *testing.T) {
	f := newTimetableFixture(t)
	insertOnWrite(t, f.env.DB, false, "timetables",
		"INSERT INTO timetables (college_id, department_id, class_coordinator_id, academic_year, semester, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		f.tenant.CollegeID, f.dep.ID, f.coord.ID, "2030-2031", 5, time.Now(), time.Now())

	_, err := f.svc.Create(context.Background(), f.tenant, f.req("2030-2031", 5))
	requireKind(t, err, ErrConflict, "Timetable for this department, academic year and semester already exists")

	// The racing row was written in the same transaction and is rolled back with it.
	assert.Zero(t, f.countTriple(t, "2030-2031", 5))
	assert.NotContains(t, f.env.Events.Types(), "timetable_created")
}

func TestTimetableService_Update_LostRaceIsConflict(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()
	tt, err := f.svc.Create(ctx, f.tenant, f.req("2030-2031", 1))
	require.NoError(t, err)

	insertOnWrite(t, f.env.DB, true, "timetables",
		"INSERT INTO timetables (college_id, department_id, class_coordinator_id, academic_year, semester, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		f.tenant.CollegeID, f.dep.ID, f.coord.ID, "2030-2031", 2, time.Now(), time.Now())

	_, err = f.svc.Update(ctx, f.tenant, tt.ID, transport.UpdateTimetableRequest{Semester: ptr(2)})
	requireKind(t, err, ErrConflict, "Timetable for this department, academic year and semester already exists")

	assert.Zero(t, f.countTriple(t, "2030-2031", 2))
	got, err := f.svc.Get(ctx, f.tenant, tt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Semester(1), got.Semester)
}
