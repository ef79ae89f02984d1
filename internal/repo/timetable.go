package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/campus_admin/internal/models"
)

func withRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Department").Preload("ClassCoordinator")
}

// CreateTimetable inserts tt. A concurrent insert of the same
// (department, academic year, semester) surfaces as ErrDuplicate.
func (r *GormRepo) CreateTimetable(ctx context.Context, tt *models.Timetable) error {
	return r.create(ctx, tt)
}

func (r *GormRepo) GetTimetable(ctx context.Context, collegeID, id uint) (*models.Timetable, error) {
	var tt models.Timetable
	err := r.DB.WithContext(ctx).
		Scopes(InCollege(collegeID), withRefs).
		First(&tt, id).Error
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

func (r *GormRepo) ListTimetables(ctx context.Context, collegeID uint) ([]models.Timetable, error) {
	items := []models.Timetable{}
	err := r.DB.WithContext(ctx).
		Scopes(InCollege(collegeID), withRefs).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// TimetableTaken reports whether a timetable other than excludeID already holds the triple.
// The check is not tenant scoped: department ids are globally unique, so the triple is too.
func (r *GormRepo) TimetableTaken(ctx context.Context, departmentID uint, academicYear string, semester models.Semester, excludeID uint) (bool, error) {
	q := r.DB.WithContext(ctx).
		Model(&models.Timetable{}).
		Where("department_id = ? AND academic_year = ? AND semester = ?", departmentID, academicYear, semester)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepo) SaveTimetable(ctx context.Context, tt *models.Timetable) error {
	return r.save(ctx, tt)
}

func (r *GormRepo) DeleteTimetable(ctx context.Context, collegeID, id uint) error {
	return deleteInCollege[models.Timetable](ctx, r.DB, collegeID, id)
}
