package repo

import (
	"context"

	"github.com/Skotchmaster/campus_admin/internal/models"
)

func (r *GormRepo) CreateSubject(ctx context.Context, s *models.Subject) error {
	return r.create(ctx, s)
}

func (r *GormRepo) GetSubject(ctx context.Context, collegeID, id uint) (*models.Subject, error) {
	return firstInCollege[models.Subject](ctx, r.DB, collegeID, id)
}

func (r *GormRepo) ListSubjects(ctx context.Context, collegeID uint, name string) ([]models.Subject, error) {
	return listInCollege[models.Subject](ctx, r.DB, collegeID, name)
}

func (r *GormRepo) SaveSubject(ctx context.Context, s *models.Subject) error {
	return r.save(ctx, s)
}

// ReassignSubjects moves every subject taught by the faculty to its new department.
func (r *GormRepo) ReassignSubjects(ctx context.Context, facultyID, departmentID uint) error {
	return r.DB.WithContext(ctx).
		Model(&models.Subject{}).
		Where("faculty_id = ?", facultyID).
		Update("department_id", departmentID).Error
}

func (r *GormRepo) DeleteSubject(ctx context.Context, collegeID, id uint) error {
	return deleteInCollege[models.Subject](ctx, r.DB, collegeID, id)
}
