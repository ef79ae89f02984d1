package repo

import (
	"context"

	"github.com/Skotchmaster/campus_admin/internal/models"
)

func (r *GormRepo) CreateFaculty(ctx context.Context, f *models.Faculty) error {
	return r.create(ctx, f)
}

func (r *GormRepo) GetFaculty(ctx context.Context, collegeID, id uint) (*models.Faculty, error) {
	return firstInCollege[models.Faculty](ctx, r.DB, collegeID, id)
}

func (r *GormRepo) ListFaculties(ctx context.Context, collegeID uint, name string) ([]models.Faculty, error) {
	return listInCollege[models.Faculty](ctx, r.DB, collegeID, name)
}

func (r *GormRepo) SaveFaculty(ctx context.Context, f *models.Faculty) error {
	return r.save(ctx, f)
}

func (r *GormRepo) DeleteFaculty(ctx context.Context, collegeID, id uint) error {
	return deleteInCollege[models.Faculty](ctx, r.DB, collegeID, id)
}

func (r *GormRepo) FacultyCoordinates(ctx context.Context, facultyID uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&models.Timetable{}).
		Where("class_coordinator_id = ?", facultyID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
