package repo

import (
	"context"

	"github.com/Skotchmaster/campus_admin/internal/models"
)

func (r *GormRepo) CreateClassroom(ctx context.Context, c *models.Classroom) error {
	return r.create(ctx, c)
}

func (r *GormRepo) GetClassroom(ctx context.Context, collegeID, id uint) (*models.Classroom, error) {
	return firstInCollege[models.Classroom](ctx, r.DB, collegeID, id)
}

// ListClassrooms filters by building name prefix; classrooms have no name column.
func (r *GormRepo) ListClassrooms(ctx context.Context, collegeID uint, building string) ([]models.Classroom, error) {
	items := []models.Classroom{}
	err := r.DB.WithContext(ctx).
		Scopes(InCollege(collegeID), NamePrefix("building_name", building)).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) SaveClassroom(ctx context.Context, c *models.Classroom) error {
	return r.save(ctx, c)
}

func (r *GormRepo) DeleteClassroom(ctx context.Context, collegeID, id uint) error {
	return deleteInCollege[models.Classroom](ctx, r.DB, collegeID, id)
}
