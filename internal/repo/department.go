package repo

import (
	"context"

	"github.com/Skotchmaster/campus_admin/internal/models"
)

func (r *GormRepo) CreateDepartment(ctx context.Context, dep *models.Department) error {
	return r.create(ctx, dep)
}

func (r *GormRepo) GetDepartment(ctx context.Context, collegeID, id uint) (*models.Department, error) {
	return firstInCollege[models.Department](ctx, r.DB, collegeID, id)
}

func (r *GormRepo) ListDepartments(ctx context.Context, collegeID uint, name string) ([]models.Department, error) {
	return listInCollege[models.Department](ctx, r.DB, collegeID, name)
}

func (r *GormRepo) SaveDepartment(ctx context.Context, dep *models.Department) error {
	return r.save(ctx, dep)
}

func (r *GormRepo) DeleteDepartment(ctx context.Context, collegeID, id uint) error {
	return deleteInCollege[models.Department](ctx, r.DB, collegeID, id)
}
