package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/campus_admin/internal/models"
)

func (r *GormRepo) CreateRole(ctx context.Context, role *models.Role) error {
	return r.create(ctx, role)
}

func (r *GormRepo) GetRole(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.DB.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRepo) ListRoles(ctx context.Context, name string) ([]models.Role, error) {
	items := []models.Role{}
	err := r.DB.WithContext(ctx).
		Scopes(NamePrefix("role_name", name)).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) DeleteRole(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Role{}, id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
