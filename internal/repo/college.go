package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/util"
)

func (r *GormRepo) CreateCollege(ctx context.Context, college *models.College) error {
	return r.create(ctx, college)
}

func (r *GormRepo) GetCollege(ctx context.Context, id uint) (*models.College, error) {
	var college models.College
	if err := r.DB.WithContext(ctx).First(&college, id).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

// CollegeNameTaken reports whether another college already uses name. excludeID is ignored when zero.
func (r *GormRepo) CollegeNameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	q := r.DB.WithContext(ctx).Model(&models.College{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepo) ListColleges(ctx context.Context, name string) ([]models.College, error) {
	items := []models.College{}
	err := r.DB.WithContext(ctx).
		Scopes(NamePrefix("name", name)).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SearchColleges is the database fallback for full-text search: a case-insensitive
// substring match over name and address.
func (r *GormRepo) SearchColleges(ctx context.Context, q string, offset, limit int) (int64, []models.College, error) {
	pattern := "%" + util.EscapeLike(strings.ToLower(strings.TrimSpace(q))) + "%"
	where := "LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(address) LIKE ? ESCAPE '\\'"

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.College{}).Where(where, pattern, pattern).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := []models.College{}
	err := r.DB.WithContext(ctx).
		Where(where, pattern, pattern).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) SaveCollege(ctx context.Context, college *models.College) error {
	return r.save(ctx, college)
}

func (r *GormRepo) DeleteCollege(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.College{}, id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
