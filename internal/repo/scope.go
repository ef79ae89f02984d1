package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/campus_admin/internal/util"
)

// InCollege restricts a query to rows owned by one college.
func InCollege(collegeID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("college_id = ?", collegeID)
	}
}

// NamePrefix filters column case-insensitively by a whitespace-trimmed prefix.
// An empty prefix leaves the query untouched.
func NamePrefix(column, prefix string) func(*gorm.DB) *gorm.DB {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	return func(db *gorm.DB) *gorm.DB {
		if prefix == "" {
			return db
		}
		return db.Where("LOWER(TRIM("+column+")) LIKE ? ESCAPE '\\'", util.EscapeLike(prefix)+"%")
	}
}

func firstInCollege[T any](ctx context.Context, db *gorm.DB, collegeID, id uint) (*T, error) {
	var v T
	if err := db.WithContext(ctx).Scopes(InCollege(collegeID)).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func listInCollege[T any](ctx context.Context, db *gorm.DB, collegeID uint, name string) ([]T, error) {
	items := []T{}
	err := db.WithContext(ctx).
		Scopes(InCollege(collegeID), NamePrefix("name", name)).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// deleteInCollege removes the row with the given id, scoped to the college.
// It reports gorm.ErrRecordNotFound when nothing matched.
func deleteInCollege[T any](ctx context.Context, db *gorm.DB, collegeID, id uint) error {
	var v T
	res := db.WithContext(ctx).Scopes(InCollege(collegeID)).Delete(&v, id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
