package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/campus_admin/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.create(ctx, user)
}

func (r *GormRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByLogin resolves a username (exact match) or an email. Emails are stored lower-cased,
// so the email side compares against the lower-cased identifier.
func (r *GormRepo) UserByLogin(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).
		Order("id ASC").
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// BumpTokenVersion increments token_version in place, invalidating all previously issued tokens.
func (r *GormRepo) BumpTokenVersion(ctx context.Context, userID uint) error {
	return r.updateUser(ctx, userID, map[string]any{
		"token_version": gorm.Expr("token_version + 1"),
	})
}

// SetPassword replaces the password hash and revokes existing tokens in one statement.
func (r *GormRepo) SetPassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.updateUser(ctx, userID, map[string]any{
		"password_hash": passwordHash,
		"token_version": gorm.Expr("token_version + 1"),
	})
}

func (r *GormRepo) updateUser(ctx context.Context, userID uint, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
