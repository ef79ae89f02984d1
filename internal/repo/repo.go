package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepo struct {
	DB *gorm.DB
}

// InTx runs fn against a repo bound to a single transaction.
// Returning an error from fn rolls the transaction back.
func (r *GormRepo) InTx(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{DB: tx})
	})
}

func (r *GormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormRepo) create(ctx context.Context, v any) error {
	return classify(r.DB.WithContext(ctx).Omit(clause.Associations).Create(v).Error)
}

func (r *GormRepo) save(ctx context.Context, v any) error {
	return classify(r.DB.WithContext(ctx).Omit(clause.Associations).Save(v).Error)
}
