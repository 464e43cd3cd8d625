package member

import (
	"context"

	"github.com/hanbit-mall/csv-etl/internal/model"
	"gorm.io/gorm"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// IsExist reports whether a member with the given login id is already
// stored. The loader's dedup - and therefore its idempotence - rests on
// this check, not on a store-level upsert.
func (r *Repository) IsExist(ctx context.Context, db *gorm.DB, loginID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", loginID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *Repository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}
