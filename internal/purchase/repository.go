package purchase

import (
	"context"

	"github.com/hanbit-mall/csv-etl/internal/model"
	"gorm.io/gorm"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Create(ctx context.Context, db *gorm.DB, purchase *model.Purchase) error {
	return db.WithContext(ctx).Create(purchase).Error
}
