package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction executes the provided fn within a transaction while
// propagating context. Returning an error from fn rolls the unit back;
// returning nil commits it. The loaders use one call per logical commit
// unit: one per source file, one per product catalog run.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
