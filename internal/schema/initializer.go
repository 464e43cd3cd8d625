// Package schema owns the destructive rebuild of the target store: every
// batch run starts from a freshly created five-table schema plus the static
// category reference rows.
package schema

import (
	"context"
	"fmt"

	"github.com/hanbit-mall/csv-etl/internal/model"
	"github.com/hanbit-mall/csv-etl/internal/shared/database"
	"github.com/hanbit-mall/csv-etl/internal/shared/etlerror"
	"github.com/hanbit-mall/csv-etl/internal/shared/logger"

	"gorm.io/gorm"
)

type Initializer struct {
	db *gorm.DB
}

func NewInitializer(db *gorm.DB) *Initializer {
	return &Initializer{db: db}
}

// Reset drops and recreates all schema objects and seeds the category rows.
// Existing data is lost - that is the point of a full rebuild. Every error
// is fatal: downstream loaders assume a complete schema, so a half-built
// store must stop the batch.
func (i *Initializer) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Warn("스키마 초기화 시작 - 기존 테이블이 모두 삭제되고 재생성됩니다")

	migrator := i.db.WithContext(ctx).Migrator()

	// Drop in reverse dependency order (FK 참조 순서의 역순)
	dropOrder := []interface{}{
		&model.Image{},
		&model.Purchase{},
		&model.Product{},
		&model.Category{},
		&model.Member{},
	}
	for _, table := range dropOrder {
		if !migrator.HasTable(table) {
			continue
		}
		if err := migrator.DropTable(table); err != nil {
			return etlerror.Fatal(fmt.Errorf("%T 테이블 삭제 실패: %w", table, err))
		}
		log.Debug("테이블 삭제 성공", "table", fmt.Sprintf("%T", table))
	}

	// Create in dependency order: 독립 테이블 먼저, 참조하는 테이블은 나중에
	createOrder := []interface{}{
		&model.Member{},
		&model.Category{},
		&model.Product{},
		&model.Purchase{},
		&model.Image{},
	}
	for _, table := range createOrder {
		if err := migrator.AutoMigrate(table); err != nil {
			return etlerror.Fatal(fmt.Errorf("%T 테이블 생성 실패: %w", table, err))
		}
		log.Debug("테이블 생성됨", "table", fmt.Sprintf("%T", table))
	}

	if err := i.seedCategories(ctx); err != nil {
		return etlerror.Fatal(fmt.Errorf("카테고리 시드 실패: %w", err))
	}

	log.Info("데이터베이스 초기화 및 테이블 생성 완료")
	return nil
}

// seedCategories inserts the four fixed category rows with ids 1~4.
// 시드 순서와 id는 상품 로더의 카테고리 매핑이 의존하는 계약이다.
func (i *Initializer) seedCategories(ctx context.Context) error {
	return database.WithTransaction(ctx, i.db, func(tx *gorm.DB) error {
		for _, category := range model.SeedCategories() {
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("카테고리 %q 삽입 실패: %w", category.Name, err)
			}
		}
		return nil
	})
}
