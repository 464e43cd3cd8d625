// Package batch wires the four pipeline steps together and runs them
// strictly sequentially: schema reset, then the product, member and
// purchase loaders. Loader-internal failures never escape their loader;
// only fatal errors (connection, schema) abort the run.
package batch

import (
	"context"
	"fmt"

	"github.com/hanbit-mall/csv-etl/internal/config"
	"github.com/hanbit-mall/csv-etl/internal/member"
	"github.com/hanbit-mall/csv-etl/internal/product"
	"github.com/hanbit-mall/csv-etl/internal/purchase"
	"github.com/hanbit-mall/csv-etl/internal/schema"
	"github.com/hanbit-mall/csv-etl/internal/shared/etlerror"
	"github.com/hanbit-mall/csv-etl/internal/shared/logger"
	sharedValidator "github.com/hanbit-mall/csv-etl/internal/shared/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Runner struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewRunner(db *gorm.DB, cfg *config.Config) *Runner {
	return &Runner{db: db, cfg: cfg}
}

// Run executes one full batch. The returned error is always fatal; partial
// loader failures are reported through the summary instead.
func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.New().String()
	log := logger.FromContext(ctx).With("run_id", runID)
	ctx = logger.WithLogger(ctx, log)

	log.Info("배치 시작", "csv_dir", r.cfg.ETL.CSVDir)

	// 스키마 초기화 실패는 전체 배치를 중단시킨다
	if err := schema.NewInitializer(r.db).Reset(ctx); err != nil {
		return fmt.Errorf("스키마 초기화 실패: %w", err)
	}

	validate, err := sharedValidator.New()
	if err != nil {
		return etlerror.Fatal(fmt.Errorf("validator 초기화 실패: %w", err))
	}

	reports := []*etlerror.LoaderReport{
		product.NewLoader(r.db, product.NewRepository(), validate).
			Load(ctx, r.cfg.ETL.ProductPath()),
		member.NewLoader(r.db, member.NewRepository(), validate, r.cfg.ETL.HashPasswords).
			Load(ctx, r.cfg.ETL.MemberFiles()),
		purchase.NewLoader(r.db, purchase.NewRepository()).
			Load(ctx, r.cfg.ETL.PurchaseFiles()),
	}

	inserted, failedRows, failedFiles := 0, 0, 0
	for _, report := range reports {
		inserted += report.Inserted()
		failedRows += report.FailedRows()
		failedFiles += report.FailedFiles()
	}

	log.Info("모든 작업이 완료되었습니다",
		"inserted", inserted,
		"failed_rows", failedRows,
		"failed_files", failedFiles,
	)
	return nil
}
