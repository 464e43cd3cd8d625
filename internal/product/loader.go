// Package product loads the single product catalog CSV into product_table.
// Cleaning is per-field, failures are per-row, and the whole run commits
// once - a clean run means every input row became exactly one product row.
package product

import (
	"context"
	"fmt"

	"github.com/hanbit-mall/csv-etl/internal/shared/csvio"
	"github.com/hanbit-mall/csv-etl/internal/shared/database"
	"github.com/hanbit-mall/csv-etl/internal/shared/etlerror"
	"github.com/hanbit-mall/csv-etl/internal/shared/logger"
	sharedValidator "github.com/hanbit-mall/csv-etl/internal/shared/validator"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Loader struct {
	db         *gorm.DB
	repository *Repository
	validate   *validator.Validate
}

func NewLoader(db *gorm.DB, repository *Repository, validate *validator.Validate) *Loader {
	return &Loader{
		db:         db,
		repository: repository,
		validate:   validate,
	}
}

// Load processes the product catalog at path and reports the outcome.
// Row failures never abort the run; they are collected and summarized.
func (l *Loader) Load(ctx context.Context, path string) *etlerror.LoaderReport {
	report := &etlerror.LoaderReport{Loader: "product"}
	report.Files = append(report.Files, l.loadFile(ctx, path))
	report.Log(logger.FromContext(ctx))
	return report
}

func (l *Loader) loadFile(ctx context.Context, path string) etlerror.FileReport {
	fileReport := etlerror.FileReport{File: path}
	log := logger.FromContext(ctx).With("loader", "product", "file", path)
	log.Info("상품 목록 파일 로드 중")

	// 열 이름 정리 (공백 제거 및 소문자 변환)
	table, err := csvio.ReadFile(path, csvio.Options{TrimHeaders: true, LowerHeaders: true})
	if err != nil {
		fileReport.Err = etlerror.FileLevel(err)
		log.Error("상품 목록 처리 중 오류 발생", "error", err)
		return fileReport
	}

	// 일부 내보내기는 카테고리 열을 category로 표기한다
	table.Rename(map[string]string{"category": "category_no"})

	err = database.WithTransaction(ctx, l.db, func(tx *gorm.DB) error {
		for _, raw := range table.Rows {
			cleaned, err := newRow(raw)
			if err != nil {
				fileReport.Failures = append(fileReport.Failures, etlerror.RowFailure{
					Key: raw.Get("name"),
					Err: etlerror.RowLevel(err),
				})
				continue
			}

			if err := l.validate.Struct(cleaned); err != nil {
				fileReport.Failures = append(fileReport.Failures, etlerror.RowFailure{
					Key: cleaned.Name,
					Err: etlerror.RowLevel(fmt.Errorf("%s", sharedValidator.Describe(err))),
				})
				continue
			}

			if err := l.repository.Create(ctx, tx, cleaned.product()); err != nil {
				fileReport.Failures = append(fileReport.Failures, etlerror.RowFailure{
					Key: cleaned.Name,
					Err: etlerror.RowLevel(err),
				})
				continue
			}
			fileReport.Inserted++
		}
		return nil // 모든 행 시도 후 한 번에 커밋
	})
	if err != nil {
		fileReport.Err = etlerror.FileLevel(fmt.Errorf("상품 목록 커밋 실패: %w", err))
		log.Error("상품 목록 처리 중 오류 발생", "error", err)
		return fileReport
	}

	log.Info("상품 목록 데이터 처리 완료",
		"inserted", fileReport.Inserted,
		"failed_rows", len(fileReport.Failures),
	)
	return fileReport
}
