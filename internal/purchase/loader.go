// Package purchase loads the yearly purchase history CSVs into buy_table.
// The table is an append-only ledger: no dedup, no update path. Re-running
// the loader over the same files duplicates its rows by design.
package purchase

import (
	"context"
	"fmt"

	"github.com/hanbit-mall/csv-etl/internal/shared/csvio"
	"github.com/hanbit-mall/csv-etl/internal/shared/database"
	"github.com/hanbit-mall/csv-etl/internal/shared/etlerror"
	"github.com/hanbit-mall/csv-etl/internal/shared/logger"

	"gorm.io/gorm"
)

type Loader struct {
	db         *gorm.DB
	repository *Repository
}

func NewLoader(db *gorm.DB, repository *Repository) *Loader {
	return &Loader{
		db:         db,
		repository: repository,
	}
}

// Load processes the history files in order; a failing file does not stop
// the sequence.
func (l *Loader) Load(ctx context.Context, files []string) *etlerror.LoaderReport {
	report := &etlerror.LoaderReport{Loader: "purchase"}
	for _, file := range files {
		report.Files = append(report.Files, l.loadFile(ctx, file))
	}
	report.Log(logger.FromContext(ctx))
	return report
}

func (l *Loader) loadFile(ctx context.Context, path string) etlerror.FileReport {
	fileReport := etlerror.FileReport{File: path}
	log := logger.FromContext(ctx).With("loader", "purchase", "file", path)
	log.Info("구매 이력 파일 로드 중")

	// 모든 값은 원문 텍스트로 읽는다. 열 이름은 공백만 정리한다.
	table, err := csvio.ReadFile(path, csvio.Options{TrimHeaders: true})
	if err != nil {
		fileReport.Err = etlerror.FileLevel(err)
		log.Error("파일 처리 중 오류 발생", "error", err)
		return fileReport
	}

	table.Rename(columnRenames)

	err = database.WithTransaction(ctx, l.db, func(tx *gorm.DB) error {
		for _, raw := range table.Rows {
			// 실패한 행은 전체 내용과 함께 기록한다 (주민번호가 없는 데이터)
			rowKey := fmt.Sprintf("%v", map[string]string(raw))

			purchase, err := newPurchase(raw)
			if err != nil {
				fileReport.Failures = append(fileReport.Failures, etlerror.RowFailure{
					Key: rowKey,
					Err: etlerror.RowLevel(err),
				})
				continue
			}

			if err := l.repository.Create(ctx, tx, purchase); err != nil {
				fileReport.Failures = append(fileReport.Failures, etlerror.RowFailure{
					Key: rowKey,
					Err: etlerror.RowLevel(err),
				})
				continue
			}
			fileReport.Inserted++
		}
		return nil // 파일 단위 커밋
	})
	if err != nil {
		fileReport.Err = etlerror.FileLevel(err)
		log.Error("파일 처리 중 오류 발생", "error", err)
		return fileReport
	}

	log.Info("구매 이력 데이터 처리 완료",
		"inserted", fileReport.Inserted,
		"failed_rows", len(fileReport.Failures),
	)
	return fileReport
}
