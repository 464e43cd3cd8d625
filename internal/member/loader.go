// Package member loads the yearly member roster CSVs into member_table.
// Each file is an independent unit of work with its own commit; login-id
// dedup makes repeated runs idempotent (first load wins, no upsert).
package member

import (
	"context"
	"fmt"

	"github.com/hanbit-mall/csv-etl/internal/shared/csvio"
	"github.com/hanbit-mall/csv-etl/internal/shared/database"
	"github.com/hanbit-mall/csv-etl/internal/shared/etlerror"
	"github.com/hanbit-mall/csv-etl/internal/shared/logger"
	sharedValidator "github.com/hanbit-mall/csv-etl/internal/shared/validator"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Loader struct {
	db            *gorm.DB
	repository    *Repository
	validate      *validator.Validate
	hashPasswords bool
}

func NewLoader(db *gorm.DB, repository *Repository, validate *validator.Validate, hashPasswords bool) *Loader {
	return &Loader{
		db:            db,
		repository:    repository,
		validate:      validate,
		hashPasswords: hashPasswords,
	}
}

// Load processes the roster files in order. A failing file aborts only
// itself; the remaining files still run.
func (l *Loader) Load(ctx context.Context, files []string) *etlerror.LoaderReport {
	report := &etlerror.LoaderReport{Loader: "member"}
	for _, file := range files {
		report.Files = append(report.Files, l.loadFile(ctx, file))
	}
	report.Log(logger.FromContext(ctx))
	return report
}

func (l *Loader) loadFile(ctx context.Context, path string) etlerror.FileReport {
	fileReport := etlerror.FileReport{File: path}
	log := logger.FromContext(ctx).With("loader", "member", "file", path)
	log.Info("회원 목록 파일 로드 중")

	table, err := csvio.ReadFile(path, csvio.Options{TrimHeaders: true})
	if err != nil {
		fileReport.Err = etlerror.FileLevel(err)
		log.Error("회원 목록 처리 중 오류 발생", "error", err)
		return fileReport
	}

	// 필요한 열이 없을 경우 빈 값으로 합성한 뒤 정규화
	table.EnsureColumns(expectedColumns...)
	table.Rename(columnRenames)

	err = database.WithTransaction(ctx, l.db, func(tx *gorm.DB) error {
		for _, raw := range table.Rows {
			cleaned := newRow(raw)

			if err := l.validate.Struct(cleaned); err != nil {
				fileReport.Failures = append(fileReport.Failures, etlerror.RowFailure{
					Key: cleaned.ID,
					Err: etlerror.RowLevel(fmt.Errorf("%s", sharedValidator.Describe(err))),
				})
				continue
			}

			// 중복 확인: 동일 로그인 아이디가 있으면 삽입하지 않는다
			exists, err := l.repository.IsExist(ctx, tx, cleaned.ID)
			if err != nil {
				return fmt.Errorf("회원 존재 여부 확인 실패: %w", err)
			}
			if exists {
				fileReport.Skipped++
				continue
			}

			password, err := l.storedPassword(cleaned.Password)
			if err != nil {
				fileReport.Failures = append(fileReport.Failures, etlerror.RowFailure{
					Key: cleaned.ID,
					Err: etlerror.RowLevel(err),
				})
				continue
			}

			if err := l.repository.Create(ctx, tx, cleaned.member(password)); err != nil {
				log.Warn("회원 행 적재 실패",
					"id", cleaned.ID,
					"resident_no", logger.MaskResidentNo(cleaned.residentNo),
					"error", err,
				)
				fileReport.Failures = append(fileReport.Failures, etlerror.RowFailure{
					Key: cleaned.ID,
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
		log.Error("회원 목록 처리 중 오류 발생", "error", err)
		return fileReport
	}

	log.Info("회원 목록 데이터 처리 완료",
		"inserted", fileReport.Inserted,
		"skipped", fileReport.Skipped,
		"failed_rows", len(fileReport.Failures),
	)
	return fileReport
}

// storedPassword returns the text persisted into the password column:
// the source value as-is, or its bcrypt hash when the batch is configured
// to refuse plaintext credentials.
func (l *Loader) storedPassword(password string) (string, error) {
	if !l.hashPasswords {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("비밀번호 해시 실패: %w", err)
	}
	return string(hashed), nil
}
