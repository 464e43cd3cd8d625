package etlerror

import "log/slog"

// RowFailure records one skipped source row: the value identifying it
// (상품명, 로그인 id, or the full row for purchases) and the cause.
type RowFailure struct {
	Key string
	Err error
}

// FileReport summarizes one processed source file.
type FileReport struct {
	File     string
	Inserted int
	Skipped  int // 중복 등으로 의도적으로 건너뛴 행
	Failures []RowFailure
	Err      error // file-level error; nil when the file was processed
}

// LoaderReport aggregates the file reports of a single loader run.
type LoaderReport struct {
	Loader string
	Files  []FileReport
}

func (r *LoaderReport) Inserted() int {
	total := 0
	for _, f := range r.Files {
		total += f.Inserted
	}
	return total
}

func (r *LoaderReport) FailedRows() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Failures)
	}
	return total
}

func (r *LoaderReport) FailedFiles() int {
	total := 0
	for _, f := range r.Files {
		if f.Err != nil {
			total++
		}
	}
	return total
}

func (r *LoaderReport) SkippedRows() int {
	total := 0
	for _, f := range r.Files {
		total += f.Skipped
	}
	return total
}

// Log writes the end-of-run summary the error policy requires: counts plus
// the identifier of every failed row and file.
func (r *LoaderReport) Log(log *slog.Logger) {
	log.Info("적재 결과 요약",
		"loader", r.Loader,
		"inserted", r.Inserted(),
		"skipped", r.SkippedRows(),
		"failed_rows", r.FailedRows(),
		"failed_files", r.FailedFiles(),
	)

	for _, f := range r.Files {
		if f.Err != nil {
			log.Error("파일 처리 실패", "loader", r.Loader, "file", f.File, "error", f.Err)
		}
		for _, failure := range f.Failures {
			log.Warn("행 적재 실패",
				"loader", r.Loader,
				"file", f.File,
				"row", failure.Key,
				"error", failure.Err,
			)
		}
	}
}
