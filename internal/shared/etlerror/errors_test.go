package etlerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hanbit-mall/csv-etl/internal/shared/etlerror"
	"github.com/stretchr/testify/assert"
)

func TestSeverityOf_Classified(t *testing.T) {
	assert.Equal(t, etlerror.SeverityFatal, etlerror.SeverityOf(etlerror.Fatal(errors.New("boom"))))
	assert.Equal(t, etlerror.SeverityFile, etlerror.SeverityOf(etlerror.FileLevel(errors.New("boom"))))
	assert.Equal(t, etlerror.SeverityRow, etlerror.SeverityOf(etlerror.RowLevel(errors.New("boom"))))
}

func TestSeverityOf_SurvivesWrapping(t *testing.T) {
	// Given: a fatal error wrapped further up the call stack
	err := fmt.Errorf("스키마 초기화 실패: %w", etlerror.Fatal(errors.New("drop failed")))

	// Then: classification is preserved through the chain
	assert.True(t, etlerror.IsFatal(err))
}

func TestSeverityOf_UnclassifiedDefaultsToFile(t *testing.T) {
	assert.Equal(t, etlerror.SeverityFile, etlerror.SeverityOf(errors.New("unknown")))
	assert.False(t, etlerror.IsFatal(errors.New("unknown")))
}

func TestClassify_NilStaysNil(t *testing.T) {
	assert.NoError(t, etlerror.Fatal(nil))
	assert.NoError(t, etlerror.FileLevel(nil))
	assert.NoError(t, etlerror.RowLevel(nil))
}

func TestLoaderReport_Totals(t *testing.T) {
	report := &etlerror.LoaderReport{
		Loader: "member",
		Files: []etlerror.FileReport{
			{File: "a.csv", Inserted: 3, Skipped: 1},
			{File: "b.csv", Failures: []etlerror.RowFailure{{Key: "hong123", Err: errors.New("bad")}}},
			{File: "c.csv", Err: errors.New("unreadable")},
		},
	}

	assert.Equal(t, 3, report.Inserted())
	assert.Equal(t, 1, report.SkippedRows())
	assert.Equal(t, 1, report.FailedRows())
	assert.Equal(t, 1, report.FailedFiles())
}
