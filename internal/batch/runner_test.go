package batch_test

import (
	"context"
	"testing"

	"github.com/hanbit-mall/csv-etl/internal/batch"
	"github.com/hanbit-mall/csv-etl/internal/model"
	"github.com/hanbit-mall/csv-etl/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// writeFixtures lays out one product catalog, one roster and one history
// file; the remaining yearly files are deliberately absent.
func writeFixtures(t *testing.T, dir string) {
	t.Helper()

	testutil.WriteCSV(t, dir, "상품목록.csv", [][]string{
		{"category_no", "name", "company", "in_price", "out_price", "sell_count", "quantity", "visit", "seal_service"},
		{"writing", "Pen", "모나미", "1,000", "1,500", "", "", "", "T"},
		{"art", "붓", "", "500", "900", "3", "10", "", ""},
	})
	testutil.WriteCSV(t, dir, "회원목록_2019년.csv", [][]string{
		{"PID", "아이디", "비밀번호", "성함", "주민번호", "주소", "메일 주소", "회원_가입일", "전화번호"},
		{"1", "hong123", "pw", "홍길동", "990101-1234567", "서울", "hong@test.com", "2019-01-03", "010-1234-5678"},
	})
	testutil.WriteCSV(t, dir, "구매이력_2019년.csv", [][]string{
		{"구매_ID", "구매_날짜", "구매자_ID", "상품_ID", "구매_수량", "각인_서비스", "결제_방식", "총_결제_금액"},
		{"1", "2019-02-01", "1", "PRD-00001", "2", "T", "카드", "3,000"},
	})
}

func TestRun_LoadsAllSourcesEndToEnd(t *testing.T) {
	// Given: fixtures for 2019 only - the 2020~2023 files do not exist
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	dir := t.TempDir()
	writeFixtures(t, dir)

	runner := batch.NewRunner(db, testutil.NewTestConfig(dir))

	// When
	err := runner.Run(context.Background())

	// Then: missing yearly files are tolerated, everything present loads
	require.NoError(t, err)

	assert.EqualValues(t, 2, count(t, db, &model.Product{}))
	assert.EqualValues(t, 1, count(t, db, &model.Member{}))
	assert.EqualValues(t, 1, count(t, db, &model.Purchase{}))
	assert.EqualValues(t, 4, count(t, db, &model.Category{}))
}

func TestRun_ResetsStoreBeforeLoading(t *testing.T) {
	// Given: leftover data from an earlier run
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	require.NoError(t, db.Create(&model.Member{
		ID:       "stale",
		Password: "pw",
		Name:     "이전회원",
		Admin:    model.AdminNo,
		Delete:   model.FlagFalse,
	}).Error)

	dir := t.TempDir()
	writeFixtures(t, dir)

	// When
	require.NoError(t, batch.NewRunner(db, testutil.NewTestConfig(dir)).Run(context.Background()))

	// Then: only the freshly loaded member survives
	assert.EqualValues(t, 1, count(t, db, &model.Member{}))

	err := db.Where("id = ?", "stale").First(&model.Member{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRun_EmptyDirectoryStillSucceeds(t *testing.T) {
	// Given: no CSV file exists at all
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// When: file-level failures are summarized, not fatal
	err := batch.NewRunner(db, testutil.NewTestConfig(t.TempDir())).Run(context.Background())

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 0, count(t, db, &model.Product{}))
	assert.EqualValues(t, 4, count(t, db, &model.Category{}))
}

func count(t *testing.T, db *gorm.DB, table interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(table).Count(&n).Error)
	return n
}
