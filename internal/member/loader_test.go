package member_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hanbit-mall/csv-etl/internal/member"
	"github.com/hanbit-mall/csv-etl/internal/model"
	"github.com/hanbit-mall/csv-etl/internal/shared/testutil"
	sharedValidator "github.com/hanbit-mall/csv-etl/internal/shared/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var rosterHeader = []string{
	"PID", "아이디", "비밀번호", "성함", "주민번호", "주소", "메일 주소", "회원_가입일", "전화번호",
}

func setupLoader(t *testing.T, hashPasswords bool) (*member.Loader, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	validate, err := sharedValidator.New()
	require.NoError(t, err)

	return member.NewLoader(db, member.NewRepository(), validate, hashPasswords), db
}

func TestLoad_DerivesBirthDateAndGender(t *testing.T) {
	// Given
	loader, db := setupLoader(t, false)
	path := testutil.WriteCSV(t, t.TempDir(), "회원목록_2019년.csv", [][]string{
		rosterHeader,
		{"1", "hong123", "pw", "홍길동", "990101-1234567", "서울", "hong@test.com", "2019-01-03", "010-1234-5678"},
	})

	// When
	report := loader.Load(context.Background(), []string{path})

	// Then
	assert.Equal(t, 1, report.Inserted())

	var got model.Member
	require.NoError(t, db.Where("id = ?", "hong123").First(&got).Error)
	require.NotNil(t, got.DOB)
	assert.Equal(t, "1999-01-01", *got.DOB)
	require.NotNil(t, got.Gender)
	assert.Equal(t, model.GenderMale, *got.Gender)
	assert.Equal(t, model.AdminNo, got.Admin)
	assert.Equal(t, model.FlagFalse, got.Delete)
}

func TestLoad_IsIdempotentPerLoginID(t *testing.T) {
	// Given: the same roster loaded twice
	loader, db := setupLoader(t, false)
	path := testutil.WriteCSV(t, t.TempDir(), "회원목록_2019년.csv", [][]string{
		rosterHeader,
		{"1", "hong123", "pw", "홍길동", "990101-1234567", "", "", "2019-01-03", ""},
		{"2", "kim99", "pw2", "김철수", "880505-2234567", "", "", "2019-02-01", ""},
	})

	first := loader.Load(context.Background(), []string{path})

	// When: the second run sees every login id already stored
	second := loader.Load(context.Background(), []string{path})

	// Then: first load wins, second run inserts nothing
	assert.Equal(t, 2, first.Inserted())
	assert.Equal(t, 0, second.Inserted())
	assert.Equal(t, 2, second.SkippedRows())

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestLoad_SynthesizesMissingColumns(t *testing.T) {
	// Given: a roster missing 주소 and 전화번호 entirely
	loader, db := setupLoader(t, false)
	path := testutil.WriteCSV(t, t.TempDir(), "회원목록_2020년.csv", [][]string{
		{"아이디", "비밀번호", "성함", "주민번호"},
		{"lee77", "pw", "이영희", "770707-2234567"},
	})

	// When
	report := loader.Load(context.Background(), []string{path})

	// Then: the row loads with null-valued optionals instead of failing
	assert.Equal(t, 1, report.Inserted())
	assert.Equal(t, 0, report.FailedFiles())

	var got model.Member
	require.NoError(t, db.Where("id = ?", "lee77").First(&got).Error)
	assert.Nil(t, got.Address)
	assert.Nil(t, got.Phone)
}

func TestLoad_MissingRequiredFieldFailsRow(t *testing.T) {
	loader, db := setupLoader(t, false)
	path := testutil.WriteCSV(t, t.TempDir(), "회원목록_2019년.csv", [][]string{
		rosterHeader,
		{"1", "", "pw", "무명씨", "990101-1234567", "", "", "", ""},
		{"2", "park11", "pw", "박영수", "850303-1234567", "", "", "", ""},
	})

	report := loader.Load(context.Background(), []string{path})

	assert.Equal(t, 1, report.Inserted())
	assert.Equal(t, 1, report.FailedRows())

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoad_UnreadableFileDoesNotStopSequence(t *testing.T) {
	// Given: the first roster path does not exist
	loader, db := setupLoader(t, false)
	dir := t.TempDir()
	missing := filepath.Join(dir, "회원목록_2019년.csv")
	good := testutil.WriteCSV(t, dir, "회원목록_2020년.csv", [][]string{
		rosterHeader,
		{"1", "choi55", "pw", "최민수", "550505-1234567", "", "", "", ""},
	})

	// When
	report := loader.Load(context.Background(), []string{missing, good})

	// Then: the broken file is reported, the good file still loads
	assert.Equal(t, 1, report.FailedFiles())
	assert.Equal(t, 1, report.Inserted())

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoad_HashPasswordsOption(t *testing.T) {
	// Given: a loader configured to refuse plaintext credentials
	loader, db := setupLoader(t, true)
	path := testutil.WriteCSV(t, t.TempDir(), "회원목록_2019년.csv", [][]string{
		rosterHeader,
		{"1", "hong123", "secret-pw", "홍길동", "990101-1234567", "", "", "", ""},
	})

	// When
	report := loader.Load(context.Background(), []string{path})

	// Then: the stored value is a verifiable bcrypt hash, not the source text
	require.Equal(t, 1, report.Inserted())

	var got model.Member
	require.NoError(t, db.Where("id = ?", "hong123").First(&got).Error)
	assert.NotEqual(t, "secret-pw", got.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("secret-pw")))
}
