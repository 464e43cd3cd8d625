package member

import (
	"fmt"
	"strings"

	"github.com/hanbit-mall/csv-etl/internal/model"
	"github.com/hanbit-mall/csv-etl/internal/shared/csvio"
)

// expectedColumns is the full source header set; absent columns are
// synthesized as empty so the rename below never misses a key.
var expectedColumns = []string{
	"PID", "아이디", "비밀번호", "성함", "주민번호", "주소", "메일 주소", "회원_가입일", "전화번호",
}

// columnRenames maps the Korean roster headers to canonical field names.
var columnRenames = map[string]string{
	"아이디":    "id",
	"비밀번호":   "password",
	"성함":     "name",
	"주민번호":   "dob_gender",
	"주소":     "address",
	"메일 주소":  "email",
	"회원_가입일": "joinDate",
	"전화번호":   "phone",
}

// row is one cleaned roster line. The 주민번호 composite is already split
// into the derived dob and gender fields; everything else is pass-through.
type row struct {
	ID       string `validate:"required"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
	DOB      *string
	Gender   *model.Gender
	Address  string
	Email    string
	Phone    string
	JoinDate string

	residentNo string // 원본 주민번호 (로그 마스킹용으로만 보관)
}

func newRow(raw csvio.Row) *row {
	composite := strings.TrimSpace(raw.Get("dob_gender"))
	return &row{
		ID:         strings.TrimSpace(raw.Get("id")),
		Password:   raw.Get("password"),
		Name:       strings.TrimSpace(raw.Get("name")),
		DOB:        deriveBirthDate(composite),
		Gender:     deriveGender(composite),
		Address:    strings.TrimSpace(raw.Get("address")),
		Email:      strings.TrimSpace(raw.Get("email")),
		Phone:      strings.TrimSpace(raw.Get("phone")),
		JoinDate:   strings.TrimSpace(raw.Get("joinDate")),
		residentNo: composite,
	}
}

// member builds the store row. admin='N' and delete='False' are hardcoded
// for every imported account; password arrives separately so the loader can
// substitute a bcrypt hash.
func (r *row) member(password string) *model.Member {
	return &model.Member{
		ID:       r.ID,
		Password: password,
		Name:     r.Name,
		DOB:      r.DOB,
		Gender:   r.Gender,
		Address:  nullable(r.Address),
		Email:    nullable(r.Email),
		Phone:    nullable(r.Phone),
		Admin:    model.AdminNo,
		JoinDate: nullable(r.JoinDate),
		Delete:   model.FlagFalse,
	}
}

// deriveBirthDate reads the first six characters of the 주민번호 composite
// as YYMMDD and emits 19YY-MM-DD. The century is always 19xx - a known
// limitation of the source data, preserved for compatibility.
func deriveBirthDate(composite string) *string {
	if len(composite) < 6 {
		return nil
	}
	dob := fmt.Sprintf("19%s-%s-%s", composite[0:2], composite[2:4], composite[4:6])
	return &dob
}

// deriveGender reads the 주민번호 parity digit: 1/3 -> 남, 2/4 -> 여,
// anything else -> unknown. On masked exports ("990101-1") the digit is the
// last character; on full resident numbers it is the first one after the
// hyphen, so the hyphen position wins when present.
func deriveGender(composite string) *model.Gender {
	if composite == "" {
		return nil
	}

	digit := composite[len(composite)-1]
	if idx := strings.IndexByte(composite, '-'); idx >= 0 && idx+1 < len(composite) {
		digit = composite[idx+1]
	}

	var gender model.Gender
	switch digit {
	case '1', '3':
		gender = model.GenderMale
	case '2', '4':
		gender = model.GenderFemale
	default:
		return nil
	}
	return &gender
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
