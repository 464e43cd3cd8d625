package model

// The target schema stores its booleans and enums as constrained text.
// The typed constants below keep the literal values at the store boundary
// only; everywhere else the code works with the named types.

// Flag is the schema's boolean-as-string ('True'/'False').
type Flag string

const (
	FlagTrue  Flag = "True"
	FlagFalse Flag = "False"
)

// Gender follows the 주민등록번호 parity convention of the source data.
type Gender string

const (
	GenderMale   Gender = "남"
	GenderFemale Gender = "여"
)

// AdminFlag marks administrator accounts ('Y'/'N').
type AdminFlag string

const (
	AdminYes AdminFlag = "Y"
	AdminNo  AdminFlag = "N"
)
