package model

// Member is one row of member_table. The login id is the natural key the
// loader deduplicates on; member_no is store-assigned.
type Member struct {
	MemberNo uint32 `gorm:"column:member_no;primaryKey;autoIncrement"`

	ID       string  `gorm:"column:id;type:VARCHAR(50);not null;unique"`      // 로그인 아이디 (natural key)
	Password string  `gorm:"column:password;type:VARCHAR(100);not null"`      // 비밀번호 (원문 또는 bcrypt 해시)
	Name     string  `gorm:"column:name;type:VARCHAR(100);not null"`          // 성함
	DOB      *string `gorm:"column:dob;type:VARCHAR(10)"`                     // 생년월일 (YYYY-MM-DD, 파생)
	Gender   *Gender `gorm:"column:gender;type:VARCHAR(10);check:gender IN ('남','여')"`
	Address  *string `gorm:"column:address;type:VARCHAR(255)"`
	Email    *string `gorm:"column:email;type:VARCHAR(100)"`
	Phone    *string `gorm:"column:phone;type:VARCHAR(20)"`

	Admin    AdminFlag `gorm:"column:admin;type:VARCHAR(10);check:admin IN ('Y','N')"`
	JoinDate *string   `gorm:"column:joinDate;type:VARCHAR(10)"` // 회원가입일 (YYYY-MM-DD 텍스트)
	Delete   Flag      `gorm:"column:delete;type:VARCHAR(10)"`   // soft-delete 플래그
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member_table"
}
