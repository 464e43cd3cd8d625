package model

// Purchase is one row of buy_table, an append-only ledger: the loader never
// updates or deduplicates it. product_no 0 is the extraction-failure
// sentinel; member_no is taken from the source without existence checks.
type Purchase struct {
	BuyNo uint32 `gorm:"column:buy_no;primaryKey;autoIncrement"`

	MemberNo    *int    `gorm:"column:member_no"`
	ProductNo   int     `gorm:"column:product_no"`
	Date        *string `gorm:"column:date;type:VARCHAR(10)"` // 구매날짜 (YYYY-MM-DD 텍스트)
	Quantity    int     `gorm:"column:quantity"`
	SealService *string `gorm:"column:seal_service;type:VARCHAR(10)"` // 원문 그대로, 불리언 정규화 없음
	TotalPrice  int     `gorm:"column:total_price"`
	Method      *string `gorm:"column:method;type:VARCHAR(50)"` // 결제 방식
}

// TableName specifies the table name for Purchase
func (*Purchase) TableName() string {
	return "buy_table"
}
