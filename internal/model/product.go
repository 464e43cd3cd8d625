package model

// UnmappedCategory is the sentinel category_no for products whose source
// category text matched no known code. Downstream consumers rely on -1
// rather than NULL, so it must not be converted.
const UnmappedCategory int32 = -1

// Product is one row of product_table. category_no references
// category_table by load-order contract only; the schema carries no FK so
// the -1 sentinel stays insertable.
type Product struct {
	ProductNo uint32 `gorm:"column:product_no;primaryKey;autoIncrement"`

	CategoryNo int32   `gorm:"column:category_no"`
	Name       string  `gorm:"column:name;type:VARCHAR(100);not null"`
	Company    *string `gorm:"column:company;type:VARCHAR(100)"`
	InPrice    int     `gorm:"column:in_price;not null"`  // 입고가
	OutPrice   int     `gorm:"column:out_price;not null"` // 판매가
	SellCount  int     `gorm:"column:sell_count;default:0"`
	Quantity   int     `gorm:"column:quantity;default:0"`
	Visit      int     `gorm:"column:visit;default:0"` // 조회수

	SealService Flag `gorm:"column:seal_service;type:VARCHAR(10);check:seal_service IN ('True','False')"` // 각인 서비스
	Delete      Flag `gorm:"column:delete;type:VARCHAR(10)"`
}

// TableName specifies the table name for Product
func (*Product) TableName() string {
	return "product_table"
}
