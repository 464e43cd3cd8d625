package model

// Category is one row of category_table. Categories are never loaded from
// CSV; the fixed seed rows below are the whole population.
type Category struct {
	CategoryNo int32  `gorm:"column:category_no;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;type:VARCHAR(100);not null"`
	Delete     Flag   `gorm:"column:delete;type:VARCHAR(10)"`
}

// TableName specifies the table name for Category
func (*Category) TableName() string {
	return "category_table"
}

// SeedCategories returns the four fixed reference rows, in seed order.
// The ids 1~4 are a contract: the product loader's category mapping and
// downstream tooling both depend on them.
func SeedCategories() []Category {
	return []Category{
		{CategoryNo: 1, Name: "미술", Delete: FlagFalse},
		{CategoryNo: 2, Name: "필통", Delete: FlagFalse},
		{CategoryNo: 3, Name: "문구류", Delete: FlagFalse},
		{CategoryNo: 4, Name: "필기류", Delete: FlagFalse},
	}
}
