package model

// Image is one row of image_table. The batch creates the table for other
// tooling but loads nothing into it.
type Image struct {
	ImageNo uint32 `gorm:"column:image_no;primaryKey;autoIncrement"`

	ProductNo  *int    `gorm:"column:product_no"`
	OriginPath *string `gorm:"column:origin_path;type:VARCHAR(255)"`
	SavePath   *string `gorm:"column:save_path;type:VARCHAR(255)"`
	SaveDate   *string `gorm:"column:save_date;type:VARCHAR(10)"`
	UpdateDate *string `gorm:"column:update_date;type:VARCHAR(10)"`
	Delete     Flag    `gorm:"column:delete;type:VARCHAR(10)"`
}

// TableName specifies the table name for Image
func (*Image) TableName() string {
	return "image_table"
}
