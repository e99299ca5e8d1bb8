package models

type Category struct {
	CategoryID   uint   `json:"category_id" gorm:"column:category_id;primaryKey"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
