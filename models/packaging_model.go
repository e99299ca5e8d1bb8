package models

type Packaging struct {
	PackID       uint    `json:"pack_id" gorm:"column:pack_id;primaryKey"`
	MaterialName string  `json:"material_name"`
	Weight       float64 `json:"weight"`
	Status       string  `json:"status"`
}

func (Packaging) TableName() string {
	return "packaging"
}
