package models

type SubGodown struct {
	UUID         string `json:"uuid" gorm:"column:uuid;primaryKey"`
	ParentGodown string `json:"parentGodown" gorm:"column:parentGodown"`
	SubGodown    string `json:"subGodown" gorm:"column:subGodown"`
	Status       string `json:"status" gorm:"column:status"`
	OrderNumber  int    `json:"order_number" gorm:"column:order_number"`
}

func (SubGodown) TableName() string {
	return "sub_godown"
}

func (g *SubGodown) SetOrderNumber(n int) {
	g.OrderNumber = n
}
