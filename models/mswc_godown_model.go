package models

// MswcGodown is a state warehouse. order_number is a dense 1..N display
// rank maintained by the repositories package.
type MswcGodown struct {
	UUID        string `json:"uuid" gorm:"column:uuid;primaryKey"`
	GodownName  string `json:"godownName" gorm:"column:godownName"`
	GodownUnder string `json:"godownUnder" gorm:"column:godownUnder"`
	OrderNumber int    `json:"order_number" gorm:"column:order_number"`
	Status      string `json:"status" gorm:"column:status"`
}

func (MswcGodown) TableName() string {
	return "mswc_godowns"
}

func (g *MswcGodown) SetOrderNumber(n int) {
	g.OrderNumber = n
}
