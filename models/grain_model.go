package models

type Grain struct {
	UUID        string `json:"uuid" gorm:"column:uuid;primaryKey"`
	GrainName   string `json:"grainName" gorm:"column:grainName"`
	GodownName  string `json:"godownName" gorm:"column:godownName"`
	OrderNumber int    `json:"order_number" gorm:"column:order_number"`
}

func (Grain) TableName() string {
	return "grains"
}

func (g *Grain) SetOrderNumber(n int) {
	g.OrderNumber = n
}
