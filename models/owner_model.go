package models

type Owner struct {
	UUID        string `json:"uuid" gorm:"column:uuid;primaryKey"`
	OwnerName   string `json:"ownerName" gorm:"column:ownerName"`
	Contact     string `json:"contact" gorm:"column:contact"`
	Address     string `json:"address" gorm:"column:address"`
	EmailID     string `json:"emailID" gorm:"column:emailID"`
	OrderNumber int    `json:"order_number" gorm:"column:order_number"`
}

func (Owner) TableName() string {
	return "owners"
}

func (o *Owner) SetOrderNumber(n int) {
	o.OrderNumber = n
}
