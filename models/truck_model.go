package models

// Truck has no order_number column; display order does not apply to it.
type Truck struct {
	UUID              string  `json:"uuid" gorm:"column:uuid;primaryKey"`
	TruckName         string  `json:"truck_name"`
	TruckStatus       string  `json:"truck_status"`
	EmptyWeight       float64 `json:"empty_weight"`
	Company           string  `json:"company"`
	Gvw               float64 `json:"gvw"`
	RegDate           string  `json:"reg_date"`
	TruckOwnerName    string  `json:"truck_owner_name"`
	OwnerID           string  `json:"owner_id"`
	TaxValidity       string  `json:"tax_validity"`
	InsuranceValidity string  `json:"insurance_validity"`
	FitnessValidity   string  `json:"fitness_validity"`
	PermitValidity    string  `json:"permit_validity"`
	DirectSale        string  `json:"direct_sale"`
}

func (Truck) TableName() string {
	return "truck"
}
