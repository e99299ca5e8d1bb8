package models

type Scheme struct {
	SchemeID     uint   `json:"scheme_id" gorm:"column:scheme_id;primaryKey"`
	SchemeName   string `json:"scheme_name"`
	SchemeStatus string `json:"scheme_status"`
}

func (Scheme) TableName() string {
	return "scheme"
}
