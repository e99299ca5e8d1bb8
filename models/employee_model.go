package models

type Employee struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Category      string `json:"category" gorm:"column:category"`
	FullName      string `json:"fullName" gorm:"column:fullName"`
	Username      string `json:"username" gorm:"column:username"`
	Password      string `json:"-" gorm:"column:password"`
	Address       string `json:"address" gorm:"column:address"`
	AadharNo      string `json:"aadharNo" gorm:"column:aadharNo"`
	PanNo         string `json:"panNo" gorm:"column:panNo"`
	BankName      string `json:"bankName" gorm:"column:bankName"`
	AccountNumber string `json:"accountNumber" gorm:"column:accountNumber"`
	IfscCode      string `json:"ifscCode" gorm:"column:ifscCode"`
	BranchName    string `json:"branchName" gorm:"column:branchName"`
	SubGodown     string `json:"subGodown" gorm:"column:subGodown"`
}

func (Employee) TableName() string {
	return "employees"
}
