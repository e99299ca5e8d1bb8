package models

// SignupUser is an application account created through /signup.
// The password column holds a bcrypt hash, never plaintext.
type SignupUser struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"column:name"`
	Surname     string `json:"surname" gorm:"column:surname"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number"`
	Email       string `json:"email" gorm:"column:email;unique"`
	Password    string `json:"-" gorm:"column:password"`
}

func (SignupUser) TableName() string {
	return "signup"
}
