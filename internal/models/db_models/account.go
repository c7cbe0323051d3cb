package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string
}

func (Account) TableName() string { return "accounts" }
