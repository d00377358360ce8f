package model

type User struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string  `gorm:"size:150;not null"`
	Email        string  `gorm:"size:100;not null;uniqueIndex"`
	Phone        string  `gorm:"size:15;not null;uniqueIndex"`
	IsAdmin      bool    `gorm:"not null;default:false"`
	UPIID        *string `gorm:"column:upi_id;size:255"`
}

func (User) TableName() string {
	return "users"
}
