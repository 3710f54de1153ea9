package model

import (
	"time"
)

// User represents the database model for marketplace users
type User struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null"`
	PhoneNumber string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	OTP         string    `gorm:"type:varchar(10)"`
	IsActive    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
