package model

import (
	"time"
)

// Wallet represents the database model for user wallets
type Wallet struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"not null;uniqueIndex"`
	WalletNumber string    `gorm:"type:varchar(12);not null;uniqueIndex"`
	Balance      int64     `gorm:"not null"` // Balance in paise
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
