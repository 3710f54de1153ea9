package model

import (
	"time"
)

// Station represents the database model for fueling stations
type Station struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(100);not null"`
	PhoneNumber   string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	Passcode      string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	Latitude      string    `gorm:"type:varchar(30)"`
	Longitude     string    `gorm:"type:varchar(30)"`
	Address       string    `gorm:"type:text"`
	City          string    `gorm:"type:varchar(50)"`
	State         string    `gorm:"type:varchar(50)"`
	Country       string    `gorm:"type:varchar(50)"`
	PostalCode    string    `gorm:"type:varchar(10)"`
	FuelAvailable bool      `gorm:"not null;default:true"`
	Price         string    `gorm:"type:varchar(20)"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Station
func (Station) TableName() string {
	return "stations"
}
