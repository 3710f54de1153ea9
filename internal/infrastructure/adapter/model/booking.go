package model

import (
	"time"
)

// Booking represents the database model for fuel slot bookings
type Booking struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	StationID     uint64    `gorm:"not null;index"`
	BookingSlotID uint64    `gorm:"not null"`
	Amount        int64     `gorm:"not null"` // Amount in paise
	Status        string    `gorm:"type:varchar(30)"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// BookingSlot represents the database model for reservable time windows
type BookingSlot struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
}

// TableName specifies the table name for BookingSlot
func (BookingSlot) TableName() string {
	return "booking_slots"
}
