package entity

import (
	"time"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
)

// Booking is a reservation of a station's fuel slot paid for by a wallet
// debit. A booking row only ever comes into existence through the booking
// coordinator, together with the matching debit.
type Booking struct {
	ID            uint64
	UserID        uint64
	StationID     uint64
	BookingSlotID uint64
	AmountInPaise int64
	Status        string // opaque caller-supplied value, never validated
	CreatedAt     time.Time
}

// NewBooking creates a booking with basic reference validation. The amount
// arrives as a decimal string and is converted to paise.
func NewBooking(userID, stationID, slotID uint64, amount, status string, timeProvider coreport.TimeProvider) (*Booking, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if stationID == 0 || slotID == 0 {
		return nil, errs.ErrInvalidRequest
	}

	amountInPaise, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountInPaise <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Booking{
		UserID:        userID,
		StationID:     stationID,
		BookingSlotID: slotID,
		AmountInPaise: amountInPaise,
		Status:        status,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// Amount returns the booking amount as a string with 2 decimal places
func (b *Booking) Amount() string {
	return PaiseToString(b.AmountInPaise)
}

// BookingSlot is a reservable time window referenced by bookings
type BookingSlot struct {
	ID        uint64
	StartTime time.Time
	EndTime   time.Time
}

// StationOrder is the joined read model the station dashboard consumes:
// one row per booking with the user, station, and slot context resolved.
type StationOrder struct {
	OrderID       uint64
	UserName      string
	StationName   string
	SlotStartTime time.Time
	SlotEndTime   time.Time
	Amount        string
	Status        string
}
