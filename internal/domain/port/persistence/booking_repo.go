package persistence

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// BookingRepository defines methods to interact with booking data.
// Bookings are created only by the booking coordinator inside a unit of
// work; they are never mutated afterwards.
type BookingRepository interface {
	// Create saves a new booking and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If a referenced row doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, booking *entity.Booking) error

	// ListByUser returns all bookings created by the given user
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Booking, error)

	// ListByStation returns the joined station order rows (user name,
	// station name, slot window) for the station dashboard
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByStation(ctx context.Context, stationID uint64) ([]*entity.StationOrder, error)
}

// BookingSlotRepository defines methods to interact with reservable slots
type BookingSlotRepository interface {
	// GetByID retrieves a slot by ID
	//
	// Possible errors:
	// - ErrBookingSlotNotFound: If the slot doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.BookingSlot, error)

	// List returns all reservable slots
	List(ctx context.Context) ([]*entity.BookingSlot, error)

	// Create saves a new slot (used by the migration seeder)
	Create(ctx context.Context, slot *entity.BookingSlot) error
}
