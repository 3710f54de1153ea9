package booking

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/persistence"
)

// Service coordinates booking creation and listing. Creation runs inside a
// unit of work; listings read through plain repositories.
type Service struct {
	uow          persistence.UnitOfWork
	bookingRepo  persistence.BookingRepository
	slotRepo     persistence.BookingSlotRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new booking service
func NewService(
	uow persistence.UnitOfWork,
	bookingRepo persistence.BookingRepository,
	slotRepo persistence.BookingSlotRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListUserOrders returns all bookings created by the given user
//
// Possible errors:
// - ErrBookingNotFound: If the user has no bookings
// - ErrDatabaseConnection: If database connection fails
func (s *Service) ListUserOrders(ctx context.Context, userID uint64) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, errs.ErrBookingNotFound
	}
	return bookings, nil
}

// ListStationOrders returns the joined order rows for the station dashboard
//
// Possible errors:
// - ErrBookingNotFound: If the station has no orders
// - ErrDatabaseConnection: If database connection fails
func (s *Service) ListStationOrders(ctx context.Context, stationID uint64) ([]*entity.StationOrder, error) {
	orders, err := s.bookingRepo.ListByStation(ctx, stationID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.ErrBookingNotFound
	}
	return orders, nil
}

// ListSlots returns all reservable booking slots
func (s *Service) ListSlots(ctx context.Context) ([]*entity.BookingSlot, error) {
	return s.slotRepo.List(ctx)
}
