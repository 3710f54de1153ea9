package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coremocks "github.com/fuelgrid/cng-marketplace/mocks/port/core"
	persistencemocks "github.com/fuelgrid/cng-marketplace/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUserOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the user's bookings", func(t *testing.T) {
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		bookings := []*entity.Booking{
			{ID: 2, UserID: 42, StationID: 7, AmountInPaise: 15000},
			{ID: 1, UserID: 42, StationID: 9, AmountInPaise: 8000},
		}
		mockBookingRepo.EXPECT().ListByUser(ctx, uint64(42)).Return(bookings, nil).Once()

		svc := NewService(nil, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.ListUserOrders(ctx, 42)

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "150.00", result[0].Amount())
	})

	t.Run("No bookings maps to booking not found", func(t *testing.T) {
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockBookingRepo.EXPECT().ListByUser(ctx, uint64(42)).Return([]*entity.Booking{}, nil).Once()

		svc := NewService(nil, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.ListUserOrders(ctx, 42)

		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
		assert.Nil(t, result)
	})

	t.Run("Repository errors pass through", func(t *testing.T) {
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockBookingRepo.EXPECT().ListByUser(ctx, uint64(42)).Return(nil, databaseError).Once()

		svc := NewService(nil, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.ListUserOrders(ctx, 42)

		assert.Equal(t, databaseError, err)
		assert.Nil(t, result)
	})
}

func TestListStationOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the joined dashboard rows", func(t *testing.T) {
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		orders := []*entity.StationOrder{
			{
				OrderID:       1,
				UserName:      "Asha",
				StationName:   "GreenFuel Andheri",
				SlotStartTime: time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC),
				SlotEndTime:   time.Date(2000, 1, 1, 10, 0, 0, 0, time.UTC),
				Amount:        "150.00",
				Status:        "confirmed",
			},
		}
		mockBookingRepo.EXPECT().ListByStation(ctx, uint64(7)).Return(orders, nil).Once()

		svc := NewService(nil, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.ListStationOrders(ctx, 7)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Asha", result[0].UserName)
		assert.Equal(t, "150.00", result[0].Amount)
	})

	t.Run("No orders maps to booking not found", func(t *testing.T) {
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockBookingRepo.EXPECT().ListByStation(ctx, uint64(7)).Return(nil, nil).Once()

		svc := NewService(nil, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.ListStationOrders(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
		assert.Nil(t, result)
	})
}

func TestListSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns all reservable slots", func(t *testing.T) {
		mockSlotRepo := persistencemocks.NewMockBookingSlotRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		slots := []*entity.BookingSlot{
			{ID: 1, StartTime: time.Date(2000, 1, 1, 6, 0, 0, 0, time.UTC), EndTime: time.Date(2000, 1, 1, 7, 0, 0, 0, time.UTC)},
			{ID: 2, StartTime: time.Date(2000, 1, 1, 7, 0, 0, 0, time.UTC), EndTime: time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC)},
		}
		mockSlotRepo.EXPECT().List(ctx).Return(slots, nil).Once()

		svc := NewService(nil, nil, mockSlotRepo, mockTime, mockLogger)

		result, err := svc.ListSlots(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}
