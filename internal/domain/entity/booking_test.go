package entity

import (
	"testing"
	"time"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coremocks "github.com/fuelgrid/cng-marketplace/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid booking creation", func(t *testing.T) {
		booking, err := NewBooking(1, 2, 3, "150.50", "confirmed", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), booking.UserID)
		assert.Equal(t, uint64(2), booking.StationID)
		assert.Equal(t, uint64(3), booking.BookingSlotID)
		assert.Equal(t, int64(15050), booking.AmountInPaise)
		assert.Equal(t, "150.50", booking.Amount())
		assert.Equal(t, "confirmed", booking.Status)
		assert.Equal(t, fixedTime, booking.CreatedAt)
	})

	t.Run("Status is carried as-is", func(t *testing.T) {
		booking, err := NewBooking(1, 2, 3, "10", "anything goes", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "anything goes", booking.Status)
	})

	t.Run("Zero user ID should return error", func(t *testing.T) {
		booking, err := NewBooking(0, 2, 3, "150.50", "confirmed", mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, booking)
	})

	t.Run("Zero station or slot ID should return error", func(t *testing.T) {
		booking, err := NewBooking(1, 0, 3, "150.50", "confirmed", mockTime)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, booking)

		booking, err = NewBooking(1, 2, 0, "150.50", "confirmed", mockTime)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, booking)
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			amount      string
			errorType   error
			description string
		}{
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"-10.00", errs.ErrNegativeAmount, "Negative"},
			{"0.00", errs.ErrInvalidAmount, "Zero"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				booking, err := NewBooking(1, 2, 3, tc.amount, "confirmed", mockTime)
				assert.ErrorIs(t, err, tc.errorType)
				assert.Nil(t, booking)
			})
		}
	})
}
