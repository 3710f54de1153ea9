package entity

import (
	"testing"
	"time"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coremocks "github.com/fuelgrid/cng-marketplace/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStationDetails() StationDetails {
	return StationDetails{
		Name:          "GreenFuel Andheri",
		PhoneNumber:   "9000000001",
		Passcode:      "station-pass",
		Description:   "24x7 CNG station",
		Latitude:      "19.1197",
		Longitude:     "72.8464",
		Address:       "Western Express Highway",
		City:          "Mumbai",
		State:         "Maharashtra",
		Country:       "India",
		PostalCode:    "400053",
		FuelAvailable: true,
		Price:         "92.50",
	}
}

func TestNewStation(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid station creation", func(t *testing.T) {
		st, err := NewStation(validStationDetails(), mockTime)

		require.NoError(t, err)
		assert.Equal(t, "GreenFuel Andheri", st.Name)
		assert.Equal(t, "Mumbai", st.City)
		assert.True(t, st.FuelAvailable)
		assert.True(t, st.IsActive)
		assert.Equal(t, "92.50", st.Price)
		assert.Equal(t, fixedTime, st.CreatedAt)
	})

	t.Run("Empty name should return error", func(t *testing.T) {
		details := validStationDetails()
		details.Name = "  "

		st, err := NewStation(details, mockTime)

		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, st)
	})

	t.Run("Invalid phone number should return error", func(t *testing.T) {
		details := validStationDetails()
		details.PhoneNumber = "90000000011"

		st, err := NewStation(details, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidPhoneNumber)
		assert.Nil(t, st)
	})

	t.Run("Empty passcode should return error", func(t *testing.T) {
		details := validStationDetails()
		details.Passcode = ""

		st, err := NewStation(details, mockTime)

		assert.Equal(t, errs.ErrInvalidCredentials, err)
		assert.Nil(t, st)
	})
}

func TestStationCheckPasscode(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	st, _ := NewStation(validStationDetails(), mockTime)

	assert.NoError(t, st.CheckPasscode("station-pass"))
	assert.ErrorIs(t, st.CheckPasscode("wrong"), errs.ErrInvalidCredentials)
	assert.ErrorIs(t, st.CheckPasscode(""), errs.ErrInvalidCredentials)
}

func TestNewWorker(t *testing.T) {
	t.Run("Valid worker creation", func(t *testing.T) {
		worker, err := NewWorker(5, "Ravi", "9000000002", "worker-pass")

		require.NoError(t, err)
		assert.Equal(t, uint64(5), worker.StationID)
		assert.Equal(t, "Ravi", worker.Name)
		assert.Equal(t, "9000000002", worker.PhoneNumber)
	})

	t.Run("Zero station ID should return error", func(t *testing.T) {
		worker, err := NewWorker(0, "Ravi", "9000000002", "worker-pass")

		assert.Equal(t, errs.ErrStationNotFound, err)
		assert.Nil(t, worker)
	})

	t.Run("Empty passcode should return error", func(t *testing.T) {
		worker, err := NewWorker(5, "Ravi", "9000000002", "")

		assert.Equal(t, errs.ErrInvalidCredentials, err)
		assert.Nil(t, worker)
	})
}

func TestWorkerCheckPasscode(t *testing.T) {
	worker, _ := NewWorker(5, "Ravi", "9000000002", "worker-pass")

	assert.NoError(t, worker.CheckPasscode("worker-pass"))
	assert.ErrorIs(t, worker.CheckPasscode("wrong"), errs.ErrInvalidCredentials)
}
