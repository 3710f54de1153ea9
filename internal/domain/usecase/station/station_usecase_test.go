package station

import (
	"context"
	"errors"
	"testing"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coremocks "github.com/fuelgrid/cng-marketplace/mocks/port/core"
	persistencemocks "github.com/fuelgrid/cng-marketplace/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testStation() *entity.Station {
	return &entity.Station{
		ID:            7,
		Name:          "GreenFuel Andheri",
		PhoneNumber:   "9000000001",
		Passcode:      "station-pass",
		City:          "Mumbai",
		FuelAvailable: true,
		Price:         "92.50",
		IsActive:      true,
	}
}

func TestStationLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid credentials", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockStationRepo.EXPECT().GetByPhoneNumber(ctx, "9000000001").Return(testStation(), nil).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		st, err := useCase.Login(ctx, "9000000001", "station-pass")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), st.ID)
	})

	t.Run("Wrong passcode", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockStationRepo.EXPECT().GetByPhoneNumber(ctx, "9000000001").Return(testStation(), nil).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		st, err := useCase.Login(ctx, "9000000001", "wrong")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, st)
	})

	t.Run("Unknown phone number", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockStationRepo.EXPECT().GetByPhoneNumber(ctx, "9000000001").Return(nil, errs.ErrStationNotFound).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		st, err := useCase.Login(ctx, "9000000001", "station-pass")

		assert.ErrorIs(t, err, errs.ErrStationNotFound)
		assert.Nil(t, st)
	})
}

func TestWorkerLogin(t *testing.T) {
	ctx := context.Background()

	worker := &entity.Worker{
		ID:          3,
		StationID:   7,
		Name:        "Ravi",
		PhoneNumber: "9000000002",
		Passcode:    "worker-pass",
	}

	t.Run("Valid credentials", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockWorkerRepo.EXPECT().GetByPhoneNumber(ctx, "9000000002").Return(worker, nil).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		result, err := useCase.WorkerLogin(ctx, "9000000002", "worker-pass")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), result.StationID)
	})

	t.Run("Wrong passcode", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockWorkerRepo.EXPECT().GetByPhoneNumber(ctx, "9000000002").Return(worker, nil).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		result, err := useCase.WorkerLogin(ctx, "9000000002", "wrong")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, result)
	})
}

func TestRegisterWorker(t *testing.T) {
	ctx := context.Background()

	req := RegisterWorkerRequest{
		Name:        "Ravi",
		PhoneNumber: "9000000002",
		Passcode:    "worker-pass",
	}

	t.Run("Successful worker registration", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		mockStationRepo.EXPECT().GetByID(ctx, uint64(7)).Return(testStation(), nil).Once()
		mockWorkerRepo.EXPECT().GetByPhoneNumber(ctx, "9000000002").Return(nil, errs.ErrWorkerNotFound).Once()
		mockWorkerRepo.EXPECT().Create(ctx, mock.MatchedBy(func(w *entity.Worker) bool {
			return w.StationID == 7 && w.PhoneNumber == "9000000002"
		})).Run(func(ctx context.Context, w *entity.Worker) {
			w.ID = 3
		}).Return(nil).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		worker, err := useCase.RegisterWorker(ctx, 7, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), worker.ID)
	})

	t.Run("Phone number already registered", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockStationRepo.EXPECT().GetByID(ctx, uint64(7)).Return(testStation(), nil).Once()
		mockWorkerRepo.EXPECT().GetByPhoneNumber(ctx, "9000000002").Return(&entity.Worker{ID: 3}, nil).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		worker, err := useCase.RegisterWorker(ctx, 7, req)

		assert.ErrorIs(t, err, errs.ErrDuplicateWorker)
		assert.Nil(t, worker)
	})

	t.Run("Unknown station", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockStationRepo.EXPECT().GetByID(ctx, uint64(7)).Return(nil, errs.ErrStationNotFound).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		worker, err := useCase.RegisterWorker(ctx, 7, req)

		assert.ErrorIs(t, err, errs.ErrStationNotFound)
		assert.Nil(t, worker)
	})

	t.Run("Lookup failure passes through", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockStationRepo.EXPECT().GetByID(ctx, uint64(7)).Return(testStation(), nil).Once()
		mockWorkerRepo.EXPECT().GetByPhoneNumber(ctx, "9000000002").Return(nil, databaseError).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		worker, err := useCase.RegisterWorker(ctx, 7, req)

		assert.Equal(t, databaseError, err)
		assert.Nil(t, worker)
	})
}

func TestSetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Toggles the flag and persists", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		mockStationRepo.EXPECT().GetByID(ctx, uint64(7)).Return(testStation(), nil).Once()
		mockStationRepo.EXPECT().Update(ctx, mock.MatchedBy(func(s *entity.Station) bool {
			return s.ID == 7 && !s.FuelAvailable
		})).Return(nil).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		st, err := useCase.SetAvailability(ctx, 7, false)

		require.NoError(t, err)
		assert.False(t, st.FuelAvailable)
	})

	t.Run("Unknown station", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockStationRepo.EXPECT().GetByID(ctx, uint64(7)).Return(nil, errs.ErrStationNotFound).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		st, err := useCase.SetAvailability(ctx, 7, false)

		assert.ErrorIs(t, err, errs.ErrStationNotFound)
		assert.Nil(t, st)
	})
}

func TestSetPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("Updates the posted price", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		mockStationRepo.EXPECT().GetByID(ctx, uint64(7)).Return(testStation(), nil).Once()
		mockStationRepo.EXPECT().Update(ctx, mock.MatchedBy(func(s *entity.Station) bool {
			return s.Price == "95.00"
		})).Return(nil).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		st, err := useCase.SetPrice(ctx, 7, "95.00")

		require.NoError(t, err)
		assert.Equal(t, "95.00", st.Price)
	})

	t.Run("Persistence failure passes through", func(t *testing.T) {
		mockStationRepo := persistencemocks.NewMockStationRepository(t)
		mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockStationRepo.EXPECT().GetByID(ctx, uint64(7)).Return(testStation(), nil).Once()
		mockStationRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Station")).Return(databaseError).Once()

		useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

		st, err := useCase.SetPrice(ctx, 7, "95.00")

		assert.Equal(t, databaseError, err)
		assert.Nil(t, st)
	})
}

func TestListActiveStations(t *testing.T) {
	ctx := context.Background()

	mockStationRepo := persistencemocks.NewMockStationRepository(t)
	mockWorkerRepo := persistencemocks.NewMockWorkerRepository(t)
	mockLogger := coremocks.NewMockLogger(t)

	stations := []*entity.Station{testStation()}
	mockStationRepo.EXPECT().ListActive(ctx).Return(stations, nil).Once()

	useCase := NewUseCase(mockStationRepo, mockWorkerRepo, mockLogger)

	result, err := useCase.ListActiveStations(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
