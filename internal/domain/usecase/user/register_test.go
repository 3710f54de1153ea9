package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coremocks "github.com/fuelgrid/cng-marketplace/mocks/port/core"
	gatewaymocks "github.com/fuelgrid/cng-marketplace/mocks/port/gateway"
	persistencemocks "github.com/fuelgrid/cng-marketplace/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Key for transaction context
const txKey contextKey = "tx"

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	req := RegisterRequest{
		Name:        "Asha",
		PhoneNumber: "9876543210",
	}

	t.Run("Successful registration commits user and wallet together", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
		mockSender := gatewaymocks.NewMockOTPSender(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		mockSender.EXPECT().Send(mock.Anything, "9876543210", mock.MatchedBy(func(otp string) bool {
			return len(otp) == 4
		})).Return(nil).Once()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetWalletRepository(txCtx).Return(mockWalletRepo).Once()
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.PhoneNumber == "9876543210" && !u.IsActive && u.OTP != ""
		})).Run(func(ctx context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()

		mockWalletRepo.EXPECT().WalletNumberExists(txCtx, mock.MatchedBy(func(n string) bool {
			return len(n) == entity.WalletNumberLength
		})).Return(false, nil).Once()
		mockWalletRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.UserID == 42 && w.Balance() == 0
		})).Return(nil).Once()

		useCase := NewUseCase(mockUow, mockUserRepo, mockWalletRepo, nil, mockSender, mockTime, mockLogger)

		err := useCase.Register(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("Wallet number collisions are resampled", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
		mockSender := gatewaymocks.NewMockOTPSender(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
		mockSender.EXPECT().Send(mock.Anything, "9876543210", mock.Anything).Return(nil).Once()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetWalletRepository(txCtx).Return(mockWalletRepo).Once()
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.User")).Run(func(ctx context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()

		// First two draws collide, third is free
		mockWalletRepo.EXPECT().WalletNumberExists(txCtx, mock.Anything).Return(true, nil).Twice()
		mockWalletRepo.EXPECT().WalletNumberExists(txCtx, mock.Anything).Return(false, nil).Once()
		mockWalletRepo.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.Wallet")).Return(nil).Once()

		useCase := NewUseCase(mockUow, mockUserRepo, mockWalletRepo, nil, mockSender, mockTime, mockLogger)

		err := useCase.Register(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("OTP delivery failure aborts before any write", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockSender := gatewaymocks.NewMockOTPSender(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		mockSender.EXPECT().Send(mock.Anything, "9876543210", mock.Anything).
			Return(errors.New("gateway timeout")).Once()

		useCase := NewUseCase(mockUow, nil, nil, nil, mockSender, mockTime, mockLogger)

		err := useCase.Register(ctx, req)

		assert.ErrorIs(t, err, errs.ErrOTPDelivery)
	})

	t.Run("Duplicate phone number rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSender := gatewaymocks.NewMockOTPSender(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockSender.EXPECT().Send(mock.Anything, "9876543210", mock.Anything).Return(nil).Once()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.User")).Return(errs.ErrDuplicateUser).Once()

		useCase := NewUseCase(mockUow, mockUserRepo, nil, nil, mockSender, mockTime, mockLogger)

		err := useCase.Register(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Invalid form fields fail before the gateway is touched", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger := coremocks.NewMockLogger(t)

		useCase := NewUseCase(nil, nil, nil, nil, nil, mockTime, mockLogger)

		err := useCase.Register(ctx, RegisterRequest{Name: "", PhoneNumber: "9876543210"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		err = useCase.Register(ctx, RegisterRequest{Name: "Asha", PhoneNumber: "98765432101"})
		assert.ErrorIs(t, err, errs.ErrInvalidPhoneNumber)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user is deleted", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByID(ctx, uint64(42)).Return(&entity.User{ID: 42}, nil).Once()
		mockUserRepo.EXPECT().Delete(ctx, uint64(42)).Return(nil).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, nil, mockTime, mockLogger)

		assert.NoError(t, useCase.DeleteUser(ctx, 42))
	})

	t.Run("Unknown user returns not found", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByID(ctx, uint64(42)).Return(nil, errs.ErrUserNotFound).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, nil, mockTime, mockLogger)

		assert.ErrorIs(t, useCase.DeleteUser(ctx, 42), errs.ErrUserNotFound)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Negative paging values fall back to defaults", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		users := []*entity.User{{ID: 1}, {ID: 2}}
		mockUserRepo.EXPECT().List(ctx, 0, 10).Return(users, nil).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, nil, mockTime, mockLogger)

		result, err := useCase.ListUsers(ctx, -5, 0)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}
