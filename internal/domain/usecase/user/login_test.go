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

func activeUser() *entity.User {
	return &entity.User{
		ID:          42,
		Name:        "Asha",
		PhoneNumber: "9876543210",
		IsActive:    true,
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful login rotates and delivers a fresh OTP", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSender := gatewaymocks.NewMockOTPSender(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByPhoneNumber(ctx, "9876543210").Return(activeUser(), nil).Once()
		mockSender.EXPECT().Send(mock.Anything, "9876543210", mock.MatchedBy(func(otp string) bool {
			return len(otp) == 4
		})).Return(nil).Once()
		mockUserRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 42 && u.OTP != ""
		})).Return(nil).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, mockSender, mockTime, mockLogger)

		err := useCase.Login(ctx, "9876543210")

		assert.NoError(t, err)
	})

	t.Run("Inactive account cannot log in", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSender := gatewaymocks.NewMockOTPSender(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		inactive := activeUser()
		inactive.IsActive = false
		mockUserRepo.EXPECT().GetByPhoneNumber(ctx, "9876543210").Return(inactive, nil).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, mockSender, mockTime, mockLogger)

		err := useCase.Login(ctx, "9876543210")

		assert.ErrorIs(t, err, errs.ErrAccountInactive)
	})

	t.Run("Unknown phone number", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSender := gatewaymocks.NewMockOTPSender(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByPhoneNumber(ctx, "9876543210").Return(nil, errs.ErrUserNotFound).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, mockSender, mockTime, mockLogger)

		err := useCase.Login(ctx, "9876543210")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Delivery failure aborts without persisting the OTP", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockSender := gatewaymocks.NewMockOTPSender(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()
		mockUserRepo.EXPECT().GetByPhoneNumber(ctx, "9876543210").Return(activeUser(), nil).Once()
		mockSender.EXPECT().Send(mock.Anything, "9876543210", mock.Anything).
			Return(errors.New("gateway timeout")).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, mockSender, mockTime, mockLogger)

		err := useCase.Login(ctx, "9876543210")

		assert.ErrorIs(t, err, errs.ErrOTPDelivery)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("Matching OTP activates the account", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		pending := activeUser()
		pending.IsActive = false
		pending.OTP = "4821"
		mockUserRepo.EXPECT().GetByPhoneNumber(ctx, "9876543210").Return(pending, nil).Once()
		mockUserRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.IsActive && u.OTP == ""
		})).Return(nil).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, nil, mockTime, mockLogger)

		account, err := useCase.Verify(ctx, "9876543210", "4821")

		require.NoError(t, err)
		assert.True(t, account.IsActive)
		assert.Empty(t, account.OTP)
	})

	t.Run("Mismatched OTP is rejected and nothing is persisted", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		pending := activeUser()
		pending.IsActive = false
		pending.OTP = "4821"
		mockUserRepo.EXPECT().GetByPhoneNumber(ctx, "9876543210").Return(pending, nil).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, nil, mockTime, mockLogger)

		account, err := useCase.Verify(ctx, "9876543210", "0000")

		assert.ErrorIs(t, err, errs.ErrInvalidOTP)
		assert.Nil(t, account)
	})

	t.Run("Update failure surfaces", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		pending := activeUser()
		pending.IsActive = false
		pending.OTP = "4821"
		databaseError := errors.New("database connection error")
		mockUserRepo.EXPECT().GetByPhoneNumber(ctx, "9876543210").Return(pending, nil).Once()
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(databaseError).Once()

		useCase := NewUseCase(nil, mockUserRepo, nil, nil, nil, mockTime, mockLogger)

		account, err := useCase.Verify(ctx, "9876543210", "4821")

		assert.Equal(t, databaseError, err)
		assert.Nil(t, account)
	})
}

func TestGetWallet(t *testing.T) {
	ctx := context.Background()

	mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockTimeForWallet := coremocks.NewMockTimeProvider(t)
	mockTimeForWallet.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	wallet, err := entity.NewWallet(42, "AB12CD34EF56", mockTimeForWallet)
	require.NoError(t, err)
	wallet.SetBalance(15050, mockTimeForWallet)

	mockWalletRepo.EXPECT().GetByUserID(ctx, uint64(42)).Return(wallet, nil).Once()

	useCase := NewUseCase(nil, nil, mockWalletRepo, nil, nil, mockTime, mockLogger)

	result, err := useCase.GetWallet(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, "150.50", result.FormattedBalance())
}
