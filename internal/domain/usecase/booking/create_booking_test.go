package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/persistence"
	coremocks "github.com/fuelgrid/cng-marketplace/mocks/port/core"
	persistencemocks "github.com/fuelgrid/cng-marketplace/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Key for transaction context
const txKey contextKey = "tx"

func newTestWallet(t *testing.T, userID uint64, balancePaise int64) *entity.Wallet {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	wallet, err := entity.NewWallet(userID, "AB12CD34EF56", mockTime)
	require.NoError(t, err)
	wallet.SetBalance(balancePaise, mockTime)
	return wallet
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uint64(42)

	req := CreateBookingRequest{
		StationID: 7,
		SlotID:    3,
		Amount:    "150.00",
		Status:    "confirmed",
	}

	t.Run("Successful booking debits the wallet and commits", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetWalletRepository(txCtx).Return(mockWalletRepo).Once()
		mockUow.EXPECT().GetBookingRepository(txCtx).Return(mockBookingRepo).Once()
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().GetByID(txCtx, userID).Return(&entity.User{ID: userID, IsActive: true}, nil).Once()

		wallet := newTestWallet(t, userID, 20000)
		mockWalletRepo.EXPECT().GetByUserIDForUpdate(txCtx, userID).Return(wallet, nil).Once()
		mockWalletRepo.EXPECT().UpdateBalance(txCtx, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.Balance() == 5000
		})).Return(nil).Once()

		mockBookingRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(b *entity.Booking) bool {
			return b.UserID == userID && b.StationID == 7 && b.BookingSlotID == 3 && b.AmountInPaise == 15000
		})).Run(func(ctx context.Context, b *entity.Booking) {
			b.ID = 101
		}).Return(nil).Once()

		svc := NewService(mockUow, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.CreateBooking(ctx, userID, req)

		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, uint64(101), result.BookingID)
		assert.Equal(t, "50.00", result.ResultBalance)
	})

	t.Run("Insufficient balance is a completed outcome, not an error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetWalletRepository(txCtx).Return(mockWalletRepo).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().GetByID(txCtx, userID).Return(&entity.User{ID: userID, IsActive: true}, nil).Once()

		// Balance exactly equal to the amount: the strict boundary rejects it
		wallet := newTestWallet(t, userID, 15000)
		mockWalletRepo.EXPECT().GetByUserIDForUpdate(txCtx, userID).Return(wallet, nil).Once()

		svc := NewService(mockUow, nil, nil, mockTime, mockLogger)

		result, err := svc.CreateBooking(ctx, userID, req)

		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, errs.ErrInsufficientBalance.Error(), result.Reason)
		assert.Equal(t, int64(15000), wallet.Balance())
	})

	t.Run("User not found rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().GetByID(txCtx, userID).Return(nil, errs.ErrUserNotFound).Once()

		svc := NewService(mockUow, nil, nil, mockTime, mockLogger)

		result, err := svc.CreateBooking(ctx, userID, req)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, result)
	})

	t.Run("Wallet lock failure rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetWalletRepository(txCtx).Return(mockWalletRepo).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().GetByID(txCtx, userID).Return(&entity.User{ID: userID}, nil).Once()
		mockWalletRepo.EXPECT().GetByUserIDForUpdate(txCtx, userID).Return(nil, errs.ErrWalletLocked).Once()

		svc := NewService(mockUow, nil, nil, mockTime, mockLogger)

		result, err := svc.CreateBooking(ctx, userID, req)

		assert.ErrorIs(t, err, errs.ErrWalletLocked)
		assert.Nil(t, result)
	})

	t.Run("Booking row failure aborts without persisting the debit", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetWalletRepository(txCtx).Return(mockWalletRepo).Once()
		mockUow.EXPECT().GetBookingRepository(txCtx).Return(mockBookingRepo).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().GetByID(txCtx, userID).Return(&entity.User{ID: userID}, nil).Once()
		mockWalletRepo.EXPECT().GetByUserIDForUpdate(txCtx, userID).Return(newTestWallet(t, userID, 20000), nil).Once()

		databaseError := errors.New("insert failed")
		mockBookingRepo.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.Booking")).Return(databaseError).Once()

		svc := NewService(mockUow, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.CreateBooking(ctx, userID, req)

		assert.Error(t, err)
		assert.Nil(t, result)

		var bookingErr *errs.BookingError
		require.True(t, errors.As(err, &bookingErr))
		assert.ErrorIs(t, err, databaseError)
	})

	t.Run("Balance persistence failure aborts the transaction", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetWalletRepository(txCtx).Return(mockWalletRepo).Once()
		mockUow.EXPECT().GetBookingRepository(txCtx).Return(mockBookingRepo).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().GetByID(txCtx, userID).Return(&entity.User{ID: userID}, nil).Once()
		mockWalletRepo.EXPECT().GetByUserIDForUpdate(txCtx, userID).Return(newTestWallet(t, userID, 20000), nil).Once()
		mockBookingRepo.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()

		databaseError := errors.New("update failed")
		mockWalletRepo.EXPECT().UpdateBalance(txCtx, mock.AnythingOfType("*entity.Wallet")).Return(databaseError).Once()

		svc := NewService(mockUow, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.CreateBooking(ctx, userID, req)

		assert.ErrorIs(t, err, databaseError)
		assert.Nil(t, result)
	})

	t.Run("Commit failure surfaces as an error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockWalletRepo := persistencemocks.NewMockWalletRepository(t)
		mockBookingRepo := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, txKey, "mockTransaction")
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetUserRepository(txCtx).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetWalletRepository(txCtx).Return(mockWalletRepo).Once()
		mockUow.EXPECT().GetBookingRepository(txCtx).Return(mockBookingRepo).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		mockUserRepo.EXPECT().GetByID(txCtx, userID).Return(&entity.User{ID: userID}, nil).Once()
		mockWalletRepo.EXPECT().GetByUserIDForUpdate(txCtx, userID).Return(newTestWallet(t, userID, 20000), nil).Once()
		mockBookingRepo.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()
		mockWalletRepo.EXPECT().UpdateBalance(txCtx, mock.AnythingOfType("*entity.Wallet")).Return(nil).Once()

		commitError := errors.New("commit failed")
		mockUow.EXPECT().Commit(txCtx).Return(commitError).Once()

		svc := NewService(mockUow, mockBookingRepo, nil, mockTime, mockLogger)

		result, err := svc.CreateBooking(ctx, userID, req)

		assert.ErrorIs(t, err, commitError)
		assert.Nil(t, result)
	})

	t.Run("Invalid amount fails before touching the database", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		svc := NewService(mockUow, nil, nil, mockTime, mockLogger)

		for _, amount := range []string{"abc", "-10.00", "0.00", "1.234"} {
			badReq := req
			badReq.Amount = amount

			result, err := svc.CreateBooking(ctx, userID, badReq)

			assert.Error(t, err)
			assert.Nil(t, result)
		}
	})

	t.Run("Begin failure surfaces as an error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		beginError := errors.New("connection refused")
		mockUow.EXPECT().Begin(mock.Anything).Return(nil, beginError).Once()

		svc := NewService(mockUow, nil, nil, mockTime, mockLogger)

		result, err := svc.CreateBooking(ctx, userID, req)

		assert.ErrorIs(t, err, beginError)
		assert.Nil(t, result)
	})
}

// The fakes below give the coordinator a real (if tiny) transactional store
// so concurrent bookings exercise the actual lock-check-debit ordering.

type fakeStore struct {
	rowLock sync.Mutex // stands in for the wallet row lock
	mu      sync.Mutex // guards the fields below
	balance int64
	nextID  uint64
	created int
}

type fakeTxState struct {
	holdsRowLock bool
}

type fakeTxKeyType string

const fakeTxKey fakeTxKeyType = "fake-tx"

type fakeUnitOfWork struct {
	store *fakeStore
	tp    *coremocks.MockTimeProvider
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return context.WithValue(ctx, fakeTxKey, &fakeTxState{}), nil
}

func (u *fakeUnitOfWork) release(ctx context.Context) {
	state, _ := ctx.Value(fakeTxKey).(*fakeTxState)
	if state != nil && state.holdsRowLock {
		state.holdsRowLock = false
		u.store.rowLock.Unlock()
	}
}

func (u *fakeUnitOfWork) Commit(ctx context.Context) error {
	u.release(ctx)
	return nil
}

func (u *fakeUnitOfWork) Rollback(ctx context.Context) error {
	u.release(ctx)
	return nil
}

func (u *fakeUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return &fakeUserRepo{}
}

func (u *fakeUnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return &fakeWalletRepo{store: u.store, tp: u.tp}
}

func (u *fakeUnitOfWork) GetBookingRepository(ctx context.Context) persistence.BookingRepository {
	return &fakeBookingRepo{store: u.store}
}

type fakeUserRepo struct{ persistence.UserRepository }

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	return &entity.User{ID: id, IsActive: true}, nil
}

type fakeWalletRepo struct {
	persistence.WalletRepository
	store *fakeStore
	tp    *coremocks.MockTimeProvider
}

func (r *fakeWalletRepo) GetByUserIDForUpdate(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	r.store.rowLock.Lock()
	if state, _ := ctx.Value(fakeTxKey).(*fakeTxState); state != nil {
		state.holdsRowLock = true
	}

	wallet, err := entity.NewWallet(userID, "AB12CD34EF56", r.tp)
	if err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	wallet.SetBalance(r.store.balance, r.tp)
	r.store.mu.Unlock()
	return wallet, nil
}

func (r *fakeWalletRepo) UpdateBalance(ctx context.Context, wallet *entity.Wallet) error {
	r.store.mu.Lock()
	r.store.balance = wallet.Balance()
	r.store.mu.Unlock()
	return nil
}

type fakeBookingRepo struct {
	persistence.BookingRepository
	store *fakeStore
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.store.mu.Lock()
	r.store.nextID++
	booking.ID = r.store.nextID
	r.store.created++
	r.store.mu.Unlock()
	return nil
}

func TestCreateBookingConcurrency(t *testing.T) {
	t.Run("Concurrent debits against one wallet never overdraw it", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		store := &fakeStore{balance: 10000} // 100.00
		uow := &fakeUnitOfWork{store: store, tp: mockTime}
		svc := NewService(uow, nil, nil, mockTime, mockLogger)

		req := CreateBookingRequest{StationID: 7, SlotID: 3, Amount: "60.00", Status: "confirmed"}

		var wg sync.WaitGroup
		results := make([]*CreateBookingResult, 2)
		callErrs := make([]error, 2)

		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], callErrs[i] = svc.CreateBooking(context.Background(), 42, req)
			}(i)
		}
		wg.Wait()

		require.NoError(t, callErrs[0])
		require.NoError(t, callErrs[1])

		succeeded := 0
		for _, result := range results {
			if result.Created {
				succeeded++
				assert.Equal(t, "40.00", result.ResultBalance)
			} else {
				assert.Equal(t, errs.ErrInsufficientBalance.Error(), result.Reason)
			}
		}

		// Exactly one of the two requests may win; the wallet ends at 40.00,
		// never negative
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, int64(4000), store.balance)
		assert.Equal(t, 1, store.created)
	})
}
