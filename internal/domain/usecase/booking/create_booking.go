package booking

import (
	"context"
	"fmt"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
)

// CreateBookingRequest carries the caller-supplied fields for a new booking
type CreateBookingRequest struct {
	StationID uint64
	SlotID    uint64
	Amount    string
	Status    string
}

// CreateBookingResult is the outcome of a booking attempt. Insufficient
// balance is a completed outcome with Created false, not an error; the
// transport layer keeps its contract of answering such requests normally.
type CreateBookingResult struct {
	Created       bool
	BookingID     uint64
	ResultBalance string
	Reason        string
}

// CreateBooking atomically verifies wallet sufficiency, creates the booking
// row, and debits the wallet, or fails without side effects. The wallet row
// is locked before the balance check and held until commit, so concurrent
// debits against the same wallet serialize and can never overdraw it.
//
// Possible errors:
// - ErrUserNotFound: If the user doesn't exist
// - ErrWalletNotFound: If the user has no wallet
// - ErrInvalidAmount / ErrNegativeAmount: If the amount is malformed
// - ErrWalletLocked: If lock acquisition fails under contention
// - ErrDatabaseConnection: For any datastore failure; nothing is persisted
func (s *Service) CreateBooking(ctx context.Context, userID uint64, req CreateBookingRequest) (*CreateBookingResult, error) {
	// Validate references and amount before touching the database
	newBooking, err := entity.NewBooking(userID, req.StationID, req.SlotID, req.Amount, req.Status, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	// Rollback on every exit path; a no-op once the transaction committed
	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to rollback booking transaction", map[string]any{
					"user_id": userID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	users := s.uow.GetUserRepository(txCtx)
	if _, err := users.GetByID(txCtx, userID); err != nil {
		return nil, err
	}

	// Exclusive row lock on the wallet; the balance check below happens
	// under this lock
	wallets := s.uow.GetWalletRepository(txCtx)
	wallet, err := wallets.GetByUserIDForUpdate(txCtx, userID)
	if err != nil {
		return nil, err
	}

	if !wallet.CanDebit(newBooking.AmountInPaise) {
		s.logger.Info("Booking rejected for insufficient wallet balance", map[string]any{
			"user_id":    userID,
			"station_id": req.StationID,
			"amount":     newBooking.Amount(),
			"balance":    wallet.FormattedBalance(),
		})
		return &CreateBookingResult{
			Created: false,
			Reason:  errs.ErrInsufficientBalance.Error(),
		}, nil
	}

	bookings := s.uow.GetBookingRepository(txCtx)
	if err := bookings.Create(txCtx, newBooking); err != nil {
		return nil, errs.NewBookingError(userID, req.StationID, req.SlotID, newBooking.Amount(),
			"failed to create booking row", err)
	}

	if err := wallet.Debit(newBooking.AmountInPaise, s.timeProvider); err != nil {
		// Unreachable after CanDebit under the row lock, but a failed debit
		// must still abort the whole transaction
		return nil, errs.NewBookingError(userID, req.StationID, req.SlotID, newBooking.Amount(),
			"debit failed after sufficiency check", err)
	}

	if err := wallets.UpdateBalance(txCtx, wallet); err != nil {
		return nil, errs.NewBookingError(userID, req.StationID, req.SlotID, newBooking.Amount(),
			"failed to persist wallet debit", err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit booking transaction: %w", err)
	}
	committed = true

	s.logger.Info("Booking created", map[string]any{
		"booking_id": newBooking.ID,
		"user_id":    userID,
		"station_id": req.StationID,
		"slot_id":    req.SlotID,
		"amount":     newBooking.Amount(),
		"balance":    wallet.FormattedBalance(),
	})

	return &CreateBookingResult{
		Created:       true,
		BookingID:     newBooking.ID,
		ResultBalance: wallet.FormattedBalance(),
	}, nil
}
