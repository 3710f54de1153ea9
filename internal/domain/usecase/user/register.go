package user

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/persistence"
)

const (
	otpDigits           = 4
	walletNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// walletNumberMaxAttempts bounds the rejection sampling loop; with a
	// 36^12 space the first draw is effectively always free
	walletNumberMaxAttempts = 25
)

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	Name        string
	PhoneNumber string
}

// Register creates an inactive user with a fresh wallet and sends the
// verification OTP. The user and wallet rows are committed together; an OTP
// delivery failure aborts the whole registration.
//
// Possible errors:
// - ErrInvalidRequest / ErrInvalidPhoneNumber: If the form fields are malformed
// - ErrOTPDelivery: If the SMS gateway rejects the send
// - ErrDuplicateUser: If the phone number is already registered
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) Register(ctx context.Context, req RegisterRequest) error {
	newUser, err := entity.NewUser(req.Name, req.PhoneNumber, u.timeProvider)
	if err != nil {
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	newUser.SetOTP(otp)

	if err := u.otpSender.Send(ctx, req.PhoneNumber, otp); err != nil {
		u.logger.Error("OTP delivery failed during registration", map[string]any{
			"phone_number": req.PhoneNumber,
			"error":        err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrOTPDelivery, err.Error())
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin registration transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to rollback registration transaction", map[string]any{
					"phone_number": req.PhoneNumber,
					"error":        rbErr.Error(),
				})
			}
		}
	}()

	users := u.uow.GetUserRepository(txCtx)
	if err := users.Create(txCtx, newUser); err != nil {
		return err
	}

	wallets := u.uow.GetWalletRepository(txCtx)
	walletNumber, err := u.generateWalletNumber(txCtx, wallets)
	if err != nil {
		return err
	}

	wallet, err := entity.NewWallet(newUser.ID, walletNumber, u.timeProvider)
	if err != nil {
		return err
	}
	if err := wallets.Create(txCtx, wallet); err != nil {
		return err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit registration transaction: %w", err)
	}
	committed = true

	u.logger.Info("User registered", map[string]any{
		"user_id":       newUser.ID,
		"wallet_number": walletNumber,
	})
	return nil
}

// generateWalletNumber draws random wallet numbers and rejects collisions
// against existing rows until a free one is found
func (u *UseCase) generateWalletNumber(ctx context.Context, wallets persistence.WalletRepository) (string, error) {
	for attempt := 0; attempt < walletNumberMaxAttempts; attempt++ {
		candidate, err := randomWalletNumber()
		if err != nil {
			return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
		}

		exists, err := wallets.WalletNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: could not generate a unique wallet number", errs.ErrInternalServer)
}

func randomWalletNumber() (string, error) {
	buf := make([]byte, entity.WalletNumberLength)
	max := big.NewInt(int64(len(walletNumberCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = walletNumberCharset[n.Int64()]
	}
	return string(buf), nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
