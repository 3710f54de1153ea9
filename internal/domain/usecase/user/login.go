package user

import (
	"context"
	"fmt"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
)

// Login regenerates and delivers an OTP for an already-verified account
//
// Possible errors:
// - ErrUserNotFound: If the phone number is unknown
// - ErrAccountInactive: If the phone number was never verified
// - ErrOTPDelivery: If the SMS gateway rejects the send
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) Login(ctx context.Context, phoneNumber string) error {
	account, err := u.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return err
	}

	if !account.IsActive {
		return errs.ErrAccountInactive
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	account.SetOTP(otp)

	if err := u.otpSender.Send(ctx, phoneNumber, otp); err != nil {
		u.logger.Error("OTP delivery failed during login", map[string]any{
			"user_id": account.ID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrOTPDelivery, err.Error())
	}

	return u.userRepo.Update(ctx, account)
}

// Verify checks the submitted OTP, activates the account, and clears the
// stored OTP. The caller issues the access token for the returned user.
//
// Possible errors:
// - ErrUserNotFound: If the phone number is unknown
// - ErrInvalidOTP: If the OTP does not match
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) Verify(ctx context.Context, phoneNumber, otp string) (*entity.User, error) {
	account, err := u.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	if err := account.VerifyOTP(otp); err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	u.logger.Info("Phone number verified", map[string]any{
		"user_id": account.ID,
	})
	return account, nil
}
