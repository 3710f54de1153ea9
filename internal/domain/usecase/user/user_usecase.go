package user

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/gateway"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/persistence"
)

// UseCase handles user-facing business logic: registration, OTP login,
// profile, wallet reads, and vehicle management.
type UseCase struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	walletRepo   persistence.WalletRepository
	vehicleRepo  persistence.VehicleRepository
	otpSender    gateway.OTPSender
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new user use case
func NewUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	walletRepo persistence.WalletRepository,
	vehicleRepo persistence.VehicleRepository,
	otpSender gateway.OTPSender,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		uow:          uow,
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		vehicleRepo:  vehicleRepo,
		otpSender:    otpSender,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetProfile returns the user owning the given ID
func (u *UseCase) GetProfile(ctx context.Context, userID uint64) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// GetWallet returns the wallet owned by the given user
func (u *UseCase) GetWallet(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	return u.walletRepo.GetByUserID(ctx, userID)
}

// ListUsers returns a page of users
func (u *UseCase) ListUsers(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	return u.userRepo.List(ctx, skip, limit)
}

// DeleteUser removes a user account
func (u *UseCase) DeleteUser(ctx context.Context, userID uint64) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.userRepo.Delete(ctx, userID)
}
