package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/persistence"
)

// UseCase handles back-office logic: admin accounts and station onboarding
type UseCase struct {
	adminRepo    persistence.AdminRepository
	stationRepo  persistence.StationRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new admin use case
func NewUseCase(
	adminRepo persistence.AdminRepository,
	stationRepo persistence.StationRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		adminRepo:    adminRepo,
		stationRepo:  stationRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RegisterRequest carries the admin registration fields
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new admin account with a hashed password
//
// Possible errors:
// - ErrDuplicateAdmin: If the email is already registered
// - ErrInvalidRequest: If the email is malformed
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) Register(ctx context.Context, req RegisterRequest) (*entity.Admin, error) {
	_, err := u.adminRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, errs.ErrDuplicateAdmin
	}
	if !errors.Is(err, errs.ErrAdminNotFound) {
		return nil, err
	}

	hashed, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	account, err := entity.NewAdmin(req.Name, req.Email, hashed)
	if err != nil {
		return nil, err
	}

	if err := u.adminRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	u.logger.Info("Admin registered", map[string]any{
		"admin_id": account.ID,
	})
	return account, nil
}

// Login authenticates an admin by email and password
//
// Possible errors:
// - ErrAdminNotFound: If the email is unknown
// - ErrInvalidCredentials: If the password does not match
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) Login(ctx context.Context, email, password string) (*entity.Admin, error) {
	account, err := u.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !u.hasher.Compare(account.Password, password) {
		return nil, errs.ErrInvalidCredentials
	}

	return account, nil
}

// RegisterStation onboards a new station with its pricing and location
//
// Possible errors:
// - ErrInvalidRequest / ErrInvalidPhoneNumber: If the form fields are malformed
// - ErrConstraintViolation: If the phone number is already registered
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) RegisterStation(ctx context.Context, details entity.StationDetails) (*entity.Station, error) {
	st, err := entity.NewStation(details, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.stationRepo.Create(ctx, st); err != nil {
		return nil, err
	}

	u.logger.Info("Station registered", map[string]any{
		"station_id": st.ID,
		"city":       st.City,
	})
	return st, nil
}
