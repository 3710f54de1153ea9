package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements WalletRepository interface using GORM
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a wallet model to an entity
func (r *WalletRepository) modelToEntity(walletModel *model.Wallet) *entity.Wallet {
	wallet := &entity.Wallet{
		ID:           walletModel.ID,
		UserID:       walletModel.UserID,
		WalletNumber: walletModel.WalletNumber,
		CreatedAt:    walletModel.CreatedAt,
	}
	wallet.SetBalance(walletModel.Balance, r.timeProvider)
	wallet.UpdatedAt = walletModel.UpdatedAt
	return wallet
}

// handleDatabaseError standardizes database error handling
func (r *WalletRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrWalletNotFound
	}
	if r.errorClassifier.IsLockError(err) {
		return errs.ErrWalletLocked
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByUserID retrieves the wallet owned by the given user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet", result.Error, userID)
	}

	return r.modelToEntity(&walletModel), nil
}

// GetByUserIDForUpdate retrieves the wallet with an exclusive row lock.
// The FOR UPDATE clause serializes concurrent debits against the same
// wallet; the lock is held until the surrounding transaction finishes.
func (r *WalletRepository) GetByUserIDForUpdate(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	r.logger.Debug("Locking wallet row for update", map[string]any{
		"user_id": userID,
	})

	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking wallet", result.Error, userID)
	}

	return r.modelToEntity(&walletModel), nil
}

// Create creates a wallet for a freshly registered user
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		UserID:       wallet.UserID,
		WalletNumber: wallet.WalletNumber,
		Balance:      wallet.Balance(),
		CreatedAt:    wallet.CreatedAt,
		UpdatedAt:    wallet.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&walletModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating wallet", result.Error, wallet.UserID)
	}

	wallet.ID = walletModel.ID

	r.logger.Info("Wallet created", map[string]any{
		"user_id":       wallet.UserID,
		"wallet_number": wallet.WalletNumber,
	})
	return nil
}

// UpdateBalance persists a new balance for the wallet
func (r *WalletRepository) UpdateBalance(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", wallet.ID).
		Updates(map[string]interface{}{
			"balance":    wallet.Balance(),
			"updated_at": wallet.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating wallet balance", result.Error, wallet.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrWalletNotFound
	}

	r.logger.Debug("Wallet balance updated", map[string]any{
		"user_id": wallet.UserID,
		"balance": wallet.FormattedBalance(),
	})
	return nil
}

// WalletNumberExists reports whether a wallet number is already taken
func (r *WalletRepository) WalletNumberExists(ctx context.Context, walletNumber string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("wallet_number = ?", walletNumber).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count > 0, nil
}
