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
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:          userModel.ID,
		Name:        userModel.Name,
		PhoneNumber: userModel.PhoneNumber,
		OTP:         userModel.OTP,
		IsActive:    userModel.IsActive,
		CreatedAt:   userModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByPhoneNumber retrieves a user by phone number
func (r *UserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by phone number", result.Error)
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		OTP:         user.OTP,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// Update persists user changes
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":         user.Name,
			"phone_number": user.PhoneNumber,
			"otp":          user.OTP,
			"is_active":    user.IsActive,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// List returns a page of users ordered by ID
func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}
	return users, nil
}

// Delete removes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}
