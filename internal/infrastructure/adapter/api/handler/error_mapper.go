package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusAndMessage maps a domain error to its HTTP status and client message
func statusAndMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domainerr.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domainerr.ErrStationNotFound):
		return http.StatusNotFound, "Station not found"
	case errors.Is(err, domainerr.ErrWorkerNotFound):
		return http.StatusNotFound, "Worker not found"
	case errors.Is(err, domainerr.ErrAdminNotFound):
		return http.StatusNotFound, "Admin not found"
	case errors.Is(err, domainerr.ErrWalletNotFound):
		return http.StatusNotFound, "Wallet not found"
	case errors.Is(err, domainerr.ErrBookingNotFound):
		return http.StatusNotFound, "No orders found"
	case errors.Is(err, domainerr.ErrBookingSlotNotFound):
		return http.StatusNotFound, "Booking slot not found"
	case errors.Is(err, domainerr.ErrVehicleNotFound):
		return http.StatusNotFound, "Vehicle not found"
	case errors.Is(err, domainerr.ErrAccountInactive):
		return http.StatusForbidden, "Account is not verified"
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, domainerr.ErrInvalidOTP):
		return http.StatusBadRequest, "Invalid OTP"
	case errors.Is(err, domainerr.ErrInvalidPhoneNumber):
		return http.StatusBadRequest, "Invalid phone number"
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount):
		return http.StatusBadRequest, "Invalid amount"
	case errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusBadRequest, "Phone number already registered"
	case errors.Is(err, domainerr.ErrDuplicateWorker):
		return http.StatusBadRequest, "Worker phone number already registered"
	case errors.Is(err, domainerr.ErrDuplicateAdmin):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusBadRequest, "Request references missing or duplicate data"
	case errors.Is(err, domainerr.ErrOTPDelivery):
		return http.StatusBadRequest, "Could not deliver OTP"
	case errors.Is(err, domainerr.ErrWalletLocked):
		return http.StatusConflict, "Wallet is busy, try again"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the standardized error response for a domain error
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status, message := statusAndMessage(err)

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
