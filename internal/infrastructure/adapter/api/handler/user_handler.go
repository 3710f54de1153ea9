package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/usecase/user"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase *user.UseCase
	tokens      *auth.TokenService
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase *user.UseCase, tokens *auth.TokenService, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register handles the POST /v1/user/register endpoint
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	err := h.userUseCase.Register(c.Request.Context(), user.RegisterRequest{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "OTP sent for verification",
	})
}

// Login handles the POST /v1/user/login endpoint
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	if err := h.userUseCase.Login(c.Request.Context(), req.PhoneNumber); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "OTP sent for login",
	})
}

// Verify handles the POST /v1/user/verify endpoint
func (h *UserHandler) Verify(c *gin.Context) {
	var req dto.VerifyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	account, err := h.userUseCase.Verify(c.Request.Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(auth.Principal{ID: account.ID, Name: account.Name})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{
		Message:     "Phone number verified",
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Profile handles the GET /v1/user/profile endpoint
func (h *UserHandler) Profile(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	account, err := h.userUseCase.GetProfile(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:          account.ID,
		Name:        account.Name,
		PhoneNumber: account.PhoneNumber,
		IsActive:    account.IsActive,
	})
}

// Wallet handles the GET /v1/user/wallet endpoint
func (h *UserHandler) Wallet(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	wallet, err := h.userUseCase.GetWallet(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.WalletResponse{
		WalletNumber: wallet.WalletNumber,
		Balance:      wallet.FormattedBalance(),
	})
}

// RegisterVehicle handles the POST /v1/user/vehicle endpoint
func (h *UserHandler) RegisterVehicle(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	var req dto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	vehicle, err := h.userUseCase.RegisterVehicle(c.Request.Context(), principal.ID, user.RegisterVehicleRequest{
		VehicleNumber: req.VehicleNumber,
		VehicleMake:   req.VehicleMake,
		VehicleModel:  req.VehicleModel,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.VehicleResponse{
		ID:            vehicle.ID,
		VehicleNumber: vehicle.VehicleNumber,
		VehicleMake:   vehicle.VehicleMake,
		VehicleModel:  vehicle.VehicleModel,
	})
}

// ListUsers handles the GET user listing endpoints
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.userUseCase.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, account := range users {
		response = append(response, dto.UserResponse{
			ID:          account.ID,
			Name:        account.Name,
			PhoneNumber: account.PhoneNumber,
			IsActive:    account.IsActive,
		})
	}
	c.JSON(http.StatusOK, response)
}

// DeleteUser handles the DELETE user endpoints
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
