package handler

import (
	"net/http"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	domainerr "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/usecase/admin"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles back-office HTTP requests
type AdminHandler struct {
	adminUseCase *admin.UseCase
	tokens       *auth.TokenService
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminUseCase *admin.UseCase, tokens *auth.TokenService, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		tokens:       tokens,
		logger:       logger,
	}
}

// Register handles the POST /v1/admin/admin-register endpoint
func (h *AdminHandler) Register(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	account, err := h.adminUseCase.Register(c.Request.Context(), admin.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Admin registered",
		"admin_id": account.ID,
	})
}

// Login handles the POST /v1/admin/admin-login endpoint
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	account, err := h.adminUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(auth.Principal{ID: account.ID, Name: account.Name})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Message:     "Admin logged in",
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// RegisterStation handles the POST /v1/admin/station-register endpoint
func (h *AdminHandler) RegisterStation(c *gin.Context) {
	var req dto.RegisterStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	st, err := h.adminUseCase.RegisterStation(c.Request.Context(), entity.StationDetails{
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		Passcode:      req.Passcode,
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		PostalCode:    req.PostalCode,
		FuelAvailable: req.FuelAvailable,
		Price:         req.Price,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Station registered",
		"station_id": st.ID,
	})
}
