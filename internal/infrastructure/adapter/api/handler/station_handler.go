package handler

import (
	"net/http"

	domainerr "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/usecase/station"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// StationHandler handles station-related HTTP requests
type StationHandler struct {
	stationUseCase *station.UseCase
	tokens         *auth.TokenService
	logger         coreport.Logger
}

// NewStationHandler creates a new station handler instance
func NewStationHandler(stationUseCase *station.UseCase, tokens *auth.TokenService, logger coreport.Logger) *StationHandler {
	return &StationHandler{
		stationUseCase: stationUseCase,
		tokens:         tokens,
		logger:         logger,
	}
}

// Login handles the POST /v1/station/station-login endpoint
func (h *StationHandler) Login(c *gin.Context) {
	var req dto.StationLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	st, err := h.stationUseCase.Login(c.Request.Context(), req.PhoneNumber, req.Passcode)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(auth.Principal{ID: st.ID, Name: st.Name})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Message:     "Station logged in",
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// WorkerLogin handles the POST /v1/station/worker-login endpoint
func (h *StationHandler) WorkerLogin(c *gin.Context) {
	var req dto.StationLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	worker, err := h.stationUseCase.WorkerLogin(c.Request.Context(), req.PhoneNumber, req.Passcode)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Worker tokens act on behalf of the station they belong to
	token, err := h.tokens.Issue(auth.Principal{ID: worker.StationID, Name: worker.Name})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Message:     "Worker logged in",
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// RegisterWorker handles the POST /v1/station/worker-register endpoint
func (h *StationHandler) RegisterWorker(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	var req dto.RegisterWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	worker, err := h.stationUseCase.RegisterWorker(c.Request.Context(), principal.ID, station.RegisterWorkerRequest{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Passcode:    req.Passcode,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Worker registered",
		"worker_id": worker.ID,
	})
}

// SetAvailability handles the PATCH /v1/station/availability endpoint
func (h *StationHandler) SetAvailability(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FuelAvailable == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	st, err := h.stationUseCase.SetAvailability(c.Request.Context(), principal.ID, *req.FuelAvailable)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Availability updated",
		"fuel_available": st.FuelAvailable,
	})
}

// SetPrice handles the PATCH /v1/station/price endpoint
func (h *StationHandler) SetPrice(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	var req dto.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	st, err := h.stationUseCase.SetPrice(c.Request.Context(), principal.ID, req.Price)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price updated",
		"price":   st.Price,
	})
}

// ListStations handles the GET /v1/station/stations endpoint
func (h *StationHandler) ListStations(c *gin.Context) {
	stations, err := h.stationUseCase.ListActiveStations(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.StationResponse, 0, len(stations))
	for _, st := range stations {
		response = append(response, dto.StationResponse{
			ID:            st.ID,
			Name:          st.Name,
			Description:   st.Description,
			Latitude:      st.Latitude,
			Longitude:     st.Longitude,
			Address:       st.Address,
			City:          st.City,
			State:         st.State,
			Country:       st.Country,
			PostalCode:    st.PostalCode,
			FuelAvailable: st.FuelAvailable,
			Price:         st.Price,
		})
	}
	c.JSON(http.StatusOK, response)
}
