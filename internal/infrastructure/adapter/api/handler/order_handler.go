package handler

import (
	"net/http"

	domainerr "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/usecase/booking"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles booking-related HTTP requests
type OrderHandler struct {
	bookingService *booking.Service
	logger         coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(bookingService *booking.Service, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// CreateOrder handles the POST /v1/order/create endpoint
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.bookingService.CreateBooking(c.Request.Context(), principal.ID, booking.CreateBookingRequest{
		StationID: req.StationID,
		SlotID:    req.BookingSlot,
		Amount:    req.Amount,
		Status:    req.Status,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// An insufficient balance is a completed request, answered normally
	if !result.Created {
		c.JSON(http.StatusOK, dto.MessageResponse{
			Message: "Insufficient wallet balance",
		})
		return
	}

	c.JSON(http.StatusOK, dto.OrderCreatedResponse{
		Message: "Order created successfully",
		OrderID: result.BookingID,
	})
}

// UserOrders handles the GET /v1/order/user-orders endpoint
func (h *OrderHandler) UserOrders(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	orders, err := h.bookingService.ListUserOrders(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.OrderResponse{
			ID:          order.ID,
			StationID:   order.StationID,
			BookingSlot: order.BookingSlotID,
			Amount:      order.Amount(),
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// StationOrders handles the GET /v1/order/station-orders endpoint
func (h *OrderHandler) StationOrders(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized)
		return
	}

	orders, err := h.bookingService.ListStationOrders(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.StationOrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.StationOrderResponse{
			OrderID:       order.OrderID,
			UserName:      order.UserName,
			StationName:   order.StationName,
			SlotStartTime: order.SlotStartTime,
			SlotEndTime:   order.SlotEndTime,
			Amount:        order.Amount,
			Status:        order.Status,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Slots handles the GET /v1/order/slots endpoint
func (h *OrderHandler) Slots(c *gin.Context) {
	slots, err := h.bookingService.ListSlots(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		response = append(response, dto.SlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	c.JSON(http.StatusOK, response)
}
