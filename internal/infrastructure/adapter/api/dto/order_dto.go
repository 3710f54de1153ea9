package dto

import "time"

// CreateOrderRequest is the body for POST /v1/order/create
type CreateOrderRequest struct {
	StationID   uint64 `json:"station_id" binding:"required"`
	BookingSlot uint64 `json:"booking_slot" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Status      string `json:"status"`
}

// OrderCreatedResponse confirms a successful booking
type OrderCreatedResponse struct {
	Message string `json:"message"`
	OrderID uint64 `json:"order_id"`
}

// OrderResponse represents a booking in the user's order history
type OrderResponse struct {
	ID          uint64    `json:"id"`
	StationID   uint64    `json:"station_id"`
	BookingSlot uint64    `json:"booking_slot"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// StationOrderResponse represents a row on the station order dashboard
type StationOrderResponse struct {
	OrderID       uint64    `json:"order_id"`
	UserName      string    `json:"user_name"`
	StationName   string    `json:"station_name"`
	SlotStartTime time.Time `json:"slot_start_time"`
	SlotEndTime   time.Time `json:"slot_end_time"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
}

// SlotResponse represents a reservable booking slot
type SlotResponse struct {
	ID        uint64    `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
