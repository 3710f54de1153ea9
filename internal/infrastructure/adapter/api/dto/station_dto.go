package dto

// StationLoginRequest is the body for the station and worker login endpoints
type StationLoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Passcode    string `json:"passcode" binding:"required"`
}

// RegisterWorkerRequest is the body for POST /v1/station/worker-register
type RegisterWorkerRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Passcode    string `json:"passcode" binding:"required"`
}

// SetAvailabilityRequest is the body for PATCH /v1/station/availability
type SetAvailabilityRequest struct {
	FuelAvailable *bool `json:"fuel_available" binding:"required"`
}

// SetPriceRequest is the body for PATCH /v1/station/price
type SetPriceRequest struct {
	Price string `json:"price" binding:"required"`
}

// StationResponse represents a station in the public listing
type StationResponse struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	PostalCode    string `json:"postal_code"`
	FuelAvailable bool   `json:"fuel_available"`
	Price         string `json:"price"`
}
