package dto

// RegisterAdminRequest is the body for POST /v1/admin/admin-register
type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginAdminRequest is the body for POST /v1/admin/admin-login
type LoginAdminRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterStationRequest is the body for POST /v1/admin/station-register
type RegisterStationRequest struct {
	Name          string `json:"name" binding:"required"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	Passcode      string `json:"passcode" binding:"required"`
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
