package dto

// RegisterUserRequest is the body for POST /v1/user/register
type RegisterUserRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// LoginUserRequest is the body for POST /v1/user/login
type LoginUserRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// VerifyUserRequest is the body for POST /v1/user/verify
type VerifyUserRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

// TokenResponse carries a freshly issued access token
type TokenResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	IsActive    bool   `json:"is_active"`
}

// WalletResponse represents the caller's wallet
type WalletResponse struct {
	WalletNumber string `json:"wallet_number"`
	Balance      string `json:"balance"`
}

// RegisterVehicleRequest is the body for POST /v1/user/vehicle
type RegisterVehicleRequest struct {
	VehicleNumber string `json:"vehicle_number" binding:"required"`
	VehicleMake   string `json:"vehicle_make"`
	VehicleModel  string `json:"vehicle_model"`
}

// VehicleResponse represents a vehicle in API responses
type VehicleResponse struct {
	ID            uint64 `json:"id"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleMake   string `json:"vehicle_make"`
	VehicleModel  string `json:"vehicle_model"`
}
