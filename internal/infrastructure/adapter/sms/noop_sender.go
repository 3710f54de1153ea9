package sms

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/gateway"
)

// NoopSender logs OTP codes instead of delivering them.
// Used in development and test environments where no SMS credits exist.
type NoopSender struct {
	logger core.Logger
}

// NewNoopSender creates a sender that only logs
func NewNoopSender(logger core.Logger) gateway.OTPSender {
	return &NoopSender{logger: logger}
}

// Send logs the OTP and reports success
func (s *NoopSender) Send(ctx context.Context, phoneNumber, otp string) error {
	s.logger.Info("OTP delivery skipped (sms disabled)", map[string]any{
		"phone_number": phoneNumber,
		"otp":          otp,
	})
	return nil
}
