package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/gateway"
)

// HTTPSender delivers OTP codes through the 2Factor SMS API.
// The provider exposes a GET endpoint of the form
// {base}/{api_key}/SMS/{phone_number}/{otp}.
type HTTPSender struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  core.Logger
}

// NewHTTPSender creates an SMS sender backed by the 2Factor HTTP API
func NewHTTPSender(baseURL, apiKey string, timeout time.Duration, logger core.Logger) gateway.OTPSender {
	return &HTTPSender{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Send delivers the OTP to the given phone number
func (s *HTTPSender) Send(ctx context.Context, phoneNumber, otp string) error {
	endpoint := fmt.Sprintf("%s/%s/SMS/%s/%s",
		s.baseURL,
		url.PathEscape(s.apiKey),
		url.PathEscape(phoneNumber),
		url.PathEscape(otp),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach sms provider: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("SMS provider returned non-OK status", map[string]any{
			"status": resp.StatusCode,
		})
		return fmt.Errorf("sms provider returned status %d", resp.StatusCode)
	}

	return nil
}
