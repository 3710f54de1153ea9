package gateway

import "context"

// OTPSender delivers one-time passwords to a phone number through an
// external SMS gateway. Delivery failures are surfaced to the caller;
// the domain performs no retries.
type OTPSender interface {
	// Send delivers the OTP to the given phone number
	//
	// Possible errors:
	// - any transport or gateway error; callers treat these as a delivery
	//   failure and abort the flow that requested the OTP
	Send(ctx context.Context, phoneNumber, otp string) error
}
