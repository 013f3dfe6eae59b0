// Package adapter holds outbound integrations with external services.
// The only integration today is the reCAPTCHA verification endpoint.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import "context"

// RecaptchaVerifier performs one outbound verification of a caller-supplied
// CAPTCHA response against the external verification service.
type RecaptchaVerifier interface {

	// Verify returns nil when the service confirms the response.
	// A rejected response yields ErrCaptchaRejected; any failure to reach
	// or read the service yields an error wrapping
	// ErrVerificationUnavailable.
	Verify(ctx context.Context, response string) error
}
