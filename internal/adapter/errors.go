package adapter

import "errors"

var (
	// ErrCaptchaRejected is returned when the verification service answers
	// with success=false: the supplied response failed the challenge.
	ErrCaptchaRejected = errors.New("captcha verification rejected")

	// ErrVerificationUnavailable is returned when the verification call
	// itself fails: network error, non-2xx status, or an unreadable body.
	// The underlying cause is wrapped.
	ErrVerificationUnavailable = errors.New("captcha verification unavailable")
)
