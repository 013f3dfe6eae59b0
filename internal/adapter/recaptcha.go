package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/internal/logger"
)

// recaptchaVerifier is the resty-backed implementation of
// [RecaptchaVerifier]. It POSTs the configured secret together with the
// caller-supplied response as form fields and inspects the JSON "success"
// flag in the reply.
type recaptchaVerifier struct {
	client    *resty.Client
	verifyURL string
	secret    string
	logger    *logger.Logger
}

// verifyResponse is the subset of the siteverify reply this service cares
// about.
type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// NewRecaptchaVerifier constructs a [RecaptchaVerifier] from the given
// configuration. Zero-valued URL and timeout fall back to the package
// defaults.
func NewRecaptchaVerifier(cfg config.Recaptcha, log *logger.Logger) RecaptchaVerifier {
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = config.DefaultRecaptchaVerifyURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout)

	return &recaptchaVerifier{
		client:    cli,
		verifyURL: cfg.VerifyURL,
		secret:    cfg.Secret,
		logger:    log,
	}
}

// Verify implements [RecaptchaVerifier].
func (v *recaptchaVerifier) Verify(ctx context.Context, response string) error {
	log := logger.FromContext(ctx)

	resp, err := v.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   v.secret,
			"response": response,
		}).
		Post(v.verifyURL)
	if err != nil {
		log.Err(err).Str("func", "*recaptchaVerifier.Verify").Msg("verification request failed")
		return fmt.Errorf("%w: %w", ErrVerificationUnavailable, err)
	}

	if resp.IsError() {
		log.Error().Str("func", "*recaptchaVerifier.Verify").
			Int("status", resp.StatusCode()).
			Msg("verification endpoint returned error status")
		return fmt.Errorf("%w: unexpected status %d", ErrVerificationUnavailable, resp.StatusCode())
	}

	var result verifyResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Err(err).Str("func", "*recaptchaVerifier.Verify").Msg("unreadable verification response")
		return fmt.Errorf("%w: %w", ErrVerificationUnavailable, err)
	}

	if !result.Success {
		log.Debug().Str("func", "*recaptchaVerifier.Verify").
			Strs("error_codes", result.ErrorCodes).
			Msg("captcha response rejected")
		return ErrCaptchaRejected
	}

	return nil
}
