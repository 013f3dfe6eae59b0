package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token hash key or session sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidProfileRules indicates that a profile field rule is missing
	// its pattern or message, or that its pattern does not compile.
	ErrInvalidProfileRules = errors.New("invalid profile field rules")

	// ErrInvalidRecaptchaConfigs indicates that CAPTCHA verification is
	// required but no shared secret was configured.
	ErrInvalidRecaptchaConfigs = errors.New("invalid recaptcha configuration")
)
