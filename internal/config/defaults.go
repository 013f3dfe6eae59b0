package config

import "time"

// Default format rules applied when no pattern is configured. Patterns are
// Go regexp syntax; (?s) lets "." cross newlines in the bio text.
const (
	DefaultNamePattern = `^.{1,50}$`
	DefaultNameMessage = "name must be between 1 and 50 characters"

	DefaultTextPattern = `^(?s).{0,1000}$`
	DefaultTextMessage = "text must be at most 1000 characters"

	DefaultScreenNamePattern = `^[A-Za-z0-9_]{1,20}$`
	DefaultScreenNameMessage = "screen name must be 1-20 letters, digits or underscores"
)

// DefaultRecaptchaVerifyURL is Google's siteverify endpoint; overridable for
// self-hosted verifiers and tests.
const DefaultRecaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   "profile-core",
			SessionDuration: 24 * time.Hour,
			Version:         "0.0.0-dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Profile: Profile{
			Name: FieldRule{
				Pattern: DefaultNamePattern,
				Message: DefaultNameMessage,
			},
			Text: FieldRule{
				Pattern: DefaultTextPattern,
				Message: DefaultTextMessage,
			},
			ScreenName: FieldRule{
				Pattern: DefaultScreenNamePattern,
				Message: DefaultScreenNameMessage,
			},
		},
		Recaptcha: Recaptcha{
			VerifyURL: DefaultRecaptchaVerifyURL,
			Timeout:   10 * time.Second,
		},
	}
}
