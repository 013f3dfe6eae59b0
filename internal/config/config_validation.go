package config

import "regexp"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenHashKey == "" || cfg.App.SessionSignKey == "" {
		return ErrInvalidAppConfigs
	}

	for _, rule := range []FieldRule{cfg.Profile.Name, cfg.Profile.Text, cfg.Profile.ScreenName} {
		if rule.Pattern == "" || rule.Message == "" {
			return ErrInvalidProfileRules
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return ErrInvalidProfileRules
		}
	}

	if cfg.Recaptcha.Required && cfg.Recaptcha.Secret == "" {
		return ErrInvalidRecaptchaConfigs
	}

	return nil
}
