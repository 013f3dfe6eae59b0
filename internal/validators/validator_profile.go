package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/snetdev/profile-core/internal/config"
	"github.com/snetdev/profile-core/models"
)

const (
	FieldName       = "name"
	FieldText       = "text"
	FieldScreenName = "sn"
)

// fieldRule pairs a compiled pattern with its configured failure message.
type fieldRule struct {
	re      *regexp.Regexp
	message string
}

// ProfileValidator checks profile drafts against the operator-configured
// format rules. Fields are always checked in the fixed order name, text,
// screen name, and the first failing field determines the reported message
// (short-circuit, not aggregate).
type ProfileValidator struct {
	rules map[string]fieldRule
}

// NewProfileValidator compiles the configured patterns into a ready
// validator. Returns an error if any pattern does not compile.
func NewProfileValidator(cfg config.Profile) (*ProfileValidator, error) {
	rules := make(map[string]fieldRule, 3)

	for field, rule := range map[string]config.FieldRule{
		FieldName:       cfg.Name,
		FieldText:       cfg.Text,
		FieldScreenName: cfg.ScreenName,
	} {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling %s pattern: %w", field, err)
		}
		rules[field] = fieldRule{re: re, message: rule.Message}
	}

	return &ProfileValidator{rules: rules}, nil
}

// Validate implements [Validator] for profile drafts. With no explicit
// fields it checks name, text, and screen name in that order.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.ProfileDraft:
		return v.validateDraft(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateDraft(_ context.Context, draft models.ProfileDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldText, FieldScreenName}
	}

	for _, f := range fields {
		var value string
		switch f {
		case FieldName:
			value = draft.Name
		case FieldText:
			value = draft.Text
		case FieldScreenName:
			value = draft.ScreenName
		default:
			return ErrUnknownField
		}

		rule, ok := v.rules[f]
		if !ok {
			return ErrUnknownField
		}
		if !rule.re.MatchString(value) {
			return &FormatError{Field: f, Message: rule.message}
		}
	}

	return nil
}
