package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidFormat is the sentinel every [FormatError] unwraps to, so
	// callers can match any format violation with errors.Is while still
	// reading the configured message off the concrete error.
	ErrInvalidFormat = errors.New("field format violation")
)

// FormatError reports a field that failed its configured pattern. The
// Message is the operator-configured, human-readable text for that field.
type FormatError struct {
	Field   string
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
