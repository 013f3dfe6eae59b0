package models

// TokenCredential carries the optional token parameters supplied with an
// API call. A nil *TokenCredential means the caller sent no token at all.
type TokenCredential struct {
	// TokenID identifies the token record to authenticate against.
	TokenID int64 `json:"token_id"`

	// Key is the plain-text token key presented by the caller.
	Key string `json:"token_key"`
}

// UserCredential carries the optional user parameters supplied with an API
// call. A nil *UserCredential means the caller sent no user credentials.
type UserCredential struct {
	// UserID identifies the user record to authenticate against.
	UserID int64 `json:"user_id"`

	// Password is the plain-text password presented by the caller.
	Password string `json:"password"`
}

// ProfileDraft is the caller-supplied payload for creating or editing a
// profile. All three fields are validated against the configured format
// rules before they reach a Profile.
type ProfileDraft struct {
	// Name is the requested display name.
	Name string `json:"name"`

	// Text is the requested bio text.
	Text string `json:"text"`

	// ScreenName is the requested unique handle.
	ScreenName string `json:"sn"`
}
