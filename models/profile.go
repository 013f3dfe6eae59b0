package models

import (
	"strconv"
	"time"
)

// Profile represents a user's public display identity: a bio record with a
// globally unique screen name. One user may own several profiles.
type Profile struct {
	// ProfileID is the unique identifier of the profile (UUIDv7 string).
	ProfileID string `json:"id"`

	// UserID references the owning user. It is assigned at construction
	// time and never reassigned afterwards.
	UserID int64 `json:"-"`

	// Name is the display name shown alongside the profile.
	Name string `json:"name"`

	// Text is the free-form bio text as authored by the user.
	Text string `json:"text"`

	// MDText is the rendered form of Text produced by the markdown
	// renderer. It is recomputed on every mutation of Text.
	MDText string `json:"mdtext"`

	// Date is the creation timestamp. Immutable.
	Date time.Time `json:"date"`

	// Update is the last-modification timestamp. Advanced on every
	// successful mutation; Date <= Update holds at all times.
	Update time.Time `json:"update"`

	// ScreenName is the short human-friendly handle ("sn"). Unique across
	// all profiles, enforced by the database constraint.
	ScreenName string `json:"sn"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// IsOwnedBy reports whether the given user owns this profile.
// A nil user never owns anything.
func (p Profile) IsOwnedBy(user *User) bool {
	return user != nil && user.UserID == p.UserID
}

// APIProfile is the external representation of a Profile returned by the
// HTTP API. The owner reference is present only when the viewer is the
// owner; for everyone else it is null.
type APIProfile struct {
	ID         string  `json:"id"`
	User       *string `json:"user"`
	Name       string  `json:"name"`
	Text       string  `json:"text"`
	MDText     string  `json:"mdtext"`
	Date       string  `json:"date"`
	Update     string  `json:"update"`
	ScreenName string  `json:"sn"`
}

// ToAPI projects the profile into its API representation for the given
// viewer. The owner field is redacted to null unless the viewer owns the
// profile. Timestamps are rendered as RFC 3339.
//
// The mdtext field is intentionally projected from the raw Text, matching
// the behavior of the system this service replaces; the stored rendered
// form lives in MDText.
func (p Profile) ToAPI(viewer *User) APIProfile {
	var owner *string
	if p.IsOwnedBy(viewer) {
		id := strconv.FormatInt(p.UserID, 10)
		owner = &id
	}

	return APIProfile{
		ID:         p.ProfileID,
		User:       owner,
		Name:       p.Name,
		Text:       p.Text,
		MDText:     p.Text,
		Date:       p.Date.Format(time.RFC3339),
		Update:     p.Update.Format(time.RFC3339),
		ScreenName: p.ScreenName,
	}
}
