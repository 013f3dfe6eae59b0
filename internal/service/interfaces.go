package service

import (
	"context"
	"time"

	"github.com/snetdev/profile-core/models"
)

// TokenRequirement declares how strictly an endpoint demands token
// credentials. Handlers pick the requirement; ResolveToken enforces it.
type TokenRequirement int

const (
	// TokenOptional lets the call proceed without a token. A supplied token
	// is still fully authenticated.
	TokenOptional TokenRequirement = iota

	// TokenRequired rejects calls that carry no token credential.
	TokenRequired

	// MasterTokenRequired additionally rejects tokens without master
	// privileges.
	MasterTokenRequired
)

// ProfileService implements the profile lifecycle: validated construction,
// owner-gated mutation, and lookups.
type ProfileService interface {
	// Get returns a single profile by id.
	Get(ctx context.Context, profileID string) (models.Profile, error)

	// GetIn returns the profiles for all requested ids, newest first.
	// The batch is all-or-nothing: one missing id fails the whole call.
	GetIn(ctx context.Context, profileIDs []string) ([]models.Profile, error)

	// GetOwn returns every profile owned by the given user, newest first.
	GetOwn(ctx context.Context, userID int64) ([]models.Profile, error)

	// Create constructs a new profile from the draft without persisting it:
	// the draft is validated field by field, mdtext is derived from text,
	// and identity plus timestamps are assigned.
	Create(ctx context.Context, owner *models.User, draft models.ProfileDraft, now time.Time) (models.Profile, error)

	// Register is Create followed by insertion into the store.
	Register(ctx context.Context, owner *models.User, draft models.ProfileDraft) (models.Profile, error)

	// ChangeData applies the draft to the profile in place: ownership is
	// checked first, then the draft is validated, mdtext recomputed, and the
	// update timestamp advanced. On any failure the profile is left
	// untouched. Persistence is the caller's responsibility.
	ChangeData(ctx context.Context, actor *models.User, profile *models.Profile, draft models.ProfileDraft, now time.Time) error

	// Edit loads the profile, applies ChangeData, and persists the result.
	Edit(ctx context.Context, actor *models.User, profileID string, draft models.ProfileDraft) (models.Profile, error)
}

// AuthService resolves the optional credential parameters of an API call
// into authenticated identities and manages session tokens.
type AuthService interface {
	// ResolveToken authenticates the supplied token credential under the
	// given requirement. A nil credential resolves to nil when the
	// requirement is TokenOptional and never touches the store.
	ResolveToken(ctx context.Context, credential *models.TokenCredential, requirement TokenRequirement) (*models.Token, error)

	// ResolveUser authenticates the supplied user credential. A nil
	// credential resolves to nil unless required.
	ResolveUser(ctx context.Context, credential *models.UserCredential, required bool) (*models.User, error)

	// ResolveRecaptcha verifies the supplied CAPTCHA response. When not
	// required it succeeds unconditionally, ignoring any supplied value.
	ResolveRecaptcha(ctx context.Context, response *string, required bool) error

	// CreateSession issues a signed session token for the user.
	CreateSession(ctx context.Context, user models.User) (models.Session, error)

	// ParseSession validates a session token string and returns the session.
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)
}

// AppInfoService exposes build and version metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Renderer derives the stored markdown form of a profile's text.
type Renderer interface {
	// Render returns the rendered form of text. Rendering is pure: equal
	// inputs produce equal outputs.
	Render(text string) string
}
