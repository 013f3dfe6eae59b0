package service

import (
	"context"
	"fmt"
	"time"

	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/internal/store"
	"github.com/snetdev/profile-core/internal/utils"
	"github.com/snetdev/profile-core/internal/validators"
	"github.com/snetdev/profile-core/models"
)

// profileService is the concrete implementation of ProfileService.
// Construction and mutation are pure in-memory operations; persistence is
// delegated to the ProfileRepository and composed in Register and Edit.
type profileService struct {
	// profileRepository is the data-access layer for profile records.
	profileRepository store.ProfileRepository

	// validator applies the configured per-field format rules to drafts.
	validator validators.Validator

	// renderer derives the stored mdtext form from the draft text.
	renderer Renderer

	// uuidGenerator assigns identifiers to newly created profiles.
	uuidGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewProfileService constructs a ProfileService over the given repository,
// validator, and renderer.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewProfileService(profileRepository store.ProfileRepository, validator validators.Validator, renderer Renderer, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validator,
		renderer:          renderer,
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// Get returns a single profile by id.
func (p *profileService) Get(ctx context.Context, profileID string) (models.Profile, error) {
	return p.profileRepository.FindOne(ctx, profileID)
}

// GetIn returns the profiles for all requested ids, newest first.
func (p *profileService) GetIn(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	return p.profileRepository.FindIn(ctx, profileIDs)
}

// GetOwn returns every profile owned by the given user, newest first.
func (p *profileService) GetOwn(ctx context.Context, userID int64) ([]models.Profile, error) {
	return p.profileRepository.FindAllByUser(ctx, userID)
}

// Create constructs a new profile from the draft without persisting it.
//
// The draft is validated against the configured rules in the fixed field
// order (name, text, screen name); the first failing field aborts the call
// with its configured message. On success the profile carries a fresh
// identifier, the owner's id, mdtext derived from the draft text, and both
// timestamps set to now.
func (p *profileService) Create(ctx context.Context, owner *models.User, draft models.ProfileDraft, now time.Time) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if owner == nil {
		log.Error().Msg("profile creation attempted without an owner")
		return models.Profile{}, ErrAuthenticationRequired
	}

	if err := p.validator.Validate(ctx, draft); err != nil {
		log.Err(err).Int64("owner", owner.UserID).Msg("profile draft failed validation")
		return models.Profile{}, err
	}

	return models.Profile{
		ProfileID:  p.uuidGenerator.Generate(),
		UserID:     owner.UserID,
		Name:       draft.Name,
		Text:       draft.Text,
		MDText:     p.renderer.Render(draft.Text),
		Date:       now,
		Update:     now,
		ScreenName: draft.ScreenName,
	}, nil
}

// Register creates a profile from the draft and inserts it into the store.
//
// A screen-name collision surfaces as store.ErrScreenNameTaken; the database
// constraint is the sole arbiter, there is no pre-check.
func (p *profileService) Register(ctx context.Context, owner *models.User, draft models.ProfileDraft) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.Create(ctx, owner, draft, time.Now())
	if err != nil {
		return models.Profile{}, err
	}

	if err := p.profileRepository.Insert(ctx, profile); err != nil {
		log.Err(err).Str("profile_id", profile.ProfileID).Msg("profile insertion ended with error")
		return models.Profile{}, fmt.Errorf("profile insertion ended with error: %w", err)
	}

	return profile, nil
}

// ChangeData applies the draft to the profile in place.
//
// Ownership is checked before anything else: a non-owner actor gets
// ErrNotProfileOwner. The draft is then validated exactly as in Create. Only
// after both checks pass is the profile mutated: name, text, and screen name
// replaced, mdtext recomputed, and the update timestamp set to now. Creation
// date and owner never change. Any failure leaves the profile untouched.
func (p *profileService) ChangeData(ctx context.Context, actor *models.User, profile *models.Profile, draft models.ProfileDraft, now time.Time) error {
	log := logger.FromContext(ctx)

	if !profile.IsOwnedBy(actor) {
		log.Error().Str("profile_id", profile.ProfileID).Msg("profile mutation attempted by non-owner")
		return ErrNotProfileOwner
	}

	if err := p.validator.Validate(ctx, draft); err != nil {
		log.Err(err).Str("profile_id", profile.ProfileID).Msg("profile draft failed validation")
		return err
	}

	profile.Name = draft.Name
	profile.Text = draft.Text
	profile.MDText = p.renderer.Render(draft.Text)
	profile.ScreenName = draft.ScreenName
	profile.Update = now

	return nil
}

// Edit loads the profile by id, applies ChangeData for the actor, and
// persists the result. Conflict semantics on the new screen name match
// Register.
func (p *profileService) Edit(ctx context.Context, actor *models.User, profileID string, draft models.ProfileDraft) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.FindOne(ctx, profileID)
	if err != nil {
		log.Err(err).Str("profile_id", profileID).Msg("profile search by id failed")
		return models.Profile{}, fmt.Errorf("profile search by id failed: %w", err)
	}

	if err := p.ChangeData(ctx, actor, &profile, draft, time.Now()); err != nil {
		return models.Profile{}, err
	}

	if err := p.profileRepository.Update(ctx, profile); err != nil {
		log.Err(err).Str("profile_id", profileID).Msg("profile update ended with error")
		return models.Profile{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return profile, nil
}
