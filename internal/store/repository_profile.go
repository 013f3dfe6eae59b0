package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/snetdev/profile-core/internal/logger"
	"github.com/snetdev/profile-core/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. It handles profile lookups and persistence against
// the "profiles" table.
//
// Screen-name uniqueness is enforced exclusively by the UNIQUE index on the
// sn column: concurrent writers racing on the same screen name resolve to
// exactly one success, and the losers observe the driver's unique-violation
// code which this layer translates into [ErrScreenNameTaken]. There is no
// application-level pre-check.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// FindOne retrieves the profile with the given id.
//
// Error handling:
//   - No matching row → [ErrProfileNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *profileRepository) FindOne(ctx context.Context, profileID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, findProfileByID, profileID)

	if err := row.Scan(&profile.ProfileID, &profile.UserID, &profile.Name, &profile.Text,
		&profile.MDText, &profile.Date, &profile.Update, &profile.ScreenName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.FindOne").Str("profile_id", profileID).Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// FindIn retrieves all profiles whose id is in profileIDs, ordered by
// creation date descending.
//
// The batch is all-or-nothing: if the number of returned rows differs from
// the number of requested ids, [ErrProfileNotFound] is returned even though
// some rows matched. Duplicate ids in the input therefore fail the batch.
func (r *profileRepository) FindIn(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindInQuery(profileIDs)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindIn").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profiles, err := r.queryProfiles(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	if len(profiles) != len(profileIDs) {
		log.Debug().Str("func", "*profileRepository.FindIn").
			Int("requested", len(profileIDs)).
			Int("found", len(profiles)).
			Msg("batch lookup size mismatch")
		return nil, ErrProfileNotFound
	}

	return profiles, nil
}

// FindAllByUser retrieves every profile owned by userID, ordered by creation
// date descending. An empty slice with a nil error means the user owns no
// profiles.
func (r *profileRepository) FindAllByUser(ctx context.Context, userID int64) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAllByUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindAllByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryProfiles(ctx, query, args...)
}

// Insert persists a newly constructed profile.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrScreenNameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error",
//     preserving the original failure for upstream matching.
func (r *profileRepository) Insert(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertProfile,
		profile.ProfileID, profile.UserID, profile.Name, profile.Text,
		profile.MDText, profile.Date, profile.Update, profile.ScreenName)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Insert").Str("sn", profile.ScreenName).Msg("error inserting profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrScreenNameTaken
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// Update persists a mutated profile by id, with the same screen-name
// conflict semantics as Insert. Targeting a non-existent id yields
// [ErrProfileNotFound].
func (r *profileRepository) Update(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateProfile,
		profile.ProfileID, profile.Name, profile.Text,
		profile.MDText, profile.Update, profile.ScreenName)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Update").Str("sn", profile.ScreenName).Msg("error updating profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrScreenNameTaken
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// queryProfiles executes a multi-row profile SELECT and scans the results.
func (r *profileRepository) queryProfiles(ctx context.Context, query string, args ...any) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.queryProfiles").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var profile models.Profile
		if err := rows.Scan(&profile.ProfileID, &profile.UserID, &profile.Name, &profile.Text,
			&profile.MDText, &profile.Date, &profile.Update, &profile.ScreenName); err != nil {
			log.Err(err).Str("func", "*profileRepository.queryProfiles").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}
