package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	findUserByID = `SELECT user_id, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	findTokenByID = `SELECT token_id, user_id, key_hash, type, created_at
    FROM tokens
    WHERE token_id = $1;`

	findProfileByID = `SELECT profile_id, user_id, name, text, mdtext, date, "update", sn
    FROM profiles
    WHERE profile_id = $1;`

	insertProfile = `INSERT INTO profiles (profile_id, user_id, name, text, mdtext, date, "update", sn)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	updateProfile = `UPDATE profiles
    SET name = $2, text = $3, mdtext = $4, "update" = $5, sn = $6
    WHERE profile_id = $1;`
)

// profileColumns is the canonical column list scanned into models.Profile.
// "update" needs quoting; it collides with the SQL keyword.
var profileColumns = []string{
	"profile_id", "user_id", "name", "text", "mdtext", "date", `"update"`, "sn",
}

// psql is a squirrel statement builder preconfigured for PostgreSQL
// ($1-style placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindInQuery builds the batch SELECT over an arbitrary id list,
// ordered by creation date descending.
func buildFindInQuery(profileIDs []string) (string, []any, error) {
	return psql.
		Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"profile_id": profileIDs}).
		OrderBy("date DESC").
		ToSql()
}

// buildFindAllByUserQuery builds the owner-scoped SELECT, ordered by
// creation date descending.
func buildFindAllByUserQuery(userID int64) (string, []any, error) {
	return psql.
		Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC").
		ToSql()
}
