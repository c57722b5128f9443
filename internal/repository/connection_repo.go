package repository

import (
	"context"
	"database/sql"

	"cardlink/internal/model"

	"github.com/lib/pq"
)

// ConnectionRepo handles the connections table. The table's uniqueness
// constraint on (user_id, profile_id) is the sole arbiter for duplicate
// saves; there is deliberately no check-then-insert.
type ConnectionRepo struct{ DB *sql.DB }

// Add inserts one connection row. A unique violation is classified as
// model.ErrConnectionExists so callers can surface it as the distinct
// "already saved" outcome rather than a failure.
func (r *ConnectionRepo) Add(ctx context.Context, userID, profileID string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO connections (user_id, profile_id) VALUES ($1::uuid, $2::uuid)`,
		userID, profileID)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return model.ErrConnectionExists
		}
		return err
	}
	return nil
}

// List returns the viewer's saved connections newest first, joined with
// the connected profile's display fields.
func (r *ConnectionRepo) List(ctx context.Context, userID string, limit, offset int) ([]model.Connection, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT c.profile_id, p.first_name, p.last_name, p.title, p.photo_url, c.created_at
		FROM connections c
		JOIN profiles p ON p.id = c.profile_id
		WHERE c.user_id = $1::uuid
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Connection
	for rows.Next() {
		var c model.Connection
		var firstName, lastName, title, photo sql.NullString
		c.UserID = userID
		if err := rows.Scan(&c.ProfileID, &firstName, &lastName, &title, &photo, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.FirstName = firstName.String
		c.LastName = lastName.String
		c.Title = title.String
		c.PhotoURL = photo.String
		out = append(out, c)
	}
	return out, rows.Err()
}
