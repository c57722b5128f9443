package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cardlink/internal/model"
)

const profileColumns = `id, user_id, first_name, last_name, title, bio, photo_url,
	work_preference, email, phone, website, linkedin, instagram, facebook,
	primary_channel, slug, is_public, created_at, updated_at`

type ProfileRepo struct{ DB *sql.DB }

// CreateIfNotExists seeds a profile row from auth identity metadata.
// Idempotent via ON CONFLICT DO NOTHING so replayed user-created events
// are harmless.
func (r *ProfileRepo) CreateIfNotExists(ctx context.Context, userID, firstName, lastName, email string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO profiles (user_id, first_name, last_name, email)
		 VALUES ($1::uuid, $2, $3, $4) ON CONFLICT DO NOTHING`,
		userID, firstName, lastName, email)
	return err
}

// GetByUser returns the owner's profile. Nullable columns are coerced to
// empty strings and enum defaults here, at the store boundary, so no
// null ever reaches the codec layer.
func (r *ProfileRepo) GetByUser(ctx context.Context, userID string) (*model.Profile, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1::uuid`, userID)
	return scanProfile(row)
}

// GetBySlug resolves a public card. The is_public predicate lives in the
// query so a private card and a missing card are the same no-row result.
func (r *ProfileRepo) GetBySlug(ctx context.Context, slug string) (*model.Profile, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE slug = $1 AND is_public = TRUE`, slug)
	return scanProfile(row)
}

// GetByID looks up a profile by its row id, used when recording a
// connection against a card the viewer scanned.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1::uuid`, id)
	return scanProfile(row)
}

// Update persists every profile field in one statement keyed by owner.
func (r *ProfileRepo) Update(ctx context.Context, p *model.Profile) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE profiles SET
			first_name = $2, last_name = $3, title = $4, bio = $5,
			photo_url = $6, work_preference = $7, email = $8, phone = $9,
			website = $10, linkedin = $11, instagram = $12, facebook = $13,
			primary_channel = $14, updated_at = NOW()
		WHERE user_id = $1::uuid`,
		p.UserID, p.FirstName, p.LastName, p.Title, p.Bio,
		p.PhotoURL, string(p.WorkPreference), p.Email, p.Phone,
		p.Website, p.LinkedIn, p.Instagram, p.Facebook,
		string(p.PrimaryChannel))
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return model.ErrProfileNotFound
	}
	return nil
}

// GetSlug re-reads the authoritative slug after an update. The store may
// regenerate the slug as a side effect of a write, so callers never
// assume the pre-update value is still current.
func (r *ProfileRepo) GetSlug(ctx context.Context, userID string) (string, error) {
	var slug sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT slug FROM profiles WHERE user_id = $1::uuid`, userID).Scan(&slug)
	if err == sql.ErrNoRows {
		return "", model.ErrProfileNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch slug: %w", err)
	}
	return slug.String, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	p := &model.Profile{}
	var (
		firstName, lastName, title, bio, photoURL sql.NullString
		workPref, email, phone, website, linkedin sql.NullString
		instagram, facebook, primaryChannel, slug sql.NullString
	)
	err := row.Scan(&p.ID, &p.UserID, &firstName, &lastName, &title, &bio, &photoURL,
		&workPref, &email, &phone, &website, &linkedin, &instagram, &facebook,
		&primaryChannel, &slug, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	p.FirstName = firstName.String
	p.LastName = lastName.String
	p.Title = title.String
	p.Bio = bio.String
	p.PhotoURL = photoURL.String
	p.WorkPreference = model.NormalizeWorkPreference(workPref.String)
	p.Email = email.String
	p.Phone = phone.String
	p.Website = website.String
	p.LinkedIn = linkedin.String
	p.Instagram = instagram.String
	p.Facebook = facebook.String
	p.PrimaryChannel = model.NormalizePrimaryChannel(primaryChannel.String)
	p.Slug = slug.String

	return p, nil
}
