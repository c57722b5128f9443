package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cardlink/internal/model"
)

// ProfileService handles owner-side profile logic.
type ProfileService struct {
	Repo   ProfileStore
	Cache  CardCache
	Outbox Outbox
}

// Get resolves the authenticated owner's profile. When no row exists yet
// the profile is defaulted from the auth identity metadata; that default
// is presentation-only and never written back.
func (s *ProfileService) Get(ctx context.Context, userID, fullName, email string) (*model.Profile, error) {
	p, err := s.Repo.GetByUser(ctx, userID)
	if errors.Is(err, model.ErrProfileNotFound) {
		return model.FromIdentity(userID, fullName, email), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return p, nil
}

// Update persists the submitted profile as one write, invalidates the
// public-card cache entry for the current slug, records an outbox event,
// and returns the authoritative slug from a fresh read. The store may
// regenerate the slug on write, so the pre-update value is not trusted.
func (s *ProfileService) Update(ctx context.Context, p *model.Profile) (string, error) {
	if oldSlug, err := s.Repo.GetSlug(ctx, p.UserID); err == nil && oldSlug != "" {
		_ = s.Cache.Delete(ctx, oldSlug)
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to update profile: %w", err)
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.Outbox.Add(ctx, "card.profile.updated", p.UserID, payload); err != nil {
		return "", fmt.Errorf("failed to save outbox event: %w", err)
	}

	slug, err := s.Repo.GetSlug(ctx, p.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to re-read slug: %w", err)
	}
	return slug, nil
}
