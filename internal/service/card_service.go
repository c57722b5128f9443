package service

import (
	"context"
	"errors"

	"cardlink/internal/model"
	"cardlink/internal/observability"

	"go.uber.org/zap"
)

// CardService resolves public cards by slug.
type CardService struct {
	Repo  ProfileStore
	Cache CardCache
}

// Resolve returns the public card for a slug. Every failure mode — no
// such slug, card not public, store error — collapses into the single
// ErrCardNotFound outcome so a public caller cannot distinguish a
// private card from a nonexistent one. Store errors are logged here and
// go no further.
func (s *CardService) Resolve(ctx context.Context, slug string) (*model.Profile, error) {
	if p, err := s.Cache.Get(ctx, slug); err == nil {
		observability.CardResolutionsTotal.WithLabelValues("hit").Inc()
		return p, nil
	}

	p, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, model.ErrProfileNotFound) {
			observability.GetLogger(ctx).Error("card lookup failed", zap.Error(err))
		}
		observability.CardResolutionsTotal.WithLabelValues("not_found").Inc()
		return nil, model.ErrCardNotFound
	}

	_ = s.Cache.Set(ctx, slug, p)
	observability.CardResolutionsTotal.WithLabelValues("found").Inc()
	return p, nil
}
