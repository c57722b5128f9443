package service

import (
	"context"

	"cardlink/internal/model"
)

// ProfileStore is the profile record store surface the services use.
type ProfileStore interface {
	GetByUser(ctx context.Context, userID string) (*model.Profile, error)
	GetBySlug(ctx context.Context, slug string) (*model.Profile, error)
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	Update(ctx context.Context, p *model.Profile) error
	GetSlug(ctx context.Context, userID string) (string, error)
}

// ConnectionStore is the connection record store surface.
type ConnectionStore interface {
	Add(ctx context.Context, userID, profileID string) error
	List(ctx context.Context, userID string, limit, offset int) ([]model.Connection, error)
}

// CardCache caches resolved public cards by slug.
type CardCache interface {
	Get(ctx context.Context, slug string) (*model.Profile, error)
	Set(ctx context.Context, slug string, p *model.Profile) error
	Delete(ctx context.Context, slug string) error
}

// Outbox records domain events for asynchronous publication.
type Outbox interface {
	Add(ctx context.Context, topic, key string, payload []byte) error
}
