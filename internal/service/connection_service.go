package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cardlink/internal/model"
)

// ConnectionService records that a viewer saved a public card.
type ConnectionService struct {
	Repo        ConnectionStore
	ProfileRepo ProfileStore
	Outbox      Outbox
}

// Save inserts one connection row for (viewer, profile). The table's
// uniqueness constraint is the atomic arbiter for duplicates: a repeat
// save surfaces as model.ErrConnectionExists, which callers report as
// the informational "already saved" outcome. Saving one's own card is
// rejected.
func (s *ConnectionService) Save(ctx context.Context, viewerID, profileID string) error {
	target, err := s.ProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return model.ErrCardNotFound
		}
		return fmt.Errorf("failed to fetch target profile: %w", err)
	}
	if target.UserID == viewerID {
		return model.ErrSelfConnection
	}

	if err := s.Repo.Add(ctx, viewerID, profileID); err != nil {
		if errors.Is(err, model.ErrConnectionExists) {
			return err
		}
		return fmt.Errorf("failed to save connection: %w", err)
	}

	b, err := json.Marshal(map[string]string{
		"user_id":    viewerID,
		"profile_id": profileID,
	})
	if err != nil {
		return err
	}
	return s.Outbox.Add(ctx, "card.connection.added", viewerID, b)
}

// List returns the viewer's saved connections, newest first.
func (s *ConnectionService) List(ctx context.Context, viewerID string, limit, offset int) ([]model.Connection, error) {
	return s.Repo.List(ctx, viewerID, limit, offset)
}
