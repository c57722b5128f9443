package service

import (
	"context"
	"errors"

	"cardlink/internal/model"
)

// fakeProfileStore is an in-memory ProfileStore. Profiles are keyed by
// user id; slug lookups scan for public rows only, mirroring the real
// query's is_public predicate.
type fakeProfileStore struct {
	profiles map[string]*model.Profile
	slugErr  error
	failAll  bool
}

var errStoreDown = errors.New("store unavailable")

func newFakeProfileStore(ps ...*model.Profile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: map[string]*model.Profile{}}
	for _, p := range ps {
		s.profiles[p.UserID] = p
	}
	return s
}

func (s *fakeProfileStore) GetByUser(_ context.Context, userID string) (*model.Profile, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	p, ok := s.profiles[userID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return p, nil
}

func (s *fakeProfileStore) GetBySlug(_ context.Context, slug string) (*model.Profile, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	for _, p := range s.profiles {
		if p.Slug == slug && p.IsPublic {
			return p, nil
		}
	}
	return nil, model.ErrProfileNotFound
}

func (s *fakeProfileStore) GetByID(_ context.Context, id string) (*model.Profile, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	for _, p := range s.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, model.ErrProfileNotFound
}

func (s *fakeProfileStore) Update(_ context.Context, p *model.Profile) error {
	if s.failAll {
		return errStoreDown
	}
	existing, ok := s.profiles[p.UserID]
	if !ok {
		return model.ErrProfileNotFound
	}
	p.ID = existing.ID
	p.Slug = existing.Slug
	p.IsPublic = existing.IsPublic
	s.profiles[p.UserID] = p
	return nil
}

func (s *fakeProfileStore) GetSlug(_ context.Context, userID string) (string, error) {
	if s.slugErr != nil {
		return "", s.slugErr
	}
	p, ok := s.profiles[userID]
	if !ok {
		return "", model.ErrProfileNotFound
	}
	return p.Slug, nil
}

// fakeConnectionStore enforces pair uniqueness the way the real table's
// constraint does.
type fakeConnectionStore struct {
	rows map[[2]string]bool
}

func newFakeConnectionStore() *fakeConnectionStore {
	return &fakeConnectionStore{rows: map[[2]string]bool{}}
}

func (s *fakeConnectionStore) Add(_ context.Context, userID, profileID string) error {
	k := [2]string{userID, profileID}
	if s.rows[k] {
		return model.ErrConnectionExists
	}
	s.rows[k] = true
	return nil
}

func (s *fakeConnectionStore) List(_ context.Context, userID string, limit, offset int) ([]model.Connection, error) {
	var out []model.Connection
	for k := range s.rows {
		if k[0] == userID {
			out = append(out, model.Connection{UserID: k[0], ProfileID: k[1]})
		}
	}
	return out, nil
}

// fakeCache is a map-backed CardCache.
type fakeCache struct {
	entries map[string]*model.Profile
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*model.Profile{}}
}

func (c *fakeCache) Get(_ context.Context, slug string) (*model.Profile, error) {
	p, ok := c.entries[slug]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return p, nil
}

func (c *fakeCache) Set(_ context.Context, slug string, p *model.Profile) error {
	c.entries[slug] = p
	return nil
}

func (c *fakeCache) Delete(_ context.Context, slug string) error {
	delete(c.entries, slug)
	c.deleted = append(c.deleted, slug)
	return nil
}

// fakeOutbox records events in order.
type fakeOutbox struct {
	topics []string
}

func (o *fakeOutbox) Add(_ context.Context, topic, key string, payload []byte) error {
	o.topics = append(o.topics, topic)
	return nil
}
