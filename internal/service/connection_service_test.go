package service

import (
	"context"
	"testing"

	"cardlink/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectionFixture() (*ConnectionService, *fakeConnectionStore) {
	store := newFakeConnectionStore()
	profiles := newFakeProfileStore(
		&model.Profile{ID: "p1", UserID: "owner", Slug: "owner-card", IsPublic: true},
	)
	svc := &ConnectionService{
		Repo:        store,
		ProfileRepo: profiles,
		Outbox:      &fakeOutbox{},
	}
	return svc, store
}

func TestSaveThenRepeatReportsAlreadySaved(t *testing.T) {
	svc, store := connectionFixture()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "viewer", "p1"))

	err := svc.Save(ctx, "viewer", "p1")
	assert.ErrorIs(t, err, model.ErrConnectionExists)

	// exactly one row exists after both attempts
	assert.Len(t, store.rows, 1)
}

func TestSaveOwnCardRejected(t *testing.T) {
	svc, store := connectionFixture()

	err := svc.Save(context.Background(), "owner", "p1")
	assert.ErrorIs(t, err, model.ErrSelfConnection)
	assert.Empty(t, store.rows)
}

func TestSaveUnknownProfile(t *testing.T) {
	svc, _ := connectionFixture()

	err := svc.Save(context.Background(), "viewer", "nope")
	assert.ErrorIs(t, err, model.ErrCardNotFound)
}

func TestSaveEmitsEvent(t *testing.T) {
	svc, _ := connectionFixture()
	ob := svc.Outbox.(*fakeOutbox)

	require.NoError(t, svc.Save(context.Background(), "viewer", "p1"))
	assert.Equal(t, []string{"card.connection.added"}, ob.topics)

	// a duplicate save emits nothing
	_ = svc.Save(context.Background(), "viewer", "p1")
	assert.Len(t, ob.topics, 1)
}
