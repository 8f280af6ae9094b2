package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framekart-io/api/models"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	user := models.User{ID: "u1", Email: "a@x.com", Name: "A"}
	require.NoError(t, store.Save(ctx, "sid", user))

	got, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}

func TestMemorySessionStoreMissingRecord(t *testing.T) {
	store := NewMemorySessionStore()

	got, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionStoreClear(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid", models.User{ID: "u1", Email: "a@x.com", Name: "A"}))
	require.NoError(t, store.Clear(ctx, "sid"))

	got, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionStoreDiscardsCorruptRecord(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	store.Corrupt("sid")

	got, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second load stays clean: the bad record is gone.
	got, err = store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}
