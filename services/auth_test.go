package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framekart-io/api/models"
)

func newTestAuth() (*AuthService, *MemorySessionStore) {
	store := NewMemorySessionStore()
	return NewAuthService(NewMemoryDirectory(), store, 0), store
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	auth, _ := newTestAuth()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pw"},
		{"empty password", "a@x.com", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSession()
			_, err := auth.Login(ctx, sess, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Equal(t, models.PhaseAnonymous, sess.Phase())
			assert.Nil(t, sess.User())
		})
	}
}

func TestLoginKnownEmailAuthenticatesAsThatUser(t *testing.T) {
	auth, store := newTestAuth()
	sess := NewSession()

	user, err := auth.Login(context.Background(), sess, "demo@lenskart.com", "whatever")
	require.NoError(t, err)

	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "Demo User", user.Name)
	assert.Equal(t, models.PhaseAuthenticated, sess.Phase())

	persisted, err := store.Load(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, user.ID, persisted.ID)
}

func TestLoginUnknownEmailRegistersNewUser(t *testing.T) {
	auth, _ := newTestAuth()
	sess := NewSession()

	user, err := auth.Login(context.Background(), sess, "new@x.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "new@x.com", user.Email)
	assert.Equal(t, "new", user.Name)
	require.NotNil(t, user.Preferences)
	assert.Equal(t, "rectangle", user.Preferences.FrameShape)

	// The synthesized account is now in the directory: a second login
	// resolves to the same user.
	again, err := auth.Login(context.Background(), NewSession(), "new@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestSignupAndDuplicateRejection(t *testing.T) {
	auth, store := newTestAuth()
	ctx := context.Background()

	first := NewSession()
	firstUser, err := auth.Signup(ctx, first, "a@x.com", "pw123", "A")
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAuthenticated, first.Phase())

	// Another visitor authenticates under a different account, then tries
	// to sign up with the taken email. The rejection must leave their
	// session exactly as it was.
	second := NewSession()
	secondUser, err := auth.Login(ctx, second, "b@x.com", "pw")
	require.NoError(t, err)

	_, err = auth.Signup(ctx, second, "a@x.com", "pw456", "Imposter")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, models.PhaseAuthenticated, second.Phase())
	require.NotNil(t, second.User())
	assert.Equal(t, secondUser.ID, second.User().ID)

	// The first session is untouched too.
	persisted, err := store.Load(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, firstUser.ID, persisted.ID)
}

func TestFailedAttemptOnAnonymousSessionStaysAnonymous(t *testing.T) {
	auth, _ := newTestAuth()
	sess := NewSession()

	_, err := auth.Signup(context.Background(), sess, "", "pw", "A")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, models.PhaseAnonymous, sess.Phase())
}

func TestLogoutClearsSessionAndStore(t *testing.T) {
	auth, store := newTestAuth()
	ctx := context.Background()
	sess := NewSession()

	_, err := auth.Login(ctx, sess, "demo@lenskart.com", "pw")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, sess))
	assert.Equal(t, models.PhaseAnonymous, sess.Phase())
	assert.Nil(t, sess.User())

	persisted, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestRestoreRoundTrip(t *testing.T) {
	auth, _ := newTestAuth()
	ctx := context.Background()
	sess := NewSession()

	user, err := auth.Login(ctx, sess, "demo@lenskart.com", "pw")
	require.NoError(t, err)

	restored, err := auth.Restore(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAuthenticated, restored.Phase())
	require.NotNil(t, restored.User())
	assert.Equal(t, user.ID, restored.User().ID)
}

func TestRestoreUnknownSessionIsAnonymous(t *testing.T) {
	auth, _ := newTestAuth()

	restored, err := auth.Restore(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAnonymous, restored.Phase())
	assert.Nil(t, restored.User())
}

func TestRestoreDiscardsCorruptRecord(t *testing.T) {
	auth, store := newTestAuth()
	ctx := context.Background()
	sess := NewSession()

	_, err := auth.Login(ctx, sess, "demo@lenskart.com", "pw")
	require.NoError(t, err)

	store.Corrupt(sess.ID)

	restored, err := auth.Restore(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAnonymous, restored.Phase())
	assert.Nil(t, restored.User())

	// The corrupt record was dropped, not left to fail again.
	persisted, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestDuplicateSubmissionDuringAuthenticatingIsRejected(t *testing.T) {
	store := NewMemorySessionStore()
	auth := NewAuthService(NewMemoryDirectory(), store, 200*time.Millisecond)
	ctx := context.Background()

	first := NewSession()
	done := make(chan error, 1)
	go func() {
		_, err := auth.Login(ctx, first, "demo@lenskart.com", "pw")
		done <- err
	}()

	// Let the first attempt enter its latency window, then submit again.
	time.Sleep(50 * time.Millisecond)
	_, err := auth.Login(ctx, NewSession(), "demo@lenskart.com", "pw")
	assert.ErrorIs(t, err, ErrAuthInProgress)

	_, err = auth.Login(ctx, first, "demo@lenskart.com", "pw")
	assert.ErrorIs(t, err, ErrAuthInProgress)

	require.NoError(t, <-done)
	assert.Equal(t, models.PhaseAuthenticated, first.Phase())
}

func TestLoginLatencyContextCancellation(t *testing.T) {
	store := NewMemorySessionStore()
	auth := NewAuthService(NewMemoryDirectory(), store, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	sess := NewSession()
	_, err := auth.Login(ctx, sess, "demo@lenskart.com", "pw")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, models.PhaseAnonymous, sess.Phase())
}

func TestUpdateUserRequiresAuthentication(t *testing.T) {
	auth, _ := newTestAuth()

	name := "New Name"
	_, err := auth.UpdateUser(context.Background(), NewSession(), models.UpdateUserBody{Name: &name})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateUserPatchesProfileAndStore(t *testing.T) {
	auth, store := newTestAuth()
	ctx := context.Background()
	sess := NewSession()

	_, err := auth.Login(ctx, sess, "demo@lenskart.com", "pw")
	require.NoError(t, err)

	name := "Renamed"
	prefs := &models.UserPreferences{FrameShape: "round", FavoriteColors: []string{"tortoise"}}
	user, err := auth.UpdateUser(ctx, sess, models.UpdateUserBody{Name: &name, Preferences: prefs})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, "round", user.Preferences.FrameShape)
	// Email stays the unique key and is untouched by a patch.
	assert.Equal(t, "demo@lenskart.com", user.Email)

	persisted, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Renamed", persisted.Name)
}
