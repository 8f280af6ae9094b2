package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framekart-io/api/models"
)

type sessionPayload struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
}

func TestLoginSignupAndSessionRestore(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	router := newTestRouter()

	// Login against the seeded demo account.
	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/login",
		models.LoginBody{Email: "demo@lenskart.com", Password: "anything"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var session sessionPayload
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "Demo User", session.User.Name)
	require.NotEmpty(t, session.Token)

	// The token restores the session.
	rec, env = doJSON(t, router, http.MethodGet, "/api/auth/me", nil,
		map[string]string{"Authorization": session.Token})
	require.Equal(t, http.StatusOK, rec.Code)

	var state models.AuthState
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "demo@lenskart.com", state.User.Email)

	// Logout drops the persisted record; the same token now reads an
	// anonymous session.
	rec, _ = doJSON(t, router, http.MethodPost, "/api/auth/logout", nil,
		map[string]string{"Authorization": session.Token})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/auth/me", nil,
		map[string]string{"Authorization": session.Token})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestSignupThenDuplicateRejected(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	router := newTestRouter()

	body := models.SignupBody{Email: "a@x.com", Password: "password1", Name: "Asha"}
	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/signup", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var session sessionPayload
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "Asha", session.User.Name)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/auth/signup", body, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		models.SignupBody{Email: "b@x.com", Password: "short", Name: "B"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/auth/login",
		models.LoginBody{Email: "demo@lenskart.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/login",
		models.LoginBody{Email: "demo@lenskart.com", Password: "pw"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var session sessionPayload
	require.NoError(t, json.Unmarshal(env.Data, &session))

	name := "Renamed"
	rec, env = doJSON(t, router, http.MethodPatch, "/api/users/me",
		models.UpdateUserBody{Name: &name},
		map[string]string{"Authorization": session.Token})
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "Renamed", user.Name)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
