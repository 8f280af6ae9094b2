package models

import "time"

// UserPreferences holds the frame taste a user has saved.
type UserPreferences struct {
	FrameShape     string   `json:"frameShape,omitempty"`
	FavoriteColors []string `json:"favoriteColors,omitempty"`
}

// User is an account in the demo user directory. Email is the unique key.
type User struct {
	ID             string           `json:"id" validate:"required"`
	Email          string           `json:"email" validate:"required,email"`
	Name           string           `json:"name" validate:"required"`
	Avatar         string           `json:"avatar,omitempty"`
	Preferences    *UserPreferences `json:"preferences,omitempty"`
	PasswordDigest string           `json:"-"`
	CreatedAt      time.Time        `json:"created_at"`
}

// AuthPhase is the state of the session state machine.
type AuthPhase string

const (
	PhaseAnonymous      AuthPhase = "anonymous"
	PhaseAuthenticating AuthPhase = "authenticating"
	PhaseAuthenticated  AuthPhase = "authenticated"
)

// AuthState is the view of a session returned to clients.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsLoading       bool  `json:"isLoading"`
}

// LoginBody -> expected data for the login process
type LoginBody struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupBody -> expected data for the signup process
type SignupBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,min=2"`
}

// UpdateUserBody -> partial profile update; nil fields are left unchanged
type UpdateUserBody struct {
	Name        *string          `json:"name,omitempty"`
	Avatar      *string          `json:"avatar,omitempty"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}
