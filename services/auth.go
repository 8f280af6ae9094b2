package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"framekart-io/api/configs"
	"framekart-io/api/models"
)

// ErrInvalidCredentials is the failure signal for a login attempt with an
// empty email or password.
var ErrInvalidCredentials = errors.New("email and password are required")

// ErrAuthInProgress rejects a login or signup submitted while a previous
// attempt is still resolving.
var ErrAuthInProgress = errors.New("an authentication attempt is already in progress")

// ErrNotAuthenticated guards operations that need a signed-in session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is one browser session's auth state machine: anonymous until a
// login or signup resolves, authenticating while one is in flight,
// authenticated afterwards. A failed attempt restores the state the
// session had before the attempt began.
type Session struct {
	ID string

	mu        sync.Mutex
	phase     models.AuthPhase
	user      *models.User
	prevPhase models.AuthPhase
	prevUser  *models.User
}

// NewSession starts an anonymous session.
func NewSession() *Session {
	return &Session{ID: uuid.NewString(), phase: models.PhaseAnonymous}
}

// RestoredSession rebuilds a session from a persisted user record. A nil
// user yields an anonymous session, which is how corrupt or missing
// records come back from the store.
func RestoredSession(id string, user *models.User) *Session {
	if user == nil {
		return &Session{ID: id, phase: models.PhaseAnonymous}
	}
	return &Session{ID: id, phase: models.PhaseAuthenticated, user: user}
}

// Phase returns the session's current state.
func (s *Session) Phase() models.AuthPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// User returns the authenticated user, nil for any other phase.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// State renders the session as the client-facing auth state.
func (s *Session) State() models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.AuthState{
		User:            s.user,
		IsAuthenticated: s.phase == models.PhaseAuthenticated,
		IsLoading:       s.phase == models.PhaseAuthenticating,
	}
}

// begin moves the session into authenticating, remembering the state to
// restore on failure. A session already authenticating rejects the
// attempt. This guard only covers callers sharing one Session value,
// such as embedded use; HTTP handlers build a fresh Session per request,
// so concurrent submissions there are caught by the service's per-email
// inflight set instead.
func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == models.PhaseAuthenticating {
		return ErrAuthInProgress
	}
	s.prevPhase, s.prevUser = s.phase, s.user
	s.phase = models.PhaseAuthenticating
	return nil
}

func (s *Session) succeed(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = models.PhaseAuthenticated
	s.user = &user
}

func (s *Session) fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase, s.user = s.prevPhase, s.prevUser
}

func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase, s.user = models.PhaseAnonymous, nil
}

// AuthService drives sessions against the user directory and the session
// store. Latency simulates the remote call a real backend would make; it
// is configurable so tests can drop it to zero.
type AuthService struct {
	directory UserDirectory
	sessions  SessionStore
	latency   time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewAuthService(directory UserDirectory, sessions SessionStore, latency time.Duration) *AuthService {
	return &AuthService{
		directory: directory,
		sessions:  sessions,
		latency:   latency,
		inflight:  make(map[string]struct{}),
	}
}

// AuthLatencyFromEnv reads the simulated backend latency, defaulting to
// one second.
func AuthLatencyFromEnv() time.Duration {
	ms := configs.LoadEnvOr("AUTH_LATENCY_MS", "1000")
	d, err := time.ParseDuration(ms + "ms")
	if err != nil {
		return time.Second
	}
	return d
}

// Login authenticates a session by email. Known emails resolve to their
// account; unknown emails register a new one on the fly. Only an empty
// email or password fails. Demo behavior: passwords are recorded but not
// verified against known accounts.
func (a *AuthService) Login(ctx context.Context, sess *Session, email, password string) (models.User, error) {
	if err := sess.begin(); err != nil {
		return models.User{}, err
	}

	if email != "" {
		if err := a.acquire(email); err != nil {
			sess.fail()
			return models.User{}, err
		}
		defer a.release(email)
	}

	if err := a.wait(ctx); err != nil {
		sess.fail()
		return models.User{}, err
	}

	if email == "" || password == "" {
		sess.fail()
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.directory.FindByEmail(email)
	if errors.Is(err, ErrUserNotFound) {
		user, err = a.register(email, password, localPart(email), &models.UserPreferences{
			FrameShape:     "rectangle",
			FavoriteColors: []string{"black"},
		})
	}
	if err != nil {
		sess.fail()
		return models.User{}, err
	}

	sess.succeed(user)
	a.persist(ctx, sess.ID, user)
	return user, nil
}

// Signup registers a new account. A duplicate email is rejected and the
// session keeps the state it had before the attempt.
func (a *AuthService) Signup(ctx context.Context, sess *Session, email, password, name string) (models.User, error) {
	if err := sess.begin(); err != nil {
		return models.User{}, err
	}

	if email != "" {
		if err := a.acquire(email); err != nil {
			sess.fail()
			return models.User{}, err
		}
		defer a.release(email)
	}

	if err := a.wait(ctx); err != nil {
		sess.fail()
		return models.User{}, err
	}

	if email == "" || password == "" {
		sess.fail()
		return models.User{}, ErrInvalidCredentials
	}

	if _, err := a.directory.FindByEmail(email); err == nil {
		sess.fail()
		return models.User{}, errors.Wrap(ErrDuplicateEmail, email)
	}

	user, err := a.register(email, password, name, &models.UserPreferences{
		FrameShape:     "rectangle",
		FavoriteColors: []string{"black"},
	})
	if err != nil {
		sess.fail()
		return models.User{}, err
	}

	sess.succeed(user)
	a.persist(ctx, sess.ID, user)
	return user, nil
}

// Logout drops the session to anonymous unconditionally and clears its
// persisted record.
func (a *AuthService) Logout(ctx context.Context, sess *Session) error {
	sess.reset()
	if err := a.sessions.Clear(ctx, sess.ID); err != nil {
		log.Printf("clearing session %s: %s", sess.ID, err)
		return err
	}
	return nil
}

// Restore rebuilds a session from the store. Missing or unreadable
// records come back anonymous, never as an error.
func (a *AuthService) Restore(ctx context.Context, sessionID string) (*Session, error) {
	user, err := a.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return RestoredSession(sessionID, user), nil
}

// UpdateUser applies a partial profile update to the authenticated user
// and refreshes both the directory and the persisted session record.
func (a *AuthService) UpdateUser(ctx context.Context, sess *Session, patch models.UpdateUserBody) (models.User, error) {
	current := sess.User()
	if current == nil {
		return models.User{}, ErrNotAuthenticated
	}

	user := *current
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Preferences != nil {
		user.Preferences = patch.Preferences
	}

	if err := a.directory.Update(user); err != nil {
		return models.User{}, err
	}

	sess.succeed(user)
	a.persist(ctx, sess.ID, user)
	return user, nil
}

func (a *AuthService) register(email, password, name string, prefs *models.UserPreferences) (models.User, error) {
	digest, err := configs.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:             uuid.NewString(),
		Email:          strings.ToLower(email),
		Name:           name,
		Preferences:    prefs,
		PasswordDigest: digest,
		CreatedAt:      time.Now(),
	}
	if err := a.directory.Insert(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// persist writes the session record; a store hiccup is logged, not
// surfaced, since the login itself already succeeded.
func (a *AuthService) persist(ctx context.Context, sessionID string, user models.User) {
	if err := a.sessions.Save(ctx, sessionID, user); err != nil {
		log.Printf("persisting session %s: %s", sessionID, err)
	}
}

// acquire registers an email as mid-attempt so a duplicate submission
// during the simulated latency window is rejected instead of racing.
func (a *AuthService) acquire(email string) error {
	key := strings.ToLower(email)
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, busy := a.inflight[key]; busy {
		return ErrAuthInProgress
	}
	a.inflight[key] = struct{}{}
	return nil
}

func (a *AuthService) release(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.inflight, strings.ToLower(email))
}

func (a *AuthService) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(a.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
