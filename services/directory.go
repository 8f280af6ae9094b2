package services

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"framekart-io/api/models"
)

// ErrDuplicateEmail is returned when registering an email that already
// has an account.
var ErrDuplicateEmail = errors.New("an account with this email already exists")

// ErrUserNotFound is returned for lookups of unknown users.
var ErrUserNotFound = errors.New("user not found")

// UserDirectory is the demo account registry. It lives for the process
// and is discarded at shutdown; nothing behind it is durable.
type UserDirectory interface {
	FindByEmail(email string) (models.User, error)
	FindByID(id string) (models.User, error)
	Insert(user models.User) error
	Update(user models.User) error
}

type memoryDirectory struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	byID    map[string]string
}

// NewMemoryDirectory builds the in-memory user directory, seeded with the
// demo account the storefront ships with.
func NewMemoryDirectory() UserDirectory {
	dir := &memoryDirectory{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]string),
	}
	_ = dir.Insert(models.User{
		ID:    "1",
		Email: "demo@lenskart.com",
		Name:  "Demo User",
		Preferences: &models.UserPreferences{
			FrameShape:     "rectangle",
			FavoriteColors: []string{"black", "blue"},
		},
		CreatedAt: time.Now(),
	})
	return dir
}

func (d *memoryDirectory) FindByEmail(email string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.byEmail[strings.ToLower(email)]
	if !ok {
		return models.User{}, errors.Wrap(ErrUserNotFound, email)
	}
	return user, nil
}

func (d *memoryDirectory) FindByID(id string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	email, ok := d.byID[id]
	if !ok {
		return models.User{}, errors.Wrap(ErrUserNotFound, id)
	}
	return d.byEmail[email], nil
}

func (d *memoryDirectory) Insert(user models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	email := strings.ToLower(user.Email)
	if _, ok := d.byEmail[email]; ok {
		return errors.Wrap(ErrDuplicateEmail, email)
	}
	user.Email = email
	d.byEmail[email] = user
	d.byID[user.ID] = email
	return nil
}

func (d *memoryDirectory) Update(user models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	email, ok := d.byID[user.ID]
	if !ok {
		return errors.Wrap(ErrUserNotFound, user.ID)
	}
	user.Email = email
	d.byEmail[email] = user
	return nil
}
