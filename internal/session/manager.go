package session

import (
	"context"
	"sync"
	"time"

	"github.com/aliaa11/userboard/internal/logging"
	"github.com/aliaa11/userboard/internal/models"
)

// UserFetcher resolves the account the stored token belongs to. It follows
// the API client's contract for the current-user call: every failure is
// swallowed and reported as (nil, nil), so "no user" is always a state, not
// an error.
type UserFetcher interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Manager owns the session state for the whole process: the resolved current
// user and a loading flag covering initialization. It is constructed once at
// the application root and passed to every consumer, so a fake can be dropped
// in wherever a narrower interface is accepted.
//
// State machine: Unknown -> (Init) -> Authenticated | Anonymous.
// Authenticated -> Anonymous on Logout or on a failed user fetch.
// Anonymous -> Authenticated only through Login.
type Manager struct {
	store TokenStore
	users UserFetcher
	log   logging.Logger
	now   func() time.Time

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

func NewManager(store TokenStore, users UserFetcher, log logging.Logger) *Manager {
	return &Manager{
		store:   store,
		users:   users,
		log:     log,
		now:     time.Now,
		loading: true,
	}
}

// Init resolves the initial session state: if a valid token is stored, the
// current user is fetched and cached. The loading flag drops in every path,
// including errors, so readers can rely on it settling.
func (m *Manager) Init(ctx context.Context) error {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	if !m.TokenValid(ctx) {
		return nil
	}
	return m.refetch(ctx)
}

// TokenValid reports whether a usable token is stored: present, decodable,
// and expiring strictly in the future. It never touches the network.
func (m *Manager) TokenValid(ctx context.Context) bool {
	token, err := m.store.Read(ctx)
	if err != nil {
		m.log.Warn(ctx, "token read failed", "error", err)
		return false
	}
	if token == "" {
		return false
	}
	exp, ok := TokenExpiry(token)
	if !ok {
		return false
	}
	return exp.After(m.now())
}

// Login persists the freshly issued token and resolves the user it belongs
// to. The session is Authenticated once Login returns without error and the
// fetch produced a user.
func (m *Manager) Login(ctx context.Context, token string) error {
	if err := m.store.Save(ctx, token); err != nil {
		return err
	}
	return m.refetch(ctx)
}

// Logout clears the stored token and the cached user. It does not call the
// backend; callers invoke the API logout first and drop local state
// regardless of its outcome.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	return err
}

// Refresh refetches the current user. Call it after any mutation that could
// change the viewer's identity or role, e.g. editing your own record.
func (m *Manager) Refresh(ctx context.Context) error {
	return m.refetch(ctx)
}

func (m *Manager) refetch(ctx context.Context) error {
	user, err := m.users.CurrentUser(ctx)
	if err != nil {
		// CurrentUser reports failures as (nil, nil); any error still means no user.
		user = nil
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	if user == nil {
		m.log.Debug(ctx, "session resolved anonymous")
	} else {
		m.log.Debug(ctx, "session resolved", "user_id", user.ID, "role", user.Role)
	}
	return nil
}

// CurrentUser returns the cached user, or nil for an anonymous session.
// Callers must not trust the value until Loading reports false.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Loading reports whether Init has finished.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}
