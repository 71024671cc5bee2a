// Package session tracks the client's authentication lifecycle: anonymous,
// authenticating, or authenticated with a known account. The bearer token
// is persisted to a file so a later run can resume without a fresh login.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/gateway"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// State is the current phase of the session.
type State int

const (
	// Anonymous means no credentials are held.
	Anonymous State = iota
	// Authenticating means a login, register, or resume call is in flight.
	Authenticating
	// Authenticated means a token is held and the account is known.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// API is the subset of the gateway the session depends on.
type API interface {
	Login(ctx context.Context, email, password string) (*gateway.Credentials, error)
	Register(ctx context.Context, username, email, password string) (*gateway.Credentials, error)
	Me(ctx context.Context) (*models.User, error)
}

// TokenStore persists the bearer token between runs. Load returns an empty
// token when none is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Manager owns the session state. It is not safe for concurrent use; the
// TUI drives it from its single update loop.
type Manager struct {
	api   API
	store TokenStore
	state State
	user  *models.User
}

// NewManager returns a manager in the Anonymous state.
func NewManager(api API, store TokenStore) *Manager {
	return &Manager{api: api, store: store, state: Anonymous}
}

// State returns the current session state.
func (m *Manager) State() State { return m.state }

// User returns the authenticated account, or nil.
func (m *Manager) User() *models.User { return m.user }

// Login exchanges credentials for a token and stores it. On failure the
// session returns to Anonymous.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.state = Authenticating
	creds, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.state = Anonymous
		return err
	}
	return m.accept(creds)
}

// Register creates an account and logs it in in one step, mirroring the
// server's register response carrying a token.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	m.state = Authenticating
	creds, err := m.api.Register(ctx, username, email, password)
	if err != nil {
		m.state = Anonymous
		return err
	}
	return m.accept(creds)
}

// Logout clears the stored token and returns to Anonymous. It is purely
// local and always succeeds; in-flight requests are not cancelled.
func (m *Manager) Logout() {
	_ = m.store.Clear()
	m.state = Anonymous
	m.user = nil
}

// Resume tries to restore a previous session from the stored token. A
// missing or rejected token leaves the session Anonymous without error;
// only a transport failure is reported, and the token is kept so a retry
// can still succeed.
func (m *Manager) Resume(ctx context.Context) error {
	token, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("load stored token: %w", err)
	}
	if token == "" {
		m.state = Anonymous
		return nil
	}

	m.state = Authenticating
	user, err := m.api.Me(ctx)
	if err != nil {
		m.state = Anonymous
		m.user = nil
		if errors.Is(err, errs.ErrUnauthorized) {
			_ = m.store.Clear()
			return nil
		}
		return err
	}

	m.state = Authenticated
	m.user = user
	return nil
}

func (m *Manager) accept(creds *gateway.Credentials) error {
	if err := m.store.Save(creds.Token); err != nil {
		m.state = Anonymous
		return fmt.Errorf("store token: %w", err)
	}
	m.state = Authenticated
	user := creds.User
	m.user = &user
	return nil
}
