// Package session owns the authentication token pair, the identity decoded
// from it, and the recurring silent refresh. It is the only place tokens are
// written; everything else reads through Current().
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/fintrack/go-finance-client/api"
	errs "github.com/fintrack/go-finance-client/internal/errors"
	"github.com/fintrack/go-finance-client/session/credstore"
)

// State is the lifecycle state of the session manager.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateRefreshing     State = "refreshing"
)

// DefaultRefreshInterval is how often the access token is silently renewed
// while authenticated.
const DefaultRefreshInterval = 4 * time.Minute

// Session is the authenticated state exposed to consumers. Identity is always
// derived from decoding AccessToken, never set independently.
type Session struct {
	AccessToken  string
	RefreshToken string
	Identity     Identity
}

// Route names the views the manager can ask the surrounding UI to show.
type Route string

const (
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/dashboard"
)

// Navigator receives navigation signals. The manager never enforces route
// access itself; protected views must check Current() and redirect when nil.
type Navigator func(route Route)

// Manager is the single writer of session state.
type Manager struct {
	client          *api.Client
	creds           credstore.Repo
	navigate        Navigator
	refreshInterval time.Duration

	lock        sync.RWMutex
	state       State
	session     *Session
	stopRefresh chan struct{}
}

// ManagerOption modifies a Manager.
type ManagerOption func(*Manager)

// WithNavigator sets the navigation callback.
func WithNavigator(n Navigator) ManagerOption {
	return func(m *Manager) {
		m.navigate = n
	}
}

// WithRefreshInterval overrides the silent refresh interval.
func WithRefreshInterval(interval time.Duration) ManagerOption {
	return func(m *Manager) {
		m.refreshInterval = interval
	}
}

// NewManager creates a Manager and restores any persisted session. A stored
// token pair whose access token decodes cleanly resumes an authenticated
// session; anything else is discarded and the manager starts anonymous.
func NewManager(client *api.Client, creds credstore.Repo, options ...ManagerOption) (*Manager, error) {
	if client == nil {
		return nil, errors.New("[NewManager] api client is required")
	}
	if creds == nil {
		return nil, errors.New("[NewManager] credential store is required")
	}

	m := &Manager{
		client:          client,
		creds:           creds,
		navigate:        func(Route) {},
		refreshInterval: DefaultRefreshInterval,
		state:           StateAnonymous,
	}
	for _, opt := range options {
		opt(m)
	}

	m.restore()
	return m, nil
}

// restore loads the persisted credential record, keeping it only if the
// access token still decodes.
func (m *Manager) restore() {
	pair, err := m.creds.Load()
	if err != nil {
		return
	}

	identity, err := DecodeIdentity(pair.Access)
	if err != nil {
		log.Warn().Err(err).Msg("discarding undecodable persisted credentials")
		_ = m.creds.Clear()
		return
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.session = &Session{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		Identity:     *identity,
	}
	m.state = StateAuthenticated
	m.startRefreshLocked()
}

// Login exchanges credentials for a token pair. Valid only while anonymous.
// On success the pair is stored in memory and in the credential store within
// the same operation and the caller is signalled to navigate to the dashboard.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	m.lock.Lock()
	if m.state != StateAnonymous {
		m.lock.Unlock()
		return errors.Errorf("[Manager.Login] login not valid from state %q", m.state)
	}
	m.state = StateAuthenticating
	m.lock.Unlock()

	pair, err := m.client.ObtainToken(ctx, username, password)
	if err != nil {
		m.setAnonymous()
		return loginError(err)
	}

	identity, err := DecodeIdentity(pair.Access)
	if err != nil {
		m.setAnonymous()
		return errors.Wrap(err, "[Manager.Login] decode access token")
	}

	if err := m.adopt(pair, identity); err != nil {
		m.setAnonymous()
		return errors.Wrap(err, "[Manager.Login] persist credentials")
	}

	log.Info().Str("username", identity.Username).Msg("logged in")
	m.navigate(RouteDashboard)
	return nil
}

// loginError maps a token endpoint failure onto the message shown to the user:
// the server supplied error where present, a generic credentials message otherwise.
func loginError(err error) error {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return errs.Wrapf(errs.ErrInvalidCredentials, "%s", statusErr.Message)
	}
	if errs.Is(err, errs.ErrUnauthorized) {
		return errs.ErrInvalidCredentials
	}
	return err
}

// Refresh renews the token pair using the persisted refresh token. Any
// failure, including a missing record, forces a logout. Overlapping refreshes
// are permitted; the last completed success wins.
func (m *Manager) Refresh(ctx context.Context) error {
	m.lock.Lock()
	if m.state != StateAuthenticated && m.state != StateRefreshing {
		m.lock.Unlock()
		return errs.ErrNotAuthenticated
	}
	m.state = StateRefreshing
	m.lock.Unlock()

	stored, err := m.creds.Load()
	if err != nil || stored.Refresh == "" {
		log.Warn().Msg("refresh requested with no stored refresh token, logging out")
		m.Logout()
		return errs.ErrNoRefreshToken
	}

	pair, err := m.client.RefreshToken(ctx, stored.Refresh)
	if err != nil {
		log.Warn().Err(err).Msg("token refresh failed, logging out")
		m.Logout()
		return errs.Wrapf(errs.ErrSessionExpired, "refresh: %v", err)
	}

	identity, err := DecodeIdentity(pair.Access)
	if err != nil {
		log.Warn().Err(err).Msg("refreshed access token undecodable, logging out")
		m.Logout()
		return errors.Wrap(err, "[Manager.Refresh] decode access token")
	}

	if err := m.adopt(pair, identity); err != nil {
		m.Logout()
		return errors.Wrap(err, "[Manager.Refresh] persist credentials")
	}
	return nil
}

// adopt replaces in-memory and persisted state wholesale with a new pair.
func (m *Manager) adopt(pair *api.TokenPair, identity *Identity) error {
	if err := m.creds.Save(pair); err != nil {
		return err
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.session = &Session{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		Identity:     *identity,
	}
	m.state = StateAuthenticated
	m.startRefreshLocked()
	return nil
}

// Logout clears all session state. Safe to call from any state, any number
// of times. The caller is signalled to navigate to the login view.
func (m *Manager) Logout() {
	m.lock.Lock()
	m.stopRefreshLocked()
	m.session = nil
	m.state = StateAnonymous
	m.lock.Unlock()

	if err := m.creds.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted credentials")
	}
	m.navigate(RouteLogin)
}

// Current returns the active session, or nil when unauthenticated.
func (m *Manager) Current() *Session {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.session == nil {
		return nil
	}
	copied := *m.session
	return &copied
}

// State returns the manager's lifecycle state.
func (m *Manager) State() State {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.state
}

// Signup registers a new account and signals navigation to the login view so
// the user can authenticate with the fresh credentials.
func (m *Manager) Signup(ctx context.Context, username, password string) error {
	if err := m.client.Signup(ctx, username, password); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			return errors.New(statusErr.Message)
		}
		return errors.Wrap(err, "[Manager.Signup] signup request")
	}
	m.navigate(RouteLogin)
	return nil
}

func (m *Manager) setAnonymous() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.state = StateAnonymous
}

// startRefreshLocked starts the recurring silent refresh. Owned by the
// session lifecycle: started on entering Authenticated, stopped on leaving it,
// so no timer outlives the session it renews. Callers must hold m.lock.
func (m *Manager) startRefreshLocked() {
	if m.stopRefresh != nil || m.refreshInterval <= 0 {
		return
	}
	stop := make(chan struct{})
	m.stopRefresh = stop

	go func() {
		ticker := time.NewTicker(m.refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.Refresh(context.Background()); err != nil {
					return
				}
			case <-stop:
				return
			}
		}
	}()
}

// stopRefreshLocked cancels the recurring refresh. Callers must hold m.lock.
func (m *Manager) stopRefreshLocked() {
	if m.stopRefresh == nil {
		return
	}
	close(m.stopRefresh)
	m.stopRefresh = nil
}
