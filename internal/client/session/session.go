// Package session holds the process-wide identity of the signed-in user.
//
// The Store moves between Unknown, Anonymous and Authenticated. It owns the
// in-memory Account; the bearer token lives in a CredentialStore and is the
// source of truth, so Account reports anonymous whenever no token is stored.
package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/client/models"
	"github.com/dmitrijs2005/libadmin/internal/common"
	"github.com/dmitrijs2005/libadmin/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// CredentialStore persists the bearer token.
type CredentialStore interface {
	Token(ctx context.Context) (string, error)
	SaveLogin(ctx context.Context, token, username string) error
	DeleteToken(ctx context.Context) error
}

// AuthAPI is the subset of backend auth endpoints the Store drives.
type AuthAPI interface {
	Account(ctx context.Context) (models.Account, error)
	Login(ctx context.Context, c models.Credentials) (models.LoginResult, error)
	Logout(ctx context.Context) error
	ResendMail(ctx context.Context, m models.ResendMail) error
}

type Store struct {
	auth  AuthAPI
	creds CredentialStore
	log   logging.Logger

	mu      sync.RWMutex
	state   State
	account models.Account
	subs    map[int]chan Transition
	nextSub int
}

func New(auth AuthAPI, creds CredentialStore, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{
		auth:  auth,
		creds: creds,
		log:   log,
		subs:  make(map[int]chan Transition),
	}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Account returns the signed-in account, or the zero Account when no
// credential is stored regardless of what is cached in memory.
func (s *Store) Account(ctx context.Context) models.Account {
	token, err := s.creds.Token(ctx)
	if err != nil || token == "" {
		return models.Account{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return models.Account{}
	}
	return s.account
}

// Restore performs the silent "who am I" lookup at start-up. On the login
// and register screens no call is made; an Unknown store becomes Anonymous
// and any other state is kept.
func (s *Store) Restore(ctx context.Context, screen string) error {
	if screen == ScreenLogin || screen == ScreenRegister {
		if s.State() == Unknown {
			s.setAnonymous()
		}
		return nil
	}

	account, err := s.auth.Account(ctx)
	if err != nil {
		s.setAnonymous()
		s.log.Info(ctx, "session restore failed", "error", err)
		if isInactive(err) {
			return fmt.Errorf("%w: %w", ErrAccountInactive, err)
		}
		return fmt.Errorf("restore session: %w", err)
	}

	s.setAuthenticated(account)
	s.log.Info(ctx, "session restored", "user_id", account.ID, "role", account.Role)
	return nil
}

// Login exchanges credentials for a token, persists it and returns the route
// for the account's role.
func (s *Store) Login(ctx context.Context, username, password string) (Route, error) {
	res, err := s.auth.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		if gateway.IsStatus(err, http.StatusUnauthorized) || isInactive(err) {
			return RouteLogin, fmt.Errorf("%w: %w", ErrAccountInactive, err)
		}
		return RouteLogin, fmt.Errorf("login: %w", err)
	}
	if res.AccessToken == "" {
		return RouteLogin, fmt.Errorf("login: %w", ErrNoToken)
	}

	if err := s.creds.SaveLogin(ctx, res.AccessToken, username); err != nil {
		return RouteLogin, fmt.Errorf("login: %w", err)
	}
	s.setAuthenticated(res.User)
	s.log.Info(ctx, "logged in", "user_id", res.User.ID, "role", res.User.Role)

	if res.User.IsAdmin() {
		return RouteAdmin, nil
	}
	return RouteHome, nil
}

// Logout invalidates the server-side session on a best-effort basis and
// always clears the credential and the account. The returned error reports
// only the server-side failure, for display.
func (s *Store) Logout(ctx context.Context) (Route, error) {
	serverErr := s.auth.Logout(ctx)
	if serverErr != nil {
		s.log.Warn(ctx, "server-side logout failed", "error", serverErr)
	}

	if err := s.creds.DeleteToken(ctx); err != nil {
		s.log.Error(ctx, "failed to delete credential", "error", err)
	}
	s.setAnonymous()

	if serverErr != nil {
		return RouteLogin, fmt.Errorf("logout: %w", serverErr)
	}
	return RouteLogin, nil
}

// Expire ends a session the backend no longer accepts, after the gateway
// could not refresh it. The credential is dropped locally and the state
// becomes Anonymous; no logout call is made.
func (s *Store) Expire(ctx context.Context) Route {
	if err := s.creds.DeleteToken(ctx); err != nil {
		s.log.Error(ctx, "failed to delete credential", "error", err)
	}
	s.setAnonymous()
	return RouteLogin
}

// UpdateProfile merges u into the cached account. The credential is not
// touched.
func (s *Store) UpdateProfile(u models.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Authenticated {
		return ErrNotAuthenticated
	}
	s.account = s.account.Merge(u)
	return nil
}

// RequestCode asks the backend to mail an activation or password-reset code.
func (s *Store) RequestCode(ctx context.Context, email string, kind models.MailType) error {
	if err := s.auth.ResendMail(ctx, models.ResendMail{Email: email, Type: kind}); err != nil {
		return fmt.Errorf("resend mail: %w", err)
	}
	return nil
}

// TokenClaims decodes, without verifying, the claims of the stored token.
func (s *Store) TokenClaims(ctx context.Context) (*jwt.RegisteredClaims, error) {
	token, err := s.creds.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoToken
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	return claims, nil
}

// Subscribe returns a channel of state transitions and a function that
// cancels the subscription. Slow subscribers miss transitions rather than
// block the store.
func (s *Store) Subscribe() (<-chan Transition, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Transition, 8)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

func (s *Store) setAuthenticated(a models.Account) {
	s.transition(Authenticated, a)
}

func (s *Store) setAnonymous() {
	s.transition(Anonymous, models.Account{})
}

func (s *Store) transition(to State, a models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.state
	s.state = to
	s.account = a
	if from == to {
		return
	}
	for _, ch := range s.subs {
		select {
		case ch <- Transition{From: from, To: to}:
		default:
		}
	}
}

// isInactive recognises the backend's not-yet-activated signal.
func isInactive(err error) bool {
	apiErr, ok := gateway.AsAPIError(err)
	if !ok {
		return false
	}
	if apiErr.Status == http.StatusForbidden {
		return true
	}
	for _, m := range append([]string{apiErr.Kind}, apiErr.Messages...) {
		m = strings.ToLower(m)
		if strings.Contains(m, "not activated") || strings.Contains(m, "inactive") {
			return true
		}
	}
	return false
}
