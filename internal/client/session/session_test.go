package session

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/client/models"
	"github.com/dmitrijs2005/libadmin/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	account    models.Account
	accountErr error
	login      models.LoginResult
	loginErr   error
	logoutErr  error
	resendErr  error

	accountCalls int
	logoutCalls  int
	resent       []models.ResendMail
	lastCreds    models.Credentials
}

func (f *fakeAuth) Account(context.Context) (models.Account, error) {
	f.accountCalls++
	return f.account, f.accountErr
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (models.LoginResult, error) {
	f.lastCreds = c
	return f.login, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuth) ResendMail(_ context.Context, m models.ResendMail) error {
	f.resent = append(f.resent, m)
	return f.resendErr
}

type fakeCreds struct {
	token    string
	username string
	saveErr  error
	getErr   error
	deleted  int
}

func (f *fakeCreds) Token(context.Context) (string, error) { return f.token, f.getErr }

func (f *fakeCreds) SaveLogin(_ context.Context, token, username string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token, f.username = token, username
	return nil
}

func (f *fakeCreds) DeleteToken(context.Context) error {
	f.deleted++
	f.token = ""
	return nil
}

var (
	admin = models.Account{ID: 1, Username: "root", Name: "Root", Role: models.RoleAdmin}
	user  = models.Account{ID: 2, Username: "ann", Name: "Ann", Role: models.RoleUser}
)

func apiErr(status int, kind string, msgs ...string) error {
	return &gateway.APIError{Status: status, Kind: kind, Messages: msgs}
}

func TestStore_InitialState(t *testing.T) {
	s := New(&fakeAuth{}, &fakeCreds{}, nil)
	assert.Equal(t, Unknown, s.State())
	assert.True(t, s.Account(context.Background()).IsAnonymous())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}

func TestStore_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("success authenticates", func(t *testing.T) {
		auth := &fakeAuth{account: user}
		creds := &fakeCreds{token: "T"}
		s := New(auth, creds, nil)

		require.NoError(t, s.Restore(ctx, "home"))
		assert.Equal(t, Authenticated, s.State())
		assert.Equal(t, user, s.Account(ctx))
	})

	t.Run("failure leaves anonymous", func(t *testing.T) {
		auth := &fakeAuth{accountErr: apiErr(http.StatusUnauthorized, "Unauthorized", "Token expired")}
		s := New(auth, &fakeCreds{token: "T"}, nil)

		err := s.Restore(ctx, "home")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrAccountInactive))
		assert.Equal(t, Anonymous, s.State())
		assert.True(t, s.Account(ctx).IsAnonymous())
	})

	t.Run("inactive account", func(t *testing.T) {
		auth := &fakeAuth{accountErr: apiErr(http.StatusForbidden, "Forbidden", "Account is not activated")}
		s := New(auth, &fakeCreds{token: "T"}, nil)

		err := s.Restore(ctx, "home")
		require.ErrorIs(t, err, ErrAccountInactive)
		_, ok := gateway.AsAPIError(err)
		assert.True(t, ok)
	})

	t.Run("skipped on login and register", func(t *testing.T) {
		for _, screen := range []string{ScreenLogin, ScreenRegister} {
			auth := &fakeAuth{account: user}
			s := New(auth, &fakeCreds{token: "T"}, nil)

			require.NoError(t, s.Restore(ctx, screen))
			assert.Zero(t, auth.accountCalls, screen)
			assert.Equal(t, Anonymous, s.State(), screen)
		}
	})

	t.Run("skip keeps an existing state", func(t *testing.T) {
		auth := &fakeAuth{account: user}
		s := New(auth, &fakeCreds{token: "T"}, nil)
		require.NoError(t, s.Restore(ctx, "home"))

		require.NoError(t, s.Restore(ctx, ScreenLogin))
		assert.Equal(t, Authenticated, s.State())
		assert.Equal(t, 1, auth.accountCalls)
	})
}

func TestStore_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("admin routes to admin", func(t *testing.T) {
		auth := &fakeAuth{login: models.LoginResult{AccessToken: "T1", User: admin}}
		creds := &fakeCreds{}
		s := New(auth, creds, nil)

		route, err := s.Login(ctx, "root", "pw")
		require.NoError(t, err)
		assert.Equal(t, RouteAdmin, route)
		assert.Equal(t, "T1", creds.token)
		assert.Equal(t, "root", creds.username)
		assert.Equal(t, models.Credentials{Username: "root", Password: "pw"}, auth.lastCreds)
		assert.Equal(t, Authenticated, s.State())
		assert.Equal(t, admin, s.Account(ctx))
	})

	t.Run("user routes home", func(t *testing.T) {
		auth := &fakeAuth{login: models.LoginResult{AccessToken: "T2", User: user}}
		s := New(auth, &fakeCreds{}, nil)

		route, err := s.Login(ctx, "ann", "pw")
		require.NoError(t, err)
		assert.Equal(t, RouteHome, route)
	})

	t.Run("401 means inactive", func(t *testing.T) {
		auth := &fakeAuth{loginErr: apiErr(http.StatusUnauthorized, "Unauthorized", "Account not activated")}
		creds := &fakeCreds{}
		s := New(auth, creds, nil)

		route, err := s.Login(ctx, "ann", "pw")
		require.ErrorIs(t, err, ErrAccountInactive)
		assert.Equal(t, RouteLogin, route)
		assert.Empty(t, creds.token)
		assert.NotEqual(t, Authenticated, s.State())
	})

	t.Run("bad credentials", func(t *testing.T) {
		auth := &fakeAuth{loginErr: apiErr(http.StatusBadRequest, "Bad Request", "Invalid credentials")}
		s := New(auth, &fakeCreds{}, nil)

		_, err := s.Login(ctx, "ann", "bad")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrAccountInactive))
	})

	t.Run("missing token", func(t *testing.T) {
		auth := &fakeAuth{login: models.LoginResult{User: user}}
		s := New(auth, &fakeCreds{}, nil)

		_, err := s.Login(ctx, "ann", "pw")
		require.ErrorIs(t, err, ErrNoToken)
		assert.NotEqual(t, Authenticated, s.State())
	})

	t.Run("persist failure", func(t *testing.T) {
		auth := &fakeAuth{login: models.LoginResult{AccessToken: "T", User: user}}
		s := New(auth, &fakeCreds{saveErr: errors.New("disk full")}, nil)

		_, err := s.Login(ctx, "ann", "pw")
		require.ErrorContains(t, err, "disk full")
		assert.NotEqual(t, Authenticated, s.State())
	})
}

func TestStore_Logout(t *testing.T) {
	ctx := context.Background()

	for _, serverErr := range []error{nil, apiErr(http.StatusInternalServerError, "Internal Server Error")} {
		auth := &fakeAuth{login: models.LoginResult{AccessToken: "T", User: user}, logoutErr: serverErr}
		creds := &fakeCreds{}
		s := New(auth, creds, nil)
		_, err := s.Login(ctx, "ann", "pw")
		require.NoError(t, err)

		route, err := s.Logout(ctx)
		assert.Equal(t, RouteLogin, route)
		if serverErr != nil {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, 1, auth.logoutCalls)
		assert.Equal(t, 1, creds.deleted)
		assert.Empty(t, creds.token)
		assert.Equal(t, Anonymous, s.State())
		assert.True(t, s.Account(ctx).IsAnonymous())
	}
}

func TestStore_ExpireSkipsServerLogout(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{login: models.LoginResult{AccessToken: "T", User: admin}}
	creds := &fakeCreds{}
	s := New(auth, creds, nil)
	_, err := s.Login(ctx, "root", "pw")
	require.NoError(t, err)

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	assert.Equal(t, RouteLogin, s.Expire(ctx))
	assert.Equal(t, 0, auth.logoutCalls)
	assert.Equal(t, 1, creds.deleted)
	assert.Equal(t, Anonymous, s.State())
	assert.True(t, s.Account(ctx).IsAnonymous())
	assert.Equal(t, Transition{From: Authenticated, To: Anonymous}, <-events)
}

func TestStore_AccountWithoutCredential(t *testing.T) {
	ctx := context.Background()
	creds := &fakeCreds{}
	s := New(&fakeAuth{login: models.LoginResult{AccessToken: "T", User: user}}, creds, nil)
	_, err := s.Login(ctx, "ann", "pw")
	require.NoError(t, err)

	creds.token = ""
	assert.True(t, s.Account(ctx).IsAnonymous())

	creds.token = "T"
	creds.getErr = errors.New("locked")
	assert.True(t, s.Account(ctx).IsAnonymous())
}

func TestStore_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("requires authentication", func(t *testing.T) {
		s := New(&fakeAuth{}, &fakeCreds{}, nil)
		assert.ErrorIs(t, s.UpdateProfile(models.ProfileUpdate{Name: "X"}), ErrNotAuthenticated)
	})

	t.Run("merges and keeps credential", func(t *testing.T) {
		creds := &fakeCreds{}
		s := New(&fakeAuth{login: models.LoginResult{AccessToken: "T", User: user}}, creds, nil)
		_, err := s.Login(ctx, "ann", "pw")
		require.NoError(t, err)

		require.NoError(t, s.UpdateProfile(models.ProfileUpdate{Name: "Anna", Phone: "555"}))

		got := s.Account(ctx)
		assert.Equal(t, "Anna", got.Name)
		assert.Equal(t, "555", got.Phone)
		assert.Equal(t, user.Username, got.Username)
		assert.Equal(t, "T", creds.token)
		assert.Zero(t, creds.deleted)
	})
}

func TestStore_RequestCode(t *testing.T) {
	auth := &fakeAuth{}
	s := New(auth, &fakeCreds{}, nil)

	require.NoError(t, s.RequestCode(context.Background(), "a@b.c", models.MailResetPassword))
	require.Len(t, auth.resent, 1)
	assert.Equal(t, models.ResendMail{Email: "a@b.c", Type: models.MailResetPassword}, auth.resent[0])

	auth.resendErr = errors.New("boom")
	assert.ErrorContains(t, s.RequestCode(context.Background(), "a@b.c", models.MailActivateAccount), "boom")
}

func TestStore_TokenClaims(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "2",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	s := New(&fakeAuth{}, &fakeCreds{token: signed}, nil)
	claims, err := s.TokenClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", claims.Subject)
	assert.True(t, claims.ExpiresAt.Time.Equal(exp))

	s = New(&fakeAuth{}, &fakeCreds{}, nil)
	_, err = s.TokenClaims(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	s = New(&fakeAuth{}, &fakeCreds{token: "not-a-jwt"}, nil)
	_, err = s.TokenClaims(ctx)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	s := New(&fakeAuth{login: models.LoginResult{AccessToken: "T", User: user}}, &fakeCreds{}, nil)

	ch, cancel := s.Subscribe()
	_, err := s.Login(ctx, "ann", "pw")
	require.NoError(t, err)
	_, _ = s.Logout(ctx)

	assert.Equal(t, Transition{From: Unknown, To: Authenticated}, <-ch)
	assert.Equal(t, Transition{From: Authenticated, To: Anonymous}, <-ch)

	cancel()
	_, ok := <-ch
	assert.False(t, ok)
	cancel()
}
