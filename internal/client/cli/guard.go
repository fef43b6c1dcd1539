package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/client/session"
	"github.com/dmitrijs2005/libadmin/internal/common"
)

// Access is the privilege a command needs.
type Access int

const (
	AccessPublic Access = iota
	AccessUser
	AccessAdmin
)

var (
	ErrNotAuthorized    = common.ErrorForbidden
	errPasswordMismatch = errors.New("passwords do not match")
	errUsage            = errors.New("usage")
)

func (a *App) access(ctx context.Context) Access {
	acc := a.session.Account(ctx)
	switch {
	case acc.IsAnonymous():
		return AccessPublic
	case acc.IsAdmin():
		return AccessAdmin
	default:
		return AccessUser
	}
}

// denied handles a guarded command the current user may not run: anonymous
// users are sent to the login screen, others get a notice. No request is
// made in either case.
func (a *App) denied(ctx context.Context, cmd string, need Access) {
	if a.access(ctx) == AccessPublic {
		a.nav.Go(ScreenLogin)
		a.notify.Info(fmt.Sprintf("Please log in to use '%s'.", cmd))
		return
	}
	a.notify.Failure("Forbidden", fmt.Sprintf("You are %s to use '%s'.", ErrNotAuthorized, cmd))
}

// fail reports a failed backend call. A 401 reaching this point already
// survived the gateway's refresh, so the session is expired locally and the
// user is sent back to the login screen.
func (a *App) fail(ctx context.Context, err error) {
	a.notify.Error(err)
	if !gateway.IsStatus(err, http.StatusUnauthorized) || a.session.State() != session.Authenticated {
		return
	}
	a.nav.GoRoute(a.session.Expire(ctx))
	a.notify.Info("Your session has expired; please log in again.")
}
