package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/libadmin/internal/client/services"
	"github.com/dmitrijs2005/libadmin/internal/client/session"
	"github.com/dmitrijs2005/libadmin/internal/logging"
)

// LoginHistory remembers who logged in last, to prefill the login prompt.
type LoginHistory interface {
	LastUsername(ctx context.Context) (string, error)
}

type App struct {
	session *session.Store
	api     *services.Catalog
	nav     *Navigator
	history LoginHistory
	log     logging.Logger

	notify *Notifier
	views  map[string]resourceView
	reader *bufio.Reader
	in     io.Reader
	out    io.Writer
}

func NewApp(nav *Navigator, store *session.Store, api *services.Catalog, history LoginHistory, log logging.Logger) *App {
	if log == nil {
		log = logging.Discard()
	}
	a := &App{
		session: store,
		api:     api,
		nav:     nav,
		history: history,
		log:     log,
		in:      os.Stdin,
		out:     os.Stdout,
	}
	a.reader = bufio.NewReader(a.in)
	a.notify = NewNotifier(a.out)
	a.views = newViews(api)
	return a
}

// Run restores the previous session, then serves the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to libadmin (type 'help' for commands)")

	transitions, unsubscribe := a.session.Subscribe()
	defer unsubscribe()
	go a.followSession(ctx, transitions)

	a.restore(ctx)

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) restore(ctx context.Context) {
	err := a.session.Restore(ctx, a.nav.Screen())
	switch {
	case err == nil && a.session.State() == session.Authenticated:
		if a.session.Account(ctx).IsAdmin() {
			a.nav.Go(ScreenAdmin)
		} else {
			a.nav.Go(ScreenHome)
		}
		a.notify.Info("Welcome back, " + displayName(a.session.Account(ctx)))
	case errors.Is(err, session.ErrAccountInactive):
		a.nav.Go(ScreenLogin)
		a.notify.Error(err)
		a.notify.Info("Your account is not activated yet; use 'resend' and 'activate'.")
	default:
		a.nav.Go(ScreenLogin)
		a.notify.Info("Not logged in; use 'login' or 'register'.")
	}
}

// followSession keeps the screen in step with session changes made outside
// an explicit command.
func (a *App) followSession(ctx context.Context, transitions <-chan session.Transition) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-transitions:
			if !ok {
				return
			}
			a.log.Debug(ctx, "session state changed", "from", t.From.String(), "to", t.To.String())
			if t.To == session.Anonymous && a.nav.Screen() != ScreenRegister {
				a.nav.Go(ScreenLogin)
			}
		}
	}
}

func (a *App) status() string {
	acc := a.session.Account(context.Background())
	if acc.IsAnonymous() {
		return a.nav.Screen()
	}
	return fmt.Sprintf("%s@%s", displayName(acc), a.nav.Screen())
}
