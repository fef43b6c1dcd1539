package cli

import (
	"sync"

	"github.com/dmitrijs2005/libadmin/internal/client/session"
)

// Screens of the client.
const (
	ScreenLogin    = session.ScreenLogin
	ScreenRegister = session.ScreenRegister
	ScreenHome     = "home"
	ScreenAdmin    = "admin"
)

// Navigator holds the current screen. It is safe for concurrent use; the
// gateway reads it from request goroutines.
type Navigator struct {
	mu     sync.RWMutex
	screen string
}

func NewNavigator(start string) *Navigator {
	return &Navigator{screen: start}
}

func (n *Navigator) Screen() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.screen
}

func (n *Navigator) Go(screen string) {
	n.mu.Lock()
	n.screen = screen
	n.mu.Unlock()
}

// GoRoute navigates to the screen a session route points at.
func (n *Navigator) GoRoute(r session.Route) {
	switch r {
	case session.RouteAdmin:
		n.Go(ScreenAdmin)
	case session.RouteHome:
		n.Go(ScreenHome)
	default:
		n.Go(ScreenLogin)
	}
}
