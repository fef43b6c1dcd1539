package session

// State is the lifecycle position of the Session Store.
type State int

const (
	// Unknown is the initial state before any restore attempt.
	Unknown State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Transition is published to subscribers on every state change.
type Transition struct {
	From State
	To   State
}

// Route is where the view layer should navigate after a session action.
type Route string

const (
	RouteLogin Route = "login"
	RouteHome  Route = "home"
	RouteAdmin Route = "admin"
)

// Screens on which the silent restore is skipped.
const (
	ScreenLogin    = "login"
	ScreenRegister = "register"
)
