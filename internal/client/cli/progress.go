package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Spinner is a gateway.Progress that animates a glyph on w while at least
// one request is in flight. A disabled Spinner only counts.
type Spinner struct {
	w        io.Writer
	enabled  bool
	interval time.Duration

	mu    sync.Mutex
	depth int
	stop  chan struct{}
	done  chan struct{}
}

func NewSpinner(w io.Writer, enabled bool) *Spinner {
	return &Spinner{w: w, enabled: enabled, interval: 100 * time.Millisecond}
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.depth++
	if s.depth != 1 || !s.enabled {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.spin(s.stop, s.done)
}

func (s *Spinner) Done() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.depth == 0 {
		return
	}
	s.depth--
	if s.depth != 0 || s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop, s.done = nil, nil
}

// Active reports whether a request is in flight.
func (s *Spinner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.depth > 0
}

func (s *Spinner) spin(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprint(s.w, "\r"+spinnerFrames[i%len(spinnerFrames)])
		select {
		case <-stop:
			fmt.Fprint(s.w, "\r \r")
			return
		case <-ticker.C:
		}
	}
}
