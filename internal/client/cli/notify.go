package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorDanger  = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Notifier renders toast-like success and error notices.
type Notifier struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	detail  lipgloss.Style
}

// NewNotifier styles output for w; colors are dropped when w is not a
// terminal.
func NewNotifier(w io.Writer) *Notifier {
	r := lipgloss.NewRenderer(w)
	return &Notifier{
		w:       w,
		success: r.NewStyle().Bold(true).Foreground(colorSuccess),
		failure: r.NewStyle().Bold(true).Foreground(colorDanger),
		info:    r.NewStyle().Foreground(colorInfo),
		detail:  r.NewStyle().Foreground(colorMuted),
	}
}

func (n *Notifier) Success(title, description string) {
	n.print(n.success, "✔ "+title, description)
}

func (n *Notifier) Info(msg string) {
	fmt.Fprintln(n.w, n.info.Render(msg))
}

// Error shows err with the backend's error kind as the title and its first
// message as the description, when err carries an API error.
func (n *Notifier) Error(err error) {
	title, description := "Error", err.Error()
	if apiErr, ok := gateway.AsAPIError(err); ok {
		title = apiErr.Kind
		if msg := apiErr.Messages.First(); msg != "" {
			description = msg
		}
	} else if errors.Is(err, gateway.ErrTransport) {
		title = "Backend unreachable"
	}
	n.print(n.failure, "✘ "+title, description)
}

// Failure shows a plain error notice.
func (n *Notifier) Failure(title, description string) {
	n.print(n.failure, "✘ "+title, description)
}

func (n *Notifier) print(style lipgloss.Style, title, description string) {
	fmt.Fprintln(n.w, style.Render(title))
	if description != "" {
		fmt.Fprintln(n.w, n.detail.Render("  "+description))
	}
}
