package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	access(ctx context.Context) Access
	denied(ctx context.Context, cmd string, need Access)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Activate(ctx context.Context) error
	Resend(ctx context.Context) error
	Reset(ctx context.Context) error

	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Create(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
}

type command struct {
	need Access
	help string
	run  func(ctx context.Context, a execIface, args []string) error
}

func noArgs(f func(execIface, context.Context) error) func(context.Context, execIface, []string) error {
	return func(ctx context.Context, a execIface, _ []string) error { return f(a, ctx) }
}

func withArgs(f func(execIface, context.Context, []string) error) func(context.Context, execIface, []string) error {
	return func(ctx context.Context, a execIface, args []string) error { return f(a, ctx, args) }
}

var commandOrder = []string{
	"register", "login", "activate", "resend", "reset",
	"whoami", "profile", "passwd", "logout",
	"list", "show", "create", "update", "delete", "upload",
}

var commands = map[string]command{
	"register": {AccessPublic, "create an account", noArgs(execIface.Register)},
	"login":    {AccessPublic, "authenticate", noArgs(execIface.Login)},
	"activate": {AccessPublic, "activate an account with the mailed code", noArgs(execIface.Activate)},
	"resend":   {AccessPublic, "mail a new activation or reset code", noArgs(execIface.Resend)},
	"reset":    {AccessPublic, "reset a forgotten password", noArgs(execIface.Reset)},
	"whoami":   {AccessUser, "show the signed-in account", noArgs(execIface.Whoami)},
	"profile":  {AccessUser, "edit your profile", noArgs(execIface.Profile)},
	"passwd":   {AccessUser, "change your password", noArgs(execIface.Passwd)},
	"logout":   {AccessUser, "log out", noArgs(execIface.Logout)},
	"list":     {AccessAdmin, "list <resource> [-page n] [-size n] [-sort f] [-desc] [-filter text]", withArgs(execIface.List)},
	"show":     {AccessAdmin, "show <resource> <id>", withArgs(execIface.Show)},
	"create":   {AccessAdmin, "create <resource>", withArgs(execIface.Create)},
	"update":   {AccessAdmin, "update <resource> <id>", withArgs(execIface.Update)},
	"delete":   {AccessAdmin, "delete <resource> <id>", withArgs(execIface.Delete)},
	"upload":   {AccessAdmin, "upload <file> [folder]", withArgs(execIface.Upload)},
}

// runREPL starts a simple read–eval–print loop for the libadmin CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, checks the route guard and dispatches to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("libadmin (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(a.access(ctx)))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := commands[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if a.access(ctx) < cmd.need {
			a.denied(ctx, name, cmd.need)
			continue
		}
		_ = cmd.run(ctx, a, args)
	}
}

func helpText(level Access) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range commandOrder {
		cmd := commands[name]
		if cmd.need > level {
			continue
		}
		fmt.Fprintf(&b, "  %-9s %s\n", name, cmd.help)
	}
	b.WriteString("  help      show this list\n")
	b.WriteString("  exit      leave the program")
	return b.String()
}
