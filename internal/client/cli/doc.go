// Package cli provides the interactive libadmin command-line client.
//
// Commands stand in for the screens of the admin UI. A Navigator tracks the
// current screen, which the request gateway consults to decide whether a 401
// may trigger a token refresh, and a route guard keeps anonymous users out
// of account commands and non-admin users out of the admin commands.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and Navigator for details.
package cli
