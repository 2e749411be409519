// Package cli provides the interactive MyAuthApp command-line client.
//
// It renders the login, signup and home screens in the terminal, reads one
// command per line and forwards it to the current screen. The Navigator
// decides which screen is current from the auth service state: a loading
// screen until the stored session is read, then either the home screen or
// the login/signup stack.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
