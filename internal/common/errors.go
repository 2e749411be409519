// Package common defines shared helpers and sentinel errors used across the
// MyAuthApp client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnknownScreen is returned when navigating to a screen that is not
	// part of the current stack.
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrUnknownCommand is returned by a screen that does not handle a command.
	ErrUnknownCommand = errors.New("unknown command")
)
