package client

import "errors"

var (
	// ErrDatabaseUnavailable wraps failures to open or migrate the local database.
	ErrDatabaseUnavailable = errors.New("local database unavailable")
)
