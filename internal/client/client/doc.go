// Package client bootstraps the local persistence of the MyAuthApp CLI: it
// opens the SQLite database through the pure-Go modernc driver and applies the
// embedded goose migrations (see InitDatabase, RunMigrations).
//
// Failures are reported wrapped in ErrDatabaseUnavailable so callers can
// match them with errors.Is.
package client
