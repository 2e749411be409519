// Package logging is the structured logger the client writes to. Call sites
// depend on Logger; SlogLogger backs it with log/slog.
package logging

import "context"

// Logger logs with a context and alternating key/value args:
//
//	log.Error(ctx, "error saving auth state", "key", "@auth_user", "err", err)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for conditions the user may notice but the app survives.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying args on every record.
	With(args ...any) Logger
}
