// Package logging defines the structured-logging contract the rest of
// the project programs against, so components never import a concrete
// logging backend directly.
package logging

import "context"

// Logger is a leveled, context-aware structured logger. The variadic
// args are alternating key-value pairs:
//
//	log.Info(ctx, "challenge issued", "username", username)
type Logger interface {
	// Debug logs fine-grained diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs an unusual but non-fatal condition.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs
	// on every record.
	With(args ...any) Logger
}
