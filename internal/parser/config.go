package parser

import "log/slog"

// Config mirrors the public quickjson.Config fields the parser core
// needs, kept as a plain struct here to avoid importing the root package
// (which imports this one).
type Config struct {
	RequireComma      bool
	AllowTrailingComma bool
	AllowComments      bool

	// Logger receives debug-level diagnostics from slow paths. Nil (the
	// zero value used throughout this package's own tests) resolves to
	// slog.Default() via effectiveLogger rather than panicking.
	Logger *slog.Logger
}

// effectiveLogger resolves a possibly-nil Logger to a usable *slog.Logger.
func effectiveLogger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
