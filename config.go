package quickjson

import (
	"log/slog"

	"github.com/quickjson/quickjson/internal/parser"
)

// Config is the small immutable record controlling parse grammar
// extensions. The zero value makes commas optional (and so allows
// trailing commas) and rejects comments; NewConfig returns strict JSON.
//
// Invariant: RequireComma=false implies trailing commas are always
// allowed, regardless of AllowTrailingComma — this mirrors the observed
// behavior of the reference implementation (see DESIGN.md, Open
// Questions) rather than leaving the interaction ambiguous.
type Config struct {
	requireComma      bool
	allowTrailingComma bool
	allowComments      bool

	// Logger receives debug-level diagnostics from slow paths (long-decimal
	// fallback engagement, streaming refills). Defaults to slog.Default()
	// when nil.
	Logger *slog.Logger
}

// NewConfig returns the default strict-JSON configuration: commas
// required, no trailing comma, no comments.
func NewConfig() Config {
	return Config{requireComma: true}
}

// WithRequireComma sets whether commas between container members are
// mandatory. Setting it false implicitly allows trailing commas, matching
// §4.5 of the specification.
func (c Config) WithRequireComma(v bool) Config {
	c.requireComma = v
	if !v {
		c.allowTrailingComma = true
	}
	return c
}

// WithAllowTrailingComma permits a single trailing comma before the
// closing brace/bracket. Has no additional effect when commas are already
// optional (WithRequireComma(false)).
func (c Config) WithAllowTrailingComma(v bool) Config {
	c.allowTrailingComma = v || !c.requireComma
	return c
}

// WithAllowComments enables `//` and `/* */` comments as whitespace.
func (c Config) WithAllowComments(v bool) Config {
	c.allowComments = v
	return c
}

func (c Config) requiresComma() bool   { return c.requireComma }
func (c Config) trailingCommaOK() bool { return c.allowTrailingComma }
func (c Config) commentsEnabled() bool { return c.allowComments }

func (c Config) toParserConfig() parser.Config {
	return parser.Config{
		RequireComma:       c.requireComma,
		AllowTrailingComma: c.allowTrailingComma,
		AllowComments:      c.allowComments,
		Logger:             c.Logger,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
