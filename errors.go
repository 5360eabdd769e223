package quickjson

import (
	"errors"

	"github.com/quickjson/quickjson/internal/errs"
)

// ErrParse is the sentinel every [Error] wraps, so callers can test for
// "any parse failure" with errors.Is without inspecting Kind.
var ErrParse = errors.New("quickjson: parse error")

// ErrorKind classifies why a parse failed. See the package error
// taxonomy in errs.Kind, aliased here so the public surface does not leak
// the internal package path.
type ErrorKind = errs.Kind

const (
	KindEOF                       = errs.KindEOF
	KindExpectedColon             = errs.KindExpectedColon
	KindExpectedValue             = errs.KindExpectedValue
	KindUnexpectedToken           = errs.KindUnexpectedToken
	KindExpectedByte              = errs.KindExpectedByte
	KindTrailingComma             = errs.KindTrailingComma
	KindUnclosedString            = errs.KindUnclosedString
	KindControlCharacter          = errs.KindControlCharacter
	KindInvalidEscapeSequence     = errs.KindInvalidEscapeSequence
	KindInvalidLiteral            = errs.KindInvalidLiteral
	KindLeadingDecimal            = errs.KindLeadingDecimal
	KindTrailingDecimal           = errs.KindTrailingDecimal
	KindLeadingZero               = errs.KindLeadingZero
	KindMissingDigitAfterNegative = errs.KindMissingDigitAfterNegative
	KindExpectedExponentValue     = errs.KindExpectedExponentValue
	KindNumberOverflow            = errs.KindNumberOverflow
	KindMessage                   = errs.KindMessage
)

// Error is the structured error every public entry point returns on
// failure: a Kind plus the half-open byte span [Start, End) that produced
// it (Start==End for errors at end of input and for visitor messages).
type Error struct {
	inner *errs.Error
}

func wrapErr(e *errs.Error) *Error {
	if e == nil {
		return nil
	}
	return &Error{inner: e}
}

func (e *Error) Error() string { return e.inner.Error() }
func (e *Error) Unwrap() error { return ErrParse }

// Kind reports why the parse failed.
func (e *Error) Kind() ErrorKind { return e.inner.Kind }

// Span returns the half-open byte range the error applies to.
func (e *Error) Span() (start, end int) { return e.inner.Start, e.inner.End }
