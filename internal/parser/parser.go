// Package parser implements the byte-level state machine described in
// §4.3–§4.7 of the specification: whitespace/comment skipping, value
// dispatch, container parsing, string and number decoding, generic over
// the Source capability set and the Builder event contract so each
// combination is specialized rather than dispatched per byte.
package parser

import (
	"github.com/quickjson/quickjson/internal/builder"
	"github.com/quickjson/quickjson/internal/errs"
	"github.com/quickjson/quickjson/internal/numlex"
	"github.com/quickjson/quickjson/internal/simd"
	"github.com/quickjson/quickjson/internal/source"
	"github.com/quickjson/quickjson/internal/strlex"
	"github.com/quickjson/quickjson/internal/xcomment"
)

// Parser drives Source S against Builder B. Two independent axes of
// specialization (source capability, builder shape) are resolved at
// instantiation instead of branching per byte.
type Parser[S source.Source, B builder.Builder] struct {
	Src S
	Bld B
	Cfg Config

	pos      int
	comments *xcomment.Sidecar // nil unless metadata/comments requested

	// stamp records the start of the lexeme currently being classified.
	// Error spans are computed from their own positions and do not read it.
	stamp int
}

// New constructs a Parser. comments may be nil if the caller does not
// want comment/line metadata recorded.
func New[S source.Source, B builder.Builder](src S, bld B, cfg Config, comments *xcomment.Sidecar) *Parser[S, B] {
	return &Parser[S, B]{Src: src, Bld: bld, Cfg: cfg, comments: comments}
}

// Pos returns the parser's current cursor offset.
func (p *Parser[S, B]) Pos() int { return p.pos }

// Seek repositions the cursor, used by lazy-value materialization to
// re-enter a parse at a byte offset recorded by an earlier pass.
func (p *Parser[S, B]) Seek(pos int) { p.pos = pos }

func (p *Parser[S, B]) byteAt(i int) byte { return p.Src.Byte(i) }

func (p *Parser[S, B]) atEOF(i int) bool { return i >= p.Src.Len() }

// skipWhitespace advances past spaces, tabs, newlines, form feeds and (if
// enabled) comments, returning the next significant byte or 0 at EOF. The
// cursor is left pointing at that byte (not past it).
func (p *Parser[S, B]) skipWhitespace() byte {
	for {
		if p.atEOF(p.pos) {
			return 0
		}
		c := p.byteAt(p.pos)
		switch c {
		case ' ', '\t', '\r', '\f':
			p.pos++
			continue
		case '\n':
			if p.comments != nil {
				p.comments.RecordNewline(p.pos)
			}
			p.pos++
			continue
		case '/':
			if p.Cfg.AllowComments && p.tryComment() {
				continue
			}
			return c
		default:
			return c
		}
	}
}

// tryComment consumes one `//...` or `/*...*/` comment starting at the
// current '/'. It returns false (without consuming anything) if the next
// byte does not introduce a comment.
func (p *Parser[S, B]) tryComment() bool {
	start := p.pos
	next := p.byteAt(p.pos + 1)
	switch next {
	case '/':
		p.pos += 2
		for !p.atEOF(p.pos) && p.byteAt(p.pos) != '\n' {
			p.pos++
		}
		p.recordComment(start, p.pos, false)
		return true
	case '*':
		p.pos += 2
		for {
			if p.atEOF(p.pos) {
				// Unterminated block comment: treat as consuming to EOF;
				// the caller's subsequent EOF check raises KindEOF.
				p.recordComment(start, p.pos, true)
				return true
			}
			if p.byteAt(p.pos) == '\n' && p.comments != nil {
				p.comments.RecordNewline(p.pos)
			}
			if p.byteAt(p.pos) == '*' && p.byteAt(p.pos+1) == '/' {
				p.pos += 2
				p.recordComment(start, p.pos, true)
				return true
			}
			p.pos++
		}
	default:
		return false
	}
}

func (p *Parser[S, B]) recordComment(start, end int, multi bool) {
	if p.comments == nil {
		return
	}
	p.comments.RecordComment(xcomment.Comment{
		Start: start, End: end, MultiLine: multi,
		Text: string(p.Src.Slice(start, end)),
	})
}

// might peeks past whitespace/comments and, on a match, advances past the
// matched byte.
func (p *Parser[S, B]) might(want byte) bool {
	if p.skipWhitespace() == want {
		p.pos++
		return true
	}
	return false
}

// expect requires want at the current (whitespace-skipped) position.
func (p *Parser[S, B]) expect(want byte) *errs.Error {
	if !p.might(want) {
		return errs.Expected(want, p.pos)
	}
	return nil
}

// ParseRoot parses exactly one value, then requires the remainder of the
// input be whitespace only (the "no-tail invariant", §8 property 7).
func (p *Parser[S, B]) ParseRoot() (start, end int, err *errs.Error) {
	start, end, err = p.Value()
	if err != nil {
		return start, end, err
	}
	p.trimConsumed()
	if p.skipWhitespace() != 0 {
		return start, end, errs.New(errs.KindUnexpectedToken, p.pos, p.pos+1)
	}
	return start, end, nil
}

// trimConsumed signals a volatile Source that bytes before the cursor are
// no longer needed. Called only at value boundaries (§5), where no
// outstanding pointer into the trimmed prefix can exist: every string
// borrowed from a volatile Source is already copied out (parseString
// forces owned=true when Src.Volatile()), and the caller's container span
// bookkeeping holds plain ints, never a slice into the buffer.
func (p *Parser[S, B]) trimConsumed() {
	if p.Src.Volatile() {
		p.Src.Trim(p.pos)
	}
}

// Value parses one JSON value at the current position (after skipping
// leading whitespace), dispatching on the leading byte per §4.4, and
// returns its byte span.
func (p *Parser[S, B]) Value() (start, end int, err *errs.Error) {
	c := p.skipWhitespace()
	start = p.pos
	p.stamp = start

	switch {
	case c == 0:
		return start, start, errs.New(errs.KindEOF, start, start)
	case c == '"':
		return p.parseString(false)
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == 't' || c == 'f' || c == 'n':
		return p.parseLiteral(c)
	default:
		return start, start, errs.New(errs.KindUnexpectedToken, start, start+1)
	}
}

func (p *Parser[S, B]) parseLiteral(c byte) (start, end int, err *errs.Error) {
	start = p.pos
	want := "true"
	switch c {
	case 'f':
		want = "false"
	case 'n':
		want = "null"
	}
	for i := 0; i < len(want); i++ {
		if p.byteAt(p.pos) != want[i] {
			return start, p.pos, errs.New(errs.KindInvalidLiteral, start, p.pos+1)
		}
		p.pos++
	}
	end = p.pos
	switch c {
	case 't':
		p.Bld.Bool(true, start, end)
	case 'f':
		p.Bld.Bool(false, start, end)
	case 'n':
		p.Bld.Null(start, end)
	}
	return start, end, nil
}

func (p *Parser[S, B]) parseString(asKey bool) (start, end int, err *errs.Error) {
	start = p.pos // points at opening quote
	bodyStart := p.pos + 1

	var buf []byte
	if p.Src.Volatile() {
		// Extend the buffered window until the string's terminator is
		// within it or the stream is exhausted.
		for {
			avail := p.Src.Len()
			buf = p.Src.Slice(bodyStart, avail)
			if hasTerminator(buf) || p.atEOF(avail) {
				break
			}
		}
	} else {
		buf = p.Src.Slice(bodyStart, p.Src.Len())
	}

	decoded, consumed, hadEscape, kind, errAt := strlex.Scan(buf)
	if kind != strlex.ErrNone {
		abs := bodyStart + errAt
		switch kind {
		case strlex.ErrUnclosedString:
			return start, start, errs.New(errs.KindUnclosedString, start, p.Src.Len())
		case strlex.ErrControlCharacter:
			return start, start, errs.New(errs.KindControlCharacter, abs, abs+1)
		case strlex.ErrInvalidEscapeSequence:
			return start, start, errs.New(errs.KindInvalidEscapeSequence, abs, abs+2)
		}
	}

	end = bodyStart + consumed
	// A borrow is only safe when the source guarantees the bytes it hands
	// back stay alive and unmutated for as long as the caller keeps the
	// Value around; volatile (streaming) sources and any string with
	// escapes (always freshly allocated by strlex.Scan) are owned copies.
	owned := hadEscape || p.Src.Volatile()
	if !owned && !p.Src.UTF8Guaranteed() && !strlex.ValidateUTF8(decoded) {
		return start, start, errs.New(errs.KindControlCharacter, start, end)
	}
	p.pos = end

	if asKey {
		p.Bld.Key(decoded, owned, start, end)
	} else {
		p.Bld.String(decoded, owned, start, end)
	}
	return start, end, nil
}

// readRawString's duplication of this decode loop (in skip.go) is
// intentional: path descent compares decoded key text without driving
// this Parser's Builder at all, so it cannot route through parseString.

func hasTerminator(buf []byte) bool {
	i := simd.StringBodyScan(buf)
	return i < len(buf) && buf[i] == '"'
}

// commaOptional reports whether two elements may follow each other without
// a separating comma, given the effective config: RequireComma=false
// implies trailing (and any missing) comma is always tolerated.
func (p *Parser[S, B]) commaOptional() bool {
	return !p.Cfg.RequireComma
}

func (p *Parser[S, B]) trailingCommaOK() bool {
	return p.commaOptional() || p.Cfg.AllowTrailingComma
}

// parseArray parses a '[' ... ']' container, already positioned at '['.
func (p *Parser[S, B]) parseArray() (start, end int, err *errs.Error) {
	start = p.pos
	p.pos++ // consume '['
	p.Bld.BeginArray(start)

	if p.might(']') {
		end = p.pos
		p.Bld.EndArray(start, end)
		return start, end, nil
	}

	for {
		if _, _, verr := p.Value(); verr != nil {
			return start, start, verr
		}
		p.trimConsumed()

		c := p.skipWhitespace()
		switch c {
		case ',':
			commaPos := p.pos
			p.pos++
			if p.might(']') {
				if !p.trailingCommaOK() {
					return start, start, errs.New(errs.KindTrailingComma, commaPos, commaPos+1)
				}
				end = p.pos
				p.Bld.EndArray(start, end)
				return start, end, nil
			}
			continue
		case ']':
			p.pos++
			end = p.pos
			p.Bld.EndArray(start, end)
			return start, end, nil
		default:
			if !p.commaOptional() {
				return start, start, errs.Expected(',', p.pos)
			}
			continue
		}
	}
}

// parseObject parses a '{' ... '}' container, already positioned at '{'.
func (p *Parser[S, B]) parseObject() (start, end int, err *errs.Error) {
	start = p.pos
	p.pos++ // consume '{'
	p.Bld.BeginObject(start)

	if p.might('}') {
		end = p.pos
		p.Bld.EndObject(start, end)
		return start, end, nil
	}

	for {
		if p.skipWhitespace() != '"' {
			return start, start, errs.New(errs.KindExpectedValue, p.pos, p.pos+1)
		}
		if _, _, kerr := p.parseString(true); kerr != nil {
			return start, start, kerr
		}
		if cerr := p.expect(':'); cerr != nil {
			return start, start, cerr
		}
		if _, _, verr := p.Value(); verr != nil {
			return start, start, verr
		}
		p.trimConsumed()

		c := p.skipWhitespace()
		switch c {
		case ',':
			commaPos := p.pos
			p.pos++
			if p.might('}') {
				if !p.trailingCommaOK() {
					return start, start, errs.New(errs.KindTrailingComma, commaPos, commaPos+1)
				}
				end = p.pos
				p.Bld.EndObject(start, end)
				return start, end, nil
			}
			continue
		case '}':
			p.pos++
			end = p.pos
			p.Bld.EndObject(start, end)
			return start, end, nil
		default:
			if !p.commaOptional() {
				return start, start, errs.Expected(',', p.pos)
			}
			continue
		}
	}
}

// parseNumber lexes a JSON number literal per §4.7: optional '-', an
// integer part (no leading zero unless the part is exactly "0"), an
// optional fractional part, an optional exponent.
func (p *Parser[S, B]) parseNumber() (start, end int, err *errs.Error) {
	start = p.pos
	lex := numlex.Lexeme{}

	if p.byteAt(p.pos) == '.' {
		return start, start, errs.New(errs.KindLeadingDecimal, start, p.pos+1)
	}

	if p.byteAt(p.pos) == '-' {
		lex.Negative = true
		p.pos++
		if p.atEOF(p.pos) || !isDigit(p.byteAt(p.pos)) {
			return start, start, errs.New(errs.KindMissingDigitAfterNegative, start, p.pos+1)
		}
	}

	intStart := p.pos
	if p.byteAt(p.pos) == '0' {
		p.pos++
		if !p.atEOF(p.pos) && isDigit(p.byteAt(p.pos)) {
			return start, start, errs.New(errs.KindLeadingZero, intStart, p.pos+1)
		}
	} else {
		for !p.atEOF(p.pos) && isDigit(p.byteAt(p.pos)) {
			p.pos++
		}
	}
	lex.IntDigits = p.Src.Slice(intStart, p.pos)

	if !p.atEOF(p.pos) && p.byteAt(p.pos) == '.' {
		lex.HasFrac = true
		p.pos++
		fracStart := p.pos
		for !p.atEOF(p.pos) && isDigit(p.byteAt(p.pos)) {
			p.pos++
		}
		if p.pos == fracStart {
			return start, start, errs.New(errs.KindTrailingDecimal, start, p.pos)
		}
		lex.FracDigits = p.Src.Slice(fracStart, p.pos)
	}

	if !p.atEOF(p.pos) && (p.byteAt(p.pos) == 'e' || p.byteAt(p.pos) == 'E') {
		lex.HasExp = true
		p.pos++
		expNeg := false
		if !p.atEOF(p.pos) && (p.byteAt(p.pos) == '+' || p.byteAt(p.pos) == '-') {
			expNeg = p.byteAt(p.pos) == '-'
			p.pos++
		}
		expStart := p.pos
		for !p.atEOF(p.pos) && isDigit(p.byteAt(p.pos)) {
			p.pos++
		}
		if p.pos == expStart {
			return start, start, errs.New(errs.KindExpectedExponentValue, start, p.pos+1)
		}
		exp := 0
		for _, d := range p.Src.Slice(expStart, p.pos) {
			exp = exp*10 + int(d-'0')
			if exp > 1_000_000 {
				exp = 1_000_000 // clamp; the conversion then overflows, or underflows to 0 for a negative exponent
				break
			}
		}
		if expNeg {
			exp = -exp
		}
		lex.Exp = exp
	}

	end = p.pos
	n, ok, usedFallback := numlex.Convert(lex)
	if !ok {
		return start, start, errs.New(errs.KindNumberOverflow, start, end)
	}
	if usedFallback {
		effectiveLogger(p.Cfg.Logger).Debug("quickjson: long-decimal fallback engaged",
			"literal", string(p.Src.Slice(start, end)), "start", start)
	}
	p.Bld.Number(n, start, end)
	return start, end, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
