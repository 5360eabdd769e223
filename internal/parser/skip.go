package parser

import (
	"github.com/quickjson/quickjson/internal/builder"
	"github.com/quickjson/quickjson/internal/errs"
	"github.com/quickjson/quickjson/internal/simd"
	"github.com/quickjson/quickjson/internal/strlex"
)

// readRawString decodes one JSON string at the current position (which
// must be the opening quote) and advances the cursor past it, without
// invoking the builder. It backs the path-descent key comparisons in this
// file, which must compare decoded key text without emitting a Key event
// for keys the path does not want; ordinary object keys go through
// parseString.
func (p *Parser[S, B]) readRawString() (decoded string, start, end int, err *errs.Error) {
	start = p.pos
	bodyStart := p.pos + 1

	var buf []byte
	if p.Src.Volatile() {
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

	decoded, consumed, _, kind, errAt := strlex.Scan(buf)
	if kind != strlex.ErrNone {
		abs := bodyStart + errAt
		switch kind {
		case strlex.ErrUnclosedString:
			return "", start, start, errs.New(errs.KindUnclosedString, start, p.Src.Len())
		case strlex.ErrControlCharacter:
			return "", start, start, errs.New(errs.KindControlCharacter, abs, abs+1)
		case strlex.ErrInvalidEscapeSequence:
			return "", start, start, errs.New(errs.KindInvalidEscapeSequence, abs, abs+2)
		}
	}

	end = bodyStart + consumed
	p.pos = end
	return decoded, start, end, nil
}

// tryMatchRawKey attempts to decide whether the string at the current
// position (the opening quote) equals key without fully decoding it: if
// the SIMD body scan reaches the closing quote with no escape or control
// byte along the way, the raw bytes are exactly the decoded text, so a
// direct comparison stands in for readRawString's allocate-and-decode
// (§9: compare bytes first, decode only on a plausible match). handled is
// false when an escape or control byte was seen (or the string runs off
// the end of the buffered window), in which case the caller must fall
// back to readRawString.
func (p *Parser[S, B]) tryMatchRawKey(key string) (matched, handled bool) {
	bodyStart := p.pos + 1
	var buf []byte
	if p.Src.Volatile() {
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
	i := simd.StringBodyScan(buf)
	if i >= len(buf) || buf[i] != '"' {
		return false, false
	}
	matched = string(buf[:i]) == key
	p.pos = bodyStart + i + 1
	return matched, true
}

// tryMatchRawKeyUnchecked mirrors tryMatchRawKey using the unchecked SIMD
// scanner (stops only at '"' or '\\', never on a bare control byte),
// matching readRawStringUnchecked's trust-the-input contract.
func (p *Parser[S, B]) tryMatchRawKeyUnchecked(key string) (matched, handled bool) {
	bodyStart := p.pos + 1
	buf := p.Src.Slice(bodyStart, p.Src.Len())
	i := simd.StringBodyScanUnchecked(buf)
	if i >= len(buf) || buf[i] != '"' {
		return false, false
	}
	matched = string(buf[:i]) == key
	p.pos = bodyStart + i + 1
	return matched, true
}

// readRawStringUnchecked mirrors readRawString but drives the unchecked
// string scanner (no control-character rejection, malformed escapes
// passed through literally), per §4.2/§4.8's validated/unchecked pairing.
// It backs the genuinely-unchecked descent helpers below, which trust the
// input is well-formed and never turn a structural surprise into an
// *errs.Error.
func (p *Parser[S, B]) readRawStringUnchecked() string {
	bodyStart := p.pos + 1
	buf := p.Src.Slice(bodyStart, p.Src.Len())
	decoded, consumed := strlex.ScanUnchecked(buf)
	p.pos = bodyStart + consumed
	return decoded
}

// skipOneValueUnchecked discards exactly one value without validating
// its grammar: containers recurse structurally, strings use the
// unchecked scanner, and numbers/literals are skipped in one shot via
// the unescaped-literal SIMD scanner (§4.2) rather than re-parsing their
// grammar, since an untrusted-input check is exactly what this path
// forgoes.
func (p *Parser[S, B]) skipOneValueUnchecked() {
	switch p.skipWhitespace() {
	case '"':
		p.readRawStringUnchecked()
	case '{':
		p.skipObjectUnchecked()
	case '[':
		p.skipArrayUnchecked()
	default:
		start := p.pos
		buf := p.Src.Slice(start, p.Src.Len())
		p.pos = start + simd.UnescapedLiteralScan(buf)
	}
}

// skipObjectUnchecked discards an entire object's members unconditionally,
// never comparing keys — distinct from descendObjectUnchecked, which
// stops early on a match.
func (p *Parser[S, B]) skipObjectUnchecked() {
	p.skipWhitespace()
	p.pos++ // assume '{'
	if p.skipWhitespace() == '}' {
		p.pos++
		return
	}
	for {
		p.skipWhitespace()
		p.readRawStringUnchecked()
		p.skipWhitespace()
		p.pos++ // assume ':'
		p.skipOneValueUnchecked()
		switch p.skipWhitespace() {
		case ',':
			p.pos++
			if p.skipWhitespace() == '}' {
				p.pos++
				return
			}
		default:
			p.pos++
			return
		}
	}
}

// skipArrayUnchecked discards an entire array's elements unconditionally.
func (p *Parser[S, B]) skipArrayUnchecked() {
	p.skipWhitespace()
	p.pos++ // assume '['
	if p.skipWhitespace() == ']' {
		p.pos++
		return
	}
	for {
		p.skipOneValueUnchecked()
		switch p.skipWhitespace() {
		case ',':
			p.pos++
			if p.skipWhitespace() == ']' {
				p.pos++
				return
			}
		default:
			p.pos++
			return
		}
	}
}

// skipOneValue discards exactly one value at the current position by
// driving a throwaway Parser instantiated over builder.Discard, sharing
// this parser's Source, Config and comment sidecar. Instantiating the
// generic Parser with a different Builder type parameter gives the
// "produce nothing at all" builder shape from §9 for free, instead of a
// hand-written duplicate of Value/parseObject/parseArray/parseString.
func (p *Parser[S, B]) skipOneValue() *errs.Error {
	sp := &Parser[S, builder.Discard]{Src: p.Src, Bld: builder.Discard{}, Cfg: p.Cfg, comments: p.comments, pos: p.pos}
	_, _, err := sp.Value()
	p.pos = sp.pos
	return err
}

// descendObject expects the cursor at '{' and advances past the member
// whose key equals key, validating every key and every skipped sibling
// value along the way. On success the cursor is left at the first byte
// of the target member's value.
func (p *Parser[S, B]) descendObject(key string) *errs.Error {
	if p.skipWhitespace() != '{' {
		return errs.New(errs.KindUnexpectedToken, p.pos, p.pos+1)
	}
	p.pos++
	if p.might('}') {
		return errs.New(errs.KindExpectedValue, p.pos, p.pos+1)
	}

	for {
		if p.skipWhitespace() != '"' {
			return errs.New(errs.KindExpectedValue, p.pos, p.pos+1)
		}
		matched, handled := p.tryMatchRawKey(key)
		if !handled {
			gotKey, _, _, kerr := p.readRawString()
			if kerr != nil {
				return kerr
			}
			matched = gotKey == key
		}
		if cerr := p.expect(':'); cerr != nil {
			return cerr
		}
		if matched {
			return nil
		}
		if serr := p.skipOneValue(); serr != nil {
			return serr
		}

		switch c := p.skipWhitespace(); c {
		case ',':
			p.pos++
			if p.might('}') {
				return errs.New(errs.KindExpectedValue, p.pos, p.pos+1)
			}
		case '}':
			p.pos++
			return errs.New(errs.KindExpectedValue, p.pos, p.pos+1)
		default:
			return errs.Expected(',', p.pos)
		}
	}
}

// descendIndex expects the cursor at '[' and advances past the first idx
// elements, leaving the cursor at the first byte of element idx.
func (p *Parser[S, B]) descendIndex(idx int) *errs.Error {
	if p.skipWhitespace() != '[' {
		return errs.New(errs.KindUnexpectedToken, p.pos, p.pos+1)
	}
	p.pos++
	if p.might(']') {
		return errs.New(errs.KindExpectedValue, p.pos, p.pos+1)
	}

	for i := 0; ; i++ {
		if i == idx {
			return nil
		}
		if serr := p.skipOneValue(); serr != nil {
			return serr
		}
		switch c := p.skipWhitespace(); c {
		case ',':
			p.pos++
			if p.might(']') {
				return errs.New(errs.KindExpectedValue, p.pos, p.pos+1)
			}
		case ']':
			p.pos++
			return errs.New(errs.KindExpectedValue, p.pos, p.pos+1)
		default:
			return errs.Expected(',', p.pos)
		}
	}
}

// SkipToPath descends through path (a sequence of object keys and array
// indices), validating structure and skipped siblings at every step, and
// then parses the target value with this Parser's own Builder — the
// caller's builder consumes the target normally, per §4.8.
func (p *Parser[S, B]) SkipToPath(path []Component) (start, end int, err *errs.Error) {
	for _, c := range path {
		var derr *errs.Error
		if c.IsIndex {
			derr = p.descendIndex(c.Index)
		} else {
			derr = p.descendObject(c.Key)
		}
		if derr != nil {
			return p.pos, p.pos, derr
		}
	}
	return p.Value()
}

// SkipToPathUnchecked mirrors SkipToPath but trusts the input is
// well-formed: every tokenizer it drives is the genuinely unchecked
// variant (readRawStringUnchecked, skipOneValueUnchecked, the raw SIMD
// scanners) rather than the validated ones SkipToPath uses, and no
// structural mismatch ever becomes an *errs.Error — a missing key or
// out-of-range index simply leaves the cursor wherever the loop
// terminated and the subsequent Value() call reports whatever it finds
// there. This realizes the validated/unchecked pairing from §4.8 both in
// caller contract (no error return) and in the lexing path actually
// driven (unchecked SIMD primitives, not the validated ones).
func (p *Parser[S, B]) SkipToPathUnchecked(path []Component) (start, end int) {
	for _, c := range path {
		if c.IsIndex {
			p.descendIndexUnchecked(c.Index)
		} else {
			p.descendObjectUnchecked(c.Key)
		}
	}
	start, end, _ = p.Value()
	return start, end
}

// descendObjectUnchecked advances past members until key matches or the
// object closes, leaving the cursor at the first byte of that member's
// value.
func (p *Parser[S, B]) descendObjectUnchecked(key string) {
	p.skipWhitespace()
	p.pos++ // assume '{'
	if p.skipWhitespace() == '}' {
		p.pos++
		return
	}
	for {
		p.skipWhitespace()
		matched, handled := p.tryMatchRawKeyUnchecked(key)
		if !handled {
			matched = p.readRawStringUnchecked() == key
		}
		p.skipWhitespace()
		p.pos++ // assume ':'
		if matched {
			return
		}
		p.skipOneValueUnchecked()
		switch p.skipWhitespace() {
		case ',':
			p.pos++
			if p.skipWhitespace() == '}' {
				p.pos++
				return
			}
		default: // '}' or anything else: stop
			p.pos++
			return
		}
	}
}

// descendIndexUnchecked advances past idx elements, leaving the cursor at
// element idx.
func (p *Parser[S, B]) descendIndexUnchecked(idx int) {
	p.skipWhitespace()
	p.pos++ // assume '['
	if p.skipWhitespace() == ']' {
		p.pos++
		return
	}
	for i := 0; ; i++ {
		if i == idx {
			return
		}
		p.skipOneValueUnchecked()
		switch p.skipWhitespace() {
		case ',':
			p.pos++
			if p.skipWhitespace() == ']' {
				p.pos++
				return
			}
		default:
			p.pos++
			return
		}
	}
}
