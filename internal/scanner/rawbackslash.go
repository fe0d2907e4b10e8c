package scanner

import (
	"unicode/utf8"

	cdberrors "github.com/wl-lang/scanner/internal/errors"
	"github.com/wl-lang/scanner/internal/escape"
	"github.com/wl-lang/scanner/pkg/token"
)

// scanRawBackslash handles a backslash whose operator dispatch matched
// nothing longer than the bare RawBackslash pattern: a bare escape sequence
// appearing as the start of a token. If the decoded
// character names an operator via the named-character table (e.g.
// \[Integral]) or is an ordinary operator spelling reached through a
// non-named escape (e.g. octal "\050" decoding to "("), that operator's
// token is emitted directly. If it is letterlike, the token continues as a
// Symbol. Otherwise the sequence is not a valid token start.
func (t *Tokenizer) scanRawBackslash(start int) (token.Token, error) {
	pos := start + 1
	if pos >= len(t.buffer) {
		if t.feeder.Empty() {
			return token.Token{}, t.incompleteRawBackslash(start)
		}
		line := t.feeder.Feed()
		if line == "" {
			return token.Token{}, t.incompleteRawBackslash(start)
		}
		// Extend the logical line so the escape stays contiguous with its
		// backslash.
		t.buffer += line
	}

	text, newPos, err := escape.Decode(t.buffer, pos, t.cdb)
	if err != nil {
		t.pos = newPos
		return token.Token{}, t.recordEscapeMessage(err)
	}

	if text == `"` {
		// A backslashed quote outside a string cannot start any token.
		t.feeder.Message("Syntax", cdberrors.TagIncompleteSyntax, t.buffer[start:newPos])
		t.pos = newPos
		return token.Token{}, &cdberrors.InvalidSyntaxError{
			Tag:    invalidSyntaxTag(start),
			Text:   t.buffer[start:newPos],
			Pos:    token.Position{Offset: start},
			Source: t.buffer,
		}
	}

	r, size := utf8.DecodeRuneInString(text)
	if size == len(text) {
		if nc, ok := t.cdb.NamedCharacterByCodePoint(r); ok && nc.OperatorName != "" {
			if tag, ok := token.Lookup(nc.OperatorName); ok {
				t.pos = newPos
				// Accepted-but-meaningless operators carry their decoded
				// character as text; everything else keeps its source
				// spelling.
				emitted := t.buffer[start:newPos]
				if t.cdb.IsNoMeaningOperator(nc.OperatorName) {
					emitted = text
				}
				return t.afterOperatorEmit(token.New(tag, emitted, start)), nil
			}
		}
		if t.cdb.IsLetterLike(r) {
			return t.scanSymbolFrom(start, newPos, text)
		}
	}

	if tag, ok := t.lookupOperatorLiteral(text); ok {
		t.pos = newPos
		return t.afterOperatorEmit(token.New(tag, t.buffer[start:newPos], start)), nil
	}

	t.pos = newPos
	return token.Token{}, t.invalidSyntax(start)
}

// lookupOperatorLiteral matches text, the character an escape decoded to,
// against the CDB's operator dispatch tables: a
// bare backslash escape that happens to decode to an ordinary operator
// spelling (e.g. octal "\050" decoding to "(") must still produce that
// operator's token rather than InvalidSyntax.
func (t *Tokenizer) lookupOperatorLiteral(text string) (token.Tag, bool) {
	if text == "" {
		return 0, false
	}
	if text[0] < 0x80 {
		for _, pat := range t.cdb.Dispatch().ByLeadByte[text[0]] {
			if pat.Literal == text {
				if tag, ok := token.Lookup(pat.Tag); ok {
					return tag, true
				}
			}
		}
		return 0, false
	}
	for _, pat := range t.cdb.Dispatch().Unicode {
		if pat.Literal == text {
			if tag, ok := token.Lookup(pat.Tag); ok {
				return tag, true
			}
		}
	}
	return 0, false
}

func (t *Tokenizer) incompleteRawBackslash(start int) error {
	t.feeder.Message("Syntax", cdberrors.TagIncompleteSyntax, "\\")
	return &cdberrors.IncompleteSyntaxError{
		Text:   "\\",
		Pos:    token.Position{Offset: start},
		Source: t.buffer,
	}
}
