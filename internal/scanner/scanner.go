// Package scanner implements the Tokenizer: the state machine that reads
// from a Line Feeder and, consulting the Character Database and Escape
// Decoder, produces a lazy sequence of Tokens.
package scanner

import (
	"errors"
	"unicode/utf8"

	"github.com/wl-lang/scanner/internal/cdb"
	cdberrors "github.com/wl-lang/scanner/internal/errors"
	"github.com/wl-lang/scanner/internal/feed"
	"github.com/wl-lang/scanner/pkg/token"
)

// Mode selects which pattern set the tokenizer dispatches with.
type Mode int

const (
	ModeExpression Mode = iota
	ModeFilename
)

// Tokenizer is the TK state machine. A Tokenizer is created with a
// reference to one Feeder and one CDB; Next is called until it returns an
// End token, after which the Tokenizer is dropped. The CDB outlives every
// Tokenizer built from it.
type Tokenizer struct {
	feeder feed.Feeder
	cdb    *cdb.CDB

	buffer string
	pos    int
	mode   Mode

	// InBox is read/write by the external parser when it opens/closes a
	// RowBox; it is never mutated by the tokenizer itself.
	InBox bool
}

// ErrCDBNotLoaded is returned by New when given a nil CDB.
var ErrCDBNotLoaded = errors.New("scanner: cdb has not been loaded")

// New creates a Tokenizer over feeder, reading one initial line and
// entering Expression mode.
func New(feeder feed.Feeder, c *cdb.CDB) (*Tokenizer, error) {
	if c == nil {
		return nil, ErrCDBNotLoaded
	}
	t := &Tokenizer{feeder: feeder, cdb: c, mode: ModeExpression}
	t.buffer = feeder.Feed()
	return t, nil
}

// Next returns the next token. At end of input it returns
// Token(End, "", len(buffer)) indefinitely.
func (t *Tokenizer) Next() (token.Token, error) {
	for {
		if err := t.skipWhitespaceAndComments(); err != nil {
			return token.Token{}, err
		}

		if t.pos < len(t.buffer) {
			break
		}

		if t.feeder.Empty() {
			return token.NewEnd(t.pos), nil
		}
		line := t.feeder.Feed()
		if line == "" {
			return token.NewEnd(t.pos), nil
		}
		t.buffer = line
		t.pos = 0
	}

	if t.mode == ModeFilename {
		return t.scanFilename()
	}
	return t.scanExpression()
}

// scanExpression dispatches on buffer[pos] in Expression mode.
func (t *Tokenizer) scanExpression() (token.Token, error) {
	start := t.pos
	c := t.buffer[t.pos]

	if c < 0x80 {
		switch {
		case c >= '0' && c <= '9':
			return t.scanNumber(start)
		case c == '.' && t.pos+1 < len(t.buffer) && t.buffer[t.pos+1] >= '0' && t.buffer[t.pos+1] <= '9':
			return t.scanNumber(start)
		case c == '"':
			return t.scanString(start)
		case c == '#':
			return t.scanSlot(start)
		case c == '%':
			return t.scanOut(start)
		case c == '\\':
			if tok, ok, err := t.dispatchASCIIOperator(start, c); ok || err != nil {
				if err != nil {
					return tok, err
				}
				if tok.Tag != token.RawBackslash {
					return tok, nil
				}
				t.pos = start
			}
			return t.scanRawBackslash(start)
		case c == '_' || isSymbolLeadByte(c):
			if tok, ok := t.tryScanPattern(start); ok {
				return tok, nil
			}
			return t.scanSymbol(start)
		}

		if tok, ok, err := t.dispatchASCIIOperator(start, c); ok || err != nil {
			return tok, err
		}
		return token.Token{}, t.invalidSyntax(start)
	}

	r, _ := utf8.DecodeRuneInString(t.buffer[t.pos:])
	if t.cdb.IsLetterLike(r) {
		if tok, ok := t.tryScanPattern(start); ok {
			return tok, nil
		}
		return t.scanSymbol(start)
	}
	if tok, ok, err := t.dispatchUnicodeOperator(start); ok || err != nil {
		return tok, err
	}
	return token.Token{}, t.invalidSyntax(start)
}

// afterOperatorEmit applies the Get/Put/PutAppend to Filename mode
// transition before returning tok.
func (t *Tokenizer) afterOperatorEmit(tok token.Token) token.Token {
	switch tok.Tag {
	case token.Get, token.Put, token.PutAppend:
		t.mode = ModeFilename
	}
	return tok
}

// invalidSyntaxTag picks sntxb at the start of a line and sntxf after an
// otherwise good prefix.
func invalidSyntaxTag(start int) string {
	if start == 0 {
		return cdberrors.TagInvalidSyntaxBOL
	}
	return cdberrors.TagInvalidSyntaxCont
}

func (t *Tokenizer) invalidSyntax(start int) error {
	tag := invalidSyntaxTag(start)
	text := t.buffer[start:]
	if len(text) > 1 {
		text = text[:1]
	}
	t.feeder.Message("Syntax", tag, text)
	return &cdberrors.InvalidSyntaxError{
		Tag:    tag,
		Text:   text,
		Pos:    token.Position{Offset: start},
		Source: t.buffer,
	}
}

// recordEscapeMessage mirrors a decoder error onto the feeder's message
// list before it surfaces to the caller, so feeder.Messages() carries
// every diagnostic the tokenizer discovered in order.
func (t *Tokenizer) recordEscapeMessage(err error) error {
	var esc *cdberrors.EscapeSyntaxError
	var named *cdberrors.NamedCharacterSyntaxError
	var inc *cdberrors.IncompleteSyntaxError
	switch {
	case errors.As(err, &esc):
		t.feeder.Message("Syntax", esc.Tag, esc.Text)
	case errors.As(err, &named):
		t.feeder.Message("Syntax", cdberrors.TagNamedCharUnknown, named.Name)
	case errors.As(err, &inc):
		t.feeder.Message("Syntax", cdberrors.TagIncompleteSyntax, inc.Text)
	}
	return err
}

func isSymbolLeadByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '$' || c == '`'
}
