package scanner

import (
	cdberrors "github.com/wl-lang/scanner/internal/errors"
	"github.com/wl-lang/scanner/pkg/token"
)

// scanFilename recognizes a Filename token, reached only
// after a Get/Put/PutAppend operator switched the tokenizer into Filename
// mode. No escape processing happens here: the body is a plain character
// class run, optionally quoted. Emitting this token always reverts the
// tokenizer to Expression mode.
func (t *Tokenizer) scanFilename() (token.Token, error) {
	t.mode = ModeExpression

	start := t.pos
	pos := start
	quoted := pos < len(t.buffer) && t.buffer[pos] == '"'
	if quoted {
		pos++
	}

	for pos < len(t.buffer) && isFilenameChar(t.buffer[pos]) {
		pos++
	}

	if quoted {
		if pos >= len(t.buffer) || t.buffer[pos] != '"' {
			t.pos = pos
			t.feeder.Message("Syntax", cdberrors.TagIncompleteSyntax, `"`)
			return token.Token{}, &cdberrors.IncompleteSyntaxError{
				Text:   t.buffer[start:pos],
				Pos:    token.Position{Offset: start},
				Source: t.buffer,
			}
		}
		pos++
	}

	text := t.buffer[start:pos]
	t.pos = pos
	return token.New(token.Filename, text, start), nil
}

func isFilenameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '`', '/', '.', '\\', '!', '-', ':', '_', '$', '*', '~', '?':
		return true
	}
	return false
}
