// Package escape implements the Escape Decoder: a pure function that,
// given a buffer and an offset pointing just past a backslash, decodes
// exactly one escape sequence and reports the new offset.
package escape

import (
	"strconv"
	"strings"

	cdberrors "github.com/wl-lang/scanner/internal/errors"
	"github.com/wl-lang/scanner/pkg/token"
)

// controlChars maps the single-letter control escape forms to the literal
// byte they produce.
var controlChars = map[byte]byte{
	'n': '\n',
	't': '\t',
	'b': '\b',
	'f': '\f',
	'r': '\r',
}

// literalChars is the set of characters that, when backslashed, decode to
// themselves literally.
var literalChars = map[byte]bool{
	'!':  true,
	'"':  true,
	' ':  true,
	'$':  true,
	'\\': true,
}

// Decode decodes exactly one escape sequence starting at buf[pos], where
// pos points at the character immediately following the backslash. It
// returns the decoded text and the offset of the first character after
// the escape, or a typed error from the internal/errors package.
//
// Decode never consults a line feeder: the caller must ensure enough
// characters are available in buf before calling.
func Decode(buf string, pos int, names NamedCharacterLookup) (string, int, error) {
	if pos >= len(buf) {
		return "", pos, &cdberrors.IncompleteSyntaxError{
			Text:   buf[pos:],
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}

	lead := buf[pos]

	switch {
	case lead == '\\':
		return "\\", pos + 1, nil

	case lead == '.':
		return decodeHex(buf, pos, 2, cdberrors.TagEscapeBadOctal2)

	case lead == ':':
		return decodeHex(buf, pos, 4, cdberrors.TagEscapeBadHex)

	case lead == '|':
		return decodeHex(buf, pos, 6, cdberrors.TagEscapeBadHex)

	case lead >= '0' && lead <= '7':
		return decodeOctal(buf, pos)

	case lead == '[':
		return decodeNamedCharacter(buf, pos, names)

	case controlChars[lead] != 0:
		return string(controlChars[lead]), pos + 1, nil

	case literalChars[lead]:
		return string(lead), pos + 1, nil

	case lead == '\n':
		return "\n", pos + 1, nil

	default:
		return "", pos, &cdberrors.EscapeSyntaxError{
			Tag:    cdberrors.TagEscapeUnknown,
			Text:   "\\" + string(lead),
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}
}

// NamedCharacterLookup is the subset of *cdb.CDB the decoder needs: name
// resolution for \[Name]. Declared here rather than importing cdb
// directly so escape stays a leaf package with no dependency on the
// larger character database type.
type NamedCharacterLookup interface {
	NamedCharacterCodePoint(name string) (rune, bool)
}

func decodeHex(buf string, pos int, digits int, badTag string) (string, int, error) {
	start := pos + 1
	end := start + digits
	if end > len(buf) || !isHexDigits(buf[start:end]) {
		avail := buf[start:]
		if end <= len(buf) {
			avail = buf[start:end]
		}
		return "", pos, &cdberrors.EscapeSyntaxError{
			Tag:    badTag,
			Text:   "\\" + string(buf[pos]) + avail,
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}
	value, err := strconv.ParseInt(buf[start:end], 16, 32)
	if err != nil {
		return "", pos, &cdberrors.EscapeSyntaxError{
			Tag:    badTag,
			Text:   "\\" + string(buf[pos]) + buf[start:end],
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}
	return string(rune(value)), end, nil
}

func decodeOctal(buf string, pos int) (string, int, error) {
	end := pos + 3
	if end > len(buf) || !isOctalDigits(buf[pos:end]) {
		avail := buf[pos:]
		if end <= len(buf) {
			avail = buf[pos:end]
		}
		return "", pos, &cdberrors.EscapeSyntaxError{
			Tag:    cdberrors.TagEscapeBadOctal1,
			Text:   "\\" + avail,
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}
	value, err := strconv.ParseInt(buf[pos:end], 8, 32)
	if err != nil {
		return "", pos, &cdberrors.EscapeSyntaxError{
			Tag:    cdberrors.TagEscapeBadOctal1,
			Text:   "\\" + buf[pos:end],
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}
	return string(rune(value)), end, nil
}

func decodeNamedCharacter(buf string, pos int, names NamedCharacterLookup) (string, int, error) {
	closeIdx := strings.IndexByte(buf[pos:], ']')
	if closeIdx == -1 {
		return "", pos, &cdberrors.NamedCharacterSyntaxError{
			Name:   buf[pos+1:],
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}
	name := buf[pos+1 : pos+closeIdx]
	if name == "" || !isAlpha(name) {
		return "", pos, &cdberrors.NamedCharacterSyntaxError{
			Name:   name,
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}
	r, ok := names.NamedCharacterCodePoint(name)
	if !ok {
		return "", pos, &cdberrors.NamedCharacterSyntaxError{
			Name:   name,
			Pos:    token.Position{Offset: pos},
			Source: buf,
		}
	}
	return string(r), pos + closeIdx + 1, nil
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}

func isOctalDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '7' {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}
