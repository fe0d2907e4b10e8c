package scanner

import "github.com/wl-lang/scanner/pkg/token"

// scanNumber recognizes the number grammar: an
// optional `B^^digits` base prefix, a decimal mantissa with at most one
// `.`, an optional backtick precision/accuracy suffix, and an optional
// `*^` exponent.
//
// Edge cases handled explicitly: a terminal `.` immediately followed by
// another `.` is never consumed (so `1..` tokenizes as Number("1") then
// Repeated("..")), and a leading `.` with no integer part is a valid
// entry point (so `.01` alone, or after `=`, tokenizes as a Number).
func (t *Tokenizer) scanNumber(start int) (token.Token, error) {
	pos := start

	for pos < len(t.buffer) && isDigit(t.buffer[pos]) {
		pos++
	}
	sawIntDigits := pos > start

	if sawIntDigits && pos+1 < len(t.buffer) && t.buffer[pos] == '^' && t.buffer[pos+1] == '^' {
		basePos := pos
		pos += 2
		sawBaseDigit := false
		for pos < len(t.buffer) && isBaseDigit(t.buffer[pos]) {
			pos++
			sawBaseDigit = true
		}
		if !consumeTrailingDot(t, &pos, isBaseDigit) {
			// no dot consumed, nothing else to do
		} else {
			sawBaseDigit = true
		}
		if !sawBaseDigit {
			// `B^^` with no digits following is not a valid number;
			// back off to just the decimal prefix and let operator
			// dispatch handle `^^` on its own.
			pos = basePos
		}
	} else {
		consumeTrailingDot(t, &pos, isDigit)
	}

	// Optional precision/accuracy suffix: ` or `` then optional sign and
	// a mantissa.
	if pos < len(t.buffer) && t.buffer[pos] == '`' {
		pos++
		if pos < len(t.buffer) && t.buffer[pos] == '`' {
			pos++
		}
		if pos < len(t.buffer) && (t.buffer[pos] == '+' || t.buffer[pos] == '-') {
			pos++
		}
		for pos < len(t.buffer) && isDigit(t.buffer[pos]) {
			pos++
		}
		consumeTrailingDot(t, &pos, isDigit)
	}

	// Optional exponent: *^ then optional sign and decimal digits.
	if pos+1 < len(t.buffer) && t.buffer[pos] == '*' && t.buffer[pos+1] == '^' {
		pos += 2
		if pos < len(t.buffer) && (t.buffer[pos] == '+' || t.buffer[pos] == '-') {
			pos++
		}
		for pos < len(t.buffer) && isDigit(t.buffer[pos]) {
			pos++
		}
	}

	text := t.buffer[start:pos]
	t.pos = pos
	return token.New(token.Number, text, start), nil
}

// consumeTrailingDot advances *pos past a single '.' and any following
// digit run matched by isDigitFn, unless the '.' is itself followed by
// another '.'. Returns whether a dot was consumed.
func consumeTrailingDot(t *Tokenizer, pos *int, isDigitFn func(byte) bool) bool {
	p := *pos
	if p >= len(t.buffer) || t.buffer[p] != '.' {
		return false
	}
	if p+1 < len(t.buffer) && t.buffer[p+1] == '.' {
		return false
	}
	p++
	for p < len(t.buffer) && isDigitFn(t.buffer[p]) {
		p++
	}
	*pos = p
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isBaseDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
