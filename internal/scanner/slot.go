package scanner

import "github.com/wl-lang/scanner/pkg/token"

// scanSlot recognizes `##` followed by an optional run of digits as a
// SlotSequence, and otherwise `#` followed by an optional digit run or a
// single base symbol (no context marks) as a Slot.
func (t *Tokenizer) scanSlot(start int) (token.Token, error) {
	pos := start + 1

	if pos < len(t.buffer) && t.buffer[pos] == '#' {
		pos++
		for pos < len(t.buffer) && isDigit(t.buffer[pos]) {
			pos++
		}
		t.pos = pos
		return token.New(token.SlotSequence, t.buffer[start:pos], start), nil
	}

	if pos < len(t.buffer) && isDigit(t.buffer[pos]) {
		for pos < len(t.buffer) && isDigit(t.buffer[pos]) {
			pos++
		}
	} else {
		pos = matchBase(t.buffer, pos, t.cdb)
	}
	t.pos = pos
	return token.New(token.Slot, t.buffer[start:pos], start), nil
}

// scanOut recognizes `%` followed by an optional run of further `%` or an
// optional run of digits: `%`, `%%%`, `%42`.
func (t *Tokenizer) scanOut(start int) (token.Token, error) {
	pos := start + 1

	switch {
	case pos < len(t.buffer) && t.buffer[pos] == '%':
		for pos < len(t.buffer) && t.buffer[pos] == '%' {
			pos++
		}
	case pos < len(t.buffer) && isDigit(t.buffer[pos]):
		for pos < len(t.buffer) && isDigit(t.buffer[pos]) {
			pos++
		}
	}
	t.pos = pos
	return token.New(token.Out, t.buffer[start:pos], start), nil
}
