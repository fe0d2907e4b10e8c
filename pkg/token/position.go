package token

import "fmt"

// Position is the byte offset of a token within the tokenizer's current
// logical buffer. Line/column tracking is left to callers as an
// orthogonal observer; the scanner core only ever needs the offset.
type Position struct {
	Offset int
}

// String renders the position as a bare offset, e.g. "12".
func (p Position) String() string {
	return fmt.Sprintf("%d", p.Offset)
}
