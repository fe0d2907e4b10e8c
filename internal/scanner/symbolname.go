package scanner

import "github.com/wl-lang/scanner/internal/cdb"

// IsSymbolName reports whether text, taken as a whole, matches the
// grammar a bare Symbol token would produce: an optional leading context
// mark, a base of ASCII letters, digits, '$' and CDB-letterlike runes
// not starting with a digit, and any number of further `-separated
// bases, with no escapes. It does not accept a partial match the way the
// tokenizer's incremental scan does; the entire string must qualify.
func IsSymbolName(text string, c *cdb.CDB) bool {
	return text != "" && matchFullSymbol(text, 0, c) == len(text)
}
