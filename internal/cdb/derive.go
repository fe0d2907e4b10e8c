package cdb

// boxingExtraChars are appended to the boxing-suffix set beyond the last
// character of every box-operator literal.
var boxingExtraChars = []rune{'(', ')', '*'}

// derive populates every derived table from the parsed named-character and
// operator maps. Called once, after invariant checking succeeds, from
// inside Load.
func (c *CDB) derive() {
	c.namedCharByName = make(map[string]rune, len(c.namedCharacters))
	c.namedCharByCodePoint = make(map[rune]NamedCharacter, len(c.namedCharacters))
	c.letterlikes = make(map[rune]struct{})
	c.wlToUnicode = make(map[rune][]rune)
	c.wlToASCII = make(map[rune]string)
	c.unicodeToWL = make(map[rune]rune)

	for name, nc := range c.namedCharacters {
		c.namedCharByName[name] = nc.WLUnicode
		c.namedCharByCodePoint[nc.WLUnicode] = nc

		if nc.IsLetterLike {
			c.letterlikes[nc.WLUnicode] = struct{}{}
		}

		if nc.UnicodeEquivalent != 0 {
			c.wlToUnicode[nc.WLUnicode] = []rune{nc.UnicodeEquivalent}
		}
		if nc.ASCII != "" {
			c.wlToASCII[nc.WLUnicode] = nc.ASCII
		}
		if nc.HasUnicodeInverse {
			c.unicodeToWL[nc.UnicodeEquivalent] = nc.WLUnicode
		}
	}

	c.operatorPrec = make(map[string]int, len(c.operators))
	c.noMeaningOps = make(map[string]struct{})
	c.boxOperators = make(map[string]string)
	c.boxingSuffixChars = make(map[rune]struct{})

	for _, extra := range boxingExtraChars {
		c.boxingSuffixChars[extra] = struct{}{}
	}

	for name, op := range c.operators {
		c.operatorPrec[name] = op.Precedence

		if !op.Meaningful {
			c.noMeaningOps[name] = struct{}{}
		}

		if op.Affix == AffixBox && op.ASCII != "" {
			c.boxOperators[name] = op.ASCII
			runes := []rune(op.ASCII)
			c.boxingSuffixChars[runes[len(runes)-1]] = struct{}{}
		}
	}
}

// NamedCharacter looks up a named character by its identifier. Returns the
// zero value and false if the name is unknown.
func (c *CDB) NamedCharacter(name string) (NamedCharacter, bool) {
	nc, ok := c.namedCharacters[name]
	return nc, ok
}

// NamedCharacterCodePoint resolves \[Name] to its wl-unicode code point.
func (c *CDB) NamedCharacterCodePoint(name string) (rune, bool) {
	r, ok := c.namedCharByName[name]
	return r, ok
}

// NamedCharacterByCodePoint is the reverse of NamedCharacterCodePoint: it
// finds the named-character entry for a wl-unicode code point, used when
// a decoded escape turns out to spell an operator (e.g. \[Integral]).
func (c *CDB) NamedCharacterByCodePoint(r rune) (NamedCharacter, bool) {
	nc, ok := c.namedCharByCodePoint[r]
	return nc, ok
}

// IsLetterLike reports whether a code point may appear inside an
// identifier (other than in the leading position).
func (c *CDB) IsLetterLike(r rune) bool {
	_, ok := c.letterlikes[r]
	return ok
}

// Operator looks up an operator table entry by tag name.
func (c *CDB) Operator(name string) (Operator, bool) {
	op, ok := c.operators[name]
	return op, ok
}

// OperatorPrecedence returns the precedence of an operator tag.
func (c *CDB) OperatorPrecedence(name string) (int, bool) {
	p, ok := c.operatorPrec[name]
	return p, ok
}

// IsNoMeaningOperator reports whether an operator tag is accepted in
// source but carries no semantic meaning.
func (c *CDB) IsNoMeaningOperator(name string) bool {
	_, ok := c.noMeaningOps[name]
	return ok
}

// BoxOperators returns the operator-name → literal map of operators that
// are valid only inside box context.
func (c *CDB) BoxOperators() map[string]string {
	return c.boxOperators
}

// IsBoxingSuffixChar reports whether r may follow a backslash inside a
// string literal without being interpreted as a box operator.
func (c *CDB) IsBoxingSuffixChar(r rune) bool {
	_, ok := c.boxingSuffixChars[r]
	return ok
}
