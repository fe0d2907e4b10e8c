package cdb

import "sort"

// Pattern is one operator dispatch candidate: the tag name it produces and
// the literal text that triggers it.
type Pattern struct {
	Tag     string
	Literal string
}

// Dispatch is the operator pattern set the tokenizer matches against: patterns
// grouped by leading ASCII byte (ordered longest-literal-first so `===`
// wins over `==` wins over `=`), plus a linear-scan list for operators
// whose literal starts with a non-ASCII byte.
type Dispatch struct {
	ByLeadByte map[byte][]Pattern
	Unicode    []Pattern
}

// buildDispatch assembles the pattern set from every operator table entry:
// its ASCII spelling (if any) and its Unicode spelling (if any), which
// covers the fixed ASCII table, the box operators, and the no-meaning
// operators in one pass since all three live in the same operators map.
func (c *CDB) buildDispatch() *Dispatch {
	d := &Dispatch{ByLeadByte: make(map[byte][]Pattern)}

	names := make([]string, 0, len(c.operators))
	for name := range c.operators {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		op := c.operators[name]
		if op.ASCII != "" {
			lead := op.ASCII[0]
			d.ByLeadByte[lead] = append(d.ByLeadByte[lead], Pattern{Tag: name, Literal: op.ASCII})
		}
		if op.Unicode != "" {
			d.Unicode = append(d.Unicode, Pattern{Tag: name, Literal: op.Unicode})
		}
	}

	for lead := range d.ByLeadByte {
		patterns := d.ByLeadByte[lead]
		sort.Slice(patterns, func(i, j int) bool {
			if len(patterns[i].Literal) != len(patterns[j].Literal) {
				return len(patterns[i].Literal) > len(patterns[j].Literal)
			}
			return patterns[i].Literal < patterns[j].Literal
		})
		d.ByLeadByte[lead] = patterns
	}

	sort.Slice(d.Unicode, func(i, j int) bool {
		if len(d.Unicode[i].Literal) != len(d.Unicode[j].Literal) {
			return len(d.Unicode[i].Literal) > len(d.Unicode[j].Literal)
		}
		return d.Unicode[i].Literal < d.Unicode[j].Literal
	})

	return d
}

// Dispatch returns the shared, immutable operator pattern set built at
// Load time.
func (c *CDB) Dispatch() *Dispatch {
	return c.dispatch
}

// OperatorUnicodeIter returns every (tag, literal) pair whose literal is
// the Unicode spelling of an operator, in the order TK should extend its
// pattern set with them at construction time.
func (c *CDB) OperatorUnicodeIter() []Pattern {
	out := make([]Pattern, len(c.dispatch.Unicode))
	copy(out, c.dispatch.Unicode)
	return out
}
