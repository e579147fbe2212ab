package syntax

import "sort"

// RuneRange is an inclusive range of code points, the unit a CharClass is
// built from.
type RuneRange struct {
	Lo, Hi rune
}

// CharClass is the accumulated, possibly negated, set of ranges a `[...]`
// token (or a predefined class like `\d`) carries.
type CharClass struct {
	Negated bool
	Ranges  []RuneRange
}

// NewCharClass returns an empty, non-negated class.
func NewCharClass() *CharClass {
	return &CharClass{}
}

// AddRange inserts an inclusive range of code points.
func (c *CharClass) AddRange(lo, hi rune) {
	if hi < lo {
		lo, hi = hi, lo
	}
	c.Ranges = append(c.Ranges, RuneRange{lo, hi})
}

// AddChar inserts a single code point.
func (c *CharClass) AddChar(r rune) {
	c.AddRange(r, r)
}

// AddClass merges another class's ranges in (used to expand \d, \w, \s
// inside a `[...]` body).
func (c *CharClass) AddClass(other *CharClass) {
	c.Ranges = append(c.Ranges, other.Ranges...)
}

// Matches reports whether r falls in the class, honoring negation.
func (c *CharClass) Matches(r rune) bool {
	in := false
	for _, rg := range c.Ranges {
		if r >= rg.Lo && r <= rg.Hi {
			in = true
			break
		}
	}
	if c.Negated {
		return !in
	}
	return in
}

// normalize sorts and merges overlapping ranges; used so two
// structurally-equal classes compare equal in tests.
func (c *CharClass) normalize() {
	if len(c.Ranges) < 2 {
		return
	}
	sort.Slice(c.Ranges, func(i, j int) bool { return c.Ranges[i].Lo < c.Ranges[j].Lo })
	merged := c.Ranges[:1]
	for _, rg := range c.Ranges[1:] {
		last := &merged[len(merged)-1]
		if rg.Lo <= last.Hi+1 {
			if rg.Hi > last.Hi {
				last.Hi = rg.Hi
			}
			continue
		}
		merged = append(merged, rg)
	}
	c.Ranges = merged
}

// Predefined classes for \d \D \w \W \s \S.
var (
	digitClass = &CharClass{Ranges: []RuneRange{{'0', '9'}}}
	wordClass  = &CharClass{Ranges: []RuneRange{
		{'a', 'z'}, {'A', 'Z'}, {'0', '9'}, {'_', '_'},
	}}
	spaceClass = &CharClass{Ranges: []RuneRange{
		{' ', ' '}, {'\t', '\t'}, {'\n', '\n'}, {'\r', '\r'}, {'\f', '\f'}, {'\v', '\v'},
	}}
)

// predefinedClass returns the predefined class for an escape letter (one of
// dDwWsS), or nil if c names no predefined class.
func predefinedClass(c rune) *CharClass {
	switch c {
	case 'd':
		return digitClass
	case 'D':
		return &CharClass{Negated: true, Ranges: digitClass.Ranges}
	case 'w':
		return wordClass
	case 'W':
		return &CharClass{Negated: true, Ranges: wordClass.Ranges}
	case 's':
		return spaceClass
	case 'S':
		return &CharClass{Negated: true, Ranges: spaceClass.Ranges}
	default:
		return nil
	}
}

// controlEscape returns the literal rune an escape like \n \t \r expands to,
// and whether c names one.
func controlEscape(c rune) (rune, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	default:
		return 0, false
	}
}
