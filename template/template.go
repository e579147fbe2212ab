// Package template implements Ogex's replacement-template language: an
// ordered sequence of literal text and backreferences (`\g{N}`, `\g{name}`,
// `\G`) spliced against a successful match, sharing its backreference
// vocabulary with the pattern language.
package template

import (
	"fmt"
	"strings"
)

// SegmentKind tags a Template segment's variant.
type SegmentKind int

const (
	SegLiteral SegmentKind = iota
	SegGroupIndex
	SegGroupName
	SegWholeMatch
)

// Segment is a single piece of a parsed template.
type Segment struct {
	Kind SegmentKind

	Text string // SegLiteral
	Name string // SegGroupName

	// Index is the 1-based group index, valid for SegGroupIndex.
	Index int
}

// Template is an ordered sequence of segments parsed from template text.
type Template struct {
	source   string
	segments []Segment
}

// Source returns the original template text the Template was parsed from.
func (t *Template) Source() string { return t.source }

// ParseError reports a malformed replacement template.
type ParseError struct {
	Template string
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ogex: template error in %q: %s", e.Template, e.Message)
}

// Parse compiles template text into a Template. The only meta-characters
// are `\` followed by `g{...}` or `G`, and the escape `\\`; any other `\x`
// is a literal x.
func Parse(text string) (*Template, error) {
	src := []rune(text)
	var segs []Segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, Segment{Kind: SegLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(src); {
		c := src[i]
		if c != '\\' {
			lit.WriteRune(c)
			i++
			continue
		}

		if i+1 >= len(src) {
			return nil, &ParseError{Template: text, Message: "trailing backslash"}
		}
		next := src[i+1]

		switch next {
		case '\\':
			lit.WriteRune('\\')
			i += 2

		case 'G':
			flush()
			segs = append(segs, Segment{Kind: SegWholeMatch})
			i += 2

		case 'g':
			seg, consumed, err := parseGroupRef(src, i+2, text)
			if err != nil {
				return nil, err
			}
			flush()
			segs = append(segs, seg)
			i = consumed

		default:
			lit.WriteRune(next)
			i += 2
		}
	}
	flush()

	return &Template{source: text, segments: segs}, nil
}

// parseGroupRef parses the body of `\g{...}` starting immediately after the
// consumed "\g", returning the segment and the index just past the closing
// brace.
func parseGroupRef(src []rune, pos int, text string) (Segment, int, error) {
	if pos >= len(src) || src[pos] != '{' {
		return Segment{}, 0, &ParseError{Template: text, Message: "expected '{' after \\g"}
	}
	pos++

	start := pos
	for pos < len(src) && src[pos] != '}' {
		pos++
	}
	if pos >= len(src) {
		return Segment{}, 0, &ParseError{Template: text, Message: "unterminated \\g{"}
	}
	body := string(src[start:pos])
	pos++ // consume '}'

	if body == "" {
		return Segment{}, 0, &ParseError{Template: text, Message: "empty \\g{} reference"}
	}
	if n, ok := parseDecimal(body); ok {
		return Segment{Kind: SegGroupIndex, Index: n}, pos, nil
	}
	return Segment{Kind: SegGroupName, Name: body}, pos, nil
}

func parseDecimal(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// String renders the Template back to template text (modulo equivalent
// escape forms), so Parse(t.String()) round-trips to an equal segment
// sequence.
func (t *Template) String() string {
	var b strings.Builder
	for _, seg := range t.segments {
		switch seg.Kind {
		case SegLiteral:
			for _, r := range seg.Text {
				if r == '\\' {
					b.WriteString(`\\`)
				} else {
					b.WriteRune(r)
				}
			}
		case SegGroupIndex:
			fmt.Fprintf(&b, `\g{%d}`, seg.Index)
		case SegGroupName:
			fmt.Fprintf(&b, `\g{%s}`, seg.Name)
		case SegWholeMatch:
			b.WriteString(`\G`)
		}
	}
	return b.String()
}
