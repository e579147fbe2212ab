// Package ogex implements a regular-expression engine whose distinguishing
// feature is a unified surface syntax for named groups and backreferences:
// `(name:...)` opens a named capturing group and `\g{N}`, `\g{name}`,
// `\g{-k}` (alongside the conventional `\1`-`\9`) all express a
// backreference through one form.
//
// Basic usage:
//
//	re, err := ogex.Compile(`(name:\w+) is \g{name}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.IsMatch("John is John") {
//	    fmt.Println("matched")
//	}
package ogex

import (
	"github.com/ogex/ogex/meta"
	"github.com/ogex/ogex/nfa"
	"github.com/ogex/ogex/template"
)

// Regexp represents a compiled Ogex pattern. A Regexp is safe for
// concurrent use by multiple goroutines; it is immutable after Compile
// returns.
type Regexp struct {
	engine  *meta.Engine
	pattern string
}

// Compile parses and compiles pattern, returning the regular expression or
// a *syntax.CompileError describing the first problem found.
func Compile(pattern string) (*Regexp, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regexp{engine: engine, pattern: pattern}, nil
}

// CompileWithConfig compiles pattern with explicit tuning.
func CompileWithConfig(pattern string, config meta.Config) (*Regexp, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regexp{engine: engine, pattern: pattern}, nil
}

// MustCompile is like Compile but panics if pattern cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("ogex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// String returns the source pattern text.
func (r *Regexp) String() string { return r.pattern }

// NumSubexp returns the number of explicit capturing groups (excluding
// group 0, the whole match).
func (r *Regexp) NumSubexp() int { return r.engine.NumSubexp() }

// SubexpNames returns the name-to-index map of the pattern's named groups.
func (r *Regexp) SubexpNames() map[string]int { return r.engine.SubexpNames() }

// Stats returns a snapshot of the engine's search counters.
func (r *Regexp) Stats() meta.Stats { return r.engine.Stats() }

// IsMatch reports whether subject contains any match.
func (r *Regexp) IsMatch(subject string) bool {
	return r.engine.IsMatch([]byte(subject))
}

// Match is an alias of IsMatch matching the conventional regexp.Match name.
func (r *Regexp) Match(subject string) bool { return r.IsMatch(subject) }

// Find returns the leftmost match in subject, or nil if there is none.
func (r *Regexp) Find(subject string) *Match {
	caps, ok := r.engine.Find([]byte(subject), 0)
	if !ok {
		return nil
	}
	return newMatch(r, subject, caps)
}

// FindAll returns every non-overlapping leftmost-first match in subject.
func (r *Regexp) FindAll(subject string) []*Match {
	allCaps := r.engine.FindAll([]byte(subject))
	if len(allCaps) == 0 {
		return nil
	}
	out := make([]*Match, len(allCaps))
	for i, caps := range allCaps {
		out[i] = newMatch(r, subject, caps)
	}
	return out
}

// FindIndex returns the [start, end) byte offsets of the leftmost match, or
// nil if there is none.
func (r *Regexp) FindIndex(subject string) []int {
	caps, ok := r.engine.Find([]byte(subject), 0)
	if !ok {
		return nil
	}
	return []int{caps[0].Start, caps[0].End}
}

// Match holds the result of a single successful match: the overall span
// and every capturing group's span, indexed 1..N alongside the pattern's
// name-to-index map for named lookups.
type Match struct {
	re      *Regexp
	subject string
	caps    []nfa.Span
}

func newMatch(re *Regexp, subject string, caps []nfa.Span) *Match {
	return &Match{re: re, subject: subject, caps: caps}
}

// Start returns the overall match's start byte offset.
func (m *Match) Start() int { return m.caps[0].Start }

// End returns the overall match's end byte offset.
func (m *Match) End() int { return m.caps[0].End }

// String returns the overall matched text.
func (m *Match) String() string { return m.subject[m.caps[0].Start:m.caps[0].End] }

// Group returns the text captured by the 1-based group index, and whether
// that group participated in the match.
func (m *Match) Group(index int) (string, bool) {
	if index < 0 || index >= len(m.caps) {
		return "", false
	}
	span := m.caps[index]
	if span.Start < 0 {
		return "", false
	}
	return m.subject[span.Start:span.End], true
}

// GroupIndex returns the byte span captured by the 1-based group index, and
// whether that group participated in the match.
func (m *Match) GroupIndex(index int) (start, end int, ok bool) {
	if index < 0 || index >= len(m.caps) {
		return 0, 0, false
	}
	span := m.caps[index]
	if span.Start < 0 {
		return 0, 0, false
	}
	return span.Start, span.End, true
}

// NamedGroup returns the text captured by the group registered under name,
// and whether that group both exists and participated in the match.
func (m *Match) NamedGroup(name string) (string, bool) {
	idx, ok := m.re.engine.SubexpNames()[name]
	if !ok {
		return "", false
	}
	return m.Group(idx)
}

// Whole returns the overall matched text, satisfying template.MatchSource.
func (m *Match) Whole() string { return m.String() }

// ByIndex is an alias of Group, satisfying template.MatchSource.
func (m *Match) ByIndex(index int) (string, bool) { return m.Group(index) }

// ByName is an alias of NamedGroup, satisfying template.MatchSource.
func (m *Match) ByName(name string) (string, bool) { return m.NamedGroup(name) }

// HasName reports whether name is a group declared by the pattern, whether
// or not that group participated in this match. Satisfies
// template.MatchSource, letting Apply distinguish "unknown name" (an error)
// from "known name, unparticipated group" (empty text).
func (m *Match) HasName(name string) bool {
	_, ok := m.re.engine.SubexpNames()[name]
	return ok
}

// Apply parses templateText and evaluates it against m in one step.
func Apply(templateText string, m *Match) (string, error) {
	tmpl, err := template.Parse(templateText)
	if err != nil {
		return "", err
	}
	return tmpl.Apply(m)
}
