package prefilter

import "github.com/coregx/ahocorasick"

// multiLiteralThreshold is the branch count at or above which a single
// Aho-Corasick automaton outperforms scanning each literal independently.
const multiLiteralThreshold = 8

// AhoCorasick wraps a multi-pattern automaton for patterns with many
// top-level alternation literals, where scanning for each one separately
// would cost O(branches * n) instead of O(n).
type AhoCorasick struct {
	automaton *ahocorasick.Automaton
}

// NewAhoCorasick builds a multi-literal automaton from literals, or returns
// nil, false if there are too few literals to be worth it.
func NewAhoCorasick(literals [][]byte) (*AhoCorasick, bool) {
	if len(literals) < multiLiteralThreshold {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &AhoCorasick{automaton: auto}, true
}

// Next returns the start offset of the first occurrence of any literal at
// or after from, and true, or false if none occurs.
func (a *AhoCorasick) Next(haystack []byte, from int) (int, bool) {
	if a == nil || from >= len(haystack) {
		return 0, false
	}
	m := a.automaton.Find(haystack, from)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}

// IsMatch reports whether any literal occurs anywhere in haystack.
func (a *AhoCorasick) IsMatch(haystack []byte) bool {
	if a == nil {
		return false
	}
	return a.automaton.IsMatch(haystack)
}
