package meta

import "github.com/ogex/ogex/nfa"

// Find attempts a match anywhere in subject starting at or after from,
// trying each candidate start position in turn. Returns the capture spans
// (index 0 is the whole match) and true on success.
func (e *Engine) Find(subject []byte, from int) ([]nfa.Span, bool) {
	e.recordSearch()
	bt := nfa.NewBacktracker(e.automaton, subject, e.config.MaxBacktrackSteps)

	pos := from
	for pos <= len(subject) {
		candidate, ok := e.candidateFrom(subject, pos)
		if !ok || candidate > len(subject) {
			return nil, false
		}
		if caps, ok := bt.FindFrom(candidate); ok {
			return caps, true
		}
		pos = candidate + 1
	}
	return nil, false
}

// IsMatch reports whether subject contains any match anywhere.
func (e *Engine) IsMatch(subject []byte) bool {
	if e.aho != nil && !e.aho.IsMatch(subject) {
		// A required literal missing anywhere means no alternation branch
		// can match, but only when every branch contributed a literal to
		// the automaton and RequiredPrefixes succeeded for all of them
		// (buildPrefilter's precondition) — safe to short-circuit.
		return false
	}
	_, ok := e.Find(subject, 0)
	return ok
}

// FindAll returns every non-overlapping match in subject, left to right.
// After a match at [s, e), the next search begins at e if e > s, otherwise
// at s+1, so zero-width matches don't loop forever.
func (e *Engine) FindAll(subject []byte) [][]nfa.Span {
	var out [][]nfa.Span
	pos := 0
	for pos <= len(subject) {
		caps, ok := e.Find(subject, pos)
		if !ok {
			break
		}
		out = append(out, caps)
		if caps[0].End > caps[0].Start {
			pos = caps[0].End
		} else {
			pos = caps[0].Start + 1
		}
	}
	return out
}
