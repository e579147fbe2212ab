package nfa

import (
	"unicode/utf8"

	"github.com/ogex/ogex/internal/conv"
	"github.com/ogex/ogex/internal/sparse"
)

// Span is a half-open byte range [Start, End) within the subject, or
// (-1, -1) if the corresponding group did not participate in the match.
type Span struct {
	Start, End int
}

// Backtracker simulates an NFA against a subject by recursive backtracking
// rather than subset-construction/PikeVM-style simulation. Backreferences
// make the language non-regular, so no DFA or Thompson-style parallel
// simulation can decide it; a backtracking walk that can inspect
// already-closed capture contents is required.
type Backtracker struct {
	nfa     *NFA
	subject []byte

	// visited guards against exploring the same (state, pos) pair twice
	// along paths that cannot produce different outcomes. When the
	// pattern has no backreferences, a state's future behavior depends
	// only on (state, pos), never on capture contents, so entries are
	// kept for the rest of the FindFrom attempt (permanent memoization,
	// turning possible exponential blowup into polynomial time). When
	// the pattern does have backreferences, two different call paths
	// can reach the same (state, pos) with different capture snapshots
	// and a backreference can succeed along one and fail along the
	// other — so entries are only valid as a same-path cycle guard and
	// are removed on return (see match).
	visited  *sparse.SparseSet
	universe uint32 // len(subject)+1, the stride used to linearize (state, pos)

	steps    int
	maxSteps int
}

// defaultMaxSteps bounds pathological backtracking (e.g. adversarial nested
// quantifiers) so a single match attempt cannot hang the caller forever when
// the caller hasn't set an explicit budget.
const defaultMaxSteps = 10_000_000

// NewBacktracker prepares a Backtracker for repeated FindFrom calls against
// the same subject. maxSteps <= 0 selects defaultMaxSteps, bounding
// catastrophic-pattern blowup when the caller has no explicit budget in mind.
func NewBacktracker(n *NFA, subject []byte, maxSteps int) *Backtracker {
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	universe := conv.IntToUint32(len(subject) + 1)
	capacity := conv.IntToUint32(n.States()) * universe
	return &Backtracker{
		nfa:      n,
		subject:  subject,
		visited:  sparse.NewSparseSet(capacity),
		universe: universe,
		maxSteps: maxSteps,
	}
}

// FindFrom attempts a match starting exactly at byte offset start. On
// success it returns the capture spans (index 0 is the whole match) and
// true. Capture slots for groups that never participated hold Span{-1,-1}.
func (bt *Backtracker) FindFrom(start int) ([]Span, bool) {
	bt.visited.Clear()
	bt.steps = 0

	caps := make([]Span, bt.nfa.CaptureCount()+1)
	for i := range caps {
		caps[i] = Span{-1, -1}
	}

	end, ok := bt.match(bt.nfa.Start(), start, caps)
	if !ok {
		return nil, false
	}
	caps[0] = Span{start, end}
	return caps, true
}

func (bt *Backtracker) memoKey(state StateID, pos int) uint32 {
	return uint32(state)*bt.universe + uint32(pos)
}

// match walks the NFA from state at subject offset pos, mutating caps as
// capture boundaries are crossed and restoring them on backtrack. It
// returns the final offset and true on the first successful path found,
// exploring branches in the priority order the compiler encoded (AddSplit's
// left-before-right), which is what makes greedy vs. lazy quantifiers and
// alternation order behave as documented.
func (bt *Backtracker) match(state StateID, pos int, caps []Span) (int, bool) {
	bt.steps++
	if bt.steps > bt.maxSteps {
		return 0, false
	}

	key := bt.memoKey(state, pos)
	if bt.visited.Contains(key) {
		// Either a confirmed dead end (no-backref mode) or a path
		// already in progress through this (state, pos) on the current
		// call stack (cycle guard in both modes).
		return 0, false
	}
	bt.visited.Insert(key)
	if bt.nfa.HasBackref() {
		defer bt.visited.Remove(key)
	}

	s := bt.nfa.State(state)
	if s == nil {
		return 0, false
	}

	switch s.Kind() {
	case StateMatch:
		return pos, true

	case StateFail:
		return 0, false

	case StateChar:
		r, size := decodeRune(bt.subject[pos:])
		if size == 0 || r != s.char {
			return 0, false
		}
		return bt.match(s.next, pos+size, caps)

	case StateClass:
		r, size := decodeRune(bt.subject[pos:])
		if size == 0 || !s.class.Matches(r) {
			return 0, false
		}
		return bt.match(s.next, pos+size, caps)

	case StateAny:
		_, size := decodeRune(bt.subject[pos:])
		if size == 0 {
			return 0, false
		}
		return bt.match(s.next, pos+size, caps)

	case StateAnchor:
		if s.anchorStart {
			if pos != 0 {
				return 0, false
			}
		} else {
			if pos != len(bt.subject) {
				return 0, false
			}
		}
		return bt.match(s.next, pos, caps)

	case StateEpsilon:
		return bt.match(s.next, pos, caps)

	case StateSplit:
		if end, ok := bt.match(s.left, pos, caps); ok {
			return end, true
		}
		return bt.match(s.right, pos, caps)

	case StateCaptureStart:
		idx := s.captureIndex
		saved := caps[idx]
		caps[idx] = Span{pos, pos}
		if end, ok := bt.match(s.next, pos, caps); ok {
			return end, true
		}
		caps[idx] = saved
		return 0, false

	case StateCaptureEnd:
		idx := s.captureIndex
		saved := caps[idx]
		caps[idx] = Span{saved.Start, pos}
		if end, ok := bt.match(s.next, pos, caps); ok {
			return end, true
		}
		caps[idx] = saved
		return 0, false

	case StateBackref:
		span := caps[s.captureIndex]
		if span.Start < 0 {
			// A backreference to a group that never participated in
			// the match always fails.
			return 0, false
		}
		want := bt.subject[span.Start:span.End]
		if pos+len(want) > len(bt.subject) {
			return 0, false
		}
		got := bt.subject[pos : pos+len(want)]
		for i := range want {
			if want[i] != got[i] {
				return 0, false
			}
		}
		return bt.match(s.next, pos+len(want), caps)

	default:
		return 0, false
	}
}

// decodeRune decodes the leading UTF-8 rune of b, treating any byte that
// isn't the start of a valid sequence as a single raw byte (matching the
// permissive behavior of the lexer and char classes over raw input).
func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	if b[0] < utf8.RuneSelf {
		return rune(b[0]), 1
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size == 1 {
		return rune(b[0]), 1
	}
	return r, size
}
