package nfa

import (
	"fmt"

	"github.com/ogex/ogex/syntax"
)

// StateID uniquely identifies an NFA state.
type StateID uint32

// InvalidState is the sentinel for "no such state".
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and which transition it
// carries: Epsilon; MatchChar(c); MatchClass(set, negated); MatchAny;
// MatchAnchor(kind); CaptureStart(index); CaptureEnd(index); Backref(index).
type StateKind uint8

const (
	StateMatch StateKind = iota
	StateChar
	StateClass
	StateAny
	StateAnchor
	StateSplit
	StateEpsilon
	StateCaptureStart
	StateCaptureEnd
	StateBackref
	StateFail
)

func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateChar:
		return "Char"
	case StateClass:
		return "Class"
	case StateAny:
		return "Any"
	case StateAnchor:
		return "Anchor"
	case StateSplit:
		return "Split"
	case StateEpsilon:
		return "Epsilon"
	case StateCaptureStart:
		return "CaptureStart"
	case StateCaptureEnd:
		return "CaptureEnd"
	case StateBackref:
		return "Backref"
	case StateFail:
		return "Fail"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State is a single NFA state. Only the fields relevant to Kind are
// meaningful, mirroring the tagged-variant shape used throughout the
// syntax package.
type State struct {
	id   StateID
	kind StateKind

	char  rune
	class *syntax.CharClass

	anchorStart bool // StateAnchor: true = start-of-input, false = end-of-input

	next StateID // StateChar/Class/Any/Anchor/Epsilon/CaptureStart/CaptureEnd/Backref

	left, right StateID // StateSplit, tried in this order (encodes greediness)

	captureIndex int // StateCaptureStart/StateCaptureEnd/StateBackref
}

// ID returns the state's identifier.
func (s *State) ID() StateID { return s.id }

// Kind returns the state's variant tag.
func (s *State) Kind() StateKind { return s.kind }

// NFA is a directed graph of States built by Thompson's construction from
// an Ogex AST, extended with capture-boundary and backreference
// transitions. The whole automaton has one start state and one accept
// (StateMatch) state, per the Thompson fragment property.
type NFA struct {
	states       []State
	start        StateID
	captureCount int // explicit capturing groups, excluding group 0
	names        map[string]int
	hasBackref   bool
}

// Start returns the NFA's single entry state.
func (n *NFA) Start() StateID { return n.start }

// State returns the state with the given ID, or nil if id is out of range.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// States returns the total number of states.
func (n *NFA) States() int { return len(n.states) }

// CaptureCount returns the number of explicit capturing groups (excluding
// group 0, the whole match).
func (n *NFA) CaptureCount() int { return n.captureCount }

// HasBackref reports whether the pattern contains at least one
// backreference. The backtracker disables permanent cross-branch
// memoization whenever this is true (see Backtracker).
func (n *NFA) HasBackref() bool { return n.hasBackref }

// Names returns a copy of the name-to-capture-index map carried over from
// the group registry.
func (n *NFA) Names() map[string]int {
	out := make(map[string]int, len(n.names))
	for k, v := range n.names {
		out[k] = v
	}
	return out
}
