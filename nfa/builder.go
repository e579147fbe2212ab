package nfa

import "github.com/ogex/ogex/syntax"

// Builder constructs an NFA incrementally. Every Add* method appends a new
// state and returns its ID; fragments are wired together by the compiler in
// compile.go using Patch to fill in a stub Epsilon state's target once it's
// known, following Thompson's construction.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

func (b *Builder) add(s State) StateID {
	id := StateID(len(b.states))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// AddMatch adds an accepting state.
func (b *Builder) AddMatch() StateID {
	return b.add(State{kind: StateMatch})
}

// AddChar adds a single-rune transition to next.
func (b *Builder) AddChar(r rune, next StateID) StateID {
	return b.add(State{kind: StateChar, char: r, next: next})
}

// AddClass adds a character-class transition to next.
func (b *Builder) AddClass(c *syntax.CharClass, next StateID) StateID {
	return b.add(State{kind: StateClass, class: c, next: next})
}

// AddAny adds a "match any character" transition to next.
func (b *Builder) AddAny(next StateID) StateID {
	return b.add(State{kind: StateAny, next: next})
}

// AddAnchor adds a start-of-input (start=true) or end-of-input (start=false)
// assertion transitioning to next on success.
func (b *Builder) AddAnchor(start bool, next StateID) StateID {
	return b.add(State{kind: StateAnchor, anchorStart: start, next: next})
}

// AddSplit adds an epsilon branch to two states, tried left-then-right.
// Branch order is how greediness is expressed: the builder always lists the
// preferred branch first.
func (b *Builder) AddSplit(left, right StateID) StateID {
	return b.add(State{kind: StateSplit, left: left, right: right})
}

// AddEpsilon adds a single silent transition to next. Used both to sequence
// fragments and as a mutable "stub" accept state patched in later via Patch.
func (b *Builder) AddEpsilon(next StateID) StateID {
	return b.add(State{kind: StateEpsilon, next: next})
}

// AddCaptureStart adds a capture-boundary transition recording the start of
// group index.
func (b *Builder) AddCaptureStart(index int, next StateID) StateID {
	return b.add(State{kind: StateCaptureStart, captureIndex: index, next: next})
}

// AddCaptureEnd adds a capture-boundary transition recording the end of
// group index.
func (b *Builder) AddCaptureEnd(index int, next StateID) StateID {
	return b.add(State{kind: StateCaptureEnd, captureIndex: index, next: next})
}

// AddBackref adds a backreference transition against group index.
func (b *Builder) AddBackref(index int, next StateID) StateID {
	return b.add(State{kind: StateBackref, captureIndex: index, next: next})
}

// Patch rewires an Epsilon stub state's target. id must name a state
// previously returned as a fragment's "accept" by one of the Add* helpers
// above, used as an Epsilon stub (AddEpsilon(InvalidState)).
func (b *Builder) Patch(id StateID, target StateID) {
	b.states[id].next = target
}

// Build finalizes the NFA with the given start state.
func (b *Builder) Build(start StateID, captureCount int, names map[string]int, hasBackref bool) *NFA {
	return &NFA{
		states:       b.states,
		start:        start,
		captureCount: captureCount,
		names:        names,
		hasBackref:   hasBackref,
	}
}
