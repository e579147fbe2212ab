package nfa

import "github.com/ogex/ogex/syntax"

// Compile translates a parsed AST and its group registry into an NFA by
// structural induction, one case per syntax.NodeKind, following Thompson's
// construction extended with capture-boundary and backreference
// transitions.
func Compile(ast *syntax.Node, registry *syntax.GroupRegistry) *NFA {
	b := NewBuilder()
	c := &compiler{b: b}

	entry, accept := c.compile(ast)
	matchState := b.AddMatch()
	b.Patch(accept, matchState)

	return b.Build(entry, registry.NumGroups(), registry.Names(), c.hasBackref)
}

type compiler struct {
	b          *Builder
	hasBackref bool
}

// compile returns a fragment (entry, accept) with the Thompson property:
// one entry state and one accept state. accept is always a mutable
// Epsilon stub (see Builder.Patch) the caller wires to whatever follows.
func (c *compiler) compile(n *syntax.Node) (entry, accept StateID) {
	switch n.Kind {
	case syntax.NodeEmpty:
		stub := c.b.AddEpsilon(InvalidState)
		return stub, stub

	case syntax.NodeLiteral:
		stub := c.b.AddEpsilon(InvalidState)
		st := c.b.AddChar(n.Char, stub)
		return st, stub

	case syntax.NodeClass:
		stub := c.b.AddEpsilon(InvalidState)
		st := c.b.AddClass(n.Class, stub)
		return st, stub

	case syntax.NodeAnyChar:
		stub := c.b.AddEpsilon(InvalidState)
		st := c.b.AddAny(stub)
		return st, stub

	case syntax.NodeAnchor:
		stub := c.b.AddEpsilon(InvalidState)
		st := c.b.AddAnchor(n.AnchorStart, stub)
		return st, stub

	case syntax.NodeBackref:
		c.hasBackref = true
		stub := c.b.AddEpsilon(InvalidState)
		st := c.b.AddBackref(n.BackrefIndex, stub)
		return st, stub

	case syntax.NodeConcat:
		return c.compileConcat(n.Children)

	case syntax.NodeAlt:
		return c.compileAlt(n.Children)

	case syntax.NodeGroup:
		return c.compileGroup(n)

	case syntax.NodeRepeat:
		return c.compileRepeat(n)

	default:
		stub := c.b.AddEpsilon(InvalidState)
		return stub, stub
	}
}

func (c *compiler) compileConcat(children []*syntax.Node) (entry, accept StateID) {
	entry, accept = c.compile(children[0])
	for _, child := range children[1:] {
		childEntry, childAccept := c.compile(child)
		c.b.Patch(accept, childEntry)
		accept = childAccept
	}
	return entry, accept
}

func (c *compiler) compileAlt(children []*syntax.Node) (entry, accept StateID) {
	joint := c.b.AddEpsilon(InvalidState)

	// Build right-to-left so each split tries its own branch before
	// falling through to "the rest", preserving source order as the
	// greediness/priority order.
	lastEntry, lastAccept := c.compile(children[len(children)-1])
	c.b.Patch(lastAccept, joint)
	acc := lastEntry

	for i := len(children) - 2; i >= 0; i-- {
		childEntry, childAccept := c.compile(children[i])
		c.b.Patch(childAccept, joint)
		acc = c.b.AddSplit(childEntry, acc)
	}

	return acc, joint
}

func (c *compiler) compileGroup(n *syntax.Node) (entry, accept StateID) {
	childEntry, childAccept := c.compile(n.Child)

	if n.GroupIndex == 0 {
		// Non-capturing: omit both capture boundaries.
		return childEntry, childAccept
	}

	endStub := c.b.AddEpsilon(InvalidState)
	capEnd := c.b.AddCaptureEnd(n.GroupIndex, endStub)
	c.b.Patch(childAccept, capEnd)
	capStart := c.b.AddCaptureStart(n.GroupIndex, childEntry)
	return capStart, endStub
}

func (c *compiler) compileRepeat(n *syntax.Node) (entry, accept StateID) {
	if n.Max == 0 {
		stub := c.b.AddEpsilon(InvalidState)
		return stub, stub
	}

	var mandEntry, mandAccept StateID = InvalidState, InvalidState
	for i := 0; i < n.Min; i++ {
		e, a := c.compile(n.Child)
		if mandEntry == InvalidState {
			mandEntry, mandAccept = e, a
		} else {
			c.b.Patch(mandAccept, e)
			mandAccept = a
		}
	}

	var tailEntry, tailAccept StateID
	if n.Max < 0 {
		// Unbounded tail: Thompson's star construction. The split
		// prefers the body branch first when greedy, the exit branch
		// first when non-greedy.
		loopStub := c.b.AddEpsilon(InvalidState)
		childEntry, childAccept := c.compile(n.Child)
		var split StateID
		if n.Greedy {
			split = c.b.AddSplit(childEntry, loopStub)
		} else {
			split = c.b.AddSplit(loopStub, childEntry)
		}
		c.b.Patch(childAccept, split)
		tailEntry, tailAccept = split, loopStub
	} else {
		// Bounded optional tail: nest (max-min) optional copies, each
		// able to skip straight to what follows.
		optional := n.Max - n.Min
		cur := c.b.AddEpsilon(InvalidState)
		tailAccept = cur
		for i := 0; i < optional; i++ {
			childEntry, childAccept := c.compile(n.Child)
			c.b.Patch(childAccept, cur)
			if n.Greedy {
				cur = c.b.AddSplit(childEntry, cur)
			} else {
				cur = c.b.AddSplit(cur, childEntry)
			}
		}
		tailEntry = cur
	}

	if mandEntry == InvalidState {
		return tailEntry, tailAccept
	}
	c.b.Patch(mandAccept, tailEntry)
	return mandEntry, tailAccept
}
