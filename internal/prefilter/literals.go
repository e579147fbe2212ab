package prefilter

import "github.com/ogex/ogex/syntax"

// RequiredPrefixes extracts, for every top-level alternation branch of ast, a
// literal prefix that branch must begin with. Returns ok=false if any branch
// lacks a fixed leading literal (starts with a class, anchor, group,
// backreference, or optional/any-width atom) — in that case no prefilter
// can soundly skip positions.
func RequiredPrefixes(ast *syntax.Node) (prefixes [][]byte, ok bool) {
	branches := alternationBranches(ast)
	out := make([][]byte, 0, len(branches))
	for _, b := range branches {
		lit, ok := leadingLiteral(b)
		if !ok || len(lit) == 0 {
			return nil, false
		}
		out = append(out, lit)
	}
	return out, true
}

func alternationBranches(n *syntax.Node) []*syntax.Node {
	if n.Kind == syntax.NodeAlt {
		return n.Children
	}
	return []*syntax.Node{n}
}

// leadingLiteral collects the run of unconditionally-matched literal
// characters at the front of n (descending into Concat and mandatory,
// non-repeated Group wrapping), stopping at the first construct that isn't
// a guaranteed single literal character.
func leadingLiteral(n *syntax.Node) ([]byte, bool) {
	switch n.Kind {
	case syntax.NodeLiteral:
		return []byte(string(n.Char)), true

	case syntax.NodeGroup:
		return leadingLiteral(n.Child)

	case syntax.NodeConcat:
		// whole reports whether m is made only of literals, so the scan may
		// continue past it.
		var whole func(*syntax.Node) bool
		whole = func(m *syntax.Node) bool {
			if m.Kind == syntax.NodeGroup {
				return whole(m.Child)
			}
			all := m.Kind == syntax.NodeLiteral || m.Kind == syntax.NodeConcat
			for _, c := range m.Children {
				all = all && whole(c)
			}
			return all
		}
		var out []byte
		for _, child := range n.Children {
			lit, ok := leadingLiteral(child)
			out = append(out, lit...)
			if !ok || !whole(child) {
				// Partial prefix still useful as long as at least one
				// literal character was found before the uncertain atom.
				if len(out) > 0 {
					return out, true
				}
				return nil, false
			}
		}
		return out, true

	default:
		return nil, false
	}
}
