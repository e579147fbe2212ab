package syntax

// Parser builds an AST from pattern text by recursive descent:
//
//	alt      := concat ('|' concat)*
//	concat   := atom*
//	atom     := primary quantifier?
//	primary  := literal | class | any | anchor | backref
//	          | '(' group_tail
//	group_tail := ':' name_rest?   -- only if already lexed as named
//	           | '?:' alt ')'
//	           | alt ')'
type Parser struct {
	lexer    *Lexer
	pattern  string
	registry *GroupRegistry
	tok      Token
}

// Parse compiles pattern text into an AST and the group registry built
// while assigning capture indices. Backreferences by name are resolved
// once the whole pattern is available, so a name may be used before it is
// declared.
func Parse(pattern string) (*Node, *GroupRegistry, error) {
	p := &Parser{
		lexer:    NewLexer(pattern),
		pattern:  pattern,
		registry: NewGroupRegistry(),
	}
	if err := p.advance(); err != nil {
		return nil, nil, err
	}

	ast, err := p.parseAlt()
	if err != nil {
		return nil, nil, err
	}

	switch p.tok.Kind {
	case TokEOF:
	case TokGroupClose:
		return nil, nil, p.errf(ErrStructural, "mismatched parenthesis: unexpected ')'")
	default:
		return nil, nil, p.errf(ErrStructural, "unexpected trailing input")
	}

	if err := ResolveNames(ast, p.registry); err != nil {
		return nil, nil, p.errf(ErrReference, "%s", err)
	}

	return ast, p.registry, nil
}

func (p *Parser) errf(kind ErrorKind, format string, args ...any) error {
	return newError(kind, p.pattern, format, args...)
}

func (p *Parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) parseAlt() (*Node, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	branches := []*Node{first}
	for p.tok.Kind == TokAlt {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	return newAlt(branches), nil
}

func (p *Parser) parseConcat() (*Node, error) {
	var items []*Node
	for p.tok.Kind != TokAlt && p.tok.Kind != TokGroupClose && p.tok.Kind != TokEOF {
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		items = append(items, atom)
	}
	if len(items) == 0 {
		return newEmpty(), nil
	}
	return newConcat(items), nil
}

func (p *Parser) parseAtom() (*Node, error) {
	if p.tok.Kind == TokQuantifier {
		return nil, p.errf(ErrStructural, "quantifier without a preceding atom")
	}
	prim, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == TokQuantifier {
		q := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newRepeat(prim, q.Min, q.Max, q.Greedy), nil
	}
	return prim, nil
}

func (p *Parser) parsePrimary() (*Node, error) {
	tok := p.tok
	switch tok.Kind {
	case TokLiteral:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newLiteral(tok.Char), nil

	case TokClass:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newClass(tok.Class), nil

	case TokAnyChar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newAnyChar(), nil

	case TokAnchorStart:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newAnchor(true), nil

	case TokAnchorEnd:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newAnchor(false), nil

	case TokBackrefNumbered:
		if !p.registry.IndexExists(tok.Index) {
			return nil, p.errf(ErrReference, "numbered backreference \\%d refers to a group that does not exist", tok.Index)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newBackrefIndex(tok.Index), nil

	case TokBackrefRelative:
		idx, ok := p.registry.ResolveRelative(tok.RelOffset)
		if !ok {
			return nil, p.errf(ErrReference, "relative backreference \\g{-%d} out of range", tok.RelOffset)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newBackrefIndex(idx), nil

	case TokBackrefNamed:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newBackrefName(tok.Name), nil

	case TokGroupOpen:
		return p.parseGroup(tok)

	default:
		return nil, p.errf(ErrStructural, "unexpected token in pattern")
	}
}

func (p *Parser) parseGroup(open Token) (*Node, error) {
	if err := p.advance(); err != nil { // consume the group-open token
		return nil, err
	}

	var index int
	var name string
	switch open.GroupKind {
	case GroupNonCapturing:
		// index stays 0: not a capturing group.
	case GroupCapturing:
		index = p.registry.AllocateCapturing()
	case GroupNamed:
		idx, err := p.registry.AllocateNamed(open.Name)
		if err != nil {
			return nil, p.errf(ErrReference, "%s", err)
		}
		index = idx
		name = open.Name
	}

	child, err := p.parseAlt()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != TokGroupClose {
		return nil, p.errf(ErrStructural, "mismatched parenthesis: missing closing ')'")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return newGroup(index, name, child), nil
}
