package syntax

// Lexer tokenizes pattern text into the stream the Parser consumes. It
// resolves escape sequences and the overloaded meaning of `:` inside group
// headers as it goes.
type Lexer struct {
	pattern string
	src     []rune
	pos     int
}

// NewLexer returns a Lexer positioned at the start of pattern.
func NewLexer(pattern string) *Lexer {
	return &Lexer{pattern: pattern, src: []rune(pattern)}
}

func (l *Lexer) errf(kind ErrorKind, format string, args ...any) error {
	return newError(kind, l.pattern, format, args...)
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return -1
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return -1
	}
	return l.src[l.pos+offset]
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isAlnum(r rune) bool { return isDigit(r) || isAlpha(r) }

// readInt consumes a run of ASCII digits. Returns ok=false (without
// consuming anything) if the current position isn't a digit.
func (l *Lexer) readInt() (int, bool) {
	start := l.pos
	n := 0
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		n = n*10 + int(l.src[l.pos]-'0')
		l.pos++
	}
	if l.pos == start {
		return 0, false
	}
	return n, true
}

// readIdentifier consumes [A-Za-z_][A-Za-z0-9_]*.
func (l *Lexer) readIdentifier() (string, bool) {
	start := l.pos
	if l.pos >= len(l.src) || !(isAlpha(l.src[l.pos]) || l.src[l.pos] == '_') {
		return "", false
	}
	l.pos++
	for l.pos < len(l.src) && (isAlnum(l.src[l.pos]) || l.src[l.pos] == '_') {
		l.pos++
	}
	return string(l.src[start:l.pos]), true
}

// Next returns the next token in the stream, or a TokEOF token once the
// pattern is exhausted.
func (l *Lexer) Next() (Token, error) {
	if l.pos >= len(l.src) {
		return Token{Kind: TokEOF}, nil
	}

	c := l.src[l.pos]
	switch c {
	case '(':
		l.pos++
		return l.lexGroupOpen()
	case ')':
		l.pos++
		return Token{Kind: TokGroupClose}, nil
	case '|':
		l.pos++
		return Token{Kind: TokAlt}, nil
	case '.':
		l.pos++
		return Token{Kind: TokAnyChar}, nil
	case '^':
		l.pos++
		return Token{Kind: TokAnchorStart}, nil
	case '$':
		l.pos++
		return Token{Kind: TokAnchorEnd}, nil
	case '[':
		l.pos++
		return l.lexClass()
	case '*':
		l.pos++
		return l.lexQuant(0, -1)
	case '+':
		l.pos++
		return l.lexQuant(1, -1)
	case '?':
		l.pos++
		return l.lexQuant(0, 1)
	case '{':
		return l.lexBrace()
	case '\\':
		l.pos++
		return l.lexEscape()
	default:
		l.pos++
		return Token{Kind: TokLiteral, Char: c}, nil
	}
}

// lexQuant builds a quantifier token for the single-character forms
// (*, +, ?), consuming a trailing '?' for non-greedy.
func (l *Lexer) lexQuant(min, max int) (Token, error) {
	greedy := true
	if l.peek() == '?' {
		l.pos++
		greedy = false
	}
	return Token{Kind: TokQuantifier, Min: min, Max: max, Greedy: greedy}, nil
}

// lexBrace lexes {n}, {n,}, and {n,m}.
func (l *Lexer) lexBrace() (Token, error) {
	l.pos++ // consume '{'
	n, ok := l.readInt()
	if !ok {
		return Token{}, l.errf(ErrLexical, "malformed quantifier: expected a number after '{'")
	}
	max := n
	if l.peek() == ',' {
		l.pos++
		if l.peek() == '}' {
			max = -1
		} else {
			m, ok := l.readInt()
			if !ok {
				return Token{}, l.errf(ErrLexical, "malformed quantifier: expected a number after ','")
			}
			max = m
		}
	}
	if l.peek() != '}' {
		return Token{}, l.errf(ErrLexical, "malformed quantifier: missing closing '}'")
	}
	l.pos++ // consume '}'
	greedy := true
	if l.peek() == '?' {
		l.pos++
		greedy = false
	}
	return Token{Kind: TokQuantifier, Min: n, Max: max, Greedy: greedy}, nil
}

// lexGroupOpen is called with l.pos immediately after a consumed '('.
func (l *Lexer) lexGroupOpen() (Token, error) {
	if l.peek() == '?' && l.peekAt(1) == ':' {
		l.pos += 2
		return Token{Kind: TokGroupOpen, GroupKind: GroupNonCapturing}, nil
	}
	if name, ok := l.tryLexNameColon(); ok {
		return Token{Kind: TokGroupOpen, GroupKind: GroupNamed, Name: name}, nil
	}
	return Token{Kind: TokGroupOpen, GroupKind: GroupCapturing}, nil
}

// tryLexNameColon attempts to consume "identifier:" at the current
// position, without consuming anything if the identifier isn't immediately
// followed by ':'. Digits cannot start an identifier, so "(123:" never
// matches here and is left to the plain-capturing-group path.
func (l *Lexer) tryLexNameColon() (string, bool) {
	save := l.pos
	name, ok := l.readIdentifier()
	if !ok || l.peek() != ':' {
		l.pos = save
		return "", false
	}
	l.pos++ // consume ':'
	return name, true
}

// lexEscape is called with l.pos immediately after a consumed '\'.
func (l *Lexer) lexEscape() (Token, error) {
	if l.pos >= len(l.src) {
		return Token{}, l.errf(ErrLexical, "pattern ends with a trailing backslash")
	}
	c := l.src[l.pos]
	l.pos++

	switch c {
	case 'd', 'D', 'w', 'W', 's', 'S':
		return Token{Kind: TokClass, Class: predefinedClass(c)}, nil
	case 'g':
		return l.lexBackrefBraces()
	case 'G':
		// Only meaningful inside replacement templates; in a pattern it's
		// a literal G.
		return Token{Kind: TokLiteral, Char: 'G'}, nil
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return Token{Kind: TokBackrefNumbered, Index: int(c - '0')}, nil
	default:
		if r, ok := controlEscape(c); ok {
			return Token{Kind: TokLiteral, Char: r}, nil
		}
		return Token{Kind: TokLiteral, Char: c}, nil
	}
}

// lexBackrefBraces is called with l.pos immediately after a consumed "\g".
func (l *Lexer) lexBackrefBraces() (Token, error) {
	if l.peek() != '{' {
		return Token{}, l.errf(ErrLexical, "expected '{' after \\g")
	}
	l.pos++ // consume '{'

	if l.peek() == '-' {
		l.pos++
		k, ok := l.readInt()
		if !ok || k <= 0 {
			return Token{}, l.errf(ErrLexical, "malformed relative backreference in \\g{-...}")
		}
		if l.peek() != '}' {
			return Token{}, l.errf(ErrLexical, "unterminated \\g{")
		}
		l.pos++
		return Token{Kind: TokBackrefRelative, RelOffset: k}, nil
	}

	if isDigit(l.peek()) {
		n, _ := l.readInt()
		if l.peek() != '}' {
			return Token{}, l.errf(ErrLexical, "unterminated \\g{")
		}
		l.pos++
		return Token{Kind: TokBackrefNumbered, Index: n}, nil
	}

	name, ok := l.readIdentifier()
	if !ok {
		return Token{}, l.errf(ErrLexical, "expected a number, name, or '-N' inside \\g{...}")
	}
	if l.peek() != '}' {
		return Token{}, l.errf(ErrLexical, "unterminated \\g{")
	}
	l.pos++
	return Token{Kind: TokBackrefNamed, Name: name}, nil
}

// lexClass is called with l.pos immediately after a consumed '['.
func (l *Lexer) lexClass() (Token, error) {
	cc := NewCharClass()
	if l.peek() == '^' {
		cc.Negated = true
		l.pos++
	}

	for {
		if l.pos >= len(l.src) {
			return Token{}, l.errf(ErrLexical, "unterminated character class")
		}
		if l.src[l.pos] == ']' {
			l.pos++
			break
		}

		lo, loClass, err := l.readClassAtom()
		if err != nil {
			return Token{}, err
		}
		if loClass != nil {
			cc.AddClass(loClass)
			continue
		}

		if l.peek() == '-' && l.peekAt(1) != -1 && l.peekAt(1) != ']' {
			l.pos++ // consume '-'
			hi, hiClass, err := l.readClassAtom()
			if err != nil {
				return Token{}, err
			}
			if hiClass != nil {
				// "a-\d" etc: '-' can't bind a range to a class, so both
				// the literal and the dash stand alone.
				cc.AddChar(lo)
				cc.AddChar('-')
				cc.AddClass(hiClass)
			} else {
				cc.AddRange(lo, hi)
			}
			continue
		}

		cc.AddChar(lo)
	}

	cc.normalize()
	return Token{Kind: TokClass, Class: cc}, nil
}

// readClassAtom reads one class member: either a literal rune, or (for a
// predefined-class escape like \d) a *CharClass to merge directly.
func (l *Lexer) readClassAtom() (rune, *CharClass, error) {
	c := l.src[l.pos]
	if c != '\\' {
		l.pos++
		return c, nil, nil
	}

	l.pos++ // consume '\'
	if l.pos >= len(l.src) {
		return 0, nil, l.errf(ErrLexical, "unterminated character class")
	}
	e := l.src[l.pos]
	l.pos++

	if pc := predefinedClass(e); pc != nil {
		return 0, pc, nil
	}
	if r, ok := controlEscape(e); ok {
		return r, nil, nil
	}
	return e, nil, nil
}
