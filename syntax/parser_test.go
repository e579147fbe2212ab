package syntax

import "testing"

func TestParseCompiles(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"digit class", `\d`, false},
		{"word repeat", `\w+`, false},
		{"alternation", "foo|bar", false},
		{"capturing group", "(a)(b)", false},
		{"named group", "(name:\\w+)", false},
		{"non-capturing group", "(?:ab)c", false},
		{"numbered backref", `(a)(b)\1`, false},
		{"relative backref", `(a)(b)\g{-1}`, false},
		{"named backref", `(name:a) \g{name}`, false},
		{"bounded quantifier", "a{2,4}", false},
		{"unterminated group", "(a", true},
		{"quantifier without atom", "*a", true},
		{"unknown numbered backref", `\1`, true},
		{"relative backref out of range", `\g{-1}`, true},
		{"unknown named backref", `\g{missing}`, true},
		{"duplicate group name", "(name:a)(name:b)", true},
		{"unterminated class", "[abc", true},
		{"unterminated g brace", `\g{1`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestForwardNameReference(t *testing.T) {
	ast, reg, err := Parse(`\g{name}(name:a)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if reg.NumGroups() != 1 {
		t.Fatalf("NumGroups() = %d, want 1", reg.NumGroups())
	}
	// The backref node is the concat's first child.
	if ast.Kind != NodeConcat || len(ast.Children) != 2 {
		t.Fatalf("unexpected AST shape: %+v", ast)
	}
	backref := ast.Children[0]
	if backref.Kind != NodeBackref || backref.BackrefIndex != 1 {
		t.Errorf("forward reference did not resolve: %+v", backref)
	}
}

func TestDigitsBeforeColonIsPlainGroup(t *testing.T) {
	ast, reg, err := Parse("(123:x)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if reg.NumGroups() != 1 {
		t.Fatalf("NumGroups() = %d, want 1", reg.NumGroups())
	}
	group := ast
	if group.Kind != NodeGroup {
		t.Fatalf("expected a group node, got %+v", group)
	}
	if group.GroupName != "" {
		t.Errorf("expected an unnamed group, got name %q", group.GroupName)
	}
	// Body should be the literal sequence "123:x".
	if group.Child.Kind != NodeConcat || len(group.Child.Children) != 5 {
		t.Errorf("expected 5-character literal body, got %+v", group.Child)
	}
}

func TestGroupRegistryRelativeResolution(t *testing.T) {
	reg := NewGroupRegistry()
	a := reg.AllocateCapturing()
	_, err := reg.AllocateNamed("x")
	if err != nil {
		t.Fatalf("AllocateNamed: %v", err)
	}
	b := reg.AllocateCapturing()

	if idx, ok := reg.ResolveRelative(1); !ok || idx != b {
		t.Errorf("ResolveRelative(1) = (%d, %v), want (%d, true)", idx, ok, b)
	}
	if idx, ok := reg.ResolveRelative(2); !ok || idx != a {
		t.Errorf("ResolveRelative(2) = (%d, %v), want (%d, true)", idx, ok, a)
	}
	if _, ok := reg.ResolveRelative(3); ok {
		t.Error("ResolveRelative(3) should fail: only 2 numbered-only groups exist")
	}
}

func TestCharClassMatches(t *testing.T) {
	_, _, err := Parse(`[a-z0-9]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cc := NewCharClass()
	cc.AddRange('a', 'z')
	cc.AddRange('0', '9')
	cc.normalize()

	for _, r := range []rune{'a', 'm', 'z', '0', '9'} {
		if !cc.Matches(r) {
			t.Errorf("Matches(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'A', ' ', '-'} {
		if cc.Matches(r) {
			t.Errorf("Matches(%q) = true, want false", r)
		}
	}

	cc.Negated = true
	if cc.Matches('a') {
		t.Error("negated class matched 'a'")
	}
	if !cc.Matches('A') {
		t.Error("negated class failed to match 'A'")
	}
}
