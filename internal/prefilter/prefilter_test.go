package prefilter

import (
	"testing"

	"github.com/ogex/ogex/syntax"
)

func TestRequiredPrefixes(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
		wantOk  bool
	}{
		{"single literal", "hello", []string{"hello"}, true},
		{"alternation of literals", "foo|bar|baz", []string{"foo", "bar", "baz"}, true},
		{"literal then class", `cat\d+`, []string{"cat"}, true},
		{"leading class", `\d+`, nil, false},
		{"leading group with literal", "(ab)c", []string{"abc"}, true},
		{"alternation with one unanchored branch", `foo|\d+`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast, _, err := syntax.Parse(tt.pattern)
			if err != nil {
				t.Fatalf("syntax.Parse(%q): %v", tt.pattern, err)
			}
			got, ok := RequiredPrefixes(ast)
			if ok != tt.wantOk {
				t.Fatalf("RequiredPrefixes() ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d prefixes, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if string(got[i]) != w {
					t.Errorf("prefix[%d] = %q, want %q", i, got[i], w)
				}
			}
		})
	}
}

func TestPrefilterNext(t *testing.T) {
	pf := New([][]byte{[]byte("foo"), []byte("bar")})
	if pf == nil {
		t.Fatal("New() returned nil")
	}

	haystack := []byte("xx bar yy foo zz")
	pos, ok := pf.Next(haystack, 0)
	if !ok || pos != 3 {
		t.Fatalf("Next(0) = (%d, %v), want (3, true)", pos, ok)
	}

	pos, ok = pf.Next(haystack, 4)
	if !ok || pos != 10 {
		t.Fatalf("Next(4) = (%d, %v), want (10, true)", pos, ok)
	}

	if _, ok := pf.Next(haystack, 14); ok {
		t.Error("Next(14) should find nothing")
	}
}

func TestPrefilterNilOnEmptyLiterals(t *testing.T) {
	if New(nil) != nil {
		t.Error("New(nil) should return nil")
	}
	if New([][]byte{{}}) != nil {
		t.Error("New with an empty literal should return nil")
	}
}

func TestAhoCorasickThreshold(t *testing.T) {
	few := [][]byte{[]byte("a"), []byte("b")}
	if _, ok := NewAhoCorasick(few); ok {
		t.Error("NewAhoCorasick should decline below the multi-literal threshold")
	}

	many := make([][]byte, multiLiteralThreshold)
	for i := range many {
		many[i] = []byte{byte('a' + i)}
	}
	aho, ok := NewAhoCorasick(many)
	if !ok || aho == nil {
		t.Fatal("NewAhoCorasick should build an automaton at the threshold")
	}
	if !aho.IsMatch([]byte("xxxcxxx")) {
		t.Error("IsMatch should find literal 'c' among the built literals")
	}
}
