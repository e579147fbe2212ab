package nfa

import (
	"testing"

	"github.com/ogex/ogex/syntax"
)

func compilePattern(t *testing.T, pattern string) *NFA {
	t.Helper()
	ast, reg, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("syntax.Parse(%q): %v", pattern, err)
	}
	return Compile(ast, reg)
}

func TestBacktrackerFindFrom(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		subject   string
		wantMatch bool
		wantSpan  [2]int
	}{
		{"simple literal", "hello", "hello", true, [2]int{0, 5}},
		{"literal no match", "hello", "goodbye", false, [2]int{}},
		{"digit class", `\d+`, "42", true, [2]int{0, 2}},
		{"star capture", "(a*)", "aaa", true, [2]int{0, 3}},
		{"anchors", "^abc$", "abc", true, [2]int{0, 3}},
		{"anchor mismatch", "^abc$", "xabc", false, [2]int{}},
		{"alternation", "foo|bar", "bar", true, [2]int{0, 3}},
		{"bounded quantifier", "a{2,4}", "aaaaa", true, [2]int{0, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := compilePattern(t, tt.pattern)
			bt := NewBacktracker(n, []byte(tt.subject), 0)
			caps, ok := bt.FindFrom(0)
			if ok != tt.wantMatch {
				t.Fatalf("FindFrom() ok = %v, want %v", ok, tt.wantMatch)
			}
			if !ok {
				return
			}
			if caps[0] != (Span{tt.wantSpan[0], tt.wantSpan[1]}) {
				t.Errorf("whole match span = %+v, want %+v", caps[0], tt.wantSpan)
			}
		})
	}
}

func TestBacktrackerNonGreedy(t *testing.T) {
	n := compilePattern(t, "(a*?)b")
	bt := NewBacktracker(n, []byte("aaab"), 0)
	caps, ok := bt.FindFrom(0)
	if !ok {
		t.Fatal("expected match")
	}
	if caps[0] != (Span{0, 4}) {
		t.Errorf("whole match = %+v, want {0 4}", caps[0])
	}
	if caps[1] != (Span{0, 3}) {
		t.Errorf("group 1 = %+v, want {0 3}", caps[1])
	}
}

func TestBacktrackerRelativeBackref(t *testing.T) {
	n := compilePattern(t, `(a)(b)\g{-1}`)

	bt := NewBacktracker(n, []byte("abb"), 0)
	caps, ok := bt.FindFrom(0)
	if !ok {
		t.Fatal("expected match against \"abb\"")
	}
	if caps[0] != (Span{0, 3}) || caps[1] != (Span{0, 1}) || caps[2] != (Span{1, 2}) {
		t.Errorf("unexpected captures: %+v", caps)
	}

	bt2 := NewBacktracker(n, []byte("aba"), 0)
	if _, ok := bt2.FindFrom(0); ok {
		t.Error("expected no match against \"aba\"")
	}
}

func TestBacktrackerNamedBackref(t *testing.T) {
	n := compilePattern(t, `(name:\w+) is \g{name}`)

	bt := NewBacktracker(n, []byte("John is John"), 0)
	caps, ok := bt.FindFrom(0)
	if !ok {
		t.Fatal("expected match")
	}
	if caps[0] != (Span{0, 12}) {
		t.Errorf("whole match = %+v, want {0 12}", caps[0])
	}

	bt2 := NewBacktracker(n, []byte("John is Jane"), 0)
	if _, ok := bt2.FindFrom(0); ok {
		t.Error("expected no match against \"John is Jane\"")
	}
}

func TestBacktrackerQuotedStringBackref(t *testing.T) {
	n := compilePattern(t, `(['"]).*?\g{1}`)

	bt := NewBacktracker(n, []byte(`he said "hi" loudly`), 0)
	caps, ok := bt.FindFrom(8)
	if !ok {
		t.Fatal("expected match starting at the opening quote")
	}
	if got := string([]byte(`he said "hi" loudly`)[caps[0].Start:caps[0].End]); got != `"hi"` {
		t.Errorf("matched text = %q, want %q", got, `"hi"`)
	}

	bt2 := NewBacktracker(n, []byte(`'hi"`), 0)
	if _, ok := bt2.FindFrom(0); ok {
		t.Error("expected no match for unbalanced quotes")
	}
}

func TestBacktrackerUndefinedGroupSpan(t *testing.T) {
	n := compilePattern(t, `(a)|(b)`)
	bt := NewBacktracker(n, []byte("a"), 0)
	caps, ok := bt.FindFrom(0)
	if !ok {
		t.Fatal("expected match")
	}
	if caps[1] != (Span{0, 1}) {
		t.Errorf("group 1 = %+v, want {0 1}", caps[1])
	}
	if caps[2] != (Span{-1, -1}) {
		t.Errorf("group 2 = %+v, want unset {-1 -1}", caps[2])
	}
}

func TestBacktrackerEmptyPattern(t *testing.T) {
	n := compilePattern(t, "")
	bt := NewBacktracker(n, []byte("abc"), 0)
	for pos := 0; pos <= 3; pos++ {
		caps, ok := bt.FindFrom(pos)
		if !ok {
			t.Fatalf("FindFrom(%d) should match the empty pattern", pos)
		}
		if caps[0].Start != pos || caps[0].End != pos {
			t.Errorf("FindFrom(%d) span = %+v, want zero-width at %d", pos, caps[0], pos)
		}
	}
}
