package meta

import "testing"

func TestCompileAndFind(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"named group", "(name:\\w+)", false},
		{"invalid pattern", "(", true},
		{"bad relative backref", `\g{-1}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestEngineFindAll(t *testing.T) {
	e, err := Compile(`\d+`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	all := e.FindAll([]byte("a1 b22 c333"))
	if len(all) != 3 {
		t.Fatalf("FindAll() returned %d matches, want 3", len(all))
	}
	wantLens := []int{1, 2, 3}
	for i, caps := range all {
		got := caps[0].End - caps[0].Start
		if got != wantLens[i] {
			t.Errorf("match %d length = %d, want %d", i, got, wantLens[i])
		}
	}
}

func TestEngineFindAllZeroWidth(t *testing.T) {
	e, err := Compile("")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	all := e.FindAll([]byte("abc"))
	if len(all) != 4 {
		t.Fatalf("FindAll() on empty pattern over len-3 subject returned %d, want 4", len(all))
	}
}

func TestEnginePrefilterMatchesUnfiltered(t *testing.T) {
	filtered, err := CompileWithConfig("foo|bar", Config{EnablePrefilter: true, MinLiteralLen: 1, MaxLiterals: 256})
	if err != nil {
		t.Fatalf("Compile filtered: %v", err)
	}
	unfiltered, err := CompileWithConfig("foo|bar", Config{EnablePrefilter: false})
	if err != nil {
		t.Fatalf("Compile unfiltered: %v", err)
	}

	subject := []byte("xx bar yy foo zz")
	a := filtered.FindAll(subject)
	b := unfiltered.FindAll(subject)
	if len(a) != len(b) {
		t.Fatalf("prefiltered found %d matches, unfiltered found %d", len(a), len(b))
	}
	for i := range a {
		if a[i][0] != b[i][0] {
			t.Errorf("match %d span differs: %+v vs %+v", i, a[i][0], b[i][0])
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"bad min literal len", Config{EnablePrefilter: true, MinLiteralLen: 0, MaxLiterals: 10}, true},
		{"bad max literals", Config{EnablePrefilter: true, MinLiteralLen: 1, MaxLiterals: 0}, true},
		{"negative steps", Config{MaxBacktrackSteps: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
