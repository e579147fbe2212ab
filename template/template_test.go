package template

import "testing"

type fakeMatch struct {
	whole string
	byIdx map[int]string
	byName map[string]string
	// names lists every group the pattern declares, independent of whether
	// it participated in this particular match (mirrors ogex.Match.HasName).
	names map[string]bool
}

func (m fakeMatch) Whole() string { return m.whole }
func (m fakeMatch) ByIndex(i int) (string, bool) {
	s, ok := m.byIdx[i]
	return s, ok
}
func (m fakeMatch) ByName(name string) (string, bool) {
	s, ok := m.byName[name]
	return s, ok
}
func (m fakeMatch) HasName(name string) bool {
	return m.names[name]
}

func TestParseAndApply(t *testing.T) {
	tests := []struct {
		name     string
		template string
		match    fakeMatch
		want     string
		wantErr  bool
	}{
		{
			name:     "whole match",
			template: `[\G]`,
			match:    fakeMatch{whole: "hello"},
			want:     "[hello]",
		},
		{
			name:     "numbered group",
			template: `\g{1}-\g{2}`,
			match:    fakeMatch{byIdx: map[int]string{1: "a", 2: "b"}},
			want:     "a-b",
		},
		{
			name:     "named group",
			template: `Hello, \g{name}!`,
			match:    fakeMatch{byName: map[string]string{"name": "John"}},
			want:     "Hello, John!",
		},
		{
			name:     "known name but unparticipated group is empty, not an error",
			template: `[\g{opt}]`,
			match:    fakeMatch{names: map[string]bool{"opt": true}},
			want:     "[]",
		},
		{
			name:     "literal backslash and escaped other",
			template: `\\n\q`,
			match:    fakeMatch{},
			want:     `\nq`,
		},
		{
			name:     "unset numbered group is empty",
			template: `[\g{3}]`,
			match:    fakeMatch{byIdx: map[int]string{}},
			want:     "[]",
		},
		{
			name:     "unknown name is an error",
			template: `\g{missing}`,
			match:    fakeMatch{byName: map[string]string{}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Parse(tt.template)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.template, err)
			}
			got, err := tmpl.Apply(tt.match)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`\g1`,
		`\g{`,
		`\g{}`,
	}
	for _, tmpl := range tests {
		if _, err := Parse(tmpl); err == nil {
			t.Errorf("Parse(%q) expected an error", tmpl)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		`[\G]`,
		`\g{1}-\g{name}`,
		`plain text`,
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tmpl, err := Parse(src)
			if err != nil {
				t.Fatalf("Parse(%q): %v", src, err)
			}
			roundTripped, err := Parse(tmpl.String())
			if err != nil {
				t.Fatalf("Parse(String()) = %v", err)
			}
			if len(roundTripped.segments) != len(tmpl.segments) {
				t.Fatalf("segment count mismatch: %d vs %d", len(roundTripped.segments), len(tmpl.segments))
			}
			for i := range tmpl.segments {
				if tmpl.segments[i] != roundTripped.segments[i] {
					t.Errorf("segment %d mismatch: %+v vs %+v", i, tmpl.segments[i], roundTripped.segments[i])
				}
			}
		})
	}
}
