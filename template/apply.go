package template

import "fmt"

// MatchSource is the narrow view of a successful match a Template needs to
// splice itself against: the whole matched text, and lookups by numeric
// index or group name. github.com/ogex/ogex's Match type satisfies this
// interface directly, so Apply never imports the root package (avoiding an
// import cycle, since the root package is what will want to offer Apply as
// a convenience method).
//
// ByName's bool return conflates two distinct cases: the name isn't in the
// pattern at all, or the name is in the pattern but its group didn't
// participate in this match. HasName disambiguates them so Apply can treat
// only the former as an error.
type MatchSource interface {
	Whole() string
	ByIndex(index int) (string, bool)
	ByName(name string) (string, bool)
	HasName(name string) bool
}

// ApplyError reports a template referencing a group absent from the match
// it's being applied to.
type ApplyError struct {
	Reference string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("ogex: unknown group %q in template", e.Reference)
}

// Apply evaluates t against m, concatenating each segment's text in order.
func (t *Template) Apply(m MatchSource) (string, error) {
	var out []byte
	for _, seg := range t.segments {
		switch seg.Kind {
		case SegLiteral:
			out = append(out, seg.Text...)

		case SegWholeMatch:
			out = append(out, m.Whole()...)

		case SegGroupIndex:
			// A group that didn't participate (or doesn't exist) simply
			// contributes no text; only an unknown *name* is a hard error.
			text, _ := m.ByIndex(seg.Index)
			out = append(out, text...)

		case SegGroupName:
			// A name absent from the pattern entirely is a hard error; a
			// name the pattern declares but whose group didn't participate
			// in this match resolves to empty text, same as SegGroupIndex.
			text, ok := m.ByName(seg.Name)
			if !ok && !m.HasName(seg.Name) {
				return "", &ApplyError{Reference: seg.Name}
			}
			out = append(out, text...)
		}
	}
	return string(out), nil
}
