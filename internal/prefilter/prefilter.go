// Package prefilter narrows where the NFA backtracker needs to try a match.
// A compiled pattern's top-level alternation branches are scanned for
// literal prefixes; when every branch has one, a cheap byte-level scan over
// the subject can skip positions that could never start a match.
package prefilter

import "golang.org/x/sys/cpu"

// hasAVX2 is detected once at package init and used to pick between two
// pure-Go scan loops with different stride characteristics.
var hasAVX2 = cpu.X86.HasAVX2

// Prefilter reports candidate start positions that a literal scan has
// confirmed could begin a match. A miss is authoritative ("no match exists
// at or after this position that starts with a required literal"); a hit
// only means the backtracker should be tried there.
type Prefilter struct {
	literals [][]byte
}

// New builds a Prefilter from a set of required literal prefixes extracted
// from a pattern's top-level alternation branches. Returns nil if literals
// is empty or any entry is empty (an empty required prefix cannot narrow
// anything, so the caller should skip prefiltering entirely).
func New(literals [][]byte) *Prefilter {
	if len(literals) == 0 {
		return nil
	}
	for _, lit := range literals {
		if len(lit) == 0 {
			return nil
		}
	}
	cp := make([][]byte, len(literals))
	copy(cp, literals)
	return &Prefilter{literals: cp}
}

// Next returns the smallest offset >= from at which some literal occurs in
// haystack, and true, or false if none occurs anywhere at or after from.
func (p *Prefilter) Next(haystack []byte, from int) (int, bool) {
	if p == nil {
		return from, true
	}
	best := -1
	for _, lit := range p.literals {
		idx := indexFrom(haystack, lit, from)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// indexFrom finds the first occurrence of needle in haystack at or after
// from, dispatching on CPU capability for the single-byte case and falling
// back to a plain scan for multi-byte literals.
func indexFrom(haystack, needle []byte, from int) int {
	if from >= len(haystack) {
		return -1
	}
	hay := haystack[from:]
	if len(needle) == 1 && hasAVX2 {
		if i := indexByteWide(hay, needle[0]); i >= 0 {
			return i + from
		}
		return -1
	}
	if i := indexBytePlain(hay, needle); i >= 0 {
		return i + from
	}
	return -1
}

// indexByteWide scans 8 bytes at a time, the wide-stride branch of the
// capability-gated dispatch.
func indexByteWide(hay []byte, b byte) int {
	i := 0
	for ; i+8 <= len(hay); i += 8 {
		chunk := hay[i : i+8]
		for j := 0; j < 8; j++ {
			if chunk[j] == b {
				return i + j
			}
		}
	}
	for ; i < len(hay); i++ {
		if hay[i] == b {
			return i
		}
	}
	return -1
}

// indexBytePlain is the byte-at-a-time fallback, used for multi-byte
// literals and on CPUs without AVX2.
func indexBytePlain(hay, needle []byte) int {
	if len(needle) == 0 || len(needle) > len(hay) {
		return -1
	}
	first := needle[0]
	for i := 0; i+len(needle) <= len(hay); i++ {
		if hay[i] != first {
			continue
		}
		match := true
		for j := 1; j < len(needle); j++ {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
