package meta

import (
	"sync/atomic"

	"github.com/ogex/ogex/internal/prefilter"
	"github.com/ogex/ogex/nfa"
	"github.com/ogex/ogex/syntax"
)

// Engine binds a compiled NFA, its group registry, and an optional literal
// prefilter behind the single backtracking execution strategy. Mirrors the
// teacher's Engine/Stats shape (meta/engine.go), trimmed to one strategy.
type Engine struct {
	ast       *syntax.Node
	registry  *syntax.GroupRegistry
	automaton *nfa.NFA
	pf        *prefilter.Prefilter
	aho       *prefilter.AhoCorasick
	config    Config
	stats     Stats
}

// Stats tracks search activity for introspection. No matching behavior
// depends on it (teacher parity: meta.Stats).
type Stats struct {
	Searches      uint64
	PrefilterHits uint64
}

// Compile builds an Engine from pattern text using DefaultConfig.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig builds an Engine from pattern text with explicit tuning.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ast, registry, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	automaton := nfa.Compile(ast, registry)

	e := &Engine{
		ast:       ast,
		registry:  registry,
		automaton: automaton,
		config:    config,
	}

	if config.EnablePrefilter {
		e.buildPrefilter(config)
	}

	return e, nil
}

func (e *Engine) buildPrefilter(config Config) {
	literals, ok := prefilter.RequiredPrefixes(e.ast)
	if !ok || len(literals) == 0 || len(literals) > config.MaxLiterals {
		return
	}
	for _, lit := range literals {
		if len(lit) < config.MinLiteralLen {
			return
		}
	}
	if aho, ok := prefilter.NewAhoCorasick(literals); ok {
		e.aho = aho
		return
	}
	e.pf = prefilter.New(literals)
}

// NFA returns the compiled automaton.
func (e *Engine) NFA() *nfa.NFA { return e.automaton }

// NumSubexp returns the number of capturing groups, excluding group 0.
func (e *Engine) NumSubexp() int { return e.registry.NumGroups() }

// SubexpNames returns the name-to-index map carried by the group registry.
func (e *Engine) SubexpNames() map[string]int { return e.registry.Names() }

// Stats returns a snapshot of search counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:      atomic.LoadUint64(&e.stats.Searches),
		PrefilterHits: atomic.LoadUint64(&e.stats.PrefilterHits),
	}
}

func (e *Engine) recordSearch() { atomic.AddUint64(&e.stats.Searches, 1) }
func (e *Engine) recordHit()    { atomic.AddUint64(&e.stats.PrefilterHits, 1) }

// candidateFrom returns the next subject offset >= from that the prefilter
// judges worth trying, or false if no candidate remains. Always true when
// no prefilter is configured (every offset is a candidate).
func (e *Engine) candidateFrom(subject []byte, from int) (int, bool) {
	if e.aho != nil {
		pos, ok := e.aho.Next(subject, from)
		if !ok {
			return 0, false
		}
		e.recordHit()
		return pos, true
	}
	if e.pf != nil {
		pos, ok := e.pf.Next(subject, from)
		if !ok {
			return 0, false
		}
		e.recordHit()
		return pos, true
	}
	return from, true
}
