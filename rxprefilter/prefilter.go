package rxprefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// Prefilter narrows a regex search's candidate start offsets with an
// Aho-Corasick automaton built over a plain literal alternation. rxdfa.DFA
// remains the correctness authority for every pattern shape: Find only
// proposes a candidate span for the caller to confirm by walking the DFA
// over it, and this package never runs without first confirming the shape
// via ExtractLiterals and ruling out prefix conflicts between branches.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a Prefilter for source if, and only if, source is a
// plain literal alternation with no branch a proper prefix of another. ok
// is false when it is not that shape, when two branches conflict that way,
// or when the underlying automaton fails to build (e.g. a duplicate or
// empty pattern) — in any of these cases the caller must fall back to the
// DFA outright.
func Build(source string) (p *Prefilter, ok bool) {
	literals, applicable := ExtractLiterals(source)
	if !applicable {
		return nil, false
	}
	if hasPrefixConflict(literals) {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Prefilter{automaton: automaton}, true
}

// hasPrefixConflict reports whether any literal is a proper prefix of a
// longer one. The automaton reports the first pattern whose end it
// reaches, which for such a pair is always the shorter, prefix literal,
// even at a haystack position where the longer literal is the one that
// actually continues to occur — disqualifying the whole alternation from
// this accelerant rather than risk narrowing the DFA to a misleading span.
func hasPrefixConflict(literals [][]byte) bool {
	for i, a := range literals {
		for j, b := range literals {
			if i == j {
				continue
			}
			if len(a) < len(b) && bytes.HasPrefix(b, a) {
				return true
			}
		}
	}
	return false
}

// Find returns the bounds of the first literal occurring in haystack at or
// after at, mirroring ahocorasick.Automaton.Find. The caller must still
// confirm the span against the DFA before trusting it as a match.
func (p *Prefilter) Find(haystack []byte, at int) (start, end int, ok bool) {
	m := p.automaton.Find(haystack, at)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}
