package fastmatch

import (
	"github.com/coregx/fastmatch/rxdfa"
	"github.com/coregx/fastmatch/rxnfa"
	"github.com/coregx/fastmatch/rxprefilter"
)

// Regex is a compiled regular expression: a shared-ownership handle to a
// subset-constructed DFA plus its original source. Read-only after
// CompileRegex returns — concurrent readers may call Matches/Search on the
// same *Regex with no external synchronization.
type Regex struct {
	source    string
	dfa       *rxdfa.DFA
	prefilter *rxprefilter.Prefilter
}

// CompileRegex parses source and compiles it to a DFA under the default
// state cap (10,000 states). Returns a wrapped *rxnfa.ParseError for
// malformed source, or a wrapped *rxdfa.CompileError if the pattern's DFA
// would exceed the cap.
func CompileRegex(source string) (*Regex, error) {
	return CompileRegexWithConfig(source, rxdfa.DefaultConfig())
}

// CompileRegexWithConfig is CompileRegex with an explicit compile-time
// state cap.
func CompileRegexWithConfig(source string, cfg rxdfa.Config) (*Regex, error) {
	n, err := rxnfa.Parse(source)
	if err != nil {
		return nil, err
	}
	dfa, err := rxdfa.Compile(n, source, cfg)
	if err != nil {
		return nil, err
	}

	// Optional accelerant: only applies when source is a plain literal
	// alternation (rxprefilter.Build returns ok=false otherwise). The DFA
	// above remains the compiled, correctness-authoritative engine either
	// way.
	pf, _ := rxprefilter.Build(source)

	return &Regex{source: source, dfa: dfa, prefilter: pf}, nil
}

// Matches reports whether text, in its entirety, matches the regex.
func (r *Regex) Matches(text []byte) bool {
	return r.dfa.Matches(text)
}

// Search returns the leftmost offset at which the regex matches somewhere
// in text, or (0, false) if it matches nowhere.
//
// When source qualified for a literal-alternation prefilter, the automaton
// only proposes a candidate span: the regex's own DFA remains the
// correctness authority and is always the one to confirm it, walking just
// that span rather than the whole text. If confirmation ever fails — it
// shouldn't, for the restricted shape Build accepts, but the DFA is
// trusted over the accelerant regardless — Search falls back to the DFA's
// own unaccelerated scan of the full text.
func (r *Regex) Search(text []byte) (int, bool) {
	if r.prefilter != nil {
		start, end, ok := r.prefilter.Find(text, 0)
		if !ok {
			return 0, false
		}
		if r.dfa.Matches(text[start:end]) {
			return start, true
		}
	}
	return r.dfa.Search(text)
}

// StateCount returns the number of states in the compiled DFA.
func (r *Regex) StateCount() int {
	return r.dfa.StateCount()
}

// IsEmpty reports whether the DFA has no states, i.e. construction never
// completed.
func (r *Regex) IsEmpty() bool {
	return r.dfa.IsEmpty()
}

// Source returns the original regex source text the Regex was compiled
// from.
func (r *Regex) Source() string {
	return r.source
}
