package rxdfa

import (
	"github.com/coregx/fastmatch/internal/sparse"
	"github.com/coregx/fastmatch/rxnfa"
)

// epsilonClosure returns the set of NFA states reachable from start via zero
// or more Epsilon transitions, start itself included. seen is a
// caller-owned scratch set, cleared on entry, that lets repeated calls
// during subset construction avoid reallocating a fresh membership
// structure for every expanded DFA state.
func epsilonClosure(n *rxnfa.NFA, start []rxnfa.StateID, seen *sparse.SparseSet) []rxnfa.StateID {
	seen.Clear()
	worklist := make([]rxnfa.StateID, 0, len(start))
	for _, id := range start {
		v := uint32(id)
		if !seen.Contains(v) {
			seen.Insert(v)
			worklist = append(worklist, id)
		}
	}

	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		s := n.State(id)
		if s.Kind != rxnfa.StateEpsilon {
			continue
		}
		for _, next := range [2]rxnfa.StateID{s.Next1, s.Next2} {
			if next == rxnfa.InvalidState {
				continue
			}
			v := uint32(next)
			if !seen.Contains(v) {
				seen.Insert(v)
				worklist = append(worklist, next)
			}
		}
	}

	values := seen.Values()
	out := make([]rxnfa.StateID, len(values))
	for i, v := range values {
		out[i] = rxnfa.StateID(v)
	}
	return out
}
