package rxdfa

import (
	"hash/fnv"
	"sort"

	"github.com/coregx/fastmatch/rxnfa"
)

// stateKey canonically identifies a DFA state by the NFA state set it
// represents: two equal sets (regardless of discovery order) must hash to
// the same key, so the same subset is never registered twice.
type stateKey uint64

// computeStateKey sorts a copy of states and hashes it with FNV-1a. A hash
// collision would merge two distinct subsets into one DFA state; this is an
// accepted, documented risk of the hash-based approach rather than a
// correctness guarantee, trading a vanishingly small collision probability
// for O(1) average-case lookup instead of an O(n log n) sorted-slice
// comparison per registration.
func computeStateKey(states []rxnfa.StateID) stateKey {
	if len(states) == 0 {
		return stateKey(0)
	}
	sorted := make([]rxnfa.StateID, len(states))
	copy(sorted, states)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	h := fnv.New64a()
	for _, id := range sorted {
		_, _ = h.Write([]byte{byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24)})
	}
	return stateKey(h.Sum64())
}
