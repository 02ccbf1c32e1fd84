package rxdfa

// Matches runs the DFA anchored over the whole input: every byte must be
// consumed, landing on an accepting state. A non-ASCII byte or a dead
// transition rejects immediately without looking at the rest of text.
func (d *DFA) Matches(text []byte) bool {
	state := uint32(0)
	for _, b := range text {
		if b >= alphabetSize {
			return false
		}
		state = d.states[state].next[b]
		if state == deadState {
			return false
		}
	}
	return d.states[state].isAccept
}

// Search finds the leftmost offset at which an accepting run begins: the
// smallest start s such that stepping the DFA from state 0 through
// text[s:] reaches an accepting state before going dead or running out of
// input; ties at the same s resolve to the first accept reached, i.e. the
// shortest accepting prefix at that start.
//
// Restarting the DFA independently at every s is quadratic on adversarial
// input (e.g. all-'a' text against `a*a*a*a*a*b`, since no start ever
// dies). Search instead runs every start offset's automaton simultaneously,
// keyed by DFA state: two threads that have reached the same state behave
// identically from then on by determinism, so only the one with the
// smaller start offset is worth keeping. The number of distinct live
// states is bounded by len(d.states), a constant for a given compiled
// pattern, making one pass over text O(len(text)) rather than
// O(len(text)^2) while returning the same result a per-position restart
// would.
//
// A thread that reaches an accepting state has settled its start offset's
// outcome for good: that start matches, regardless of what the thread's
// state does afterward (a later byte can walk it right off the accepting
// state, e.g. matching "x" then failing to extend into "xy" for
// `x(y*z)?`). So the moment a thread accepts, its start is recorded in
// accepted and the thread is dropped — it never re-enters the active set,
// and nothing later can un-record an accepted start. Search only returns
// once no still-active (not yet accepted, not yet dead) thread has a start
// smaller than the best accepted one, since only such a thread could still
// produce a smaller answer.
func (d *DFA) Search(text []byte) (int, bool) {
	active := make(map[uint32]int, 4)
	next := make(map[uint32]int, 4)
	accepted := -1

	for pos := 0; ; pos++ {
		if _, ok := active[0]; !ok {
			active[0] = pos
		}

		for state, start := range active {
			if d.states[state].isAccept {
				if accepted == -1 || start < accepted {
					accepted = start
				}
				delete(active, state)
			}
		}

		minActive := -1
		for _, start := range active {
			if minActive == -1 || start < minActive {
				minActive = start
			}
		}
		if accepted != -1 && (minActive == -1 || minActive >= accepted) {
			return accepted, true
		}

		if pos >= len(text) {
			if accepted != -1 {
				return accepted, true
			}
			return 0, false
		}

		b := text[pos]
		clear(next)
		if b < alphabetSize {
			for state, start := range active {
				ns := d.states[state].next[b]
				if ns == deadState {
					continue
				}
				if cur, ok := next[ns]; !ok || start < cur {
					next[ns] = start
				}
			}
		}
		active, next = next, active
	}
}

// StateCount returns the number of states in the compiled DFA.
func (d *DFA) StateCount() int {
	return len(d.states)
}

// IsEmpty reports whether the DFA has no states at all, i.e. construction
// never completed.
func (d *DFA) IsEmpty() bool {
	return len(d.states) == 0
}
