package rxnfa

// Builder constructs an NFA incrementally, state by state, following
// Thompson's construction: each grammar production adds one or more states
// and returns a Fragment whose End carries a dangling transition for the
// caller to Patch once it knows what follows.
type Builder struct {
	states []State
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

func (b *Builder) add(s State) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, s)
	return id
}

// AddByte adds a ByteMatch state for byte bt with a dangling successor.
func (b *Builder) AddByte(bt byte) StateID {
	return b.add(State{Kind: StateByteMatch, B: bt, Next1: InvalidState})
}

// AddClass adds a ClassMatch state for class c with a dangling successor.
func (b *Builder) AddClass(c CharClass) StateID {
	return b.add(State{Kind: StateClassMatch, Class: c, Next1: InvalidState})
}

// AddEpsilon adds an Epsilon state with a single dangling successor slot
// (Next1); Next2 stays InvalidState, meaning "unused", not "dangling".
func (b *Builder) AddEpsilon() StateID {
	return b.add(State{Kind: StateEpsilon, Next1: InvalidState, Next2: InvalidState})
}

// AddSplit adds an Epsilon state with two dangling successor slots, used
// to wire alternation and quantifier branch points.
func (b *Builder) AddSplit() StateID {
	return b.add(State{Kind: StateEpsilon, Next1: InvalidState, Next2: InvalidState})
}

// AddAccept adds a terminal Accept state.
func (b *Builder) AddAccept() StateID {
	return b.add(State{Kind: StateAccept})
}

// Patch writes target into the first empty (InvalidState) successor slot
// of state id: Next1 first, then Next2 for an Epsilon state. It never
// overwrites an already-filled slot — callers patch each dangling end of a
// fragment exactly once, by construction of the grammar rules in parser.go.
//
// Patch panics if id is out of range or if state id has no empty slot to
// fill (an Accept state, or an Epsilon/Split whose two slots are both
// already patched) — these indicate a builder-usage bug, not a user-facing
// pattern error, so they are not surfaced as a returned error.
func (b *Builder) Patch(id, target StateID) {
	s := &b.states[id]
	switch s.Kind {
	case StateByteMatch, StateClassMatch:
		if s.Next1 != InvalidState {
			panic("rxnfa: Patch called on an already-patched ByteMatch/ClassMatch state")
		}
		s.Next1 = target
	case StateEpsilon:
		if s.Next1 == InvalidState {
			s.Next1 = target
		} else if s.Next2 == InvalidState {
			s.Next2 = target
		} else {
			panic("rxnfa: Patch called on an Epsilon state with no empty slot")
		}
	default:
		panic("rxnfa: Patch called on a state kind with no patchable slot")
	}
}

// PatchSplit directly sets both successor slots of the Epsilon state id,
// used when building a split whose two branches are both already known
// (e.g. wiring an alternation's two already-built fragments in one step).
func (b *Builder) PatchSplit(id, next1, next2 StateID) {
	s := &b.states[id]
	if s.Kind != StateEpsilon {
		panic("rxnfa: PatchSplit called on a non-Epsilon state")
	}
	s.Next1 = next1
	s.Next2 = next2
}

// Finish appends the accept state, patches fragment's End to it, and
// returns the completed, immutable NFA.
func (b *Builder) Finish(fragment Fragment) *NFA {
	accept := b.AddAccept()
	b.Patch(fragment.End, accept)
	return &NFA{states: b.states, start: fragment.Start}
}
