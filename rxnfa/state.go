package rxnfa

import "fmt"

// StateID uniquely identifies an NFA state. It is a plain index into the
// NFA's state slice, not a pointer — cyclic graphs induced by `*` and `+`
// are then ordinary index stores rather than pointer back-edges, which
// keeps the representation simple to serialize and to reason about.
type StateID uint32

// InvalidState is the "no transition" sentinel: distinct from state index
// 0, used both for a dangling fragment-end transition awaiting Patch and
// for an Epsilon/Split slot that is deliberately unused. Never a valid
// index into an NFA's state slice.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies which fields of a State are meaningful.
type StateKind uint8

const (
	// StateEpsilon transitions unconditionally to Next1 and, if not
	// InvalidState, also to Next2. One dangling slot (Next1 only) models
	// plain sequencing; two (Next1 and Next2) models a branch/split used
	// by alternation and quantifiers.
	StateEpsilon StateKind = iota

	// StateByteMatch consumes exactly the byte B, then continues to Next1.
	StateByteMatch

	// StateClassMatch consumes any byte in Class, then continues to Next1.
	StateClassMatch

	// StateAccept is terminal: reaching it signals a match. It has no
	// outgoing transitions.
	StateAccept
)

func (k StateKind) String() string {
	switch k {
	case StateEpsilon:
		return "Epsilon"
	case StateByteMatch:
		return "ByteMatch"
	case StateClassMatch:
		return "ClassMatch"
	case StateAccept:
		return "Accept"
	default:
		return fmt.Sprintf("StateKind(%d)", k)
	}
}

// State is one node of the NFA graph, tagged by Kind.
type State struct {
	Kind  StateKind
	B     byte      // StateByteMatch
	Class CharClass // StateClassMatch
	Next1 StateID   // StateEpsilon, StateByteMatch, StateClassMatch
	Next2 StateID   // StateEpsilon only; InvalidState if this is a single-successor epsilon
}

// Fragment is a pair of state indices produced by a grammar production:
// Start is entered to run the fragment, End is the state carrying the
// dangling transition a subsequent Patch will redirect to whatever follows.
type Fragment struct {
	Start StateID
	End   StateID
}

// NFA is a fully constructed, immutable Thompson automaton: a contiguous
// array of States plus the designated start state. Safe to share by
// reference across concurrent readers, since stepping it (as rxdfa's
// subset construction does) never mutates it.
type NFA struct {
	states []State
	start  StateID
}

// States returns the NFA's state slice. The caller must not mutate it.
func (n *NFA) States() []State { return n.states }

// State returns the state at id.
func (n *NFA) State(id StateID) State { return n.states[id] }

// Start returns the NFA's start state.
func (n *NFA) Start() StateID { return n.start }

// Len returns the number of states in the NFA.
func (n *NFA) Len() int { return len(n.states) }
