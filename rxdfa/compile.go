package rxdfa

import (
	"github.com/coregx/fastmatch/internal/conv"
	"github.com/coregx/fastmatch/internal/sparse"
	"github.com/coregx/fastmatch/rxnfa"
)

// alphabetSize is the number of distinct input bytes a DFA state
// discriminates on: the 128-code-point ASCII range spec's NFA classes and
// byte matches are restricted to.
const alphabetSize = rxnfa.ClassSize

// deadState is the implicit non-matching sink: any byte that does not
// extend a live match lands here, and every subsequent transition from it
// stays dead.
const deadState uint32 = 0xFFFFFFFF

// dfaState is one row of the compiled automaton: a transition target for
// every byte in the alphabet, plus whether reaching this state signals a
// match.
type dfaState struct {
	next     [alphabetSize]uint32
	isAccept bool
}

// DFA is a deterministic automaton compiled once via subset construction
// over a Thompson NFA, immutable thereafter. Stepping it never mutates its
// fields, so an arbitrary number of goroutines may call Matches/Search on
// the same *DFA concurrently without synchronization.
type DFA struct {
	states []dfaState
	source string
}

// Compile runs subset construction over n, producing a DFA bounded by
// cfg.MaxStates. source is carried only so a returned *CompileError can
// report it; it plays no role in construction.
func Compile(n *rxnfa.NFA, source string, cfg Config) (*DFA, error) {
	maxStates := cfg.MaxStates
	if maxStates == 0 {
		maxStates = DefaultConfig().MaxStates
	}

	type pendingState struct {
		id  uint32
		set []rxnfa.StateID
	}

	seen := sparse.NewSparseSet(conv.IntToUint32(n.Len()))
	byKey := make(map[stateKey]uint32)
	var states []dfaState
	var queue []pendingState

	register := func(set []rxnfa.StateID) (uint32, error) {
		key := computeStateKey(set)
		if id, ok := byKey[key]; ok {
			return id, nil
		}
		if conv.IntToUint32(len(states)) >= maxStates {
			return 0, &CompileError{Source: source, Err: ErrTooComplex}
		}
		id := conv.IntToUint32(len(states))
		st := dfaState{isAccept: containsAccept(n, set)}
		for i := range st.next {
			st.next[i] = deadState
		}
		states = append(states, st)
		byKey[key] = id
		queue = append(queue, pendingState{id: id, set: set})
		return id, nil
	}

	startSet := epsilonClosure(n, []rxnfa.StateID{n.Start()}, seen)
	if _, err := register(startSet); err != nil {
		return nil, err
	}

	var image []rxnfa.StateID
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for b := 0; b < alphabetSize; b++ {
			image = image[:0]
			for _, id := range cur.set {
				s := n.State(id)
				switch s.Kind {
				case rxnfa.StateByteMatch:
					if s.B == byte(b) {
						image = append(image, s.Next1)
					}
				case rxnfa.StateClassMatch:
					if s.Class.Contains(byte(b)) {
						image = append(image, s.Next1)
					}
				}
			}
			if len(image) == 0 {
				continue
			}
			closure := epsilonClosure(n, image, seen)
			id, err := register(closure)
			if err != nil {
				return nil, err
			}
			states[cur.id].next[b] = id
		}
	}

	return &DFA{states: states, source: source}, nil
}

func containsAccept(n *rxnfa.NFA, set []rxnfa.StateID) bool {
	for _, id := range set {
		if n.State(id).Kind == rxnfa.StateAccept {
			return true
		}
	}
	return false
}
