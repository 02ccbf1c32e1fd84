package rxdfa

import (
	"errors"
	"fmt"
)

// ErrTooComplex is returned, wrapped in a *CompileError, when subset
// construction would exceed a Config's MaxStates before adding the
// offending state — the rejected pattern never materializes a partial DFA.
var ErrTooComplex = errors.New("rxdfa: pattern too complex")

// CompileError wraps a subset-construction failure with the regex source it
// came from, for diagnostic display. It carries no positional span: unlike
// a parse error, state-cap overflow has no single offending byte offset in
// the source.
type CompileError struct {
	Source string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("rxdfa: compile error for %q: %v", e.Source, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
