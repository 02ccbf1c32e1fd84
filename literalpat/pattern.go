// Package literalpat implements the KMP literal-search engine: a compiled
// pattern object carrying its own failure table, and the search primitives
// built on top of it (first match, all matches, count, contains).
//
// The engine never backtracks over the text: a SIMD-dispatched first-byte
// scan (simdscan.FindFirstEq) proposes candidate start positions, and the
// failure table (failtable.Build) turns a failed verification into a skip
// rather than a restart, preserving KMP's O(n+m) guarantee regardless of
// which width kernel located the candidate.
package literalpat

import (
	"sync"

	"github.com/coregx/fastmatch/failtable"
)

func buildFailure(b []byte) []int {
	return failtable.Build(b)
}

// Pattern is a compiled literal pattern: its bytes (copied, not borrowed)
// plus the failure table computed once at construction time. A Pattern is
// immutable after construction and safe to share across concurrent readers.
type Pattern struct {
	bytes []byte
	fail  []int
}

// New compiles p into a Pattern, copying p's bytes and computing its
// failure table.
//
// Example:
//
//	pat := literalpat.New([]byte("abra"))
func New(p []byte) *Pattern {
	b := make([]byte, len(p))
	copy(b, p)
	return &Pattern{bytes: b, fail: buildFailure(b)}
}

// Bytes returns the pattern's byte sequence. The returned slice must not be
// mutated by the caller.
func (p *Pattern) Bytes() []byte { return p.bytes }

// Len returns the pattern's length in bytes.
func (p *Pattern) Len() int { return len(p.bytes) }

// failure returns the pattern's failure table. Unexported: only the search
// engine in this package needs it.
func (p *Pattern) failure() []int { return p.fail }

// Const returns a lazily-initialized, process-wide Pattern for a fixed byte
// sequence known at call-site-construction time, standing in for a true
// compile-time constant in languages without one. Construction happens at
// most once across all calls sharing the same holder; callers
// typically wrap this in a package-level var of their own:
//
//	var needlePattern = literalpat.Const("abra")
//
// Const itself builds a fresh lazily-initialized value per call, so each
// call site should store the returned func and invoke it, not call Const
// repeatedly.
func Const(s string) func() *Pattern {
	return sync.OnceValue(func() *Pattern {
		return New([]byte(s))
	})
}
