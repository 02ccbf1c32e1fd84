// Package fastmatch is a high-performance text-matching library with two
// cooperating cores: a KMP literal engine with SIMD-dispatched first-byte
// scanning (see literalpat, simdscan, failtable), and a Thompson-
// construction-to-subset-construction DFA regex engine over the
// 128-code-point ASCII alphabet (see rxnfa, rxdfa). Both cores guarantee
// linear-time matching with no backtracking.
package fastmatch

import (
	"iter"

	"github.com/coregx/fastmatch/literalpat"
)

// Pattern is a compiled literal pattern: its bytes (copied, not borrowed)
// and precomputed KMP failure table. Immutable after construction and safe
// to share by reference across concurrent readers.
type Pattern = literalpat.Pattern

// CompileLiteral compiles pattern into a reusable Pattern, computing its
// failure table once up front.
func CompileLiteral(pattern []byte) *Pattern {
	return literalpat.New(pattern)
}

// CompileConst returns a lazily-initialized holder for a pattern known at
// call-construction time: the first invocation of the returned func builds
// the Pattern; every later invocation, from any caller, returns the same
// one.
func CompileConst(s string) func() *Pattern {
	return literalpat.Const(s)
}

// Search returns the offset of the first occurrence of pattern in text, or
// (0, false) if pattern does not occur. An empty pattern always returns
// (0, true).
func Search(text, pattern []byte) (int, bool) {
	return literalpat.FirstMatch(text, literalpat.New(pattern))
}

// SearchPos is Search against a precompiled Pattern, skipping the
// once-per-call failure-table computation Search does internally.
func SearchPos(text []byte, p *Pattern) (int, bool) {
	return literalpat.FirstMatch(text, p)
}

// SearchAll lazily yields every, possibly overlapping, occurrence offset of
// pattern in text in strictly ascending order.
func SearchAll(text, pattern []byte) iter.Seq[int] {
	return literalpat.AllMatches(text, literalpat.New(pattern))
}

// SearchAllPattern is SearchAll against a precompiled Pattern.
func SearchAllPattern(text []byte, p *Pattern) iter.Seq[int] {
	return literalpat.AllMatches(text, p)
}

// SearchAllCollected eagerly collects every match offset of pattern in
// text, identical to draining SearchAll into a slice.
func SearchAllCollected(text, pattern []byte) []int {
	return literalpat.AllMatchesCollected(text, literalpat.New(pattern))
}

// Count returns the number of, possibly overlapping, occurrences of pattern
// in text. By convention, an empty pattern yields 0.
func Count(text, pattern []byte) int {
	return literalpat.Count(text, literalpat.New(pattern))
}

// Contains reports whether pattern occurs anywhere in text. An empty
// pattern always reports true.
func Contains(text, pattern []byte) bool {
	return literalpat.Contains(text, literalpat.New(pattern))
}
