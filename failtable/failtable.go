// Package failtable builds the KMP failure function (prefix function) that
// drives the literal search engine's skip logic.
//
// For a pattern P of length m, the failure table F is a sequence of m
// non-negative integers such that F[0] = 0 and, for 0 < i < m, F[i] is the
// length of the longest proper prefix of P[0..=i] that is also a suffix of
// P[0..=i]. This package computes only that standard definition; an
// optimized variant is offered separately (BuildOptimized) and must not be
// mixed with a standard-definition consumer — see its doc comment.
package failtable

// Build computes the standard KMP failure table for pattern in O(len(pattern))
// time and space. The table returned for an empty pattern is empty.
//
// Example:
//
//	f := failtable.Build([]byte("abcabcab"))
//	// f == []int{0, 0, 0, 1, 2, 3, 4, 5}
func Build(pattern []byte) []int {
	m := len(pattern)
	if m == 0 {
		return []int{}
	}

	f := make([]int, m)
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = f[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		f[i] = k
	}
	return f
}

// BuildOptimized computes a failure table variant that collapses F[i] to
// F[k-1] whenever pattern[i+1] == pattern[k], a classical KMP micro-
// optimization that avoids one redundant comparison during the later search.
//
// The collapsed table no longer satisfies the standard definition used by
// this package's search engine (literalpat): mixing it with the standard
// engine produces incorrect skip distances. It is offered only as an
// alternate, self-contained builder for callers implementing their own
// search loop against the optimized definition.
func BuildOptimized(pattern []byte) []int {
	m := len(pattern)
	if m == 0 {
		return []int{}
	}

	f := Build(pattern)
	opt := make([]int, m)
	copy(opt, f)

	for i := 0; i < m-1; i++ {
		k := opt[i]
		if k > 0 && pattern[i+1] == pattern[k] {
			opt[i] = opt[k-1]
		}
	}
	return opt
}
