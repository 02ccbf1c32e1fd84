package literalpat

import (
	"iter"

	"github.com/coregx/fastmatch/simdscan"
)

// FirstMatch returns the offset of the first occurrence of pat in text, or
// (0, false) if pat does not occur. An empty pattern matches at offset 0
// regardless of text, matching the mathematical convention that the empty
// string is a prefix of every string.
func FirstMatch(text []byte, pat *Pattern) (int, bool) {
	m := pat.Len()
	if m == 0 {
		return 0, true
	}
	n := len(text)
	if n < m {
		return 0, false
	}

	first := pat.bytes[0]
	fail := pat.failure()
	limit := n - m + 1

	p := 0
	for p < limit {
		c, ok := simdscan.FindFirstEq(text[p:limit], first)
		if !ok {
			return 0, false
		}
		c += p

		k := simdscan.PrefixEqLen(text[c:c+m], pat.bytes)
		if k == m {
			return c, true
		}

		skip := 1
		if k > 0 {
			if s := k - fail[k-1]; s > 1 {
				skip = s
			}
		}
		p = c + skip
	}
	return 0, false
}

// FirstMatchWithConfig is FirstMatch with an explicit SIMD dispatch
// threshold, for callers tuning to a known buffer-size distribution.
func FirstMatchWithConfig(text []byte, pat *Pattern, cfg Config) (int, bool) {
	m := pat.Len()
	if m == 0 {
		return 0, true
	}
	n := len(text)
	if n < m {
		return 0, false
	}

	first := pat.bytes[0]
	fail := pat.failure()
	limit := n - m + 1

	p := 0
	for p < limit {
		c, ok := findFirstEq(text[p:limit], first, cfg.SIMDThreshold)
		if !ok {
			return 0, false
		}
		c += p

		k := prefixEqLen(text[c:c+m], pat.bytes, cfg.SIMDThreshold)
		if k == m {
			return c, true
		}

		skip := 1
		if k > 0 {
			if s := k - fail[k-1]; s > 1 {
				skip = s
			}
		}
		p = c + skip
	}
	return 0, false
}

// Contains reports whether pat occurs anywhere in text.
func Contains(text []byte, pat *Pattern) bool {
	_, ok := FirstMatch(text, pat)
	return ok
}

// AllMatches returns a lazy, strictly-increasing stream of overlapping match
// offsets of pat in text. The empty pattern yields no offsets (see Count).
//
// Example:
//
//	pat := literalpat.New([]byte("aa"))
//	for off := range literalpat.AllMatches([]byte("aaaa"), pat) {
//	    fmt.Println(off) // 0, 1, 2
//	}
func AllMatches(text []byte, pat *Pattern) iter.Seq[int] {
	return func(yield func(int) bool) {
		m := pat.Len()
		if m == 0 {
			return
		}
		n := len(text)
		if n < m {
			return
		}

		first := pat.bytes[0]
		fail := pat.failure()
		limit := n - m + 1

		p := 0
		for p < limit {
			c, ok := simdscan.FindFirstEq(text[p:limit], first)
			if !ok {
				return
			}
			c += p

			k := simdscan.PrefixEqLen(text[c:c+m], pat.bytes)
			if k == m {
				if !yield(c) {
					return
				}
				p = c + 1
				continue
			}

			skip := 1
			if k > 0 {
				if s := k - fail[k-1]; s > 1 {
					skip = s
				}
			}
			p = c + skip
		}
	}
}

// AllMatchesWithConfig is AllMatches with an explicit SIMD dispatch
// threshold, for callers tuning to a known buffer-size distribution.
func AllMatchesWithConfig(text []byte, pat *Pattern, cfg Config) iter.Seq[int] {
	return func(yield func(int) bool) {
		m := pat.Len()
		if m == 0 {
			return
		}
		n := len(text)
		if n < m {
			return
		}

		first := pat.bytes[0]
		fail := pat.failure()
		limit := n - m + 1

		p := 0
		for p < limit {
			c, ok := findFirstEq(text[p:limit], first, cfg.SIMDThreshold)
			if !ok {
				return
			}
			c += p

			k := prefixEqLen(text[c:c+m], pat.bytes, cfg.SIMDThreshold)
			if k == m {
				if !yield(c) {
					return
				}
				p = c + 1
				continue
			}

			skip := 1
			if k > 0 {
				if s := k - fail[k-1]; s > 1 {
					skip = s
				}
			}
			p = c + skip
		}
	}
}

// AllMatchesCollected eagerly collects AllMatches into a slice, in the same
// ascending order the lazy form would yield.
func AllMatchesCollected(text []byte, pat *Pattern) []int {
	out := make([]int, 0)
	for off := range AllMatches(text, pat) {
		out = append(out, off)
	}
	return out
}

// Count returns the number of overlapping occurrences of pat in text. By
// convention the empty pattern yields 0: this mirrors AllMatches, which
// produces no offsets for it, rather than the alternative convention of an
// infinite/every-position count.
func Count(text []byte, pat *Pattern) int {
	n := 0
	for range AllMatches(text, pat) {
		n++
	}
	return n
}
