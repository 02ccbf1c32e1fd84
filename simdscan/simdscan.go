// Package simdscan provides the two width-specialized byte-scan primitives
// the KMP engine is built on: finding the first occurrence of a byte, and
// measuring the length of a common prefix between two buffers.
//
// Each primitive is implemented at three lane widths (16/32/64 bytes,
// corresponding to SSE4.2/AVX2/AVX-512BW-class hardware) plus a scalar
// fallback, and dispatched at runtime via cpu.SIMDLevel. Every width and
// the scalar path return bitwise-identical results on identical input —
// width only changes throughput, never the answer. Below a minimum input
// length, the scalar path is used unconditionally: SIMD setup overhead is
// not worth paying for small buffers.
package simdscan

// MinSIMDLen is the smallest input length for which a wide kernel is tried.
// Below this, FindFirstEq and PrefixEqLen always use the scalar path.
const MinSIMDLen = 64

// FindFirstEq returns the offset of the first byte in buf equal to b, or
// (0, false) if buf is empty or contains no such byte.
//
// Example:
//
//	off, ok := simdscan.FindFirstEq([]byte("hello world"), 'w')
//	// off == 6, ok == true
func FindFirstEq(buf []byte, b byte) (int, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	if len(buf) < MinSIMDLen {
		return findFirstEqScalar(buf, b)
	}
	return dispatchFindFirstEq(buf, b)
}

// PrefixEqLen returns the length of the maximal common prefix of a and b,
// 0 <= k <= min(len(a), len(b)).
//
// Example:
//
//	k := simdscan.PrefixEqLen([]byte("abcdef"), []byte("abcxyz"))
//	// k == 3
func PrefixEqLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	if n < MinSIMDLen {
		return prefixEqLenScalar(a[:n], b[:n])
	}
	return dispatchPrefixEqLen(a[:n], b[:n])
}
