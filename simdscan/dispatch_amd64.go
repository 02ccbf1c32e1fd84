//go:build amd64

package simdscan

import "github.com/coregx/fastmatch/cpu"

// dispatchFindFirstEq picks the widest lane kernel the probed CPU supports,
// falling back toward scalar as features are unavailable.
func dispatchFindFirstEq(buf []byte, b byte) (int, bool) {
	switch cpu.SIMDLevel() {
	case cpu.Avx512:
		return findFirstEqLanes(buf, b, 64)
	case cpu.Avx2:
		return findFirstEqLanes(buf, b, 32)
	case cpu.Sse42:
		return findFirstEqLanes(buf, b, 16)
	default:
		return findFirstEqScalar(buf, b)
	}
}

func dispatchPrefixEqLen(a, b []byte) int {
	switch cpu.SIMDLevel() {
	case cpu.Avx512:
		return prefixEqLenLanes(a, b, 64)
	case cpu.Avx2:
		return prefixEqLenLanes(a, b, 32)
	case cpu.Sse42:
		return prefixEqLenLanes(a, b, 16)
	default:
		return prefixEqLenScalar(a, b)
	}
}
