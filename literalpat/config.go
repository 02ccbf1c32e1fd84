package literalpat

import "github.com/coregx/fastmatch/simdscan"

// Config tunes the literal engine's dispatch threshold on top of simdscan's
// own package-wide default, for callers who know their typical buffer sizes
// in advance (e.g. forcing the scalar path in a test). The threshold can
// only raise the bar: buffers shorter than simdscan.MinSIMDLen take the
// scalar path even when SIMDThreshold is set lower.
type Config struct {
	// SIMDThreshold is the minimum buffer length before FirstMatchWithConfig
	// and AllMatchesWithConfig hand a scan to simdscan; below it, scanning
	// falls back to scalar unconditionally. At or above it, simdscan still
	// applies its own MinSIMDLen.
	SIMDThreshold int
}

// DefaultConfig mirrors simdscan's own default threshold, so
// FirstMatchWithConfig(DefaultConfig()) behaves identically to FirstMatch.
func DefaultConfig() Config {
	return Config{SIMDThreshold: simdscan.MinSIMDLen}
}

// findFirstEq scans buf for b, forcing the scalar path below threshold in
// addition to simdscan's own package-wide MinSIMDLen.
func findFirstEq(buf []byte, b byte, threshold int) (int, bool) {
	if len(buf) < threshold {
		for i, c := range buf {
			if c == b {
				return i, true
			}
		}
		return 0, false
	}
	return simdscan.FindFirstEq(buf, b)
}

// prefixEqLen measures the common prefix of a and b, forcing the scalar
// path below threshold in addition to simdscan's own package-wide MinSIMDLen.
func prefixEqLen(a, b []byte, threshold int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < threshold {
		k := 0
		for k < n && a[k] == b[k] {
			k++
		}
		return k
	}
	return simdscan.PrefixEqLen(a, b)
}
