// Package cpu probes the host CPU once, at first use, for the SIMD feature
// levels the rest of fastmatch dispatches on.
//
// Detection consults golang.org/x/sys/cpu, which itself reads the CPUID base
// and extended-feature (leaf 7) bits and cross-checks them against the
// operating system's XCR0 control register so a feature is only reported
// when the OS has actually enabled the corresponding wide-vector state
// (YMM for AVX2, YMM+ZMM+opmask for AVX-512). A flag this package reports is
// therefore safe to act on directly: no further OS-support check is needed
// by callers.
//
// The probe fails closed. Any flag the underlying detection cannot confirm
// is reported false, never true, and every kernel gated on it has a scalar
// fallback that returns identical results. SIMDLevel is advisory — it picks
// the widest usable kernel, but correctness never depends on which one runs.
package cpu

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Features records which SIMD instruction sets the host CPU and OS support.
type Features struct {
	SSE42    bool
	AVX2     bool
	AVX512F  bool
	AVX512BW bool
}

// Level names the widest SIMD width safe to dispatch to.
type Level int

const (
	Scalar Level = iota
	Sse42
	Avx2
	Avx512
)

func (l Level) String() string {
	switch l {
	case Sse42:
		return "Sse42"
	case Avx2:
		return "Avx2"
	case Avx512:
		return "Avx512"
	default:
		return "Scalar"
	}
}

var (
	once     sync.Once
	features Features
)

func detect() Features {
	return Features{
		SSE42:    cpu.X86.HasSSE42,
		AVX2:     cpu.X86.HasAVX2,
		AVX512F:  cpu.X86.HasAVX512F,
		AVX512BW: cpu.X86.HasAVX512BW,
	}
}

// Probe returns the process-wide cached feature set, computing it exactly
// once under a lock-free call-once discipline. Safe for concurrent callers.
func Probe() Features {
	once.Do(func() {
		features = detect()
	})
	return features
}

// SIMDLevel returns the widest kernel width Probe's features allow.
// AVX-512 requires both the foundation (AVX512F) and byte/word (AVX512BW)
// subsets, since byte-lane comparisons need BW.
func SIMDLevel() Level {
	f := Probe()
	switch {
	case f.AVX512F && f.AVX512BW:
		return Avx512
	case f.AVX2:
		return Avx2
	case f.SSE42:
		return Sse42
	default:
		return Scalar
	}
}

// reset is a test hook: it clears the call-once guard so the next Probe
// runs detection again. Not exported.
func reset() {
	once = sync.Once{}
}
