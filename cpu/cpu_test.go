package cpu

import "testing"

func TestProbeCached(t *testing.T) {
	a := Probe()
	b := Probe()
	if a != b {
		t.Fatalf("Probe() not stable across calls: %+v vs %+v", a, b)
	}
}

func TestSIMDLevelConsistentWithFeatures(t *testing.T) {
	f := Probe()
	lvl := SIMDLevel()

	switch lvl {
	case Avx512:
		if !f.AVX512F || !f.AVX512BW {
			t.Fatalf("SIMDLevel()=Avx512 but features=%+v", f)
		}
	case Avx2:
		if !f.AVX2 {
			t.Fatalf("SIMDLevel()=Avx2 but AVX2 feature false: %+v", f)
		}
	case Sse42:
		if !f.SSE42 {
			t.Fatalf("SIMDLevel()=Sse42 but SSE42 feature false: %+v", f)
		}
	case Scalar:
		if f.SSE42 || f.AVX2 || (f.AVX512F && f.AVX512BW) {
			t.Fatalf("SIMDLevel()=Scalar but a usable feature is set: %+v", f)
		}
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		Scalar: "Scalar",
		Sse42:  "Sse42",
		Avx2:   "Avx2",
		Avx512: "Avx512",
	}
	for lvl, want := range cases {
		if got := lvl.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", lvl, got, want)
		}
	}
}
