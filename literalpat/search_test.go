package literalpat

import (
	"reflect"
	"testing"
)

func TestFirstMatchScenarios(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		wantOff int
		wantOk  bool
	}{
		{"S1", "abracadabra", "abra", 0, true},
		{"S3", "ABABDABACDABABCABAB", "ABABCABAB", 10, true},
		{"S4 not found", "hello world", "xyz", 0, false},
		{"empty pattern", "anything", "", 0, true},
		{"pattern longer than text", "ab", "abc", 0, false},
		{"pattern equals text", "needle", "needle", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pat := New([]byte(tt.pattern))
			off, ok := FirstMatch([]byte(tt.text), pat)
			if ok != tt.wantOk || (ok && off != tt.wantOff) {
				t.Errorf("FirstMatch(%q, %q) = (%d, %v), want (%d, %v)", tt.text, tt.pattern, off, ok, tt.wantOff, tt.wantOk)
			}
		})
	}
}

func TestAllMatchesScenarios(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []int
	}{
		{"S1", "abracadabra", "abra", []int{0, 7}},
		{"S2", "aaaa", "aa", []int{0, 1, 2}},
		{"S6", "the cat the dog the bird", "the", []int{0, 8, 16}},
		{"no match", "hello world", "xyz", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pat := New([]byte(tt.pattern))
			got := AllMatchesCollected([]byte(tt.text), pat)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AllMatchesCollected(%q, %q) = %v, want %v", tt.text, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestCountScenarios(t *testing.T) {
	tests := []struct {
		text, pattern string
		want          int
	}{
		{"aaaa", "aa", 3},
		{"hello world", "xyz", 0},
		{"anything", "", 0},
	}
	for _, tt := range tests {
		pat := New([]byte(tt.pattern))
		if got := Count([]byte(tt.text), pat); got != tt.want {
			t.Errorf("Count(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
		}
	}
}

func TestContainsMatchesFirstMatch(t *testing.T) {
	texts := []string{"abracadabra", "hello world", "", "aaaa"}
	patterns := []string{"abra", "xyz", "a", ""}
	for _, text := range texts {
		for _, p := range patterns {
			pat := New([]byte(p))
			_, wantFound := FirstMatch([]byte(text), pat)
			gotContains := Contains([]byte(text), pat)
			if gotContains != wantFound {
				t.Errorf("Contains(%q,%q)=%v but FirstMatch found=%v", text, p, gotContains, wantFound)
			}
		}
	}
}

func TestAllMatchesAscendingAndValid(t *testing.T) {
	text := []byte("mississippi")
	pat := New([]byte("issi"))
	offs := AllMatchesCollected(text, pat)
	last := -1
	for _, o := range offs {
		if o <= last {
			t.Fatalf("offsets not strictly increasing: %v", offs)
		}
		last = o
		if o+pat.Len() > len(text) || string(text[o:o+pat.Len()]) != string(pat.Bytes()) {
			t.Fatalf("offset %d does not point at a real occurrence", o)
		}
	}
}

func TestFirstMatchMinimality(t *testing.T) {
	text := []byte("abracadabra")
	pat := New([]byte("abra"))
	all := AllMatchesCollected(text, pat)
	off, ok := FirstMatch(text, pat)
	if !ok || len(all) == 0 || off != all[0] {
		t.Fatalf("FirstMatch=%d,%v but AllMatches[0]=%v", off, ok, all)
	}
}

func TestLargeOffsetNeedle(t *testing.T) {
	text := make([]byte, 100000)
	for i := range text {
		text[i] = 'a'
	}
	copy(text[99990:], "needle")
	pat := New([]byte("needle"))
	off, ok := FirstMatch(text, pat)
	if !ok || off != 99990 {
		t.Fatalf("FirstMatch = (%d, %v), want (99990, true)", off, ok)
	}
}

func TestWorstCaseBounded(t *testing.T) {
	n := 20000
	text := make([]byte, n)
	for i := range text {
		text[i] = 'a'
	}
	needle := make([]byte, n/10)
	for i := range needle[:len(needle)-1] {
		needle[i] = 'a'
	}
	needle[len(needle)-1] = 'b'

	pat := New(needle)
	_, ok := FirstMatch(text, pat)
	if ok {
		t.Fatalf("expected no match for a^n vs a^(n/10)b")
	}
}

func TestFirstMatchWithConfigForcedScalarAgreesWithDefault(t *testing.T) {
	text := make([]byte, 2000)
	for i := range text {
		text[i] = 'x'
	}
	copy(text[777:], "needle")
	pat := New([]byte("needle"))

	wantOff, wantOk := FirstMatch(text, pat)
	gotOff, gotOk := FirstMatchWithConfig(text, pat, Config{SIMDThreshold: 1 << 30})
	if gotOff != wantOff || gotOk != wantOk {
		t.Fatalf("forced-scalar FirstMatchWithConfig = (%d, %v), want (%d, %v)", gotOff, gotOk, wantOff, wantOk)
	}
}

func TestAllMatchesWithConfigForcedScalarAgreesWithDefault(t *testing.T) {
	text := []byte("ababababab")
	pat := New([]byte("ab"))

	var want, got []int
	for off := range AllMatches(text, pat) {
		want = append(want, off)
	}
	for off := range AllMatchesWithConfig(text, pat, Config{SIMDThreshold: 1 << 30}) {
		got = append(got, off)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("forced-scalar AllMatchesWithConfig = %v, want %v", got, want)
	}
}

func TestDefaultConfigMatchesSIMDScanThreshold(t *testing.T) {
	text := make([]byte, 200)
	for i := range text {
		text[i] = 'y'
	}
	copy(text[50:], "target")
	pat := New([]byte("target"))

	wantOff, wantOk := FirstMatch(text, pat)
	gotOff, gotOk := FirstMatchWithConfig(text, pat, DefaultConfig())
	if gotOff != wantOff || gotOk != wantOk {
		t.Fatalf("FirstMatchWithConfig(DefaultConfig()) = (%d, %v), want (%d, %v)", gotOff, gotOk, wantOff, wantOk)
	}
}

func TestConstLazyHolder(t *testing.T) {
	get := Const("hello")
	p1 := get()
	p2 := get()
	if p1 != p2 {
		t.Fatalf("Const holder should return the same *Pattern across calls")
	}
	if string(p1.Bytes()) != "hello" {
		t.Fatalf("Const holder pattern bytes = %q, want hello", p1.Bytes())
	}
}
