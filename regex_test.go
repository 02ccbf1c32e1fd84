package fastmatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/fastmatch/rxdfa"
	"github.com/coregx/fastmatch/rxnfa"
)

func mustCompileRegex(t *testing.T, source string) *Regex {
	t.Helper()
	r, err := CompileRegex(source)
	if err != nil {
		t.Fatalf("CompileRegex(%q) failed: %v", source, err)
	}
	return r
}

func TestRegexR1PlainLiteral(t *testing.T) {
	r := mustCompileRegex(t, "hello")
	if !r.Matches([]byte("hello")) {
		t.Error("expected \"hello\" to match")
	}
	if r.Matches([]byte("Hello")) {
		t.Error("expected \"Hello\" not to match (case-sensitive)")
	}
}

func TestRegexR2CharClassPlus(t *testing.T) {
	r := mustCompileRegex(t, "[a-zA-Z]+")
	if !r.Matches([]byte("Hello")) {
		t.Error("expected \"Hello\" to match")
	}
	if r.Matches([]byte("Hello123")) {
		t.Error("expected \"Hello123\" not to fully match")
	}
}

func TestRegexR3Star(t *testing.T) {
	r := mustCompileRegex(t, "ab*c")
	for _, s := range []string{"ac", "abc", "abbc"} {
		if !r.Matches([]byte(s)) {
			t.Errorf("expected %q to match ab*c", s)
		}
	}
}

func TestRegexR4Plus(t *testing.T) {
	r := mustCompileRegex(t, "ab+c")
	if r.Matches([]byte("ac")) {
		t.Error("expected \"ac\" not to match ab+c")
	}
	if !r.Matches([]byte("abc")) {
		t.Error("expected \"abc\" to match ab+c")
	}
}

func TestRegexR5Email(t *testing.T) {
	r := mustCompileRegex(t, `[a-z]+@[a-z]+\.[a-z]+`)
	if !r.Matches([]byte("user@example.com")) {
		t.Error("expected a valid email to match")
	}
	if r.Matches([]byte("invalid")) {
		t.Error("expected \"invalid\" not to match")
	}
}

func TestRegexR6SearchFindsDigitsMidText(t *testing.T) {
	r := mustCompileRegex(t, "[0-9]+")
	off, ok := r.Search([]byte("There are 42 apples and 123 oranges."))
	if !ok || off != 10 {
		t.Fatalf("expected (10, true), got (%d, %v)", off, ok)
	}
}

func TestRegexR7WorstCaseCompletesWithNoMatch(t *testing.T) {
	r := mustCompileRegex(t, "a*a*a*a*a*b")
	text := []byte(strings.Repeat("a", 1000))
	_, ok := r.Search(text)
	if ok {
		t.Fatal("expected no match against a run of 'a' with no trailing 'b'")
	}
}

func TestRegexSourceRoundTrip(t *testing.T) {
	r := mustCompileRegex(t, "ab+c")
	if r.Source() != "ab+c" {
		t.Fatalf("expected Source() to round-trip, got %q", r.Source())
	}
}

func TestRegexStateCountAndIsEmpty(t *testing.T) {
	r := mustCompileRegex(t, "a")
	if r.IsEmpty() {
		t.Error("expected a successfully compiled regex not to report IsEmpty")
	}
	if r.StateCount() == 0 {
		t.Error("expected a non-zero state count")
	}
}

func TestRegexSearchRemembersEarlierAcceptAfterBranchDies(t *testing.T) {
	r := mustCompileRegex(t, `aaxaaaaa|x(y*z)?`)
	pos, ok := r.Search([]byte("aaxyq"))
	if !ok || pos != 2 {
		t.Fatalf("expected (2, true), got (%d, %v)", pos, ok)
	}
}

func TestRegexPrefilterAcceleratesLiteralAlternation(t *testing.T) {
	r := mustCompileRegex(t, "foo|bar|baz")
	if r.prefilter == nil {
		t.Fatal("expected a literal alternation to build a prefilter")
	}
	off, ok := r.Search([]byte("xxxbarxxx"))
	if !ok || off != 3 {
		t.Fatalf("expected (3, true), got (%d, %v)", off, ok)
	}
	if _, ok := r.Search([]byte("nope")); ok {
		t.Fatal("expected no match when none of the literals occur")
	}
}

func TestRegexNonAlternationHasNoPrefilter(t *testing.T) {
	r := mustCompileRegex(t, "[0-9]+")
	if r.prefilter != nil {
		t.Fatal("expected a character-class pattern not to qualify for the literal prefilter")
	}
}

func TestCompileRegexInvalidSyntaxWrapsParseError(t *testing.T) {
	_, err := CompileRegex("(unclosed")
	if err == nil {
		t.Fatal("expected an error for unclosed group")
	}
	var perr *rxnfa.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *rxnfa.ParseError, got %T: %v", err, err)
	}
	if !errors.Is(err, rxnfa.ErrUnmatchedParen) {
		t.Fatalf("expected errors.Is to match ErrUnmatchedParen, got %v", err)
	}
}

func TestCompileRegexWithConfigTooComplexWrapsCompileError(t *testing.T) {
	_, err := CompileRegexWithConfig("[a-z]+@[a-z]+", rxdfa.Config{MaxStates: 1})
	if err == nil {
		t.Fatal("expected a compile error for a state cap of 1")
	}
	var cerr *rxdfa.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a *rxdfa.CompileError, got %T: %v", err, err)
	}
	if !errors.Is(err, rxdfa.ErrTooComplex) {
		t.Fatalf("expected errors.Is to match ErrTooComplex, got %v", err)
	}
}
