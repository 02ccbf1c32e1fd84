// Package rxprefilter extracts a candidate-narrowing Aho-Corasick automaton
// from regex sources whose entire structure is a plain alternation of
// literal byte sequences (`foo|bar|baz`, no classes, quantifiers, or
// grouping in any branch). It is an optional accelerant for the root
// package's Regex.Search:
// the automaton only narrows which start offsets are worth walking the DFA
// from, never decides a match on its own.
package rxprefilter

// ExtractLiterals scans source for the shape "lit1|lit2|...|litN" and
// returns each branch's literal bytes. ok is false the moment source
// contains anything other than literal characters and top-level '|'
// separators — grouping, classes, anchors, quantifiers, or any escape other
// than a literal-character escape all disqualify the whole pattern, since
// any of them means this shape's safety assumption (every branch matches
// only itself, nothing more) no longer holds.
func ExtractLiterals(source string) ([][]byte, bool) {
	if source == "" {
		return nil, false
	}

	var branches [][]byte
	var cur []byte
	for i := 0; i < len(source); i++ {
		c := source[i]
		switch c {
		case '|':
			branches = append(branches, cur)
			cur = nil
		case '\\':
			i++
			if i >= len(source) {
				return nil, false
			}
			esc := source[i]
			if isShorthandEscape(esc) {
				return nil, false
			}
			cur = append(cur, esc)
		case '(', ')', '[', ']', '.', '*', '+', '?', '^', '$':
			return nil, false
		default:
			cur = append(cur, c)
		}
	}
	branches = append(branches, cur)

	for _, b := range branches {
		if len(b) == 0 {
			return nil, false
		}
	}
	return branches, true
}

func isShorthandEscape(c byte) bool {
	switch c {
	case 'd', 'D', 'w', 'W', 's', 'S':
		return true
	default:
		return false
	}
}
