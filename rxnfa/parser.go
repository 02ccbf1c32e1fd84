package rxnfa

// Parse compiles a regex source string into a Thompson NFA via recursive
// descent over the grammar:
//
//	regex         := alternation
//	alternation   := concatenation ('|' concatenation)*
//	concatenation := quantified*
//	quantified    := atom ('*' | '+' | '?')?
//	atom          := '(' regex ')' | char_class | '.' | '\' esc | '^' | '$' | literal
//	char_class    := '[' '^'? class_item+ ']'
//	class_item    := char ('-' char)? | '\' esc
//	esc           := 'd'|'D'|'w'|'W'|'s'|'S' | any literal char
//
// Parsing is fatal at the first unrecoverable syntactic inconsistency; it
// never attempts recovery, and a failed Parse never returns a partial NFA.
func Parse(source string) (*NFA, error) {
	p := &parser{src: []byte(source), builder: NewBuilder()}
	frag, err := p.parseAlternation()
	if err != nil {
		return nil, &ParseError{Source: source, Pos: p.pos, Err: err}
	}
	if p.pos != len(p.src) {
		// Only ')' can stop parseAlternation before EOF, and every '(' that
		// opened a group consumes its matching ')' in parseAtom — reaching
		// here means a ')' with no opener.
		return nil, &ParseError{Source: source, Pos: p.pos, Err: ErrUnmatchedParen}
	}
	return p.builder.Finish(frag), nil
}

type parser struct {
	src     []byte
	pos     int
	builder *Builder
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) advance() byte {
	b := p.src[p.pos]
	p.pos++
	return b
}

// emptyFragment returns a fragment that matches the empty string: a single
// Epsilon state whose one dangling slot is both Start and End.
func (p *parser) emptyFragment() Fragment {
	id := p.builder.AddEpsilon()
	return Fragment{Start: id, End: id}
}

func (p *parser) parseAlternation() (Fragment, error) {
	left, err := p.parseConcatenation()
	if err != nil {
		return Fragment{}, err
	}
	for !p.eof() && p.peek() == '|' {
		p.advance()
		right, err := p.parseConcatenation()
		if err != nil {
			return Fragment{}, err
		}
		left = p.alternate(left, right)
	}
	return left, nil
}

func (p *parser) parseConcatenation() (Fragment, error) {
	var frag Fragment
	have := false
	for !p.eof() && p.peek() != '|' && p.peek() != ')' {
		next, err := p.parseQuantified()
		if err != nil {
			return Fragment{}, err
		}
		if !have {
			frag = next
			have = true
		} else {
			frag = p.concat(frag, next)
		}
	}
	if !have {
		return p.emptyFragment(), nil
	}
	return frag, nil
}

func (p *parser) parseQuantified() (Fragment, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return Fragment{}, err
	}
	if p.eof() {
		return atom, nil
	}
	switch p.peek() {
	case '*':
		p.advance()
		return p.quantStar(atom), nil
	case '+':
		p.advance()
		return p.quantPlus(atom), nil
	case '?':
		p.advance()
		return p.quantOpt(atom), nil
	default:
		return atom, nil
	}
}

func (p *parser) parseAtom() (Fragment, error) {
	if p.eof() {
		return Fragment{}, ErrUnexpectedEOF
	}
	switch c := p.peek(); c {
	case '(':
		p.advance()
		if p.eof() {
			return Fragment{}, ErrUnexpectedEOF
		}
		inner, err := p.parseAlternation()
		if err != nil {
			return Fragment{}, err
		}
		if p.eof() || p.peek() != ')' {
			return Fragment{}, ErrUnmatchedParen
		}
		p.advance()
		return inner, nil
	case '[':
		return p.parseClass()
	case '.':
		p.advance()
		return p.classFragment(AnyExceptNewlineClass()), nil
	case '\\':
		p.advance()
		return p.parseEscape()
	case '^', '$':
		p.advance()
		return p.emptyFragment(), nil
	default:
		p.advance()
		return p.literalFragment(c), nil
	}
}

func (p *parser) parseClass() (Fragment, error) {
	p.advance() // consume '['
	negate := false
	if !p.eof() && p.peek() == '^' {
		negate = true
		p.advance()
	}

	var class CharClass
	first := true
	for {
		if p.eof() {
			return Fragment{}, ErrUnmatchedBracket
		}
		if p.peek() == ']' && !first {
			p.advance()
			break
		}
		first = false

		var lo byte
		if p.peek() == '\\' {
			p.advance()
			if p.eof() {
				return Fragment{}, ErrDanglingEscape
			}
			esc := p.advance()
			if shorthand, ok := shorthandClass(esc); ok {
				class = unionClass(class, shorthand)
				continue
			}
			lo = esc
		} else {
			lo = p.advance()
		}

		if !p.eof() && p.peek() == '-' && p.pos+1 < len(p.src) && p.src[p.pos+1] != ']' {
			p.advance() // consume '-'
			var hi byte
			if p.peek() == '\\' {
				p.advance()
				if p.eof() {
					return Fragment{}, ErrDanglingEscape
				}
				hi = p.advance()
			} else {
				hi = p.advance()
			}
			class.AddRange(lo, hi)
		} else {
			class.Add(lo)
		}
	}

	if negate {
		class.Complement()
	}
	return p.classFragment(class), nil
}

func (p *parser) parseEscape() (Fragment, error) {
	if p.eof() {
		return Fragment{}, ErrDanglingEscape
	}
	c := p.advance()
	if class, ok := shorthandClass(c); ok {
		return p.classFragment(class), nil
	}
	return p.literalFragment(c), nil
}

func shorthandClass(c byte) (CharClass, bool) {
	switch c {
	case 'd':
		return DigitClass(), true
	case 'D':
		return NotDigitClass(), true
	case 'w':
		return WordClass(), true
	case 'W':
		return NotWordClass(), true
	case 's':
		return SpaceClass(), true
	case 'S':
		return NotSpaceClass(), true
	default:
		return CharClass{}, false
	}
}

func unionClass(a, b CharClass) CharClass {
	for i := 0; i < ClassSize; i++ {
		if b.Contains(byte(i)) {
			a.Add(byte(i))
		}
	}
	return a
}

// --- Thompson fragment construction ---

func (p *parser) literalFragment(b byte) Fragment {
	id := p.builder.AddByte(b)
	return Fragment{Start: id, End: id}
}

func (p *parser) classFragment(c CharClass) Fragment {
	id := p.builder.AddClass(c)
	return Fragment{Start: id, End: id}
}

func (p *parser) concat(a, b Fragment) Fragment {
	p.builder.Patch(a.End, b.Start)
	return Fragment{Start: a.Start, End: b.End}
}

func (p *parser) alternate(a, b Fragment) Fragment {
	split := p.builder.AddSplit()
	p.builder.PatchSplit(split, a.Start, b.Start)
	join := p.builder.AddEpsilon()
	p.builder.Patch(a.End, join)
	p.builder.Patch(b.End, join)
	return Fragment{Start: split, End: join}
}

// quantStar wires `A*`: the split's Next1 goes to A, A's end loops back to
// the split, and the split's still-dangling Next2 is the exit patched by
// whatever follows — verified by test that `a*b` patches exactly this slot.
func (p *parser) quantStar(a Fragment) Fragment {
	split := p.builder.AddSplit()
	p.builder.Patch(split, a.Start)
	p.builder.Patch(a.End, split)
	return Fragment{Start: split, End: split}
}

// quantPlus wires `A+`: must match A once before the split's loop/exit
// decision, so Start is A.Start rather than the split.
func (p *parser) quantPlus(a Fragment) Fragment {
	split := p.builder.AddSplit()
	p.builder.Patch(split, a.Start)
	p.builder.Patch(a.End, split)
	return Fragment{Start: a.Start, End: split}
}

// quantOpt wires `A?`: split goes to A or directly to join; A's end also
// goes to join.
func (p *parser) quantOpt(a Fragment) Fragment {
	join := p.builder.AddEpsilon()
	split := p.builder.AddSplit()
	p.builder.PatchSplit(split, a.Start, join)
	p.builder.Patch(a.End, join)
	return Fragment{Start: split, End: join}
}
