package rxnfa

// ClassSize is the width of the DFA/NFA alphabet: the 128-code-point ASCII
// range. Bytes at or above ClassSize never match any class and always fail
// the current attempt.
const ClassSize = 128

// CharClass is a 128-bit set over the ASCII byte range, used by ClassMatch
// states and by the `[...]`/`[^...]`/`\d`/`\w`/`\s`/`.` constructs.
//
// Complement is scoped to ASCII: after flipping, bytes >= ClassSize remain
// unset, so a complemented class (e.g. \D) still never matches a non-ASCII
// byte — it is not "everything else" in an unbounded sense.
type CharClass struct {
	bits [2]uint64
}

// Add adds byte b to the class. b >= ClassSize is a no-op (out of alphabet).
func (c *CharClass) Add(b byte) {
	if b >= ClassSize {
		return
	}
	c.bits[b/64] |= 1 << (b % 64)
}

// AddRange adds every byte in [lo, hi] to the class. Bytes >= ClassSize in
// the range are clipped away.
func (c *CharClass) AddRange(lo, hi byte) {
	if hi >= ClassSize {
		hi = ClassSize - 1
	}
	for b := int(lo); b <= int(hi); b++ {
		c.Add(byte(b))
	}
}

// AddAll adds every byte in the ASCII range to the class.
func (c *CharClass) AddAll() {
	c.bits[0] = ^uint64(0)
	c.bits[1] = ^uint64(0)
}

// Contains reports whether b is a member of the class.
func (c CharClass) Contains(b byte) bool {
	if b >= ClassSize {
		return false
	}
	return c.bits[b/64]&(1<<(b%64)) != 0
}

// Complement flips membership for every ASCII byte. Bytes at or above
// ClassSize have no bit in this 128-slot representation, so they stay
// non-members after the flip.
func (c *CharClass) Complement() {
	c.bits[0] = ^c.bits[0]
	c.bits[1] = ^c.bits[1]
}

// IsEmpty reports whether the class contains no bytes.
func (c CharClass) IsEmpty() bool {
	return c.bits[0] == 0 && c.bits[1] == 0
}

// DigitClass returns a class matching ASCII digits (\d): 0-9.
func DigitClass() CharClass {
	var c CharClass
	c.AddRange('0', '9')
	return c
}

// NotDigitClass returns a class matching \D: any ASCII byte except 0-9.
func NotDigitClass() CharClass {
	c := DigitClass()
	c.Complement()
	return c
}

// WordClass returns a class matching \w: letters, digits, and underscore.
func WordClass() CharClass {
	var c CharClass
	c.AddRange('a', 'z')
	c.AddRange('A', 'Z')
	c.AddRange('0', '9')
	c.Add('_')
	return c
}

// NotWordClass returns a class matching \W: any ASCII byte not in \w.
func NotWordClass() CharClass {
	c := WordClass()
	c.Complement()
	return c
}

// SpaceClass returns a class matching \s: space, \t, \n, \r, \f, \v.
func SpaceClass() CharClass {
	var c CharClass
	for _, b := range []byte{' ', '\t', '\n', '\r', '\f', '\v'} {
		c.Add(b)
	}
	return c
}

// NotSpaceClass returns a class matching \S: any ASCII byte not in \s.
func NotSpaceClass() CharClass {
	c := SpaceClass()
	c.Complement()
	return c
}

// AnyExceptNewlineClass returns the class used for `.`: every ASCII byte
// except '\n'.
func AnyExceptNewlineClass() CharClass {
	var c CharClass
	c.AddAll()
	c.bits[0] &^= 1 << '\n'
	return c
}
