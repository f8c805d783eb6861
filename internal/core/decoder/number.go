package decoder

// Symbol is one decoded position: a digit 0-9 or Unknown
type Symbol int8

// Unknown marks a position whose glyph matched no canonical digit
const Unknown Symbol = -1

// Placeholder is how Unknown renders in output
const Placeholder = '?'

// Resolved reports whether s is a digit
func (s Symbol) Resolved() bool { return s >= 0 && s <= 9 }

// Digit returns the digit value and whether s is resolved
func (s Symbol) Digit() (int, bool) {
	if !s.Resolved() {
		return 0, false
	}
	return int(s), true
}

// Rune renders s as a single character
func (s Symbol) Rune() rune {
	if !s.Resolved() {
		return Placeholder
	}
	return rune('0' + s)
}

// Number is the decoded reading of one image
type Number [Positions]Symbol

// FromDigits builds a fully resolved Number
func FromDigits(ds [Positions]int) Number {
	var n Number
	for i, d := range ds {
		n[i] = Symbol(d)
	}
	return n
}

// String renders the reading with '?' for unknown positions
func (n Number) String() string {
	var b [Positions]byte
	for i, s := range n {
		b[i] = byte(s.Rune())
	}
	return string(b[:])
}

// Unknowns counts the unresolved positions
func (n Number) Unknowns() int {
	c := 0
	for _, s := range n {
		if !s.Resolved() {
			c++
		}
	}
	return c
}

// Digits returns the resolved digits in order; ok is false when any position is Unknown
func (n Number) Digits() ([]int, bool) {
	out := make([]int, 0, Positions)
	for _, s := range n {
		d, ok := s.Digit()
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}
