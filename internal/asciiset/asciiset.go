package asciiset

import "fmt"

// AsciiSet is a membership set over the 7-bit ASCII range.
// The low word covers 0x00..0x3f, the high word 0x40..0x7f.
//
// Methods have value receivers and return the updated set, so sets can be
// declared once at package level and derived from without copying by hand.
type AsciiSet [2]uint64

var alphanumeric = New().AddRange('0', '9').AddRange('A', 'Z').AddRange('a', 'z')

// New returns an empty set.
func New() AsciiSet {
	return AsciiSet{}
}

// FromString returns a set holding every byte of s.
// It panics if s contains anything outside 0x00..0x7f.
func FromString(s string) AsciiSet {
	x := New()
	for i := 0; i < len(s); i++ {
		x = x.Add(s[i])
	}

	return x
}

// Add returns x with b included. It panics if b is not ASCII.
func (x AsciiSet) Add(b byte) AsciiSet {
	mustASCII(b)

	if b < 64 {
		x[0] |= 1 << b
	} else {
		x[1] |= 1 << (b - 64)
	}

	return x
}

// AddRange returns x with every byte in [lo, hi] included.
func (x AsciiSet) AddRange(lo, hi byte) AsciiSet {
	for c := int(lo); c <= int(hi); c++ {
		x = x.Add(byte(c))
	}

	return x
}

// Remove returns x without b. It panics if b is not ASCII.
func (x AsciiSet) Remove(b byte) AsciiSet {
	mustASCII(b)

	if b < 64 {
		x[0] &^= 1 << b
	} else {
		x[1] &^= 1 << (b - 64)
	}

	return x
}

// Has reports whether b is in the set. Non-ASCII bytes are never members.
func (x AsciiSet) Has(b byte) bool {
	switch {
	case b < 64:
		return x[0]&(1<<b) != 0
	case b < 128:
		return x[1]&(1<<(b-64)) != 0
	default:
		return false
	}
}

// Or returns the union of x and y.
func (x AsciiSet) Or(y AsciiSet) AsciiSet {
	x[0] |= y[0]
	x[1] |= y[1]

	return x
}

// WithAlphanumeric returns x with [A-Za-z0-9] included.
func (x AsciiSet) WithAlphanumeric() AsciiSet {
	return x.Or(alphanumeric)
}

// String lists the members, mostly for test failure output.
func (x AsciiSet) String() string {
	var b []byte
	for c := 0; c < 128; c++ {
		if x.Has(byte(c)) {
			b = append(b, byte(c))
		}
	}

	return fmt.Sprintf("%q", b)
}

func mustASCII(b byte) {
	if b > 0x7f {
		panic(fmt.Sprintf("asciiset: byte 0x%02x is outside the ASCII range", b))
	}
}
