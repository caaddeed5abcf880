package asciiset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithAlphanumeric(t *testing.T) {
	set := New()
	for ch := byte('a'); ch <= 'z'; ch++ {
		set = set.Add(ch)
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		set = set.Add(ch)
	}
	for ch := byte('0'); ch <= '9'; ch++ {
		set = set.Add(ch)
	}

	assert.Equal(t, set, New().WithAlphanumeric())
	assert.True(t, set.Has('x'))
	assert.False(t, set.Has('!'))
}

func TestFromString(t *testing.T) {
	set := FromString("!@#$%^").WithAlphanumeric()

	expected := New().WithAlphanumeric()
	for _, ch := range []byte("!@#$%^") {
		expected = expected.Add(ch)
	}

	assert.Equal(t, expected, set)
	assert.True(t, set.Has('!'))
	assert.True(t, set.Has('^'))
	assert.False(t, set.Has('&'))
}

func TestAddRemove(t *testing.T) {
	assert.Equal(t, New(), New().Add(0x20).Remove(0x20))
	assert.Equal(t, New(), New().Add(0x7f).Remove(0x7f))

	set := FromString(" ~")
	assert.True(t, set.Has(' '))
	assert.True(t, set.Has('~'))
	assert.False(t, set.Remove('~').Has('~'))
	assert.True(t, set.Remove('~').Has(' '))
}

func TestBoundaries(t *testing.T) {
	set := New().Add(0).Add(63).Add(64).Add(127)

	for _, b := range []byte{0, 63, 64, 127} {
		assert.True(t, set.Has(b), "byte %d", b)
	}
	for _, b := range []byte{1, 62, 65, 126} {
		assert.False(t, set.Has(b), "byte %d", b)
	}
}

func TestHasNonASCII(t *testing.T) {
	set := New().AddRange(0, 0x7f)

	assert.False(t, set.Has(0x80))
	assert.False(t, set.Has(0xff))
}

func TestFromStringNonASCIIPanics(t *testing.T) {
	assert.Panics(t, func() { FromString("β") })
}

func TestAddHigherBytePanics(t *testing.T) {
	assert.Panics(t, func() { New().Add(0xfa) })
	assert.Panics(t, func() { New().Remove(0x80) })
}

func TestString(t *testing.T) {
	assert.Equal(t, `"#%"`, FromString("%#").String())
}
