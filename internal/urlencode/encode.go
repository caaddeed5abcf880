// Package urlencode implements percent-encoding and decoding that keeps user
// input intact in corner cases: already escaped sequences survive encoding,
// and meaningful delimiters can be kept escaped while decoding.
package urlencode

import (
	"strings"

	"github.com/aleister1102/mdurl/internal/asciiset"
)

const upperHex = "0123456789ABCDEF"

var (
	// ComputerEncodeSet lists the bytes left as-is when a URL is prepared for
	// machine consumption, in addition to alphanumerics.
	ComputerEncodeSet = asciiset.FromString(";/?:@&=+$,-_.!~*'()#")

	// HumanDecodeSet lists the bytes kept escaped when a URL is decoded for
	// display. '%' is in it so that "%2520" does not turn into a space.
	HumanDecodeSet = asciiset.FromString(";/?:@&=+$,#%")
)

// Encode percent-encodes every byte of s that is neither alphanumeric nor in
// exclude, using uppercase hex digits. With keepEscaped set, a '%' that
// already starts a valid "%XX" triple is copied through untouched.
func Encode(s string, exclude asciiset.AsciiSet, keepEscaped bool) string {
	keep := exclude.WithAlphanumeric()

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if keepEscaped && c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			sb.WriteString(s[i : i+3])
			i += 2
			continue
		}

		if keep.Has(c) {
			sb.WriteByte(c)
			continue
		}

		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&0xf])
	}

	return sb.String()
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}

	panic("urlencode: not a hex digit")
}
