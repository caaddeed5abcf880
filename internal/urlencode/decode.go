package urlencode

import (
	"regexp"
	"unicode/utf8"

	"github.com/aleister1102/mdurl/internal/asciiset"
)

var escapedRunPattern = regexp.MustCompile(`(%[a-fA-F0-9]{2})+`)

const replacementChar = "\uFFFD"

// Decode replaces runs of "%XX" triples in s with the bytes they encode.
//
// A triple decoding to an ASCII byte that is in exclude is re-emitted as
// written. The decoded bytes of each run are read as UTF-8, and every
// malformed subsequence becomes a single U+FFFD covering its maximal subpart.
// Anything that is not a well-formed triple is left alone.
func Decode(s string, exclude asciiset.AsciiSet) string {
	return escapedRunPattern.ReplaceAllStringFunc(s, func(run string) string {
		buf := make([]byte, 0, len(run)/3)

		for i := 0; i+2 < len(run); i += 3 {
			hi, lo := run[i+1], run[i+2]
			decoded := unhex(hi)<<4 | unhex(lo)

			if decoded < 0x80 && exclude.Has(decoded) {
				buf = append(buf, '%', hi, lo)
				continue
			}

			buf = append(buf, decoded)
		}

		return string(appendLossyUTF8(make([]byte, 0, len(buf)), buf))
	})
}

// appendLossyUTF8 appends b to dst, replacing every maximal subpart of an
// ill-formed sequence with U+FFFD.
func appendLossyUTF8(dst, b []byte) []byte {
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			dst = append(dst, b[i])
			i++
			continue
		}

		r, size := utf8.DecodeRune(b[i:])
		if r != utf8.RuneError || size > 1 {
			dst = append(dst, b[i:i+size]...)
			i += size
			continue
		}

		dst = append(dst, replacementChar...)
		i += maximalSubpart(b[i:])
	}

	return dst
}

// maximalSubpart returns the length of the longest prefix of b that could
// still begin a well-formed UTF-8 sequence. b must start with an ill-formed
// sequence, so the result is always shorter than the sequence the lead byte
// announces. The byte ranges follow Table 3-7 of the Unicode standard.
func maximalSubpart(b []byte) int {
	lead := b[0]

	var need int
	lo, hi := byte(0x80), byte(0xbf)

	switch {
	case lead >= 0xc2 && lead <= 0xdf:
		need = 1
	case lead == 0xe0:
		need, lo = 2, 0xa0
	case lead == 0xed:
		need, hi = 2, 0x9f
	case lead >= 0xe1 && lead <= 0xef:
		need = 2
	case lead == 0xf0:
		need, lo = 3, 0x90
	case lead == 0xf4:
		need, hi = 3, 0x8f
	case lead >= 0xf1 && lead <= 0xf3:
		need = 3
	default:
		return 1
	}

	n := 1
	for ; n <= need && n < len(b); n++ {
		if b[n] < lo || b[n] > hi {
			break
		}

		lo, hi = 0x80, 0xbf
	}

	return n
}
