// Package mdurl parses and formats URLs written by users, e.g. in markdown
// links. It never rejects input: malformed parts end up in the path and
// malformed escapes are left alone.
//
//	url := "https://www.reddit.com/r/programming/comments/vxttiq/comment/ifyqsqt/?utm_source=reddit"
//	mdurl.FormatURLForHumans(url, 30) // "www.reddit.com/r/…/ifyqsqt/?u…"
//	mdurl.FormatURLForComputers("https://ουτοπία.δπθ.gr/") // "https://xn--kxae4bafwg.xn--pxaix.gr/"
package mdurl

import (
	"github.com/aleister1102/mdurl/internal/asciiset"
	"github.com/aleister1102/mdurl/internal/formatter"
	"github.com/aleister1102/mdurl/internal/urlencode"
	"github.com/aleister1102/mdurl/internal/urlparse"
)

// URL is a parsed URL. Absent components are nil.
type URL = urlparse.URL

// AsciiSet is a set of ASCII bytes used to select what the percent codec
// leaves untouched.
type AsciiSet = asciiset.AsciiSet

// ParseURL splits input into its components. See urlparse.Parse.
func ParseURL(input string, slashesDenoteHost bool) URL {
	return urlparse.Parse(input, slashesDenoteHost)
}

// NewAsciiSet returns an empty set.
func NewAsciiSet() AsciiSet {
	return asciiset.New()
}

// AsciiSetFromString returns a set with every byte of s. It panics on
// non-ASCII input.
func AsciiSetFromString(s string) AsciiSet {
	return asciiset.FromString(s)
}

// PercentEncode escapes every byte of input that is neither alphanumeric nor
// in exclude.
func PercentEncode(input string, exclude AsciiSet, keepEscaped bool) string {
	return urlencode.Encode(input, exclude, keepEscaped)
}

// PercentDecode unescapes "%XX" sequences in input, except those encoding a
// byte in exclude.
func PercentDecode(input string, exclude AsciiSet) string {
	return urlencode.Decode(input, exclude)
}

// FormatURLForComputers returns input encoded for use in an href.
func FormatURLForComputers(input string) string {
	return formatter.FormatForComputers(input)
}

// FormatURLForHumans returns input decoded and shortened to at most
// maxLength characters.
func FormatURLForHumans(input string, maxLength int) string {
	return formatter.FormatForHumans(input, maxLength)
}

// Elide serializes u, shortening it to at most maxChars characters. The
// shortest non-empty result is "…", even when maxChars is below 1.
func Elide(u URL, maxChars int) string {
	return formatter.Elide(u, maxChars)
}

// StringPtr is a helper for building URL values.
func StringPtr(s string) *string {
	return urlparse.StringPtr(s)
}
