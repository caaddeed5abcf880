// Package idna converts hostnames between their Unicode and ASCII-compatible
// (punycode) forms.
package idna

import (
	"strings"

	"golang.org/x/net/idna"
)

// ACEPrefix marks a label in ASCII-compatible encoding.
const ACEPrefix = "xn--"

// Codec is the hostname conversion used by the formatters.
type Codec interface {
	// ToASCII encodes host for machine use. It fails on hosts that cannot be
	// encoded; callers are expected to keep the original in that case.
	ToASCII(host string) (string, error)

	// ToUnicode decodes host for display. It always returns a best-effort
	// result and reports whether any label could not be decoded.
	ToUnicode(host string) (string, bool)
}

// ProfileCodec implements Codec on top of an x/net/idna profile.
type ProfileCodec struct {
	profile *idna.Profile
}

// NewProfileCodec returns a UTS #46 nontransitional codec with lookup
// mapping. Hyphen placement and STD3 characters are not checked, so labels
// like "-foo" or "_srv" survive encoding as they do in browsers.
func NewProfileCodec() *ProfileCodec {
	return &ProfileCodec{
		profile: idna.New(
			idna.MapForLookup(),
			idna.BidiRule(),
			idna.Transitional(false),
			idna.StrictDomainName(false),
			idna.CheckHyphens(false),
		),
	}
}

func (c *ProfileCodec) ToASCII(host string) (string, error) {
	return c.profile.ToASCII(host)
}

func (c *ProfileCodec) ToUnicode(host string) (string, bool) {
	decoded, err := c.profile.ToUnicode(host)
	return decoded, err != nil
}

// HasACEPrefix reports whether host starts with the ASCII-compatible
// encoding prefix, ignoring case.
func HasACEPrefix(host string) bool {
	return len(host) >= len(ACEPrefix) && strings.EqualFold(host[:len(ACEPrefix)], ACEPrefix)
}

var defaultCodec Codec = NewProfileCodec()

// Default returns the shared codec used when none is configured.
func Default() Codec {
	return defaultCodec
}
