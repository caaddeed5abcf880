// Package formatter renders user-supplied URLs in two directions: an escaped,
// ASCII-only form for machines (href attributes, HTTP requests) and a decoded,
// shortened form for people.
package formatter

import (
	"regexp"
	"strings"

	"github.com/aleister1102/mdurl/internal/idna"
	"github.com/aleister1102/mdurl/internal/urlencode"
	"github.com/aleister1102/mdurl/internal/urlparse"

	"github.com/rs/zerolog"
)

// protocols whose hostnames are safe to convert with IDNA, and that humans
// don't need to see
var recodeHostnameFor = regexp.MustCompile(`(?i)^(https?|mailto):$`)

// Formatter formats URLs using an IDNA codec. It holds no mutable state and
// is safe for concurrent use.
type Formatter struct {
	codec  idna.Codec
	logger zerolog.Logger
}

// NewFormatter creates a formatter. A nil codec selects the default one.
func NewFormatter(codec idna.Codec, logger zerolog.Logger) *Formatter {
	if codec == nil {
		codec = idna.Default()
	}

	return &Formatter{
		codec:  codec,
		logger: logger.With().Str("component", "Formatter").Logger(),
	}
}

var defaultFormatter = NewFormatter(nil, zerolog.Nop())

// FormatForComputers formats input with the default formatter.
func FormatForComputers(input string) string {
	return defaultFormatter.FormatForComputers(input)
}

// FormatForHumans formats input with the default formatter.
func FormatForHumans(input string, maxLength int) string {
	return defaultFormatter.FormatForHumans(input, maxLength)
}

// FormatForComputers returns input with a lowercase protocol, an ASCII
// hostname and every unsafe or non-ASCII character in auth, path, query and
// fragment percent-encoded. Existing escapes are kept.
//
//	FormatForComputers("https://ουτοπία.δπθ.gr/") == "https://xn--kxae4bafwg.xn--pxaix.gr/"
func (f *Formatter) FormatForComputers(input string) string {
	u := urlparse.Parse(input, true)

	if u.Protocol != nil {
		u.Protocol = urlparse.StringPtr(strings.ToLower(*u.Protocol))
	}

	if u.Protocol == nil || recodeHostnameFor.MatchString(*u.Protocol) {
		if host := urlparse.StringOrEmpty(u.Hostname); host != "" {
			ascii, err := f.codec.ToASCII(host)
			if err != nil {
				f.logger.Debug().Err(err).Str("hostname", host).Msg("IDNA encoding failed, keeping hostname")
			} else {
				u.Hostname = urlparse.StringPtr(ascii)
			}
		}
	}

	u.Auth = mapField(u.Auth, encodeComponent)
	u.Hash = mapField(u.Hash, encodeComponent)
	u.Search = mapField(u.Search, encodeComponent)
	u.Pathname = mapField(u.Pathname, encodeComponent)

	return u.String()
}

// FormatForHumans returns input decoded for reading and shortened to about
// maxLength characters. A shortened result ends in "…" and is at most
// maxLength characters, or exactly one character when maxLength is below 1.
//
//	FormatForHumans("https://www.google.com/foobar", 16) == "google.com/foob…"
func (f *Formatter) FormatForHumans(input string, maxLength int) string {
	u := urlparse.Parse(input, true)

	if u.Protocol == nil && !u.Slashes && u.Hostname == nil {
		// "example.org/foo" is most likely a domain, not a path
		if trimmed := strings.TrimSpace(input); trimmed != "" {
			u = urlparse.Parse("//"+trimmed, true)
		}
	}

	if host := urlparse.StringOrEmpty(u.Hostname); idna.HasACEPrefix(host) {
		decoded, hadErrors := f.codec.ToUnicode(host)
		if hadErrors {
			f.logger.Debug().Str("hostname", host).Msg("IDNA decoding had errors")
		}
		u.Hostname = urlparse.StringPtr(decoded)
	}

	u.Auth = mapField(u.Auth, decodeComponent)
	u.Hash = mapField(u.Hash, decodeComponent)
	u.Search = mapField(u.Search, decodeComponent)
	u.Pathname = mapField(u.Pathname, decodeComponent)

	if urlparse.StringOrEmpty(u.Pathname) == "/" && u.Search == nil && u.Hash == nil {
		u.Pathname = nil
	}

	switch {
	case u.Protocol != nil && recodeHostnameFor.MatchString(*u.Protocol):
		u.Protocol = nil
		u.Slashes = false
	case u.Protocol == nil && urlparse.StringOrEmpty(u.Hostname) != "":
		u.Slashes = false
	}

	return Elide(u, maxLength)
}

func encodeComponent(s string) string {
	return urlencode.Encode(s, urlencode.ComputerEncodeSet, true)
}

func decodeComponent(s string) string {
	return urlencode.Decode(s, urlencode.HumanDecodeSet)
}

func mapField(p *string, fn func(string) string) *string {
	if p == nil {
		return nil
	}
	return urlparse.StringPtr(fn(*p))
}
