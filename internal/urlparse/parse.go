// Package urlparse splits URL-like strings into their components without
// ever rejecting input. It is a lenient port of the classic node.js url
// parser with these differences:
//
//  1. No leading slash is added to paths: for "http://foo?bar" the pathname
//     is "", not "/".
//  2. Backslashes are not turned into slashes, so "http:\\example.org\" is a
//     relative path.
//  3. A trailing colon with no digits is part of the path: for
//     "http://example.org:foo" the pathname is ":foo".
//  4. Nothing is percent-encoded or decoded.
//  5. Derived properties (host, path, query) are not computed; they can be
//     built from the other fields.
package urlparse

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const whitespace = `\t\n\v\f\r\x{85}\p{Z}`

var (
	protocolPattern = regexp.MustCompile(`(?i)^[a-z0-9.+-]+:`)
	portPattern     = regexp.MustCompile(`:[0-9]*$`)
	hostPattern     = regexp.MustCompile(`^//[^@/]+@[^@/]+`)

	// relative paths with an optional query, e.g. "/foo/bar?baz"
	simplePathPattern = regexp.MustCompile(
		`^(//?[^/?` + whitespace + `]?[^?` + whitespace + `]*)(\?[^` + whitespace + `]*)?$`)

	hostnamePartPattern = regexp.MustCompile(`^[+a-z0-9A-Z_-]{0,63}$`)
	hostnamePartStart   = regexp.MustCompile(`^[+a-z0-9A-Z_-]{0,63}`)
)

const (
	// the first of these ends the authority section
	hostEndingChars = "/?#"

	// characters that can never appear in a hostname: RFC 2396 delimiters,
	// unwise characters, the XSS-prone quote, and URL structure characters
	nonHostChars = "<>\"` \r\n\t" + "{}|\\^`" + "'" + "%/?;#"

	hostnameMaxLen = 255
)

// protocols that never have a hostname
var hostlessProtocols = map[string]bool{
	"javascript":  true,
	"javascript:": true,
}

// protocols that always contain a // bit
var slashedProtocols = map[string]bool{
	"http":    true,
	"https":   true,
	"ftp":     true,
	"gopher":  true,
	"file":    true,
	"http:":   true,
	"https:":  true,
	"ftp:":    true,
	"gopher:": true,
	"file:":   true,
}

// Parse splits input into URL components. It never fails: text that cannot
// belong to a component ends up in the pathname.
//
// With slashesDenoteHost set, a leading "//" always starts a host, as
// browsers do when resolving relative references. Without it, simple
// relative paths like "//some_path" are returned as a bare pathname.
func Parse(input string, slashesDenoteHost bool) URL {
	var u URL

	// support "  http://foo.com  \n"
	src := strings.TrimSpace(input)
	rest := src

	if !slashesDenoteHost && !strings.Contains(input, "#") {
		if m := simplePathPattern.FindStringSubmatchIndex(rest); m != nil {
			u.Pathname = StringPtr(rest[m[2]:m[3]])
			if m[4] >= 0 {
				u.Search = StringPtr(rest[m[4]:m[5]])
			}
			return u
		}
	}

	if proto := protocolPattern.FindString(rest); proto != "" {
		u.Protocol = StringPtr(proto)
		rest = rest[len(proto):]
	}

	lowerProto := strings.ToLower(StringOrEmpty(u.Protocol))
	hostless := u.Protocol != nil && hostlessProtocols[lowerProto]

	// user@server is always a host, and "//foo/bar" resolves to host=foo
	// when slashes denote a host
	if slashesDenoteHost || u.Protocol != nil || hostPattern.MatchString(rest) {
		if strings.HasPrefix(rest, "//") && !hostless {
			rest = rest[2:]
			u.Slashes = true
		}
	}

	if !hostless && (u.Slashes || (u.Protocol != nil && !slashedProtocols[lowerProto])) {
		rest = u.parseHost(src, rest)
	}

	// chop off from the tail first
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		u.Hash = StringPtr(rest[i:])
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		u.Search = StringPtr(rest[i:])
		rest = rest[:i]
	}

	if rest != "" {
		u.Pathname = StringPtr(rest)
	}

	if u.Protocol != nil && slashedProtocols[lowerProto] &&
		u.Hostname != nil && *u.Hostname != "" && u.Pathname == nil {
		u.Pathname = StringPtr("")
	}

	return u
}

// parseHost pulls auth, hostname and port off the front of rest and returns
// what is left. rest must be a suffix of src.
//
// If there is an '@' in the authority, non-host characters are allowed to
// the left of the last '@', unless a host-ending character comes before it:
//
//	http://a@b@c/ => auth:a@b host:c
//	http://a@b?@c => auth:a host:b search:?@c
func (u *URL) parseHost(src, rest string) string {
	var atSign int
	if end := strings.IndexAny(rest, hostEndingChars); end >= 0 {
		atSign = strings.LastIndexByte(rest[:end], '@')
	} else {
		atSign = strings.LastIndexByte(rest, '@')
	}

	if atSign >= 0 {
		u.Auth = StringPtr(rest[:atSign])
		rest = rest[atSign+1:]
	}

	hostEnd := strings.IndexAny(rest, nonHostChars)
	if hostEnd < 0 {
		hostEnd = len(rest)
	}

	if strings.HasSuffix(rest[:hostEnd], ":") {
		hostEnd--
	}

	host := rest[:hostEnd]
	rest = rest[hostEnd:]
	hostStart := len(src) - len(rest) - len(host)

	if port := portPattern.FindString(host); port != "" {
		if port != ":" {
			u.Port = StringPtr(port[1:])
		}
		host = host[:len(host)-len(port)]
	}

	ipv6 := len(host) >= 2 && host[0] == '[' && host[len(host)-1] == ']'

	if !ipv6 {
		if valid, ok := validHostnamePrefix(host); !ok {
			// everything from the first bad label on, port included, is
			// parsed again as path
			host = host[:valid]
			rest = src[hostStart+valid:]
			u.Port = nil
		}
	}

	if utf8.RuneCountInString(host) > hostnameMaxLen {
		host = ""
		ipv6 = false
	}

	if ipv6 {
		host = host[1 : len(host)-1]
	}

	u.Hostname = StringPtr(host)

	return rest
}

// validHostnamePrefix checks host label by label. On the first invalid label
// it returns the length of the longest valid prefix of host and false.
func validHostnamePrefix(host string) (int, bool) {
	for start := 0; start <= len(host); {
		end := strings.IndexByte(host[start:], '.')
		if end < 0 {
			end = len(host)
		} else {
			end += start
		}

		part := host[start:end]
		if part != "" && !hostnamePartPattern.MatchString(part) &&
			// non-ASCII letters are fine, they are handled by IDNA later
			!hostnamePartPattern.MatchString(asciiPlaceholder(part)) {
			return start + len(hostnamePartStart.FindString(part)), false
		}

		start = end + 1
	}

	return len(host), true
}

func asciiPlaceholder(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 127 {
			return 'x'
		}
		return r
	}, s)
}
