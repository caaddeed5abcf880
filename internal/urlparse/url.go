package urlparse

import "strings"

// URL is the structured form of a URL-like string as produced by Parse.
// A nil field means the component was absent from the input; an empty
// string means it was present but empty.
type URL struct {
	// Protocol is the scheme including the trailing colon, case preserved,
	// e.g. "HTTP:".
	Protocol *string `json:"protocol,omitempty" yaml:"protocol,omitempty"`

	// Slashes is true when "//" follows the protocol (or starts the input
	// when slashes denote a host).
	Slashes bool `json:"slashes" yaml:"slashes"`

	// Auth is the userinfo before '@', e.g. "user:pass".
	Auth *string `json:"auth,omitempty" yaml:"auth,omitempty"`

	// Hostname is the host without the port. IPv6 literals are stored
	// without brackets.
	Hostname *string `json:"hostname,omitempty" yaml:"hostname,omitempty"`

	// Port holds the port digits only, e.g. "8080".
	Port *string `json:"port,omitempty" yaml:"port,omitempty"`

	// Pathname is everything after the host up to '?' or '#'. No decoding
	// is performed.
	Pathname *string `json:"pathname,omitempty" yaml:"pathname,omitempty"`

	// Search is the query string including the leading '?'.
	Search *string `json:"search,omitempty" yaml:"search,omitempty"`

	// Hash is the fragment including the leading '#'.
	Hash *string `json:"hash,omitempty" yaml:"hash,omitempty"`
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// StringOrEmpty dereferences p, returning "" for nil.
func StringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// String concatenates the components in URL order. Nothing is escaped or
// validated, so String(Parse(s, false)) == s for any s that did not take the
// simple path shortcut, and malformed components come out as they went in.
func (u URL) String() string {
	var sb strings.Builder

	if u.Protocol != nil {
		sb.WriteString(*u.Protocol)
	}

	if u.Slashes {
		sb.WriteString("//")
	}

	if u.Auth != nil {
		sb.WriteString(*u.Auth)
		sb.WriteByte('@')
	}

	if u.Hostname != nil {
		if strings.Contains(*u.Hostname, ":") {
			// ipv6 address
			sb.WriteByte('[')
			sb.WriteString(*u.Hostname)
			sb.WriteByte(']')
		} else {
			sb.WriteString(*u.Hostname)
		}
	}

	if u.Port != nil {
		sb.WriteByte(':')
		sb.WriteString(*u.Port)
	}

	if u.Pathname != nil {
		sb.WriteString(*u.Pathname)
	}

	if u.Search != nil {
		sb.WriteString(*u.Search)
	}

	if u.Hash != nil {
		sb.WriteString(*u.Hash)
	}

	return sb.String()
}
