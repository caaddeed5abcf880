package formatter

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/mdurl/internal/urlparse"
)

const ellipsis = "…"

// a dot followed by a digit: likely an IP address, never shortened
var ipLikeHost = regexp.MustCompile(`\.\d`)

// Elide serializes u, shortening it to at most maxChars characters. The
// shortest non-empty result is "…", even when maxChars is below 1.
//
// Deep path segments go first, then leading subdomains, while the domain and
// the filename are kept as long as possible. Whatever is still too long is
// cut and terminated with "…". The query and fragment are given extra room
// during the first two stages because they are cheap to cut at the end.
func Elide(u urlparse.URL, maxChars int) string {
	budget := maxChars +
		utf8.RuneCountInString(urlparse.StringOrEmpty(u.Search)) +
		utf8.RuneCountInString(urlparse.StringOrEmpty(u.Hash)) - 2

	s := u.String()

	if runeLen(s) > budget {
		s, u = elidePath(u, s, budget)
	}

	if runeLen(s) > budget {
		s = elideHost(u, s, budget)
	}

	return truncate(s, maxChars)
}

// elidePath replaces directories in front of the last path segment with "…",
// one level at a time, until s fits in budget or only "/…/file" is left.
func elidePath(u urlparse.URL, s string, budget int) (string, urlparse.URL) {
	parts := strings.Split(urlparse.StringOrEmpty(u.Pathname), "/")
	if len(parts) < 3 {
		return s, u
	}

	last := parts[len(parts)-1]
	dirs := parts[1 : len(parts)-1]

	if last == "" {
		// "/a/b/" keeps "b/" as its filename
		last = dirs[len(dirs)-1] + "/"
		dirs = dirs[:len(dirs)-1]
	}

	for keep := len(dirs) - 1; keep >= 0; keep-- {
		segments := make([]string, 0, keep+3)
		segments = append(segments, parts[0])
		segments = append(segments, dirs[:keep]...)
		segments = append(segments, ellipsis, last)

		u.Pathname = urlparse.StringPtr(strings.Join(segments, "/"))
		s = u.String()

		if runeLen(s) <= budget {
			break
		}
	}

	return s, u
}

// elideHost drops leading labels from the hostname until s fits in budget.
func elideHost(u urlparse.URL, s string, budget int) string {
	host := urlparse.StringOrEmpty(u.Hostname)
	if host == "" || strings.Contains(host, ":") || ipLikeHost.MatchString(host) {
		return s
	}

	labels := strings.Split(host, ".")

	if len(labels) > 2 && strings.EqualFold(labels[0], "www") {
		labels = labels[1:]
		u.Hostname = urlparse.StringPtr(strings.Join(labels, "."))
		s = u.String()

		if runeLen(s) <= budget {
			return s
		}
	}

	elided := false

	for {
		n := len(labels)

		if n <= 2 {
			break
		}

		// keep "example.co.uk"
		if n == 3 && runeLen(labels[1]) < 3 {
			break
		}

		// keep "blog.example.org"
		if n == 3 && !elided && runeLen(labels[0]) <= 4 {
			break
		}

		labels = labels[1:]
		elided = true

		u.Hostname = urlparse.StringPtr(ellipsis + strings.Join(labels, "."))
		s = u.String()

		if runeLen(s) <= budget {
			break
		}
	}

	return s
}

// truncate cuts s so that, with the trailing "…", it is maxChars long.
func truncate(s string, maxChars int) string {
	if s == "" || runeLen(s) <= maxChars {
		return s
	}

	keep := maxChars - 1
	if keep < 0 {
		keep = 0
	}

	i := 0
	for n := 0; n < keep; n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}

	return s[:i] + ellipsis
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
