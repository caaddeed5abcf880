package linkextractor

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
  <link rel="stylesheet" href="/static/site.css">
  <script src="https://cdn.example.com/lib.js"></script>
</head>
<body>
  <a href="https://ουτοπία.δπθ.gr/ο">greek</a>
  <a href="   ">blank</a>
  <a>no href</a>
  <img src="http://example.com/a b.png">
  <form action="mailto:user@example.com"></form>
  <map><area href="/area"></map>
  <video><source src="movie.mp4"></video>
  <iframe src="//frame.example.org/embed"></iframe>
  <a href="https://ουτοπία.δπθ.gr/ο">again</a>
</body>
</html>`

func TestExtractor_Attributes(t *testing.T) {
	extractor := NewExtractor(nil, 50, zerolog.Nop())

	links, err := extractor.Extract([]byte(testPage))
	require.NoError(t, err)

	expected := []struct {
		tag       string
		attribute string
		raw       string
	}{
		{"link", "href", "/static/site.css"},
		{"script", "src", "https://cdn.example.com/lib.js"},
		{"a", "href", "https://ουτοπία.δπθ.gr/ο"},
		{"img", "src", "http://example.com/a b.png"},
		{"form", "action", "mailto:user@example.com"},
		{"area", "href", "/area"},
		{"source", "src", "movie.mp4"},
		{"iframe", "src", "//frame.example.org/embed"},
		{"a", "href", "https://ουτοπία.δπθ.gr/ο"},
	}

	require.Len(t, links, len(expected))
	for i, want := range expected {
		t.Run(want.raw, func(t *testing.T) {
			assert.Equal(t, want.tag, links[i].Tag)
			assert.Equal(t, want.attribute, links[i].Attribute)
			assert.Equal(t, want.raw, links[i].Raw)
		})
	}
}

func TestExtractor_FormatsEachLink(t *testing.T) {
	extractor := NewExtractor(nil, 50, zerolog.Nop())

	links, err := extractor.Extract([]byte(testPage))
	require.NoError(t, err)
	require.NotEmpty(t, links)

	byRaw := make(map[string]Link)
	for _, l := range links {
		byRaw[l.Raw] = l
	}

	greek := byRaw["https://ουτοπία.δπθ.gr/ο"]
	assert.Equal(t, "ουτοπία.δπθ.gr/ο", greek.Human)
	assert.Equal(t, "https://xn--kxae4bafwg.xn--pxaix.gr/%CE%BF", greek.Computer)

	img := byRaw["http://example.com/a b.png"]
	assert.Equal(t, "example.com/a b.png", img.Human)
	assert.Equal(t, "http://example.com/a%20b.png", img.Computer)

	assert.Equal(t, "/static/site.css", byRaw["/static/site.css"].Computer)
	assert.Equal(t, "mailto:user@example.com", byRaw["mailto:user@example.com"].Computer)
	assert.Equal(t, "user@example.com", byRaw["mailto:user@example.com"].Human)
}

func TestExtractor_MaxLength(t *testing.T) {
	extractor := NewExtractor(nil, 10, zerolog.Nop())

	links, err := extractor.Extract([]byte(testPage))
	require.NoError(t, err)

	for _, l := range links {
		assert.LessOrEqual(t, len([]rune(l.Human)), 10, l.Raw)
	}
}

func TestExtractor_InlineScript(t *testing.T) {
	page := `<html><body>
<a href="/first">first</a>
<script>
  fetch("/api/users?page=2");
</script>
<script>   </script>
<a href="/last">last</a>
</body></html>`

	extractor := NewExtractor(nil, 50, zerolog.Nop())
	links, err := extractor.Extract([]byte(page))
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(links), 3)
	assert.Equal(t, "/first", links[0].Raw)
	assert.Equal(t, "/last", links[len(links)-1].Raw)

	inline := links[1 : len(links)-1]
	var raws []string
	for _, l := range inline {
		assert.Equal(t, "script", l.Tag)
		assert.Equal(t, InlineAttribute, l.Attribute)
		raws = append(raws, l.Raw)
	}
	assert.Contains(t, raws, "/api/users?page=2")
}

func TestExtractor_EmptyDocument(t *testing.T) {
	extractor := NewExtractor(nil, 50, zerolog.Nop())

	links, err := extractor.ExtractFrom(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, links)
}
