// Package linkextractor lists the URLs referenced by an HTML document and
// formats each of them for display and for machines.
package linkextractor

import (
	"bytes"
	"io"
	"strings"

	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/aleister1102/mdurl/internal/formatter"

	"github.com/BishopFox/jsluice"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// InlineAttribute marks links found inside a <script> body
const InlineAttribute = "inline"

// Link is one URL reference found in a document
type Link struct {
	Tag       string `json:"tag" yaml:"tag"`
	Attribute string `json:"attribute" yaml:"attribute"`
	Raw       string `json:"raw" yaml:"raw"`
	Human     string `json:"human" yaml:"human"`
	Computer  string `json:"computer" yaml:"computer"`
}

// linkAttribute defines the mapping between HTML tags and their link attributes
type linkAttribute struct {
	Tag       string
	Attribute string
}

func defaultLinkAttributes() []linkAttribute {
	return []linkAttribute{
		{"a", "href"},
		{"link", "href"},
		{"img", "src"},
		{"script", "src"},
		{"iframe", "src"},
		{"form", "action"},
		{"area", "href"},
		{"source", "src"},
	}
}

// Extractor handles extraction of links from HTML content
type Extractor struct {
	formatter  *formatter.Formatter
	maxLength  int
	attributes map[string]string
	selector   string
	logger     zerolog.Logger
}

// NewExtractor creates an extractor that renders human forms with at most
// maxLength characters. A nil formatter selects the default one.
func NewExtractor(f *formatter.Formatter, maxLength int, logger zerolog.Logger) *Extractor {
	logger = logger.With().Str("component", "LinkExtractor").Logger()
	if f == nil {
		f = formatter.NewFormatter(nil, logger)
	}

	attributes := make(map[string]string)
	selectors := make([]string, 0, len(defaultLinkAttributes())+1)
	for _, la := range defaultLinkAttributes() {
		attributes[la.Tag] = la.Attribute
		selectors = append(selectors, la.Tag+"["+la.Attribute+"]")
	}
	// inline scripts have no src but still need visiting
	selectors = append(selectors, "script:not([src])")

	return &Extractor{
		formatter:  f,
		maxLength:  maxLength,
		attributes: attributes,
		selector:   strings.Join(selectors, ", "),
		logger:     logger,
	}
}

// Extract returns the links of htmlContent in document order. Duplicates are
// kept and blank attribute values are skipped.
func (e *Extractor) Extract(htmlContent []byte) ([]Link, error) {
	return e.ExtractFrom(bytes.NewReader(htmlContent))
}

// ExtractFrom is Extract over a reader
func (e *Extractor) ExtractFrom(r io.Reader) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse HTML content")
	}

	links := make([]Link, 0, 50)
	doc.Find(e.selector).Each(func(_ int, s *goquery.Selection) {
		tagName := goquery.NodeName(s)

		if tagName == "script" {
			if _, hasSrc := s.Attr("src"); !hasSrc {
				links = append(links, e.extractInlineScript(s.Text())...)
				return
			}
		}

		attrName, ok := e.attributes[tagName]
		if !ok {
			return
		}

		value, exists := s.Attr(attrName)
		if !exists || strings.TrimSpace(value) == "" {
			return
		}

		links = append(links, e.newLink(tagName, attrName, value))
	})

	e.logger.Debug().Int("link_count", len(links)).Msg("Extracted links from HTML")
	return links, nil
}

// extractInlineScript collects URL literals from a script body with jsluice
func (e *Extractor) extractInlineScript(body string) []Link {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	var links []Link
	for _, found := range jsluice.NewAnalyzer([]byte(body)).GetURLs() {
		if strings.TrimSpace(found.URL) == "" {
			continue
		}
		e.logger.Debug().Str("url", found.URL).Str("type", found.Type).Msg("Found URL in inline script")
		links = append(links, e.newLink("script", InlineAttribute, found.URL))
	}
	return links
}

func (e *Extractor) newLink(tag, attribute, raw string) Link {
	return Link{
		Tag:       tag,
		Attribute: attribute,
		Raw:       raw,
		Human:     e.formatter.FormatForHumans(raw, e.maxLength),
		Computer:  e.formatter.FormatForComputers(raw),
	}
}
