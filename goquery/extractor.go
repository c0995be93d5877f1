// Package goquery provides a CSS-selector based implementation of
// leytext.Extractor. The official publication wraps the full law text in a
// single known container element, so a direct selector lookup is more
// reliable than generic readability heuristics for this page.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/smendoza/leytext"
	"golang.org/x/net/html"
)

// DefaultContentSelector matches the container holding the law text on the
// bacn.gov.py publication page.
const DefaultContentSelector = "div.entry-content"

// Ensure Extractor implements leytext.Extractor at compile time.
var _ leytext.Extractor = (*Extractor)(nil)

// Extractor locates the law content container and converts its text into
// normalized lines.
type Extractor struct {
	selector string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelector overrides the content container selector.
// Defaults to DefaultContentSelector.
func WithSelector(selector string) Option {
	return func(e *Extractor) {
		e.selector = selector
	}
}

// NewExtractor creates a new selector-based Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selector: DefaultContentSelector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the HTML, finds the content container, and returns the
// normalized line sequence. Returns EPARSE when the input is empty, cannot
// be parsed, or the container is absent.
func (e *Extractor) Extract(rawHTML string) ([]string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, leytext.Errorf(leytext.EPARSE, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, leytext.Errorf(leytext.EPARSE, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(e.selector).First()
	if sel.Length() == 0 {
		return nil, leytext.Errorf(leytext.EPARSE, "content container %q not found", e.selector)
	}

	var b strings.Builder
	for _, node := range sel.Nodes {
		writeText(&b, node)
	}

	lines := leytext.NormalizeLines(b.String())
	if len(lines) == 0 {
		return nil, leytext.Errorf(leytext.EPARSE, "content container %q is empty", e.selector)
	}
	return lines, nil
}

// blockElements are elements whose boundaries become line breaks, so the
// segmenter sees one heading or paragraph per line.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "ul": true, "ol": true, "blockquote": true, "pre": true,
}

// writeText walks the node tree appending text content, inserting newlines
// at block element boundaries.
func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		if blockElements[n.Data] {
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if n.Type == html.ElementNode && blockElements[n.Data] {
		b.WriteString("\n")
	}
}
