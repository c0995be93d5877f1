// Package readability provides a fallback implementation of
// leytext.Extractor built on go-readability. It is used when the page
// layout changes and the known content container selector stops matching.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/smendoza/leytext"
)

// Ensure Extractor implements leytext.Extractor at compile time.
var _ leytext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the normalized line sequence of
// the main content.
func (e *Extractor) Extract(rawHTML string) ([]string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, leytext.Errorf(leytext.EPARSE, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, leytext.Errorf(leytext.EPARSE, "readability extraction failed: %v", err)
	}

	lines := leytext.NormalizeLines(article.TextContent)
	if len(lines) == 0 {
		return nil, leytext.Errorf(leytext.EPARSE, "no text content found in HTML")
	}
	return lines, nil
}
