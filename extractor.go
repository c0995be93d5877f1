package leytext

// Extractor strips HTML markup and yields normalized text lines.
//
// The returned slice preserves document order; the segmenter scans it
// sequentially and relies on line-level ordering. Lines are Unicode
// NFC-normalized with collapsed whitespace, and blank lines are dropped.
type Extractor interface {
	// Extract processes raw HTML and returns the normalized line sequence.
	// Returns EPARSE if the input is empty or the law content cannot be
	// located in the markup.
	Extract(html string) ([]string, error)
}
