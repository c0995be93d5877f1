package mock

import "github.com/smendoza/leytext"

var _ leytext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of leytext.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]string, error)
}

func (e *Extractor) Extract(html string) ([]string, error) {
	return e.ExtractFn(html)
}
