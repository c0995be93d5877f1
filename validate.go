package leytext

import (
	"sort"
	"unicode"
)

// Default thresholds for the content-quality heuristics.
const (
	DefaultMinBodyLength  = 20
	DefaultMaxSymbolRatio = 0.30
)

// Validator checks a parsed document against structural and completeness
// invariants and produces a QualityReport. Data-quality problems are always
// recorded as findings, never raised; the only error case is a document
// with no articles at all.
//
// The zero value uses the default thresholds.
type Validator struct {
	// MinBodyLength flags articles whose body is shorter than this many
	// bytes. Zero means DefaultMinBodyLength.
	MinBodyLength int

	// MaxSymbolRatio flags articles whose share of non-alphanumeric,
	// non-space characters exceeds this ratio. Zero means
	// DefaultMaxSymbolRatio.
	MaxSymbolRatio float64
}

// Validate runs all checks against the document and the expected contiguous
// article range 1..expectedTotal. Checks run independently; no check aborts
// the next. Returns EINVALID only when the document has an empty article
// list, since that means segmentation produced nothing to validate.
func (v *Validator) Validate(doc *Document, expectedTotal int) (*QualityReport, error) {
	if doc == nil || len(doc.Articulos) == 0 {
		return nil, Errorf(EINVALID, "document has no articles to validate")
	}

	minLen := v.MinBodyLength
	if minLen == 0 {
		minLen = DefaultMinBodyLength
	}
	maxRatio := v.MaxSymbolRatio
	if maxRatio == 0 {
		maxRatio = DefaultMaxSymbolRatio
	}

	report := &QualityReport{
		StructureOK: true,
		Complete:    true,
		Expected:    expectedTotal,
		Found:       len(doc.Articulos),
	}

	// Check 1: structural validity of every article.
	for _, a := range doc.Articulos {
		if a.ArticuloNumero <= 0 {
			report.StructureOK = false
			report.addFinding("article with non-positive number %d", a.ArticuloNumero)
		}
		if a.CapituloDescripcion == "" {
			report.StructureOK = false
			report.addFinding("article %d: empty chapter description", a.ArticuloNumero)
		}
		if a.Texto == "" {
			report.StructureOK = false
			report.addFinding("article %d: empty body text", a.ArticuloNumero)
		}
	}

	// Check 2: completeness of the numbered range.
	counts := make(map[int]int, len(doc.Articulos))
	for _, a := range doc.Articulos {
		counts[a.ArticuloNumero]++
	}
	for n := 1; n <= expectedTotal; n++ {
		if counts[n] == 0 {
			report.Missing = append(report.Missing, n)
		}
	}
	for n, c := range counts {
		if c > 1 {
			report.Duplicates = append(report.Duplicates, n)
		}
	}
	sort.Ints(report.Duplicates)
	if len(report.Missing) > 0 {
		report.Complete = false
		report.addFinding("%d article numbers missing from range 1..%d", len(report.Missing), expectedTotal)
	}
	if len(report.Duplicates) > 0 {
		report.Complete = false
		report.addFinding("%d article numbers duplicated", len(report.Duplicates))
	}

	// Check 3: content-quality heuristics. Advisory only.
	for _, a := range doc.Articulos {
		if len(a.Texto) < minLen {
			report.ContentFlags = append(report.ContentFlags, ContentFlag{
				ArticuloNumero: a.ArticuloNumero,
				BodyLength:     len(a.Texto),
				Reason:         "body below minimum length",
			})
			continue
		}
		if ratio := symbolRatio(a.Texto); ratio > maxRatio {
			report.ContentFlags = append(report.ContentFlags, ContentFlag{
				ArticuloNumero: a.ArticuloNumero,
				BodyLength:     len(a.Texto),
				SymbolRatio:    ratio,
				Reason:         "excessive non-alphanumeric characters",
			})
		}
	}

	if report.StructureOK && report.Complete {
		report.Status = StatusPass
	} else {
		report.Status = StatusFail
	}
	return report, nil
}

// symbolRatio returns the share of characters that are neither letters,
// digits nor whitespace. High values signal extraction corruption.
func symbolRatio(s string) float64 {
	if s == "" {
		return 0
	}
	total, symbols := 0, 0
	for _, r := range s {
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			symbols++
		}
	}
	return float64(symbols) / float64(total)
}
