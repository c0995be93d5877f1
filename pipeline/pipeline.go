// Package pipeline orchestrates one extraction run: fetch the law page,
// persist the raw HTML, normalize it into text lines, segment the lines
// into articles, validate the result, and persist the structured JSON.
package pipeline

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/smendoza/leytext"
)

// DefaultURL is the official publication page of Ley N° 213 (Código del
// Trabajo de Paraguay).
const DefaultURL = "https://www.bacn.gov.py/leyes-paraguayas/2608/ley-n-213-establece-el-codigo-del-trabajo"

// DefaultExpectedTotal is the number of articles in Ley N° 213.
const DefaultExpectedTotal = 413

// Stage identifies where a run currently is, or where it failed.
type Stage string

const (
	StageFetching    Stage = "fetching"
	StageNormalizing Stage = "normalizing"
	StageSegmenting  Stage = "segmenting"
	StageValidating  Stage = "validating"
	StagePersisting  Stage = "persisting"
	StageDone        Stage = "done"
)

// Pipeline sequences the extraction stages. Each run is single-threaded
// and independent: no state is shared between invocations. Stages execute
// strictly in order since each consumes the full output of the previous
// one.
type Pipeline struct {
	Fetcher   leytext.Fetcher
	Extractor leytext.Extractor
	Store     leytext.BlobStore
	Tracer    leytext.Tracer

	// URL of the source document. Defaults to DefaultURL.
	URL string

	// ExpectedTotal is the article count the validator checks against.
	// Defaults to DefaultExpectedTotal.
	ExpectedTotal int

	// SkipValidation omits the quality validation stage entirely.
	SkipValidation bool

	// StrictChapters makes a zero-article chapter a structural error.
	StrictChapters bool

	// Validator thresholds; zero values use the validator defaults.
	MinBodyLength  int
	MaxSymbolRatio float64
}

// Result summarizes a completed run.
type Result struct {
	Stage             Stage
	Articles          int
	Elapsed           time.Duration
	RawLocation       string
	ProcessedLocation string
	RawHash           uint64
	ProcessedHash     uint64

	// Report is nil when validation was skipped. A failing report does not
	// make the run fail; inspecting it is the caller's responsibility.
	Report *leytext.QualityReport
}

// Run executes the pipeline once. Any fatal error aborts the remaining
// stages and the processed JSON is never partially persisted. The raw HTML
// is persisted immediately after a successful fetch as a checkpoint; a
// failed raw write is recorded on its span but does not abort the run.
// Cancellation is honored at stage boundaries.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if err := p.validateConfig(); err != nil {
		return nil, err
	}

	tracer := p.Tracer
	if tracer == nil {
		tracer = leytext.NopTracer{}
	}

	url := p.URL
	if url == "" {
		url = DefaultURL
	}
	expected := p.ExpectedTotal
	if expected == 0 {
		expected = DefaultExpectedTotal
	}

	begin := time.Now()
	result := &Result{Stage: StageFetching}

	// Fetch.
	ctx, span := tracer.Start(ctx, "fetch")
	html, err := p.Fetcher.Fetch(ctx, url)
	span.SetAttr("url", url)
	span.SetAttr("bytes", len(html))
	span.End(err)
	if err != nil {
		return nil, err
	}
	result.RawHash = xxhash.Sum64String(html)

	// Raw checkpoint. Best effort: a re-run can reuse the raw HTML, but
	// losing it costs only a re-fetch.
	_, span = tracer.Start(ctx, "persist-raw")
	rawLoc, rawErr := p.Store.Write(ctx, leytext.BlobRaw, []byte(html))
	span.End(rawErr)
	if rawErr == nil {
		result.RawLocation = rawLoc
	}

	// Normalize.
	result.Stage = StageNormalizing
	if err := ctx.Err(); err != nil {
		return nil, canceled(result.Stage, err)
	}
	_, span = tracer.Start(ctx, "normalize")
	lines, err := p.Extractor.Extract(html)
	span.SetAttr("lines", len(lines))
	span.End(err)
	if err != nil {
		return nil, err
	}

	// Segment.
	result.Stage = StageSegmenting
	if err := ctx.Err(); err != nil {
		return nil, canceled(result.Stage, err)
	}
	_, span = tracer.Start(ctx, "segment")
	segmenter := leytext.Segmenter{StrictChapters: p.StrictChapters}
	doc, err := segmenter.Segment(lines)
	if doc != nil {
		span.SetAttr("articles", len(doc.Articulos))
	}
	span.End(err)
	if err != nil {
		return nil, err
	}
	result.Articles = len(doc.Articulos)

	// Validate, unless configured away.
	if !p.SkipValidation {
		result.Stage = StageValidating
		_, span = tracer.Start(ctx, "validate")
		validator := leytext.Validator{
			MinBodyLength:  p.MinBodyLength,
			MaxSymbolRatio: p.MaxSymbolRatio,
		}
		report, err := validator.Validate(doc, expected)
		if report != nil {
			span.SetAttr("status", report.Status)
			span.SetAttr("missing", len(report.Missing))
			span.SetAttr("duplicates", len(report.Duplicates))
		}
		span.End(err)
		if err != nil {
			return nil, err
		}
		result.Report = report
	}

	// Persist the processed document.
	result.Stage = StagePersisting
	if err := ctx.Err(); err != nil {
		return nil, canceled(result.Stage, err)
	}
	data, err := doc.EncodeJSON()
	if err != nil {
		return nil, err
	}
	_, span = tracer.Start(ctx, "persist-processed")
	loc, err := p.Store.Write(ctx, leytext.BlobProcessed, data)
	span.SetAttr("bytes", len(data))
	span.End(err)
	if err != nil {
		return nil, err
	}
	result.ProcessedLocation = loc
	result.ProcessedHash = xxhash.Sum64(data)

	result.Stage = StageDone
	result.Elapsed = time.Since(begin)
	return result, nil
}

// canceled wraps a stage-boundary cancellation into the domain error shape.
func canceled(stage Stage, err error) error {
	return leytext.Errorf(leytext.EINTERNAL, "run canceled before %s stage: %v", stage, err)
}

func (p *Pipeline) validateConfig() error {
	if p.Fetcher == nil {
		return leytext.Errorf(leytext.EINVALID, "pipeline requires a fetcher")
	}
	if p.Extractor == nil {
		return leytext.Errorf(leytext.EINVALID, "pipeline requires an extractor")
	}
	if p.Store == nil {
		return leytext.Errorf(leytext.EINVALID, "pipeline requires a blob store")
	}
	return nil
}
