package leytext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Heading and marker vocabulary of the source document. The law text uses
// Spanish ordinal words for books ("LIBRO PRIMERO"), ordinal words for
// titles and roman numerals for chapters ("CAPITULO IV"). Article markers
// appear as "Artículo 27°.-" with optional degree sign, period and hyphen.
var (
	libroPattern    = regexp.MustCompile(`(?i)^libro\s+([a-záéíóúñ]+)\s*$`)
	tituloPattern   = regexp.MustCompile(`(?i)^t[ií]tulo\s+([a-záéíóúñ]+)\s*$`)
	capituloPattern = regexp.MustCompile(`(?i)^cap[ií]tulo\s+([ivxlcdm]+)\s*$`)
	articuloPattern = regexp.MustCompile(`(?i)^art[íi]?t?culo\s+(\d+)\s*[°º]?\s*\.?\s*-\s*$`)

	leyPattern          = regexp.MustCompile(`(?i)ley\s*n[°º]?\s*(\d+)`)
	promulgacionPattern = regexp.MustCompile(`(?i)fecha\s+de\s+promulgaci[oó]n:?\s*(\d{2}-\d{2}-\d{4})`)
	publicacionPattern  = regexp.MustCompile(`(?i)fecha\s+de\s+publicaci[oó]n:?\s*(\d{2}-\d{2}-\d{4})`)
)

// segState tracks where the segmenter is in the document.
type segState int

const (
	stateHeader segState = iota
	stateSeekBook
	stateSeekTitle
	stateSeekChapter
	stateInArticle
)

// Segmenter splits the normalized line sequence into a Document. It scans
// the lines once, tracking the current book/title/chapter context, and
// emits one Article per article marker.
//
// The zero value is a usable segmenter. With StrictChapters set, a chapter
// that closes without a single article is a structural error; by default
// empty chapters are tolerated.
type Segmenter struct {
	StrictChapters bool
}

// segmentation holds the mutable scan state for one Segment call.
type segmentation struct {
	state segState

	headerLines []string

	libro        string
	libroNumero  int
	titulo       string
	capitulo     string
	capNumero    int
	capDesc      string
	capLine      int
	capArticles  int
	capOpen      bool
	pendingDesc  bool
	articleNum   int
	articleLines []string

	articles []Article
}

// Segment consumes the normalized line sequence and returns the parsed
// document. It fails with ESTRUCTURAL when an article marker carries an
// unparsable number, when no article markers exist at all, or (in strict
// mode) when a chapter closes empty. Blank lines never trigger transitions.
func (s *Segmenter) Segment(lines []string) (*Document, error) {
	seg := &segmentation{state: stateHeader}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := s.scanLine(seg, i+1, line); err != nil {
			return nil, err
		}
	}

	// End of input closes the last open article.
	seg.flushArticle()

	if s.StrictChapters && seg.capOpen && seg.capArticles == 0 {
		return nil, Errorf(ESTRUCTURAL, "line %d: chapter %q closed with no articles", seg.capLine, seg.capitulo)
	}

	if len(seg.articles) == 0 {
		return nil, Errorf(ESTRUCTURAL, "no article markers found in %d lines of input", len(lines))
	}

	doc := &Document{
		Meta:      extractMetadata(seg.headerLines),
		Articulos: seg.articles,
	}
	doc.SortArticles()
	return doc, nil
}

// scanLine dispatches one non-blank line. Heading patterns are checked
// before the article marker so that an ambiguous line resolves as a
// heading; headings cannot appear mid-article in this document's
// convention.
func (s *Segmenter) scanLine(seg *segmentation, lineNo int, line string) error {
	if m := libroPattern.FindStringSubmatch(line); m != nil {
		if err := s.closeChapter(seg); err != nil {
			return err
		}
		seg.libro = strings.ToLower("libro " + m[1])
		seg.libroNumero = OrdinalToInt(m[1])
		seg.endHeader()
		seg.state = stateSeekTitle
		return nil
	}

	if m := tituloPattern.FindStringSubmatch(line); m != nil {
		if err := s.closeChapter(seg); err != nil {
			return err
		}
		seg.titulo = strings.ToLower("titulo " + m[1])
		seg.endHeader()
		seg.state = stateSeekChapter
		return nil
	}

	if m := capituloPattern.FindStringSubmatch(line); m != nil {
		if err := s.closeChapter(seg); err != nil {
			return err
		}
		seg.capitulo = strings.ToLower("capitulo " + m[1])
		seg.capNumero = RomanToInt(m[1])
		seg.capDesc = ""
		seg.capLine = lineNo
		seg.capArticles = 0
		seg.capOpen = true
		seg.pendingDesc = true
		seg.endHeader()
		seg.state = stateSeekChapter
		return nil
	}

	if m := articuloPattern.FindStringSubmatch(line); m != nil {
		num, err := strconv.Atoi(m[1])
		if err != nil || num <= 0 {
			return Errorf(ESTRUCTURAL, "line %d: article marker %q: expected positive article number, found %q", lineNo, line, m[1])
		}
		seg.flushArticle()
		seg.articleNum = num
		seg.articleLines = nil
		seg.capArticles++
		seg.pendingDesc = false
		seg.endHeader()
		seg.state = stateInArticle
		return nil
	}

	switch {
	case seg.state == stateHeader:
		seg.headerLines = append(seg.headerLines, line)
	case seg.state == stateInArticle:
		seg.articleLines = append(seg.articleLines, line)
	case seg.pendingDesc:
		// First non-heading line after a chapter heading describes it.
		seg.capDesc = strings.ToLower(line)
		seg.pendingDesc = false
	}
	return nil
}

// closeChapter flushes the open article before a higher-level heading takes
// over, and enforces the strict empty-chapter policy.
func (s *Segmenter) closeChapter(seg *segmentation) error {
	seg.flushArticle()
	if s.StrictChapters && seg.capOpen && seg.capArticles == 0 {
		return Errorf(ESTRUCTURAL, "line %d: chapter %q closed with no articles", seg.capLine, seg.capitulo)
	}
	return nil
}

// endHeader transitions out of the metadata block the first time any
// structural heading or marker is seen.
func (seg *segmentation) endHeader() {
	if seg.state == stateHeader {
		seg.state = stateSeekBook
	}
}

// flushArticle emits the article currently being accumulated, if any.
// Body lines are joined with a single space to preserve word boundaries.
func (seg *segmentation) flushArticle() {
	if seg.state != stateInArticle {
		return
	}
	body := strings.ToLower(strings.TrimSpace(strings.Join(seg.articleLines, " ")))
	seg.articles = append(seg.articles, Article{
		ArticuloNumero:      seg.articleNum,
		Libro:               seg.libro,
		LibroNumero:         seg.libroNumero,
		Titulo:              seg.titulo,
		Capitulo:            seg.capitulo,
		CapituloNumero:      seg.capNumero,
		CapituloDescripcion: seg.capDesc,
		Texto:               body,
	})
	seg.articleNum = 0
	seg.articleLines = nil
	seg.state = stateSeekChapter
}

// extractMetadata pulls the law number and dates out of the header block
// (every line before the first structural heading).
func extractMetadata(headerLines []string) Metadata {
	header := strings.Join(headerLines, " ")

	var meta Metadata
	if m := leyPattern.FindStringSubmatch(header); m != nil {
		meta.NumeroLey = m[1]
	}
	if m := promulgacionPattern.FindStringSubmatch(header); m != nil {
		meta.FechaPromulgacion = m[1]
	}
	if m := publicacionPattern.FindStringSubmatch(header); m != nil {
		meta.FechaPublicacion = m[1]
	}
	return meta
}

// String implements fmt.Stringer for diagnostics.
func (s segState) String() string {
	switch s {
	case stateHeader:
		return "header"
	case stateSeekBook:
		return "seek-book"
	case stateSeekTitle:
		return "seek-title"
	case stateSeekChapter:
		return "seek-chapter"
	case stateInArticle:
		return "in-article"
	default:
		return fmt.Sprintf("segState(%d)", int(s))
	}
}
