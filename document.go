package leytext

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Metadata holds the identifying header fields of the law, extracted once
// per run from the document header block.
type Metadata struct {
	NumeroLey         string `json:"numero_ley"`
	FechaPromulgacion string `json:"fecha_promulgacion"`
	FechaPublicacion  string `json:"fecha_publicacion"`
}

// Article is the atomic unit of the legal text. Each article carries the
// book/title/chapter context it appeared under and its full body text.
type Article struct {
	ArticuloNumero      int    `json:"articulo_numero"`
	Libro               string `json:"libro"`
	LibroNumero         int    `json:"libro_numero"`
	Titulo              string `json:"titulo"`
	Capitulo            string `json:"capitulo"`
	CapituloNumero      int    `json:"capitulo_numero"`
	CapituloDescripcion string `json:"capitulo_descripcion"`
	Texto               string `json:"articulo"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.ArticuloNumero <= 0 {
		return Errorf(EINVALID, "article number must be positive, got %d", a.ArticuloNumero)
	}
	if a.Texto == "" {
		return Errorf(EINVALID, "article %d has empty body text", a.ArticuloNumero)
	}
	return nil
}

// Document is the aggregate produced by one pipeline run: the law metadata
// plus all articles in ascending article-number order.
type Document struct {
	Meta      Metadata  `json:"meta"`
	Articulos []Article `json:"articulos"`
}

// SortArticles orders the articles by ascending article number.
// Insertion order is irrelevant; serialized output is always sorted.
func (d *Document) SortArticles() {
	sort.Slice(d.Articulos, func(i, j int) bool {
		return d.Articulos[i].ArticuloNumero < d.Articulos[j].ArticuloNumero
	})
}

// EncodeJSON serializes the document to the persisted JSON shape:
// two-space indentation, UTF-8 kept as-is (no HTML escaping). The output
// is deterministic for a given document.
func (d *Document) EncodeJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, Errorf(EINTERNAL, "encoding document: %v", err)
	}
	return buf.Bytes(), nil
}

// DecodeJSON parses a previously persisted document.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Errorf(EPARSE, "decoding document: %v", err)
	}
	return &doc, nil
}
