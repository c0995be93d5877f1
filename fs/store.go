// Package fs provides local-filesystem blob storage for pipeline outputs.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/smendoza/leytext"
)

// Default filenames for the pipeline's logical blob names.
const (
	DefaultRawFilename       = "codigo_trabajo_py.html"
	DefaultProcessedFilename = "codigo_trabajo_articulos.json"
)

// Ensure Store implements leytext.BlobStore at compile time.
var _ leytext.BlobStore = (*Store)(nil)

// Store writes named blobs to a base directory. Writes are atomic: content
// goes to a temporary file first and is renamed into place, so a failed
// write never leaves a partial file at the final path.
type Store struct {
	baseDir string
	names   map[string]string
}

// Option configures a Store.
type Option func(*Store)

// WithBlobName overrides the filename used for a logical blob name.
func WithBlobName(logical, filename string) Option {
	return func(s *Store) {
		s.names[logical] = filename
	}
}

// NewStore creates a Store rooted at baseDir. The directory is created on
// first write.
func NewStore(baseDir string, opts ...Option) *Store {
	s := &Store{
		baseDir: baseDir,
		names: map[string]string{
			leytext.BlobRaw:       DefaultRawFilename,
			leytext.BlobProcessed: DefaultProcessedFilename,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// filename maps a logical blob name to its on-disk filename. Unknown
// logical names are used verbatim.
func (s *Store) filename(name string) string {
	if f, ok := s.names[name]; ok {
		return f
	}
	return name
}

// Write stores the blob and returns its absolute path.
func (s *Store) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", leytext.Errorf(leytext.ESTORAGE, "write %q canceled: %v", name, err)
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", leytext.Errorf(leytext.ESTORAGE, "creating directory %q: %v", s.baseDir, err)
	}

	finalPath := filepath.Join(s.baseDir, s.filename(name))
	tmpPath := finalPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", leytext.Errorf(leytext.ESTORAGE, "writing %q: %v", tmpPath, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", leytext.Errorf(leytext.ESTORAGE, "renaming %q into place: %v", tmpPath, err)
	}

	abs, err := filepath.Abs(finalPath)
	if err != nil {
		return finalPath, nil
	}
	return abs, nil
}

// Read returns the content of a previously written blob.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, leytext.Errorf(leytext.ESTORAGE, "read %q canceled: %v", name, err)
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, s.filename(name)))
	if err != nil {
		return nil, leytext.Errorf(leytext.ESTORAGE, "reading %q: %v", name, err)
	}
	return data, nil
}
