// Package gcs provides Google Cloud Storage blob storage for pipeline
// outputs, mirroring the local fs.Store behind the same interface.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"cloud.google.com/go/storage"
	"github.com/smendoza/leytext"
)

// Default object names for the pipeline's logical blob names.
const (
	DefaultRawObject       = "codigo_trabajo_py.html"
	DefaultProcessedObject = "codigo_trabajo_articulos.json"
)

// DefaultWriteTimeout bounds a single object upload.
const DefaultWriteTimeout = 60 * time.Second

// contentTypes maps logical blob names to the Content-Type set on upload.
var contentTypes = map[string]string{
	leytext.BlobRaw:       "text/html; charset=utf-8",
	leytext.BlobProcessed: "application/json",
}

// Ensure Store implements leytext.BlobStore at compile time.
var _ leytext.BlobStore = (*Store)(nil)

// Store writes named blobs to a GCS bucket under an optional prefix.
type Store struct {
	client  *storage.Client
	bucket  string
	prefix  string
	timeout time.Duration
	names   map[string]string
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix places all objects under the given key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTimeout sets the per-operation timeout.
// Defaults to DefaultWriteTimeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.timeout = d
	}
}

// WithBlobName overrides the object name used for a logical blob name.
func WithBlobName(logical, object string) Option {
	return func(s *Store) {
		s.names[logical] = object
	}
}

// NewStore creates a Store over an existing GCS client. Credentials and
// client lifetime are the caller's concern.
func NewStore(client *storage.Client, bucket string, opts ...Option) *Store {
	s := &Store{
		client:  client,
		bucket:  bucket,
		timeout: DefaultWriteTimeout,
		names: map[string]string{
			leytext.BlobRaw:       DefaultRawObject,
			leytext.BlobProcessed: DefaultProcessedObject,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) objectName(name string) string {
	n, ok := s.names[name]
	if !ok {
		n = name
	}
	if s.prefix == "" {
		return n
	}
	return path.Join(s.prefix, n)
}

// Write uploads the blob and returns its gs:// URI.
func (s *Store) Write(ctx context.Context, name string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	object := s.objectName(name)
	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	if ct, ok := contentTypes[name]; ok {
		w.ContentType = ct
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", storageError("uploading", object, err)
	}
	if err := w.Close(); err != nil {
		return "", storageError("uploading", object, err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, object), nil
}

// Read downloads the content of a previously written blob.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	object := s.objectName(name)
	r, err := s.client.Bucket(s.bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, storageError("opening", object, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, storageError("downloading", object, err)
	}
	return data, nil
}

// storageError classifies a GCS failure: deadline expiry becomes ETIMEOUT
// so callers can retry it, everything else is ESTORAGE.
func storageError(verb, object string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return leytext.Errorf(leytext.ETIMEOUT, "%s gs object %q: %v", verb, object, err)
	}
	return leytext.Errorf(leytext.ESTORAGE, "%s gs object %q: %v", verb, object, err)
}
