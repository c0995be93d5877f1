package leytext

import "context"

// Logical blob names used by the pipeline. Both storage backends map these
// to backend-specific locations, so the two modes stay interchangeable.
const (
	BlobRaw       = "raw"
	BlobProcessed = "processed"
)

// BlobStore persists named blobs durably.
//
// Write returns the final location identifier (filesystem path or object
// URI). Failures are reported with code ESTORAGE, or ETIMEOUT when the
// backend deadline was exceeded. Stores do not retry internally.
type BlobStore interface {
	Write(ctx context.Context, name string, data []byte) (location string, err error)
	Read(ctx context.Context, name string) ([]byte, error)
}
