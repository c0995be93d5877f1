package mock

import (
	"context"

	"github.com/smendoza/leytext"
)

var _ leytext.BlobStore = (*BlobStore)(nil)

// BlobStore is a mock implementation of leytext.BlobStore.
type BlobStore struct {
	WriteFn func(ctx context.Context, name string, data []byte) (string, error)
	ReadFn  func(ctx context.Context, name string) ([]byte, error)
}

func (s *BlobStore) Write(ctx context.Context, name string, data []byte) (string, error) {
	return s.WriteFn(ctx, name, data)
}

func (s *BlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	return s.ReadFn(ctx, name)
}

// MemStore is an in-memory BlobStore for tests that need real write/read
// round-trips rather than per-call hooks.
type MemStore struct {
	Blobs map[string][]byte
}

var _ leytext.BlobStore = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{Blobs: make(map[string][]byte)}
}

func (s *MemStore) Write(ctx context.Context, name string, data []byte) (string, error) {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.Blobs[name] = cp
	return "mem://" + name, nil
}

func (s *MemStore) Read(ctx context.Context, name string) ([]byte, error) {
	data, ok := s.Blobs[name]
	if !ok {
		return nil, leytext.Errorf(leytext.ESTORAGE, "blob %q not found", name)
	}
	return data, nil
}
