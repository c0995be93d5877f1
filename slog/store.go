package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/smendoza/leytext"
)

// Ensure LoggingStore implements leytext.BlobStore at compile time.
var _ leytext.BlobStore = (*LoggingStore)(nil)

// LoggingStore wraps a BlobStore with write/read logging.
type LoggingStore struct {
	next   leytext.BlobStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next leytext.BlobStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Write delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) Write(ctx context.Context, name string, data []byte) (string, error) {
	begin := time.Now()
	location, err := s.next.Write(ctx, name, data)
	if err != nil {
		s.logger.Error("blob write failed",
			"name", name,
			"bytes", len(data),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	s.logger.Info("blob written",
		"name", name,
		"bytes", len(data),
		"location", location,
		"duration", time.Since(begin),
	)
	return location, nil
}

// Read delegates to the wrapped store.
func (s *LoggingStore) Read(ctx context.Context, name string) ([]byte, error) {
	return s.next.Read(ctx, name)
}
