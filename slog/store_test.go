package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/smendoza/leytext"
	"github.com/smendoza/leytext/mock"
	leyslog "github.com/smendoza/leytext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore_Write(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the location", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BlobStore{
			WriteFn: func(ctx context.Context, name string, data []byte) (string, error) {
				return "/tmp/salida/" + name, nil
			},
		}

		store := leyslog.NewLoggingStore(inner, logger)
		location, err := store.Write(context.Background(), leytext.BlobProcessed, []byte("{}"))

		require.NoError(t, err)
		assert.Equal(t, "/tmp/salida/processed", location)
		output := buf.String()
		assert.Contains(t, output, "blob written")
		assert.Contains(t, output, "name=processed")
		assert.Contains(t, output, "bytes=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BlobStore{
			WriteFn: func(ctx context.Context, name string, data []byte) (string, error) {
				return "", leytext.Errorf(leytext.ESTORAGE, "disk full")
			},
		}

		store := leyslog.NewLoggingStore(inner, logger)
		_, err := store.Write(context.Background(), leytext.BlobRaw, []byte("x"))

		require.Error(t, err)
		assert.Equal(t, leytext.ESTORAGE, leytext.ErrorCode(err))
		assert.Contains(t, buf.String(), "blob write failed")
	})
}

func TestLoggingStore_Read(t *testing.T) {
	t.Parallel()

	t.Run("delegates to the wrapped store", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		inner := &mock.BlobStore{
			ReadFn: func(ctx context.Context, name string) ([]byte, error) {
				return []byte("contenido"), nil
			},
		}

		store := leyslog.NewLoggingStore(inner, logger)
		got, err := store.Read(context.Background(), leytext.BlobRaw)

		require.NoError(t, err)
		assert.Equal(t, []byte("contenido"), got)
	})
}
