//go:build integration

package gcs_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/smendoza/leytext"
	"github.com/smendoza/leytext/gcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Integration_WriteRead(t *testing.T) {
	t.Parallel()

	bucket := os.Getenv("LEYTEXT_GCS_BUCKET")
	if bucket == "" {
		t.Skip("LEYTEXT_GCS_BUCKET not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := storage.NewClient(ctx)
	require.NoError(t, err)
	defer client.Close()

	prefix := "leytext-test/" + uuid.NewString()
	store := gcs.NewStore(client, bucket, gcs.WithPrefix(prefix))

	t.Cleanup(func() {
		_ = client.Bucket(bucket).Object(prefix + "/" + gcs.DefaultProcessedObject).Delete(context.Background())
	})

	content := []byte(`{"articulos":[]}`)

	loc, err := store.Write(ctx, leytext.BlobProcessed, content)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("gs://%s/%s/%s", bucket, prefix, gcs.DefaultProcessedObject), loc)

	got, err := store.Read(ctx, leytext.BlobProcessed)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestStore_Integration_ReadMissing(t *testing.T) {
	t.Parallel()

	bucket := os.Getenv("LEYTEXT_GCS_BUCKET")
	if bucket == "" {
		t.Skip("LEYTEXT_GCS_BUCKET not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := storage.NewClient(ctx)
	require.NoError(t, err)
	defer client.Close()

	store := gcs.NewStore(client, bucket, gcs.WithPrefix("leytext-test/"+uuid.NewString()))

	_, err = store.Read(ctx, leytext.BlobRaw)

	require.Error(t, err)
	assert.Equal(t, leytext.ESTORAGE, leytext.ErrorCode(err))
}
