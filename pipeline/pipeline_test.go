package pipeline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/smendoza/leytext"
	"github.com/smendoza/leytext/fs"
	"github.com/smendoza/leytext/mock"
	"github.com/smendoza/leytext/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// codeLines is the normalized line sequence the mock extractor hands to the
// segmenter: a metadata header, one book/title/chapter context and two
// articles with bodies long enough to clear the validator thresholds.
func codeLines() []string {
	return []string{
		"LEY N° 213",
		"QUE ESTABLECE EL CODIGO DEL TRABAJO",
		"Fecha de Promulgación: 29-10-1993",
		"Fecha de Publicación: 29-10-1993",
		"LIBRO PRIMERO",
		"DISPOSICIONES GENERALES",
		"TITULO PRIMERO",
		"DEL OBJETO Y APLICACION DEL CODIGO",
		"CAPITULO I",
		"DEL OBJETO Y APLICACION DEL CODIGO",
		"Artículo 1°.-",
		"Este Código tiene por objeto establecer normas para regular las relaciones entre los trabajadores y empleadores.",
		"Artículo 2°.-",
		"Quedan comprendidos en las disposiciones de este Código los trabajadores y empleadores de la República.",
	}
}

// newPipeline wires a pipeline over mocks that succeed with codeLines.
// Individual tests override the pieces they exercise.
func newPipeline(store leytext.BlobStore) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><div class=\"entry-content\">ley</div></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) ([]string, error) {
				return codeLines(), nil
			},
		},
		Store:         store,
		ExpectedTotal: 2,
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("runs every stage in order", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemStore()
		tracer := &mock.Tracer{}
		p := newPipeline(store)
		p.Tracer = tracer

		result, err := p.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, pipeline.StageDone, result.Stage)
		assert.Equal(t, 2, result.Articles)
		assert.Equal(t, []string{
			"fetch",
			"persist-raw",
			"normalize",
			"segment",
			"validate",
			"persist-processed",
		}, tracer.Started)
	})

	t.Run("persists both blobs and reports their locations", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemStore()
		p := newPipeline(store)

		result, err := p.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "mem://raw", result.RawLocation)
		assert.Equal(t, "mem://processed", result.ProcessedLocation)
		assert.NotZero(t, result.RawHash)
		assert.NotZero(t, result.ProcessedHash)
		assert.Contains(t, store.Blobs, leytext.BlobRaw)
		assert.Contains(t, store.Blobs, leytext.BlobProcessed)
	})

	t.Run("produces a passing quality report", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(mock.NewMemStore())

		result, err := p.Run(context.Background())

		require.NoError(t, err)
		require.NotNil(t, result.Report)
		assert.True(t, result.Report.Passed())
		assert.True(t, result.Report.Complete)
		assert.Empty(t, result.Report.Missing)
	})

	t.Run("a failing report does not fail the run", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(mock.NewMemStore())
		p.ExpectedTotal = 413

		result, err := p.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, pipeline.StageDone, result.Stage)
		require.NotNil(t, result.Report)
		assert.False(t, result.Report.Passed())
		assert.Len(t, result.Report.Missing, 411)
	})

	t.Run("skips validation when configured", func(t *testing.T) {
		t.Parallel()

		tracer := &mock.Tracer{}
		p := newPipeline(mock.NewMemStore())
		p.SkipValidation = true
		p.Tracer = tracer

		result, err := p.Run(context.Background())

		require.NoError(t, err)
		assert.Nil(t, result.Report)
		assert.NotContains(t, tracer.Started, "validate")
	})

	t.Run("uses the default URL when none is configured", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		p := newPipeline(mock.NewMemStore())
		p.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				gotURL = url
				return "<html></html>", nil
			},
		}

		_, err := p.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, pipeline.DefaultURL, gotURL)
	})

	t.Run("aborts on fetch failure without touching storage", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemStore()
		p := newPipeline(store)
		p.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", leytext.Errorf(leytext.ETIMEOUT, "fetching %s: deadline exceeded", url)
			},
		}

		_, err := p.Run(context.Background())

		require.Error(t, err)
		assert.Equal(t, leytext.ETIMEOUT, leytext.ErrorCode(err))
		assert.Empty(t, store.Blobs)
	})

	t.Run("keeps the raw checkpoint when extraction fails", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemStore()
		p := newPipeline(store)
		p.Extractor = &mock.Extractor{
			ExtractFn: func(html string) ([]string, error) {
				return nil, leytext.Errorf(leytext.EPARSE, "content container not found")
			},
		}

		_, err := p.Run(context.Background())

		require.Error(t, err)
		assert.Equal(t, leytext.EPARSE, leytext.ErrorCode(err))
		assert.Contains(t, store.Blobs, leytext.BlobRaw)
		assert.NotContains(t, store.Blobs, leytext.BlobProcessed)
	})

	t.Run("a failed raw write does not abort the run", func(t *testing.T) {
		t.Parallel()

		processed := false
		p := newPipeline(&mock.BlobStore{
			WriteFn: func(ctx context.Context, name string, data []byte) (string, error) {
				if name == leytext.BlobRaw {
					return "", leytext.Errorf(leytext.ESTORAGE, "disk full")
				}
				processed = true
				return "mem://" + name, nil
			},
		})

		result, err := p.Run(context.Background())

		require.NoError(t, err)
		assert.Empty(t, result.RawLocation)
		assert.Equal(t, "mem://processed", result.ProcessedLocation)
		assert.True(t, processed)
	})

	t.Run("never persists the processed blob on segmentation failure", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemStore()
		p := newPipeline(store)
		p.Extractor = &mock.Extractor{
			ExtractFn: func(html string) ([]string, error) {
				return []string{"texto sin marcadores de articulo"}, nil
			},
		}

		_, err := p.Run(context.Background())

		require.Error(t, err)
		assert.Equal(t, leytext.ESTRUCTURAL, leytext.ErrorCode(err))
		assert.NotContains(t, store.Blobs, leytext.BlobProcessed)
	})

	t.Run("honors cancellation at the next stage boundary", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		p := newPipeline(mock.NewMemStore())
		p.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				cancel()
				return "<html></html>", nil
			},
		}

		_, err := p.Run(ctx)

		require.Error(t, err)
		assert.Equal(t, leytext.EINTERNAL, leytext.ErrorCode(err))
		assert.Contains(t, leytext.ErrorMessage(err), "normalizing")
	})

	t.Run("fails fast on missing collaborators", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{}

		_, err := p.Run(context.Background())

		require.Error(t, err)
		assert.Equal(t, leytext.EINVALID, leytext.ErrorCode(err))
	})

	t.Run("produces identical output for identical input", func(t *testing.T) {
		t.Parallel()

		first := mock.NewMemStore()
		second := mock.NewMemStore()

		r1, err := newPipeline(first).Run(context.Background())
		require.NoError(t, err)
		r2, err := newPipeline(second).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, r1.RawHash, r2.RawHash)
		assert.Equal(t, r1.ProcessedHash, r2.ProcessedHash)
		assert.Equal(t, first.Blobs[leytext.BlobProcessed], second.Blobs[leytext.BlobProcessed])
	})

	t.Run("storage backends persist identical content", func(t *testing.T) {
		t.Parallel()

		mem := mock.NewMemStore()
		disk := fs.NewStore(t.TempDir())

		_, err := newPipeline(mem).Run(context.Background())
		require.NoError(t, err)
		_, err = newPipeline(disk).Run(context.Background())
		require.NoError(t, err)

		onDisk, err := disk.Read(context.Background(), leytext.BlobProcessed)
		require.NoError(t, err)
		assert.Equal(t, mem.Blobs[leytext.BlobProcessed], onDisk)
	})

	t.Run("the persisted document round-trips", func(t *testing.T) {
		t.Parallel()

		store := mock.NewMemStore()
		_, err := newPipeline(store).Run(context.Background())
		require.NoError(t, err)

		doc, err := leytext.DecodeJSON(store.Blobs[leytext.BlobProcessed])
		require.NoError(t, err)
		require.Len(t, doc.Articulos, 2)
		assert.Equal(t, "213", doc.Meta.NumeroLey)
		assert.Equal(t, 1, doc.Articulos[0].ArticuloNumero)
		assert.True(t, strings.HasPrefix(doc.Articulos[0].Texto, "este código tiene por objeto"))
	})
}
