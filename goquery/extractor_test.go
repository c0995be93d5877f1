package goquery_test

import (
	"testing"

	"github.com/smendoza/leytext"
	"github.com/smendoza/leytext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureHTML = `<!DOCTYPE html>
<html>
<head><title>Ley N° 213 - Código del Trabajo</title></head>
<body>
<nav><a href="/">Inicio</a> | <a href="/leyes">Leyes</a></nav>
<div class="entry-content">
<p>LEY N° 213</p>
<p>Fecha de Promulgación: 29-06-1993</p>
<p>LIBRO PRIMERO</p>
<p>CAPITULO I</p>
<p>Del objeto y aplicación del Código</p>
<p>Artículo 1°.-</p>
<p>Este Código tiene por objeto establecer normas.</p>
</div>
<footer>Biblioteca y Archivo Central del Congreso Nacional</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts lines from the content container", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		lines, err := e.Extract(fixtureHTML)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"LEY N° 213",
			"Fecha de Promulgación: 29-06-1993",
			"LIBRO PRIMERO",
			"CAPITULO I",
			"Del objeto y aplicación del Código",
			"Artículo 1°.-",
			"Este Código tiene por objeto establecer normas.",
		}, lines)
	})

	t.Run("excludes navigation and footer text", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		lines, err := e.Extract(fixtureHTML)
		require.NoError(t, err)

		for _, line := range lines {
			assert.NotContains(t, line, "Inicio")
			assert.NotContains(t, line, "Biblioteca")
		}
	})

	t.Run("splits on br tags", func(t *testing.T) {
		t.Parallel()

		html := `<div class="entry-content">Artículo 1°.-<br>cuerpo del artículo</div>`

		e := goquery.NewExtractor()
		lines, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, []string{"Artículo 1°.-", "cuerpo del artículo"}, lines)
	})

	t.Run("ignores script and style content", func(t *testing.T) {
		t.Parallel()

		html := `<div class="entry-content"><script>var x = 1;</script><p>texto legal</p><style>p{color:red}</style></div>`

		e := goquery.NewExtractor()
		lines, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, []string{"texto legal"}, lines)
	})

	t.Run("honours a custom selector", func(t *testing.T) {
		t.Parallel()

		html := `<main id="ley"><p>Artículo 1°.-</p></main>`

		e := goquery.NewExtractor(goquery.WithSelector("main#ley"))
		lines, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, []string{"Artículo 1°.-"}, lines)
	})

	t.Run("fails with parse error when container is missing", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract("<html><body><p>sin contenedor</p></body></html>")

		require.Error(t, err)
		assert.Equal(t, leytext.EPARSE, leytext.ErrorCode(err))
	})

	t.Run("fails with parse error on empty input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract("   ")

		require.Error(t, err)
		assert.Equal(t, leytext.EPARSE, leytext.ErrorCode(err))
	})

	t.Run("fails with parse error when container has no text", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract(`<div class="entry-content">   </div>`)

		require.Error(t, err)
		assert.Equal(t, leytext.EPARSE, leytext.ErrorCode(err))
	})
}
