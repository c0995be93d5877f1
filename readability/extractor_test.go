package readability_test

import (
	"strings"
	"testing"

	"github.com/smendoza/leytext"
	"github.com/smendoza/leytext/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts text lines from an article page", func(t *testing.T) {
		t.Parallel()

		var body strings.Builder
		body.WriteString(`<html><head><title>Ley N° 213</title></head><body><article>`)
		body.WriteString("<p>LEY N° 213 QUE ESTABLECE EL CODIGO DEL TRABAJO DE LA REPUBLICA DEL PARAGUAY.</p>")
		body.WriteString("<p>Artículo 1°.- Este Código tiene por objeto establecer normas para regular las relaciones entre los trabajadores y empleadores, concernientes a la prestación subordinada y retribuida de la actividad laboral.</p>")
		body.WriteString("<p>Artículo 2°.- Quedan comprendidos en las disposiciones de este Código los trabajadores manuales e intelectuales y los empleadores, cualesquiera que sean sus profesiones.</p>")
		body.WriteString(`</article></body></html>`)

		e := readability.NewExtractor()
		lines, err := e.Extract(body.String())
		require.NoError(t, err)

		require.NotEmpty(t, lines)
		joined := strings.Join(lines, "\n")
		assert.Contains(t, joined, "Este Código tiene por objeto")
		assert.Contains(t, joined, "Quedan comprendidos")
	})

	t.Run("fails with parse error on empty input", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		_, err := e.Extract("")

		require.Error(t, err)
		assert.Equal(t, leytext.EPARSE, leytext.ErrorCode(err))
	})
}
