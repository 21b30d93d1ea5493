package htmltomarkdown_test

import (
	"testing"

	"github.com/avernet/lexique"
	"github.com/avernet/lexique/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements lexique.Converter at compile time.
var _ lexique.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a definition fragment", func(t *testing.T) {
		t.Parallel()

		html := `<div class="tlf_parah"><p><b>MAISON</b>, subst. fém.</p>` +
			`<p><i>Bâtiment servant d'habitation.</i></p></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**MAISON**")
		assert.Contains(t, md, "*Bâtiment servant d'habitation.*")
	})

	t.Run("converts ordered sense lists", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li>Premier sens</li><li>Deuxième sens</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "1. Premier sens")
		assert.Contains(t, md, "2. Deuxième sens")
	})

	t.Run("converts morphology tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Singulier</th><th>Pluriel</th></tr>` +
			`<tr><td>cheval</td><td>chevaux</td></tr></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "cheval")
		assert.Contains(t, md, "chevaux")
		assert.Contains(t, md, "|")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, lexique.EINVALID, lexique.ErrorCode(err))
	})
}
