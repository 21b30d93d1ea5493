package crisco_test

import (
	"testing"

	"github.com/avernet/lexique"
	"github.com/avernet/lexique/crisco"
	"github.com/stretchr/testify/assert"
)

const synonymPage = `<html><body>
<div id="debut">
<i class="titre">3 synonymes</i>
<div class="liste">
<a href="/des/synonymes/accueillant">accueillant</a>,
<a href="/des/synonymes/amical">amical</a>,
<a href="/des/synonymes/cordial">cordial</a>
</div>
<!--Fin liste des synonymes-->
<i class="titre">0 antonymes</i>
<!--Fin liste des antonymes-->
</div>
</body></html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns tokens in document order", func(t *testing.T) {
		t.Parallel()

		e := crisco.NewExtractor()
		tokens := e.Extract(synonymPage, crisco.ListSynonyms)

		assert.Equal(t, []string{"accueillant", "amical", "cordial"}, tokens)
	})

	t.Run("strips trailing comma inside the anchor", func(t *testing.T) {
		t.Parallel()

		body := `<i class="t">2 synonymes</i>
<a href="/des/synonymes/doux">doux,</a> <a href="/des/synonymes/tendre">tendre</a>
<!--Fin liste des synonymes-->`

		e := crisco.NewExtractor()
		tokens := e.Extract(body, crisco.ListSynonyms)

		assert.Equal(t, []string{"doux", "tendre"}, tokens)
	})

	t.Run("preserves case and inner punctuation verbatim", func(t *testing.T) {
		t.Parallel()

		body := `<i class="t">2 synonymes</i>
<a href="#">Quai d'Orsay</a>, <a href="#">va-et-vient</a>
<!--Fin liste des synonymes-->`

		e := crisco.NewExtractor()
		tokens := e.Extract(body, crisco.ListSynonyms)

		assert.Equal(t, []string{"Quai d'Orsay", "va-et-vient"}, tokens)
	})

	t.Run("accepts the singular count form", func(t *testing.T) {
		t.Parallel()

		body := `<i class="t">1 antonyme</i>
<a href="#">froid</a>
<!--Fin liste des antonymes-->`

		e := crisco.NewExtractor()
		tokens := e.Extract(body, crisco.ListAntonyms)

		assert.Equal(t, []string{"froid"}, tokens)
	})

	t.Run("returns empty slice when start marker is missing", func(t *testing.T) {
		t.Parallel()

		e := crisco.NewExtractor()
		tokens := e.Extract("<html><body>nothing here</body></html>", crisco.ListSynonyms)

		assert.Empty(t, tokens)
	})

	t.Run("returns empty slice when end marker is missing", func(t *testing.T) {
		t.Parallel()

		body := `<i class="t">2 synonymes</i>
<a href="#">doux</a>, <a href="#">tendre</a>`

		e := crisco.NewExtractor()
		tokens := e.Extract(body, crisco.ListSynonyms)

		assert.Empty(t, tokens)
	})

	t.Run("empty count region yields empty slice", func(t *testing.T) {
		t.Parallel()

		e := crisco.NewExtractor()
		tokens := e.Extract(synonymPage, crisco.ListAntonyms)

		assert.Empty(t, tokens)
	})

	t.Run("ignores anchors outside the narrowed region", func(t *testing.T) {
		t.Parallel()

		body := `<a href="#">avant</a>
<i class="t">1 synonyme</i>
<a href="#">dedans</a>
<!--Fin liste des synonymes-->
<a href="#">apres</a>`

		e := crisco.NewExtractor()
		tokens := e.Extract(body, crisco.ListSynonyms)

		assert.Equal(t, []string{"dedans"}, tokens)
	})
}

func TestExtractor_ExtractRecord(t *testing.T) {
	t.Parallel()

	t.Run("combines both lists independently", func(t *testing.T) {
		t.Parallel()

		e := crisco.NewExtractor()
		record := e.ExtractRecord(synonymPage)

		assert.Equal(t, []string{"accueillant", "amical", "cordial"}, record.Synonyms)
		assert.Empty(t, record.Antonyms)
		assert.False(t, record.Empty())
	})

	t.Run("both lists absent yields an empty record", func(t *testing.T) {
		t.Parallel()

		e := crisco.NewExtractor()
		record := e.ExtractRecord("<html></html>")

		assert.True(t, record.Empty())
	})
}

func TestPageURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://crisco4.unicaen.fr/des/synonymes/chaleureux",
		crisco.PageURL(crisco.DefaultBaseURL, "chaleureux"))
	assert.Equal(t,
		"http://example.com/des/synonymes/%C3%A9t%C3%A9",
		crisco.PageURL("http://example.com/", "été"))
}

// Compile-time verification that Extractor implements lexique.Extractor
var _ lexique.Extractor = (*crisco.Extractor)(nil)
