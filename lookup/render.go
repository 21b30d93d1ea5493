package lookup

import (
	"strings"
	"unicode"

	"github.com/avernet/lexique"
)

// User-facing strings are French, matching the remote sources.
const (
	synonymHeading  = "* Synonymes"
	antonymHeading  = "* Antonymes"
	noResult        = "Aucun résultat"
	emptySection    = "(aucun résultat)"
	definitionBreak = "\n\n---\n\n"
)

// TokenSpan locates one selectable token in rendered view content.
// Offsets are rune positions; End is exclusive.
type TokenSpan struct {
	Start int
	End   int
	Token string
}

// render projects a pipeline result into displayable text plus the
// spans of its selectable tokens. Definition results have no
// selectable tokens.
func render(res *lexique.Result) (string, []TokenSpan) {
	switch res.Kind {
	case lexique.KindSynonym:
		return renderSynonyms(res.Record)
	case lexique.KindDefinition:
		return strings.Join(res.Definitions, definitionBreak), nil
	case lexique.KindConjugation:
		return res.Table, tableSpans(res.Table)
	}
	return "", nil
}

// renderSynonyms lays out the two headed sections, one token per line.
// A section without items shows a placeholder; when both lists are
// empty a single no-result line replaces the sections entirely, so the
// view never presents two bare headers.
func renderSynonyms(record *lexique.SynonymRecord) (string, []TokenSpan) {
	if record.Empty() {
		return noResult, nil
	}

	var b builder
	b.line(synonymHeading)
	b.blank()
	b.section(record.Synonyms)
	b.blank()
	b.line(antonymHeading)
	b.blank()
	b.section(record.Antonyms)
	return b.text.String(), b.tokens
}

// builder accumulates rendered lines while tracking rune offsets for
// token spans.
type builder struct {
	text   strings.Builder
	offset int
	tokens []TokenSpan
}

func (b *builder) line(s string) {
	b.text.WriteString(s)
	b.text.WriteByte('\n')
	b.offset += len([]rune(s)) + 1
}

func (b *builder) blank() {
	b.text.WriteByte('\n')
	b.offset++
}

func (b *builder) section(tokens []string) {
	if len(tokens) == 0 {
		b.line(emptySection)
		return
	}
	for _, tok := range tokens {
		b.tokens = append(b.tokens, TokenSpan{
			Start: b.offset,
			End:   b.offset + len([]rune(tok)),
			Token: tok,
		})
		b.line(tok)
	}
}

// tableSpans tokenizes a conjugation table: every word run on a
// non-heading line is selectable. Heading lines (starting with '*')
// and blanks yield no spans, so selecting there returns nothing.
func tableSpans(table string) []TokenSpan {
	var spans []TokenSpan

	offset := 0
	for _, line := range strings.Split(table, "\n") {
		runes := []rune(line)
		if !strings.HasPrefix(strings.TrimSpace(line), "*") {
			start := -1
			for i := 0; i <= len(runes); i++ {
				inWord := i < len(runes) && isWordRune(runes[i])
				if inWord && start < 0 {
					start = i
				}
				if !inWord && start >= 0 {
					spans = append(spans, TokenSpan{
						Start: offset + start,
						End:   offset + i,
						Token: string(runes[start:i]),
					})
					start = -1
				}
			}
		}
		offset += len(runes) + 1
	}
	return spans
}

// isWordRune reports whether r can appear inside a French word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '-' || r == '\'' || r == '’'
}
