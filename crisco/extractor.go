// Package crisco extracts synonym and antonym lists from CRISCO
// dictionary pages (https://crisco4.unicaen.fr).
//
// The pages are not well-formed enough for DOM selection to be
// reliable: the list boundaries are an unclosed inline element
// announcing the item count and an HTML comment closing the list.
// Extraction therefore narrows the raw body to the region between
// those two textual markers before matching tokens.
package crisco

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/avernet/lexique"
)

// DefaultBaseURL is the public CRISCO dictionary host.
const DefaultBaseURL = "https://crisco4.unicaen.fr"

// List names understood by CRISCO pages. These label both the count
// marker ("3 synonymes") and the end-of-list comment ("Fin liste des
// synonymes").
const (
	ListSynonyms = "synonymes"
	ListAntonyms = "antonymes"
)

// tokenPattern matches one hyperlink-wrapped word inside a narrowed
// list region. A trailing comma is consumed by the match and excluded
// from the capture, so no post-processing of tokens is needed.
var tokenPattern = regexp.MustCompile(`<a[^>]+>([^<]+?),?</a>`)

// Ensure Extractor implements lexique.Extractor at compile time.
var _ lexique.Extractor = (*Extractor)(nil)

// Extractor pulls marker-delimited token lists out of raw CRISCO page
// bodies. The zero value is ready to use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the tokens of the named list in document order.
// If either boundary marker is missing the list is absent and an empty
// slice is returned; brittle external markup must fail soft, so this
// is never an error.
func (e *Extractor) Extract(body, listName string) []string {
	region, ok := narrow(body, listName)
	if !ok {
		return nil
	}

	matches := tokenPattern.FindAllStringSubmatch(region, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// ExtractRecord assembles a combined synonym/antonym record from one
// page body. The two extractions are independent; either list may
// legitimately be empty.
func (e *Extractor) ExtractRecord(body string) *lexique.SynonymRecord {
	return &lexique.SynonymRecord{
		Synonyms: e.Extract(body, ListSynonyms),
		Antonyms: e.Extract(body, ListAntonyms),
	}
}

// PageURL returns the CRISCO lookup URL for a term.
func PageURL(baseURL, term string) string {
	return strings.TrimSuffix(baseURL, "/") + "/des/synonymes/" + url.PathEscape(term)
}

// narrow locates the start and end markers for the named list and
// returns the substring between them. The start marker is an inline
// element introducing the item count ("<i class=...>3 synonymes"); the
// end marker is the explicit end-of-list comment. Both are required.
func narrow(body, listName string) (string, bool) {
	// "1 synonyme" is written in the singular; accept both forms.
	label := strings.TrimSuffix(listName, "s")
	startPattern := regexp.MustCompile(fmt.Sprintf(`<i[^>]*>\s*\d+\s+%ss?`, regexp.QuoteMeta(label)))
	endPattern := regexp.MustCompile(fmt.Sprintf(`<!--\s*Fin liste des %s\s*-->`, regexp.QuoteMeta(listName)))

	start := startPattern.FindStringIndex(body)
	if start == nil {
		return "", false
	}
	end := endPattern.FindStringIndex(body[start[1]:])
	if end == nil {
		return "", false
	}

	return body[start[1] : start[1]+end[0]], true
}
