package lexique

import "context"

// LookupKind selects which remote source and extraction pipeline a
// lookup session uses.
type LookupKind string

// Supported lookup kinds.
const (
	KindSynonym     LookupKind = "synonym"
	KindDefinition  LookupKind = "definition"
	KindConjugation LookupKind = "conjugation"
)

// Valid reports whether k is one of the supported lookup kinds.
func (k LookupKind) Valid() bool {
	switch k {
	case KindSynonym, KindDefinition, KindConjugation:
		return true
	}
	return false
}

// LookupSession ties one lookup to the surface that requested it.
// A session lives as long as its result view is open. Origin is a weak
// back-reference used only when replacing the looked-up word; the
// originating surface may be closed independently of the session.
type LookupSession struct {
	ID     string
	Kind   LookupKind
	Term   string
	Origin Surface
}

// Validate returns an error if the session contains invalid fields.
func (s *LookupSession) Validate() error {
	if !s.Kind.Valid() {
		return Errorf(EINVALID, "unknown lookup kind %q", s.Kind)
	}
	if s.Term == "" {
		return Errorf(EINVALID, "lookup term required")
	}
	return nil
}

// RawPage is a fetched remote page, decoded as UTF-8.
// Pages are transient: produced by a Fetcher, consumed by extraction,
// and not retained afterward.
type RawPage struct {
	URL       string
	Body      string
	PageIndex int
}

// SynonymRecord holds the token lists extracted from a synonym page.
// Either list may legitimately be empty; both empty means the remote
// source has no entry for the term, which is distinct from a fetch
// error.
type SynonymRecord struct {
	Synonyms []string
	Antonyms []string
}

// Empty reports whether the record carries no tokens at all.
func (r *SynonymRecord) Empty() bool {
	return len(r.Synonyms) == 0 && len(r.Antonyms) == 0
}

// Result is the output of one pipeline run, discriminated by Kind.
// Exactly one of the payload fields is populated.
type Result struct {
	Kind LookupKind

	// Record holds synonym/antonym token lists (KindSynonym).
	Record *SynonymRecord

	// Definitions holds one markdown block per definition page, in
	// increasing page order (KindDefinition).
	Definitions []string

	// Table holds a preformatted conjugation table (KindConjugation).
	// Its layout is produced by the external collaborator and is
	// opaque to this package.
	Table string
}

// Fetcher retrieves remote pages synchronously.
type Fetcher interface {
	// Fetch retrieves the page at url and decodes its body as UTF-8.
	// It blocks until the response completes or the transport times
	// out. No retries are performed; transport and decoding failures
	// are returned as EUNAVAILABLE errors.
	Fetch(ctx context.Context, url string) (*RawPage, error)

	// Close releases transport resources.
	Close() error
}

// Extractor pulls an ordered token list out of a raw page body bounded
// by two textual markers.
type Extractor interface {
	// Extract returns the tokens of the named list in document order.
	// A missing start or end marker yields an empty slice, never an
	// error: absence of data in brittle external markup is a
	// legitimate empty result.
	Extract(body, listName string) []string
}

// Paginator fetches every definition page for a term.
type Paginator interface {
	// FetchAll returns one rendered block per definition page in
	// increasing page order. It returns ENOTFOUND if the term has no
	// entry, and the first page error otherwise; no partial results
	// are returned.
	FetchAll(ctx context.Context, term string) ([]string, error)
}

// Pipeline runs one lookup kind end to end. A result view selects its
// pipeline at construction time based on the session's kind.
type Pipeline interface {
	Run(ctx context.Context, term string) (*Result, error)
}
