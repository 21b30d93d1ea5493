// Package lookup orchestrates lookup sessions: it selects the
// extraction pipeline for a session's kind, drives the refreshable
// result view, and coordinates replacing the looked-up word in the
// originating surface.
package lookup

import (
	"context"

	"github.com/avernet/lexique"
	"github.com/avernet/lexique/crisco"
)

// Compile-time pipeline assertions.
var (
	_ lexique.Pipeline = (*SynonymPipeline)(nil)
	_ lexique.Pipeline = (*DefinitionPipeline)(nil)
	_ lexique.Pipeline = (*ConjugationPipeline)(nil)
)

// SynonymPipeline fetches a CRISCO synonym page and extracts both
// token lists from it. The two extractions are independent; an empty
// record is a legitimate result, not an error.
type SynonymPipeline struct {
	Fetcher   lexique.Fetcher
	Extractor lexique.Extractor
	BaseURL   string
}

// Run executes one synonym lookup.
func (p *SynonymPipeline) Run(ctx context.Context, term string) (*lexique.Result, error) {
	base := p.BaseURL
	if base == "" {
		base = crisco.DefaultBaseURL
	}

	page, err := p.Fetcher.Fetch(ctx, crisco.PageURL(base, term))
	if err != nil {
		return nil, err
	}

	record := &lexique.SynonymRecord{
		Synonyms: p.Extractor.Extract(page.Body, crisco.ListSynonyms),
		Antonyms: p.Extractor.Extract(page.Body, crisco.ListAntonyms),
	}
	return &lexique.Result{Kind: lexique.KindSynonym, Record: record}, nil
}

// DefinitionPipeline delegates to a paginator that fetches every
// definition page for the term.
type DefinitionPipeline struct {
	Paginator lexique.Paginator
}

// Run executes one definition lookup.
func (p *DefinitionPipeline) Run(ctx context.Context, term string) (*lexique.Result, error) {
	blocks, err := p.Paginator.FetchAll(ctx, term)
	if err != nil {
		return nil, err
	}
	return &lexique.Result{Kind: lexique.KindDefinition, Definitions: blocks}, nil
}

// ConjugationPipeline asks the external collaborator for a formatted
// conjugation table.
type ConjugationPipeline struct {
	Conjugator lexique.Conjugator
}

// Run executes one conjugation lookup.
func (p *ConjugationPipeline) Run(ctx context.Context, term string) (*lexique.Result, error) {
	table, err := p.Conjugator.Conjugate(ctx, term)
	if err != nil {
		return nil, err
	}
	return &lexique.Result{Kind: lexique.KindConjugation, Table: table}, nil
}

// PipelineFor returns the pipeline matching a lookup kind. The choice
// is made once, at view construction time; the view never dispatches
// on the kind again.
func PipelineFor(kind lexique.LookupKind, syn *SynonymPipeline, def *DefinitionPipeline, conj *ConjugationPipeline) (lexique.Pipeline, error) {
	switch kind {
	case lexique.KindSynonym:
		return syn, nil
	case lexique.KindDefinition:
		return def, nil
	case lexique.KindConjugation:
		return conj, nil
	}
	return nil, lexique.Errorf(lexique.EINVALID, "unknown lookup kind %q", kind)
}
