// Package cnrtl fetches dictionary definitions from CNRTL
// (https://www.cnrtl.fr) and assembles them into ordered markdown
// blocks, one per definition page.
package cnrtl

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/avernet/lexique"
)

// DefaultBaseURL is the public CNRTL host.
const DefaultBaseURL = "https://www.cnrtl.fr"

// contentAnchorID is the id of the element holding a page's definition
// content. Its absence on an otherwise healthy page means the term has
// no entry.
const contentAnchorID = "lexicontent"

// pageCountPattern matches the pagination links CNRTL renders near the
// content anchor, e.g. "/definition/maison//3". The total page count is
// the largest index seen.
var pageCountPattern = regexp.MustCompile(`/definition/[^"'/]+//(\d+)`)

// Ensure Paginator implements lexique.Paginator at compile time.
var _ lexique.Paginator = (*Paginator)(nil)

// Paginator retrieves every definition page for a term, extracts the
// content element from each, and converts it to markdown.
type Paginator struct {
	fetcher   lexique.Fetcher
	converter lexique.Converter
	baseURL   string
}

// Option configures a Paginator.
type Option func(*Paginator)

// WithBaseURL overrides the CNRTL host, typically for tests.
func WithBaseURL(u string) Option {
	return func(p *Paginator) {
		p.baseURL = strings.TrimSuffix(u, "/")
	}
}

// NewPaginator creates a Paginator backed by the given fetcher and
// converter.
func NewPaginator(fetcher lexique.Fetcher, converter lexique.Converter, opts ...Option) *Paginator {
	p := &Paginator{
		fetcher:   fetcher,
		converter: converter,
		baseURL:   DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchAll returns one markdown block per definition page in
// increasing page order. The base page declares how many additional
// pages exist; each is fetched and extracted independently, and any
// failure after the base page aborts the whole pagination with that
// error. No partial results are returned.
func (p *Paginator) FetchAll(ctx context.Context, term string) ([]string, error) {
	if term == "" {
		return nil, lexique.Errorf(lexique.EINVALID, "lookup term required")
	}

	page, err := p.fetcher.Fetch(ctx, p.pageURL(term, 0))
	if err != nil {
		return nil, err
	}

	block, err := p.extractBlock(page.Body, term)
	if err != nil {
		return nil, err
	}

	count := pageCount(page.Body)
	blocks := make([]string, 0, count+1)
	blocks = append(blocks, block)

	for i := 1; i <= count; i++ {
		page, err := p.fetcher.Fetch(ctx, p.pageURL(term, i))
		if err != nil {
			return nil, err
		}
		block, err := p.extractBlock(page.Body, term)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

// pageURL returns the CNRTL URL for a term's nth definition page.
// Page 0 is the base page; pages 1..N carry the index as a suffix.
func (p *Paginator) pageURL(term string, index int) string {
	u := p.baseURL + "/definition/" + url.PathEscape(term)
	if index > 0 {
		u += "/" + strconv.Itoa(index)
	}
	return u
}

// extractBlock isolates the content element rooted at the anchor id
// and converts it to markdown. The element is matched with balanced
// open/close nesting via a full HTML parse, never by scanning for the
// next closing tag. A page without the anchor is ENOTFOUND: the page
// loaded, but the word has no entry.
func (p *Paginator) extractBlock(body, term string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", lexique.Errorf(lexique.EINTERNAL, "parse definition page for %q: %v", term, err)
	}

	sel := doc.Find("#" + contentAnchorID)
	if sel.Length() == 0 {
		return "", lexique.Errorf(lexique.ENOTFOUND, "no definition found for %q", term)
	}

	html, err := goquery.OuterHtml(sel.First())
	if err != nil {
		return "", lexique.Errorf(lexique.EINTERNAL, "serialize definition block for %q: %v", term, err)
	}

	markdown, err := p.converter.Convert(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown), nil
}

// pageCount reads the declared number of additional definition pages
// from a base page body. A missing declaration means the base page is
// the only one.
func pageCount(body string) int {
	max := 0
	for _, m := range pageCountPattern.FindAllStringSubmatch(body, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
