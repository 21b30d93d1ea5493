// Package buffer provides an in-memory text surface that can spawn
// lookups and accept replacements: the word under a point is
// remembered as the insertion span, and a successful replace splices
// the new token over it.
package buffer

import (
	"sync"
	"unicode"

	"github.com/avernet/lexique"
)

// Ensure Surface implements lexique.Surface at compile time.
var _ lexique.Surface = (*Surface)(nil)

// Surface is a mutable text buffer with a remembered word span.
// All offsets are rune positions.
type Surface struct {
	mu     sync.Mutex
	text   []rune
	start  int
	end    int
	closed bool
}

// New creates a Surface over text with the word containing the rune
// offset at selected as the replacement span. It returns EINVALID if
// the offset is out of range or does not fall inside a word.
func New(text string, at int) (*Surface, error) {
	runes := []rune(text)
	if at < 0 || at >= len(runes) {
		return nil, lexique.Errorf(lexique.EINVALID, "offset %d out of range", at)
	}
	if !isWordRune(runes[at]) {
		return nil, lexique.Errorf(lexique.EINVALID, "no word at offset %d", at)
	}

	start, end := at, at+1
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}

	return &Surface{text: runes, start: start, end: end}, nil
}

// Word returns the currently selected word.
func (s *Surface) Word() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.text[s.start:s.end])
}

// Text returns the buffer's full contents.
func (s *Surface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.text)
}

// Alive reports whether the surface is still open for writing.
func (s *Surface) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Close marks the surface gone. Further replacements fail.
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Replace deletes the remembered span and inserts token in its place.
// The span then covers the inserted token, so repeated replacements
// keep working over the same location.
func (s *Surface) Replace(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lexique.Errorf(lexique.ECONFLICT, "surface is closed")
	}

	inserted := []rune(token)
	tail := append([]rune{}, s.text[s.end:]...)
	s.text = append(append(s.text[:s.start], inserted...), tail...)
	s.end = s.start + len(inserted)
	return nil
}

// isWordRune reports whether r can appear inside a French word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '-' || r == '\'' || r == '’'
}
