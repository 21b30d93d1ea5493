// Package lexique provides a CLI tool for looking up linguistic
// information about French words: synonyms and antonyms (CRISCO),
// dictionary definitions (CNRTL), and verb conjugation tables produced
// by the Grammalecte toolchain. Lookups render into a refreshable
// result view that supports replacing the word in the originating
// text with a selected result.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or remote
// service (e.g., http/, crisco/, cnrtl/, grammalecte/).
package lexique
