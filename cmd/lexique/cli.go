package main

import (
	"context"
	"io"

	"github.com/avernet/lexique"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Synonyms     lexique.Pipeline
	Definitions  lexique.Pipeline
	Conjugations lexique.Pipeline
	Checker      lexique.Checker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Syn   SynCmd   `cmd:"" help:"Look up synonyms and antonyms for a word"`
	Def   DefCmd   `cmd:"" help:"Look up dictionary definitions for a word"`
	Conj  ConjCmd  `cmd:"" help:"Show the conjugation table for a verb"`
	Check CheckCmd `cmd:"" help:"Run the external grammar checker over a file"`
}

// SynCmd is the "syn" subcommand.
type SynCmd struct {
	Term      string `arg:"" help:"Word to look up"`
	ReplaceIn string `short:"r" help:"File whose word at --at should be replaced"`
	At        int    `default:"-1" help:"Rune offset of the word to replace in the file"`
	Pick      int    `default:"-1" help:"Index of the result token to apply (0-based)"`
}

// DefCmd is the "def" subcommand.
type DefCmd struct {
	Term string `arg:"" help:"Word to look up"`
}

// ConjCmd is the "conj" subcommand.
type ConjCmd struct {
	Verb string `arg:"" help:"Verb to conjugate"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	File string `arg:"" help:"Text file to check"`
}
