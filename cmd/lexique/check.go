package main

import (
	"fmt"
	"os"

	"github.com/avernet/lexique"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if deps.Checker == nil {
		fmt.Fprintln(deps.Stderr, "error: Grammalecte is not configured. Set LEXIQUE_GRAMMALECTE_DIR to its install directory.")
		return lexique.Errorf(lexique.EINVALID, "Grammalecte not configured")
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	diags, err := deps.Checker.Check(deps.Ctx, string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexique.ErrorMessage(err))
		return err
	}

	if len(diags) == 0 {
		fmt.Fprintln(deps.Stdout, "Aucune erreur détectée.")
		return nil
	}

	for _, d := range diags {
		fmt.Fprintf(deps.Stdout, "%s:%d:%d: [%s] %s\n", c.File, d.Line, d.Column, d.Class, d.Message)
	}
	return nil
}
