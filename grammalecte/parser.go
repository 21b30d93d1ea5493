// Package grammalecte drives the external Grammalecte toolchain: a
// Python grammar checker invoked as a subprocess. It parses the
// checker's line-oriented diagnostic protocol and exposes its verb
// conjugation helper as an opaque table provider.
package grammalecte

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/avernet/lexique"
)

// ParseDiagnostics reads the checker's diagnostic output: one finding
// per line, fields separated by '|', in the fixed order
// category|line|column|message. Lines whose category is neither
// "grammaire" nor "orthographe" are ignored. The two numeric fields
// must parse exactly; a recognized category with malformed positions
// is a protocol violation, not a skippable line.
func ParseDiagnostics(r io.Reader) ([]lexique.Diagnostic, error) {
	var diags []lexique.Diagnostic

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.SplitN(line, "|", 4)
		if len(fields) < 4 {
			continue
		}

		var class lexique.DiagClass
		switch fields[0] {
		case string(lexique.DiagGrammar):
			class = lexique.DiagGrammar
		case string(lexique.DiagSpelling):
			class = lexique.DiagSpelling
		default:
			continue
		}

		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, lexique.Errorf(lexique.EINVALID, "malformed diagnostic line %q: bad line number", line)
		}
		col, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, lexique.Errorf(lexique.EINVALID, "malformed diagnostic line %q: bad column number", line)
		}

		diags = append(diags, lexique.Diagnostic{
			Class:   class,
			Line:    row,
			Column:  col,
			Message: fields[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, lexique.Errorf(lexique.EUNAVAILABLE, "read checker output: %v", err)
	}

	return diags, nil
}
