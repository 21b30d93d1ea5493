package grammalecte

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/avernet/lexique"
)

// Helper scripts shipped with the Grammalecte distribution.
const (
	checkerScript    = "lexique-checker.py"
	conjugatorScript = "conjugueur.py"
)

// Compile-time interface assertions.
var (
	_ lexique.Checker    = (*Tool)(nil)
	_ lexique.Conjugator = (*Tool)(nil)
)

// Tool invokes the Grammalecte helper scripts as subprocesses.
// The install directory is prepended to PYTHONPATH so the scripts can
// import the grammalecte package regardless of the host environment.
type Tool struct {
	python string
	dir    string
}

// NewTool creates a Tool using the given Python interpreter and
// Grammalecte install directory.
func NewTool(python, dir string) *Tool {
	return &Tool{python: python, dir: dir}
}

// Check runs the grammar checker over text and parses its diagnostic
// output. The subprocess reads the text on stdin and writes one
// diagnostic per line on stdout.
func (t *Tool) Check(ctx context.Context, text string) ([]lexique.Diagnostic, error) {
	out, err := t.run(ctx, checkerScript, strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return ParseDiagnostics(bytes.NewReader(out))
}

// Conjugate runs the conjugation helper for a verb and returns its
// formatted table verbatim. The table layout is owned by the helper;
// callers must treat it as opaque text.
func (t *Tool) Conjugate(ctx context.Context, verb string) (string, error) {
	if verb == "" {
		return "", lexique.Errorf(lexique.EINVALID, "verb required")
	}
	out, err := t.run(ctx, conjugatorScript, nil, verb)
	if err != nil {
		return "", err
	}
	table := strings.TrimRight(string(out), "\n")
	if table == "" {
		return "", lexique.Errorf(lexique.ENOTFOUND, "no conjugation table for %q", verb)
	}
	return table, nil
}

func (t *Tool) run(ctx context.Context, script string, stdin *strings.Reader, args ...string) ([]byte, error) {
	argv := append([]string{filepath.Join(t.dir, script)}, args...)
	cmd := exec.CommandContext(ctx, t.python, argv...)
	cmd.Env = append(os.Environ(), "PYTHONPATH="+t.dir)
	if stdin != nil {
		cmd.Stdin = stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, lexique.Errorf(lexique.EUNAVAILABLE, "%s: %s", script, msg)
	}
	return stdout.Bytes(), nil
}
