package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/avernet/lexique"
	"github.com/avernet/lexique/cnrtl"
	"github.com/avernet/lexique/config"
	"github.com/avernet/lexique/crisco"
	"github.com/avernet/lexique/grammalecte"
	"github.com/avernet/lexique/htmltomarkdown"
	lexhttp "github.com/avernet/lexique/http"
	"github.com/avernet/lexique/lookup"
	lexslog "github.com/avernet/lexique/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides the environment-loaded configuration when set.
	// Used by end-to-end tests.
	Config *config.Config

	// Fetcher used by the lookup pipelines.
	Fetcher lexique.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lexique"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lexique --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := m.Config
	if cfg == nil {
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.Fetcher = lexslog.NewLoggingFetcher(
		lexhttp.NewFetcher(
			lexhttp.WithTimeout(cfg.FetchTimeout),
			lexhttp.WithRateLimit(cfg.FetchRPS),
		),
		logger,
	)
	defer m.Close()

	deps.Synonyms = &lookup.SynonymPipeline{
		Fetcher:   m.Fetcher,
		Extractor: lexslog.NewLoggingExtractor(crisco.NewExtractor(), logger),
		BaseURL:   cfg.SynonymBaseURL,
	}
	deps.Definitions = &lookup.DefinitionPipeline{
		Paginator: cnrtl.NewPaginator(
			m.Fetcher,
			htmltomarkdown.NewConverter(),
			cnrtl.WithBaseURL(cfg.DefinitionBaseURL),
		),
	}

	if cfg.GrammalecteDir != "" {
		tool := grammalecte.NewTool(cfg.Python, cfg.GrammalecteDir)
		deps.Checker = tool
		deps.Conjugations = &lookup.ConjugationPipeline{Conjugator: tool}
		maybeUpstreamReminder(logger, cfg)
	}

	return kongCtx.Run(deps)
}

// maybeUpstreamReminder logs a reminder to look for a newer
// Grammalecte release when the configured interval has elapsed, and
// records the check in a cache-backed timestamp file.
func maybeUpstreamReminder(logger *slog.Logger, cfg *config.Config) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return
	}
	stamp := filepath.Join(dir, "lexique", "upstream-check")

	var lastCheck time.Time
	if info, err := os.Stat(stamp); err == nil {
		lastCheck = info.ModTime()
	}

	if !grammalecte.UpstreamDue(lastCheck, cfg.UpstreamCheckEvery) {
		return
	}

	logger.Info("a newer Grammalecte release may be available",
		"install_dir", cfg.GrammalecteDir,
		"last_check", lastCheck,
	)

	_ = os.MkdirAll(filepath.Dir(stamp), 0o755)
	_ = os.WriteFile(stamp, nil, 0o644)
}
