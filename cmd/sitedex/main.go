// Command sitedex crawls a single site, stores extracted page content, and
// answers semantic search queries over the result.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/gemini"
	sdhttp "github.com/sitedex/sitedex/http"
	"github.com/sitedex/sitedex/rod"
	sdslog "github.com/sitedex/sitedex/slog"
	"github.com/sitedex/sitedex/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services exposed for end-to-end testing.
	CrawlService sitedex.CrawlService
	PageService  sitedex.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
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
		kong.Name("sitedex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitedex --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CrawlService = sqlite.NewCrawlService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB)
	deps.DB = m.DB
	deps.Crawls = m.CrawlService
	deps.Pages = m.PageService
	deps.Sitemaps = sdslog.NewLoggingSitemapService(sdhttp.NewSitemapService(nil), deps.Logger)

	if cmd == "crawl" {
		var fetcher sitedex.Fetcher
		if cli.Crawl.Headless {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --headless")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = sdhttp.NewFetcher()
		}
		deps.Fetcher = sdslog.NewLoggingFetcher(fetcher, deps.Logger)
		defer deps.Fetcher.Close()

		// Token counting is a nicety for the summary line, not a
		// requirement; skip it if the tokenizer can't initialize.
		if tc, err := gemini.NewTokenCounter(gemini.TokenCounterModel); err == nil {
			deps.Tokens = tc
		}
	}

	if cmd == "index" || cmd == "search" {
		client, err := geminiClient(ctx, stderr)
		if err != nil {
			return err
		}
		deps.Embedder = gemini.NewEmbedder(client)
		deps.Searcher = sqlite.NewSearchService(m.PageService, deps.Embedder)
	}

	return kongCtx.Run(deps)
}

// geminiClient builds a Gemini API client from the environment.
func geminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func defaultDBPath() string {
	if path := os.Getenv("SITEDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitedex.db"
	}
	dir := filepath.Join(home, ".sitedex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitedex.db")
}
