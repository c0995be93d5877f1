package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/smendoza/leytext/fs"
	"github.com/smendoza/leytext/gcs"
	"github.com/smendoza/leytext/goquery"
	leyhttp "github.com/smendoza/leytext/http"
	"github.com/smendoza/leytext/pipeline"
	"github.com/smendoza/leytext/readability"
	leyslog "github.com/smendoza/leytext/slog"
)

const userAgent = "leytext/1.0 (+https://github.com/smendoza/leytext)"

func main() {
	// Credentials (e.g. GOOGLE_APPLICATION_CREDENTIALS) may live in a local
	// .env file; a missing file is fine.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// GCS client, opened only when the gcs storage mode is selected.
	gcsClient *storage.Client
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.gcsClient != nil {
		return m.gcsClient.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	// The config file feeds flag defaults, so it has to be known before the
	// parser is built. Explicit flags always win over the file.
	cfg, err := LoadConfig(configPathFromArgs(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leytext"),
		kong.Description("Extracts and structures the Paraguayan labor code from its official HTML publication."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"url":             cfg.URL,
			"mode":            cfg.Mode,
			"out_dir":         cfg.OutDir,
			"bucket":          cfg.Bucket,
			"prefix":          cfg.Prefix,
			"expected_total":  fmt.Sprintf("%d", cfg.ExpectedTotal),
			"skip_validation": fmt.Sprintf("%t", cfg.SkipValidation),
			"strict_chapters": fmt.Sprintf("%t", cfg.StrictChapters),
			"extractor":       cfg.Extractor,
			"timeout":         cfg.Timeout,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leytext --help' to see available commands")
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

	// Wire the pipeline for the run command.
	if cmd == "run" {
		p, err := m.buildPipeline(ctx, &cli.Run, deps)
		if err != nil {
			return err
		}
		deps.Pipeline = p
	}

	return kongCtx.Run(deps)
}

// buildPipeline assembles the pipeline from the run command's flags.
func (m *Main) buildPipeline(ctx context.Context, cmd *RunCmd, deps *Dependencies) (*pipeline.Pipeline, error) {
	timeout, err := time.ParseDuration(cmd.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", cmd.Timeout, err)
	}

	p := &pipeline.Pipeline{
		Fetcher: leyhttp.NewFetcher(
			leyhttp.WithTimeout(timeout),
			leyhttp.WithUserAgent(userAgent),
		),
		URL:            cmd.URL,
		ExpectedTotal:  cmd.ExpectedTotal,
		SkipValidation: cmd.SkipValidation,
		StrictChapters: cmd.StrictChapters,
	}

	switch cmd.Extractor {
	case "readability":
		p.Extractor = readability.NewExtractor()
	default:
		p.Extractor = goquery.NewExtractor()
	}

	switch cmd.Mode {
	case "gcs":
		if cmd.Bucket == "" {
			return nil, fmt.Errorf("--bucket is required for gcs mode")
		}
		client, err := storage.NewClient(ctx)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: set GOOGLE_APPLICATION_CREDENTIALS or run inside GCP")
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		m.gcsClient = client
		p.Store = leyslog.NewLoggingStore(gcs.NewStore(client, cmd.Bucket, gcs.WithPrefix(cmd.Prefix)), deps.Logger)
	default:
		p.Store = leyslog.NewLoggingStore(fs.NewStore(cmd.OutDir), deps.Logger)
	}

	tracer := leyslog.NewTracer(deps.Logger)
	p.Tracer = tracer
	deps.RunID = tracer.RunID()

	return p, nil
}

// configPathFromArgs scans raw arguments for the --config flag so the file
// can be loaded before Kong parses anything.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
