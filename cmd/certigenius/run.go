package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	certigenius "github.com/naina18075-cpu/certigenius"
	"github.com/naina18075-cpu/certigenius/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoProject          = errors.New("no project file specified, use --config")
	ErrProjectExists      = errors.New("project file already exists")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrRecipientNotStored = errors.New("no stored recipient matches")
	ErrWriteArtifact      = errors.New("failed to write artifact")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// run dispatches to the requested command.
func run(args []string) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return errors.New("no command specified")
	}

	switch args[0] {
	case "init":
		return runInit(args[1:])
	case "preview":
		return runPreview(args[1:])
	case "export":
		return runExport("export", certigenius.SinkSinglePDF, args[1:])
	case "export-zip":
		return runExport("export-zip", certigenius.SinkZIP, args[1:])
	case "serve":
		return runServe(args[1:])
	case "draft":
		return runDraft(args[1:])
	case "version":
		fmt.Fprintf(os.Stdout, "certigenius %s\n", Version)
		return nil
	case "help", "--help", "-h":
		runHelp(args[1:])
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// workspace bundles everything loaded from a project file.
type workspace struct {
	cfg      *ProjectConfig
	template certigenius.Template
	store    *certigenius.RecipientStore
}

// loadWorkspace loads and validates a project file, builds its template,
// and imports its recipients.
func loadWorkspace(nameOrPath string) (*workspace, error) {
	if nameOrPath == "" {
		return nil, ErrNoProject
	}

	cfg, path, err := LoadProject(nameOrPath)
	if err != nil {
		return nil, err
	}
	baseDir := filepath.Dir(path)

	tmpl, err := buildTemplate(cfg, baseDir)
	if err != nil {
		return nil, fmt.Errorf("building template: %w", err)
	}

	store, err := buildStore(cfg, baseDir)
	if err != nil {
		return nil, err
	}

	return &workspace{cfg: cfg, template: tmpl, store: store}, nil
}

// newLogger builds the logger passed to the export pipeline. Verbose gets
// a human-readable development logger, quiet suppresses everything below
// the error level.
func newLogger(verbose, quiet bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if quiet {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return cfg.Build()
}

// captureTimeout resolves the per-capture timeout: the flag wins over the
// project file, both default to the pipeline's built-in value.
func captureTimeout(flagValue string, cfg *ProjectConfig) (time.Duration, error) {
	raw := flagValue
	if raw == "" {
		raw = cfg.Export.Timeout
	}
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
	}
	return d, nil
}

// buildExporter assembles an exporter from the resolved timeout and logger.
func buildExporter(timeout time.Duration, logger *zap.Logger) *certigenius.Exporter {
	opts := []certigenius.ExporterOption{certigenius.WithLogger(logger)}
	if timeout > 0 {
		opts = append(opts, certigenius.WithCaptureTimeout(timeout))
	}
	return certigenius.NewExporter(opts...)
}

// writeArtifact writes an export artifact into the output directory.
func writeArtifact(outputDir string, a certigenius.Artifact) (string, error) {
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	path := filepath.Join(outputDir, a.Filename)
	if err := os.WriteFile(path, a.Data, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	return path, nil
}

// runInit writes a starter project file to edit from.
func runInit(args []string) error {
	flags, err := parseInitFlags(args)
	if err != nil {
		return err
	}

	if fileutil.FileExists(flags.output) {
		return fmt.Errorf("%w: %s", ErrProjectExists, flags.output)
	}

	data, err := starterProject()
	if err != nil {
		return err
	}
	if err := os.WriteFile(flags.output, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s\n", flags.output)
	return nil
}

// runPreview renders the certificate layout to an HTML file.
func runPreview(args []string) error {
	flags, err := parsePreviewFlags(args)
	if err != nil {
		return err
	}

	ws, err := loadWorkspace(flags.common.config)
	if err != nil {
		return err
	}

	// Without an explicit recipient the preview binds a stand-in record so
	// the layout shows realistic text instead of raw tokens.
	recipient := certigenius.SampleRecipient()
	if flags.recipient != "" {
		r, ok := ws.store.FindByIDOrName(flags.recipient)
		if !ok {
			return fmt.Errorf("%w: %q", ErrRecipientNotStored, flags.recipient)
		}
		recipient = r
	}

	t := ws.template
	layout, err := certigenius.RenderLayout(t.Design, t.Content, t.Overlays, &recipient)
	if err != nil {
		return err
	}

	if err := os.WriteFile(flags.output, []byte(layout), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(os.Stdout, "Wrote %s\n", flags.output)
	}
	return nil
}

// runExport drives a batch export into the given sink, or a single
// recipient's export when --recipient is set.
func runExport(name, sinkKind string, args []string) error {
	flags, err := parseExportFlags(name, args)
	if err != nil {
		return err
	}

	ws, err := loadWorkspace(flags.common.config)
	if err != nil {
		return err
	}

	timeout, err := captureTimeout(flags.timeout, ws.cfg)
	if err != nil {
		return err
	}

	logger, err := newLogger(flags.common.verbose, flags.common.quiet)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	exporter := buildExporter(timeout, logger)
	defer func() { _ = exporter.Close() }()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	outputDir := flags.output
	if outputDir == "." && ws.cfg.Export.OutputDir != "" {
		outputDir = ws.cfg.Export.OutputDir
	}

	if flags.recipient != "" {
		return exportOne(ctx, exporter, ws, flags.recipient, outputDir, flags.common.quiet)
	}
	return exportAll(ctx, exporter, ws, sinkKind, outputDir, flags.common.quiet)
}

// exportOne exports a single recipient matched by id or name.
func exportOne(ctx context.Context, exporter *certigenius.Exporter, ws *workspace, query, outputDir string, quiet bool) error {
	r, ok := ws.store.FindByIDOrName(query)
	if !ok {
		return fmt.Errorf("%w: %q", ErrRecipientNotStored, query)
	}

	artifact, err := exporter.ExportOne(ctx, ws.template, r)
	if err != nil {
		return err
	}

	path, err := writeArtifact(outputDir, artifact)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}
	return nil
}

// exportAll exports every stored recipient into the chosen sink.
func exportAll(ctx context.Context, exporter *certigenius.Exporter, ws *workspace, sinkKind, outputDir string, quiet bool) error {
	recipients := ws.store.All()

	var progress certigenius.ProgressFunc
	if !quiet {
		progress = func(p certigenius.Progress) {
			fmt.Fprintf(os.Stdout, "[%d/%d] %s\n", p.Current, p.Total, p.Recipient.Name)
		}
	}

	artifact, results, err := exporter.ExportAll(ctx, ws.template, recipients, sinkKind, progress)
	if err != nil {
		return err
	}

	skipped := 0
	for _, res := range results {
		if res.Err != nil {
			skipped++
			fmt.Fprintf(os.Stderr, "Skipped %s: %v\n", res.Recipient.Name, res.Err)
		}
	}

	path, err := writeArtifact(outputDir, artifact)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "Wrote %s (%d exported, %d skipped)\n", path, len(results)-skipped, skipped)
	}
	return nil
}

// runServe starts the participant portal HTTP server.
func runServe(args []string) error {
	flags, err := parseServeFlags(args)
	if err != nil {
		return err
	}

	ws, err := loadWorkspace(flags.common.config)
	if err != nil {
		return err
	}

	timeout, err := captureTimeout("", ws.cfg)
	if err != nil {
		return err
	}

	logger, err := newLogger(flags.common.verbose, flags.common.quiet)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	exporter := buildExporter(timeout, logger)
	defer func() { _ = exporter.Close() }()

	portal := certigenius.NewPortal(ws.template, ws.store.All(), exporter)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return servePortal(ctx, portal, flags.addr, flags.common.verbose, logger)
}

// runDraft generates certificate body text with Gemini and prints it.
func runDraft(args []string) error {
	flags, err := parseDraftFlags(args)
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	drafter, err := certigenius.NewDrafter(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}

	body, err := drafter.DraftBody(ctx, flags.topic, flags.tone)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, body)
	return nil
}
