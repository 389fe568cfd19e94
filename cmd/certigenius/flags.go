package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// exportFlags holds flags for the export and export-zip commands.
type exportFlags struct {
	common    commonFlags
	output    string
	recipient string
	timeout   string
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common    commonFlags
	output    string
	recipient string
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common commonFlags
	addr   string
}

// draftFlags holds flags for the draft command.
type draftFlags struct {
	common commonFlags
	topic  string
	tone   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "project file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseExportFlags parses flags for export and export-zip.
func parseExportFlags(name string, args []string) (*exportFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", ".", "output directory")
	fs.StringVarP(&f.recipient, "recipient", "r", "", "export one recipient matched by id or name")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-capture timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printExportUsage(os.Stderr, name) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// initFlags holds flags for the init command.
type initFlags struct {
	output string
}

// parseInitFlags parses flags for init.
func parseInitFlags(args []string) (*initFlags, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}

	fs.StringVarP(&f.output, "output", "o", "certigenius.yaml", "path of the project file to create")
	fs.Usage = func() { printInitUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parsePreviewFlags parses flags for preview.
func parsePreviewFlags(args []string) (*previewFlags, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{}

	fs.StringVarP(&f.output, "output", "o", "certificate.html", "output HTML file")
	fs.StringVarP(&f.recipient, "recipient", "r", "", "preview a stored recipient matched by id or name")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printPreviewUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseServeFlags parses flags for serve.
func parseServeFlags(args []string) (*serveFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}

	fs.StringVarP(&f.addr, "addr", "a", ":8080", "listen address for the participant portal")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printServeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseDraftFlags parses flags for draft.
func parseDraftFlags(args []string) (*draftFlags, error) {
	fs := flag.NewFlagSet("draft", flag.ContinueOnError)
	f := &draftFlags{}

	fs.StringVar(&f.topic, "topic", "", "what the certificate is for (e.g., \"Science Fair\")")
	fs.StringVar(&f.tone, "tone", "", "tone of the drafted text (default: formal and celebratory)")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printDraftUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
