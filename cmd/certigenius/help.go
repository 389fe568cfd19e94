package main

import (
	"fmt"
	"io"
	"os"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: certigenius <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  init        Write a starter project file")
	fmt.Fprintln(w, "  preview     Render a certificate layout to an HTML file")
	fmt.Fprintln(w, "  export      Export certificates as one combined PDF")
	fmt.Fprintln(w, "  export-zip  Export certificates as a ZIP of per-recipient PDFs")
	fmt.Fprintln(w, "  serve       Run the participant portal HTTP server")
	fmt.Fprintln(w, "  draft       Draft certificate body text with Gemini")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'certigenius help <command>' for details on a specific command.")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: certigenius init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a starter project file with the default design, default content,")
	fmt.Fprintln(w, "and one example recipient. Refuses to overwrite an existing file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <file>     Project file to create (default: certigenius.yaml)")
}

// printExportUsage prints usage for the export and export-zip commands.
func printExportUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: certigenius %s [flags]\n", name)
	fmt.Fprintln(w)
	if name == "export-zip" {
		fmt.Fprintln(w, "Export every recipient's certificate as a ZIP archive of single-page PDFs.")
	} else {
		fmt.Fprintln(w, "Export every recipient's certificate as one combined PDF, one page each.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>     Project file name or path (required)")
	fmt.Fprintln(w, "  -o, --output <dir>      Output directory (default: current)")
	fmt.Fprintln(w, "  -r, --recipient <q>     Export one recipient matched by id or name")
	fmt.Fprintln(w, "  -t, --timeout <d>       Per-capture timeout, e.g. 30s, 2m")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: certigenius preview [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the certificate layout to a standalone HTML file for inspection")
	fmt.Fprintln(w, "in a browser. Without --recipient, a stand-in sample recipient is used.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>     Project file name or path (required)")
	fmt.Fprintln(w, "  -o, --output <file>     Output HTML file (default: certificate.html)")
	fmt.Fprintln(w, "  -r, --recipient <q>     Preview a stored recipient matched by id or name")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: certigenius serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run the participant portal: search recipients by id or name and download")
	fmt.Fprintln(w, "certificates as single-page PDFs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Endpoints:")
	fmt.Fprintln(w, "  GET /api/search?q=<query>        Find a recipient")
	fmt.Fprintln(w, "  GET /api/certificate/:query      Download a certificate PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>     Project file name or path (required)")
	fmt.Fprintln(w, "  -a, --addr <addr>       Listen address (default: :8080)")
	fmt.Fprintln(w, "  -v, --verbose           Show request logging")
}

// printDraftUsage prints usage for the draft command.
func printDraftUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: certigenius draft --topic <s> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Draft certificate body text with Gemini. Requires GEMINI_API_KEY.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --topic <s>         What the certificate is for (required)")
	fmt.Fprintln(w, "      --tone <s>          Tone of the text (default: formal and celebratory)")
}

// runHelp prints help for a specific command.
func runHelp(args []string) {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return
	}

	switch args[0] {
	case "init":
		printInitUsage(os.Stdout)
	case "preview":
		printPreviewUsage(os.Stdout)
	case "export":
		printExportUsage(os.Stdout, "export")
	case "export-zip":
		printExportUsage(os.Stdout, "export-zip")
	case "serve":
		printServeUsage(os.Stdout)
	case "draft":
		printDraftUsage(os.Stdout)
	case "version":
		fmt.Fprintln(os.Stdout, "Usage: certigenius version")
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(os.Stdout, "Usage: certigenius help [command]")
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage(os.Stderr)
	}
}
