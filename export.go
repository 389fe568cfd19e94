package certigenius

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sink kinds for bulk export.
const (
	SinkSinglePDF = "single-pdf" // one multi-page document, one page per recipient
	SinkZIP       = "zip"        // archive of per-recipient single-page documents
)

// ArchiveFilename is the fixed name of the bulk ZIP artifact.
const ArchiveFilename = "Certificates_Archive.zip"

// whitespaceRun collapses runs of whitespace in recipient names when
// building filenames. Other punctuation is kept as-is.
var whitespaceRun = regexp.MustCompile(`\s+`)

// Progress reports batch position after each recipient is processed.
type Progress struct {
	Current   int
	Total     int
	Recipient Recipient
}

// ProgressFunc observes batch progress. It is called once per recipient,
// including recipients whose capture was skipped.
type ProgressFunc func(Progress)

// RecipientResult records the outcome for one recipient in a batch.
type RecipientResult struct {
	Recipient Recipient
	Err       error
	Duration  time.Duration
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithCaptureTimeout sets the per-capture page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithCaptureTimeout(d time.Duration) ExporterOption {
	if d <= 0 {
		panic("certigenius: WithCaptureTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.timeout = d
	}
}

// WithLogger sets the logger used for skipped-capture reporting.
func WithLogger(logger *zap.Logger) ExporterOption {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// Exporter drives the render-capture-encode cycle across recipients. All
// per-recipient work is strictly serialized through the single capture
// surface: at most one export (single or bulk) is in flight at a time, and
// within a batch only one recipient's layout exists on the surface at once.
type Exporter struct {
	capturer surfaceCapturer
	logger   *zap.Logger
	timeout  time.Duration
	now      func() time.Time

	mu      sync.Mutex
	running bool
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithCaptureTimeout, WithLogger).
func NewExporter(opts ...ExporterOption) *Exporter {
	e := &Exporter{
		timeout: defaultCaptureTimeout,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	// Create capturer if not injected (e.g., by tests)
	if e.capturer == nil {
		e.capturer = newRodCapturer(e.timeout)
	}

	return e
}

// Running reports whether an export is in flight.
func (e *Exporter) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// begin transitions Idle to Running, rejecting re-entry.
func (e *Exporter) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return ErrExportInFlight
	}
	e.running = true
	return nil
}

// end returns the exporter to Idle. Runs on every exit path so a failed or
// cancelled batch never wedges the exporter.
func (e *Exporter) end() {
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
}

// Close releases the capture surface.
func (e *Exporter) Close() error {
	if e.capturer != nil {
		return e.capturer.Close()
	}
	return nil
}

// renderCapture resolves the template for one recipient and captures the
// resulting surface.
func (e *Exporter) renderCapture(ctx context.Context, t Template, r Recipient) ([]byte, error) {
	layout, err := RenderLayout(t.Design, t.Content, t.Overlays, &r)
	if err != nil {
		return nil, err
	}
	return e.capturer.Capture(ctx, layout)
}

// ExportOne renders and captures a single recipient's certificate and
// returns it as a one-page PDF named after the recipient.
func (e *Exporter) ExportOne(ctx context.Context, t Template, r Recipient) (Artifact, error) {
	if err := e.begin(); err != nil {
		return Artifact{}, err
	}
	defer e.end()

	capture, err := e.renderCapture(ctx, t.Snapshot(), r)
	if err != nil {
		return Artifact{}, err
	}

	pdf, err := encodeSinglePagePDF(capture)
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{Filename: CertificateFilename(r.Name), Data: pdf}, nil
}

// ExportAll processes recipients strictly in the given order, capturing each
// one onto the shared surface and accumulating the captures into the chosen
// sink. A capture failure skips that recipient and the batch continues; a
// sink encoding failure is fatal and discards the whole batch. Cancellation
// is cooperative: the context is checked between iterations only, and an
// in-flight capture is never interrupted. A cancelled run produces no
// artifact.
//
// The template is snapshotted at start, so concurrent editor mutations
// cannot leak into a running batch. The per-recipient results are returned
// alongside the artifact, in recipient order, for reporting.
func (e *Exporter) ExportAll(ctx context.Context, t Template, recipients []Recipient, sinkKind string, progress ProgressFunc) (Artifact, []RecipientResult, error) {
	if len(recipients) == 0 {
		return Artifact{}, nil, ErrNoRecipients
	}
	if sinkKind != SinkSinglePDF && sinkKind != SinkZIP {
		return Artifact{}, nil, fmt.Errorf("%w: %q", ErrUnknownSinkKind, sinkKind)
	}

	if err := e.begin(); err != nil {
		return Artifact{}, nil, err
	}
	defer e.end()

	snapshot := t.Snapshot()
	total := len(recipients)
	results := make([]RecipientResult, 0, total)

	pdf := newPDFSink()
	archive := newZipSink()

	for i, r := range recipients {
		// Cancellation checkpoint: between iterations only.
		if err := ctx.Err(); err != nil {
			return Artifact{}, results, fmt.Errorf("%w: %v", ErrExportCancelled, err)
		}

		start := e.now()
		capture, err := e.renderCapture(ctx, snapshot, r)
		result := RecipientResult{Recipient: r, Duration: time.Since(start)}

		if err != nil {
			// Recoverable: skip this recipient, keep the batch going.
			result.Err = err
			results = append(results, result)
			e.logger.Warn("skipping recipient: capture failed",
				zap.String("recipient_id", r.ID),
				zap.String("recipient_name", r.Name),
				zap.Error(err),
			)
			e.reportProgress(progress, i+1, total, r)
			continue
		}

		switch sinkKind {
		case SinkSinglePDF:
			pdf.AddPage(capture)
		case SinkZIP:
			entry, err := encodeSinglePagePDF(capture)
			if err != nil {
				return Artifact{}, results, err
			}
			if err := archive.AddEntry(CertificateFilename(r.Name), entry); err != nil {
				return Artifact{}, results, err
			}
		}

		results = append(results, result)
		e.reportProgress(progress, i+1, total, r)
	}

	var artifact Artifact
	switch sinkKind {
	case SinkSinglePDF:
		data, err := pdf.Finalize()
		if err != nil {
			return Artifact{}, results, err
		}
		artifact = Artifact{Filename: e.bulkPDFFilename(), Data: data}
	case SinkZIP:
		data, err := archive.Finalize()
		if err != nil {
			return Artifact{}, results, err
		}
		artifact = Artifact{Filename: ArchiveFilename, Data: data}
	}

	return artifact, results, nil
}

// reportProgress invokes the callback if one was provided.
func (e *Exporter) reportProgress(progress ProgressFunc, current, total int, r Recipient) {
	if progress != nil {
		progress(Progress{Current: current, Total: total, Recipient: r})
	}
}

// CertificateFilename builds the per-recipient PDF filename: whitespace runs
// in the name collapse to single underscores, other characters pass through.
func CertificateFilename(name string) string {
	return "Certificate_" + whitespaceRun.ReplaceAllString(name, "_") + ".pdf"
}

// bulkPDFFilename names the combined document with the current UTC date.
func (e *Exporter) bulkPDFFilename() string {
	return "All_Certificates_" + e.now().UTC().Format("2006-01-02") + ".pdf"
}
