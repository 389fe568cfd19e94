// Package certigenius renders per-recipient certificates from a shared
// template and exports them as PDF documents or ZIP archives.
//
// The pipeline has four stages: a pure layout render that resolves the
// template against one recipient, a headless-browser capture that rasterizes
// the layout, sinks that accumulate captures into a multi-page PDF or an
// archive of single-page PDFs, and an Exporter that drives the stages
// sequentially across a recipient list with progress reporting and
// cooperative cancellation.
package certigenius
