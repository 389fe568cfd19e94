package certigenius

import (
	"bytes"
	"fmt"
	"io"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// importSpec places each capture on a full landscape page of the fixed
// certificate geometry. The captures share the page's aspect ratio, so a
// relative scale of 1 fills the page edge to edge.
var importSpec = fmt.Sprintf("dim:%d %d, pos:c, sc:1.0", PageWidthPx, PageHeightPx)

// pdfSink accumulates page captures and finalizes them into one multi-page
// PDF. Nothing is written until Finalize, so an abandoned batch leaves no
// partial document behind.
type pdfSink struct {
	pages [][]byte
}

// newPDFSink returns an empty accumulator.
func newPDFSink() *pdfSink {
	return &pdfSink{}
}

// AddPage appends one JPEG capture as the next page. The first capture
// becomes page 1; page order is append order.
func (s *pdfSink) AddPage(capture []byte) {
	s.pages = append(s.pages, capture)
}

// PageCount returns the number of accumulated pages.
func (s *pdfSink) PageCount() int {
	return len(s.pages)
}

// Finalize encodes the accumulated captures into a single PDF, one page per
// capture. A failure here is fatal to the whole batch.
func (s *pdfSink) Finalize() ([]byte, error) {
	if len(s.pages) == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrPDFEncode)
	}

	imp, err := pdfapi.Import(importSpec, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFEncode, err)
	}

	readers := make([]io.Reader, len(s.pages))
	for i, page := range s.pages {
		readers[i] = bytes.NewReader(page)
	}

	var buf bytes.Buffer
	if err := pdfapi.ImportImages(nil, &buf, readers, imp, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFEncode, err)
	}
	return buf.Bytes(), nil
}

// encodeSinglePagePDF wraps one capture into a one-page PDF.
func encodeSinglePagePDF(capture []byte) ([]byte, error) {
	sink := newPDFSink()
	sink.AddPage(capture)
	return sink.Finalize()
}
