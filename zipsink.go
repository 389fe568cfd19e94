package certigenius

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// archiveFolder is the directory inside the archive holding the
// per-recipient certificates.
const archiveFolder = "Certificates"

// zipSink accumulates named single-page PDFs into a ZIP archive. Like the
// PDF sink, output exists only after Finalize.
type zipSink struct {
	buf    bytes.Buffer
	writer *zip.Writer
}

// newZipSink returns an empty archive accumulator.
func newZipSink() *zipSink {
	s := &zipSink{}
	s.writer = zip.NewWriter(&s.buf)
	return s
}

// AddEntry stores one PDF under the archive folder. Entry order is append
// order; duplicate names are permitted, mirroring the store's duplicate-id
// stance.
func (s *zipSink) AddEntry(name string, pdf []byte) error {
	w, err := s.writer.Create(archiveFolder + "/" + name)
	if err != nil {
		return fmt.Errorf("%w: creating entry %q: %v", ErrArchiveEncode, name, err)
	}
	if _, err := w.Write(pdf); err != nil {
		return fmt.Errorf("%w: writing entry %q: %v", ErrArchiveEncode, name, err)
	}
	return nil
}

// Finalize closes the archive and returns its bytes.
func (s *zipSink) Finalize() ([]byte, error) {
	if err := s.writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveEncode, err)
	}
	return s.buf.Bytes(), nil
}
