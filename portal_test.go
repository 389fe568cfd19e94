package certigenius

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func newTestPortal(t *testing.T, mock *mockCapturer) *Portal {
	t.Helper()
	recipients := []Recipient{
		{ID: "P-100", Name: "Grace Hopper", Status: StatusPending},
		{ID: "P-200", Name: "Alan Turing", Status: StatusSent},
	}
	return NewPortal(testTemplate(), recipients, newTestExporter(t, mock))
}

func TestPortalSearch(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t, &mockCapturer{})

	tests := []struct {
		name    string
		query   string
		wantID  string
		wantHit bool
	}{
		{name: "by id", query: "P-100", wantID: "P-100", wantHit: true},
		{name: "by name case-insensitive", query: "alan turing", wantID: "P-200", wantHit: true},
		{name: "miss", query: "nobody", wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := p.Search(tt.query)
			if ok != tt.wantHit {
				t.Fatalf("Search(%q) hit = %v, want %v", tt.query, ok, tt.wantHit)
			}
			if ok && r.ID != tt.wantID {
				t.Errorf("Search(%q).ID = %q, want %q", tt.query, r.ID, tt.wantID)
			}
		})
	}
}

func TestPortalCertificate(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t, &mockCapturer{jpeg: testJPEG(t)})

	artifact, err := p.Certificate(context.Background(), "grace hopper")
	if err != nil {
		t.Fatalf("Certificate() unexpected error: %v", err)
	}
	if artifact.Filename != "Certificate_Grace_Hopper.pdf" {
		t.Errorf("Filename = %q, want %q", artifact.Filename, "Certificate_Grace_Hopper.pdf")
	}
	if !bytes.HasPrefix(artifact.Data, []byte("%PDF")) {
		t.Error("artifact data is not a PDF")
	}
}

func TestPortalCertificate_NotFound(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t, &mockCapturer{})

	_, err := p.Certificate(context.Background(), "nobody")
	if !errors.Is(err, ErrRecipientNotFound) {
		t.Errorf("Certificate() error = %v, want %v", err, ErrRecipientNotFound)
	}
}

func TestPortalSnapshotIsolation(t *testing.T) {
	t.Parallel()

	recipients := []Recipient{{ID: "P-100", Name: "Grace Hopper"}}
	p := NewPortal(testTemplate(), recipients, newTestExporter(t, &mockCapturer{}))

	// Edits to the source list after construction never reach the portal.
	recipients[0].Name = "Renamed"

	r, ok := p.Search("P-100")
	if !ok {
		t.Fatal("Search() missed a snapshotted recipient")
	}
	if r.Name != "Grace Hopper" {
		t.Errorf("portal recipient name = %q, want snapshot value", r.Name)
	}
}
