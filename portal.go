package certigenius

import (
	"context"
	"fmt"
	"strings"
)

// Portal is the read-only participant surface. It holds an explicit snapshot
// of the admin template and recipient list taken at construction time, so
// later admin edits never leak into participant lookups.
type Portal struct {
	template   Template
	recipients []Recipient
	exporter   *Exporter
}

// NewPortal snapshots the template and recipients and returns a portal that
// serves searches and certificate downloads from that snapshot.
func NewPortal(t Template, recipients []Recipient, exporter *Exporter) *Portal {
	rs := make([]Recipient, len(recipients))
	for i, r := range recipients {
		rs[i] = r.clone()
	}
	return &Portal{
		template:   t.Snapshot(),
		recipients: rs,
		exporter:   exporter,
	}
}

// Search matches the query case-insensitively against recipient id or name
// and returns the first match. A miss is an explicit not-found, distinct
// from any system error.
func (p *Portal) Search(query string) (Recipient, bool) {
	for _, r := range p.recipients {
		if strings.EqualFold(r.ID, query) || strings.EqualFold(r.Name, query) {
			return r.clone(), true
		}
	}
	return Recipient{}, false
}

// Certificate searches for the recipient and renders their certificate as a
// single-page PDF. Returns ErrRecipientNotFound on a search miss.
func (p *Portal) Certificate(ctx context.Context, query string) (Artifact, error) {
	r, ok := p.Search(query)
	if !ok {
		return Artifact{}, fmt.Errorf("%w: %q", ErrRecipientNotFound, query)
	}
	return p.exporter.ExportOne(ctx, p.template, r)
}
