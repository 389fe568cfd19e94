package certigenius

import (
	"strings"

	"github.com/google/uuid"
)

// RecipientStore is an ordered collection of recipients. Single adds prepend,
// bulk imports append in file order. Ids are not deduplicated: duplicate ids
// are permitted and every id lookup resolves to the first match in store
// order.
type RecipientStore struct {
	recipients []Recipient
}

// NewRecipientStore returns an empty store.
func NewRecipientStore() *RecipientStore {
	return &RecipientStore{}
}

// Len returns the number of recipients.
func (s *RecipientStore) Len() int {
	return len(s.recipients)
}

// All returns a copy of the recipients in store order.
func (s *RecipientStore) All() []Recipient {
	out := make([]Recipient, len(s.recipients))
	for i, r := range s.recipients {
		out[i] = r.clone()
	}
	return out
}

// AddOne inserts a single recipient at the front of the store. Name is
// required; a missing id is replaced with a generated token, a missing
// status defaults to pending.
func (s *RecipientStore) AddOne(r Recipient) (Recipient, error) {
	if r.Name == "" {
		return Recipient{}, ErrMissingName
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	s.recipients = append([]Recipient{r}, s.recipients...)
	return r.clone(), nil
}

// AddBulk appends imported records to the end of the store, preserving
// import order. Field keys are normalized to lowercase; missing id, name,
// and email columns are defaulted, and status is always initialized to
// pending regardless of imported content. Returns the stored recipients.
func (s *RecipientStore) AddBulk(records []map[string]string) []Recipient {
	added := make([]Recipient, 0, len(records))
	for _, rec := range records {
		r := Recipient{Status: StatusPending}
		for key, value := range rec {
			switch strings.ToLower(key) {
			case "id":
				r.ID = value
			case "name":
				r.Name = value
			case "email":
				r.Email = value
			case "status":
				// discarded on import
			default:
				if r.Extra == nil {
					r.Extra = make(map[string]string)
				}
				r.Extra[strings.ToLower(key)] = value
			}
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.Name == "" {
			r.Name = UnknownParticipantName
		}
		s.recipients = append(s.recipients, r)
		added = append(added, r.clone())
	}
	return added
}

// Remove deletes the first recipient matching id. Returns false if no
// recipient matches.
func (s *RecipientStore) Remove(id string) bool {
	for i := range s.recipients {
		if s.recipients[i].ID == id {
			s.recipients = append(s.recipients[:i], s.recipients[i+1:]...)
			return true
		}
	}
	return false
}

// FindByIDOrName returns the first recipient whose id or name matches the
// query case-insensitively. A miss is an explicit not-found, not an error.
func (s *RecipientStore) FindByIDOrName(query string) (Recipient, bool) {
	for _, r := range s.recipients {
		if strings.EqualFold(r.ID, query) || strings.EqualFold(r.Name, query) {
			return r.clone(), true
		}
	}
	return Recipient{}, false
}
