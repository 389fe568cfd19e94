package certigenius

// Recipient status values.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusError   = "error"
)

// UnknownParticipantName is the display name given to imported records with
// no name column.
const UnknownParticipantName = "Unknown Participant"

// Recipient is one record receiving a certificate. Known fields are typed;
// unrecognized import columns pass through in Extra as string values.
type Recipient struct {
	ID     string
	Name   string
	Email  string
	Status string
	Extra  map[string]string
}

// SampleRecipient returns the stand-in record used when previewing a
// template with no recipient bound.
func SampleRecipient() Recipient {
	return Recipient{
		ID:     "12345",
		Name:   "John A. Sample",
		Status: StatusPending,
		Extra:  map[string]string{"rank": "1st", "role": "Winner"},
	}
}

// Field looks up a substitution key on the recipient, case-sensitively:
// known fields first, then extra import columns. Empty values report as
// absent so unresolved tokens remain visible after substitution.
func (r *Recipient) Field(key string) (string, bool) {
	var value string
	switch key {
	case "id":
		value = r.ID
	case "name":
		value = r.Name
	case "email":
		value = r.Email
	case "status":
		value = r.Status
	default:
		value = r.Extra[key]
	}
	return value, value != ""
}

// clone returns a copy with its own Extra map.
func (r Recipient) clone() Recipient {
	cp := r
	if r.Extra != nil {
		cp.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			cp.Extra[k] = v
		}
	}
	return cp
}
