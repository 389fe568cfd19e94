package certigenius

import "testing"

func TestSubstitute(t *testing.T) {
	t.Parallel()

	jane := &Recipient{
		ID:     "a1",
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Status: StatusPending,
		Extra:  map[string]string{"rank": "Gold"},
	}

	tests := []struct {
		name      string
		text      string
		recipient *Recipient
		want      string
	}{
		{
			name:      "known fields resolve",
			text:      "Congrats {{name}}, ID {{id}}",
			recipient: jane,
			want:      "Congrats Jane Doe, ID a1",
		},
		{
			name:      "absent key stays literal",
			text:      "Congrats {{name}}, ID {{id}}, dept {{dept}}",
			recipient: jane,
			want:      "Congrats Jane Doe, ID a1, dept {{dept}}",
		},
		{
			name:      "extra field resolves",
			text:      "Awarded {{rank}} tier",
			recipient: jane,
			want:      "Awarded Gold tier",
		},
		{
			name:      "empty value stays literal",
			text:      "Contact {{email}}",
			recipient: &Recipient{Name: "Bo", Email: ""},
			want:      "Contact {{email}}",
		},
		{
			name:      "keys are case sensitive",
			text:      "Hello {{Name}}",
			recipient: jane,
			want:      "Hello {{Name}}",
		},
		{
			name:      "malformed tokens untouched",
			text:      "{{name} {name}} {{first name}}",
			recipient: jane,
			want:      "{{name} {name}} {{first name}}",
		},
		{
			name:      "adjacent tokens",
			text:      "{{name}}{{id}}",
			recipient: jane,
			want:      "Jane Doea1",
		},
		{
			name:      "nil recipient passes through",
			text:      "Hello {{name}}",
			recipient: nil,
			want:      "Hello {{name}}",
		},
		{
			name:      "no tokens",
			text:      "plain text",
			recipient: jane,
			want:      "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(tt.text, tt.recipient)
			if got != tt.want {
				t.Errorf("Substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSampleRecipient(t *testing.T) {
	t.Parallel()

	r := SampleRecipient()
	if r.Name != "John A. Sample" || r.ID != "12345" {
		t.Errorf("SampleRecipient() = %+v, want the fixed stand-in record", r)
	}
	if got := Substitute("{{name}} took {{rank}} as {{role}}", &r); got != "John A. Sample took 1st as Winner" {
		t.Errorf("Substitute() with sample = %q", got)
	}
}

func TestRecipientField(t *testing.T) {
	t.Parallel()

	r := &Recipient{
		ID:     "p1",
		Name:   "Ada",
		Status: StatusSent,
		Extra:  map[string]string{"dept": "Engineering", "empty": ""},
	}

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{key: "id", want: "p1", wantOK: true},
		{key: "name", want: "Ada", wantOK: true},
		{key: "status", want: StatusSent, wantOK: true},
		{key: "email", want: "", wantOK: false},
		{key: "dept", want: "Engineering", wantOK: true},
		{key: "empty", want: "", wantOK: false},
		{key: "missing", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := r.Field(tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Field(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
