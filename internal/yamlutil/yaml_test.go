package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/naina18075-cpu/certigenius/internal/yamlutil"
)

type testProject struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
	Dark  bool    `yaml:"dark"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("title: Gala 2026\nscale: 1.5\ndark: true"),
			dest: &testProject{},
			check: func(t *testing.T, v any) {
				p := v.(*testProject)
				if p.Title != "Gala 2026" {
					t.Errorf("Title = %q, want %q", p.Title, "Gala 2026")
				}
				if p.Scale != 1.5 {
					t.Errorf("Scale = %g, want 1.5", p.Scale)
				}
				if !p.Dark {
					t.Error("Dark = false, want true")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testProject{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("title: x\nmystery: y"), &testProject{})
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want yamlutil: prefix", err)
	}
}

func TestUnmarshal_InvalidSyntax(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("title: [unclosed"), &testProject{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want yamlutil: prefix", err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original := testProject{Title: "Science Fair", Scale: 1.25, Dark: true}

	data, err := yamlutil.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded testProject
	if err := yamlutil.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded != original {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}

// Note: this test modifies the global MaxInputSize variable, so it cannot
// run in parallel with other tests.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 100

	small := make([]byte, 100)
	copy(small, []byte("title: x"))
	if err := yamlutil.Unmarshal(small, &testProject{}); err != nil {
		t.Errorf("input at limit: unexpected error %v", err)
	}

	big := make([]byte, 101)
	copy(big, []byte("title: x"))
	if err := yamlutil.Unmarshal(big, &testProject{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("input over limit = %v, want ErrInputTooLarge", err)
	}
	if err := yamlutil.UnmarshalStrict(big, &testProject{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("strict input over limit = %v, want ErrInputTooLarge", err)
	}
}
