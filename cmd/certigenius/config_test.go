package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	certigenius "github.com/naina18075-cpu/certigenius"
)

// writeProject writes a project file into a temp dir and returns its path.
func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing project file: %v", err)
	}
	return path
}

func TestLoadProject(t *testing.T) {
	t.Parallel()

	path := writeProject(t, `
design:
  theme: dark
  metallicTitle: true
content:
  title: Certificate of Excellence
recipients:
  inline:
    - name: Ada Lovelace
      id: p1
`)

	cfg, gotPath, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject() unexpected error: %v", err)
	}
	if gotPath != path {
		t.Errorf("LoadProject() path = %q, want %q", gotPath, path)
	}
	if cfg.Design.Theme != "dark" || !cfg.Design.MetallicTitle {
		t.Errorf("design = %+v, want dark metallic", cfg.Design)
	}
	if cfg.Content.Title != "Certificate of Excellence" {
		t.Errorf("title = %q, want parsed value", cfg.Content.Title)
	}
	if len(cfg.Recipients.Inline) != 1 || cfg.Recipients.Inline[0].Name != "Ada Lovelace" {
		t.Errorf("inline recipients = %+v, want Ada Lovelace", cfg.Recipients.Inline)
	}
}

func TestLoadProject_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     string
		wantErr error
	}{
		{name: "empty name", arg: "", wantErr: ErrEmptyProjectName},
		{name: "missing path", arg: filepath.Join(t.TempDir(), "nope.yaml"), wantErr: ErrProjectNotFound},
		{name: "unresolvable name", arg: "no-such-project-name", wantErr: ErrProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadProject(tt.arg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadProject(%q) error = %v, want %v", tt.arg, err, tt.wantErr)
			}
		})
	}
}

func TestLoadProject_UnknownField(t *testing.T) {
	t.Parallel()

	path := writeProject(t, "design:\n  colour: red\n")
	_, _, err := LoadProject(path)
	if !errors.Is(err, ErrProjectParse) {
		t.Errorf("LoadProject() error = %v, want %v", err, ErrProjectParse)
	}
}

func TestBuildTemplate_Defaults(t *testing.T) {
	t.Parallel()

	tmpl, err := buildTemplate(&ProjectConfig{}, t.TempDir())
	if err != nil {
		t.Fatalf("buildTemplate() unexpected error: %v", err)
	}

	want := certigenius.DefaultDesign()
	if tmpl.Design != want {
		t.Errorf("design = %+v, want defaults %+v", tmpl.Design, want)
	}
	if tmpl.Content.Title != "Certificate of Achievement" {
		t.Errorf("title = %q, want default", tmpl.Content.Title)
	}
	if tmpl.Content.Date == "" {
		t.Error("date not defaulted to today")
	}
}

func TestBuildTemplate_Overrides(t *testing.T) {
	t.Parallel()

	scale := 1.5
	cfg := &ProjectConfig{
		Design: DesignConfig{
			Theme:         "luxury",
			Font:          "font-cinzel",
			TitleColor:    "#000000",
			FontSizeScale: &scale,
		},
		Content: ContentConfig{
			Title: "Award of Merit",
			Body:  "Presented to {{name}}.",
			Date:  "June 1, 2024",
		},
	}

	tmpl, err := buildTemplate(cfg, t.TempDir())
	if err != nil {
		t.Fatalf("buildTemplate() unexpected error: %v", err)
	}
	if tmpl.Design.Theme != "luxury" || tmpl.Design.FontFamily != "font-cinzel" {
		t.Errorf("design presets = %+v, want overrides applied", tmpl.Design)
	}
	if tmpl.Design.FontSizeScale != 1.5 {
		t.Errorf("FontSizeScale = %g, want 1.5", tmpl.Design.FontSizeScale)
	}
	if tmpl.Content.BodyTemplate != "Presented to {{name}}." {
		t.Errorf("body = %q, want override", tmpl.Content.BodyTemplate)
	}
}

func TestBuildTemplate_Overlays(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logoPath := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(logoPath, []byte("fake image bytes"), 0o644); err != nil {
		t.Fatalf("writing logo: %v", err)
	}

	x, y, w := 100, 120, 200
	cfg := &ProjectConfig{
		Overlays: []OverlayConfig{
			{Image: "logo.png", Kind: "logo", X: &x, Y: &y, Width: &w},
			{Image: "data:image/png;base64,AAAA", Kind: "signature"},
		},
	}

	tmpl, err := buildTemplate(cfg, dir)
	if err != nil {
		t.Fatalf("buildTemplate() unexpected error: %v", err)
	}
	if len(tmpl.Overlays) != 2 {
		t.Fatalf("overlays = %d, want 2", len(tmpl.Overlays))
	}

	logo := tmpl.Overlays[0]
	if !strings.HasPrefix(logo.Src, "data:image/png;base64,") {
		t.Errorf("logo src = %q, want inlined data URI", logo.Src[:min(len(logo.Src), 40)])
	}
	if logo.X != 100 || logo.Y != 120 || logo.Width != 200 || logo.Height != 100 {
		t.Errorf("logo geometry = %+v, want overrides with default height", logo)
	}

	sig := tmpl.Overlays[1]
	if sig.Src != "data:image/png;base64,AAAA" {
		t.Errorf("signature src = %q, want passthrough", sig.Src)
	}
	if sig.X != 650 || sig.Y != 550 {
		t.Errorf("signature at (%d,%d), want default placement", sig.X, sig.Y)
	}
}

func TestBuildTemplate_MissingOverlayImage(t *testing.T) {
	t.Parallel()

	cfg := &ProjectConfig{
		Overlays: []OverlayConfig{{Image: "missing.png", Kind: "logo"}},
	}
	_, err := buildTemplate(cfg, t.TempDir())
	if !errors.Is(err, ErrOverlayImage) {
		t.Errorf("buildTemplate() error = %v, want %v", err, ErrOverlayImage)
	}
}

func TestBuildStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "list.csv")
	if err := os.WriteFile(csvPath, []byte("name,email\nBob,bob@example.com\n"), 0o644); err != nil {
		t.Fatalf("writing CSV: %v", err)
	}

	cfg := &ProjectConfig{
		Recipients: RecipientsConfig{
			CSV: "list.csv",
			Inline: []RecipientConfig{
				{ID: "p1", Name: "Ada", Extra: map[string]string{"rank": "Gold"}},
			},
		},
	}

	store, err := buildStore(cfg, dir)
	if err != nil {
		t.Fatalf("buildStore() unexpected error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	// Inline entries prepend ahead of the imported rows.
	all := store.All()
	if all[0].Name != "Ada" || all[1].Name != "Bob" {
		t.Errorf("store order = [%s %s], want [Ada Bob]", all[0].Name, all[1].Name)
	}
	if all[0].Extra["rank"] != "Gold" {
		t.Errorf(`Ada.Extra["rank"] = %q, want "Gold"`, all[0].Extra["rank"])
	}
}

func TestBuildStore_MissingInlineName(t *testing.T) {
	t.Parallel()

	cfg := &ProjectConfig{
		Recipients: RecipientsConfig{Inline: []RecipientConfig{{ID: "p1"}}},
	}
	_, err := buildStore(cfg, t.TempDir())
	if !errors.Is(err, certigenius.ErrMissingName) {
		t.Errorf("buildStore() error = %v, want %v", err, certigenius.ErrMissingName)
	}
}

func TestOverlayDataURI(t *testing.T) {
	t.Parallel()

	t.Run("data URI passthrough", func(t *testing.T) {
		got, err := overlayDataURI("data:image/jpeg;base64,XYZ", t.TempDir())
		if err != nil {
			t.Fatalf("overlayDataURI() unexpected error: %v", err)
		}
		if got != "data:image/jpeg;base64,XYZ" {
			t.Errorf("overlayDataURI() = %q, want passthrough", got)
		}
	})

	t.Run("empty image rejected", func(t *testing.T) {
		_, err := overlayDataURI("", t.TempDir())
		if !errors.Is(err, ErrOverlayImage) {
			t.Errorf("overlayDataURI() error = %v, want %v", err, ErrOverlayImage)
		}
	})

	t.Run("unknown extension falls back to png", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "image.certimg")
		if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
			t.Fatalf("writing image: %v", err)
		}
		got, err := overlayDataURI(path, dir)
		if err != nil {
			t.Fatalf("overlayDataURI() unexpected error: %v", err)
		}
		if !strings.HasPrefix(got, "data:image/png;base64,") {
			t.Errorf("overlayDataURI() = %q, want image/png fallback", got)
		}
	})
}
