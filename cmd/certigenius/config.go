package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	certigenius "github.com/naina18075-cpu/certigenius"
	"github.com/naina18075-cpu/certigenius/internal/fileutil"
	"github.com/naina18075-cpu/certigenius/internal/yamlutil"
)

// Sentinel errors for project file operations.
var (
	ErrProjectNotFound  = errors.New("project file not found")
	ErrEmptyProjectName = errors.New("project name cannot be empty")
	ErrProjectParse     = errors.New("failed to parse project file")
	ErrOverlayImage     = errors.New("failed to load overlay image")
)

// ProjectConfig holds a complete certificate project: the template and
// the recipient list.
type ProjectConfig struct {
	Design     DesignConfig     `yaml:"design"`
	Content    ContentConfig    `yaml:"content"`
	Overlays   []OverlayConfig  `yaml:"overlays"`
	Recipients RecipientsConfig `yaml:"recipients"`
	Export     ExportConfig     `yaml:"export"`
}

// DesignConfig defines the visual styling of the certificate.
type DesignConfig struct {
	Theme         string   `yaml:"theme"`         // theme preset id (empty = classic)
	Font          string   `yaml:"font"`          // font preset id (empty = font-playfair)
	TitleColor    string   `yaml:"titleColor"`    // hex color
	BodyColor     string   `yaml:"bodyColor"`     // hex color
	AccentColor   string   `yaml:"accentColor"`   // hex color
	MetallicTitle bool     `yaml:"metallicTitle"` // gold gradient title
	FontSizeScale *float64 `yaml:"fontSizeScale"` // title size multiplier (empty = 1.0)
}

// ContentConfig defines the certificate text. Body may contain {{field}}
// tokens resolved per recipient.
type ContentConfig struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Body        string `yaml:"body"`
	SignerName  string `yaml:"signerName"`
	SignerTitle string `yaml:"signerTitle"`
	Date        string `yaml:"date"` // empty = today
}

// OverlayConfig defines a logo or signature image placed on the layout.
type OverlayConfig struct {
	Image  string `yaml:"image"` // image file path or data URI
	Kind   string `yaml:"kind"`  // "logo" or "signature"
	X      *int   `yaml:"x"`
	Y      *int   `yaml:"y"`
	Width  *int   `yaml:"width"`
	Height *int   `yaml:"height"`
}

// RecipientsConfig defines the recipient list: an optional CSV file plus
// inline entries.
type RecipientsConfig struct {
	CSV    string            `yaml:"csv"` // path to a CSV file with a header row
	Inline []RecipientConfig `yaml:"inline"`
}

// RecipientConfig is one inline recipient entry. Extra fields become
// substitution values for {{field}} tokens.
type RecipientConfig struct {
	ID    string            `yaml:"id"`
	Name  string            `yaml:"name"`
	Email string            `yaml:"email"`
	Extra map[string]string `yaml:"extra"`
}

// ExportConfig defines export defaults overridable by flags.
type ExportConfig struct {
	OutputDir string `yaml:"outputDir"` // default output directory (empty = current)
	Timeout   string `yaml:"timeout"`   // per-capture timeout, e.g. "30s"
}

// LoadProject loads a project from a file path or project name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a project name and searched in standard
// locations. Returns the config and the resolved file path; relative
// paths inside the project resolve against that file's directory.
// Returns error if the file is not found (no silent fallback).
func LoadProject(nameOrPath string) (*ProjectConfig, string, error) {
	if nameOrPath == "" {
		return nil, "", ErrEmptyProjectName
	}

	var projectPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		projectPath = nameOrPath
	} else {
		projectPath, err = resolveProjectPath(nameOrPath)
		if err != nil {
			return nil, "", err
		}
	}

	data, err := os.ReadFile(projectPath) // #nosec G304 -- project path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrProjectNotFound, projectPath)
		}
		return nil, "", fmt.Errorf("reading project file: %w", err)
	}

	var cfg ProjectConfig
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrProjectParse, err)
	}

	return &cfg, projectPath, nil
}

// resolveProjectPath searches for a project file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/certigenius/
func resolveProjectPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "certigenius", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrProjectNotFound, strings.Join(triedPaths, ", "))
}

// buildTemplate converts a project config into a renderable template.
// Overlay image paths are resolved relative to baseDir and inlined as
// data URIs so captures need no filesystem access.
func buildTemplate(cfg *ProjectConfig, baseDir string) (certigenius.Template, error) {
	design := certigenius.DefaultDesign()
	if cfg.Design.Theme != "" {
		design.Theme = cfg.Design.Theme
	}
	if cfg.Design.Font != "" {
		design.FontFamily = cfg.Design.Font
	}
	if cfg.Design.TitleColor != "" {
		design.TitleColor = cfg.Design.TitleColor
	}
	if cfg.Design.BodyColor != "" {
		design.BodyColor = cfg.Design.BodyColor
	}
	if cfg.Design.AccentColor != "" {
		design.AccentColor = cfg.Design.AccentColor
	}
	design.MetallicTitle = cfg.Design.MetallicTitle
	if cfg.Design.FontSizeScale != nil {
		design.FontSizeScale = *cfg.Design.FontSizeScale
	}

	content := certigenius.DefaultContent(time.Now().Format("January 2, 2006"))
	if cfg.Content.Title != "" {
		content.Title = cfg.Content.Title
	}
	if cfg.Content.Subtitle != "" {
		content.Subtitle = cfg.Content.Subtitle
	}
	if cfg.Content.Body != "" {
		content.BodyTemplate = cfg.Content.Body
	}
	if cfg.Content.SignerName != "" {
		content.SignerName = cfg.Content.SignerName
	}
	if cfg.Content.SignerTitle != "" {
		content.SignerTitle = cfg.Content.SignerTitle
	}
	if cfg.Content.Date != "" {
		content.Date = cfg.Content.Date
	}

	tmpl := certigenius.Template{Design: design, Content: content}

	for i, oc := range cfg.Overlays {
		src, err := overlayDataURI(oc.Image, baseDir)
		if err != nil {
			return certigenius.Template{}, fmt.Errorf("overlay %d: %w", i, err)
		}
		kind := oc.Kind
		if kind == "" {
			kind = certigenius.OverlayLogo
		}
		o, err := tmpl.AddOverlay(src, kind)
		if err != nil {
			return certigenius.Template{}, fmt.Errorf("overlay %d: %w", i, err)
		}
		if oc.X != nil && oc.Y != nil {
			tmpl.MoveOverlay(o.ID, *oc.X, *oc.Y)
		}
		if oc.Width != nil || oc.Height != nil {
			resizeOverlay(&tmpl, o.ID, oc.Width, oc.Height)
		}
	}

	if err := tmpl.Validate(); err != nil {
		return certigenius.Template{}, err
	}
	return tmpl, nil
}

// resizeOverlay applies optional width/height overrides to an overlay.
func resizeOverlay(t *certigenius.Template, id string, width, height *int) {
	for i := range t.Overlays {
		if t.Overlays[i].ID == id {
			if width != nil {
				t.Overlays[i].Width = *width
			}
			if height != nil {
				t.Overlays[i].Height = *height
			}
			return
		}
	}
}

// overlayDataURI inlines an image file as a base64 data URI. A value that
// is already a data URI passes through unchanged.
func overlayDataURI(image, baseDir string) (string, error) {
	if image == "" {
		return "", fmt.Errorf("%w: empty image", ErrOverlayImage)
	}
	if strings.HasPrefix(image, "data:") {
		return image, nil
	}

	path := image
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- image path comes from the project file
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOverlayImage, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// starterProject serializes a ready-to-edit project with the default
// design, default content, and one example recipient.
func starterProject() ([]byte, error) {
	scale := 1.0
	cfg := ProjectConfig{
		Design: DesignConfig{
			Theme:         "classic",
			Font:          "font-playfair",
			TitleColor:    "#1e293b",
			BodyColor:     "#334155",
			AccentColor:   "#D4AF37",
			FontSizeScale: &scale,
		},
		Content: ContentConfig{
			Title:       "Certificate of Achievement",
			Subtitle:    "This is proudly presented to",
			Body:        "For outstanding performance and dedication in the Annual Tech Hackathon 2024. Your contribution has been invaluable to the success of the event.",
			SignerName:  "John Doe",
			SignerTitle: "Director of Operations",
		},
		Recipients: RecipientsConfig{
			Inline: []RecipientConfig{
				{ID: "p1", Name: "Jane Doe", Email: "jane@example.com"},
			},
		},
	}

	data, err := yamlutil.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("serializing starter project: %w", err)
	}
	return data, nil
}

// buildStore converts a project config into a recipient store. CSV rows
// load first, inline entries prepend in order after them.
func buildStore(cfg *ProjectConfig, baseDir string) (*certigenius.RecipientStore, error) {
	store := certigenius.NewRecipientStore()

	if cfg.Recipients.CSV != "" {
		path := cfg.Recipients.CSV
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		f, err := os.Open(path) // #nosec G304 -- CSV path comes from the project file
		if err != nil {
			return nil, fmt.Errorf("opening recipient CSV: %w", err)
		}
		defer func() { _ = f.Close() }()

		if _, err := store.ImportCSV(f); err != nil {
			return nil, fmt.Errorf("importing recipient CSV: %w", err)
		}
	}

	for _, rc := range cfg.Recipients.Inline {
		r := certigenius.Recipient{
			ID:    rc.ID,
			Name:  rc.Name,
			Email: rc.Email,
			Extra: rc.Extra,
		}
		if _, err := store.AddOne(r); err != nil {
			return nil, fmt.Errorf("inline recipient %q: %w", rc.Name, err)
		}
	}

	return store, nil
}
