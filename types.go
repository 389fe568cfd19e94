package certigenius

import (
	"fmt"

	"github.com/google/uuid"
)

// Overlay kind constants.
const (
	OverlayLogo      = "logo"
	OverlaySignature = "signature"
)

// Default overlay placement by kind, matching the editor's upload defaults.
const (
	logoDefaultX      = 50
	logoDefaultY      = 50
	signatureDefaultX = 650
	signatureDefaultY = 550

	overlayDefaultWidth  = 150
	overlayDefaultHeight = 100
)

// TemplateDesign describes the visual styling shared by every certificate
// rendered from a template.
type TemplateDesign struct {
	Theme         string  // theme preset id, unknown ids fall back to the first preset
	FontFamily    string  // font preset id, unknown ids fall back to the first preset
	TitleColor    string  // hex color, e.g. "#1e293b"
	BodyColor     string  // hex color
	AccentColor   string  // hex color, used for the recipient name
	MetallicTitle bool    // render the title with a metallic gold effect
	FontSizeScale float64 // multiplier applied to the title size, must be > 0
}

// Validate checks that the design is renderable.
func (d TemplateDesign) Validate() error {
	if d.FontSizeScale <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidFontScale, d.FontSizeScale)
	}
	return nil
}

// DefaultDesign returns the classic preset used for new templates.
func DefaultDesign() TemplateDesign {
	return TemplateDesign{
		Theme:         "classic",
		FontFamily:    "font-playfair",
		TitleColor:    "#1e293b",
		BodyColor:     "#334155",
		AccentColor:   "#D4AF37",
		MetallicTitle: false,
		FontSizeScale: 1,
	}
}

// TemplateContent holds the textual content of a certificate. BodyTemplate
// may contain {{field}} tokens resolved against each recipient; all fields
// may be empty.
type TemplateContent struct {
	Title        string
	Subtitle     string
	BodyTemplate string
	SignerName   string
	SignerTitle  string
	Date         string
}

// DefaultContent returns placeholder content for new templates.
func DefaultContent(date string) TemplateContent {
	return TemplateContent{
		Title:        "Certificate of Achievement",
		Subtitle:     "This is proudly presented to",
		BodyTemplate: "For outstanding performance and dedication in the Annual Tech Hackathon 2024. Your contribution has been invaluable to the success of the event.",
		SignerName:   "John Doe",
		SignerTitle:  "Director of Operations",
		Date:         date,
	}
}

// ImageOverlay is a positioned decorative image (logo or signature) painted
// above the static certificate layout. Overlays are owned by their Template
// and identified by ID.
type ImageOverlay struct {
	ID     string
	Src    string // file path or data URI of the image
	X      int
	Y      int
	Width  int
	Height int
	Kind   string // OverlayLogo or OverlaySignature
}

// Validate checks overlay geometry and kind.
func (o ImageOverlay) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidOverlaySize, o.Width, o.Height)
	}
	switch o.Kind {
	case OverlayLogo, OverlaySignature:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOverlayKind, o.Kind)
	}
}

// Template aggregates the design, content, and overlays that together
// describe one certificate layout.
type Template struct {
	Design   TemplateDesign
	Content  TemplateContent
	Overlays []ImageOverlay
}

// AddOverlay appends a new overlay with kind-based default placement and a
// generated id, and returns it.
func (t *Template) AddOverlay(src, kind string) (ImageOverlay, error) {
	o := ImageOverlay{
		ID:     uuid.NewString(),
		Src:    src,
		X:      logoDefaultX,
		Y:      logoDefaultY,
		Width:  overlayDefaultWidth,
		Height: overlayDefaultHeight,
		Kind:   kind,
	}
	if kind == OverlaySignature {
		o.X = signatureDefaultX
		o.Y = signatureDefaultY
	}
	if err := o.Validate(); err != nil {
		return ImageOverlay{}, err
	}
	t.Overlays = append(t.Overlays, o)
	return o, nil
}

// MoveOverlay updates the position of the overlay with the given id.
// Returns false if no overlay matches.
func (t *Template) MoveOverlay(id string, x, y int) bool {
	for i := range t.Overlays {
		if t.Overlays[i].ID == id {
			t.Overlays[i].X = x
			t.Overlays[i].Y = y
			return true
		}
	}
	return false
}

// RemoveOverlay deletes the overlay with the given id.
// Returns false if no overlay matches.
func (t *Template) RemoveOverlay(id string) bool {
	for i := range t.Overlays {
		if t.Overlays[i].ID == id {
			t.Overlays = append(t.Overlays[:i], t.Overlays[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy of the template. Exports operate on a
// snapshot so editor mutations cannot affect a running batch.
func (t Template) Snapshot() Template {
	cp := t
	cp.Overlays = make([]ImageOverlay, len(t.Overlays))
	copy(cp.Overlays, t.Overlays)
	return cp
}

// Validate checks the design and every overlay.
func (t Template) Validate() error {
	if err := t.Design.Validate(); err != nil {
		return err
	}
	for _, o := range t.Overlays {
		if err := o.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Artifact is a downloadable export result.
type Artifact struct {
	Filename string
	Data     []byte
}
