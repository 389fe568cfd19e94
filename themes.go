package certigenius

import "html/template"

// ThemePreset describes one background styling variant. CSS is a fragment of
// declarations applied to the certificate surface.
type ThemePreset struct {
	ID   string
	Name string
	CSS  template.CSS
	Dark bool
}

// FontPreset describes one typography variant. Script presets render the
// recipient name at a larger size.
type FontPreset struct {
	ID     string
	Name   string
	Family template.CSS
	Script bool
}

// Known theme presets. The first entry is the fallback for unknown ids.
var themePresets = []ThemePreset{
	{ID: "classic", Name: "Classic Border", CSS: "background:#ffffff;border:20px double #1e293b;"},
	{ID: "modern", Name: "Modern Minimal", CSS: "background:#ffffff;border-bottom:8px solid #2563eb;"},
	{ID: "dark", Name: "Elegant Dark", CSS: "background:#0f172a;color:#ffffff;border:2px solid #d4af37;", Dark: true},
	{ID: "parchment", Name: "Old Parchment", CSS: "background:#fdf6e3;border:10px solid #d4c5b0;"},
	{ID: "tech", Name: "Tech Future", CSS: "background:#f8fafc;border-left:30px solid #4f46e5;border-right:30px solid #4f46e5;"},
	{ID: "luxury", Name: "Luxury Gold", CSS: "background:#fafaf9;border:4px solid #d4af37;outline:4px solid #f0d98c;outline-offset:4px;"},
	{ID: "nature", Name: "Organic Green", CSS: "background:#f0fdf4;border-top:20px solid #047857;"},
	{ID: "corporate", Name: "Corporate Blue", CSS: "background:#ffffff;border:4px solid #1e3a8a;box-shadow:0 20px 25px rgba(0,0,0,0.15);"},
	{ID: "artdeco", Name: "Art Deco", CSS: "background:#000000;border:1px solid #f0d98c;outline:4px solid #d4af37;outline-offset:8px;", Dark: true},
	{ID: "clean", Name: "Super Clean", CSS: "background:#ffffff;box-shadow:0 10px 15px rgba(0,0,0,0.1);"},
}

// Known font presets. The first entry is the fallback for unknown ids.
var fontPresets = []FontPreset{
	{ID: "font-playfair", Name: "Playfair Display (Serif)", Family: "'Playfair Display', serif"},
	{ID: "font-cinzel", Name: "Cinzel (Elegant)", Family: "'Cinzel', serif"},
	{ID: "font-inter", Name: "Inter (Modern)", Family: "'Inter', sans-serif"},
	{ID: "font-roboto", Name: "Roboto Slab (Bold)", Family: "'Roboto Slab', serif"},
	{ID: "font-montserrat", Name: "Montserrat (Clean)", Family: "'Montserrat', sans-serif"},
	{ID: "font-greatvibes", Name: "Great Vibes (Script)", Family: "'Great Vibes', cursive", Script: true},
}

// Themes returns the known theme presets in display order.
func Themes() []ThemePreset {
	out := make([]ThemePreset, len(themePresets))
	copy(out, themePresets)
	return out
}

// Fonts returns the known font presets in display order.
func Fonts() []FontPreset {
	out := make([]FontPreset, len(fontPresets))
	copy(out, fontPresets)
	return out
}

// ResolveTheme maps a theme id to its preset. Unknown ids resolve to the
// first preset rather than erroring.
func ResolveTheme(id string) ThemePreset {
	for _, t := range themePresets {
		if t.ID == id {
			return t
		}
	}
	return themePresets[0]
}

// ResolveFont maps a font id to its preset. Unknown ids resolve to the
// first preset rather than erroring.
func ResolveFont(id string) FontPreset {
	for _, f := range fontPresets {
		if f.ID == id {
			return f
		}
	}
	return fontPresets[0]
}
