package certigenius

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
)

// Base text sizes in pixels at scale 1, matching the editor canvas.
const (
	baseTitleSizePx      = 60
	baseNameSizePx       = 48
	scriptFontNameSizePx = 72
)

// Fallback colors used when a design carries a value that is not a plain
// hex color.
const (
	defaultTitleColor  = "#1e293b"
	defaultBodyColor   = "#334155"
	defaultAccentColor = "#D4AF37"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Rule colors for the name divider and the bottom blocks. Dark themes get
// light rules so they stay visible against the background.
const (
	lightDividerCSS template.CSS = "rgba(148, 163, 184, 0.3)"
	darkDividerCSS  template.CSS = "rgba(255, 255, 255, 0.35)"
	lightRuleCSS    template.CSS = "#9ca3af"
	darkRuleCSS     template.CSS = "#e5e7eb"
)

const certificateHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <link href="https://fonts.googleapis.com/css2?family=Playfair+Display:wght@400;700&family=Cinzel:wght@400;700&family=Inter:wght@400;700&family=Roboto+Slab:wght@400;700&family=Montserrat:wght@400;700&family=Great+Vibes&display=swap" rel="stylesheet" />
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      width: {{.PageWidth}}px;
      height: {{.PageHeight}}px;
      overflow: hidden;
      background: #e5e7eb;
    }
    .certificate {
      position: relative;
      width: {{.PageWidth}}px;
      height: {{.PageHeight}}px;
      padding: 64px;
      display: flex;
      flex-direction: column;
      align-items: center;
      text-align: center;
      {{.ThemeCSS}}
      font-family: {{.FontFamily}};
      color: {{.BodyColor}};
    }
    .content {
      flex: 1;
      display: flex;
      flex-direction: column;
      align-items: center;
      justify-content: center;
      width: 100%;
      z-index: 10;
    }
    .title {
      font-size: {{.TitleSizePx}}px;
      font-weight: 700;
      letter-spacing: 0.025em;
      margin-bottom: 16px;
      color: {{.TitleColor}};
    }
    .title.metallic {
      background: linear-gradient(135deg, #b8860b 0%, #f9f295 45%, #d4af37 100%);
      -webkit-background-clip: text;
      background-clip: text;
      color: transparent;
    }
    .subtitle {
      font-size: 24px;
      font-style: italic;
      opacity: 0.8;
      margin-bottom: 24px;
    }
    .recipient {
      width: 100%;
      padding: 32px 0;
      border-bottom: 1px solid {{.DividerColor}};
      margin-bottom: 24px;
    }
    .recipient h2 {
      font-size: {{.NameSizePx}}px;
      font-weight: 700;
      color: {{.AccentColor}};
    }
    .body-text {
      max-width: 768px;
      font-size: 20px;
      line-height: 1.6;
    }
    .date-block, .signer-block {
      position: absolute;
      bottom: 64px;
      min-width: 200px;
      padding-top: 8px;
      border-top: 1px solid {{.RuleColor}};
      text-align: center;
    }
    .date-block { left: 64px; }
    .signer-block { right: 64px; }
    .block-main { font-size: 18px; font-weight: 700; }
    .block-label {
      font-size: 13px;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      opacity: 0.7;
    }
    .overlay {
      position: absolute;
      object-fit: contain;
      z-index: 20;
    }
  </style>
</head>
<body>
  <div class="certificate">
    <div class="content">
      <h1 class="title{{if .MetallicTitle}} metallic{{end}}">{{.Title}}</h1>
      <p class="subtitle">{{.Subtitle}}</p>
      <div class="recipient">
        <h2>{{.RecipientName}}</h2>
      </div>
      <div class="body-text">
        <p>{{.Body}}</p>
      </div>
    </div>
    <div class="date-block">
      <p class="block-main">{{.Date}}</p>
      <p class="block-label">Date Issued</p>
    </div>
    {{if .SignerName}}
    <div class="signer-block">
      <p class="block-main">{{.SignerName}}</p>
      <p class="block-label">{{.SignerTitle}}</p>
    </div>
    {{end}}
    {{range .Overlays}}
    <img class="overlay" src="{{.Src}}" alt="{{.Kind}}" style="left: {{.X}}px; top: {{.Y}}px; width: {{.Width}}px; height: {{.Height}}px;" />
    {{end}}
  </div>
</body>
</html>
`

var layoutTemplate = template.Must(template.New("certificate").Parse(certificateHTMLTemplate))

// layoutView is the deterministic input handed to the HTML template.
type layoutView struct {
	PageWidth  int
	PageHeight int

	ThemeCSS     template.CSS
	FontFamily   template.CSS
	DividerColor template.CSS
	RuleColor    template.CSS

	TitleColor    string
	BodyColor     string
	AccentColor   string
	MetallicTitle bool
	TitleSizePx   int
	NameSizePx    int

	Title         string
	Subtitle      string
	RecipientName string
	Body          string
	SignerName    string
	SignerTitle   string
	Date          string

	Overlays []overlayView
}

// overlayView positions one overlay image in the rendered document.
type overlayView struct {
	Src    template.URL
	Kind   string
	X      int
	Y      int
	Width  int
	Height int
}

// RenderLayout resolves a template against one recipient and returns a
// self-contained HTML document describing the paint-ready certificate.
// The function is pure: identical inputs produce identical output, and the
// recipient may be nil for an unbound editing preview (tokens stay literal).
func RenderLayout(design TemplateDesign, content TemplateContent, overlays []ImageOverlay, recipient *Recipient) (string, error) {
	if err := design.Validate(); err != nil {
		return "", err
	}

	theme := ResolveTheme(design.Theme)
	font := ResolveFont(design.FontFamily)

	nameSize := baseNameSizePx
	if font.Script {
		nameSize = scriptFontNameSizePx
	}

	divider, rule := lightDividerCSS, lightRuleCSS
	if theme.Dark {
		divider, rule = darkDividerCSS, darkRuleCSS
	}

	view := layoutView{
		PageWidth:     PageWidthPx,
		PageHeight:    PageHeightPx,
		ThemeCSS:      theme.CSS,
		FontFamily:    font.Family,
		DividerColor:  divider,
		RuleColor:     rule,
		TitleColor:    sanitizeColor(design.TitleColor, defaultTitleColor),
		BodyColor:     sanitizeColor(design.BodyColor, defaultBodyColor),
		AccentColor:   sanitizeColor(design.AccentColor, defaultAccentColor),
		MetallicTitle: design.MetallicTitle,
		TitleSizePx:   int(baseTitleSizePx * design.FontSizeScale),
		NameSizePx:    nameSize,
		Title:         content.Title,
		Subtitle:      content.Subtitle,
		RecipientName: Substitute("{{name}}", recipient),
		Body:          Substitute(content.BodyTemplate, recipient),
		SignerName:    content.SignerName,
		SignerTitle:   content.SignerTitle,
		Date:          content.Date,
	}

	for _, o := range overlays {
		view.Overlays = append(view.Overlays, overlayView{
			Src:    template.URL(o.Src), // #nosec G203 -- src is operator-supplied image data, not untrusted input
			Kind:   o.Kind,
			X:      o.X,
			Y:      o.Y,
			Width:  o.Width,
			Height: o.Height,
		})
	}

	var buf bytes.Buffer
	if err := layoutTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLayoutRender, err)
	}
	return buf.String(), nil
}

// sanitizeColor keeps plain six-digit hex colors and replaces anything else
// with the given fallback.
func sanitizeColor(value, fallback string) string {
	if hexColorPattern.MatchString(value) {
		return value
	}
	return fallback
}
