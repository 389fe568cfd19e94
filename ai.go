package certigenius

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Drafting defaults, matching the admin editor's fixed prompt.
const (
	DefaultDraftTone = "Formal and celebratory"

	draftModel    = "gemini-2.0-flash"
	draftFallback = "For your outstanding participation and effort."
)

// textGenerator abstracts the AI backend so drafting can be tested without
// network access.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Compile-time interface check.
var _ textGenerator = (*geminiGenerator)(nil)

// Drafter produces certificate body text from a topic and tone. A failed
// draft surfaces an error and leaves the existing body template untouched;
// the caller decides whether to apply the result.
type Drafter struct {
	gen textGenerator
}

// NewDrafter creates a Drafter backed by the Gemini API.
// Returns ErrMissingAPIKey if no key is configured.
func NewDrafter(ctx context.Context, apiKey string) (*Drafter, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	gen, err := newGeminiGenerator(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return &Drafter{gen: gen}, nil
}

// DraftBody generates a short certificate body text for the given topic.
// An empty tone uses DefaultDraftTone. The returned text contains no
// {{field}} placeholders; operators add those afterwards if wanted.
func (d *Drafter) DraftBody(ctx context.Context, topic, tone string) (string, error) {
	if topic == "" {
		return "", ErrMissingTopic
	}
	if tone == "" {
		tone = DefaultDraftTone
	}

	prompt := fmt.Sprintf(
		"Write a concise, professional certificate body text (max 2 sentences) for a certificate of: %s. Tone: %s. Do not include placeholders like [Name], just the message.",
		topic, tone,
	)

	text, err := d.gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDraftFailed, err)
	}
	if text == "" {
		return draftFallback, nil
	}
	return text, nil
}

// geminiGenerator calls the Gemini API.
type geminiGenerator struct {
	client *genai.Client
}

func newGeminiGenerator(ctx context.Context, apiKey string) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDraftFailed, err)
	}
	return &geminiGenerator{client: client}, nil
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, draftModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
