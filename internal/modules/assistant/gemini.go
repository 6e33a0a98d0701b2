package assistant

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed assistant provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}

func (p *geminiProvider) Chat(ctx context.Context, message string) (string, error) {
	prompt := "You are a design assistant for a product customization store. " +
		"Answer briefly and concretely, with actionable design advice.\n\nCustomer: " + message
	return p.generate(ctx, prompt)
}

func (p *geminiProvider) Suggest(ctx context.Context, productType string) (string, error) {
	prompt := fmt.Sprintf("Give three short design suggestions for a custom %s: "+
		"a color combination, a font pairing, and a layout idea.", productType)
	return p.generate(ctx, prompt)
}

func (p *geminiProvider) CreateDesign(ctx context.Context, req CreateDesignRequest) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Describe a custom %s design", req.ProductType)
	if req.Style != "" {
		fmt.Fprintf(&b, " in a %s style", req.Style)
	}
	if req.Requirements != "" {
		fmt.Fprintf(&b, " meeting these requirements: %s", req.Requirements)
	}
	if len(req.Colors) > 0 {
		fmt.Fprintf(&b, ". Use this palette: %s", strings.Join(req.Colors, ", "))
	}
	b.WriteString(". Keep the description under 80 words.")
	return p.generate(ctx, b.String())
}
