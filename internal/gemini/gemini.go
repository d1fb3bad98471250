package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lehigh-university-libraries/waterprint/internal/providers"
	"google.golang.org/api/option"
)

// Gemini is a provider for Google Gemini
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// New creates a Gemini client bound to a single model. The client is safe for
// concurrent use and lives for the whole process.
func New(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
		name:   modelName,
	}, nil
}

func (g *Gemini) Name() string {
	return "gemini/" + g.name
}

// Ping sends a trivial prompt so a bad key or model name is caught at startup
func (g *Gemini) Ping(ctx context.Context) error {
	if _, err := g.model.GenerateContent(ctx, genai.Text("ping")); err != nil {
		return fmt.Errorf("gemini ping failed: %w", err)
	}
	return nil
}

// ExtractText sends the prompt and image to Gemini and returns the reply text
func (g *Gemini) ExtractText(ctx context.Context, req providers.Request) (string, error) {
	parts := []genai.Part{genai.Text(req.Prompt)}
	if len(req.Image.Data) > 0 {
		parts = append(parts, genai.Blob{MIMEType: req.Image.MIMEType, Data: req.Image.Data})
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp)
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}

	return sb.String(), nil
}
