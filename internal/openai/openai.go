package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/lehigh-university-libraries/waterprint/internal/providers"
	goopenai "github.com/sashabaranov/go-openai"
)

// OpenAI is a provider for OpenAI and OpenAI-compatible vision endpoints
type OpenAI struct {
	client *goopenai.Client
	model  string
}

// New returns a new OpenAI provider. baseURL may be empty to use api.openai.com.
func New(apiKey, model, baseURL string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	clientConfig := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAI{
		client: goopenai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

func (o *OpenAI) Name() string {
	return "openai/" + o.model
}

// Ping sends a trivial prompt so a bad key or model name is caught at startup
func (o *OpenAI) Ping(ctx context.Context) error {
	_, err := o.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: o.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: "ping"},
		},
	})
	if err != nil {
		return fmt.Errorf("openai ping failed: %w", err)
	}
	return nil
}

// ExtractText sends the prompt and image to the chat completions API and returns the reply text
func (o *OpenAI) ExtractText(ctx context.Context, req providers.Request) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:    o.model,
		Messages: []goopenai.ChatCompletionMessage{visionMessage(req)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func visionMessage(req providers.Request) goopenai.ChatCompletionMessage {
	parts := []goopenai.ChatMessagePart{
		{Type: goopenai.ChatMessagePartTypeText, Text: req.Prompt},
	}
	if len(req.Image.Data) > 0 {
		parts = append(parts, goopenai.ChatMessagePart{
			Type: goopenai.ChatMessagePartTypeImageURL,
			ImageURL: &goopenai.ChatMessageImageURL{
				URL:    dataURL(req.Image),
				Detail: goopenai.ImageURLDetailAuto,
			},
		})
	}

	return goopenai.ChatCompletionMessage{
		Role:         goopenai.ChatMessageRoleUser,
		MultiContent: parts,
	}
}

func dataURL(img providers.Image) string {
	return "data:" + img.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
