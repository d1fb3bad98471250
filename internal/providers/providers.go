package providers

import (
	"context"
)

// Image is an image payload in a format the model accepts
type Image struct {
	Data     []byte
	MIMEType string
}

// Request is a single prompt plus image sent to a vision model
type Request struct {
	Prompt string
	Image  Image
}

// Provider defines the interface for a vision-capable LLM provider
type Provider interface {
	Name() string
	ExtractText(ctx context.Context, req Request) (string, error)
}

// Pinger is implemented by providers that can verify connectivity at startup
type Pinger interface {
	Ping(ctx context.Context) error
}
