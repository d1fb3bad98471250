package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/waterprint/internal/config"
	"github.com/lehigh-university-libraries/waterprint/internal/gemini"
	"github.com/lehigh-university-libraries/waterprint/internal/openai"
	"github.com/lehigh-university-libraries/waterprint/internal/providers"
)

// Model is the process-wide handle to the external model. It is built once at
// startup and never mutated; a failed initialization is kept as state, not raised.
type Model struct {
	provider providers.Provider
	err      error
	keyVar   string
}

// NewModel wraps an already initialized provider
func NewModel(p providers.Provider) *Model {
	return &Model{provider: p, keyVar: "GEMINI_API_KEY"}
}

// UnavailableModel records why no provider could be initialized
func UnavailableModel(keyVar string, err error) *Model {
	return &Model{err: err, keyVar: keyVar}
}

// LoadModel creates and probes the configured provider
func LoadModel(ctx context.Context, cfg *config.Config) *Model {
	if !cfg.HasCredential() {
		err := fmt.Errorf("%s environment variable not set or is the placeholder", cfg.APIKeyVar())
		slog.Error("AI model will not be available", "provider", cfg.Provider, "err", err)
		return UnavailableModel(cfg.APIKeyVar(), err)
	}

	provider, err := newProvider(ctx, cfg)
	if err == nil {
		if pinger, ok := provider.(providers.Pinger); ok {
			err = pinger.Ping(ctx)
		}
		if err != nil {
			_ = closeProvider(provider)
		}
	}
	if err != nil {
		slog.Error("Error initializing model", "provider", cfg.Provider, "model", cfg.Model(), "err", err)
		return UnavailableModel(cfg.APIKeyVar(), err)
	}

	slog.Info("Model loaded successfully", "provider", provider.Name())
	return &Model{provider: provider, keyVar: cfg.APIKeyVar()}
}

func newProvider(ctx context.Context, cfg *config.Config) (providers.Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	case config.ProviderGemini:
		return gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

// Loaded reports whether the model initialized successfully
func (m *Model) Loaded() bool {
	return m != nil && m.provider != nil
}

// Err is the initialization failure, if any
func (m *Model) Err() error {
	if m == nil {
		return fmt.Errorf("model not configured")
	}
	return m.err
}

func (m *Model) Provider() providers.Provider {
	if m == nil {
		return nil
	}
	return m.provider
}

// UnavailableMessage is the user-facing explanation for a model that is not loaded
func (m *Model) UnavailableMessage() string {
	keyVar := "GEMINI_API_KEY"
	if m != nil && m.keyVar != "" {
		keyVar = m.keyVar
	}
	return fmt.Sprintf("AI model failed to initialize. Please ensure %s is set correctly.", keyVar)
}

// Close releases provider resources when the provider holds any
func (m *Model) Close() error {
	return closeProvider(m.Provider())
}

func closeProvider(p providers.Provider) error {
	if closer, ok := p.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
