package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/lehigh-university-libraries/waterprint/internal/apperrors"
	"github.com/lehigh-university-libraries/waterprint/internal/images"
	"github.com/lehigh-university-libraries/waterprint/internal/providers"
)

// Service runs the image -> model -> reconcile pipeline. It holds no per-request state.
type Service struct {
	model  *Model
	prompt string
}

func NewService(model *Model) *Service {
	return &Service{
		model:  model,
		prompt: Prompt,
	}
}

// ModelLoaded reports whether analysis can run at all
func (s *Service) ModelLoaded() bool {
	return s.model.Loaded()
}

// Model returns the handle the service was built with
func (s *Service) Model() *Model {
	return s.model
}

// Analyze decodes the base64 or data URL image, sends it to the model and
// reconciles the reply. A returned error means no reconciliation took place;
// parse failures are reported through the Reconciliation instead.
func (s *Service) Analyze(ctx context.Context, encodedImage string) (*Reconciliation, error) {
	if !s.model.Loaded() {
		return nil, apperrors.New(apperrors.KindModelUnavailable, s.model.UnavailableMessage(), s.model.Err())
	}

	if encodedImage == "" {
		return nil, apperrors.New(apperrors.KindMissingImage, "No image data provided.", nil)
	}

	prepared, err := images.Prepare(encodedImage)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalidImage, "invalid image", err)
	}
	slog.Info("Image decoded",
		"format", prepared.Format,
		"width", prepared.Width,
		"height", prepared.Height,
		"normalized", prepared.Normalized,
	)

	provider := s.model.Provider()
	start := time.Now()
	raw, err := provider.ExtractText(ctx, providers.Request{
		Prompt: s.prompt,
		Image: providers.Image{
			Data:     prepared.Data,
			MIMEType: prepared.MIMEType,
		},
	})
	if err != nil {
		return nil, apperrors.New(apperrors.KindModelCall, "model call failed", err)
	}
	slog.Info("Model replied", "provider", provider.Name(), "length", len(raw), "duration", time.Since(start))
	slog.Debug("Raw model reply", "text", raw)

	return Reconcile(raw), nil
}
