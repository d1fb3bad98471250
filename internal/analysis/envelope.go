package analysis

import (
	"errors"

	"github.com/lehigh-university-libraries/waterprint/internal/apperrors"
)

// Envelope builds the response body and HTTP status for one analysis attempt.
// Keys are only present where callers expect them: "data" is absent for input
// and availability errors, null for unexpected ones, and the fallback on parse failure.
func Envelope(rec *Reconciliation, err error) (int, map[string]any) {
	if err != nil {
		switch apperrors.KindOf(err) {
		case apperrors.KindMissingImage:
			return apperrors.StatusCode(err), map[string]any{
				"success": false,
				"error":   "No image data provided.",
			}
		case apperrors.KindModelUnavailable:
			message := err.Error()
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				message = appErr.Message
			}
			return apperrors.StatusCode(err), map[string]any{
				"success": false,
				"error":   message,
			}
		}
		return UnexpectedEnvelope(err)
	}

	if rec == nil {
		return UnexpectedEnvelope(errors.New("analysis produced no result"))
	}
	if apperrors.IsParseFailure(rec.Err) {
		return apperrors.StatusCode(rec.Err), map[string]any{
			"success": false,
			"error":   "Could not fully parse AI response. Reason: " + rec.Err.Error(),
			"data":    rec.Fallback,
		}
	}
	if rec.Err != nil {
		return UnexpectedEnvelope(rec.Err)
	}

	return apperrors.StatusCode(nil), map[string]any{
		"success": true,
		"data":    rec.Data,
	}
}

// UnexpectedEnvelope is the body for failures outside the known taxonomy
func UnexpectedEnvelope(err error) (int, map[string]any) {
	return apperrors.StatusCode(err), map[string]any{
		"success": false,
		"error":   "An unexpected error occurred during analysis: " + err.Error(),
		"data":    nil,
	}
}
