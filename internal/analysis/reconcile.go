package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/waterprint/internal/apperrors"
	"github.com/lehigh-university-libraries/waterprint/internal/models"
)

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ExtractionPath records which strategy located the JSON candidate
type ExtractionPath string

const (
	PathNone   ExtractionPath = "none"
	PathFenced ExtractionPath = "fenced"
	PathBounds ExtractionPath = "bounds"
)

// Reconciliation is the outcome of reconciling one model reply.
// Exactly one of Data and Fallback is set.
type Reconciliation struct {
	Data     models.AnalysisResult
	Fallback *models.FallbackResult
	Err      error
	Path     ExtractionPath
}

// OK reports whether the reply was used as-is
func (r *Reconciliation) OK() bool {
	return r.Err == nil
}

// Reconcile extracts, parses and shallowly validates the JSON object embedded in
// a model reply. It never fails: on any error it returns the fallback payload with
// the raw reply attached and the reason in Err.
func Reconcile(raw string) *Reconciliation {
	result, path, err := parseReply(raw)
	if err != nil {
		slog.Warn("Failed to reconcile model reply", "path", path, "err", err)
		return &Reconciliation{
			Fallback: models.NewFallbackResult(raw),
			Err:      err,
			Path:     path,
		}
	}
	return &Reconciliation{Data: result, Path: path}
}

func parseReply(raw string) (models.AnalysisResult, ExtractionPath, error) {
	candidate, path, err := ExtractJSON(raw)
	if err != nil {
		return nil, path, err
	}

	parsed, err := decodeJSON(candidate)
	if err != nil {
		return nil, path, apperrors.New(apperrors.KindJSONDecode, "invalid JSON in model reply", err)
	}

	object, ok := parsed.(map[string]any)
	if !ok {
		return nil, path, apperrors.New(apperrors.KindSchemaViolation,
			fmt.Sprintf("parsed JSON is a %T, not an object", parsed), nil)
	}

	if missing := missingKeys(object); len(missing) > 0 {
		return nil, path, apperrors.New(apperrors.KindSchemaViolation,
			"parsed JSON is missing required top-level keys: "+strings.Join(missing, ", "), nil)
	}

	return models.AnalysisResult(object), path, nil
}

// ExtractJSON returns the JSON candidate in raw. A ```json fenced block wins;
// otherwise the text from the first '{' to the last '}' is used.
func ExtractJSON(raw string) (string, ExtractionPath, error) {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		if candidate := strings.TrimSpace(m[1]); candidate != "" {
			slog.Info("JSON found within fenced block")
			return candidate, PathFenced, nil
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", PathNone, apperrors.New(apperrors.KindJSONNotFound, "could not find a JSON object in the response", nil)
	}

	slog.Warn("JSON not found within fenced block, extracted based on {} bounds")
	return strings.TrimSpace(raw[start : end+1]), PathBounds, nil
}

// decodeJSON keeps numbers as json.Number so values round-trip exactly
func decodeJSON(candidate string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return v, nil
}

func missingKeys(object map[string]any) []string {
	var missing []string
	for _, key := range models.RequiredKeys {
		if _, ok := object[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
