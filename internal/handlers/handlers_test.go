package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/waterprint/internal/analysis"
	"github.com/lehigh-university-libraries/waterprint/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply string
	err   error
	panic bool
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) ExtractText(ctx context.Context, req providers.Request) (string, error) {
	if s.panic {
		panic("provider exploded")
	}
	return s.reply, s.err
}

func newTestRouter(t *testing.T, model *analysis.Model, opts Options) http.Handler {
	t.Helper()
	return NewRouter(New(analysis.NewService(model)), opts)
}

func pngDataURL(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func postAnalyze(t *testing.T, router http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	return rec, decoded
}

func imageBody(t *testing.T) string {
	t.Helper()
	body, err := json.Marshal(AnalyzeRequest{Image: pngDataURL(t)})
	require.NoError(t, err)
	return string(body)
}

func TestAnalyzeMissingImage(t *testing.T) {
	router := newTestRouter(t, analysis.NewModel(&stubProvider{}), Options{})

	for _, body := range []string{`{}`, `{"image": ""}`} {
		t.Run(body, func(t *testing.T) {
			rec, decoded := postAnalyze(t, router, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, decoded["success"])
			assert.Equal(t, "No image data provided.", decoded["error"])
			assert.NotContains(t, decoded, "data")
		})
	}
}

func TestAnalyzeModelUnavailable(t *testing.T) {
	router := newTestRouter(t, analysis.UnavailableModel("GEMINI_API_KEY", errors.New("no key")), Options{})

	rec, decoded := postAnalyze(t, router, `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "AI model failed to initialize. Please ensure GEMINI_API_KEY is set correctly.", decoded["error"])
}

func TestAnalyzeSuccess(t *testing.T) {
	reply := "```json\n{\"product_identification\": {\"detected_product\": \"Beef\"}, \"water_footprint\": {\"total_footprint\": \"15400 L/kg\"}, \"overall_severity\": \"Very High\", \"regional_comparison_chart\": {\"water_usage\": [15400, 20000]}}\n```"
	router := newTestRouter(t, analysis.NewModel(&stubProvider{reply: reply}), Options{})

	rec, decoded := postAnalyze(t, router, imageBody(t))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, decoded["success"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	data := decoded["data"].(map[string]any)
	assert.Equal(t, "Very High", data["overall_severity"])
	assert.NotContains(t, data, "raw_analysis_text_fallback")
	chart := data["regional_comparison_chart"].(map[string]any)
	assert.Equal(t, []any{15400.0, 20000.0}, chart["water_usage"])
}

func TestAnalyzeParseFailureReturnsFallback(t *testing.T) {
	reply := "```json\n{\"product_identification\": {}, \"water_footprint\": {}}\n```"
	router := newTestRouter(t, analysis.NewModel(&stubProvider{reply: reply}), Options{})

	rec, decoded := postAnalyze(t, router, imageBody(t))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, decoded["success"])
	assert.Contains(t, decoded["error"], "Could not fully parse AI response. Reason:")
	assert.Contains(t, decoded["error"], "overall_severity")

	data := decoded["data"].(map[string]any)
	assert.Equal(t, reply, data["raw_analysis_text_fallback"])
	assert.Equal(t, "Unknown", data["overall_severity"])
	assert.Nil(t, data["water_breakdown_chart"])
}

func TestAnalyzeUnexpectedFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
		body     string
		contains string
	}{
		{
			name:     "invalid base64",
			provider: &stubProvider{},
			body:     `{"image": "data:image/png;base64,@@@"}`,
			contains: "invalid image",
		},
		{
			name:     "malformed request body",
			provider: &stubProvider{},
			body:     `{"image": `,
			contains: "An unexpected error occurred during analysis",
		},
		{
			name:     "model call error",
			provider: &stubProvider{err: errors.New("deadline exceeded")},
			contains: "deadline exceeded",
		},
		{
			name:     "panic is recovered",
			provider: &stubProvider{panic: true},
			contains: "provider exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, analysis.NewModel(tt.provider), Options{})
			body := tt.body
			if body == "" {
				body = imageBody(t)
			}

			rec, decoded := postAnalyze(t, router, body)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, false, decoded["success"])
			assert.Contains(t, decoded["error"], tt.contains)
			data, present := decoded["data"]
			assert.True(t, present)
			assert.Nil(t, data)
		})
	}
}

func TestAnalyzeBodyTooLarge(t *testing.T) {
	router := newTestRouter(t, analysis.NewModel(&stubProvider{}), Options{MaxRequestBodySize: 16})

	rec, decoded := postAnalyze(t, router, imageBody(t))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, false, decoded["success"])
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		model    *analysis.Model
		expected string
	}{
		{"loaded", analysis.NewModel(&stubProvider{}), "healthy"},
		{"not loaded", analysis.UnavailableModel("GEMINI_API_KEY", errors.New("no key")), "warning (model not loaded)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.model, Options{})
			for i := 0; i < 2; i++ {
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"status":"`+tt.expected+`"}`, rec.Body.String())
			}
		})
	}
}

func TestIndexServedFromStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>water</h1>"), 0644))
	router := newTestRouter(t, analysis.NewModel(&stubProvider{}), Options{StaticDir: dir})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>water</h1>")
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, analysis.NewModel(&stubProvider{}), Options{CORSAllowOrigins: []string{"*"}})

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "http://example.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	router := newTestRouter(t, analysis.NewModel(&stubProvider{}), Options{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}
