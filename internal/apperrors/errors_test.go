package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsMatchesKind(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := fmt.Errorf("reconcile: %w", New(KindJSONDecode, "invalid JSON in model reply", cause))

	assert.ErrorIs(t, err, ErrJSONDecode)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
	assert.Equal(t, KindJSONDecode, KindOf(err))
	assert.Equal(t, "reconcile: invalid JSON in model reply: unexpected end of JSON input", err.Error())
}

func TestIsParseFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"json not found", New(KindJSONNotFound, "no JSON", nil), true},
		{"json decode", New(KindJSONDecode, "bad JSON", nil), true},
		{"schema violation", New(KindSchemaViolation, "missing keys", nil), true},
		{"missing image", New(KindMissingImage, "no image", nil), false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsParseFailure(tt.err))
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusCode(nil))
	assert.Equal(t, http.StatusBadRequest, StatusCode(New(KindMissingImage, "no image", nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(New(KindInvalidImage, "bad image", nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(New(KindModelUnavailable, "no model", nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}
