package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackResultShape(t *testing.T) {
	raw := "the model said something unhelpful"
	encoded, err := json.Marshal(NewFallbackResult(raw))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	for _, key := range []string{
		"product_identification", "overall_severity", "water_footprint", "definitions",
		"environmental_impact", "production_insights", "comparisons", "recommendations",
		"interesting_facts", "water_breakdown_chart", "regional_comparison_chart",
		"impact_metrics", "raw_analysis_text_fallback",
	} {
		assert.Contains(t, decoded, key)
	}
	for _, key := range RequiredKeys {
		assert.Contains(t, decoded, key)
	}

	assert.Equal(t, raw, decoded["raw_analysis_text_fallback"])
	assert.Equal(t, Unknown, decoded["overall_severity"])
	assert.Nil(t, decoded["water_breakdown_chart"])
	assert.Nil(t, decoded["regional_comparison_chart"])
	assert.Equal(t, map[string]any{}, decoded["definitions"])

	product := decoded["product_identification"].(map[string]any)
	assert.Equal(t, UnknownProduct, product["detected_product"])
	assert.Equal(t, NotAvailable, product["confidence"])

	footprint := decoded["water_footprint"].(map[string]any)
	assert.Equal(t, map[string]any{}, footprint["regional_variations"])

	comparisons := decoded["comparisons"].(map[string]any)
	assert.Equal(t, []any{}, comparisons["vs_similar_products"])
	assert.Equal(t, []any{}, comparisons["vs_alternatives"])

	insights := decoded["production_insights"].(map[string]any)
	assert.Equal(t, []any{}, insights["seasonal_availability"])
	assert.Equal(t, Unknown, insights["irrigation_dependency"])
}
