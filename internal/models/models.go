package models

// AnalysisResult is the JSON object returned by the model, passed through untouched
type AnalysisResult map[string]any

// RequiredKeys must be present at the top level of an AnalysisResult
var RequiredKeys = []string{"product_identification", "water_footprint", "overall_severity"}

// Sentinel values used when a data point cannot be estimated
const (
	NotAvailable   = "N/A"
	Unknown        = "Unknown"
	UnknownProduct = "Unknown Product"
)

// FallbackResult mirrors the AnalysisResult schema with placeholder values.
// It is returned when the model reply cannot be reconciled.
type FallbackResult struct {
	ProductIdentification   ProductIdentification `json:"product_identification"`
	OverallSeverity         string                `json:"overall_severity"`
	WaterFootprint          WaterFootprint        `json:"water_footprint"`
	Definitions             map[string]string     `json:"definitions"`
	EnvironmentalImpact     EnvironmentalImpact   `json:"environmental_impact"`
	ProductionInsights      ProductionInsights    `json:"production_insights"`
	Comparisons             Comparisons           `json:"comparisons"`
	Recommendations         Recommendations       `json:"recommendations"`
	InterestingFacts        []string              `json:"interesting_facts"`
	WaterBreakdownChart     *WaterBreakdownChart  `json:"water_breakdown_chart"`
	RegionalComparisonChart *RegionalChart        `json:"regional_comparison_chart"`
	ImpactMetrics           ImpactMetrics         `json:"impact_metrics"`
	RawAnalysisTextFallback string                `json:"raw_analysis_text_fallback"`
}

type ProductIdentification struct {
	DetectedProduct string `json:"detected_product"`
	Confidence      string `json:"confidence"`
	Category        string `json:"category"`
	ScientificName  string `json:"scientific_name"`
}

type WaterFootprint struct {
	TotalFootprint     string            `json:"total_footprint"`
	GreenWater         string            `json:"green_water"`
	BlueWater          string            `json:"blue_water"`
	GreyWater          string            `json:"grey_water"`
	GlobalAverage      string            `json:"global_average"`
	RegionalVariations map[string]string `json:"regional_variations"`
}

type EnvironmentalImpact struct {
	SeverityScore        string `json:"severity_score"`
	ImpactCategory       string `json:"impact_category"`
	SustainabilityRating string `json:"sustainability_rating"`
	CarbonFootprint      string `json:"carbon_footprint"`
	LandUse              string `json:"land_use"`
}

type ProductionInsights struct {
	GrowingSeason        string   `json:"growing_season"`
	WaterEfficiency      string   `json:"water_efficiency"`
	IrrigationDependency string   `json:"irrigation_dependency"`
	ClimateSensitivity   string   `json:"climate_sensitivity"`
	SeasonalAvailability []string `json:"seasonal_availability"`
}

type Comparisons struct {
	VsSimilarProducts []SimilarProduct `json:"vs_similar_products"`
	VsAlternatives    []Alternative    `json:"vs_alternatives"`
}

type SimilarProduct struct {
	Product        string `json:"product"`
	WaterFootprint string `json:"water_footprint"`
	Difference     string `json:"difference"`
}

type Alternative struct {
	Alternative  string `json:"alternative"`
	WaterSavings string `json:"water_savings"`
	Benefit      string `json:"benefit"`
}

type Recommendations struct {
	ConsumerTips         []string `json:"consumer_tips"`
	SustainablePractices []string `json:"sustainable_practices"`
	WaterConservation    []string `json:"water_conservation"`
	SeasonalBuying       string   `json:"seasonal_buying"`
}

type WaterBreakdownChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
}

type RegionalChart struct {
	Regions    []string  `json:"regions"`
	WaterUsage []float64 `json:"water_usage"`
}

type ImpactMetrics struct {
	WaterStressContribution string `json:"water_stress_contribution"`
	BiodiversityImpact      string `json:"biodiversity_impact"`
	SoilHealthImpact        string `json:"soil_health_impact"`
	EconomicWaterCost       string `json:"economic_water_cost"`
}

// NewFallbackResult builds the placeholder payload for a reply that could not be parsed.
// Collections are empty rather than nil so they serialize as [] and {}.
func NewFallbackResult(rawText string) *FallbackResult {
	return &FallbackResult{
		ProductIdentification: ProductIdentification{
			DetectedProduct: UnknownProduct,
			Confidence:      NotAvailable,
			Category:        NotAvailable,
			ScientificName:  NotAvailable,
		},
		OverallSeverity: Unknown,
		WaterFootprint: WaterFootprint{
			TotalFootprint:     NotAvailable,
			GreenWater:         NotAvailable,
			BlueWater:          NotAvailable,
			GreyWater:          NotAvailable,
			GlobalAverage:      NotAvailable,
			RegionalVariations: map[string]string{},
		},
		Definitions: map[string]string{},
		EnvironmentalImpact: EnvironmentalImpact{
			SeverityScore:        NotAvailable,
			ImpactCategory:       Unknown,
			SustainabilityRating: NotAvailable,
			CarbonFootprint:      NotAvailable,
			LandUse:              NotAvailable,
		},
		ProductionInsights: ProductionInsights{
			GrowingSeason:        NotAvailable,
			WaterEfficiency:      NotAvailable,
			IrrigationDependency: Unknown,
			ClimateSensitivity:   Unknown,
			SeasonalAvailability: []string{},
		},
		Comparisons: Comparisons{
			VsSimilarProducts: []SimilarProduct{},
			VsAlternatives:    []Alternative{},
		},
		Recommendations: Recommendations{
			ConsumerTips:         []string{},
			SustainablePractices: []string{},
			WaterConservation:    []string{},
			SeasonalBuying:       NotAvailable,
		},
		InterestingFacts: []string{"Could not retrieve detailed facts due to analysis error."},
		ImpactMetrics: ImpactMetrics{
			WaterStressContribution: NotAvailable,
			BiodiversityImpact:      Unknown,
			SoilHealthImpact:        Unknown,
			EconomicWaterCost:       NotAvailable,
		},
		RawAnalysisTextFallback: rawText,
	}
}
