package analysis

const fence = "```"

// Prompt is sent with every image. Its schema and unit rules are what the
// reconciler and the web UI expect back, so edit both together.
const Prompt = `
        Analyze the agricultural product shown in this image and provide a comprehensive water footprint analysis based on global averages and regional variations.

        Provide a detailed JSON response with the following structure. Ensure the response is *only* the JSON object, wrapped in triple backticks for clarity, and is valid JSON. For any data point that cannot be confidently estimated, use the string value "N/A".

        IMPORTANT UNIT INSTRUCTIONS:
        - For water volume metrics (total, green, blue, grey, global average, regional variations, water savings), provide the value as a string INCLUDING " L/kg" at the end (e.g., "1500 L/kg").
        - For percentage values (confidence, difference), provide the value as a string INCLUDING "%" at the end (e.g., "85%", "-5%").
        - For scores out of 10, provide as a string "X/10" (e.g., "7/10").
        - For Carbon Footprint, provide as a string INCLUDING " kg CO2e/kg" (e.g., "2.5 kg CO2e/kg").
        - For Land Use, provide as a string INCLUDING " m²/kg" (e.g., "3 m²/kg").
        - For Economic Water Cost, provide as a string INCLUDING " USD/kg" (e.g., "0.5 USD/kg").
        - For chart data arrays ("values", "water_usage"), provide ONLY numeric values (e.g., 60.5, 1500). The frontend expects numbers here.
        - For qualitative values (severity, category, dependency, sensitivity, seasonal buying, impact types), provide the descriptive string or "N/A".
        - For lists (seasonal availability, tips, practices, conservation, facts), provide arrays of strings.

        ` + fence + `json
        {
            "product_identification": {
                "detected_product": "product name (e.g., Apple, Tomato, Almonds, Beef)",
                "confidence": "estimated confidence level string with unit (e.g., '85%' or 'N/A')",
                "category": "product category (e.g., Fruits, Vegetables, Grains, Nuts, Meat, Dairy)",
                "scientific_name": "scientific name if applicable (e.g., Malus domestica) or 'N/A'"
            },
            "overall_severity": "Overall water footprint impact severity (e.g., Low, Medium, High, Very High, Unknown)",
            "water_footprint": {
                "total_footprint": "estimated total water footprint string with unit (e.g., '1500 L/kg' or 'N/A')",
                "green_water": "estimated green water component string with unit (e.g., '900 L/kg' or 'N/A')",
                "blue_water": "estimated blue water component string with unit (e.g., '400 L/kg' or 'N/A')",
                "grey_water": "estimated grey water component string with unit (e.g., '200 L/kg' or 'N/A')",
                "global_average": "estimated global average for this product string with unit (e.g., '1500 L/kg' or 'N/A')",
                "regional_variations": {
                    "arid_regions": "estimated value for arid regions string with unit (e.g., '2000 L/kg' or 'N/A')",
                    "temperate_regions": "estimated value for temperate regions string with unit (e.g., '1200 L/kg' or 'N/A')",
                    "tropical_regions": "estimated value for tropical regions string with unit (e.g., '1800 L/kg' or 'N/A')"
                }
            },
            "definitions": {
                "green_water": "brief definition of green water footprint",
                "blue_water": "brief definition of blue water footprint",
                "grey_water": "brief definition of grey water footprint"
            },
            "water_breakdown_chart": {
                "labels": ["Green Water", "Blue Water", "Grey Water"],
                "values": [percentage of green water (number, e.g., 60.5), percentage of blue water (number, e.g., 30), percentage of grey water (number, e.g., 9.5)],
                "colors": ["#48BB78", "#4299E1", "#A78BFA"]
            },
             "regional_comparison_chart": {
                "regions": ["Global Average", "Arid Regions", "Temperate", "Tropical"],
                "water_usage": [estimated value for global average (number, e.g., 1500), estimated value for arid (number), estimated value for temperate (number), estimated value for tropical (number)]
            },
            "environmental_impact": {
                "severity_score": "score string with unit (e.g., '7/10' or 'N/A')",
                "impact_category": "Overall impact category (e.g., Low, Medium, High, Very High, Unknown)",
                "sustainability_rating": "Sustainability rating (e.g., 'B+' or 'N/A')",
                "carbon_footprint": "estimated carbon footprint string with unit (e.g., '2.5 kg CO2e/kg' or 'N/A')",
                "land_use": "estimated land use string with unit (e.g., '3 m²/kg' or 'N/A')"
            },
            "production_insights": {
                "growing_season": "typical growing season or climate requirements (e.g., 'Year-round', 'Summer months', 'Warm climate', or 'N/A')",
                "water_efficiency": "estimated water efficiency rating string with unit (e.g., '8/10' or 'N/A')",
                "irrigation_dependency": "level of dependency on irrigation (e.g., Low, Medium, High, Unknown)",
                "climate_sensitivity": "sensitivity to climate changes (e.g., Low, Medium, High, Unknown)",
                "seasonal_availability": ["list of months when typically in season (e.g., 'June', 'July', 'August') or empty array if year-round/unknown"]
            },
            "comparisons": {
                "vs_similar_products": [
                    {"product": "name of similar product", "water_footprint": "estimated liters/kg string with unit (e.g., '1300 L/kg' or 'N/A')", "difference": "percentage difference string with unit vs detected product (e.g., '+10%', '-5%', 'Same', 'N/A')"},
                     {"product": "name of another similar product", "water_footprint": "estimated liters/kg string with unit (e.g., '1800 L/kg' or 'N/A')", "difference": "percentage difference string with unit vs detected product (e.g., '+10%', '-5%', 'Same', 'N/A')"}
                     # Add 1-3 similar products
                ],
                "vs_alternatives": [
                    {"alternative": "name of sustainable alternative", "water_savings": "estimated liters/kg saved string with unit (e.g., 'Saves ~500 L/kg' or 'N/A')", "benefit": "brief description of benefit (e.g., 'Lower water use', 'Grows in arid climates')"},
                     # Add 1-2 alternatives
                ]
            },
            "recommendations": {
                "consumer_tips": ["tip 1 for consumers", "tip 2 for consumers", "tip 3 for consumers"],
                "sustainable_practices": ["practice 1 for production/supply chain", "practice 2 for production/supply chain"],
                "water_conservation": ["method 1 for conservation related to this product", "method 2 for conservation"],
                "seasonal_buying": "best months or time period to buy for sustainability (e.g., 'Peak season is June-August', or 'Year-round', or 'N/A')"
            },
            "interesting_facts": [
                "interesting fact 1 about water usage or production",
                "interesting fact 2 about environmental impact",
                "interesting fact 3 about this product"
                # Add 2-4 facts
            ],
            "impact_metrics": {
                "water_stress_contribution": "estimated percentage contribution string with unit to local/regional water stress (e.g., 'High' or '20%' or 'N/A')",
                "biodiversity_impact": "estimated impact on biodiversity (e.g., Low, Medium, High, Very High, Unknown)",
                "soil_health_impact": "estimated impact on soil health (e.g., Positive, Neutral, Negative, Unknown)",
                "economic_water_cost": "estimated economic cost string with unit of water used per kg (e.g., '0.5 USD/kg' or 'N/A')"
                 # Add other specific metrics if relevant
            }
        }
        ` + fence + `
        Provide accurate, research-based data. If exact data isn't available, provide reasonable estimates based on general knowledge. Ensure the JSON is strictly formatted as requested, contains valid JSON syntax, and is enclosed *only* by the triple backticks.
        `
