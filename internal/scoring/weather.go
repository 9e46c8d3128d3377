package scoring

import (
	"fmt"

	"github.com/hydrolog/hydration-tracker/internal/domain"
)

// Weather thresholds for the extra-water recommendation. Structurally the
// same additive scheme as the nocturia model, with different inputs.
const (
	tempExtremeC    = 35.0
	tempHotC        = 30.0
	tempWarmC       = 25.0
	uvHighIndex     = 8.0
	uvElevatedIndex = 6.0
	humidityHighPct = 70.0

	extraTempExtremeMl = 750.0
	extraTempHotMl     = 500.0
	extraTempWarmMl    = 250.0
	extraUVHighMl      = 250.0
	extraUVElevatedMl  = 150.0
	extraHumidityMl    = 150.0

	heatHighThresholdMl     = 650.0
	heatModerateThresholdMl = 300.0
)

// ComputeWeatherAdvice derives an additional-water recommendation from a
// weather report. Pure and deterministic, like the risk model.
func ComputeWeatherAdvice(report domain.WeatherReport) domain.WeatherAdviceResult {
	var extra float64

	switch {
	case report.TemperatureC >= tempExtremeC:
		extra += extraTempExtremeMl
	case report.TemperatureC >= tempHotC:
		extra += extraTempHotMl
	case report.TemperatureC >= tempWarmC:
		extra += extraTempWarmMl
	}

	switch {
	case report.UVIndex >= uvHighIndex:
		extra += extraUVHighMl
	case report.UVIndex >= uvElevatedIndex:
		extra += extraUVElevatedMl
	}

	if report.Humidity >= humidityHighPct {
		extra += extraHumidityMl
	}

	bucket := domain.RiskLow
	switch {
	case extra >= heatHighThresholdMl:
		bucket = domain.RiskHigh
	case extra >= heatModerateThresholdMl:
		bucket = domain.RiskModerate
	}

	insights := buildWeatherInsights(report, extra)
	if len(insights) > MaxSurfacedInsights {
		insights = insights[:MaxSurfacedInsights]
	}

	return domain.WeatherAdviceResult{
		ExtraWaterMl:     extra,
		HeatStressBucket: bucket,
		Insights:         insights,
		Report:           report,
	}
}

// buildWeatherInsights mirrors the ordered decision list of the risk model.
func buildWeatherInsights(report domain.WeatherReport, extraMl float64) []string {
	var insights []string

	if report.TemperatureC >= tempWarmC {
		insights = append(insights, fmt.Sprintf(
			"It's %.0f°C today. Plan roughly %.0f ml of extra water on top of your target.",
			report.TemperatureC, extraMl,
		))
	}
	if report.UVIndex >= uvElevatedIndex {
		insights = append(insights, fmt.Sprintf(
			"UV index %.0f. Drink before you feel thirsty when outdoors.",
			report.UVIndex,
		))
	}
	if report.Humidity >= humidityHighPct {
		insights = append(insights, fmt.Sprintf(
			"Humidity at %.0f%% makes sweat less effective. Small, frequent sips work best.",
			report.Humidity,
		))
	}
	if len(insights) == 0 {
		insights = append(insights, "Mild conditions today. Your usual daily target covers it.")
	}

	return insights
}
