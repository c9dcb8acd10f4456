package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Units is the display unit system. Forecast data is always imperial.
type Units string

const (
	Imperial Units = "imperial"
	Metric   Units = "metric"
)

// ParseUnits accepts "imperial"/"f"/"us" and "metric"/"c"/"si".
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "imperial", "f", "us":
		return Imperial, nil
	case "metric", "c", "si":
		return Metric, nil
	default:
		return "", fmt.Errorf("unknown unit system %q", s)
	}
}

// Celsius converts °F to °C rounded to two decimals.
func Celsius(f float64) float64 {
	return Round(0.5555556*(f-32), 2)
}

// Kilometers converts mph to km/h rounded to two decimals.
func Kilometers(mph float64) float64 {
	return Round(mph*1.6, 2)
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// FormatTemperature renders a °F reading in the given unit system.
func FormatTemperature(f float64, u Units) string {
	if u == Metric {
		return formatNumber(Celsius(f)) + "°C"
	}
	return formatNumber(f) + "°F"
}

// FormatSpeed renders an mph reading in the given unit system.
func FormatSpeed(mph float64, u Units) string {
	if u == Metric {
		return formatNumber(Kilometers(mph)) + " kph"
	}
	return formatNumber(mph) + " mph"
}

// formatNumber prints the shortest representation with at least one decimal.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".nN") {
		return s
	}
	return s + ".0"
}
