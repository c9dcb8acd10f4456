package render

import (
	"strings"

	"github.com/couchcryptid/forecast-bands-service/internal/domain"
)

// Placeholders returned in place of a rendering when a block is absent.
const (
	NoMinutely = "No minute-by-minute data available."
	NoHourly   = "No hourly data available."
	NoDaily    = "No daily data available."
)

// Scale selects the differential used to normalize a series.
type Scale int

const (
	// ScaleUnit uses a fixed differential of 1 for fields already bounded in [0,1].
	ScaleUnit Scale = iota
	// ScaleRange uses the series' own max - min.
	ScaleRange
)

// Profile binds a field to its normalization scale and colour table.
type Profile struct {
	Field domain.Field
	Scale Scale
	Table RangeTable
}

var (
	RainProbability = Profile{Field: domain.FieldPrecipProbability, Scale: ScaleUnit, Table: RainProbabilityTable}
	RainIntensity   = Profile{Field: domain.FieldPrecipIntensity, Scale: ScaleUnit, Table: RainIntensityTable}
	Temperature     = Profile{Field: domain.FieldTemperature, Scale: ScaleRange, Table: TemperatureTable}
	WindSpeed       = Profile{Field: domain.FieldWindSpeed, Scale: ScaleRange, Table: WindSpeedTable}
)

// Glyphs quantizes values into a glyph string, one glyph per sample.
func Glyphs(values []float64, scale Scale, set GlyphSet) string {
	lo, hi, _ := Bounds(values)
	differential := 1.0
	if scale == ScaleRange {
		differential = hi - lo
	}

	var b strings.Builder
	for _, v := range values {
		b.WriteRune(Quantize(Normalize(v, lo, differential), set))
	}
	return b.String()
}

// Series renders one field of series as a colour-banded glyph string.
func Series(series domain.Series, p Profile, set GlyphSet) string {
	glyphs := Glyphs(series.Values(p.Field), p.Scale, set)
	return EncodeBands(series, p.Field, glyphs, p.Table)
}

// RenderBlock renders a data block, returning missing when the block is absent.
func RenderBlock(block *domain.DataBlock, p Profile, set GlyphSet, missing string) string {
	if block == nil {
		return missing
	}
	return Series(block.Data, p, set)
}

// Wind renders one arrow per point showing where the wind blows to, coloured
// by wind speed.
func Wind(series domain.Series) string {
	var b strings.Builder
	for _, v := range series.Values(domain.FieldWindBearing) {
		b.WriteRune(Arrow(v))
	}
	return EncodeBands(series, domain.FieldWindSpeed, b.String(), WindSpeedTable)
}
