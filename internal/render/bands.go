package render

import "github.com/couchcryptid/forecast-bands-service/internal/ircfmt"

// Band is a numeric interval tagged with a colour. Max is always inclusive;
// Min is inclusive unless MinExclusive is set.
type Band struct {
	Min          float64
	Max          float64
	MinExclusive bool
	Color        ircfmt.Color
}

// Contains reports whether v lies within the band. NaN is never contained.
func (b Band) Contains(v float64) bool {
	if b.MinExclusive {
		if !(v > b.Min) {
			return false
		}
	} else if !(v >= b.Min) {
		return false
	}
	return v <= b.Max
}

// RangeTable is an ordered set of bands covering the legal domain of one field.
type RangeTable []Band

// BandOf returns the colour of the band containing v. When several bands
// match, the last one wins. A value outside every band returns
// ircfmt.Unknown and false.
func (t RangeTable) BandOf(v float64) (ircfmt.Color, bool) {
	color, found := ircfmt.Unknown, false
	for _, b := range t {
		if b.Contains(v) {
			color, found = b.Color, true
		}
	}
	return color, found
}

// steps builds a contiguous table from a first band [lo, edges[0]] followed by
// (edges[i-1], edges[i]] for each remaining edge.
func steps(lo float64, edges []float64, colors []ircfmt.Color) RangeTable {
	t := make(RangeTable, len(edges))
	for i, hi := range edges {
		t[i] = Band{Min: lo, Max: hi, MinExclusive: i > 0, Color: colors[i]}
		lo = hi
	}
	return t
}

// closedSteps builds [edges[i-1], edges[i]] bands that share their edges.
// BandOf's last-match rule gives each shared edge to the upper band.
func closedSteps(lo float64, edges []float64, colors []ircfmt.Color) RangeTable {
	t := make(RangeTable, len(edges))
	for i, hi := range edges {
		t[i] = Band{Min: lo, Max: hi, Color: colors[i]}
		lo = hi
	}
	return t
}

var tenBands = []ircfmt.Color{
	ircfmt.Blue, ircfmt.Purple, ircfmt.Teal, ircfmt.Green, ircfmt.Lime,
	ircfmt.Aqua, ircfmt.Yellow, ircfmt.Orange, ircfmt.Red, ircfmt.Pink,
}

var (
	// RainProbabilityTable bands precipitation probability in tenths.
	RainProbabilityTable = steps(0,
		[]float64{0.10, 0.20, 0.30, 0.40, 0.50, 0.60, 0.70, 0.80, 0.90, 1},
		tenBands)

	// RainIntensityTable bands precipitation intensity in inches per hour.
	RainIntensityTable = steps(0,
		[]float64{0.0050, 0.0100, 0.0130, 0.0170, 0.0220, 0.0280, 0.0330, 0.0380, 0.0430, 1},
		tenBands)

	// TemperatureTable bands temperature in °F, from absolute zero to the
	// highest recorded air temperature. Up to 38°F the bands are half-open;
	// from there on they are closed and share their edges, so 38°F is green
	// and 45°F is lime.
	TemperatureTable = append(
		steps(-459.7, []float64{24.99, 31.99, 38}, tenBands[:3]),
		closedSteps(38, []float64{45, 55, 65, 75, 85, 95, 159.3}, tenBands[3:])...)

	// WindSpeedTable bands wind speed in mph. Bands are closed and share
	// their edges, so 3 mph is purple and 12 mph is yellow.
	WindSpeedTable = closedSteps(0,
		[]float64{3, 6, 9, 12, 15, 18, 21, 999},
		[]ircfmt.Color{
			ircfmt.Blue, ircfmt.Purple, ircfmt.Teal, ircfmt.Aqua,
			ircfmt.Yellow, ircfmt.Orange, ircfmt.Red, ircfmt.Pink,
		})

	// SunTable bands the fraction of clear sky.
	SunTable = steps(0,
		[]float64{0.20, 0.50, 0.70, 1},
		[]ircfmt.Color{ircfmt.Green, ircfmt.Lime, ircfmt.Orange, ircfmt.Yellow})
)
