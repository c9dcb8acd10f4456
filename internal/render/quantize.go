package render

import "math"

// Normalize converts a raw sample to a fraction of the series span.
//
// A zero differential (a constant series) returns value unchanged. That
// result is not a fraction; for most fields it lands outside [0,1] and is
// drawn as OutOfRange. No clamping is done here.
func Normalize(value, seriesMin, differential float64) float64 {
	if differential == 0 {
		return value
	}
	return (value - seriesMin) / differential
}

// Quantize maps a normalized value to a glyph using six buckets with
// inclusive upper bounds: 0, (0,.10], (.10,.25], (.25,.50], (.50,.75], (.75,1].
// Values below 0, above 1 or NaN yield OutOfRange.
func Quantize(p float64, set GlyphSet) rune {
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return OutOfRange
	case p == 0:
		return set[0]
	case p <= 0.10:
		return set[1]
	case p <= 0.25:
		return set[2]
	case p <= 0.50:
		return set[3]
	case p <= 0.75:
		return set[4]
	default:
		return set[5]
	}
}

// Bounds returns the minimum and maximum of values, ignoring NaN samples.
// ok is false when no sample is a number.
func Bounds(values []float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, ok
}
