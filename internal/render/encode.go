package render

import (
	"math"

	"github.com/couchcryptid/forecast-bands-service/internal/domain"
	"github.com/couchcryptid/forecast-bands-service/internal/ircfmt"
)

// EncodeBands colours glyphs by the band each sample of field falls into and
// serializes the result with one control code per colour change.
//
// series and glyphs are walked in lockstep; positions beyond the shorter of
// the two are ignored. Samples outside the table get ircfmt.Unknown. An empty
// series encodes to a bare sentinel pair.
func EncodeBands(series domain.Series, field domain.Field, glyphs string, table RangeTable) string {
	return ircfmt.Encode(colorRuns(series, field, []rune(glyphs), table))
}

// colorRuns run-length compresses consecutive positions sharing a colour.
func colorRuns(series domain.Series, field domain.Field, glyphs []rune, table RangeTable) []ircfmt.Segment {
	n := min(len(series), len(glyphs))
	if n == 0 {
		return nil
	}

	var (
		segments []ircfmt.Segment
		run      []rune
	)
	current := colorAt(series[0], field, table)
	for i := 0; i < n; i++ {
		color := colorAt(series[i], field, table)
		if color != current {
			segments = append(segments, ircfmt.Segment{Color: current, Text: string(run)})
			run = run[:0]
			current = color
		}
		run = append(run, glyphs[i])
	}
	return append(segments, ircfmt.Segment{Color: current, Text: string(run)})
}

func colorAt(p domain.DataPoint, field domain.Field, table RangeTable) ircfmt.Color {
	v, ok := p.Value(field)
	if !ok {
		v = math.NaN()
	}
	color, _ := table.BandOf(v)
	return color
}
