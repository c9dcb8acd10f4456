// Package render turns numeric forecast series into compact, colour-banded
// glyph strings for text-only chat channels.
//
// Rendering a series is a fixed pipeline: every sample is normalized against
// the series, quantized to one of six glyphs, and the resulting glyph string
// is split into colour runs by the field's range table and serialized with
// the ircfmt control-code protocol. Everything here is a pure function of its
// inputs and safe for concurrent use.
package render

import (
	"fmt"
	"strings"
)

// OutOfRange is drawn for samples whose normalized value falls outside [0,1].
const OutOfRange = '?'

// GlyphSet holds six glyphs ordered from "none" (index 0) to "extreme" (index 5).
type GlyphSet [6]rune

var (
	// Plain is the ASCII skin.
	Plain = GlyphSet{'_', '.', '-', '~', '*', '\''}

	// Block uses Unicode lower block shades.
	Block = GlyphSet{'_', '▁', '▃', '▅', '▇', '█'}

	// Ozone is the alternate dot-and-ring skin.
	Ozone = GlyphSet{'・', 'o', 'O', '@', '◎', '◉'}
)

// ParseGlyphSet selects a glyph set by name.
func ParseGlyphSet(name string) (GlyphSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "ascii":
		return Plain, nil
	case "block", "ansi":
		return Block, nil
	case "ozone":
		return Ozone, nil
	default:
		return GlyphSet{}, fmt.Errorf("unknown glyph set %q", name)
	}
}
