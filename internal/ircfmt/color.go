package ircfmt

import "fmt"

// Color is an opaque colour tag. It is resolved to a two-digit mIRC colour
// code only when a string is encoded.
type Color string

const (
	White  Color = "white"
	Black  Color = "black"
	Blue   Color = "blue"
	Green  Color = "green"
	Red    Color = "red"
	Brown  Color = "brown"
	Purple Color = "purple"
	Orange Color = "orange"
	Yellow Color = "yellow"
	Lime   Color = "lime"
	Teal   Color = "teal"
	Aqua   Color = "aqua"
	Royal  Color = "royal"
	Pink   Color = "pink"
	Grey   Color = "grey"
	Silver Color = "silver"

	// None marks a segment with no colour code, e.g. the degenerate segment
	// produced for an empty series.
	None Color = ""

	// Unknown is assigned to samples that fall outside every band of a range table.
	Unknown = Grey
)

// palette is indexed by colour code.
var palette = [16]Color{
	White, Black, Blue, Green, Red, Brown, Purple, Orange,
	Yellow, Lime, Teal, Aqua, Royal, Pink, Grey, Silver,
}

var codes = func() map[Color]int {
	m := make(map[Color]int, len(palette))
	for i, c := range palette {
		m[c] = i
	}
	return m
}()

// Code returns the zero-padded two-digit code for c. It returns false for
// None and for tags outside the 16-entry palette.
func (c Color) Code() (string, bool) {
	n, ok := codes[c]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d", n), true
}

// ColorForCode maps a numeric colour code back to its tag.
func ColorForCode(n int) (Color, bool) {
	if n < 0 || n >= len(palette) {
		return None, false
	}
	return palette[n], true
}
