// Package ircfmt implements the mIRC-style control-code colour protocol used
// for rendered forecast lines.
//
// Grammar of an encoded string:
//
//	coded   = segment* SENTINEL
//	segment = SENTINEL [ code ] text
//	code    = DIGIT DIGIT            ; "00".."15"
//	text    = *( any rune except SENTINEL )
//
// SENTINEL is the single byte 0x03. A segment without a code only occurs for
// the degenerate empty input, which encodes as SENTINEL SENTINEL.
package ircfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Control bytes recognised by IRC clients.
const (
	Sentinel  byte = 0x03
	Bold      byte = 0x02
	Italic    byte = 0x1d
	Underline byte = 0x1f
	Reverse   byte = 0x16
	Reset     byte = 0x0f
)

var (
	// ErrUnterminated is returned by Decode when the input does not start and
	// end with a sentinel.
	ErrUnterminated = errors.New("ircfmt: missing leading or trailing sentinel")

	// ErrUnknownColor is returned by Decode for a two-digit code outside 00-15.
	ErrUnknownColor = errors.New("ircfmt: unknown colour code")
)

// Segment is a run of text drawn in a single colour.
type Segment struct {
	Color Color
	Text  string
}

// Encode serializes segments into a control-coded string: one
// SENTINEL+code prefix per segment and a bare SENTINEL at the end.
// Sentinel bytes inside segment text are dropped.
func Encode(segments []Segment) string {
	if len(segments) == 0 {
		segments = []Segment{{Color: None}}
	}

	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte(Sentinel)
		if code, ok := seg.Color.Code(); ok {
			b.WriteString(code)
		}
		b.WriteString(strings.ReplaceAll(seg.Text, string(Sentinel), ""))
	}
	b.WriteByte(Sentinel)
	return b.String()
}

// Colorize wraps text in a single colour segment.
func Colorize(c Color, text string) string {
	return Encode([]Segment{{Color: c, Text: text}})
}

// Decode parses a string produced by Encode back into its segments.
func Decode(s string) ([]Segment, error) {
	sentinel := string(Sentinel)
	if !strings.HasPrefix(s, sentinel) || !strings.HasSuffix(s, sentinel) {
		return nil, ErrUnterminated
	}

	body := s[:len(s)-1]
	parts := strings.Split(body, sentinel)[1:]
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		seg := Segment{Color: None, Text: part}
		if len(part) >= 2 && isDigit(part[0]) && isDigit(part[1]) {
			n := int(part[0]-'0')*10 + int(part[1]-'0')
			c, ok := ColorForCode(n)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownColor, part[:2])
			}
			seg.Color = c
			seg.Text = part[2:]
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// Strip removes colour codes and text attribute bytes, leaving the visible text.
// Colour codes follow the client convention: up to two foreground digits,
// optionally followed by a comma and up to two background digits.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Sentinel:
			j := skipDigits(s, i+1)
			if j > i+1 && j+1 < len(s) && s[j] == ',' && isDigit(s[j+1]) {
				j = skipDigits(s, j+1)
			}
			i = j - 1
		case Bold, Italic, Underline, Reverse, Reset:
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// widthCondition ignores the locale so ambiguous-width glyphs such as the
// wind arrows always count as one cell.
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// VisibleWidth reports the number of terminal cells the stripped text occupies.
func VisibleWidth(s string) int {
	return widthCondition.StringWidth(Strip(s))
}

// skipDigits returns the index after at most two ASCII digits starting at i.
func skipDigits(s string, i int) int {
	for n := 0; n < 2 && i < len(s) && isDigit(s[i]); n++ {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
