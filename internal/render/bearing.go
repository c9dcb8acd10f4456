package render

import "math"

// CompassPoint is one of the eight cardinal and intercardinal directions.
type CompassPoint string

const (
	North     CompassPoint = "N"
	NorthEast CompassPoint = "NE"
	East      CompassPoint = "E"
	SouthEast CompassPoint = "SE"
	South     CompassPoint = "S"
	SouthWest CompassPoint = "SW"
	West      CompassPoint = "W"
	NorthWest CompassPoint = "NW"
)

// arrows point the reciprocal way: a bearing is where the wind comes from,
// the arrow shows where it goes.
var arrows = map[CompassPoint]rune{
	North:     '↓',
	NorthEast: '↙',
	East:      '←',
	SouthEast: '↖',
	South:     '↑',
	SouthWest: '↗',
	West:      '→',
	NorthWest: '↘',
}

// Direction maps a bearing in degrees to its compass point:
//
//	[0,25] N, (25,65] NE, (65,115] E, (115,155] SE, (155,205] S,
//	(205,245] SW, (245,295] W, (295,335] NW, (335,360] N
//
// Bearings outside [0,360] are reduced modulo 360. NaN and infinities
// return false.
func Direction(bearing float64) (CompassPoint, bool) {
	if math.IsNaN(bearing) || math.IsInf(bearing, 0) {
		return "", false
	}
	if bearing < 0 || bearing > 360 {
		bearing = math.Mod(bearing, 360)
		if bearing < 0 {
			bearing += 360
		}
	}

	switch {
	case bearing <= 25:
		return North, true
	case bearing <= 65:
		return NorthEast, true
	case bearing <= 115:
		return East, true
	case bearing <= 155:
		return SouthEast, true
	case bearing <= 205:
		return South, true
	case bearing <= 245:
		return SouthWest, true
	case bearing <= 295:
		return West, true
	case bearing <= 335:
		return NorthWest, true
	default:
		return North, true
	}
}

// Arrow returns the downwind arrow for a bearing, or OutOfRange when the
// bearing is not a finite number.
func Arrow(bearing float64) rune {
	point, ok := Direction(bearing)
	if !ok {
		return OutOfRange
	}
	return arrows[point]
}
