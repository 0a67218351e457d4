package game

import "math"

// PosFrom returns the offset reached by travelling distance along a heading
// given in degrees, measured clockwise from +X in screen coordinates.
func PosFrom(distance, degrees float64) (dx, dy float64) {
	rad := degrees * math.Pi / 180
	return math.Cos(rad) * distance, math.Sin(rad) * distance
}
