package geom

import "math"

// SnapDown floors value to a multiple of unit. Used only when creating
// elements. A non-positive unit returns value unchanged.
func SnapDown(value, unit float64) float64 {
	if unit <= 0 {
		return value
	}
	return math.Floor(value/unit) * unit
}

// SnapNearest rounds value to the closest multiple of unit. Used for move,
// resize and split. A non-positive unit returns value unchanged.
func SnapNearest(value, unit float64) float64 {
	if unit <= 0 {
		return value
	}
	return math.Round(value/unit) * unit
}
