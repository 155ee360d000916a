// Package utils contains small helpers shared across gridplan packages.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngle normalizes an angle in radians to [0, 2pi). Negative angles wrap
// into the positive range.
func ModAngle(theta float64) float64 {
	return math.Mod(math.Mod(theta, 2*math.Pi)+2*math.Pi, 2*math.Pi)
}
