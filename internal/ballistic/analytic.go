package ballistic

import "math"

// Closed-form quantities for a drag-free launch that lands at launch height.
// Inputs are not validated; g must be positive.

// FlightTime returns 2·v·sin(θ)/g in seconds.
func FlightTime(v, angleDeg, g float64) float64 {
	return 2 * v * math.Sin(radians(angleDeg)) / g
}

// ApexTime returns the time of maximum height, v·sin(θ)/g.
func ApexTime(v, angleDeg, g float64) float64 {
	return v * math.Sin(radians(angleDeg)) / g
}

// Range returns the horizontal distance at landing, v²·sin(2θ)/g.
func Range(v, angleDeg, g float64) float64 {
	return v * v * math.Sin(2*radians(angleDeg)) / g
}

// MaxHeight returns (v·sin θ)²/(2g).
func MaxHeight(v, angleDeg, g float64) float64 {
	vy := v * math.Sin(radians(angleDeg))
	return vy * vy / (2 * g)
}

// Complement returns the angle that yields the same range.
func Complement(angleDeg float64) float64 {
	return 90 - angleDeg
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
