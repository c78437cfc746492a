package curve

import "math"

// Point is a position in the Cartesian plane.
type Point struct {
	X, Y float64
}

// Polar is the same position expressed as (radius, angle).
type Polar struct {
	Radius float64
	Angle  float64
}

// ToPolar converts a point using radius = sqrt(x²+y²), angle = atan2(y, x).
func (p Point) ToPolar() Polar {
	return Polar{
		Radius: math.Hypot(p.X, p.Y),
		Angle:  math.Atan2(p.Y, p.X),
	}
}

// ToPolar converts a Cartesian trace to polar coordinates index by index.
// Deriving from the Cartesian points (rather than re-evaluating the
// parametric formula) keeps both representations in exact agreement.
func ToPolar(points []Point) []Polar {
	out := make([]Polar, len(points))
	for i, p := range points {
		out[i] = p.ToPolar()
	}
	return out
}
