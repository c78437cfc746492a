package curve

import (
	"fmt"
	"math"
)

// Params describes a hypotrochoid: a circle of radius Rolling rolls
// inside a fixed circle of radius Fixed, and the traced point sits at
// distance Offset from the rolling circle's center.
type Params struct {
	Fixed   float64 `yaml:"R" json:"R"`
	Rolling float64 `yaml:"r" json:"r"`
	Offset  float64 `yaml:"d" json:"d"`
}

// Validate checks the parameter invariants: all three values must be
// positive and the offset must not exceed the rolling radius. A fixed
// circle smaller than the rolling one is allowed; the trace is
// geometrically degenerate but well defined.
func (p Params) Validate() error {
	if p.Fixed <= 0 || p.Rolling <= 0 || p.Offset <= 0 {
		return fmt.Errorf("%w: R, r and d must be positive (R=%g, r=%g, d=%g)",
			ErrInvalidParameter, p.Fixed, p.Rolling, p.Offset)
	}
	if p.Offset > p.Rolling {
		return fmt.Errorf("%w: offset d=%g exceeds rolling radius r=%g",
			ErrInvalidParameter, p.Offset, p.Rolling)
	}
	return nil
}

// Curve evaluates the hypotrochoid family for one validated parameter
// triple. Evaluation is pure: the only mutable state is the triple
// itself, replaced atomically by Set.
type Curve struct {
	params Params
}

// New returns a curve with the given parameters, or ErrInvalidParameter.
func New(p Params) (*Curve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Curve{params: p}, nil
}

// Set replaces the parameter triple. On validation failure the previous
// parameters stay in effect.
func (c *Curve) Set(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.params = p
	return nil
}

// Params returns the current parameter triple.
func (c *Curve) Params() Params {
	return c.params
}

// Cartesian evaluates the trace at each angle:
//
//	x(t) = (R-r)·cos(t) + d·cos(((R-r)/r)·t)
//	y(t) = (R-r)·sin(t) - d·sin(((R-r)/r)·t)
//
// (R-r) is the distance from the fixed center to the rolling circle's
// center; the second term rotates the offset point around that moving
// center at rate (R-r)/r. r > 0 is guaranteed by Validate, so the
// division is always safe.
func (c *Curve) Cartesian(angles []float64) []Point {
	k := c.params.Fixed - c.params.Rolling
	rate := k / c.params.Rolling
	points := make([]Point, len(angles))
	for i, t := range angles {
		points[i] = Point{
			X: k*math.Cos(t) + c.params.Offset*math.Cos(rate*t),
			Y: k*math.Sin(t) - c.params.Offset*math.Sin(rate*t),
		}
	}
	return points
}

// Polar evaluates the trace in polar form. The values are derived from
// the Cartesian evaluation, never from an independent formula.
func (c *Curve) Polar(angles []float64) []Polar {
	return ToPolar(c.Cartesian(angles))
}

// RollingCenters returns the path of the rolling circle's own center,
// (R-r)·(cos t, sin t), used to place the moving circle each frame.
func (c *Curve) RollingCenters(angles []float64) []Point {
	k := c.params.Fixed - c.params.Rolling
	points := make([]Point, len(angles))
	for i, t := range angles {
		points[i] = Point{X: k * math.Cos(t), Y: k * math.Sin(t)}
	}
	return points
}

// Domain returns n equally spaced angle samples covering [0, 2π] with
// both endpoints included. n must be at least 2.
func Domain(n int) []float64 {
	angles := make([]float64, n)
	step := 2 * math.Pi / float64(n-1)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return angles
}
