package anim

import (
	"math"

	"github.com/san-kum/steiner/internal/curve"
)

// RollingCircle positions the moving circle for one frame.
type RollingCircle struct {
	Center curve.Point
	Radius float64
}

// Frame is a complete snapshot of one animation frame: everything a
// render sink needs to draw both the Cartesian and the polar view
// without re-deriving anything. The path slices alias the controller's
// sample and must be treated as read-only.
type Frame struct {
	Index       int
	Steps       int
	Angle       float64
	Path        []curve.Point
	Point       curve.Point
	FixedRadius float64
	Offset      float64
	Rolling     RollingCircle
	PolarPath   []curve.Polar
	Polar       curve.Polar
}

// Frame assembles the snapshot for the current index, or ErrNoSample
// while idle.
func (a *Controller) Frame() (Frame, error) {
	if a.sample == nil {
		return Frame{}, ErrNoSample
	}
	p := a.curve.Params()
	s := a.sample
	return Frame{
		Index:       a.index,
		Steps:       s.Len(),
		Angle:       s.Angles[a.index],
		Path:        s.Points,
		Point:       s.Points[a.index],
		FixedRadius: p.Fixed,
		Offset:      p.Offset,
		Rolling:     RollingCircle{Center: s.Centers[a.index], Radius: p.Rolling},
		PolarPath:   s.Polar,
		Polar:       s.Polar[a.index],
	}, nil
}

// MaxExtent is the half-width a square viewport needs to contain the
// whole scene: the larger of R+r+d and the extreme trace coordinates.
// Render sinks scale this by their own visual margin.
func (f Frame) MaxExtent() float64 {
	extent := f.FixedRadius + f.Rolling.Radius + f.Offset
	for _, p := range f.Path {
		if v := math.Abs(p.X); v > extent {
			extent = v
		}
		if v := math.Abs(p.Y); v > extent {
			extent = v
		}
	}
	return extent
}
