package anim

import (
	"errors"
	"fmt"

	"github.com/san-kum/steiner/internal/curve"
)

// DefaultSteps is the number of frames in one full revolution.
const DefaultSteps = 300

// ErrNoSample indicates a frame operation before any successful Generate.
var ErrNoSample = errors.New("anim: no sample generated")

// State is the controller's playback state.
type State int

const (
	Idle State = iota
	Paused
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paused:
		return "paused"
	case Running:
		return "running"
	}
	return "unknown"
}

// Sample holds one generated revolution as index-aligned slices. It is
// replaced wholesale on regeneration, never patched.
type Sample struct {
	Angles  []float64
	Points  []curve.Point
	Polar   []curve.Polar
	Centers []curve.Point
}

// Len returns the frame count.
func (s *Sample) Len() int {
	return len(s.Points)
}

// Controller steps through a generated sample one frame per tick.
// It assumes single-threaded access; the host timer drives Tick.
type Controller struct {
	curve   *curve.Curve
	sample  *Sample
	index   int
	running bool
}

// NewController wraps a curve model in an idle controller.
func NewController(c *curve.Curve) *Controller {
	return &Controller{curve: c}
}

// State reports Idle until a sample exists, then Paused or Running.
func (a *Controller) State() State {
	switch {
	case a.sample == nil:
		return Idle
	case a.running:
		return Running
	}
	return Paused
}

// Curve exposes the underlying model for parameter queries.
func (a *Controller) Curve() *curve.Curve {
	return a.curve
}

// SetParams forwards to the curve model. A rejected triple leaves both
// the parameters and any existing sample untouched.
func (a *Controller) SetParams(p curve.Params) error {
	return a.curve.Set(p)
}

// Generate evaluates one revolution over steps equally spaced angles
// and replaces the sample, rewinding to frame 0 in the paused state.
// On failure the prior sample and frame index survive.
func (a *Controller) Generate(steps int) error {
	if steps < 2 {
		return fmt.Errorf("at least 2 samples required, got %d", steps)
	}
	angles := curve.Domain(steps)
	points := a.curve.Cartesian(angles)
	a.sample = &Sample{
		Angles:  angles,
		Points:  points,
		Polar:   curve.ToPolar(points),
		Centers: a.curve.RollingCenters(angles),
	}
	a.index = 0
	a.running = false
	return nil
}

// Play starts frame advancement, generating a default sample first if
// none exists. Returns false when playback was already running.
func (a *Controller) Play() (bool, error) {
	if a.sample == nil {
		if err := a.Generate(DefaultSteps); err != nil {
			return false, err
		}
	}
	if a.running {
		return false, nil
	}
	a.running = true
	return true, nil
}

// Stop halts frame advancement. Returns false if nothing was running.
func (a *Controller) Stop() bool {
	if !a.running {
		return false
	}
	a.running = false
	return true
}

// Tick advances exactly one frame, wrapping at the end of the
// revolution. It is a no-op unless running: the host timer fires at a
// fixed period regardless of playback state.
func (a *Controller) Tick() {
	if !a.running {
		return
	}
	a.index = (a.index + 1) % a.sample.Len()
}

// Seek jumps to the given frame, wrapping out-of-range indices in
// either direction. Seeking requires a sample.
func (a *Controller) Seek(index int) error {
	if a.sample == nil {
		return ErrNoSample
	}
	n := a.sample.Len()
	index %= n
	if index < 0 {
		index += n
	}
	a.index = index
	return nil
}

// Index returns the current frame index; 0 while idle.
func (a *Controller) Index() int {
	return a.index
}

// Sample returns the current sample, nil while idle.
func (a *Controller) Sample() *Sample {
	return a.sample
}
