package analysis

import (
	"math"

	"github.com/san-kum/steiner/internal/curve"
)

// maxDenominator bounds the continued-fraction approximation of R/r.
// Ratios that do not reduce within this bound are treated as
// irrational: the trace never closes.
const maxDenominator = 1000

// Ratio approximates R/r as a reduced fraction p/q using continued
// fractions. ok is false when no denominator up to maxDenominator
// matches within 1e-9.
func Ratio(R, r float64) (p, q int, ok bool) {
	x := R / r
	a0 := math.Floor(x)

	// Convergents p/q of the continued fraction expansion.
	p0, q0 := 1, 0
	p1, q1 := int(a0), 1
	frac := x - a0

	for i := 0; i < 64; i++ {
		if math.Abs(x-float64(p1)/float64(q1)) < 1e-9 {
			return p1, q1, true
		}
		if frac < 1e-12 {
			break
		}
		inv := 1 / frac
		a := math.Floor(inv)
		frac = inv - a

		p0, p1 = p1, int(a)*p1+p0
		q0, q1 = q1, int(a)*q1+q0
		if q1 > maxDenominator {
			break
		}
	}
	return 0, 0, false
}

// ClosureTurns returns how many revolutions of the rolling circle's
// center the trace needs to close, or 0 when R/r is not rational
// within tolerance.
func ClosureTurns(R, r float64) int {
	_, q, ok := Ratio(R, r)
	if !ok {
		return 0
	}
	return q
}

// ArcLength sums the polyline segments of a trace.
func ArcLength(points []curve.Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
	}
	return total
}

// MaxRadius returns the largest distance from the origin on the trace.
func MaxRadius(points []curve.Point) float64 {
	max := 0.0
	for _, p := range points {
		if r := math.Hypot(p.X, p.Y); r > max {
			max = r
		}
	}
	return max
}

// Summarize computes the standard per-trace metrics stored alongside a
// saved run.
func Summarize(params curve.Params, points []curve.Point) map[string]float64 {
	return map[string]float64{
		"closure_turns": float64(ClosureTurns(params.Fixed, params.Rolling)),
		"arc_length":    ArcLength(points),
		"max_radius":    MaxRadius(points),
	}
}
