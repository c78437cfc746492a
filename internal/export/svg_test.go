package export

import (
	"strings"
	"testing"

	"github.com/san-kum/steiner/internal/anim"
	"github.com/san-kum/steiner/internal/curve"
)

func referenceFrame(t *testing.T) anim.Frame {
	t.Helper()
	c, err := curve.New(curve.Params{Fixed: 3, Rolling: 1, Offset: 1})
	if err != nil {
		t.Fatalf("new curve: %v", err)
	}
	a := anim.NewController(c)
	if err := a.Generate(100); err != nil {
		t.Fatalf("generate: %v", err)
	}
	f, err := a.Frame()
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	return f
}

func TestCurveSVG(t *testing.T) {
	f := referenceFrame(t)
	svg := CurveSVG(f.Path, 400, 400, "#00ccff")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `stroke="#00ccff"`) {
		t.Error("stroke color not applied")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}
	if strings.Count(svg, " L") != len(f.Path)-1 {
		t.Errorf("expected %d line segments, got %d", len(f.Path)-1, strings.Count(svg, " L"))
	}
}

func TestCurveSVGTooFewPoints(t *testing.T) {
	if got := CurveSVG([]curve.Point{{X: 1, Y: 1}}, 100, 100, "#fff"); got != "" {
		t.Errorf("expected empty output for a single point, got %d bytes", len(got))
	}
}

func TestFrameSVG(t *testing.T) {
	f := referenceFrame(t)
	svg := FrameSVG(f)

	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("expected fixed circle, rolling circle and point marker, got %d circles", got)
	}
	if !strings.Contains(svg, "<line") {
		t.Error("missing spoke from rolling center to traced point")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("missing trace path")
	}
}
