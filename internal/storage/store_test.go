package storage

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/steiner/internal/anim"
	"github.com/san-kum/steiner/internal/curve"
)

func makeSample(t *testing.T, params curve.Params, steps int) *anim.Sample {
	t.Helper()
	c, err := curve.New(params)
	if err != nil {
		t.Fatalf("new curve: %v", err)
	}
	a := anim.NewController(c)
	if err := a.Generate(steps); err != nil {
		t.Fatalf("generate: %v", err)
	}
	return a.Sample()
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	params := curve.Params{Fixed: 3, Rolling: 1, Offset: 1}
	sample := makeSample(t, params, 50)
	metrics := map[string]float64{"closure_turns": 1}

	traceID, err := st.Save(params, sample, metrics)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := st.Load(traceID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Params != params {
		t.Errorf("params mismatch: got %+v, want %+v", meta.Params, params)
	}
	if meta.Steps != 50 {
		t.Errorf("steps: got %d, want 50", meta.Steps)
	}
	if meta.Metrics["closure_turns"] != 1 {
		t.Errorf("metrics not preserved: %+v", meta.Metrics)
	}

	loaded, err := st.LoadSample(traceID)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if loaded.Len() != sample.Len() {
		t.Fatalf("length mismatch: got %d, want %d", loaded.Len(), sample.Len())
	}
	for i := 0; i < sample.Len(); i++ {
		if math.Abs(loaded.Points[i].X-sample.Points[i].X) > 1e-6 ||
			math.Abs(loaded.Points[i].Y-sample.Points[i].Y) > 1e-6 {
			t.Fatalf("point %d drifted: got %+v, want %+v", i, loaded.Points[i], sample.Points[i])
		}
		if math.Abs(loaded.Centers[i].X-sample.Centers[i].X) > 1e-6 {
			t.Fatalf("center %d drifted", i)
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	traces, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(traces) != 0 {
		t.Errorf("expected no traces, got %d", len(traces))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	params := curve.Params{Fixed: 4, Rolling: 1, Offset: 1}
	if _, err := st.Save(params, makeSample(t, params, 20), nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	traces, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(traces) != 1 {
		t.Fatalf("expected 1 trace, got %d", len(traces))
	}
	if traces[0].Params != params {
		t.Errorf("params mismatch in listing: %+v", traces[0].Params)
	}
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	sample := makeSample(t, curve.Params{Fixed: 3, Rolling: 1, Offset: 1}, 5)

	if err := WriteCSV(&buf, sample); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "t,x,y,radius,angle,cx,cy" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if len(lines) != 6 {
		t.Errorf("expected header plus 5 rows, got %d lines", len(lines))
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	params := curve.Params{Fixed: 3, Rolling: 1, Offset: 1}
	sample := makeSample(t, params, 10)
	meta := &TraceMetadata{ID: "trace_test", Params: params, Steps: 10}

	if err := ExportJSON(&buf, meta, sample); err != nil {
		t.Fatalf("export: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"id": "trace_test"`, `"points"`, `"polar"`, `"centers"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
}
