package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/steiner/internal/anim"
	"github.com/san-kum/steiner/internal/curve"
)

// Store archives traced curves under a base directory, one directory
// per trace with metadata.json and points.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TraceMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Params    curve.Params       `json:"params"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one generated sample and its metrics, returning the
// trace ID.
func (s *Store) Save(params curve.Params, sample *anim.Sample, metrics map[string]float64) (string, error) {
	traceID := fmt.Sprintf("trace_%d", time.Now().Unix())
	traceDir := filepath.Join(s.baseDir, traceID)

	if err := os.MkdirAll(traceDir, 0755); err != nil {
		return "", err
	}

	meta := TraceMetadata{
		ID:        traceID,
		Timestamp: time.Now(),
		Params:    params,
		Steps:     sample.Len(),
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(traceDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(traceDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, sample); err != nil {
		return "", err
	}

	return traceID, nil
}

// WriteCSV emits the sample as index-aligned rows of
// t, x, y, radius, angle, cx, cy.
func WriteCSV(out io.Writer, sample *anim.Sample) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"t", "x", "y", "radius", "angle", "cx", "cy"}); err != nil {
		return err
	}

	for i := 0; i < sample.Len(); i++ {
		row := []string{
			formatFloat(sample.Angles[i]),
			formatFloat(sample.Points[i].X),
			formatFloat(sample.Points[i].Y),
			formatFloat(sample.Polar[i].Radius),
			formatFloat(sample.Polar[i].Angle),
			formatFloat(sample.Centers[i].X),
			formatFloat(sample.Centers[i].Y),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 9, 64)
}

func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	traces := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta TraceMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		traces = append(traces, meta)
	}

	return traces, nil
}

func (s *Store) Load(traceID string) (*TraceMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, traceID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta TraceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSample rebuilds the point sample of a saved trace from its CSV.
func (s *Store) LoadSample(traceID string) (*anim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, traceID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return &anim.Sample{}, nil
	}

	sample := &anim.Sample{
		Angles:  make([]float64, 0, len(records)-1),
		Points:  make([]curve.Point, 0, len(records)-1),
		Polar:   make([]curve.Polar, 0, len(records)-1),
		Centers: make([]curve.Point, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		if len(record) < 7 {
			continue
		}
		vals := make([]float64, 7)
		bad := false
		for j := 0; j < 7; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				bad = true
				break
			}
			vals[j] = v
		}
		if bad {
			continue
		}
		sample.Angles = append(sample.Angles, vals[0])
		sample.Points = append(sample.Points, curve.Point{X: vals[1], Y: vals[2]})
		sample.Polar = append(sample.Polar, curve.Polar{Radius: vals[3], Angle: vals[4]})
		sample.Centers = append(sample.Centers, curve.Point{X: vals[5], Y: vals[6]})
	}

	return sample, nil
}

// ExportJSON writes a saved trace as a single JSON document.
func ExportJSON(out io.Writer, meta *TraceMetadata, sample *anim.Sample) error {
	doc := struct {
		TraceMetadata
		Angles  []float64     `json:"angles"`
		Points  []curve.Point `json:"points"`
		Polar   []curve.Polar `json:"polar"`
		Centers []curve.Point `json:"centers"`
	}{
		TraceMetadata: *meta,
		Angles:        sample.Angles,
		Points:        sample.Points,
		Polar:         sample.Polar,
		Centers:       sample.Centers,
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
