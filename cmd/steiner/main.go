package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/steiner/internal/analysis"
	"github.com/san-kum/steiner/internal/anim"
	"github.com/san-kum/steiner/internal/config"
	"github.com/san-kum/steiner/internal/curve"
	"github.com/san-kum/steiner/internal/export"
	"github.com/san-kum/steiner/internal/storage"
	"github.com/san-kum/steiner/internal/viz"
)

var (
	dataDir    string
	fixedR     float64
	rollingR   float64
	offsetD    float64
	steps      int
	tickMS     int
	themeName  string
	configFile string
	preset     string
	svgSize    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "steiner",
		Short: "steiner curve animation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive animator when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".steiner", "data directory")
	addCurveFlags(rootCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "trace one revolution and save it",
		RunE:  runTrace,
	}
	addCurveFlags(traceCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the curve in the terminal",
		RunE:  runLive,
	}
	addCurveFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved traces",
		RunE:  listTraces,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [trace_id]",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [trace_id]",
		Short: "closure and shape analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeTrace,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [trace_id]",
		Short: "export trace points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [trace_id]",
		Short: "export trace data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [trace_id]",
		Short: "export trace path to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 600, "image size in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in curve presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tR\tr\td\tSTEPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%d\n",
					name, p.Fixed, p.Rolling, p.Offset, p.Steps)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(traceCmd, liveCmd, listCmd, plotCmd, analyzeCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&fixedR, "R", config.DefaultFixed, "fixed circle radius")
	cmd.Flags().Float64Var(&rollingR, "r", config.DefaultRolling, "rolling circle radius")
	cmd.Flags().Float64Var(&offsetD, "d", config.DefaultOffset, "traced point offset")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "samples per revolution")
	cmd.Flags().IntVar(&tickMS, "tick", config.DefaultTickMS, "frame period in ms")
	cmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset curve")
}

// resolveConfig layers preset, config file and explicit flags over the
// defaults, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("R") {
		cfg.Fixed = fixedR
	}
	if cmd.Flags().Changed("r") {
		cfg.Rolling = rollingR
	}
	if cmd.Flags().Changed("d") {
		cfg.Offset = offsetD
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("tick") {
		cfg.TickMS = tickMS
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}

	return cfg, nil
}

func newController(cfg *config.Config) (*anim.Controller, error) {
	c, err := curve.New(cfg.Params())
	if err != nil {
		return nil, err
	}
	return anim.NewController(c), nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(ctrl, cfg.Steps, time.Duration(cfg.TickMS)*time.Millisecond, cfg.Theme)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("tracing R=%.2f r=%.2f d=%.2f over %d samples...\n",
		cfg.Fixed, cfg.Rolling, cfg.Offset, cfg.Steps)
	start := time.Now()

	if err := ctrl.Generate(cfg.Steps); err != nil {
		return err
	}
	sample := ctrl.Sample()
	metrics := analysis.Summarize(cfg.Params(), sample.Points)

	traceID, err := st.Save(cfg.Params(), sample, metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("trace id: %s\n", traceID)
	fmt.Printf("points: %d\n", sample.Len())
	fmt.Println("\nmetrics:")
	for name, val := range metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listTraces(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traces, err := st.List()
	if err != nil {
		return err
	}

	if len(traces) == 0 {
		fmt.Println("no traces found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tR\tr\td\tSTEPS\tCLOSURE")

	for _, tr := range traces {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%d\t%.0f\n",
			tr.ID,
			tr.Timestamp.Format("2006-01-02 15:04:05"),
			tr.Params.Fixed,
			tr.Params.Rolling,
			tr.Params.Offset,
			tr.Steps,
			tr.Metrics["closure_turns"],
		)
	}

	return w.Flush()
}

func plotTrace(cmd *cobra.Command, args []string) error {
	traceID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(traceID)
	if err != nil {
		return err
	}

	sample, err := st.LoadSample(traceID)
	if err != nil {
		return err
	}
	if sample.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("trace: %s\n", meta.ID)
	fmt.Printf("R=%.2f r=%.2f d=%.2f, %d samples\n\n",
		meta.Params.Fixed, meta.Params.Rolling, meta.Params.Offset, sample.Len())

	series := []struct {
		caption string
		data    func(i int) float64
	}{
		{"x vs sample", func(i int) float64 { return sample.Points[i].X }},
		{"y vs sample", func(i int) float64 { return sample.Points[i].Y }},
		{"radius vs sample", func(i int) float64 { return sample.Polar[i].Radius }},
	}

	for _, s := range series {
		data := make([]float64, sample.Len())
		for i := range data {
			data[i] = s.data(i)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeTrace(cmd *cobra.Command, args []string) error {
	traceID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(traceID)
	if err != nil {
		return err
	}

	sample, err := st.LoadSample(traceID)
	if err != nil {
		return err
	}
	if sample.Len() == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("shape analysis: %s\n", meta.ID)
	fmt.Printf("R=%.4f r=%.4f d=%.4f\n\n", meta.Params.Fixed, meta.Params.Rolling, meta.Params.Offset)

	if p, q, ok := analysis.Ratio(meta.Params.Fixed, meta.Params.Rolling); ok {
		fmt.Printf("R/r = %d/%d: closes after %d turn(s)\n", p, q, q)
	} else {
		fmt.Println("R/r irrational within tolerance: trace never closes")
	}
	fmt.Printf("arc length: %.6f\n", analysis.ArcLength(sample.Points))
	fmt.Printf("max radius: %.6f\n\n", analysis.MaxRadius(sample.Points))

	radii := make([]float64, sample.Len())
	for i := range radii {
		radii[i] = sample.Polar[i].Radius
	}
	graph := asciigraph.Plot(radii,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("radius profile"),
	)
	fmt.Println(graph)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	sample, err := st.LoadSample(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, sample)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	sample, err := st.LoadSample(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, sample)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	sample, err := st.LoadSample(args[0])
	if err != nil {
		return err
	}
	if sample.Len() < 2 {
		return fmt.Errorf("not enough points to export")
	}
	_, err = fmt.Println(export.CurveSVG(sample.Points, svgSize, svgSize, "#00ccff"))
	return err
}
