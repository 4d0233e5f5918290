package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajlab/internal/config"
	"github.com/san-kum/trajlab/internal/export"
	"github.com/san-kum/trajlab/internal/phys"
	"github.com/san-kum/trajlab/internal/storage"
	"github.com/san-kum/trajlab/internal/study"
	"github.com/san-kum/trajlab/internal/viz"
)

var (
	dataDir    string
	speed      float64
	angle      float64
	mass       float64
	drag       float64
	baseStep   float64
	configFile string
	preset     string
	svgOut     string
	svgWidth   int
	svgHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trajlab",
		Short: "projectile flight lab: Euler integration and step-size convergence",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".trajlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate one flight at the base step size",
		RunE:  runFlight,
	}
	addParamFlags(runCmd)

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "run the step-size convergence study",
		RunE:  runConverge,
	}
	addParamFlags(convergeCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "replay one flight in the terminal",
		RunE:  runLive,
	}
	addParamFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved studies",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot saved trajectories",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export saved trajectories to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved study to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render saved trajectories to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "trajectories.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, convergeCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&speed, "v0", config.DefaultSpeed, "initial speed (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", config.DefaultAngle, "launch angle (degrees)")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass (kg)")
	cmd.Flags().Float64Var(&drag, "drag", config.DefaultDrag, "linear drag coefficient")
	cmd.Flags().Float64Var(&baseStep, "dt", config.DefaultBaseStep, "base step size (s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file, and flags; flags win over the
// config file, which wins over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Speed = p.Speed
		cfg.Angle = p.Angle
		cfg.Mass = p.Mass
		cfg.Drag = p.Drag
		cfg.BaseStep = p.BaseStep
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("v0") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("angle") {
		cfg.Angle = angle
	}
	if cmd.Flags().Changed("mass") {
		cfg.Mass = mass
	}
	if cmd.Flags().Changed("drag") {
		cfg.Drag = drag
	}
	if cmd.Flags().Changed("dt") {
		cfg.BaseStep = baseStep
	}

	return cfg, nil
}

func runFlight(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := cfg.Integrator().Integrate(cfg.Params(), cfg.BaseStep)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(res.Path.Ys(),
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("altitude, dt=%g", res.Dt)),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tRANGE\tMAX HEIGHT\tFINAL SPEED\tSTEPS")
	writeSummaryRow(w, res)
	return w.Flush()
}

func runConverge(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running convergence study (base dt=%g)...\n", cfg.BaseStep)
	start := time.Now()

	results, err := study.Run(cfg.Integrator(), cfg.Params(), cfg.BaseStep, cfg.Options())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Params(), cfg.BaseStep, results)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tRANGE\tMAX HEIGHT\tFINAL SPEED\tSTEPS")
	for _, res := range results {
		writeSummaryRow(w, res)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	series := make([][]float64, len(results))
	for i, res := range results {
		series[i] = res.Path.Ys()
	}
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("altitude per step size"),
	)
	fmt.Println(graph)

	return nil
}

func writeSummaryRow(w *tabwriter.Writer, res *phys.Result) {
	fmt.Fprintf(w, "%g\t%.3f\t%.3f\t%.3f\t%d\n",
		res.Dt, res.Range, res.MaxHeight, res.FinalSpeed, res.Steps)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Integrator(), cfg.Params(), cfg.BaseStep)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tV0\tANGLE\tMASS\tDRAG\tBASE DT\tROWS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.2f\t%.3f\t%g\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Speed,
			run.Angle,
			run.Mass,
			run.Drag,
			run.BaseStep,
			len(run.Summaries),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	flights, err := st.LoadFlights(runID)
	if err != nil {
		return err
	}
	if len(flights) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("v0=%.1f m/s, angle=%.1f°, mass=%.2f kg, drag=%.3f\n\n",
		meta.Speed, meta.Angle, meta.Mass, meta.Drag)

	for _, f := range flights {
		graph := asciigraph.Plot(f.Path.Ys(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("altitude, dt=%g", f.Dt)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	flights, err := st.LoadFlights(runID)
	if err != nil {
		return err
	}
	if len(flights) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"dt", "x", "y"}); err != nil {
		return err
	}
	for _, f := range flights {
		dtField := strconv.FormatFloat(f.Dt, 'g', -1, 64)
		for _, pt := range f.Path {
			row := []string{
				dtField,
				strconv.FormatFloat(pt.X, 'f', 6, 64),
				strconv.FormatFloat(pt.Y, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	flights, err := st.LoadFlights(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, flights)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	flights, err := st.LoadFlights(runID)
	if err != nil {
		return err
	}
	if len(flights) == 0 {
		return fmt.Errorf("no data to render")
	}

	results := make([]*phys.Result, len(flights))
	for i, f := range flights {
		results[i] = &phys.Result{Dt: f.Dt, Path: f.Path}
	}

	svg := export.TrajectoriesToSVG(results, svgWidth, svgHeight)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
