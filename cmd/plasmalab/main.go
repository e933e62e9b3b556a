package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/plasmalab/internal/export"
	"github.com/san-kum/plasmalab/internal/report"
	"github.com/san-kum/plasmalab/internal/scenario"
	"github.com/san-kum/plasmalab/internal/storage"
	"github.com/san-kum/plasmalab/internal/sweep"
	"github.com/san-kum/plasmalab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	temperature float64
	density     float64
	bfield      float64
	species     []string
	method      string
	configFile  string
	noSave      bool
	// Sweep parameters
	sweepAxis    string
	sweepFrom    float64
	sweepTo      float64
	sweepSteps   int
	sweepWorkers int
	// SVG output
	svgOut    string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plasmalab",
		Short: "Coulomb collision estimates for astrophysical plasmas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, []string{"corona"})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".plasmalab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "compute collision parameters for a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&temperature, "temp", scenario.DefaultTemperature, "temperature (K)")
	runCmd.Flags().Float64Var(&density, "density", scenario.DefaultDensity, "electron density (cm^-3)")
	runCmd.Flags().Float64Var(&bfield, "bfield", scenario.DefaultField, "magnetic field (gauss)")
	runCmd.Flags().StringSliceVar(&species, "species", []string{"e-", "p+"}, "test and field species")
	runCmd.Flags().StringVar(&method, "method", "most_probable", "thermal speed method")
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")

	compareCmd := &cobra.Command{
		Use:   "compare [scenario] [scenario] ...",
		Short: "compare scenarios side by side",
		RunE:  compareScenarios,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "sweep one parameter and plot the frequency curves",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	def := sweep.DefaultConfig()
	sweepCmd.Flags().StringVar(&sweepAxis, "axis", string(def.Axis), "parameter to vary (temperature|density|field)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", def.From, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", def.To, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", def.Steps, "number of points")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", def.Workers, "parallel workers")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export sweep series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved sweep as an SVG plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "sweep.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 500, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := scenario.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTEMP (K)\tDENSITY (cm^-3)\tFIELD (G)")
			for _, name := range names {
				sc := scenario.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.3g\t%.3g\t%.3g\n", sc.Name, sc.Temperature, sc.Density, sc.Field)
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "explore a scenario interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	rootCmd.AddCommand(runCmd, compareCmd, sweepCmd, listCmd, plotCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveScenario builds the scenario from the positional preset name,
// an optional config file, and any flags changed on the command line.
// Flags beat the file, the file beats the preset.
func resolveScenario(cmd *cobra.Command, args []string) (*scenario.Scenario, error) {
	sc := scenario.Default()

	if len(args) == 1 {
		sc = scenario.GetPreset(args[0])
		if sc == nil {
			names := scenario.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown scenario: %s (available: %v)", args[0], names)
		}
	}

	if configFile != "" {
		loaded, err := scenario.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		sc = loaded
	}

	if cmd.Flags().Changed("temp") {
		sc.Temperature = temperature
	}
	if cmd.Flags().Changed("density") {
		sc.Density = density
	}
	if cmd.Flags().Changed("bfield") {
		sc.Field = bfield
	}
	if cmd.Flags().Changed("species") {
		sc.Species = species
	}
	if cmd.Flags().Changed("method") {
		sc.Method = method
	}

	return sc, sc.Validate()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(cmd, args)
	if err != nil {
		return err
	}

	rep, err := report.Run(sc)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s (%s on %s, T=%.3g K, n=%.3g cm^-3, B=%.3g G)\n\n",
		sc.Name, rep.Pair.Test.Symbol, rep.Pair.Field.Symbol,
		sc.Temperature, sc.Density, sc.Field)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "thermal speed (%s)\t%s\n", rep.Pair.Test.Symbol, rep.ElectronThermalSpeed)
	fmt.Fprintf(w, "thermal speed (%s)\t%s\n", rep.Pair.Field.Symbol, rep.IonThermalSpeed)
	fmt.Fprintf(w, "Debye length\t%s\n", rep.DebyeLength)
	fmt.Fprintf(w, "impact parameter bmin\t%s\n", rep.BMin)
	fmt.Fprintf(w, "impact parameter bmax\t%s\n", rep.BMax)
	fmt.Fprintf(w, "Coulomb logarithm\t%s\n", rep.CoulombLog)
	fmt.Fprintf(w, "collision frequency\t%s\n", rep.CollisionFreq)
	fmt.Fprintf(w, "Maxwellian-averaged\t%s\n", rep.MaxwellianFreq)
	fmt.Fprintf(w, "mean free path\t%s\n", rep.MeanFreePath)
	fmt.Fprintf(w, "plasma frequency\t%s\n", rep.PlasmaFreq)
	fmt.Fprintf(w, "gyrofrequency\t%s\n", rep.GyroFreq)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\na %s collides roughly every %s\n", rep.Pair.Test.Symbol, describePeriod(rep.CollisionFreq.Val))
	fmt.Printf("as linear frequencies: f_p = %.3g Hz, f_c = %.3g Hz\n",
		rep.PlasmaFreq.Val/(2*math.Pi), rep.GyroFreq.Val/(2*math.Pi))
	fmt.Printf("nu/omega_p = %.3g, nu/omega_c = %.3g\n", rep.PlasmaRatio(), rep.GyroRatio())
	fmt.Printf("regime: %s", rep.Regime())
	if rep.Magnetized() {
		fmt.Printf(", magnetized")
	}
	fmt.Println()

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(rep)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

// describePeriod renders 1/nu in a human scale.
func describePeriod(freq float64) string {
	if freq <= 0 {
		return "never"
	}
	period := 1 / freq
	switch {
	case period < 1:
		return fmt.Sprintf("%.3g ms (%.3g collisions/s)", period*1e3, freq)
	case period < 3600:
		return fmt.Sprintf("%.3g s", period)
	case period < 86400*365:
		return fmt.Sprintf("%.3g hours", period/3600)
	default:
		return fmt.Sprintf("%.3g days", period/86400)
	}
}

func compareScenarios(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = []string{"corona", "solar_wind"}
	}

	reps := make([]*report.Report, 0, len(names))
	for _, name := range names {
		sc := scenario.GetPreset(name)
		if sc == nil {
			return fmt.Errorf("unknown scenario: %s", name)
		}
		rep, err := report.Run(sc)
		if err != nil {
			return err
		}
		reps = append(reps, rep)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "QUANTITY")
	for _, rep := range reps {
		fmt.Fprintf(w, "\t%s", rep.Scenario.Name)
	}
	fmt.Fprintln(w)

	rows := []struct {
		label string
		pick  func(*report.Report) string
	}{
		{"temperature (K)", func(r *report.Report) string { return fmt.Sprintf("%.3g", r.Scenario.Temperature) }},
		{"density (cm^-3)", func(r *report.Report) string { return fmt.Sprintf("%.3g", r.Scenario.Density) }},
		{"field (G)", func(r *report.Report) string { return fmt.Sprintf("%.3g", r.Scenario.Field) }},
		{"thermal speed", func(r *report.Report) string { return r.ElectronThermalSpeed.String() }},
		{"Debye length", func(r *report.Report) string { return r.DebyeLength.String() }},
		{"Coulomb log", func(r *report.Report) string { return fmt.Sprintf("%.3g", r.CoulombLog.Val) }},
		{"collision freq", func(r *report.Report) string { return r.CollisionFreq.String() }},
		{"plasma freq", func(r *report.Report) string { return r.PlasmaFreq.String() }},
		{"gyro freq", func(r *report.Report) string { return r.GyroFreq.String() }},
		{"mean free path", func(r *report.Report) string { return r.MeanFreePath.String() }},
		{"regime", func(r *report.Report) string { return r.Regime() }},
	}
	for _, row := range rows {
		fmt.Fprint(w, row.label)
		for _, rep := range reps {
			fmt.Fprintf(w, "\t%s", row.pick(rep))
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(reps) == 2 && reps[1].CollisionFreq.Val > 0 {
		ratio := reps[0].CollisionFreq.Val / reps[1].CollisionFreq.Val
		fmt.Printf("\n%s is %.3g times more collisional than %s\n",
			reps[0].Scenario.Name, ratio, reps[1].Scenario.Name)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(cmd, args)
	if err != nil {
		return err
	}

	cfg := sweep.Config{
		Axis:    sweep.Axis(sweepAxis),
		From:    sweepFrom,
		To:      sweepTo,
		Steps:   sweepSteps,
		Workers: sweepWorkers,
	}
	res, err := sweep.Run(context.Background(), sc, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("sweep: %s over %s in [%.3g, %.3g], %d points\n\n",
		sc.Name, cfg.Axis, cfg.From, cfg.To, cfg.Steps)

	plotSeries("log10 collision frequency", res.CollisionFreq)
	plotSeries("log10 plasma frequency", res.PlasmaFreq)
	plotSeries("log10 gyrofrequency", res.GyroFreq)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveSweep(sc, res)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func plotSeries(caption string, values []float64) {
	data := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			data = append(data, math.Log10(v))
		}
	}
	if len(data) < 2 {
		return
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tREGIME\tSWEEP")
	for _, run := range runs {
		sweepCol := "-"
		if run.SweepAxis != "" {
			sweepCol = fmt.Sprintf("%s x%d", run.SweepAxis, run.SweepSteps)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Scenario.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Regime,
			sweepCol,
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
	if meta.SweepAxis == "" {
		return fmt.Errorf("run %s has no sweep series to plot", runID)
	}

	_, series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s, axis: %s\n\n", meta.Scenario.Name, meta.SweepAxis)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		plotSeries("log10 "+name, series[name])
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to export")
	}

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"point"}, names...)); err != nil {
		return err
	}
	for i := range points {
		row := []string{strconv.FormatFloat(points[i], 'e', 9, 64)}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(series[name][i], 'e', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportJSON(os.Stdout, args[0])
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if meta.SweepAxis == "" {
		return fmt.Errorf("run %s has no sweep series to render", runID)
	}

	points, series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	curves := []export.Curve{
		{Name: "collision", Values: series["collision_freq"], Color: "#ff4444"},
		{Name: "plasma", Values: series["plasma_freq"], Color: "#00ccff"},
		{Name: "gyro", Values: series["gyro_freq"], Color: "#00ff88"},
	}
	svg := export.CurvesToSVG(points, curves, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("nothing to draw for run %s", runID)
	}

	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sc := scenario.Default()
	if len(args) == 1 {
		sc = scenario.GetPreset(args[0])
		if sc == nil {
			return fmt.Errorf("unknown scenario: %s", args[0])
		}
	}

	p := tea.NewProgram(viz.NewModel(sc))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
