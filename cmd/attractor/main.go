package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/attractor/internal/analysis"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/ensemble"
	"github.com/san-kum/attractor/internal/export"
	"github.com/san-kum/attractor/internal/integrators"
	"github.com/san-kum/attractor/internal/metrics"
	"github.com/san-kum/attractor/internal/physics"
	"github.com/san-kum/attractor/internal/sim"
	"github.com/san-kum/attractor/internal/store"
	"github.com/san-kum/attractor/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	system     string
	sigma      float64
	rho        float64
	beta       float64
	dt         float64
	duration   float64
	tolerance  float64
	integrator string
	count      int
	epsilon    float64
	baseX      float64
	baseY      float64
	baseZ      float64
	theme      string
	frameRate  int
	output     string
	member     int
	threshold  float64
	gifFrames  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "attractor",
		Short: "strange attractor simulation and visualization lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".attractor", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate an ensemble and save the result",
		RunE:  runEnsemble,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "simulate and play back in the terminal",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "classic", "color theme")
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot trajectory coordinates against time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&member, "member", 0, "ensemble member index")

	divergenceCmd := &cobra.Command{
		Use:   "divergence [run_id]",
		Short: "plot pairwise separation growth across the ensemble",
		Args:  cobra.ExactArgs(1),
		RunE:  plotDivergence,
	}
	divergenceCmd.Flags().Float64Var(&threshold, "threshold", 1.0, "separation threshold")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "estimate the largest Lyapunov exponent",
		RunE:  runLyapunov,
	}
	addSimFlags(lyapunovCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "attractor.svg", "output file")
	exportSVGCmd.Flags().StringVar(&theme, "theme", "classic", "color theme")

	exportGIFCmd := &cobra.Command{
		Use:   "export-gif [run_id]",
		Short: "render a saved run to an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  exportGIF,
	}
	exportGIFCmd.Flags().StringVarP(&output, "output", "o", "attractor.gif", "output file")
	exportGIFCmd.Flags().StringVar(&theme, "theme", "classic", "color theme")
	exportGIFCmd.Flags().IntVar(&gifFrames, "frames", export.DefaultGIFOptions().Frames, "frame count")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export one trajectory to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().IntVar(&member, "member", 0, "ensemble member index")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, p := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, divergenceCmd, lyapunovCmd,
		exportSVGCmd, exportGIFCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named parameter preset")
	cmd.Flags().StringVar(&system, "system", "lorenz", "dynamical system (lorenz, rossler)")
	cmd.Flags().Float64Var(&sigma, "sigma", physics.DefaultSigma, "sigma (rossler: a)")
	cmd.Flags().Float64Var(&rho, "rho", physics.DefaultRho, "rho (rossler: b)")
	cmd.Flags().Float64Var(&beta, "beta", physics.DefaultBeta, "beta (rossler: c)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "output sample interval")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration")
	cmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "adaptive error tolerance")
	cmd.Flags().StringVar(&integrator, "integrator", "rk45", "integrator (rk45, rk4, euler)")
	cmd.Flags().IntVar(&count, "count", config.DefaultCount, "ensemble size")
	cmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "z perturbation per member")
	cmd.Flags().Float64Var(&baseX, "x", 10.0, "base initial x")
	cmd.Flags().Float64Var(&baseY, "y", 10.0, "base initial y")
	cmd.Flags().Float64Var(&baseZ, "z", 10.0, "base initial z")
}

// resolveConfig merges preset, config file, and explicitly set flags, in
// that order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		p.Apply(cfg)
	}

	if cmd.Flags().Changed("system") {
		cfg.System = system
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Sigma = sigma
	}
	if cmd.Flags().Changed("rho") {
		cfg.Rho = rho
	}
	if cmd.Flags().Changed("beta") {
		cfg.Beta = beta
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("count") {
		cfg.Ensemble.Count = count
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Ensemble.Epsilon = epsilon
	}
	if cmd.Flags().Changed("x") {
		cfg.Ensemble.X = baseX
	}
	if cmd.Flags().Changed("y") {
		cfg.Ensemble.Y = baseY
	}
	if cmd.Flags().Changed("z") {
		cfg.Ensemble.Z = baseZ
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSystem(cfg *config.Config) (dynamo.System, error) {
	switch cfg.System {
	case "lorenz":
		return physics.NewLorenz(cfg.Sigma, cfg.Rho, cfg.Beta)
	case "rossler":
		return physics.NewRossler(cfg.Sigma, cfg.Rho, cfg.Beta)
	default:
		return nil, fmt.Errorf("unknown system: %s (available: lorenz, rossler)", cfg.System)
	}
}

func integratorFactory(name string) (func() dynamo.Integrator, error) {
	switch name {
	case "rk45":
		return func() dynamo.Integrator { return integrators.NewRK45() }, nil
	case "rk4":
		return func() dynamo.Integrator { return integrators.NewRK4() }, nil
	case "euler":
		return func() dynamo.Integrator { return integrators.NewEuler() }, nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s (available: rk45, rk4, euler)", name)
	}
}

func simConfig(cfg *config.Config) sim.Config {
	sc := sim.DefaultConfig()
	sc.Dt = cfg.Dt
	sc.Duration = cfg.Duration
	sc.Tolerance = cfg.Tolerance
	return sc
}

func ensembleSpec(cfg *config.Config) ensemble.Spec {
	spec := ensemble.DefaultSpec()
	spec.Base = dynamo.State{cfg.Ensemble.X, cfg.Ensemble.Y, cfg.Ensemble.Z}
	spec.Count = cfg.Ensemble.Count
	spec.Epsilon = cfg.Ensemble.Epsilon
	return spec
}

func simulate(cmd *cobra.Command) (*config.Config, []*sim.Trajectory, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	dyn, err := buildSystem(cfg)
	if err != nil {
		return nil, nil, err
	}
	newInteg, err := integratorFactory(cfg.Integrator)
	if err != nil {
		return nil, nil, err
	}
	trajs, err := ensemble.Run(context.Background(), dyn, newInteg, ensembleSpec(cfg), simConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	return cfg, trajs, nil
}

func ensembleMetrics(trajs []*sim.Trajectory) map[string]float64 {
	bounds := metrics.NewBounds()
	excursion := metrics.NewExcursion()
	for _, tr := range trajs {
		for i, x := range tr.States {
			bounds.Observe(x, tr.Times[i])
			excursion.Observe(x, tr.Times[i])
		}
	}
	return map[string]float64{
		bounds.Name():    bounds.Value(),
		excursion.Name(): excursion.Value(),
	}
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, trajs, err := simulate(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	meta := store.RunMetadata{
		System:     cfg.System,
		Timestamp:  start,
		Params:     cfg.Params(),
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Tolerance:  cfg.Tolerance,
		Integrator: cfg.Integrator,
		Count:      cfg.Ensemble.Count,
		Epsilon:    cfg.Ensemble.Epsilon,
		Metrics:    ensembleMetrics(trajs),
	}
	runID, err := st.Save(meta, trajs)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("members: %d\n", len(trajs))
	fmt.Printf("samples: %d\n", trajs[0].Len())
	fmt.Printf("internal steps: %d\n", trajs[0].Steps)
	fmt.Println("\nmetrics:")
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, trajs, err := simulate(cmd)
	if err != nil {
		return err
	}
	title := "Lorenz Attractor"
	if cfg.System == "rossler" {
		title = "Rossler Attractor"
	}
	return viz.Run(trajs, cfg.Theme, cfg.FPS, title)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tDURATION\tDT\tINTEG\tMEMBERS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%d\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Count,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trajs, err := st.LoadTrajectories(runID)
	if err != nil {
		return err
	}
	if member < 0 || member >= len(trajs) {
		return fmt.Errorf("member %d out of range (run has %d)", member, len(trajs))
	}
	tr := trajs[member]
	if tr.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s\n", meta.System)
	fmt.Printf("member: %d of %d\n", member, len(trajs))
	fmt.Printf("samples: %d\n\n", tr.Len())

	labels := []string{"x", "y", "z"}
	for coord := 0; coord < len(tr.States[0]); coord++ {
		data := make([]float64, tr.Len())
		for i, x := range tr.States {
			data[i] = x[coord]
		}
		caption := fmt.Sprintf("x%d vs time", coord)
		if coord < len(labels) {
			caption = fmt.Sprintf("%s vs time", labels[coord])
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func plotDivergence(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trajs, err := st.LoadTrajectories(runID)
	if err != nil {
		return err
	}
	if len(trajs) < 2 {
		return fmt.Errorf("divergence needs at least 2 ensemble members, run has %d", len(trajs))
	}

	sep := analysis.Separation(trajs[0], trajs[1])
	logSep := make([]float64, len(sep))
	for i, s := range sep {
		if s <= 0 {
			s = 1e-16
		}
		logSep[i] = math.Log10(s)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s (epsilon=%g)\n\n", meta.System, meta.Epsilon)

	graph := asciigraph.Plot(logSep,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("log10 separation, members 0 and 1"),
	)
	fmt.Println(graph)
	fmt.Println()

	if t, ok := analysis.TimeToThreshold(sep, trajs[0].Times, threshold); ok {
		fmt.Printf("separation crossed %g at t=%.3f\n", threshold, t)
	} else {
		fmt.Printf("separation never crossed %g\n", threshold)
	}

	maxSep := analysis.MaxSeparation(trajs)
	final := maxSep[len(maxSep)-1]
	fmt.Printf("final widest pairwise separation: %.6f\n", final)
	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	dyn, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	x0 := dynamo.State{cfg.Ensemble.X, cfg.Ensemble.Y, cfg.Ensemble.Z}
	lambda := analysis.LyapunovExponent(dyn, integrators.NewRK4(), x0, cfg.Dt, cfg.Duration, 1e-8)

	fmt.Printf("system: %s\n", cfg.System)
	fmt.Printf("largest Lyapunov exponent: %.4f\n", lambda)
	if lambda > 0 {
		fmt.Printf("prediction horizon (1/lambda): %.2f time units\n", 1.0/lambda)
	} else {
		fmt.Println("no exponential divergence detected")
	}
	return nil
}

func loadScene(runID string) ([]viz.Curve, *store.RunMetadata, error) {
	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	trajs, err := st.LoadTrajectories(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(trajs) == 0 || trajs[0].Len() == 0 {
		return nil, nil, fmt.Errorf("no data to render")
	}
	return viz.FitCurves(trajs), meta, nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	curves, _, err := loadScene(args[0])
	if err != nil {
		return err
	}
	cam := viz.NewCamera()
	if err := export.WriteSVG(output, curves, cam, viz.GetTheme(theme), 800, 600); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	curves, _, err := loadScene(args[0])
	if err != nil {
		return err
	}
	opt := export.DefaultGIFOptions()
	opt.Frames = gifFrames
	if err := export.WriteGIF(output, curves, viz.GetTheme(theme), opt); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	trajs, err := st.LoadTrajectories(runID)
	if err != nil {
		return err
	}
	if member < 0 || member >= len(trajs) {
		return fmt.Errorf("member %d out of range (run has %d)", member, len(trajs))
	}
	tr := trajs[member]

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"t", "x", "y", "z"}); err != nil {
		return err
	}
	for i, x := range tr.States {
		row := make([]string, 0, len(x)+1)
		row = append(row, strconv.FormatFloat(tr.Times[i], 'f', 6, 64))
		for _, v := range x {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trajs, err := st.LoadTrajectories(runID)
	if err != nil {
		return err
	}

	type trajectoryJSON struct {
		Times  []float64      `json:"times"`
		States []dynamo.State `json:"states"`
	}
	out := struct {
		Metadata     *store.RunMetadata `json:"metadata"`
		Trajectories []trajectoryJSON   `json:"trajectories"`
	}{Metadata: meta}
	for _, tr := range trajs {
		out.Trajectories = append(out.Trajectories, trajectoryJSON{Times: tr.Times, States: tr.States})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
