package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"wormsim/internal/anec"
	"wormsim/internal/config"
	"wormsim/internal/geometry"
	"wormsim/internal/metric"
	"wormsim/internal/numeric"
	"wormsim/internal/optim"
	"wormsim/internal/storage"
	"wormsim/internal/stress"
	"wormsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	l0         float64
	shape      string
	redshift   string
	shapeN     float64
	lambdaS    float64
	sigma      float64
	phi0       float64
	amplitude  float64
	width      float64
	shellA     float64
	shellM     float64
	geodesics  int
	rangeF     float64
	rMaxFactor float64
	nPoints    int
	topK       int
	workers    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wormsim",
		Short: "traversable wormhole geometry and ANEC analysis lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wormsim", "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "analyze a single Morris-Thorne configuration",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	addModelFlags(analyzeCmd)
	addANECFlags(analyzeCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the canonical shape-function ANEC sweep",
		RunE:  runSweep,
	}
	addANECFlags(sweepCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare Morris-Thorne and thin-shell wormhole models",
		RunE:  runCompare,
	}
	addANECFlags(compareCmd)

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "grid-search shape configurations for minimal ANEC violation",
		RunE:  runOptimize,
	}
	optimizeCmd.Flags().Float64Var(&l0, "l0", 1.0, "throat radius")
	optimizeCmd.Flags().IntVar(&topK, "top", 10, "number of top candidates to report")
	optimizeCmd.Flags().IntVar(&workers, "workers", 4, "parallel evaluation workers")
	addANECFlags(optimizeCmd)

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "summarize a thin-shell wormhole",
		RunE:  runShell,
	}
	shellCmd.Flags().Float64Var(&shellA, "a", 2.0, "shell radius")
	shellCmd.Flags().Float64Var(&shellM, "m", 0.4, "mass parameter")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored radial profile",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive configuration explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(viz.NewModel(l0))
			_, err := p.Run()
			return err
		},
	}
	liveCmd.Flags().Float64Var(&l0, "l0", 1.0, "throat radius")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored reports",
		RunE:  listRuns,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a report to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			report, err := st.Load(args[0])
			if err != nil {
				return err
			}
			return storage.ExportJSONStdout(report)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a radial profile to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(analyzeCmd, sweepCmd, compareCmd, optimizeCmd, shellCmd,
		plotCmd, liveCmd, presetsCmd, listCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&l0, "l0", 1.0, "throat radius")
	cmd.Flags().StringVar(&shape, "shape", "power_law", "shape family")
	cmd.Flags().StringVar(&redshift, "redshift", "zero", "redshift family")
	cmd.Flags().Float64Var(&shapeN, "n", 0.5, "power-law exponent")
	cmd.Flags().Float64Var(&lambdaS, "lambda", 1.0, "exponential decay scale")
	cmd.Flags().Float64Var(&sigma, "sigma", 0.5, "tanh transition width")
	cmd.Flags().Float64Var(&phi0, "phi0", 0.0, "constant redshift value")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 0.1, "gaussian hump amplitude")
	cmd.Flags().Float64Var(&width, "width", 1.0, "gaussian hump width")
}

func addANECFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&geodesics, "geodesics", config.DefaultNGeodesics, "geodesics in the approach sweep")
	cmd.Flags().Float64Var(&rangeF, "range-factor", config.DefaultLRangeFactor, "sweep start distance in throat radii")
	cmd.Flags().Float64Var(&rMaxFactor, "rmax-factor", config.DefaultRMaxFactor, "crossing integration extent in throat radii")
	cmd.Flags().IntVar(&nPoints, "points", config.DefaultCrossingPoints, "crossing integration points")
}

func flagConfig(cmd *cobra.Command) (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset("morris_thorne", preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("morris_thorne"))
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}

	cfg := config.DefaultConfig()
	cfg.L0 = l0
	cfg.Shape = shape
	cfg.Redshift = redshift
	cfg.ShapeParams = map[string]float64{"n": shapeN, "lambda_scale": lambdaS, "sigma": sigma}
	cfg.RedshiftParams = map[string]float64{"Phi0": phi0, "amplitude": amplitude, "width": width}
	cfg.ANEC.NGeodesics = geodesics
	cfg.ANEC.LRangeFactor = rangeF
	cfg.ANEC.RMaxFactor = rMaxFactor
	cfg.ANEC.CrossingPoints = nPoints
	return cfg, nil
}

func buildWormhole(cfg *config.Config) (*metric.MorrisThorne, error) {
	return metric.New(cfg.L0, cfg.Shape, cfg.ShapeParams, cfg.Redshift, cfg.RedshiftParams)
}

// analyzeMorrisThorne runs the full diagnostic pipeline for one configuration
// and prints a human-readable summary.
func analyzeMorrisThorne(cfg *config.Config, name string) (storage.ConfigRecord, []storage.ProfileSample, error) {
	wh, err := buildWormhole(cfg)
	if err != nil {
		return storage.ConfigRecord{}, nil, err
	}

	fmt.Printf("\n%s\n", strings.Repeat("─", 70))
	fmt.Printf("configuration: %s\n", name)
	fmt.Printf("%s\n", strings.Repeat("─", 70))

	traversable, msg := wh.IsTraversable(nil)
	fmt.Printf("traversable: %v\n", traversable)
	fmt.Printf("message: %s\n", msg)

	record := storage.ConfigRecord{
		Model:          "Morris-Thorne",
		Shape:          cfg.Shape,
		ShapeParams:    cfg.ShapeParams,
		Redshift:       cfg.Redshift,
		RedshiftParams: cfg.RedshiftParams,
		ThroatRadius:   cfg.L0,
		Traversable:    traversable,
	}

	if !traversable {
		fmt.Println("non-traversable wormhole, skipping ANEC computation")
		return record, nil, nil
	}

	geom := geometry.NewThroatGeometry(wh)
	props := geom.ThroatProperties()
	fmt.Println("\nthroat properties:")
	fmt.Printf("  l0 = %.3f m\n", props.L0)
	fmt.Printf("  circumference = %.3f m\n", props.Circumference)
	fmt.Printf("  b'(l0) = %.6f\n", props.BPrime)
	fmt.Printf("  exotic matter required: %v\n", props.ExoticRequired)

	solver := stress.NewSolver(wh)
	throat := solver.ThroatStressEnergy()
	fmt.Println("\nthroat stress-energy:")
	fmt.Printf("  rho(l0) = %.3e J/m³\n", throat.Rho)
	fmt.Printf("  p_r(l0) = %.3e Pa\n", throat.Pr)
	fmt.Printf("  p_t(l0) = %.3e Pa\n", throat.Pt)

	lTest := numeric.Linspace(cfg.L0, 5*cfg.L0, 100)
	violations := solver.EnergyConditions(lTest)
	fmt.Println("\nenergy condition violations:")
	fmt.Printf("  NEC violated: %.1f%% of points\n", 100*stress.ViolationFraction(violations.NEC))
	fmt.Printf("  WEC violated: %.1f%% of points\n", 100*stress.ViolationFraction(violations.WEC))

	integrator := anec.NewIntegrator(wh)
	results := integrator.ThroatSweep(cfg.ANEC.LRangeFactor, cfg.ANEC.NGeodesics)
	summary := anec.Summarize(results)
	fmt.Println("\nANEC approach sweep:")
	fmt.Printf("  geodesics: %d, violations: %d (%.1f%%)\n",
		summary.NGeodesics, summary.NViolations, 100*summary.ViolationFraction)
	fmt.Printf("  median: %.3e J  min: %.3e J  max: %.3e J\n",
		summary.MedianANEC, summary.MinANEC, summary.MaxANEC)

	crossing := integrator.ComputeCrossing(cfg.ANEC.RMaxFactor, cfg.ANEC.CrossingPoints)
	fmt.Println("\nANEC throat crossing:")
	fmt.Printf("  value: %.3e J  violated: %v\n", crossing.Value, crossing.Violated)
	fmt.Printf("  L = %.3f m, %d points, %.1f%% negative samples\n",
		crossing.L, crossing.NPoints, 100*crossing.NegativeFraction)

	record.ANECValue = crossing.Value
	record.ANECViolated = crossing.Violated
	record.RhoThroat = throat.Rho
	record.ExoticMatter = throat.ExoticMatter
	record.Extra = map[string]any{
		"anec_sweep":          summary,
		"throat_properties":   props,
		"NEC_violation_fract": stress.ViolationFraction(violations.NEC),
		"WEC_violation_fract": stress.ViolationFraction(violations.WEC),
	}

	profile := make([]storage.ProfileSample, len(lTest))
	for i, l := range lTest {
		t := solver.StressEnergy(l)
		profile[i] = storage.ProfileSample{
			L: l, B: wh.B(l), Phi: wh.Phi(l),
			Rho: t.Rho, Pr: t.Pr, Pt: t.Pt,
		}
	}
	return record, profile, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := flagConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	name := fmt.Sprintf("%s/%s", cfg.Shape, cfg.Redshift)
	record, profile, err := analyzeMorrisThorne(cfg, name)
	if err != nil {
		return err
	}

	report := &storage.Report{Models: map[string][]storage.ConfigRecord{
		"morris_thorne": {record},
	}}
	runID, err := st.Save("analyze", report, profile)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	names := []string{"power_law_n0.5", "power_law_n0.8", "exponential", "tanh"}
	records := make([]storage.ConfigRecord, 0, len(names))
	var lastProfile []storage.ProfileSample

	fmt.Println("wormhole ANEC sweep")

	for _, name := range names {
		cfg := config.GetPreset("morris_thorne", name)
		cfg.ANEC.NGeodesics = geodesics
		cfg.ANEC.LRangeFactor = rangeF
		cfg.ANEC.RMaxFactor = rMaxFactor
		cfg.ANEC.CrossingPoints = nPoints

		record, profile, err := analyzeMorrisThorne(cfg, name)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}
		records = append(records, record)
		if profile != nil {
			lastProfile = profile
		}
	}

	report := &storage.Report{Models: map[string][]storage.ConfigRecord{
		"morris_thorne": records,
	}}
	runID, err := st.Save("sweep", report, lastProfile)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println("comprehensive wormhole comparison")
	fmt.Println("\n1. Morris-Thorne wormholes")

	mtConfigs := []struct {
		shape  string
		params map[string]float64
	}{
		{"tanh", map[string]float64{"sigma": 0.1}},
		{"tanh", map[string]float64{"sigma": 0.15}},
		{"tanh", map[string]float64{"sigma": 0.2}},
		{"exponential", map[string]float64{"lambda_scale": 0.5}},
		{"exponential", map[string]float64{"lambda_scale": 1.0}},
		{"power_law", map[string]float64{"n": 0.5}},
		{"power_law", map[string]float64{"n": 0.8}},
	}

	mtRecords := make([]storage.ConfigRecord, 0, len(mtConfigs))
	for _, c := range mtConfigs {
		cfg := config.DefaultConfig()
		cfg.Shape = c.shape
		cfg.ShapeParams = c.params
		cfg.ANEC.RMaxFactor = rMaxFactor
		cfg.ANEC.CrossingPoints = nPoints

		record, _, err := analyzeMorrisThorne(cfg, fmt.Sprintf("%s%v", c.shape, c.params))
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}
		mtRecords = append(mtRecords, record)
	}

	fmt.Println("\n2. thin-shell wormholes")
	shellConfigs := []struct{ a, m float64 }{
		{2.0, 0.4}, {3.0, 0.5}, {5.0, 1.0},
	}
	shellRecords := make([]storage.ConfigRecord, 0, len(shellConfigs))
	for _, c := range shellConfigs {
		fmt.Printf("  analyzing thin-shell a=%.2f, M=%.2f...\n", c.a, c.m)
		sh, err := metric.NewThinShell(c.a, c.m)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}
		sum := sh.Summary()
		shellRecords = append(shellRecords, storage.ConfigRecord{
			Model:        "Thin-Shell",
			ThroatRadius: sum.ShellRadius,
			ANECValue:    sum.ANECShell,
			ANECViolated: sum.ANECViolated,
			RhoThroat:    sum.SurfaceEnergyDensity,
			ExoticMatter: sum.ExoticMatter,
			Traversable:  sum.Traversable,
			Extra: map[string]any{
				"mass_parameter_kg":       sum.MassParameter,
				"schwarzschild_radius_m":  sum.SchwarzschildRadius,
				"surface_tension_Pa":      sum.SurfaceTension,
				"NEC_violated":            sum.NECViolated,
			},
		})
	}

	report := &storage.Report{Models: map[string][]storage.ConfigRecord{
		"morris_thorne": mtRecords,
		"thin_shell":    shellRecords,
	}}
	runID, err := st.Save("compare", report, nil)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println("wormhole configuration optimization")
	fmt.Printf("throat radius: %g m\n", l0)
	fmt.Println("searching power-law, exponential and tanh shape families...")

	opt := optim.NewOptimizer(l0)
	opt.RMaxFactor = rMaxFactor
	opt.NPoints = nPoints
	opt.Workers = workers
	opt.Progress = func(done, total int) {
		if done%10 == 0 || done == total {
			fmt.Printf("  evaluated %d/%d\n", done, total)
		}
	}

	best := opt.FindBest(topK)

	fmt.Printf("\ntop %d configurations:\n", len(best))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSHAPE\tPARAMS\tANEC\tVIOLATED\tRHO_THROAT\tSCORE")
	for i, r := range best {
		fmt.Fprintf(w, "%d\t%s\t%v\t%.3e\t%v\t%.3e\t%.3e\n",
			i+1, r.Shape, r.ShapeParams, r.ANECCrossing, r.ANECViolated, r.RhoThroat, r.Score)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	records := make([]storage.ConfigRecord, len(best))
	for i, r := range best {
		records[i] = storage.ConfigRecord{
			Model:          "Morris-Thorne",
			Shape:          r.Shape,
			ShapeParams:    r.ShapeParams,
			Redshift:       r.Redshift,
			RedshiftParams: r.RedshiftParams,
			ThroatRadius:   l0,
			ANECValue:      r.ANECCrossing,
			ANECViolated:   r.ANECViolated,
			RhoThroat:      r.RhoThroat,
			ExoticMatter:   r.RhoThroat < 0,
			Traversable:    r.Traversable,
			Extra:          map[string]any{"score": r.Score, "rank": i + 1},
		}
	}
	report := &storage.Report{Models: map[string][]storage.ConfigRecord{
		"morris_thorne": records,
	}}
	runID, err := st.Save("optimize", report, nil)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)

	if len(best) > 0 && !best[0].ANECViolated && !best[0].Failed {
		fmt.Println("\nfound ANEC-satisfying configuration")
	} else {
		fmt.Println("\nall configurations violate ANEC (ranked by minimum violation)")
	}
	return nil
}

func runShell(cmd *cobra.Command, args []string) error {
	sh, err := metric.NewThinShell(shellA, shellM)
	if err != nil {
		return err
	}
	sum := sh.Summary()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "shell radius\t%.3f m\n", sum.ShellRadius)
	fmt.Fprintf(w, "mass parameter\t%.3f kg\n", sum.MassParameter)
	fmt.Fprintf(w, "schwarzschild radius\t%.3e m\n", sum.SchwarzschildRadius)
	fmt.Fprintf(w, "surface energy density\t%.3e J/m²\n", sum.SurfaceEnergyDensity)
	fmt.Fprintf(w, "surface tension\t%.3e Pa\n", sum.SurfaceTension)
	fmt.Fprintf(w, "ANEC on shell\t%.3e J\n", sum.ANECShell)
	fmt.Fprintf(w, "ANEC violated\t%v\n", sum.ANECViolated)
	fmt.Fprintf(w, "NEC violated\t%v\n", sum.NECViolated)
	fmt.Fprintf(w, "exotic matter\t%v\n", sum.ExoticMatter)
	fmt.Fprintf(w, "traversable\t%v\n", sum.Traversable)
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	profile, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}
	if len(profile) == 0 {
		return fmt.Errorf("no profile data for run %s", args[0])
	}

	series := []struct {
		name   string
		values func(storage.ProfileSample) float64
	}{
		{"shape function b(l)", func(p storage.ProfileSample) float64 { return p.B }},
		{"energy density rho(l)", func(p storage.ProfileSample) float64 { return p.Rho }},
		{"radial pressure p_r(l)", func(p storage.ProfileSample) float64 { return p.Pr }},
	}

	for _, s := range series {
		data := make([]float64, len(profile))
		for i, p := range profile {
			data[i] = s.values(p)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	reports, err := st.List()
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tANALYSIS\tCREATED\tMODELS\tCONFIGS")
	for _, r := range reports {
		nConfigs := 0
		for _, recs := range r.Models {
			nConfigs += len(recs)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.Analysis, r.Created.Format("2006-01-02 15:04:05"), len(r.Models), nConfigs)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	profile, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}

	fmt.Println("l,b,phi,rho,p_r,p_t")
	for _, p := range profile {
		fields := []float64{p.L, p.B, p.Phi, p.Rho, p.Pr, p.Pt}
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = strconv.FormatFloat(f, 'g', 12, 64)
		}
		fmt.Println(strings.Join(parts, ","))
	}
	return nil
}
