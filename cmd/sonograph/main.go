package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sonograph/internal/analysis"
	"github.com/san-kum/sonograph/internal/audio"
	"github.com/san-kum/sonograph/internal/config"
	"github.com/san-kum/sonograph/internal/export"
	"github.com/san-kum/sonograph/internal/graph"
	"github.com/san-kum/sonograph/internal/gui"
	"github.com/san-kum/sonograph/internal/layout"
	"github.com/san-kum/sonograph/internal/storage"
	"github.com/san-kum/sonograph/internal/tune"
	"github.com/san-kum/sonograph/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	shape       string
	numNodes    int
	extraLinks  int
	seed        int64
	frameRate   int
	withAudio   bool
	volume      float64
	analyze     bool
	noSave      bool
	maxFrames   int
	outPath     string
	plotEnergy  bool
	svgWidth    int
	svgHeight   int
	tuneParams  []string
	tuneWorkers int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sonograph",
		Short: "force-directed 3d graph layout with a terminal view",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sonograph", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "preset configuration")
	rootCmd.PersistentFlags().StringVar(&shape, "shape", "", "graph shape: star, chain, mesh, random")
	rootCmd.PersistentFlags().IntVar(&numNodes, "nodes", 0, "node count")
	rootCmd.PersistentFlags().IntVar(&extraLinks, "extra-links", 0, "extra random links (random shape)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (random shape)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the layout headless until it freezes",
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&analyze, "analyze", false, "spectral analysis of node motion")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
	runCmd.Flags().IntVar(&maxFrames, "max-frames", 10000, "safety cap on frames")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate (overrides config)")
	liveCmd.Flags().BoolVar(&withAudio, "audio", false, "sonify the layout")
	liveCmd.Flags().Float64Var(&volume, "volume", 0, "audio volume (overrides config)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "native window view",
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, _, err := buildSimulation()
			if err != nil {
				return err
			}
			gui.NewApp(sim).Run()
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run to svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "layout.svg", "output path")
	exportCmd.Flags().BoolVar(&plotEnergy, "energy", false, "plot the energy trace instead of the layout")
	exportCmd.Flags().IntVar(&svgWidth, "width", 1024, "image width")
	exportCmd.Flags().IntVar(&svgHeight, "height", 768, "image height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectral analysis of a stored run's energy trace",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time layout frames at a few graph sizes",
		RunE:  benchLayout,
	}

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search layout parameters for fastest convergence",
		RunE:  tuneLayout,
	}
	tuneCmd.Flags().StringArrayVar(&tuneParams, "param", nil,
		"swept parameter, e.g. --param alpha_decay=0.05,0.1,0.15 (repeatable)")
	tuneCmd.Flags().IntVar(&tuneWorkers, "workers", 4, "parallel trials")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, exportCmd, analyzeCmd, presetsCmd, benchCmd, tuneCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers preset, config file, and flags, in that order.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if shape != "" {
		cfg.Graph.Shape = shape
	}
	if numNodes > 0 {
		cfg.Graph.Nodes = numNodes
	}
	if extraLinks > 0 {
		cfg.Graph.ExtraLinks = extraLinks
	}
	if seed != 0 {
		cfg.Graph.Seed = seed
	}
	if frameRate > 0 {
		cfg.View.FrameRate = frameRate
	}
	if withAudio {
		cfg.Audio.Enabled = true
	}
	if volume > 0 {
		cfg.Audio.Volume = volume
	}
	return cfg, nil
}

func buildGraph(gc config.GraphConfig) (*graph.Graph, error) {
	switch gc.Shape {
	case "star":
		return graph.Star(gc.Nodes), nil
	case "chain":
		return graph.Chain(gc.Nodes), nil
	case "mesh":
		side := int(math.Sqrt(float64(gc.Nodes)))
		if side < 2 {
			side = 2
		}
		return graph.Mesh(side, side), nil
	case "random":
		return graph.Random(gc.Nodes, gc.ExtraLinks, gc.Seed), nil
	default:
		return nil, fmt.Errorf("unknown shape: %s", gc.Shape)
	}
}

func buildSimulation() (*layout.Simulation, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	g, err := buildGraph(cfg.Graph)
	if err != nil {
		return nil, nil, err
	}
	sim, err := layout.NewSimulation(g, cfg.ToLayout())
	if err != nil {
		return nil, nil, err
	}
	return sim, cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sim, cfg, err := buildSimulation()
	if err != nil {
		return err
	}

	var obs viz.Observer
	if cfg.Audio.Enabled {
		engine := audio.NewEngine(cfg.Audio.Volume)
		if err := engine.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		} else {
			defer engine.Stop()
			obs = engine
		}
	}
	return viz.Run(sim, cfg.View.FrameRate, obs)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	sim, cfg, err := buildSimulation()
	if err != nil {
		return err
	}

	ctrl := layout.NewController(sim)
	rec := analysis.NewRecorder()
	var energy []float64

	start := time.Now()
	frames := 0
	for ctrl.Running() && frames < maxFrames {
		ctrl.Step()
		frames++
		energy = append(energy, layout.KineticEnergy(sim.Graph().Nodes))
		if analyze {
			rec.Record(sim.Graph().Nodes)
		}
	}
	elapsed := time.Since(start)

	g := sim.Graph()
	metrics := map[string]float64{
		"kinetic_energy": layout.KineticEnergy(g.Nodes),
		"max_speed":      layout.MaxSpeed(g.Nodes),
	}

	fmt.Printf("shape=%s nodes=%d links=%d\n", cfg.Graph.Shape, len(g.Nodes), len(g.Links))
	fmt.Printf("frames=%d alpha=%.5f elapsed=%s\n", frames, sim.Alpha(), elapsed.Round(time.Microsecond))
	fmt.Printf("kinetic_energy=%.6f max_speed=%.6f\n", metrics["kinetic_energy"], metrics["max_speed"])
	if !layout.Finite(g.Nodes) {
		return fmt.Errorf("layout diverged: non-finite positions")
	}

	if len(energy) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(energy, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("kinetic energy")))
	}

	if analyze {
		fmt.Println()
		printReports(rec.Report(cfg.Layout.EdgeRefreshInterval*4, 0.05))
	}

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Graph.Shape, cfg.Graph.Seed, frames, sim.Alpha(), g, metrics, energy)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run %s\n", runID)
	}
	return nil
}

func printReports(reports []analysis.NodeReport) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "node\tdominant freq\tpower\tstate")
	for _, r := range reports {
		state := "settled"
		if r.Oscillating {
			state = "oscillating"
		}
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%s\n", r.ID, r.DominantFreq, r.DominantPower, state)
	}
	w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tshape\tnodes\tlinks\tframes\tfinal alpha\twhen")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.5f\t%s\n",
			r.ID, r.Shape, r.Nodes, r.Links, r.Frames, r.FinalAlpha,
			r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	if plotEnergy {
		energy, err := st.LoadEnergy(args[0])
		if err != nil {
			return err
		}
		svg := export.EnergyToSVG(energy, svgWidth, svgHeight)
		if svg == "" {
			return fmt.Errorf("run %s has no energy trace", args[0])
		}
		if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}

	g, err := st.LoadLayout(args[0])
	if err != nil {
		return err
	}
	if err := export.WriteSVG(outPath, g, viz.NewCamera(), svgWidth, svgHeight); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	energy, err := st.LoadEnergy(args[0])
	if err != nil {
		return err
	}
	if len(energy) < 4 {
		return fmt.Errorf("run %s has too short an energy trace", args[0])
	}

	freq, power := analysis.MotionSpectrum(energy).Dominant()
	fmt.Printf("frames=%d\n", len(energy))
	fmt.Printf("dominant frequency=%.4f cycles/frame power=%.4f\n", freq, power)
	if analysis.Oscillating(energy, len(energy)/4, 0.01) {
		fmt.Println("tail still oscillating when the run froze")
	} else {
		fmt.Println("converged cleanly")
	}
	return nil
}

func tuneLayout(cmd *cobra.Command, args []string) error {
	if len(tuneParams) == 0 {
		return fmt.Errorf("no parameters given; try --param alpha_decay=0.05,0.1,0.15")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	params := make([]tune.Param, 0, len(tuneParams))
	for _, spec := range tuneParams {
		name, rest, ok := strings.Cut(spec, "=")
		set := tune.Setters[name]
		if !ok || set == nil {
			return fmt.Errorf("bad parameter %q (known: %v)", spec, setterNames())
		}
		var values []float64
		for _, s := range strings.Split(rest, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return fmt.Errorf("bad value in %q: %w", spec, err)
			}
			values = append(values, v)
		}
		params = append(params, tune.Param{Name: name, Values: values, Set: set})
	}

	search := tune.NewSearch(cfg.ToLayout(), params, func() *graph.Graph {
		g, err := buildGraph(cfg.Graph)
		if err != nil {
			return graph.Star(8)
		}
		return g
	}, tuneWorkers)

	trials, best, err := search.Run(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "params\tframes\tenergy")
	for _, t := range trials {
		if t.Err != nil {
			fmt.Fprintf(w, "%v\t-\t%v\n", t.Params, t.Err)
			continue
		}
		fmt.Fprintf(w, "%v\t%d\t%.6f\n", t.Params, t.Frames, t.Energy)
	}
	w.Flush()
	fmt.Printf("\nbest: %v (%d frames)\n", best.Params, best.Frames)
	return nil
}

func setterNames() []string {
	names := make([]string, 0, len(tune.Setters))
	for name := range tune.Setters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func benchLayout(cmd *cobra.Command, args []string) error {
	sizes := []int{10, 50, 200}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "nodes\tframes\ttotal\tper frame")
	for _, n := range sizes {
		g := graph.Random(n, n/2, 1)
		sim, err := layout.NewSimulation(g, layout.DefaultConfig())
		if err != nil {
			return err
		}
		ctrl := layout.NewController(sim)

		start := time.Now()
		frames := 0
		for ctrl.Running() {
			ctrl.Step()
			frames++
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", n, frames, elapsed.Round(time.Microsecond),
			(elapsed / time.Duration(frames)).Round(time.Nanosecond))
	}
	return w.Flush()
}
