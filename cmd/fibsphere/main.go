package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/fibsphere/internal/config"
	"github.com/san-kum/fibsphere/internal/export"
	"github.com/san-kum/fibsphere/internal/report"
	"github.com/san-kum/fibsphere/internal/sphere"
	"github.com/san-kum/fibsphere/internal/tui"
	"github.com/san-kum/fibsphere/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	// point set
	points    int
	randomize bool
	seed      int64
	radius    float64
	// view
	width  int
	height int
	rotX   float64
	rotY   float64
	zoom   float64
	theme  string
	plain  bool
	// export and plot
	format     string
	scale      float64
	plotWidth  int
	plotHeight int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "fibsphere"})

// main registers the fibsphere commands and runs the interactive viewer when
// no subcommand is given. It exits with status 1 if a command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fibsphere",
		Short: "fibonacci sphere point distribution explorer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger.SetLevel(lvl)
			return nil
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.IntVarP(&points, "points", "n", config.DefaultPoints, "number of points (clamped to 3..100)")
	pf.BoolVar(&randomize, "randomize", false, "shift the spiral by a random phase")
	pf.Int64Var(&seed, "seed", 0, "random seed for --randomize (0 = time based)")
	pf.Float64Var(&radius, "radius", config.DefaultRadius, "sphere radius used for arc lengths")
	pf.IntVar(&width, "width", config.DefaultWidth, "render width in cells")
	pf.IntVar(&height, "height", config.DefaultHeight, "render height in cells")
	pf.Float64Var(&rotX, "rot-x", config.DefaultRotX, "camera rotation about x (rad)")
	pf.Float64Var(&rotY, "rot-y", config.DefaultRotY, "camera rotation about y (rad)")
	pf.Float64Var(&zoom, "zoom", config.DefaultZoom, "camera zoom")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "print the point and distance report",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "draw the sphere, box and points once",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().BoolVar(&plain, "plain", false, "disable colors")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot pair and nearest neighbour distances",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotWidth, "plot-width", 70, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "plot height")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "per-point coordinates, neighbours and uniformity summary",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the point set to stdout as json, csv or svg",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "output format ("+strings.Join(export.Formats, ", ")+")")
	exportCmd.Flags().Float64Var(&scale, "scale", 4, "svg pixels per braille dot")

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or show one as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive viewer (default)",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	rootCmd.AddCommand(reportCmd, renderCmd, plotCmd, statsCmd, exportCmd, presetsCmd, themesCmd, tuiCmd)
	return rootCmd
}

// resolveConfig merges defaults, preset, config file and explicitly set
// flags, in that order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.MustPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
		logger.Debug("applied preset", "name", preset)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("randomize") {
		cfg.Randomize = randomize
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("width") {
		cfg.View.Width = width
	}
	if flags.Changed("height") {
		cfg.View.Height = height
	}
	if flags.Changed("rot-x") {
		cfg.View.RotX = rotX
	}
	if flags.Changed("rot-y") {
		cfg.View.RotY = rotY
	}
	if flags.Changed("zoom") {
		cfg.View.Zoom = zoom
	}
	if flags.Changed("theme") {
		cfg.View.Theme = theme
	}

	requested := cfg.Points
	cfg.Normalize()
	if cfg.Points != requested {
		logger.Warn("point count clamped", "requested", requested, "used", cfg.Points)
	}
	return cfg, nil
}

func generate(cfg *config.Config) (sphere.PointSet, error) {
	start := time.Now()
	gen := sphere.NewGenerator(cfg.Randomize, cfg.Seed)
	ps, err := gen.Generate(cfg.Points)
	if err != nil {
		return nil, err
	}
	logger.Debug("generated point set",
		"points", len(ps),
		"randomize", cfg.Randomize,
		"seed", gen.Seed,
		"elapsed", time.Since(start),
	)
	return ps, nil
}

func newCamera(cfg *config.Config) *viz.Camera {
	cam := viz.NewCamera()
	cam.RotX, cam.RotY, cam.Zoom = cfg.View.RotX, cfg.View.RotY, cfg.View.Zoom
	return cam
}

func load(cmd *cobra.Command) (*config.Config, sphere.PointSet, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	ps, err := generate(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, ps, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger.Info("starting viewer", "points", cfg.Points, "theme", cfg.View.Theme)
	return tui.Run(cfg)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, ps, err := load(cmd)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), ps, cfg.Radius)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, ps, err := load(cmd)
	if err != nil {
		return err
	}

	c := viz.RenderPoints(ps, newCamera(cfg), cfg.View.Width, cfg.View.Height)
	out := c.Styled(viz.GetTheme(cfg.View.Theme))
	if plain {
		out = c.String()
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, ps, err := load(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "points: %d\n\n", len(ps))
	fmt.Fprintln(w, report.PlotPairDistances(ps, plotWidth, plotHeight))
	fmt.Fprintln(w)
	fmt.Fprintln(w, report.PlotNearest(ps, plotWidth, plotHeight))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, ps, err := load(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINT\tX\tY\tZ\tLAT\tLNG\tNEAREST\tDIST")

	nn := sphere.NearestNeighbors(ps)
	for i, p := range ps {
		ll := sphere.LatLng(p)
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.2f°\t%.2f°\t%d\t%.4f\n",
			i+1, p.X, p.Y, p.Z,
			ll.Lat.Degrees(), ll.Lng.Degrees(),
			nn[i].Nearest+1, nn[i].Chord,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := sphere.Summarize(ps)
	fmt.Fprintf(out, "\npairs: %d\n", s.Pairs)
	fmt.Fprintf(out, "chord distance:    min %.4f  max %.4f  mean %.4f\n", s.MinChord, s.MaxChord, s.MeanChord)
	fmt.Fprintf(out, "nearest neighbour: min %.4f  max %.4f  mean %.4f\n", s.MinNearest, s.MaxNearest, s.MeanNearest)
	fmt.Fprintf(out, "spread (max/min nearest): %.3f\n", s.Spread())
	if cfg.Radius != 1 {
		fmt.Fprintf(out, "mean nearest arc at radius %.2f: %.4f\n", cfg.Radius, meanNearestArc(ps, nn, cfg.Radius))
	}
	return nil
}

func meanNearestArc(ps sphere.PointSet, nn []sphere.Neighbor, r float64) float64 {
	if len(nn) == 0 {
		return 0
	}
	sum := 0.0
	for _, n := range nn {
		if n.Nearest < 0 {
			continue
		}
		sum += sphere.Radians(ps[n.Index], ps[n.Nearest], r)
	}
	return sum / float64(len(nn))
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, ps, err := load(cmd)
	if err != nil {
		return err
	}

	opts := export.Options{
		Radius: cfg.Radius,
		Camera: newCamera(cfg),
		Width:  cfg.View.Width,
		Height: cfg.View.Height,
		Scale:  scale,
		Theme:  viz.GetTheme(cfg.View.Theme),
	}
	return export.Write(cmd.OutOrStdout(), format, ps, opts)
}

func runPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 1 {
		cfg, err := config.MustPreset(args[0])
		if err != nil {
			return err
		}
		return config.Encode(out, cfg)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPOINTS\tRANDOM\tRADIUS\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\t%s\n", name, p.Points, p.Randomize, p.Radius, p.View.Theme)
	}
	return w.Flush()
}
