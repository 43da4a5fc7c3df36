package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robolab/ddrive/internal/config"
	"github.com/robolab/ddrive/internal/export"
	"github.com/robolab/ddrive/internal/gui"
	"github.com/robolab/ddrive/internal/kinematics"
	"github.com/robolab/ddrive/internal/viz"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var (
	configFile string
	preset     string

	// robot geometry overrides
	wheelDiameter float64
	axleTrack     float64
	axleOffset    float64
	stepSize      float64

	// start pose overrides
	startX     float64
	startY     float64
	headingDeg float64

	loop    bool
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ddrive",
		Short: "differential drive trajectory visualizer",
		Long: "ddrive integrates a script of wheel movement commands into a robot\n" +
			"trajectory and plays it back interactively (terminal by default).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := load(cmd)
			if err != nil {
				return err
			}
			return viz.Run(path, cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "yaml run config")
	pf.StringVar(&preset, "preset", "", "named demo course (see 'ddrive presets')")
	pf.Float64Var(&wheelDiameter, "diameter", 0, "wheel diameter override")
	pf.Float64Var(&axleTrack, "track", 0, "axle track override")
	pf.Float64Var(&axleOffset, "offset", 0, "axle offset override")
	pf.Float64Var(&stepSize, "step", 0, "sample step size override")
	pf.Float64Var(&startX, "x", 0, "initial x override")
	pf.Float64Var(&startY, "y", 0, "initial y override")
	pf.Float64Var(&headingDeg, "heading", 0, "initial heading override, degrees")
	pf.BoolVar(&loop, "loop", false, "loop playback at the end of the path")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute the path and print a summary",
		RunE:  runSummary,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "play back in a graphical window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := load(cmd)
			if err != nil {
				return err
			}
			gui.Run(path, cfg)
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list demo courses",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [file]",
		Short: "write the full path as an SVG snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := load(cmd)
			if err != nil {
				return err
			}
			if err := export.WriteSVG(args[0], path, cfg); err != nil {
				return err
			}
			log.Info().Str("file", args[0]).Int("frames", path.Len()).Msg("wrote svg")
			return nil
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "write the sample table as CSV to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := load(cmd)
			if err != nil {
				return err
			}
			return export.WriteCSV(os.Stdout, path)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "write the full path as JSON to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := load(cmd)
			if err != nil {
				return err
			}
			return export.WriteJSON(os.Stdout, path)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [file.png]",
		Short: "render the trajectory as a PNG chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := load(cmd)
			if err != nil {
				return err
			}
			if err := export.WritePNG(args[0], path); err != nil {
				return err
			}
			log.Info().Str("file", args[0]).Msg("wrote plot")
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, guiCmd, presetsCmd, exportSVGCmd, exportCSVCmd, exportJSONCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("ddrive failed")
	}
}

// load resolves the run config (preset < file < flags), validates it and
// computes the path. Errors here abort before any window is shown.
func load(cmd *cobra.Command) (*config.Config, *kinematics.Path, error) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.GetPreset("sampler")
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	applyOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	commands, err := cfg.Commands()
	if err != nil {
		return nil, nil, err
	}

	path, err := kinematics.ComputePath(cfg.InitialPose(), commands, cfg.Params())
	if err != nil {
		return nil, nil, err
	}

	log.Debug().
		Int("commands", len(commands)).
		Int("frames", path.Len()).
		Int("turns", len(path.Turns)).
		Msg("path computed")

	return cfg, path, nil
}

// applyOverrides lets explicit flags win over preset and file values.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("diameter") {
		cfg.Robot.WheelDiameter = wheelDiameter
	}
	if f.Changed("track") {
		cfg.Robot.AxleTrack = axleTrack
	}
	if f.Changed("offset") {
		cfg.Robot.AxleOffset = axleOffset
	}
	if f.Changed("step") {
		cfg.Robot.StepSize = stepSize
	}
	if f.Changed("x") {
		cfg.Start.X = startX
	}
	if f.Changed("y") {
		cfg.Start.Y = startY
	}
	if f.Changed("heading") {
		cfg.Start.HeadingDeg = headingDeg
	}
	if f.Changed("loop") {
		cfg.Playback.Loop = loop
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, path, err := load(cmd)
	if err != nil {
		return err
	}

	final := path.Final()
	fmt.Printf("frames: %d\nturn points: %d\nfinal pose: (%.3f, %.3f) heading %.1f°\n\n",
		path.Len(), len(path.Turns), final.X, final.Y, final.Heading*180/math.Pi)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tWHEELS\tDIRECTION\tROTATIONS")
	for i, m := range cfg.Moves {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.3g\n", i+1, m.Wheels, m.Direction, m.Rotations)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if path.Len() > 1 {
		headings := make([]float64, path.Len())
		for i, s := range path.Samples {
			headings[i] = s.Heading * 180 / math.Pi
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(headings,
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption("heading (deg) vs frame"),
		))
	}
	return nil
}
