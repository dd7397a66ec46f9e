package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/export"
	"github.com/san-kum/gravbox/internal/gui"
	"github.com/san-kum/gravbox/internal/metrics"
	"github.com/san-kum/gravbox/internal/render"
	"github.com/san-kum/gravbox/internal/sandbox"
	"github.com/san-kum/gravbox/internal/sim"
	"github.com/san-kum/gravbox/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	steps      int
	dt         float64
	gravity    float64
	ordering   string
	svgFile    string
	csvFile    string
	plot       bool
	writeFile  string
)

// main opens the window when no subcommand is given and exits with status 1
// if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "gravbox",
		Short:        "interactive 2D gravity sandbox",
		SilenceUsage: true,
		RunE:         runGUI,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("preset", "empty", "seed scene")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the sandbox window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().String("preset", "empty", "seed scene")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the sandbox in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().String("preset", "empty", "seed scene")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "step a preset headless and print metrics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().String("preset", "binary", "seed scene")
	runCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&gravity, "gravity", 100, "gravitational constant (overrides the preset's)")
	runCmd.Flags().StringVar(&ordering, "ordering", "snapshot", "update ordering (snapshot, sequential)")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "write the final frame as SVG")
	runCmd.Flags().StringVar(&csvFile, "csv", "", "write a per-step body trace as CSV")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot total energy")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the built-in seed scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d bodies\t%s\n", name, len(p.Bodies), p.Description)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print or write the effective config",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writeFile, "write", "", "write the config to this path instead of printing it")

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig returns the defaults, or the --config file laid over them.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config, w io.Writer) (*log.Logger, error) {
	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "gravbox",
		ReportTimestamp: true,
	}), nil
}

// lookupPreset resolves the command's own --preset flag; each command has
// its own default scene.
func lookupPreset(cmd *cobra.Command) (*config.Preset, error) {
	name, err := cmd.Flags().GetString("preset")
	if err != nil {
		return nil, err
	}
	return config.GetPreset(name)
}

// setup loads config, builds the logger and a session seeded from --preset.
func setup(cmd *cobra.Command, logOut io.Writer) (*config.Config, *sandbox.State, *log.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := newLogger(cmd, cfg, logOut)
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := lookupPreset(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	st := sandbox.New(cfg)
	st.Seed(p)
	logger.Debug("session ready", "preset", p.Name, "bodies", st.World.Len(), "ordering", st.Sim.Ordering())
	return cfg, st, logger, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, st, logger, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	gui.Run(cfg, st, logger)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, st, logger, err := setup(cmd, io.Discard)
	if err != nil {
		return err
	}
	return viz.Run(cfg, st, logger)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg, os.Stderr)
	if err != nil {
		return err
	}

	p, err := lookupPreset(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("dt") {
		dt = cfg.Simulation.Dt
	}
	if !cmd.Flags().Changed("gravity") {
		gravity = p.Gravity
	}
	if !cmd.Flags().Changed("ordering") {
		ordering = cfg.Simulation.Ordering
	}
	order, err := sim.ParseOrdering(ordering)
	if err != nil {
		return err
	}

	world := sim.NewWorld()
	for _, b := range p.Build(cfg.Simulation.TrailLength) {
		world.Add(b)
	}

	runner := sim.NewRunner(sim.New(order))
	history := metrics.NewHistory(steps + 1)
	runner.AddMetric(metrics.NewEnergy())
	runner.AddMetric(metrics.NewEnergyDrift())
	runner.AddMetric(metrics.NewMaxSpeed())
	runner.AddMetric(history)

	var trace *export.Trace
	if csvFile != "" {
		trace, err = export.CreateTrace(csvFile)
		if err != nil {
			return err
		}
		runner.AddObserver(trace)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running", "preset", p.Name, "bodies", world.Len(), "steps", steps, "dt", dt, "gravity", gravity, "ordering", order)
	result, runErr := runner.Run(ctx, world, sim.RunConfig{
		Dt:            dt,
		Gravity:       gravity,
		Steps:         steps,
		ValidateState: true,
	})
	if result == nil {
		return runErr
	}

	if trace != nil {
		if err := trace.Close(); err != nil {
			return err
		}
		logger.Info("trace written", "path", csvFile, "rows", trace.Rows())
	}
	if svgFile != "" {
		frame := export.NewSVG(cfg.Window.Width, cfg.Window.Height)
		render.DrawBodies(frame, world.Bodies())
		if err := frame.WriteFile(svgFile); err != nil {
			return err
		}
		logger.Info("frame written", "path", svgFile, "circles", frame.Circles())
	}

	printResult(cmd.OutOrStdout(), result, []string{"energy", "energy_drift", "max_speed"})
	if plot && len(history.Samples()) > 1 {
		fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(history.Samples(),
			asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("Total energy")))
	}

	switch {
	case errors.Is(runErr, context.Canceled):
		logger.Warn("interrupted", "steps", result.StepsTaken)
		return nil
	case runErr != nil:
		logger.Error("run stopped", "err", runErr)
		return runErr
	}
	return nil
}

func printResult(w io.Writer, result *sim.Result, names []string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "steps\t%d\n", result.StepsTaken)
	for _, name := range names {
		if v, ok := result.Metrics[name]; ok {
			fmt.Fprintf(tw, "%s\t%.6g\n", name, v)
		}
	}
	tw.Flush()
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if writeFile != "" {
		if err := config.Save(writeFile, cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", writeFile)
		return nil
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
