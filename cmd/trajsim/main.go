package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trajsim/internal/ballistic"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/physics"
	"github.com/san-kum/trajsim/internal/storage"
	"github.com/san-kum/trajsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	debug   bool
	// Animation
	frameRate int
	theme     string
	// Numerical check
	integrator string
	dt         float64
	// Output
	svgOut string
	pngOut string
	every  int
	width  int
	height int
	dpi    int
)

// main registers the trajsim commands and animates the default launch when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	if err := runCLI(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// runCLI executes cmd and closes the debug log whether or not the command
// failed. Cobra skips post-run hooks after an error.
func runCLI(cmd *cobra.Command) error {
	defer closeLog()
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trajsim",
		Short: "projectile trajectory simulator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := setupLogging(debug)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			logFile = f
			return nil
		},
		RunE: runAnimate,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".trajsim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug log to "+logFileName)
	addLaunchFlags(rootCmd)
	addDisplayFlags(rootCmd)

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "animate the trajectory in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runAnimate,
	}
	addLaunchFlags(animateCmd)
	addDisplayFlags(animateCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate and save a run",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addLaunchFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print trajectory samples",
		Args:  cobra.NoArgs,
		RunE:  printTable,
	}
	addLaunchFlags(tableCmd)
	tableCmd.Flags().IntVar(&every, "every", 1, "print every n-th sample")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare a launch angle with its complement",
		Args:  cobra.NoArgs,
		RunE:  compareComplement,
	}
	addLaunchFlags(compareCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "check the closed form against numerical integration",
		Args:  cobra.NoArgs,
		RunE:  verifyLaunch,
	}
	addLaunchFlags(verifyCmd)
	verifyCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator ("+strings.Join(integrators.Names(), ", ")+")")
	verifyCmd.Flags().Float64Var(&dt, "dt", 0.001, "timestep")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render the trajectory to SVG",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	addLaunchFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVarP(&svgOut, "output", "o", "trajectory.svg", "output file")
	exportSVGCmd.Flags().IntVar(&width, "width", 800, "image width (px)")
	exportSVGCmd.Flags().IntVar(&height, "height", 600, "image height (px)")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png",
		Short: "render the trajectory plot to PNG",
		Args:  cobra.NoArgs,
		RunE:  exportPNG,
	}
	addLaunchFlags(exportPNGCmd)
	exportPNGCmd.Flags().StringVarP(&pngOut, "output", "o", "trajectory.png", "output file")
	exportPNGCmd.Flags().IntVar(&dpi, "dpi", 150, "image resolution")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset launches",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(animateCmd, runCmd, listCmd, plotCmd, tableCmd, compareCmd, verifyCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, exportPNGCmd, presetsCmd)
	return rootCmd
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	cmd.Flags().StringVar(&theme, "theme", "ember", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
}

func runAnimate(cmd *cobra.Command, args []string) error {
	traj, cfg, err := simulateFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := viz.Options{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		FPS:    cfg.Display.FPS,
		Theme:  cfg.Display.Theme,
	}
	log.Printf("animating %d frames at %d fps", traj.Len(), opts.FPS)
	return viz.Run(traj, opts)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	start := time.Now()
	traj, _, err := simulateFromFlags(cmd)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	runID, err := st.Save(traj)
	if err != nil {
		return err
	}
	log.Printf("saved run %s to %s", runID, dataDir)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	printSummary(out, traj)
	return nil
}

func printSummary(out io.Writer, traj *ballistic.Trajectory) {
	apex := traj.Apex()
	fmt.Fprintf(out, "launch: %s\n", traj.Input())
	fmt.Fprintf(out, "samples: %d\n", traj.Len())
	fmt.Fprintf(out, "flight time: %.3f s\n", traj.FlightTime())
	fmt.Fprintf(out, "range: %.3f m\n", traj.Final().X)
	fmt.Fprintf(out, "apex: %.3f m at t=%.3f s\n", apex.Y, apex.T)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tVELOCITY\tANGLE\tGRAVITY\tFLIGHT\tRANGE\tAPEX")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.3fs\t%.2fm\t%.2fm\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Velocity,
			run.Angle,
			run.Gravity,
			run.FlightTime,
			run.Range,
			run.ApexHeight,
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
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "launch: %s\n", meta.Input())
	fmt.Fprintf(out, "samples: %d\n\n", len(samples))

	ys := make([]float64, len(samples))
	for i, s := range samples {
		ys[i] = s.Y
	}
	graph := asciigraph.Plot(ys,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("height (m) over x = 0..%.1f m", samples[len(samples)-1].X)),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func printTable(cmd *cobra.Command, args []string) error {
	if every < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", every)
	}
	traj, _, err := simulateFromFlags(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "FRAME\tT (s)\tX (m)\tY (m)\t")
	for i := 0; i < traj.Len(); i++ {
		if i%every != 0 && i != traj.Len()-1 {
			continue
		}
		s := traj.At(i)
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t\n", i, s.T, s.X, s.Y)
	}
	return w.Flush()
}

func compareComplement(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	v, g := cfg.Launch.Velocity, cfg.Launch.Gravity
	a := cfg.Launch.Angle
	b := ballistic.Complement(a)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "complementary launch angles (v=%.2f m/s, g=%.2f m/s²)\n\n", v, g)
	fmt.Fprintf(out, "%-8s  %12s  %12s  %12s\n", "angle", "flight_s", "range_m", "apex_m")
	fmt.Fprintln(out, strings.Repeat("-", 50))
	for _, ang := range []float64{a, b} {
		fmt.Fprintf(out, "%-8.2f  %12.4f  %12.4f  %12.4f\n", ang,
			ballistic.FlightTime(v, ang, g), ballistic.Range(v, ang, g), ballistic.MaxHeight(v, ang, g))
	}
	fmt.Fprintf(out, "\nrange difference: %.3e m\n", ballistic.Range(v, a, g)-ballistic.Range(v, b, g))
	return nil
}

func verifyLaunch(cmd *cobra.Command, args []string) error {
	traj, _, err := simulateFromFlags(cmd)
	if err != nil {
		return err
	}
	integ, err := integrators.Get(integrator)
	if err != nil {
		return err
	}

	in := traj.Input()
	dyn := physics.NewProjectile(in.Gravity)
	cfg := dynamo.DefaultConfig()
	cfg.Dt = dt
	cfg.Duration = 2*traj.FlightTime() + 1
	cfg.StopWhen = physics.HitGround

	start := time.Now()
	result, err := dynamo.New(dyn, integ).Run(context.Background(), dyn.InitialState(in.Velocity, in.AngleDeg), cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	tLand, xLand, ok := physics.Landing(result)
	if !ok {
		return fmt.Errorf("projectile did not land within %.2fs", cfg.Duration)
	}
	apex, tApex := physics.Apex(result)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "launch: %s\n", in)
	fmt.Fprintf(out, "integrator: %s  dt=%g  steps=%d  time=%v\n\n", integrator, dt, result.StepsTaken, elapsed)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tCLOSED FORM\tNUMERICAL\tERROR")
	row := func(name string, exact, numeric float64) {
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.2e\n", name, exact, numeric, numeric-exact)
	}
	row("flight time (s)", ballistic.FlightTime(in.Velocity, in.AngleDeg, in.Gravity), tLand)
	row("range (m)", ballistic.Range(in.Velocity, in.AngleDeg, in.Gravity), xLand)
	row("apex (m)", ballistic.MaxHeight(in.Velocity, in.AngleDeg, in.Gravity), apex[1])
	row("apex time (s)", ballistic.ApexTime(in.Velocity, in.AngleDeg, in.Gravity), tApex)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nenergy drift: %.2e\n", result.EnergyDrift)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteCSV(cmd.OutOrStdout(), samples)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	return storage.ExportJSON(cmd.OutOrStdout(), meta, samples)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	traj, _, err := simulateFromFlags(cmd)
	if err != nil {
		return err
	}
	svg := export.TrajectoryToSVG(traj.Samples(), width, height, export.DefaultStroke)
	if svg == "" {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svgOut)
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	traj, _, err := simulateFromFlags(cmd)
	if err != nil {
		return err
	}
	opts := export.DefaultPNGOptions()
	opts.DPI = dpi
	if err := export.SavePNG(pngOut, traj, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngOut)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tVELOCITY\tANGLE\tGRAVITY\tSAMPLES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%d\n", name, p.Velocity, p.Angle, p.Gravity, p.Samples)
	}
	return w.Flush()
}
