package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/k-sandesh/edusim/internal/analysis"
	"github.com/k-sandesh/edusim/internal/config"
	"github.com/k-sandesh/edusim/internal/export"
	"github.com/k-sandesh/edusim/internal/models"
	"github.com/k-sandesh/edusim/internal/sim"
	"github.com/k-sandesh/edusim/internal/tui"
	"github.com/k-sandesh/edusim/internal/viz"
)

var (
	dt         float64
	duration   float64
	frameRate  int
	themeName  string
	configFile string
	preset     string
	setFlags   []string
	atTime     float64
	svgScale   float64
	output     string
)

func main() {
	registry := models.NewRegistry()

	rootCmd := &cobra.Command{
		Use:   "edusim",
		Short: "interactive classroom science simulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			viz.SetTheme(themeName)
			if configFile == "" {
				return tui.Run("", frameRate)
			}
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			fps := frameRate
			if !flagChanged(cmd, "fps") && cfg.FPS > 0 {
				fps = cfg.FPS
			}
			if !flagChanged(cmd, "theme") && cfg.Theme != "" {
				viz.SetTheme(cfg.Theme)
			}
			if cfg.Model == "" {
				return tui.Run("", fps)
			}
			m, err := registry.Get(cfg.Model)
			if err != nil {
				return err
			}
			p := sim.NewParams(m.Specs())
			cfg.Apply(p)
			return tui.RunWith(m, p, fps)
		},
	}
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset for the model")
	rootCmd.PersistentFlags().StringArrayVar(&setFlags, "set", nil, "override a parameter, name=value (repeatable)")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run one simulation interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, p, _, err := setup(registry, args[0], cmd)
			if err != nil {
				return err
			}
			return tui.RunWith(m, p, frameRate)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "sample a simulation headless and print the final state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, p, dur, err := setup(registry, args[0], cmd)
			if err != nil {
				return err
			}
			series, err := sim.Sample(context.Background(), m, p, dt, dur)
			if err != nil {
				return err
			}
			last := series.States[len(series.States)-1]
			fmt.Printf("%s: %d samples over %.2fs\n\n", m.Title(), len(series.Times), series.Times[len(series.Times)-1])
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for i, label := range series.Labels {
				fmt.Fprintf(w, "%s\t%.6f\n", label, last[i])
			}
			return w.Flush()
		},
	}
	addSampleFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [model]",
		Short: "plot sampled outputs as ascii charts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, p, dur, err := setup(registry, args[0], cmd)
			if err != nil {
				return err
			}
			series, err := sim.Sample(context.Background(), m, p, dt, dur)
			if err != nil {
				return err
			}
			for i, label := range series.Labels {
				graph := asciigraph.Plot(series.Column(i),
					asciigraph.Height(8),
					asciigraph.Width(72),
					asciigraph.Caption(label))
				fmt.Println(graph)
				fmt.Println()
			}
			return nil
		},
	}
	addSampleFlags(plotCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [model] [output]",
		Short: "power spectrum of one sampled output",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, p, dur, err := setup(registry, args[0], cmd)
			if err != nil {
				return err
			}
			series, err := sim.Sample(context.Background(), m, p, dt, dur)
			if err != nil {
				return err
			}

			label := series.Labels[0]
			if len(args) == 2 {
				label = args[1]
			}
			values, ok := series.ColumnByLabel(label)
			if !ok {
				return fmt.Errorf("unknown output %q (have %v)", label, series.Labels)
			}

			spec, err := analysis.PowerSpectrum(values, dt)
			if err != nil {
				return err
			}

			quarter := spec.Power[:len(spec.Power)/4+1]
			graph := asciigraph.Plot(quarter,
				asciigraph.Height(12),
				asciigraph.Width(72),
				asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", label)))
			fmt.Println(graph)
			fmt.Printf("\ndominant frequency: %.4f hz\n", spec.DominantFrequency())
			fmt.Printf("dominant period: %.3f s\n", spec.DominantPeriod())
			return nil
		},
	}
	addSampleFlags(analyzeCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available simulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tPARAMS\tOUTPUTS")
			for _, name := range registry.List() {
				m, err := registry.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					name, m.Title(), len(m.Specs()), strings.Join(m.Labels(), ","))
			}
			return w.Flush()
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [model]",
		Short: "show a simulation's parameters and ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := registry.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n\n", m.Title(), m.Name())
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PARAM\tLABEL\tMIN\tMAX\tSTEP\tDEFAULT")
			for _, spec := range m.Specs() {
				fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\n",
					spec.Name, spec.Label, spec.Min, spec.Max, spec.Step, spec.Default)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\noutputs: %s\n", strings.Join(m.Labels(), ", "))
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [model]",
		Short: "sample a simulation and write CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, p, dur, err := setup(registry, args[0], cmd)
			if err != nil {
				return err
			}
			series, err := sim.Sample(context.Background(), m, p, dt, dur)
			if err != nil {
				return err
			}
			return export.WriteCSV(os.Stdout, series)
		},
	}
	addSampleFlags(exportCSVCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [model]",
		Short: "render the scene at a given time and write SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, p, _, err := setup(registry, args[0], cmd)
			if err != nil {
				return err
			}
			canvas := viz.NewCanvas(80, 26)
			viz.DrawScene(canvas, m, p, atTime)
			svg := export.CanvasSVG(canvas, svgScale)
			if output == "" || output == "-" {
				fmt.Println(svg)
				return nil
			}
			return os.WriteFile(output, []byte(svg), 0644)
		},
	}
	exportSVGCmd.Flags().Float64Var(&atTime, "at", 0, "simulation time to render")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 4, "svg pixels per dot")
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(liveCmd, runCmd, plotCmd, analyzeCmd, listCmd, infoCmd, presetsCmd, exportCSVCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSampleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "sample interval (s)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
}

// setup resolves the model and builds its parameters from, in order of
// increasing precedence: defaults, config file, preset, --set overrides.
// It returns the effective duration alongside.
func setup(registry *models.Registry, name string, cmd *cobra.Command) (sim.Model, *sim.Params, float64, error) {
	m, err := registry.Get(name)
	if err != nil {
		return nil, nil, 0, err
	}
	p := sim.NewParams(m.Specs())
	dur := duration
	if dur <= 0 {
		dur = config.DefaultDuration
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("load config: %w", err)
		}
		cfg.Apply(p)
		if cfg.Theme != "" {
			viz.SetTheme(cfg.Theme)
		}
		if !flagChanged(cmd, "time") && cfg.Duration > 0 {
			dur = cfg.Duration
		}
		if !flagChanged(cmd, "dt") && cfg.Dt > 0 {
			dt = cfg.Dt
		}
		if !flagChanged(cmd, "fps") && cfg.FPS > 0 {
			frameRate = cfg.FPS
		}
	}

	if preset != "" {
		cfg := config.GetPreset(name, preset)
		if cfg == nil {
			return nil, nil, 0, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets(name))
		}
		cfg.Apply(p)
		if !flagChanged(cmd, "time") && cfg.Duration > 0 {
			dur = cfg.Duration
		}
	}

	for _, kv := range setFlags {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, nil, 0, fmt.Errorf("bad --set %q, want name=value", kv)
		}
		val, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("bad --set %q: %w", kv, err)
		}
		if err := p.Set(parts[0], val); err != nil {
			return nil, nil, 0, err
		}
	}

	if flagChanged(cmd, "theme") {
		viz.SetTheme(themeName)
	}
	return m, p, dur, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
