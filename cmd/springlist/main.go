package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/springlist/internal/config"
	"github.com/san-kum/springlist/internal/storage"
	"github.com/san-kum/springlist/internal/tui"
)

const version = "0.2.0"

var (
	dataDir    string
	numItems   int
	axis       string
	preset     string
	configFile string
	frameRate  int
	// trace options
	traceTicks int
	saveTrace  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springlist",
		Short: "physics-driven reorderable list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springlist", "data directory")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "interactive reorderable list demo",
		RunE:  runDemo,
	}
	demoCmd.Flags().IntVar(&numItems, "items", config.DefaultItems, "number of items")
	demoCmd.Flags().StringVar(&axis, "axis", "", "list axis (vertical, horizontal, both)")
	demoCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	demoCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	demoCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")

	traceCmd := &cobra.Command{
		Use:   "trace [scenario]",
		Short: "run a scripted scenario headless and chart convergence",
		Long:  "scenarios: settle, pointer, keyboard",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&numItems, "items", config.DefaultItems, "number of items")
	traceCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	traceCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	traceCmd.Flags().IntVar(&traceTicks, "ticks", 600, "maximum ticks")
	traceCmd.Flags().BoolVar(&saveTrace, "save", false, "save the trace run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved trace runs",
		RunE:  listTraces,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s settle %.0f/%.0f  drag %.0f/%.0f  %s\n",
					name,
					cfg.Settle.Tension, cfg.Settle.Friction,
					cfg.Drag.Tension, cfg.Drag.Friction,
					cfg.Integrator)
			}
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("springlist", version)
		},
	}

	rootCmd.AddCommand(demoCmd, traceCmd, listCmd, presetsCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("axis") {
		cfg.Axis = axis
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if numItems < 1 {
		return fmt.Errorf("need at least one item, got %d", numItems)
	}

	items := make([]string, numItems)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	return tui.Run(cfg, items, frameRate)
}

func listTraces(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no trace runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tITEMS\tTICKS\tREST\tMAX RESIDUAL\tORDER")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.3f\t%v\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Items,
			run.Ticks,
			run.RestTick,
			run.MaxResidual,
			run.FinalOrder)
	}
	return w.Flush()
}
