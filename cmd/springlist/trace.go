package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/springlist/internal/config"
	"github.com/san-kum/springlist/internal/engine"
	"github.com/san-kum/springlist/internal/metrics"
	"github.com/san-kum/springlist/internal/phys"
	"github.com/san-kum/springlist/internal/storage"
)

const (
	traceItemWidth  = 100.0
	traceItemHeight = 50.0
)

// tracer scripts one interaction against a headless engine and
// records convergence until the frame driver goes idle.
type tracer struct {
	eng   *engine.Engine
	conv  *metrics.Convergence
	order []int
}

func runTrace(cmd *cobra.Command, args []string) error {
	scenario := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if numItems < 2 {
		return fmt.Errorf("trace needs at least two items, got %d", numItems)
	}

	world := phys.NewWorld()
	if cfg.Integrator == "verlet" {
		world.SetIntegrator(phys.NewVelocityVerlet())
	}

	opts := cfg.EngineOptions()
	tr := &tracer{
		eng:  engine.New(world, opts),
		conv: metrics.NewConvergence(opts.PositionEpsilon),
	}
	tr.eng.AddObserver(tr.conv)
	tr.eng.OnReorder(func(o []int) { tr.order = o })

	measures := make([]engine.Measure, numItems)
	for i := range measures {
		measures[i] = func() (engine.Extent, bool) {
			return engine.Extent{Width: traceItemWidth, Height: traceItemHeight}, true
		}
	}
	tr.eng.SetItems(measures)

	script, err := tr.script(scenario, cfg)
	if err != nil {
		return err
	}

	ticks := 0
	for ticks < traceTicks {
		done := script(ticks)
		active := tr.eng.Tick(cfg.Dt)
		ticks++
		if done && !active {
			break
		}
	}

	series := tr.conv.Series()
	if len(series) > 1 {
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption("max |position - target| per tick")))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "scenario\t%s\n", scenario)
	fmt.Fprintf(w, "items\t%d\n", numItems)
	fmt.Fprintf(w, "ticks\t%d\n", ticks)
	fmt.Fprintf(w, "rest tick\t%d\n", tr.conv.RestTick())
	fmt.Fprintf(w, "max residual\t%.3f\n", tr.conv.MaxResidual())
	fmt.Fprintf(w, "final residual\t%.3f\n", tr.conv.Residual())
	fmt.Fprintf(w, "final order\t%v\n", tr.eng.Order())
	if tr.order != nil {
		fmt.Fprintf(w, "committed\t%v\n", tr.order)
	} else {
		fmt.Fprintf(w, "committed\tnever\n")
	}
	diag := tr.eng.Diagnostics()
	fmt.Fprintf(w, "fallback extents\t%d\n", diag.FallbackExtents)
	fmt.Fprintf(w, "stale bodies\t%d\n", diag.StaleBodies)
	if err := w.Flush(); err != nil {
		return err
	}

	if saveTrace {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.TraceMetadata{
			Scenario:      scenario,
			Preset:        preset,
			Axis:          cfg.Axis,
			Items:         numItems,
			Ticks:         ticks,
			RestTick:      tr.conv.RestTick(),
			MaxResidual:   tr.conv.MaxResidual(),
			FinalResidual: tr.conv.Residual(),
			FinalOrder:    tr.eng.Order(),
		}, series)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved: %s\n", runID)
	}
	return nil
}

// script returns a per-tick step function; it reports true once the
// scripted input is finished.
func (t *tracer) script(scenario string, cfg *config.Config) (func(int) bool, error) {
	step := traceItemHeight + cfg.Spacing

	switch scenario {
	case "settle":
		// Move the first item to the last slot by keyboard, commit,
		// then watch everything settle.
		return func(tick int) bool {
			switch {
			case tick == 0:
				t.eng.KeyToggle(0)
				for i := 0; i < numItems-1; i++ {
					t.eng.KeyMove(+1)
				}
				t.eng.KeyToggle(0)
			}
			return true
		}, nil

	case "pointer":
		// Grab the first item and drag it down two slots over 40
		// ticks, hold, release.
		grab := phys.Vec{X: traceItemWidth / 2, Y: traceItemHeight / 2}
		return func(tick int) bool {
			switch {
			case tick == 0:
				t.eng.PointerDown(0, grab)
			case tick > 0 && tick <= 40:
				t.eng.PointerMove(phys.Vec{X: grab.X, Y: grab.Y + 2*step*float64(tick)/40})
			case tick == 50:
				t.eng.PointerUp()
			}
			return tick >= 50
		}, nil

	case "keyboard":
		// One swap forward, then cancel; the order must revert and
		// the callback must never fire.
		return func(tick int) bool {
			switch tick {
			case 0:
				t.eng.KeyToggle(0)
			case 20:
				t.eng.KeyMove(+1)
			case 40:
				t.eng.KeyCancel()
			}
			return tick >= 40
		}, nil

	default:
		return nil, fmt.Errorf("unknown scenario %q (settle, pointer, keyboard)", scenario)
	}
}
