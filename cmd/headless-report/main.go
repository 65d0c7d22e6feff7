// headless-report drives the title screen without a window, resolves a seed
// per run, generates the maps concurrently and prints a terrain report.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/procedural-td/internal/assets"
	"github.com/Garsondee/procedural-td/internal/config"
	"github.com/Garsondee/procedural-td/internal/mapgen"
	"github.com/Garsondee/procedural-td/internal/title"
)

type runStats struct {
	runIndex int
	rngSeed  int64
	typed    string
	input    string // "enter" or "mouse"

	seed       int
	events     int
	activateAt int // frame of the activation, -1 if none

	composition [mapgen.TerrainCount]float64
	elapsed     time.Duration
}

var (
	flagRuns     int
	flagSeedBase int64
	flagSeedStep int64
	flagTyped    []string
	flagConfig   string
	flagParallel int
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "headless-report",
	Short:         "Run scripted title screen sessions and report the generated terrain",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagRuns <= 0 {
			return fmt.Errorf("--runs must be > 0")
		}
		if flagParallel <= 0 {
			return fmt.Errorf("--parallel must be > 0")
		}
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		sizes, err := assets.New(nil).TitleSizes()
		if err != nil {
			return err
		}
		layout := title.ComputeLayout(cfg.Layout.Size(), cfg.Layout.Spacing(), sizes)
		return report(cmd.Context(), cmd.OutOrStdout(), layout, cfg.MapGen)
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagRuns, "runs", 5, "number of headless title screen runs")
	rootCmd.Flags().Int64Var(&flagSeedBase, "seed-base", 42, "base RNG seed for run 1 (used when nothing is typed)")
	rootCmd.Flags().Int64Var(&flagSeedStep, "seed-step", 1, "RNG seed increment between runs")
	rootCmd.Flags().StringSliceVar(&flagTyped, "type", nil, "digits typed into the seed box, one entry per run (empty = random seed)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.Flags().IntVar(&flagParallel, "parallel", 4, "maps generated concurrently")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "print each run's title screen event log")
}

func report(ctx context.Context, out io.Writer, layout title.Layout, cfg mapgen.Config) error {
	fmt.Fprintf(out, "=== Headless Title Report ===\n")
	fmt.Fprintf(out, "runs=%d seed_base=%d seed_step=%d map=%dx%d octaves=%d\n\n",
		flagRuns, flagSeedBase, flagSeedStep, cfg.Cols, cfg.Rows, cfg.Octaves)

	all := make([]runStats, flagRuns)
	logs := make([]*title.EventLog, flagRuns)
	for i := range all {
		typed := ""
		if i < len(flagTyped) {
			typed = flagTyped[i]
		}
		all[i], logs[i] = runTitle(layout, i+1, flagSeedBase+int64(i)*flagSeedStep, typed)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(flagParallel)
	for i := range all {
		rs := &all[i]
		if rs.activateAt < 0 {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			m, err := mapgen.Generate(rs.seed, cfg)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", rs.runIndex, rs.seed, err)
			}
			rs.composition = m.Composition()
			rs.elapsed = time.Since(start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, rs := range all {
		printRun(out, rs)
		if flagVerbose {
			fmt.Fprint(out, logs[i].Format())
			fmt.Fprintln(out)
		}
	}
	printAggregate(out, all)
	return nil
}

// runTitle scripts one title screen session: type the digits, then start
// with Enter on odd runs and a mouse click on even ones.
func runTitle(layout title.Layout, runIndex int, rngSeed int64, typed string) (runStats, *title.EventLog) {
	ts := title.NewTestScreen(title.WithLayout(layout), title.WithRandSeed(rngSeed))
	ts.TypeDigits(typed)

	input := "enter"
	if runIndex%2 == 0 {
		input = "mouse"
		ts.ClickStart()
	} else {
		ts.Tap(ebiten.KeyEnter)
	}

	rs := runStats{
		runIndex:   runIndex,
		rngSeed:    rngSeed,
		typed:      ts.Screen.Seed(),
		input:      input,
		events:     len(ts.Events.Entries()),
		activateAt: -1,
	}
	if e, ok := ts.Events.LastOf(title.EventActivate); ok {
		rs.activateAt = e.Frame
	}
	if len(ts.Dispatched) > 0 {
		rs.seed = ts.Dispatched[0]
	}
	return rs, ts.Events
}

func printRun(out io.Writer, rs runStats) {
	typed := rs.typed
	if typed == "" {
		typed = "(random)"
	}
	fmt.Fprintf(out, "--- Run %d (rng=%d) ---\n", rs.runIndex, rs.rngSeed)
	if rs.activateAt < 0 {
		fmt.Fprintf(out, "title: typed=%s input=%s activated=no events=%d\n\n", typed, rs.input, rs.events)
		return
	}
	fmt.Fprintf(out, "title: typed=%s input=%s activate_frame=%d events=%d\n", typed, rs.input, rs.activateAt, rs.events)
	fmt.Fprintf(out, "map: seed=%08d elapsed=%s\n", rs.seed, rs.elapsed.Round(time.Microsecond))
	fmt.Fprintf(out, "terrain: %s\n\n", formatComposition(rs.composition))
}

func formatComposition(comp [mapgen.TerrainCount]float64) string {
	parts := make([]string, 0, len(comp))
	for t, share := range comp {
		parts = append(parts, fmt.Sprintf("%s=%.1f%%", mapgen.Terrain(t), share*100))
	}
	return strings.Join(parts, " ")
}

func printAggregate(out io.Writer, all []runStats) {
	var sum [mapgen.TerrainCount]float64
	generated := 0
	seeds := map[int]struct{}{}
	var totalElapsed time.Duration
	for _, rs := range all {
		if rs.activateAt < 0 {
			continue
		}
		generated++
		seeds[rs.seed] = struct{}{}
		totalElapsed += rs.elapsed
		for t, share := range rs.composition {
			sum[t] += share
		}
	}

	fmt.Fprintln(out, "=== Aggregate ===")
	fmt.Fprintf(out, "runs=%d generated=%d unique_seeds=%d\n", len(all), generated, len(seeds))
	if generated == 0 {
		return
	}
	var avgComp [mapgen.TerrainCount]float64
	for t := range sum {
		avgComp[t] = sum[t] / float64(generated)
	}
	fmt.Fprintf(out, "avg_terrain: %s\n", formatComposition(avgComp))
	fmt.Fprintf(out, "avg_elapsed: %s\n", (totalElapsed / time.Duration(generated)).Round(time.Microsecond))
	fmt.Fprintf(out, "dominant: %s\n", dominant(avgComp))
}

// dominant lists terrains from most to least common.
func dominant(comp [mapgen.TerrainCount]float64) string {
	order := make([]int, len(comp))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return comp[order[i]] > comp[order[j]] })
	names := make([]string, 0, len(order))
	for _, t := range order {
		if comp[t] == 0 {
			break
		}
		names = append(names, mapgen.Terrain(t).String())
	}
	return strings.Join(names, ">")
}
