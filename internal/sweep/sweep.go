// Package sweep runs many independent Life simulations and reports how each
// one settles. Every scenario owns its own engine, so scenarios run
// concurrently without sharing state.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"life-ca/pkg/core"
	"life-ca/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// Scenario describes one run. Sim names a registered simulation and defaults
// to life.
type Scenario struct {
	Sim     string
	Size    int
	Pattern string
	Seed    int64
}

// Result summarises a finished run. Period is 0 when no repeat was seen within
// the step budget, 1 for a still life (including extinction) and >1 for an
// oscillator. SettledAt is the first generation of the repeating cycle.
type Result struct {
	Scenario   Scenario
	Steps      int
	Period     int
	SettledAt  int
	Population int
	PeakPop    int
}

// Extinct reports whether the run ended with no live cells.
func (r Result) Extinct() bool { return r.Period > 0 && r.Population == 0 }

// Run executes every scenario for at most steps generations using up to
// workers goroutines. Results are returned in scenario order.
func Run(ctx context.Context, scenarios []Scenario, steps, workers int) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(ctx, sc, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, sc Scenario, steps int) (Result, error) {
	sim, err := newSim(sc)
	if err != nil {
		return Result{}, err
	}
	sim.Reset(sc.Seed)

	res := Result{Scenario: sc, PeakPop: population(sim.Cells())}
	seen := map[string]int{string(sim.Cells()): 0}
	for gen := 1; gen <= steps; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		sim.Step()
		pop := population(sim.Cells())
		res.PeakPop = max(res.PeakPop, pop)
		res.Steps = gen
		key := string(sim.Cells())
		if first, ok := seen[key]; ok {
			res.Period = gen - first
			res.SettledAt = first
			break
		}
		seen[key] = gen
	}
	res.Population = population(sim.Cells())
	return res, nil
}

func newSim(sc Scenario) (core.Sim, error) {
	name := sc.Sim
	if name == "" {
		name = "life"
	}
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("sweep: unknown sim %q", name)
	}
	if sc.Size <= 0 {
		return nil, fmt.Errorf("sweep: %w: got %d", life.ErrInvalidSize, sc.Size)
	}
	return factory(map[string]string{
		"n":       strconv.Itoa(sc.Size),
		"pattern": sc.Pattern,
	})
}

func population(cells []uint8) int {
	alive := 0
	for _, c := range cells {
		if c != 0 {
			alive++
		}
	}
	return alive
}

// Summary aggregates results for reporting.
type Summary struct {
	Runs       int
	Extinct    int
	Still      int
	Oscillator int
	Unsettled  int
	// Periods counts oscillators by period, sorted ascending by period.
	Periods [][2]int
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	periods := map[int]int{}
	for _, r := range results {
		switch {
		case r.Period == 0:
			s.Unsettled++
		case r.Extinct():
			s.Extinct++
		case r.Period == 1:
			s.Still++
		default:
			s.Oscillator++
			periods[r.Period]++
		}
	}
	for p, n := range periods {
		s.Periods = append(s.Periods, [2]int{p, n})
	}
	sort.Slice(s.Periods, func(i, j int) bool { return s.Periods[i][0] < s.Periods[j][0] })
	return s
}
