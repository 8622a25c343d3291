package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"life-ca/internal/sweep"
	"life-ca/pkg/sims/life"
)

func main() {
	sim := flag.String("sim", "life", "simulation to sweep")
	steps := flag.Int("steps", 1000, "maximum generations per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	sizes := flag.String("sizes", "25,34", "comma-separated grid side lengths")
	runs := flag.Int("runs", 64, "random seeds per size")
	pattern := flag.String("pattern", life.PatternRandom, "pattern to sweep (random sweeps seeds)")
	verbose := flag.Bool("v", false, "print every run")
	flag.Parse()

	ns, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("sizes: %v", err)
	}

	var scenarios []sweep.Scenario
	for _, n := range ns {
		for seed := 1; seed <= *runs; seed++ {
			scenarios = append(scenarios, sweep.Scenario{Sim: *sim, Size: n, Pattern: *pattern, Seed: int64(seed)})
			if *pattern != life.PatternRandom {
				break
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(scenarios), *workers, *steps)
	start := time.Now()
	results, err := sweep.Run(ctx, scenarios, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	if *verbose {
		for _, r := range results {
			fmt.Printf("n=%-3d seed=%-4d steps=%-5d period=%-3d settled=%-5d pop=%-4d peak=%d\n",
				r.Scenario.Size, r.Scenario.Seed, r.Steps, r.Period, r.SettledAt, r.Population, r.PeakPop)
		}
	}

	s := sweep.Summarize(results)
	fmt.Printf("\nRuns: %d  extinct: %d  still: %d  oscillating: %d  unsettled: %d\n",
		s.Runs, s.Extinct, s.Still, s.Oscillator, s.Unsettled)
	for _, p := range s.Periods {
		fmt.Printf("  period %d: %d\n", p[0], p[1])
	}
	fmt.Printf("Elapsed: %s\n", time.Since(start).Round(time.Millisecond))
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: got %d", life.ErrInvalidSize, n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return out, nil
}
