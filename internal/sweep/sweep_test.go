package sweep

import (
	"context"
	"errors"
	"testing"

	"life-ca/pkg/sims/life"
)

func TestRunClassifiesPatterns(t *testing.T) {
	scenarios := []Scenario{
		{Sim: "life", Size: 6, Pattern: "block"},
		{Size: 5, Pattern: "blinker"},
		{Size: 5, Pattern: ""},
		{Size: 8, Pattern: "beacon"},
	}
	results, err := Run(context.Background(), scenarios, 50, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []struct {
		period  int
		settled int
		pop     int
	}{
		{1, 0, 4},
		{2, 0, 3},
		{1, 0, 0},
		{2, 0, 6},
	}
	for i, w := range want {
		r := results[i]
		if r.Scenario != scenarios[i] {
			t.Fatalf("result %d out of order: %+v", i, r.Scenario)
		}
		if r.Period != w.period || r.SettledAt != w.settled || r.Population != w.pop {
			t.Fatalf("scenario %d: period=%d settled=%d pop=%d, want %d/%d/%d", i, r.Period, r.SettledAt, r.Population, w.period, w.settled, w.pop)
		}
	}
	if !results[2].Extinct() || results[0].Extinct() {
		t.Fatal("extinction misreported")
	}
}

func TestRunGliderDiesAtEdge(t *testing.T) {
	// Without wraparound a glider crashes into the corner and settles.
	results, err := Run(context.Background(), []Scenario{{Size: 10, Pattern: "glider"}}, 200, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r := results[0]
	if r.Period == 0 || r.SettledAt == 0 {
		t.Fatalf("glider run period=%d settled=%d", r.Period, r.SettledAt)
	}
	if r.PeakPop < 5 {
		t.Fatalf("peak population %d below the glider's own size", r.PeakPop)
	}
}

func TestRunRejectsInvalidScenario(t *testing.T) {
	_, err := Run(context.Background(), []Scenario{{Size: 0}}, 10, 1)
	if !errors.Is(err, life.ErrInvalidSize) {
		t.Fatalf("zero-sized scenario: err = %v, want ErrInvalidSize", err)
	}
	if _, err := Run(context.Background(), []Scenario{{Sim: "nope", Size: 5}}, 10, 1); err == nil {
		t.Fatal("unknown sim accepted")
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, []Scenario{{Size: 5, Pattern: "blinker"}}, 10, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Result{
		{Period: 0},
		{Period: 1, Population: 0},
		{Period: 1, Population: 4},
		{Period: 2, Population: 3},
		{Period: 2, Population: 6},
		{Period: 3, Population: 12},
	})
	if s.Runs != 6 || s.Unsettled != 1 || s.Extinct != 1 || s.Still != 1 || s.Oscillator != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if len(s.Periods) != 2 || s.Periods[0] != [2]int{2, 2} || s.Periods[1] != [2]int{3, 1} {
		t.Fatalf("periods = %v", s.Periods)
	}
}
