package ui

import (
	"strings"
	"testing"
	"time"
)

func TestStatusLines(t *testing.T) {
	lines := Status{Generation: 12, Population: 5, Size: 25, Interval: 80 * time.Millisecond}.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "Generation 12" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "Population 5 / 625" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "paused") || !strings.HasSuffix(lines[2], "80ms") {
		t.Fatalf("line 2 = %q", lines[2])
	}

	lines = Status{Playing: true, Interval: time.Second}.Lines()
	if !strings.HasPrefix(lines[2], "playing") {
		t.Fatalf("line 2 = %q", lines[2])
	}
}
