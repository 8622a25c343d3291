package life

import (
	"strings"

	"life-ca/pkg/core"
)

// Life adapts an Engine to the core.Sim contract and re-applies its configured
// seed on Reset.
type Life struct {
	*Engine
	cfg Config
}

// NewSim validates cfg and returns a seeded simulation. Pattern names are
// case-insensitive.
func NewSim(cfg Config) (*Life, error) {
	cfg.Pattern = strings.ToLower(strings.TrimSpace(cfg.Pattern))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e, err := New(cfg.Size)
	if err != nil {
		return nil, err
	}
	l := &Life{Engine: e, cfg: cfg}
	l.Reset(0)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.n, H: l.n} }

// Reset clears the board and applies the configured seed. The seed argument
// only matters for the random pattern.
func (l *Life) Reset(seed int64) {
	l.Clear()
	switch l.cfg.Pattern {
	case "":
	case PatternRandom:
		core.FillBinary(core.NewRNG(seed).Source(), l.cur)
	default:
		if p, ok := Pattern(l.cfg.Pattern); ok {
			l.Seed(Centered(p, l.n))
		}
	}
	l.Seed(l.cfg.Cells)
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewSim(FromMap(cfg))
	})
}
