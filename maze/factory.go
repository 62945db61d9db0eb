package maze

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/rng"
)

// maxColorTries bounds the rejection sampling of one palette.
const maxColorTries = 1_000_000

// FactoryConfig contains the tunable parameters of a NodeFactory.
type FactoryConfig struct {
	// ActionReward is the reward for entering an ordinary way node. Must be < 0
	// so that shortest-path edge costs stay positive.
	ActionReward float64
	// EndReward is the reward for entering the end node. Must be finite.
	EndReward float64
	// WayColors and WallColors are the palette sizes (≥1 each).
	WayColors  int
	WallColors int
	// BrightnessThreshold splits dark walls from bright ways.
	BrightnessThreshold float64
	// BrightnessGap is the minimum brightness distance between the palettes.
	BrightnessGap float64
	// GenerationSeed selects which colors exist in each palette.
	GenerationSeed int64
	// UsageSeed selects which palette color each new node receives.
	UsageSeed int64
}

// DefaultFactoryConfig returns a FactoryConfig with defaults:
// ActionReward=-1, EndReward=10, 4 way colors, 4 wall colors,
// threshold 127.5, gap 40, seeds 1.
func DefaultFactoryConfig() FactoryConfig {
	return FactoryConfig{
		ActionReward:        -1,
		EndReward:           10,
		WayColors:           4,
		WallColors:          4,
		BrightnessThreshold: 127.5,
		BrightnessGap:       40,
		GenerationSeed:      1,
		UsageSeed:           1,
	}
}

// Validate reports the first inconsistency in c, wrapped in ErrInvalidFactory.
func (c FactoryConfig) Validate() error {
	switch {
	case !(c.ActionReward < 0) || math.IsInf(c.ActionReward, 0):
		return fmt.Errorf("%w: ActionReward=%g must be negative and finite", ErrInvalidFactory, c.ActionReward)
	case math.IsInf(c.EndReward, 0) || math.IsNaN(c.EndReward):
		return fmt.Errorf("%w: EndReward=%g must be finite", ErrInvalidFactory, c.EndReward)
	case c.WayColors < 1 || c.WallColors < 1:
		return fmt.Errorf("%w: palette sizes way=%d wall=%d must be ≥1", ErrInvalidFactory, c.WayColors, c.WallColors)
	case c.BrightnessGap < 0:
		return fmt.Errorf("%w: BrightnessGap=%g must be ≥0", ErrInvalidFactory, c.BrightnessGap)
	case c.BrightnessThreshold-c.BrightnessGap/2 <= 0 || c.BrightnessThreshold+c.BrightnessGap/2 >= 255:
		return fmt.Errorf("%w: threshold %g ± gap/2 %g leaves no room inside [0,255]",
			ErrInvalidFactory, c.BrightnessThreshold, c.BrightnessGap/2)
	}
	return nil
}

// Factory builds and recolors maze nodes. It owns the way and wall palettes
// and the usage generator; palettes are immutable after construction.
type Factory struct {
	cfg   FactoryConfig
	way   []Color
	wall  []Color
	usage *rand.Rand
}

// NewFactory validates cfg and generates both palettes.
// Returns ErrInvalidFactory for inconsistent parameters and
// ErrPaletteExhausted when a palette cannot be filled.
func NewFactory(cfg FactoryConfig) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen := rng.New(cfg.GenerationSeed)
	half := cfg.BrightnessGap / 2

	// walls: [0, threshold−gap/2)
	wall, err := generatePalette(gen, cfg.WallColors, func(b float64) bool {
		return b < cfg.BrightnessThreshold-half
	})
	if err != nil {
		return nil, fmt.Errorf("wall palette: %w", err)
	}
	// ways: (threshold+gap/2, 255]
	way, err := generatePalette(gen, cfg.WayColors, func(b float64) bool {
		return b > cfg.BrightnessThreshold+half
	})
	if err != nil {
		return nil, fmt.Errorf("way palette: %w", err)
	}

	return &Factory{
		cfg:   cfg,
		way:   way,
		wall:  wall,
		usage: rng.New(cfg.UsageSeed),
	}, nil
}

// generatePalette rejection-samples n distinct colors whose brightness
// satisfies accept.
func generatePalette(r *rand.Rand, n int, accept func(float64) bool) ([]Color, error) {
	palette := make([]Color, 0, n)
	seen := make(map[Color]struct{}, n)
	tries := 0
	for len(palette) < n {
		if tries >= maxColorTries {
			return nil, fmt.Errorf("%w: %d of %d colors after %d tries", ErrPaletteExhausted, len(palette), n, tries)
		}
		tries++
		c := Color{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))}
		if !accept(c.Brightness()) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		palette = append(palette, c)
	}
	return palette, nil
}

// Config returns the configuration the factory was built with.
func (f *Factory) Config() FactoryConfig { return f.cfg }

// WayPalette returns a copy of the bright palette.
func (f *Factory) WayPalette() []Color { return append([]Color(nil), f.way...) }

// WallPalette returns a copy of the dark palette.
func (f *Factory) WallPalette() []Color { return append([]Color(nil), f.wall...) }

// RewardFor returns the reward of a node of type t; isEnd selects EndReward.
func (f *Factory) RewardFor(t NodeType, isEnd bool) float64 {
	switch {
	case t == Impassable:
		return math.Inf(-1)
	case isEnd:
		return f.cfg.EndReward
	default:
		return f.cfg.ActionReward
	}
}

// LooksLike reports whether c belongs to the palette of type t.
// Complexity: O(palette size).
func (f *Factory) LooksLike(c Color, t NodeType) bool {
	palette := f.wall
	if t == Passable {
		palette = f.way
	}
	for _, p := range palette {
		if p == c {
			return true
		}
	}
	return false
}

// ColorFor draws a palette color for type t from the usage generator.
func (f *Factory) ColorFor(t NodeType) Color {
	if t == Passable {
		return f.way[f.usage.Intn(len(f.way))]
	}
	return f.wall[f.usage.Intn(len(f.wall))]
}

// NewNode builds a node of type t at p.
func (f *Factory) NewNode(p Position, t NodeType, isEnd bool) Node {
	return Node{
		Pos:    p,
		Type:   t,
		Reward: f.RewardFor(t, isEnd),
		Color:  f.ColorFor(t),
	}
}
