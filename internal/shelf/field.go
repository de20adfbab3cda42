package shelf

import (
	"math"
	"math/rand"
)

// Particle field defaults. All of them can be overridden through FieldConfig.
const (
	DefaultParticleCount  = 150
	DefaultMaxDepth       = 2000.0
	DefaultFocal          = 300.0
	DefaultWarpMultiplier = 12.0
)

// Particle is one star in the background field. X and Y are planar offsets
// from the viewport center; Depth shrinks every tick until the particle
// crosses the near plane and is recycled back to the far plane. The field
// never destroys particles, so its size stays constant for its lifetime.
type Particle struct {
	X, Y  float64
	Depth float64
	Size  float64
	Speed float64
}

// FieldConfig carries the tunables for the starfield simulation.
type FieldConfig struct {
	Count          int
	MaxDepth       float64
	Focal          float64
	WarpMultiplier float64
	Seed           int64
}

func (c FieldConfig) withDefaults() FieldConfig {
	if c.Count <= 0 {
		c.Count = DefaultParticleCount
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Focal <= 0 {
		c.Focal = DefaultFocal
	}
	if c.WarpMultiplier <= 0 {
		c.WarpMultiplier = DefaultWarpMultiplier
	}
	return c
}

// Projected is a particle mapped to screen space via perspective divide.
// TrailX and TrailY hold the particle's position one tick earlier so warp
// streaks can be drawn as a line segment; outside warp they equal X and Y.
type Projected struct {
	X, Y           int
	TrailX, TrailY int
	Size           float64
	Opacity        float64
}

// Field simulates the depth-sorted starfield behind the navigator. All
// state is owned by the field and advanced explicitly by the caller's frame
// scheduler; the field itself spawns no goroutines and holds no timers, so
// stopping the scheduler is all the teardown it needs.
type Field struct {
	cfg    FieldConfig
	stars  []Particle
	width  int
	height int
	warp   bool
	rng    *rand.Rand
}

// NewField allocates the particle set for the given viewport. Initial planar
// positions span twice the viewport extent so particles drifting in from
// off-screen are plausible; depth is uniform over (0, MaxDepth].
func NewField(cfg FieldConfig, width, height int) *Field {
	cfg = cfg.withDefaults()
	f := &Field{
		cfg:    cfg,
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	f.stars = make([]Particle, cfg.Count)
	for i := range f.stars {
		f.stars[i] = f.spawn()
	}
	return f
}

func (f *Field) spawn() Particle {
	w := float64(f.width)
	h := float64(f.height)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Particle{
		X:     (f.rng.Float64()*2 - 1) * w,
		Y:     (f.rng.Float64()*2 - 1) * h,
		Depth: f.cfg.MaxDepth * (1 - f.rng.Float64()), // uniform over (0, MaxDepth]
		Size:  0.5 + f.rng.Float64()*1.5,
		Speed: 2 + f.rng.Float64()*6,
	}
}

// SetWarp tells the field whether a navigation transition is in flight.
// While set, every tick advances depth by the warp multiplier.
func (f *Field) SetWarp(on bool) { f.warp = on }

// Warp reports the current warp flag.
func (f *Field) Warp() bool { return f.warp }

// Resize updates the projection center and clipping bounds. Particle state
// is untouched, so the field survives viewport changes mid-flight.
func (f *Field) Resize(width, height int) {
	f.width = width
	f.height = height
}

// Advance runs one simulation tick. Depth decreases monotonically; a
// particle reaching the near plane is recycled to exactly MaxDepth with its
// other fields unchanged, keeping the population constant.
func (f *Field) Advance() {
	mult := 1.0
	if f.warp {
		mult = f.cfg.WarpMultiplier
	}
	for i := range f.stars {
		p := &f.stars[i]
		p.Depth -= p.Speed * mult
		if p.Depth <= 0 {
			p.Depth = f.cfg.MaxDepth
		}
	}
}

// Center returns the projection center in screen coordinates.
func (f *Field) Center() (int, int) {
	return f.width / 2, f.height / 2
}

// Project maps every particle to screen space. Particles landing outside
// the viewport are skipped for drawing but stay in the simulation. Opacity
// runs from 0 at the far plane to 1 at the near plane, so freshly recycled
// particles fade in rather than popping.
func (f *Field) Project() []Projected {
	if f.width <= 0 || f.height <= 0 {
		return nil
	}
	cx, cy := f.Center()
	mult := 1.0
	if f.warp {
		mult = f.cfg.WarpMultiplier
	}
	out := make([]Projected, 0, len(f.stars))
	for _, p := range f.stars {
		scale := f.cfg.Focal / p.Depth
		x := int(math.Round(p.X*scale)) + cx
		y := int(math.Round(p.Y*scale)) + cy
		if x < 0 || y < 0 || x >= f.width || y >= f.height {
			continue
		}
		tx, ty := x, y
		if f.warp {
			prevDepth := p.Depth + p.Speed*mult
			if prevDepth > f.cfg.MaxDepth {
				prevDepth = f.cfg.MaxDepth
			}
			prevScale := f.cfg.Focal / prevDepth
			tx = int(math.Round(p.X*prevScale)) + cx
			ty = int(math.Round(p.Y*prevScale)) + cy
		}
		out = append(out, Projected{
			X:       x,
			Y:       y,
			TrailX:  tx,
			TrailY:  ty,
			Size:    p.Size * scale,
			Opacity: (f.cfg.MaxDepth - p.Depth) / f.cfg.MaxDepth,
		})
	}
	return out
}

// Particles returns a copy of the simulation state for inspection.
func (f *Field) Particles() []Particle {
	dup := make([]Particle, len(f.stars))
	copy(dup, f.stars)
	return dup
}

// MaxDepth exposes the configured far plane.
func (f *Field) MaxDepth() float64 { return f.cfg.MaxDepth }
