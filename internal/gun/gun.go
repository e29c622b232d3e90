// Package gun implements the hitscan tool: a cooldown-limited ray cast
// from the viewpoint that leaves tracers and impact markers behind.
package gun

import (
	"go.uber.org/zap"

	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/camera"
	"github.com/Faultbox/voxelcity/internal/logger"
	"github.com/Faultbox/voxelcity/internal/metrics"
	"github.com/Faultbox/voxelcity/internal/picking"
	"github.com/Faultbox/voxelcity/pkg/math"
)

// Visual constants for the renderer.
const (
	TracerRadius = 0.03
	MarkerRadius = 0.15
)

// Visual colors.
var (
	TracerColor = block.Hex(0xff0000)
	HitColor    = block.Hex(0xff00ff)
	MissColor   = block.Hex(0xffff00)
)

// Config holds gun tuning.
type Config struct {
	Cooldown     float64 `yaml:"cooldown"` // seconds between shots
	MuzzleOffset float32 `yaml:"muzzle_offset"`
	MaxDistance  float32 `yaml:"max_distance"`
}

// DefaultConfig returns the stock gun tuning.
func DefaultConfig() Config {
	return Config{
		Cooldown:     0.25,
		MuzzleOffset: 0.5,
		MaxDistance:  100,
	}
}

// Tracer is a line from muzzle to impact.
type Tracer struct {
	Start, End math.Vec3
	Color      block.RGB
}

// Length returns the tracer length.
func (t Tracer) Length() float32 {
	return t.Start.Distance(t.End)
}

// Marker is a sphere left where a shot ended.
type Marker struct {
	Pos   math.Vec3
	Hit   bool
	Color block.RGB
}

// Visuals is everything the gun has left in the scene.
type Visuals struct {
	Tracers []Tracer
	Markers []Marker
}

// Shot is the outcome of one Fire.
type Shot struct {
	Origin math.Vec3
	End    math.Vec3
	Hit    bool
	Cell   math.Pos // valid when Hit
}

// Option configures a Gun.
type Option func(*Gun)

// WithMetrics records shots in m.
func WithMetrics(m *metrics.Gun) Option {
	return func(g *Gun) { g.metrics = m }
}

// WithLogger overrides the component logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gun) { g.log = l }
}

// Gun fires rays from a viewpoint into the world.
type Gun struct {
	cfg           Config
	sinceLastShot float64
	visuals       Visuals

	metrics *metrics.Gun
	log     *zap.Logger
}

// New creates a gun that is ready to fire.
func New(cfg Config, opts ...Option) *Gun {
	g := &Gun{
		cfg:           cfg,
		sinceLastShot: cfg.Cooldown,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.Named("gun")
	}
	if g.metrics == nil {
		g.metrics = metrics.NewGun(nil)
	}
	return g
}

// Config returns the gun tuning.
func (g *Gun) Config() Config {
	return g.cfg
}

// Update advances the cooldown clock by dt seconds.
func (g *Gun) Update(dt float64) {
	g.sinceLastShot += dt
}

// Ready reports whether the cooldown has elapsed.
func (g *Gun) Ready() bool {
	return g.sinceLastShot >= g.cfg.Cooldown
}

// Fire shoots along the view direction, starting MuzzleOffset in front
// of the eye. It returns false while cooling down or when the view has
// no direction.
func (g *Gun) Fire(view camera.Viewpoint, solid picking.SolidFunc) (Shot, bool) {
	if !g.Ready() {
		return Shot{}, false
	}
	dir := view.Forward().Normalize()
	if dir == (math.Vec3{}) {
		return Shot{}, false
	}
	g.sinceLastShot = 0

	origin := view.Position().Add(dir.Scale(g.cfg.MuzzleOffset))
	shot := Shot{Origin: origin}

	hit, ok := picking.CastVoxels(picking.Ray{Origin: origin, Direction: dir}, solid, g.cfg.MaxDistance)
	if ok {
		shot.Hit = true
		shot.Cell = hit.Cell
		shot.End = hit.Point
	} else {
		shot.End = origin.Add(dir.Scale(g.cfg.MaxDistance))
	}

	g.visuals.Tracers = append(g.visuals.Tracers, Tracer{Start: origin, End: shot.End, Color: TracerColor})
	marker := Marker{Pos: shot.End, Hit: shot.Hit, Color: MissColor}
	if shot.Hit {
		marker.Color = HitColor
	}
	g.visuals.Markers = append(g.visuals.Markers, marker)

	g.metrics.ObserveShot(shot.Hit)
	g.log.Debug("shot fired",
		zap.Bool("hit", shot.Hit),
		zap.Int("x", shot.Cell.X),
		zap.Int("y", shot.Cell.Y),
		zap.Int("z", shot.Cell.Z))
	return shot, true
}

// Visuals returns a copy of the current tracers and markers.
func (g *Gun) Visuals() Visuals {
	return Visuals{
		Tracers: append([]Tracer(nil), g.visuals.Tracers...),
		Markers: append([]Marker(nil), g.visuals.Markers...),
	}
}

// ClearVisuals removes every tracer and marker and returns how many
// objects were removed.
func (g *Gun) ClearVisuals() int {
	n := len(g.visuals.Tracers) + len(g.visuals.Markers)
	g.visuals = Visuals{}
	g.metrics.Clears.Inc()
	g.log.Debug("gun visuals cleared", zap.Int("removed", n))
	return n
}
