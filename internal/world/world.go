// Package world owns the voxel grid and its instance set, and exposes
// generation plus single-block edits.
package world

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/logger"
	"github.com/Faultbox/voxelcity/internal/mesh"
	"github.com/Faultbox/voxelcity/internal/metrics"
	"github.com/Faultbox/voxelcity/internal/terrain"
	"github.com/Faultbox/voxelcity/internal/voxel"
)

// Option configures a World.
type Option func(*World)

// WithSink sends every rebuilt instance set to s.
func WithSink(s mesh.Sink) Option {
	return func(w *World) { w.sink = s }
}

// WithMetrics records activity in m.
func WithMetrics(m *metrics.World) Option {
	return func(w *World) { w.metrics = m }
}

// WithLogger overrides the component logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) { w.log = l }
}

// World is a single-session voxel city. It is not safe for concurrent
// use; all calls must come from one goroutine.
type World struct {
	size   voxel.Size
	params terrain.Params

	grid      *voxel.Grid
	instances mesh.InstanceSet
	stats     terrain.Stats

	sink    mesh.Sink
	metrics *metrics.World
	log     *zap.Logger
}

// New creates an empty world. It fails when any dimension of size is
// not positive. Call Generate to populate it.
func New(size voxel.Size, params terrain.Params, opts ...Option) (*World, error) {
	grid, err := voxel.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	w := &World{
		size:   size,
		params: params,
		grid:   grid,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = logger.Named("world")
	}
	if w.metrics == nil {
		w.metrics = metrics.NewWorld(nil)
	}
	return w, nil
}

// Size returns the current grid dimensions.
func (w *World) Size() voxel.Size {
	return w.size
}

// Params returns the current terrain parameters.
func (w *World) Params() terrain.Params {
	return w.params
}

// Stats returns the summary of the last generation.
func (w *World) Stats() terrain.Stats {
	return w.stats
}

// Resize replaces the grid with an empty one of the new size. The
// previous grid is kept when size is invalid.
func (w *World) Resize(size voxel.Size) error {
	grid, err := voxel.New(size)
	if err != nil {
		return fmt.Errorf("resizing world: %w", err)
	}
	w.size = size
	w.grid = grid
	w.instances = nil
	return nil
}

// SetParams replaces the terrain parameters used by the next Generate.
func (w *World) SetParams(p terrain.Params) {
	w.params = p
}

// Generate repaints the whole grid from the current size and parameters
// and rebuilds the instance set.
func (w *World) Generate() {
	start := time.Now()
	w.stats = terrain.Generate(w.grid, w.params)
	w.metrics.Generations.Inc()

	w.log.Debug("terrain generated",
		zap.Int64("seed", w.params.Seed),
		zap.Int("width", w.size.Width),
		zap.Int("height", w.size.Height),
		zap.Int("depth", w.size.Depth),
		zap.Int("block_size", w.stats.BlockSize),
		zap.Int("road_size", w.stats.RoadSize),
		zap.Duration("took", time.Since(start)),
	)

	w.rebuild()
}

// rebuild regenerates the instance set from the grid.
func (w *World) rebuild() {
	start := time.Now()
	w.instances = mesh.Rebuild(w.grid)
	took := time.Since(start)

	w.metrics.ObserveRebuild(took, len(w.instances))
	w.log.Debug("mesh rebuilt",
		zap.Int("instances", len(w.instances)),
		zap.Duration("took", took),
	)

	if w.sink != nil {
		w.sink.Present(w.instances.Clone())
	}
}

// Block returns a copy of the cell at (x,y,z) and false when the
// coordinate is out of bounds.
func (w *World) Block(x, y, z int) (voxel.Cell, bool) {
	c := w.grid.Get(x, y, z)
	if c == nil {
		return voxel.Cell{}, false
	}
	return *c, true
}

// BlockID returns the block id at (x,y,z); out of bounds reads as empty.
func (w *World) BlockID(x, y, z int) block.ID {
	id, _ := w.grid.BlockAt(x, y, z)
	return id
}

// Solid reports whether (x,y,z) is in bounds and non-empty.
func (w *World) Solid(x, y, z int) bool {
	id, ok := w.grid.BlockAt(x, y, z)
	return ok && id != block.Empty
}

// AddBlock places kind at an empty in-bounds cell and rebuilds the
// instance set. It reports whether the edit applied.
func (w *World) AddBlock(x, y, z int, kind block.ID) bool {
	c := w.grid.Get(x, y, z)
	ok := c != nil && c.Block == block.Empty
	w.metrics.ObserveEdit(metrics.OpAdd, ok)
	if !ok {
		return false
	}

	w.grid.SetBlock(x, y, z, kind)
	w.log.Debug("block added", zap.Int("x", x), zap.Int("y", y), zap.Int("z", z), zap.Stringer("kind", kind))
	w.rebuild()
	return true
}

// RemoveBlock clears an in-bounds cell above ground that is not road
// and rebuilds the instance set. It reports whether the edit applied.
func (w *World) RemoveBlock(x, y, z int) bool {
	c := w.grid.Get(x, y, z)
	ok := c != nil && y > 0 && c.Block != block.Road
	w.metrics.ObserveEdit(metrics.OpRemove, ok)
	if !ok {
		return false
	}

	w.grid.SetBlock(x, y, z, block.Empty)
	w.log.Debug("block removed", zap.Int("x", x), zap.Int("y", y), zap.Int("z", z))
	w.rebuild()
	return true
}

// Instances returns a copy of the current instance set.
func (w *World) Instances() mesh.InstanceSet {
	return w.instances.Clone()
}

// InstanceCount returns the size of the current instance set.
func (w *World) InstanceCount() int {
	return len(w.instances)
}

// Snapshot returns the block ids in grid storage order.
func (w *World) Snapshot() []block.ID {
	return w.grid.Blocks()
}
