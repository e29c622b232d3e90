// Package mesh turns a voxel grid into the instance set a renderer
// draws: one unit cube per visible block.
package mesh

import (
	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/voxel"
	"github.com/Faultbox/voxelcity/pkg/math"
)

// Instance is one visible block.
type Instance struct {
	Pos      math.Pos
	Block    block.ID
	Color    block.RGB
	HasColor bool
}

// InstanceSet is the ordered output of one rebuild.
type InstanceSet []Instance

// Sink receives every rebuilt instance set. Renderers implement it.
type Sink interface {
	Present(set InstanceSet)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(set InstanceSet)

// Present calls f(set).
func (f SinkFunc) Present(set InstanceSet) {
	f(set)
}

// Occluded reports whether the block at (x,y,z) is hidden: all six
// face neighbors exist and are non-empty.
func Occluded(g *voxel.Grid, x, y, z int) bool {
	for _, o := range math.FaceOffsets {
		id, ok := g.BlockAt(x+o.X, y+o.Y, z+o.Z)
		if !ok || id == block.Empty {
			return false
		}
	}
	return true
}

// Rebuild scans g in x, y, z ascending order and returns every visible
// non-empty cell. All render slots are invalidated first; each emitted
// cell then records its index in the returned set.
func Rebuild(g *voxel.Grid) InstanceSet {
	g.ClearRenderSlots()

	set := make(InstanceSet, 0, estimate(g.Size()))
	g.Each(func(x, y, z int, c *voxel.Cell) {
		if c.Block == block.Empty || Occluded(g, x, y, z) {
			return
		}
		color, has := block.ColorOf(c.Block)
		c.RenderSlot = len(set)
		set = append(set, Instance{
			Pos:      math.Pos{X: x, Y: y, Z: z},
			Block:    c.Block,
			Color:    color,
			HasColor: has,
		})
	})
	return set
}

// estimate guesses the visible count as the grid's surface shell.
func estimate(s voxel.Size) int {
	n := 2 * (s.Width*s.Depth + s.Width*s.Height + s.Height*s.Depth)
	if v := s.Volume(); n > v {
		return v
	}
	return n
}

// Counts tallies instances per block kind.
func (s InstanceSet) Counts() map[block.ID]int {
	out := make(map[block.ID]int)
	for _, in := range s {
		out[in.Block]++
	}
	return out
}

// Clone returns an independent copy.
func (s InstanceSet) Clone() InstanceSet {
	if s == nil {
		return nil
	}
	out := make(InstanceSet, len(s))
	copy(out, s)
	return out
}
