// Package voxel implements the dense 3D block grid.
package voxel

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxelcity/internal/block"
)

// ErrInvalidSize is returned when any grid dimension is not positive.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// NoSlot marks a cell that has no instance in the current rebuild.
const NoSlot = -1

// Size holds grid dimensions in cells.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`
}

// DefaultSize is the 32x16x32 world.
var DefaultSize = Size{Width: 32, Height: 16, Depth: 32}

// Validate checks that every dimension is positive.
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Depth <= 0 {
		return fmt.Errorf("%w: got %dx%dx%d", ErrInvalidSize, s.Width, s.Height, s.Depth)
	}
	return nil
}

// Volume returns Width*Height*Depth.
func (s Size) Volume() int {
	return s.Width * s.Height * s.Depth
}

// Cell is one grid position.
type Cell struct {
	Block block.ID
	// RenderSlot is the cell's index in the last instance set, or NoSlot.
	RenderSlot int
}

// Grid is a flat x-major, then y, then z array of cells.
type Grid struct {
	size  Size
	cells []Cell
}

// New allocates an all-empty grid.
func New(size Size) (*Grid, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{
		size:  size,
		cells: make([]Cell, size.Volume()),
	}
	g.Reset()
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size {
	return g.size
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x,y,z) addresses a cell.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.size.Width &&
		y >= 0 && y < g.size.Height &&
		z >= 0 && z < g.size.Depth
}

func (g *Grid) index(x, y, z int) int {
	return (x*g.size.Height+y)*g.size.Depth + z
}

// Get returns the cell at (x,y,z), or nil when out of bounds.
// The pointer is valid until the grid is replaced.
func (g *Grid) Get(x, y, z int) *Cell {
	if !g.InBounds(x, y, z) {
		return nil
	}
	return &g.cells[g.index(x, y, z)]
}

// BlockAt returns the block id at (x,y,z) and whether the coordinate
// is in bounds.
func (g *Grid) BlockAt(x, y, z int) (block.ID, bool) {
	if !g.InBounds(x, y, z) {
		return block.Empty, false
	}
	return g.cells[g.index(x, y, z)].Block, true
}

// SetBlock assigns id to (x,y,z). Out of bounds is a no-op. A ground
// level (y=0) road cell is never overwritten.
func (g *Grid) SetBlock(x, y, z int, id block.ID) {
	if !g.InBounds(x, y, z) {
		return
	}
	c := &g.cells[g.index(x, y, z)]
	if y == 0 && c.Block == block.Road {
		return
	}
	c.Block = id
}

// SetRenderSlot records the instance index for (x,y,z).
func (g *Grid) SetRenderSlot(x, y, z, slot int) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.cells[g.index(x, y, z)].RenderSlot = slot
}

// ClearRenderSlots invalidates every render slot.
func (g *Grid) ClearRenderSlots() {
	for i := range g.cells {
		g.cells[i].RenderSlot = NoSlot
	}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{Block: block.Empty, RenderSlot: NoSlot}
	}
}

// Count returns how many cells hold id.
func (g *Grid) Count(id block.ID) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Block == id {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and block ids.
// Render slots are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Block != other.cells[i].Block {
			return false
		}
	}
	return true
}

// Each calls fn for every cell in x, y, z ascending order.
func (g *Grid) Each(fn func(x, y, z int, c *Cell)) {
	i := 0
	for x := 0; x < g.size.Width; x++ {
		for y := 0; y < g.size.Height; y++ {
			for z := 0; z < g.size.Depth; z++ {
				fn(x, y, z, &g.cells[i])
				i++
			}
		}
	}
}

// Blocks returns a copy of the block ids in storage order.
func (g *Grid) Blocks() []block.ID {
	out := make([]block.ID, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Block
	}
	return out
}
