package mesh

import (
	"testing"

	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/terrain"
	"github.com/Faultbox/voxelcity/internal/voxel"
	"github.com/Faultbox/voxelcity/pkg/math"
)

func mustGrid(t *testing.T, w, h, d int) *voxel.Grid {
	t.Helper()
	g, err := voxel.New(voxel.Size{Width: w, Height: h, Depth: d})
	if err != nil {
		t.Fatalf("voxel.New: %v", err)
	}
	return g
}

func fill(g *voxel.Grid, id block.ID) {
	s := g.Size()
	for x := 0; x < s.Width; x++ {
		for y := 0; y < s.Height; y++ {
			for z := 0; z < s.Depth; z++ {
				g.SetBlock(x, y, z, id)
			}
		}
	}
}

func TestRebuildEmptyGrid(t *testing.T) {
	g := mustGrid(t, 4, 4, 4)
	if set := Rebuild(g); len(set) != 0 {
		t.Errorf("empty grid produced %d instances", len(set))
	}
}

func TestRebuildCullsInterior(t *testing.T) {
	// A solid 5x5x5 grid hides its 3x3x3 core; everything on the
	// boundary has an out-of-bounds neighbor and stays visible.
	g := mustGrid(t, 5, 5, 5)
	fill(g, block.Building)

	set := Rebuild(g)
	if len(set) != 125-27 {
		t.Fatalf("got %d instances, want %d", len(set), 125-27)
	}
	if c := g.Get(2, 2, 2); c.RenderSlot != voxel.NoSlot {
		t.Errorf("interior cell has slot %d", c.RenderSlot)
	}
	for _, in := range set {
		if in.Pos.X > 0 && in.Pos.X < 4 && in.Pos.Y > 0 && in.Pos.Y < 4 && in.Pos.Z > 0 && in.Pos.Z < 4 {
			t.Errorf("interior cell %v emitted", in.Pos)
		}
	}
}

func TestRebuildExposesCellNextToHole(t *testing.T) {
	g := mustGrid(t, 5, 5, 5)
	fill(g, block.Building)
	g.SetBlock(2, 3, 2, block.Empty)

	set := Rebuild(g)
	c := g.Get(2, 2, 2)
	if c.RenderSlot == voxel.NoSlot {
		t.Fatal("cell below the hole should be visible")
	}
	if got := set[c.RenderSlot].Pos; got != (math.Pos{X: 2, Y: 2, Z: 2}) {
		t.Errorf("slot points at %v", got)
	}
}

func TestRebuildOrderAndSlots(t *testing.T) {
	g := mustGrid(t, 3, 3, 3)
	g.SetBlock(2, 0, 0, block.Road)
	g.SetBlock(0, 1, 2, block.Tree)
	g.SetBlock(0, 1, 1, block.Grass)
	g.SetBlock(1, 0, 0, block.Dirt)

	set := Rebuild(g)
	want := []math.Pos{{X: 0, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 2}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}
	if len(set) != len(want) {
		t.Fatalf("got %d instances, want %d", len(set), len(want))
	}
	for i, p := range want {
		if set[i].Pos != p {
			t.Errorf("instance %d at %v, want %v", i, set[i].Pos, p)
		}
		if c := g.Get(p.X, p.Y, p.Z); c.RenderSlot != i {
			t.Errorf("cell %v slot = %d, want %d", p, c.RenderSlot, i)
		}
	}
	if set[0].Color != block.Hex(0x55aa55) || !set[0].HasColor {
		t.Errorf("grass instance color = %v", set[0].Color)
	}
}

func TestRebuildInvalidatesStaleSlots(t *testing.T) {
	g := mustGrid(t, 3, 3, 3)
	g.SetBlock(1, 1, 1, block.Roof)
	Rebuild(g)

	g.SetBlock(1, 1, 1, block.Empty)
	Rebuild(g)
	if c := g.Get(1, 1, 1); c.RenderSlot != voxel.NoSlot {
		t.Errorf("removed cell kept slot %d", c.RenderSlot)
	}
}

func TestRebuildUnknownKindDoesNotCrash(t *testing.T) {
	g := mustGrid(t, 2, 2, 2)
	g.SetBlock(0, 1, 0, block.ID(42))

	set := Rebuild(g)
	if len(set) != 1 {
		t.Fatalf("got %d instances, want 1", len(set))
	}
	if set[0].HasColor || set[0].Color != block.White {
		t.Errorf("unknown kind color = %v (has=%v), want default", set[0].Color, set[0].HasColor)
	}
}

func TestRebuildMatchesOcclusionRule(t *testing.T) {
	g := mustGrid(t, 32, 16, 32)
	terrain.Generate(g, terrain.DefaultParams())

	set := Rebuild(g)
	if len(set) != 3051 {
		t.Errorf("reference city produced %d instances, want 3051", len(set))
	}

	seen := make(map[math.Pos]int)
	for _, in := range set {
		seen[in.Pos]++
	}
	g.Each(func(x, y, z int, c *voxel.Cell) {
		p := math.Pos{X: x, Y: y, Z: z}
		visible := c.Block != block.Empty && !Occluded(g, x, y, z)
		if visible && seen[p] != 1 {
			t.Errorf("visible cell %v emitted %d times", p, seen[p])
		}
		if !visible && seen[p] != 0 {
			t.Errorf("hidden cell %v emitted", p)
		}
	})
}

func TestRebuildSmallWorld(t *testing.T) {
	g := mustGrid(t, 4, 4, 4)
	terrain.Generate(g, terrain.DefaultParams())

	set := Rebuild(g)
	if len(set) > 4*4*4 {
		t.Errorf("instance set larger than the grid: %d", len(set))
	}
	if len(set) != 56 {
		t.Errorf("got %d instances, want 56", len(set))
	}
}

func TestSinkFunc(t *testing.T) {
	var got InstanceSet
	var s Sink = SinkFunc(func(set InstanceSet) { got = set })
	s.Present(InstanceSet{{Block: block.Tree}})
	if len(got) != 1 || got[0].Block != block.Tree {
		t.Errorf("sink received %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := InstanceSet{{Block: block.Roof}}
	b := a.Clone()
	b[0].Block = block.Tree
	if a[0].Block != block.Roof {
		t.Error("Clone shares backing storage")
	}
	if InstanceSet(nil).Clone() != nil {
		t.Error("Clone(nil) should be nil")
	}
}
