// Package terrain paints a voxel grid with a deterministic city layout:
// a road lattice separating blocks that are parks, empty lots or
// buildings.
package terrain

import (
	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/voxel"
	"github.com/Faultbox/voxelcity/pkg/rng"
)

// Layout constants.
const (
	BlockSizeMin = 5
	BlockSizeMax = 7
	RoadSizeMin  = 2
	RoadSizeMax  = 3

	decorationSpacing = 6
	decorationChance  = 0.5
	treeChance        = 0.5 // tree vs lamppost on roads

	parkThreshold = 0.2
	lotThreshold  = 0.4
	parkTreeProb  = 0.15

	skyscraperChance = 0.2
	skyscraperBase   = 20
	skyscraperSpread = 20
	houseBase        = 4
	houseSpread      = 3

	zoneSeedX = 23
	zoneSeedZ = 17
)

// Params configures generation. Only Seed drives the city layout;
// Scale, Magnitude and Offset are kept for noise-based generators.
type Params struct {
	Seed      int64   `yaml:"seed"`
	Scale     float64 `yaml:"scale"`
	Magnitude float64 `yaml:"magnitude"`
	Offset    float64 `yaml:"offset"`
}

// DefaultParams returns the stock terrain settings.
func DefaultParams() Params {
	return Params{
		Seed:      0,
		Scale:     30,
		Magnitude: 0.5,
		Offset:    0.2,
	}
}

// Zone classifies a non-road column.
type Zone int

const (
	ZoneRoad Zone = iota
	ZonePark
	ZoneLot
	ZoneBuilding
)

func (z Zone) String() string {
	switch z {
	case ZoneRoad:
		return "road"
	case ZonePark:
		return "park"
	case ZoneLot:
		return "lot"
	case ZoneBuilding:
		return "building"
	default:
		return "unknown"
	}
}

// Stats summarizes one generation pass in columns.
type Stats struct {
	BlockSize   int
	RoadSize    int
	Columns     map[Zone]int
	Skyscrapers int
	Decorations int
	MaxHeight   int
}

// ZoneSeed is the reseed value for the city block at (blockX, blockZ).
func ZoneSeed(blockX, blockZ int) int64 {
	return int64(blockX*zoneSeedX + blockZ*zoneSeedZ)
}

// Generate resets g and paints the city described by p.
//
// A single generator serves the whole pass. It is seeded from p.Seed,
// and every non-road column reseeds it with that column's zone seed, so
// zone kind and building height depend only on the block coordinates
// while road decorations continue from whatever state the generator is
// left in. Output reproducibility depends on keeping both behaviors.
func Generate(g *voxel.Grid, p Params) Stats {
	g.Reset()
	size := g.Size()

	r := rng.New(p.Seed)
	blockSize := r.Range(BlockSizeMin, BlockSizeMax)
	roadSize := r.Range(RoadSizeMin, RoadSizeMax)
	pattern := blockSize + roadSize

	stats := Stats{
		BlockSize: blockSize,
		RoadSize:  roadSize,
		Columns:   make(map[Zone]int, 4),
	}

	for x := 0; x < size.Width; x++ {
		for z := 0; z < size.Depth; z++ {
			if x%pattern >= blockSize || z%pattern >= blockSize {
				stats.Columns[ZoneRoad]++
				g.SetBlock(x, 0, z, block.Road)

				if (x+z)%decorationSpacing == 0 && r.Chance(decorationChance) {
					deco := block.Lamppost
					if r.Chance(treeChance) {
						deco = block.Tree
					}
					g.SetBlock(x, 1, z, deco)
					stats.Decorations++
				}
				continue
			}

			r.Seed(ZoneSeed(x/pattern, z/pattern))
			zone := r.Random()

			switch {
			case zone < parkThreshold:
				stats.Columns[ZonePark]++
				g.SetBlock(x, 0, z, block.Grass)
				if r.Chance(parkTreeProb) {
					g.SetBlock(x, 1, z, block.Tree)
					stats.Decorations++
				}

			case zone < lotThreshold:
				stats.Columns[ZoneLot]++
				g.SetBlock(x, 0, z, block.Dirt)

			default:
				stats.Columns[ZoneBuilding]++
				var height int
				if r.Chance(skyscraperChance) {
					height = skyscraperBase + r.Intn(skyscraperSpread)
					stats.Skyscrapers++
				} else {
					height = houseBase + r.Intn(houseSpread)
				}
				if height > stats.MaxHeight {
					stats.MaxHeight = height
				}
				paintBuilding(g, x, z, height)
				g.SetBlock(x, 0, z, block.Dirt)
			}
		}
	}

	return stats
}

// paintBuilding fills y=1..height. The top layer is roof and the two
// layers beneath it are windows. Layers above the grid are dropped.
func paintBuilding(g *voxel.Grid, x, z, height int) {
	for y := 1; y <= height; y++ {
		switch {
		case y == height:
			g.SetBlock(x, y, z, block.Roof)
		case y >= height-2:
			g.SetBlock(x, y, z, block.Window)
		default:
			g.SetBlock(x, y, z, block.Building)
		}
	}
}
