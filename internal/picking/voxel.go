package picking

import (
	gomath "math"

	"github.com/Faultbox/voxelcity/pkg/math"
)

// SolidFunc reports whether the cell at (x,y,z) blocks rays.
type SolidFunc func(x, y, z int) bool

// Hit describes where a ray met a solid cell.
type Hit struct {
	Cell     math.Pos
	Normal   math.Pos // face normal; zero when the ray starts inside the cell
	Point    math.Vec3
	Distance float32
}

// Adjacent returns the cell in front of the hit face.
func (h Hit) Adjacent() math.Pos {
	return h.Cell.Add(h.Normal)
}

// CastVoxels walks the cells along r, nearest first, and returns the
// first one for which solid is true within maxDist.
func CastVoxels(r Ray, solid SolidFunc, maxDist float32) (Hit, bool) {
	dir := r.Direction.Normalize()
	if dir == (math.Vec3{}) || maxDist < 0 {
		return Hit{}, false
	}

	var (
		origin [3]float64
		d      [3]float64
		cell   [3]int
		step   [3]int
		tMax   [3]float64
		tDelta [3]float64
	)
	for i := 0; i < 3; i++ {
		// Shift by half a cell so cell boundaries sit on integers.
		origin[i] = float64(r.Origin.Axis(i)) + 0.5
		d[i] = float64(dir.Axis(i))
		cell[i] = int(gomath.Floor(origin[i]))

		switch {
		case d[i] > 0:
			step[i] = 1
			tMax[i] = (float64(cell[i]+1) - origin[i]) / d[i]
			tDelta[i] = 1 / d[i]
		case d[i] < 0:
			step[i] = -1
			tMax[i] = (origin[i] - float64(cell[i])) / -d[i]
			tDelta[i] = -1 / d[i]
		default:
			tMax[i] = gomath.Inf(1)
			tDelta[i] = gomath.Inf(1)
		}
	}

	var (
		t      float64
		normal math.Pos
		limit  = float64(maxDist)
	)
	for t <= limit {
		if solid(cell[0], cell[1], cell[2]) {
			dist := float32(t)
			return Hit{
				Cell:     math.Pos{X: cell[0], Y: cell[1], Z: cell[2]},
				Normal:   normal,
				Point:    r.Origin.Add(dir.Scale(dist)),
				Distance: dist,
			}, true
		}

		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}

		t = tMax[axis]
		cell[axis] += step[axis]
		tMax[axis] += tDelta[axis]

		normal = math.Pos{}
		switch axis {
		case 0:
			normal.X = -step[0]
		case 1:
			normal.Y = -step[1]
		default:
			normal.Z = -step[2]
		}
	}
	return Hit{}, false
}
