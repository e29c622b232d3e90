// Package math provides vector and grid-coordinate types shared by the
// world, picking and camera packages.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Axis returns component i (0=X, 1=Y, 2=Z).
func (v Vec3) Axis(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Cell returns the grid cell containing v. Cells are unit cubes centered
// on integer coordinates, so the cell of a point is its rounded position.
func (v Vec3) Cell() Pos {
	return Pos{
		X: int(math.Floor(float64(v.X) + 0.5)),
		Y: int(math.Floor(float64(v.Y) + 0.5)),
		Z: int(math.Floor(float64(v.Z) + 0.5)),
	}
}

// Pos is an integer grid coordinate.
type Pos struct {
	X, Y, Z int
}

// Add returns p + other.
func (p Pos) Add(other Pos) Pos {
	return Pos{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}

// Vec returns the cell center in world space.
func (p Pos) Vec() Vec3 {
	return Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// FaceOffsets lists the six face-adjacent neighbor offsets:
// up, down, +X, -X, +Z, -Z.
var FaceOffsets = [6]Pos{
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
}
