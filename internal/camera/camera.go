// Package camera provides the orbit and first-person viewpoints used for
// picking and firing. Projection is left to the renderer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/voxelcity/pkg/math"
)

// Viewpoint is anything that can cast a view ray.
type Viewpoint interface {
	Position() math.Vec3
	Forward() math.Vec3
}

// Default orbit placement.
var (
	DefaultEye    = math.Vec3{X: 64, Y: 64, Z: 64}
	DefaultTarget = math.Vec3{X: 16, Y: 8, Z: 16}
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera placed at eye and looking at
// target.
func NewOrbitCamera(eye, target math.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		MinDistance:     2.0,
		MaxDistance:     500.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	c.LookAt(eye, target)
	return c
}

// LookAt moves the camera to eye and orbits it around target.
func (c *OrbitCamera) LookAt(eye, target math.Vec3) {
	c.Center = target
	off := eye.Sub(target)
	c.Distance = off.Length()
	if c.Distance == 0 {
		c.RotationX, c.RotationY = 0, 0
		return
	}
	c.RotationX = float32(gomath.Asin(float64(off.Y / c.Distance)))
	c.RotationY = float32(gomath.Atan2(float64(off.X), float64(off.Z)))
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// Forward returns the unit view direction, from the eye to the center.
func (c *OrbitCamera) Forward() math.Vec3 {
	return c.Center.Sub(c.Position()).Normalize()
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FirstPersonCamera looks out from a free-moving eye.
type FirstPersonCamera struct {
	Eye   math.Vec3
	Yaw   float32 // radians, 0 looks down -Z
	Pitch float32 // radians, positive looks up

	MaxPitch        float32
	LookSensitivity float32
	MoveSpeed       float32 // units per second
}

// NewFirstPersonCamera creates a first-person camera at eye looking
// down -Z.
func NewFirstPersonCamera(eye math.Vec3) *FirstPersonCamera {
	return &FirstPersonCamera{
		Eye:             eye,
		MaxPitch:        1.55,
		LookSensitivity: 0.002,
		MoveSpeed:       10,
	}
}

// Position returns the eye position.
func (c *FirstPersonCamera) Position() math.Vec3 {
	return c.Eye
}

// Forward returns the unit view direction.
func (c *FirstPersonCamera) Forward() math.Vec3 {
	cp := gomath.Cos(float64(c.Pitch))
	return math.Vec3{
		X: float32(-gomath.Sin(float64(c.Yaw)) * cp),
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: float32(-gomath.Cos(float64(c.Yaw)) * cp),
	}
}

// Right returns the horizontal right direction.
func (c *FirstPersonCamera) Right() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Cos(float64(c.Yaw))),
		Z: float32(-gomath.Sin(float64(c.Yaw))),
	}
}

// HandleLook turns the camera by a pointer delta.
func (c *FirstPersonCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.LookSensitivity
	c.Pitch -= deltaY * c.LookSensitivity
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
}

// HandleMovement moves the eye along the horizontal forward and right
// axes and straight up, scaled by dt.
func (c *FirstPersonCamera) HandleMovement(forward, right, up, dt float32) {
	step := c.MoveSpeed * dt
	yaw := float64(c.Yaw)
	flat := math.Vec3{X: float32(-gomath.Sin(yaw)), Z: float32(-gomath.Cos(yaw))}

	c.Eye = c.Eye.
		Add(flat.Scale(forward * step)).
		Add(c.Right().Scale(right * step)).
		Add(math.Vec3{Y: up * step})
}
