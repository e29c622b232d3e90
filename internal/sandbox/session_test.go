package sandbox

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/camera"
	"github.com/Faultbox/voxelcity/internal/gun"
	"github.com/Faultbox/voxelcity/internal/picking"
	"github.com/Faultbox/voxelcity/internal/terrain"
	"github.com/Faultbox/voxelcity/internal/voxel"
	"github.com/Faultbox/voxelcity/internal/world"
	"github.com/Faultbox/voxelcity/pkg/math"
)

// The reference city (seed 0, 32x16x32) has a five-high building at
// column (10,2) whose roof sits at y=5.
var above = math.Vec3{X: 10, Y: 20, Z: 2}

func newSession(t *testing.T) *Session {
	t.Helper()
	w, err := world.New(voxel.DefaultSize, terrain.DefaultParams())
	require.NoError(t, err)
	w.Generate()

	player := camera.NewFirstPersonCamera(above)
	player.Pitch = -gomath.Pi / 2

	return New(w, gun.New(gun.DefaultConfig()), camera.NewOrbitCamera(camera.DefaultEye, camera.DefaultTarget), player)
}

func down(from math.Vec3) picking.Ray {
	return picking.NewRay(from, math.Vec3{Y: -1})
}

func TestNewSessionDefaults(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, ToolBlock, s.Tool())
	assert.Equal(t, block.Building, s.SelectedBlock())
	assert.Same(t, s.Orbit(), s.Viewpoint())

	ray := s.ViewRay()
	assert.InDelta(t, 0, ray.Direction.Distance(s.Orbit().Forward()), 1e-5)
}

func TestPrimaryRemovesHitCell(t *testing.T) {
	s := newSession(t)
	require.Equal(t, block.Roof, s.World().BlockID(10, 5, 2))

	res := s.Pointer(PointerPrimary, down(above))
	assert.Equal(t, ActionRemove, res.Action)
	assert.Equal(t, math.Pos{X: 10, Y: 5, Z: 2}, res.Cell)
	assert.True(t, res.Applied)
	assert.Equal(t, block.Empty, s.World().BlockID(10, 5, 2))

	// The next press reaches the window underneath.
	res = s.Pointer(PointerPrimary, down(above))
	assert.Equal(t, math.Pos{X: 10, Y: 4, Z: 2}, res.Cell)
	assert.True(t, res.Applied)
}

func TestSecondaryPlacesSelectedKind(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.SelectBlock(block.Tree))

	res := s.Pointer(PointerSecondary, down(above))
	assert.Equal(t, ActionAdd, res.Action)
	assert.Equal(t, math.Pos{X: 10, Y: 6, Z: 2}, res.Cell)
	assert.True(t, res.Applied)
	assert.Equal(t, block.Tree, s.World().BlockID(10, 6, 2))
	assert.Equal(t, block.Roof, s.World().BlockID(10, 5, 2))
}

func TestPointerRejectedAndMissed(t *testing.T) {
	s := newSession(t)
	before := s.World().Snapshot()

	// Ground road cannot be removed.
	res := s.Pointer(PointerPrimary, down(math.Vec3{X: 7, Y: 20, Z: 0}))
	assert.Equal(t, ActionRemove, res.Action)
	assert.Equal(t, math.Pos{X: 7, Y: 0, Z: 0}, res.Cell)
	assert.False(t, res.Applied)

	// Looking at the sky hits nothing.
	res = s.Pointer(PointerPrimary, picking.NewRay(above, math.Vec3{Y: 1}))
	assert.Equal(t, Result{}, res)

	assert.Equal(t, before, s.World().Snapshot())
}

func TestGunTool(t *testing.T) {
	s := newSession(t)
	s.SelectGun()
	require.Equal(t, ToolGun, s.Tool())
	assert.Same(t, s.Player(), s.Viewpoint())

	res := s.Pointer(PointerPrimary, picking.Ray{})
	require.Equal(t, ActionFire, res.Action)
	require.True(t, res.Applied)
	assert.True(t, res.Shot.Hit)
	assert.Equal(t, math.Pos{X: 10, Y: 5, Z: 2}, res.Shot.Cell)
	assert.Equal(t, block.Roof, s.World().BlockID(10, 5, 2), "shots do not edit the world")

	res = s.Pointer(PointerPrimary, picking.Ray{})
	assert.False(t, res.Applied, "cooldown")

	s.Update(0.25)
	assert.True(t, s.Pointer(PointerPrimary, picking.Ray{}).Applied)

	assert.Equal(t, Result{}, s.Pointer(PointerSecondary, down(above)))
	assert.Equal(t, block.Empty, s.World().BlockID(10, 6, 2))

	v := s.Gun().Visuals()
	assert.Len(t, v.Tracers, 2)
	assert.Len(t, v.Markers, 2)
}

func TestClearKey(t *testing.T) {
	s := newSession(t)
	s.SelectGun()
	s.Pointer(PointerPrimary, picking.Ray{})
	require.NotEmpty(t, s.Gun().Visuals().Tracers)

	assert.False(t, s.Key("x"))
	assert.NotEmpty(t, s.Gun().Visuals().Tracers)

	assert.True(t, s.Key("L"))
	assert.Empty(t, s.Gun().Visuals().Tracers)
	assert.Empty(t, s.Gun().Visuals().Markers)
	assert.True(t, s.Key("l"))
}

func TestSelectBlockRejectsUnplaceable(t *testing.T) {
	s := newSession(t)
	s.SelectGun()

	for _, id := range []block.ID{block.Empty, block.ID(42)} {
		err := s.SelectBlock(id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotPlaceable))
	}
	assert.Equal(t, ToolGun, s.Tool())
	assert.Equal(t, block.Building, s.SelectedBlock())
}

func TestToolbar(t *testing.T) {
	s := newSession(t)
	bar := s.Toolbar()
	require.Len(t, bar, 9)

	assert.Equal(t, Button{Label: "Gun", Tool: ToolGun, Color: "#444444"}, bar[0])
	assert.Equal(t, Button{Label: "grass", Tool: ToolBlock, Block: block.Grass, Color: "#55aa55"}, bar[1])
	assert.Equal(t, "lamppost", bar[8].Label)
	assert.Equal(t, "#ffff99", bar[8].Color)

	require.NoError(t, s.Press(bar[0]))
	assert.Equal(t, ToolGun, s.Tool())
	require.NoError(t, s.Press(bar[7]))
	assert.Equal(t, ToolBlock, s.Tool())
	assert.Equal(t, block.Tree, s.SelectedBlock())
}

func TestApplySettings(t *testing.T) {
	s := newSession(t)
	st := s.Settings()
	assert.Equal(t, voxel.DefaultSize, st.Size)

	st.Terrain.Seed = 1234
	st.PlayerSpeed = 4
	require.NoError(t, s.ApplySettings(st))
	assert.Equal(t, 6, s.World().Stats().BlockSize)
	assert.Equal(t, 2807, s.World().InstanceCount())
	assert.Equal(t, float32(4), s.Player().MoveSpeed)

	st.Size = voxel.Size{Width: 8, Height: 8, Depth: 8}
	require.NoError(t, s.ApplySettings(st))
	assert.Len(t, s.World().Snapshot(), 8*8*8)
	assert.NotZero(t, s.World().InstanceCount())
}

func TestApplySettingsInvalidSize(t *testing.T) {
	s := newSession(t)
	st := s.Settings()
	st.Size.Height = 0
	st.Terrain.Seed = 99

	err := s.ApplySettings(st)
	require.Error(t, err)
	assert.True(t, errors.Is(err, voxel.ErrInvalidSize))
	assert.Equal(t, voxel.DefaultSize, s.World().Size())
	assert.Equal(t, int64(0), s.World().Params().Seed)
	assert.Equal(t, 3051, s.World().InstanceCount())
}
