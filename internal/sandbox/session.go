// Package sandbox wires the world, the gun and the two viewpoints into
// one interactive session driven by pointer, key and settings events.
package sandbox

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/camera"
	"github.com/Faultbox/voxelcity/internal/gun"
	"github.com/Faultbox/voxelcity/internal/logger"
	"github.com/Faultbox/voxelcity/internal/picking"
	"github.com/Faultbox/voxelcity/internal/terrain"
	"github.com/Faultbox/voxelcity/internal/voxel"
	"github.com/Faultbox/voxelcity/internal/world"
	"github.com/Faultbox/voxelcity/pkg/math"
)

// EditRange is how far pointer edits reach.
const EditRange = 1000

// ErrNotPlaceable is returned when selecting a block id that is not a
// non-empty registry kind.
var ErrNotPlaceable = errors.New("block kind cannot be placed")

// Tool is the active toolbar tool.
type Tool int

// Tools.
const (
	ToolBlock Tool = iota
	ToolGun
)

func (t Tool) String() string {
	if t == ToolGun {
		return "gun"
	}
	return "block"
}

// PointerButton identifies a pointer button.
type PointerButton int

// Pointer buttons.
const (
	PointerPrimary PointerButton = iota
	PointerSecondary
)

// Action is what a pointer event did.
type Action int

// Actions.
const (
	ActionNone Action = iota
	ActionFire
	ActionRemove
	ActionAdd
)

func (a Action) String() string {
	switch a {
	case ActionFire:
		return "fire"
	case ActionRemove:
		return "remove"
	case ActionAdd:
		return "add"
	default:
		return "none"
	}
}

// Result reports the outcome of a pointer event.
type Result struct {
	Action  Action
	Cell    math.Pos // edited cell for add/remove
	Applied bool     // the edit or shot took effect
	Shot    gun.Shot // valid for ActionFire when Applied
}

// Button is one toolbar entry.
type Button struct {
	Label string
	Tool  Tool
	Block block.ID // empty for the gun
	Color string   // #rrggbb background
}

// Settings are the user-adjustable world parameters.
type Settings struct {
	Size        voxel.Size
	Terrain     terrain.Params
	PlayerSpeed float32
}

// Session is a single interactive sandbox. Like World, it is not safe
// for concurrent use.
type Session struct {
	world  *world.World
	gun    *gun.Gun
	orbit  *camera.OrbitCamera
	player *camera.FirstPersonCamera

	tool     Tool
	selected block.ID

	log *zap.Logger
}

// New creates a session with the block tool active and building
// selected.
func New(w *world.World, g *gun.Gun, orbit *camera.OrbitCamera, player *camera.FirstPersonCamera) *Session {
	return &Session{
		world:    w,
		gun:      g,
		orbit:    orbit,
		player:   player,
		tool:     ToolBlock,
		selected: block.Building,
		log:      logger.Named("sandbox"),
	}
}

// World returns the session world.
func (s *Session) World() *world.World { return s.world }

// Gun returns the session gun.
func (s *Session) Gun() *gun.Gun { return s.gun }

// Orbit returns the orbit viewpoint.
func (s *Session) Orbit() *camera.OrbitCamera { return s.orbit }

// Player returns the first-person viewpoint.
func (s *Session) Player() *camera.FirstPersonCamera { return s.player }

// Tool returns the active tool.
func (s *Session) Tool() Tool { return s.tool }

// SelectedBlock returns the kind placed by the block tool.
func (s *Session) SelectedBlock() block.ID { return s.selected }

// SelectGun activates the gun tool.
func (s *Session) SelectGun() {
	s.tool = ToolGun
	s.log.Debug("tool selected", zap.Stringer("tool", s.tool))
}

// SelectBlock activates the block tool with kind id.
func (s *Session) SelectBlock(id block.ID) error {
	if id == block.Empty || !block.IsValid(id) {
		return fmt.Errorf("selecting %s: %w", id, ErrNotPlaceable)
	}
	s.tool = ToolBlock
	s.selected = id
	s.log.Debug("block selected", zap.Stringer("kind", id))
	return nil
}

// Press activates a toolbar button.
func (s *Session) Press(b Button) error {
	if b.Tool == ToolGun {
		s.SelectGun()
		return nil
	}
	return s.SelectBlock(b.Block)
}

// Viewpoint returns the first-person camera while the gun is active and
// the orbit camera otherwise.
func (s *Session) Viewpoint() camera.Viewpoint {
	if s.tool == ToolGun {
		return s.player
	}
	return s.orbit
}

// ViewRay returns the ray through the center of the active viewpoint.
func (s *Session) ViewRay() picking.Ray {
	v := s.Viewpoint()
	return picking.NewRay(v.Position(), v.Forward())
}

// Pointer handles a button press along ray. With the gun tool the
// primary button fires from the first-person camera; with the block
// tool the primary button removes the hit cell and the secondary button
// places the selected kind in front of the hit face.
func (s *Session) Pointer(button PointerButton, ray picking.Ray) Result {
	if s.tool == ToolGun {
		if button != PointerPrimary {
			return Result{}
		}
		shot, ok := s.gun.Fire(s.player, s.world.Solid)
		return Result{Action: ActionFire, Applied: ok, Shot: shot}
	}

	hit, ok := picking.CastVoxels(ray, s.world.Solid, EditRange)
	if !ok {
		return Result{}
	}

	switch button {
	case PointerPrimary:
		c := hit.Cell
		return Result{Action: ActionRemove, Cell: c, Applied: s.world.RemoveBlock(c.X, c.Y, c.Z)}
	case PointerSecondary:
		c := hit.Adjacent()
		return Result{Action: ActionAdd, Cell: c, Applied: s.world.AddBlock(c.X, c.Y, c.Z, s.selected)}
	default:
		return Result{}
	}
}

// Key handles a key press and reports whether it was bound.
func (s *Session) Key(key string) bool {
	if strings.EqualFold(key, "l") {
		s.gun.ClearVisuals()
		return true
	}
	return false
}

// Update advances per-frame state by dt seconds.
func (s *Session) Update(dt float64) {
	s.gun.Update(dt)
}

// Settings returns the current world settings.
func (s *Session) Settings() Settings {
	return Settings{
		Size:        s.world.Size(),
		Terrain:     s.world.Params(),
		PlayerSpeed: s.player.MoveSpeed,
	}
}

// ApplySettings resizes the world when needed, stores the terrain
// parameters and regenerates. Nothing changes when the size is invalid.
func (s *Session) ApplySettings(st Settings) error {
	if st.Size != s.world.Size() {
		if err := s.world.Resize(st.Size); err != nil {
			return fmt.Errorf("applying settings: %w", err)
		}
	}
	s.world.SetParams(st.Terrain)
	if st.PlayerSpeed > 0 {
		s.player.MoveSpeed = st.PlayerSpeed
	}
	s.world.Generate()

	s.log.Info("settings applied",
		zap.Int("width", st.Size.Width),
		zap.Int("height", st.Size.Height),
		zap.Int("depth", st.Size.Depth),
		zap.Int64("seed", st.Terrain.Seed),
		zap.Int("instances", s.world.InstanceCount()),
	)
	return nil
}

// Toolbar lists the gun followed by every placeable kind.
func (s *Session) Toolbar() []Button {
	buttons := []Button{{Label: "Gun", Tool: ToolGun, Color: "#444444"}}
	for _, k := range block.All() {
		if k.ID == block.Empty {
			continue
		}
		buttons = append(buttons, Button{
			Label: k.Name,
			Tool:  ToolBlock,
			Block: k.ID,
			Color: k.Color.String(),
		})
	}
	return buttons
}
