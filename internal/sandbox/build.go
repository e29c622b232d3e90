package sandbox

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Faultbox/voxelcity/internal/camera"
	"github.com/Faultbox/voxelcity/internal/config"
	"github.com/Faultbox/voxelcity/internal/gun"
	"github.com/Faultbox/voxelcity/internal/mesh"
	"github.com/Faultbox/voxelcity/internal/metrics"
	"github.com/Faultbox/voxelcity/internal/world"
)

// FromConfig assembles a session from cfg. Metrics are registered with
// reg when it is not nil; sink, when not nil, receives every rebuilt
// instance set. The world is left empty until Generate or
// ApplySettings.
func FromConfig(cfg *config.Config, reg prometheus.Registerer, sink mesh.Sink) (*Session, error) {
	opts := []world.Option{world.WithMetrics(metrics.NewWorld(reg))}
	if sink != nil {
		opts = append(opts, world.WithSink(sink))
	}
	w, err := world.New(cfg.World, cfg.Terrain, opts...)
	if err != nil {
		return nil, fmt.Errorf("building session: %w", err)
	}

	g := gun.New(cfg.Gun, gun.WithMetrics(metrics.NewGun(reg)))

	player := camera.NewFirstPersonCamera(cfg.Camera.Player)
	if cfg.Camera.PlayerSpeed > 0 {
		player.MoveSpeed = cfg.Camera.PlayerSpeed
	}

	return New(w, g, camera.NewOrbitCamera(cfg.Camera.Eye, cfg.Camera.Target), player), nil
}
