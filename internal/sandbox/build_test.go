package sandbox

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/voxelcity/internal/config"
	"github.com/Faultbox/voxelcity/internal/mesh"
	"github.com/Faultbox/voxelcity/internal/voxel"
)

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World = voxel.Size{Width: 8, Height: 8, Depth: 8}
	cfg.Camera.PlayerSpeed = 3

	reg := prometheus.NewRegistry()
	var presented []mesh.InstanceSet
	sink := mesh.SinkFunc(func(set mesh.InstanceSet) { presented = append(presented, set) })

	s, err := FromConfig(cfg, reg, sink)
	require.NoError(t, err)
	assert.Equal(t, cfg.World, s.World().Size())
	assert.Equal(t, float32(3), s.Player().MoveSpeed)
	assert.Equal(t, cfg.Camera.Player, s.Player().Position())
	assert.Equal(t, cfg.Gun, s.Gun().Config())

	s.World().Generate()
	require.Len(t, presented, 1)
	assert.Len(t, presented[0], s.World().InstanceCount())

	n, err := testutil.GatherAndCount(reg, "voxelcity_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = testutil.GatherAndCount(reg, "voxelcity_gun_shots_total")
	require.NoError(t, err)
	assert.Zero(t, n, "no shots yet")
}

func TestFromConfigInvalidSize(t *testing.T) {
	cfg := config.Default()
	cfg.World.Width = 0
	_, err := FromConfig(cfg, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, voxel.ErrInvalidSize))
}
