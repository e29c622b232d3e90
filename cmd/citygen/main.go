// Package main is the headless voxel city generator.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/config"
	"github.com/Faultbox/voxelcity/internal/logger"
	"github.com/Faultbox/voxelcity/internal/sandbox"
	"github.com/Faultbox/voxelcity/internal/terrain"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Voxel City ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	reg := prometheus.NewRegistry()
	s, err := sandbox.FromConfig(cfg, reg, nil)
	if err != nil {
		logger.Error("failed to create session", zap.Error(err))
		os.Exit(1)
	}

	w := s.World()
	w.Generate()

	stats := w.Stats()
	logger.Info("city generated",
		zap.Int64("seed", cfg.Terrain.Seed),
		zap.Int("width", cfg.World.Width),
		zap.Int("height", cfg.World.Height),
		zap.Int("depth", cfg.World.Depth),
		zap.Int("block_size", stats.BlockSize),
		zap.Int("road_size", stats.RoadSize),
		zap.Int("skyscrapers", stats.Skyscrapers),
		zap.Int("decorations", stats.Decorations),
		zap.Int("instances", w.InstanceCount()),
	)
	for _, z := range []terrain.Zone{terrain.ZoneRoad, terrain.ZonePark, terrain.ZoneLot, terrain.ZoneBuilding} {
		logger.Debug("zone columns", zap.Stringer("zone", z), zap.Int("columns", stats.Columns[z]))
	}
	for _, k := range block.All() {
		if k.ID == block.Empty {
			continue
		}
		logger.Debug("block count", zap.String("kind", k.Name), zap.Int("count", countKind(w.Snapshot(), k.ID)))
	}

	if cfg.Output.Map {
		if err := writeTopDown(os.Stdout, w); err != nil {
			logger.Error("failed to print map", zap.Error(err))
			os.Exit(1)
		}
	}

	if cfg.Output.Metrics {
		if err := writeMetrics(os.Stdout, reg); err != nil {
			logger.Error("failed to print metrics", zap.Error(err))
			os.Exit(1)
		}
	}
}

func countKind(ids []block.ID, kind block.ID) int {
	n := 0
	for _, id := range ids {
		if id == kind {
			n++
		}
	}
	return n
}
