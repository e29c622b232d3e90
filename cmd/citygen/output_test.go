package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/metrics"
	"github.com/Faultbox/voxelcity/internal/terrain"
	"github.com/Faultbox/voxelcity/internal/voxel"
	"github.com/Faultbox/voxelcity/internal/world"
)

func TestWriteTopDown(t *testing.T) {
	w, err := world.New(voxel.DefaultSize, terrain.DefaultParams())
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	w.Generate()

	var buf bytes.Buffer
	if err := writeTopDown(&buf, w); err != nil {
		t.Fatalf("writeTopDown: %v", err)
	}

	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(rows) != 32 {
		t.Fatalf("rows = %d, want 32", len(rows))
	}
	for i, r := range rows {
		if len(r) != 32 {
			t.Fatalf("row %d has %d columns, want 32", i, len(r))
		}
	}

	tests := []struct {
		name string
		x, z int
		want byte
	}{
		{"road", 7, 0, '#'},
		{"park grass", 12, 11, '.'},
		{"park tree", 2, 11, 'T'},
		{"road lamppost", 5, 7, 'i'},
		{"empty lot", 28, 9, ','},
		{"clipped skyscraper", 0, 0, 'B'},
		{"small building roof", 10, 2, '^'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rows[tt.z][tt.x]; got != tt.want {
				t.Errorf("glyph at (%d,%d) = %q, want %q", tt.x, tt.z, got, tt.want)
			}
		})
	}
}

func TestTopBlockEmptyColumn(t *testing.T) {
	w, err := world.New(voxel.Size{Width: 2, Height: 2, Depth: 2}, terrain.DefaultParams())
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	if got := topBlock(w, 0, 0); got != block.Empty {
		t.Errorf("topBlock = %v, want empty", got)
	}
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWorld(reg)
	m.Generations.Inc()

	var buf bytes.Buffer
	if err := writeMetrics(&buf, reg); err != nil {
		t.Fatalf("writeMetrics: %v", err)
	}
	if !strings.Contains(buf.String(), "voxelcity_generations_total 1") {
		t.Errorf("missing generations counter in:\n%s", buf.String())
	}
}

func TestCountKind(t *testing.T) {
	ids := []block.ID{block.Road, block.Tree, block.Road, block.Empty}
	if got := countKind(ids, block.Road); got != 2 {
		t.Errorf("countKind = %d, want 2", got)
	}
}
