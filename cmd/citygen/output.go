package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/Faultbox/voxelcity/internal/block"
	"github.com/Faultbox/voxelcity/internal/voxel"
)

// glyphs maps the topmost block of a column to a map character.
var glyphs = map[block.ID]byte{
	block.Empty:    ' ',
	block.Grass:    '.',
	block.Dirt:     ',',
	block.Road:     '#',
	block.Building: 'B',
	block.Window:   'W',
	block.Roof:     '^',
	block.Tree:     'T',
	block.Lamppost: 'i',
}

// columnReader is the part of the world the map needs.
type columnReader interface {
	Size() voxel.Size
	BlockID(x, y, z int) block.ID
}

// topBlock returns the highest non-empty block of column (x,z).
func topBlock(w columnReader, x, z int) block.ID {
	for y := w.Size().Height - 1; y >= 0; y-- {
		if id := w.BlockID(x, y, z); id != block.Empty {
			return id
		}
	}
	return block.Empty
}

// writeTopDown prints one row per z and one character per x.
func writeTopDown(out io.Writer, w columnReader) error {
	size := w.Size()
	bw := bufio.NewWriter(out)
	for z := 0; z < size.Depth; z++ {
		for x := 0; x < size.Width; x++ {
			g, ok := glyphs[topBlock(w, x, z)]
			if !ok {
				g = '?'
			}
			bw.WriteByte(g)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeMetrics prints everything in g in the text exposition format.
func writeMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(out, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
