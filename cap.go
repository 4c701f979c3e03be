// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ribbon

import (
	"log/slog"
	"math"
)

// emitCap appends a round cap around e.center as a triangle fan.
//
// The arc runs clockwise through half a turn, starting at vertex from (at
// angle start) and ending at vertex to, both of which already exist. A cap
// of n triangles adds the fan center plus n-1 arc vertices. n is even, so
// the cap keeps the vertex count even and the index count a multiple of 6.
func (g *Generator) emitCap(e end, from, to uint32, start float64) {
	n := g.cfg.capSegments
	base := uint32(g.store.VertexCount()) //nolint:gosec // vertex count fits uint32
	w := float32(e.half * 2)

	fan := make([]Vertex, 0, n)
	fan = append(fan, Vertex{X: float32(e.center.X), Y: float32(e.center.Y), Width: w})
	step := math.Pi / float64(n)
	for k := 1; k < n; k++ {
		s, c := math.Sincos(start - step*float64(k))
		fan = append(fan, Vertex{
			X:     float32(e.center.X + c*e.half),
			Y:     float32(e.center.Y + s*e.half),
			Width: w,
		})
	}
	for i := 0; i < n; i += 2 {
		g.store.appendVertices(fan[i], fan[i+1])
	}

	arc := func(k int) uint32 {
		switch k {
		case 0:
			return from
		case n:
			return to
		default:
			return base + uint32(k) //nolint:gosec // k < n
		}
	}
	for k := 0; k < n; k += 2 {
		g.store.appendTriangles(
			base, arc(k+1), arc(k),
			base, arc(k+2), arc(k+1),
		)
	}

	Logger().Debug("ribbon: cap emitted",
		slog.Float64("x", e.center.X), slog.Float64("y", e.center.Y),
		slog.Int("segments", n))
}
