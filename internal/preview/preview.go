// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview rasterizes ribbon meshes on the CPU.
//
// It draws exactly the triangles a GPU would receive, which makes it useful
// for offline previews and for checking coverage in tests. It is not a
// replacement for the GPU path: there is no shading and no MSAA beyond the
// analytic coverage of x/image/vector.
package preview

import (
	"image"
	"image/color"
	"log/slog"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/ribbon"
)

// NewCanvas returns a w x h RGBA image filled with bg.
func NewCanvas(w, h int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	return dst
}

// Render composites the triangles of m onto dst in color c.
// Vertex coordinates are surface coordinates relative to dst.Bounds().Min.
//
// All triangles go into one rasterizer pass; since ribbon triangles share a
// winding, shared edges accumulate to full coverage without seams.
func Render(dst xdraw.Image, m ribbon.Mesh, c color.Color) {
	if m.Empty() {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())

	ox, oy := float32(b.Min.X), float32(b.Min.Y)
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := m.Vertices[m.Indices[t]]
		p := m.Vertices[m.Indices[t+1]]
		q := m.Vertices[m.Indices[t+2]]
		r.MoveTo(a.X-ox, a.Y-oy)
		r.LineTo(p.X-ox, p.Y-oy)
		r.LineTo(q.X-ox, q.Y-oy)
		r.ClosePath()
	}
	r.Draw(dst, b, image.NewUniform(c), image.Point{})

	ribbon.Logger().Debug("preview: mesh rendered",
		slog.Int("triangles", m.TriangleCount()),
		slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
}

// Downsample scales src into dst with Catmull-Rom filtering. Rendering at a
// multiple of the output size and downsampling approximates the GPU's MSAA.
func Downsample(dst xdraw.Image, src image.Image) {
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}
