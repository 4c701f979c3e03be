// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ribbon

// Viewport is the size of the rendering surface in surface units.
//
// It only maps surface coordinates into the GPU's clip space; the mesh
// itself never depends on it.
type Viewport struct {
	Width, Height float32
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// ToClip maps a surface position (origin top-left, y down) to clip space
// (origin center, y up, both axes in [-1, 1] on screen).
// An invalid viewport maps everything to the origin.
func (v Viewport) ToClip(x, y float32) (float32, float32) {
	if !v.Valid() {
		return 0, 0
	}
	return x/v.Width*2 - 1, 1 - y/v.Height*2
}
