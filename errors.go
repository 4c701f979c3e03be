// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ribbon

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPoint is returned by AddKeyVertex for a sample that cannot be
// turned into geometry: NaN or infinite coordinates, coordinates outside the
// float32 range, or a NaN, infinite or negative width. The sample is skipped
// and the mesh is left untouched.
var ErrInvalidPoint = errors.New("ribbon: invalid key point")

// finite32 reports whether f is finite and representable as a finite float32.
func finite32(f float64) bool {
	return !math.IsNaN(f) && math.Abs(f) <= math.MaxFloat32
}

// validatePoint checks that p can be converted into vertices.
func validatePoint(p KeyPoint) error {
	if !finite32(p.X) || !finite32(p.Y) {
		return fmt.Errorf("%w: position (%v, %v)", ErrInvalidPoint, p.X, p.Y)
	}
	if !finite32(p.Width) || p.Width < 0 {
		return fmt.Errorf("%w: width %v", ErrInvalidPoint, p.Width)
	}
	return nil
}
