// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/ribbon"
)

// EncodeVertices appends the GPU representation of vertices to dst[:0] and
// returns the result, growing dst only when its capacity is too small.
func EncodeVertices(dst []byte, vertices []ribbon.Vertex) []byte {
	dst = grow(dst, len(vertices)*VertexStride)
	for i, v := range vertices {
		off := i * VertexStride
		binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(dst[off+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(dst[off+8:], math.Float32bits(v.Width))
	}
	return dst
}

// EncodeIndices is EncodeVertices for a uint32 index buffer.
func EncodeIndices(dst []byte, indices []uint32) []byte {
	dst = grow(dst, len(indices)*IndexStride)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(dst[i*IndexStride:], idx)
	}
	return dst
}

// ViewportUniform returns the UniformSize-byte uniform buffer contents for v.
func ViewportUniform(v ribbon.Viewport) []byte {
	buf := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Width))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Height))
	// Padding bytes 8..15 remain zero.
	return buf
}

// grow returns dst resized to n bytes.
func grow(dst []byte, n int) []byte {
	if cap(dst) < n {
		return make([]byte, n)
	}
	return dst[:n]
}
