// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// VertexStride is the byte stride per ribbon vertex:
// 2 x float32 position + 1 x float32 width = 12 bytes.
const VertexStride = 12

// IndexStride is the byte size of one index.
const IndexStride = 4

// SampleCount is the MSAA sample count of the ribbon pipeline.
const SampleCount = 4

// IndexFormat specifies the format of index buffer elements.
type IndexFormat uint32

const (
	// IndexFormatUint16 uses 16-bit unsigned integers.
	IndexFormatUint16 IndexFormat = 0

	// IndexFormatUint32 uses 32-bit unsigned integers. Ribbon meshes always
	// use this format.
	IndexFormatUint32 IndexFormat = 1
)

// VertexLayout returns the vertex buffer layout of ribbon.Vertex:
// float32x2 position at location(0), float32 width at location(1).
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},   // width
			},
		},
	}
}

// PrimitiveState returns the primitive state for ribbon meshes: an indexed
// triangle list without culling. Ribbon triangles share one winding, so a
// host may enable back-face culling, but a self-crossing stroke then loses
// the crossing parts.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// MultisampleState returns SampleCount-x MSAA with all samples enabled.
func MultisampleState() gputypes.MultisampleState {
	return gputypes.MultisampleState{
		Count: SampleCount,
		Mask:  0xFFFFFFFF,
	}
}
