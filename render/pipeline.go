// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// PipelineSpec collects every fixed-function setting the host needs to
// create the ribbon render pipeline and its buffers.
type PipelineSpec struct {
	// Label is a debug label for the pipeline.
	Label string

	// VertexEntry and FragmentEntry name the entry points in ShaderSource.
	VertexEntry   string
	FragmentEntry string

	// Buffers is the vertex buffer layout (see VertexLayout).
	Buffers []gputypes.VertexBufferLayout

	// Primitive is an indexed triangle list.
	Primitive gputypes.PrimitiveState

	// Multisample is SampleCount-x MSAA.
	Multisample gputypes.MultisampleState

	// Target is the color target in the host's surface format with
	// premultiplied alpha blending.
	Target gputypes.ColorTargetState

	// Uniforms is the bind group layout: the viewport uniform at
	// group(0) binding(0), visible to the vertex stage.
	Uniforms []gputypes.BindGroupLayoutEntry

	// VertexUsage and IndexUsage are the buffer usages for the mesh buffers.
	// Both include CopyDst so the host can append with queue writes.
	VertexUsage gputypes.BufferUsage
	IndexUsage  gputypes.BufferUsage

	// IndexFormat is always IndexFormatUint32.
	IndexFormat IndexFormat
}

// DefaultSurfaceFormat is used when the host reports no surface format.
const DefaultSurfaceFormat = gputypes.TextureFormatBGRA8Unorm

// NewPipelineSpec returns the ribbon pipeline description for the surface
// of h. A nil handle, or one that reports TextureFormatUndefined, yields
// DefaultSurfaceFormat.
func NewPipelineSpec(h DeviceHandle) PipelineSpec {
	format := DefaultSurfaceFormat
	if h != nil {
		if f := h.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			format = f
		}
	}

	blend := gputypes.BlendStatePremultiplied()
	return PipelineSpec{
		Label:         "ribbon_pipeline",
		VertexEntry:   VertexEntryPoint,
		FragmentEntry: FragmentEntryPoint,
		Buffers:       VertexLayout(),
		Primitive:     PrimitiveState(),
		Multisample:   MultisampleState(),
		Target: gputypes.ColorTargetState{
			Format:    format,
			Blend:     &blend,
			WriteMask: gputypes.ColorWriteMaskAll,
		},
		Uniforms: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
		VertexUsage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		IndexUsage:  gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
		IndexFormat: IndexFormatUint32,
	}
}
