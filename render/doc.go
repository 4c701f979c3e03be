// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render describes how a ribbon mesh is handed to the GPU.
//
// The ribbon core produces plain Go slices. This package turns them into
// what a WebGPU host needs: the vertex buffer layout, primitive and
// multisample state, the WGSL shader (and its SPIR-V compilation), byte
// encodings of the buffers and of the viewport uniform, and an Uploader that
// tells the host whether a frame needs a full or an append-only upload.
//
// # Key Principle
//
// ribbon RECEIVES a GPU device from the host application, it does NOT
// create buffers or pipelines itself. NewPipelineSpec only reads the host's
// surface format through a DeviceHandle.
//
// # Usage
//
//	spec := render.NewPipelineSpec(gc.DeviceHandle())
//	// create the pipeline from spec.Buffers, spec.Primitive, spec.Target ...
//
//	var up render.Uploader
//	app.OnDraw(func(gc *gogpu.Context) {
//	    u := up.Prepare(g.Mesh())
//	    switch u.Kind {
//	    case render.UploadFull:
//	        // recreate or overwrite both buffers from offset 0
//	    case render.UploadAppend:
//	        // write u.VertexData at u.VertexOffset, u.IndexData at u.IndexOffset
//	    }
//	    // draw u.IndexCount indices with render.IndexFormatUint32
//	})
package render
