// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ribbon builds a triangle mesh that traces a pointer's path.
//
// # Overview
//
// A Generator consumes key points (pointer samples) one at a time and grows
// a ribbon of constant or per-point width along them. The mesh is a vertex
// list plus a uint32 triangle-list index buffer, ready to be uploaded to the
// GPU and drawn with a single indexed draw call.
//
// # Quick Start
//
//	g := ribbon.NewGenerator(ribbon.WithWidth(4))
//
//	// pointer moved
//	g.AddKeyVertex(ribbon.Pt(0, 0))
//	g.AddKeyVertex(ribbon.Pt(10, 0))
//
//	// pointer lifted
//	g.Stop()
//
//	// every frame
//	verts, idx := g.Vertices(), g.Indices()
//
// Feeding (0,0) and (10,0) with width 4 yields the vertices (0,2), (0,-2),
// (10,2), (10,-2) and the triangles (0,1,2), (1,3,2).
//
// # Gestures
//
// A gesture is Idle until its first point, Seeded after it, Flowing once a
// segment exists, and Stopped after Stop. A point arriving after Stop starts
// a new gesture; see WithResetOnNewGesture. Reset clears everything.
//
// For multi-touch input, Board keeps one Generator per pointer and
// concatenates their meshes.
//
// # Invariants
//
//   - The vertex count is even and the index count a multiple of 6.
//   - Every index refers to an existing vertex.
//   - Buffers only grow until Reset (or a new gesture with reset enabled),
//     so a prefix of the input yields a prefix of the buffers. Every reset
//     bumps Mesh.Generation.
//   - No triangle has zero area: points that coincide with the previous one
//     at float32 precision are dropped.
//   - Samples with NaN or infinite values, or whose ribbon edges fall
//     outside the float32 range, are rejected with ErrInvalidPoint and leave
//     the mesh untouched.
//
// # Coordinate System
//
// Geometry is computed in surface coordinates. Viewport maps them into clip
// space for the GPU; see the render package for the vertex layout, shader
// and pipeline description.
//
// # Concurrency
//
// Generator, Store and Board are not safe for concurrent use. A host that
// handles input and drawing on different goroutines must hold one lock
// around each mutation and each read.
package ribbon

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
