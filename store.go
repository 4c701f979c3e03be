// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ribbon

// Vertex is a ribbon vertex as uploaded to the GPU: position plus the
// ribbon width at the key point it was offset from.
//
// The layout is three tightly packed float32 values (12 bytes), matching
// render.VertexLayout.
type Vertex struct {
	X, Y  float32
	Width float32
}

// Mesh is a view of a vertex list and a triangle-list index buffer.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32

	// Generation changes whenever the buffers stop being an extension of
	// what an earlier Mesh from the same source held. Within one
	// generation the buffers only grow.
	Generation uint64
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Empty reports whether the mesh has nothing to draw.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Store holds the accumulated ribbon mesh.
//
// The buffers only grow while a gesture is active. Vertices are appended in
// left/right pairs and indices in groups of two triangles, so the vertex
// count stays even and the index count stays a multiple of 6.
//
// Store is not safe for concurrent use. Hosts that mutate and read from
// different goroutines must guard both with a single lock.
type Store struct {
	vertices   []Vertex
	indices    []uint32
	generation uint64
}

// NewStore creates an empty store with room for capacity vertices.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		vertices: make([]Vertex, 0, capacity),
		indices:  make([]uint32, 0, capacity*3),
	}
}

// Vertices returns the accumulated vertex list in insertion order.
// The returned slice aliases the store and is valid until the next Reset;
// it must not be modified.
func (s *Store) Vertices() []Vertex {
	return s.vertices
}

// Indices returns the accumulated index list. Same contract as Vertices.
func (s *Store) Indices() []uint32 {
	return s.indices
}

// VertexCount returns the number of vertices.
func (s *Store) VertexCount() int {
	return len(s.vertices)
}

// IndexCount returns the number of indices.
func (s *Store) IndexCount() int {
	return len(s.indices)
}

// Generation returns the number of times the store has been cleared.
func (s *Store) Generation() uint64 {
	return s.generation
}

// Mesh returns a view of both buffers.
func (s *Store) Mesh() Mesh {
	return Mesh{Vertices: s.vertices, Indices: s.indices, Generation: s.generation}
}

// appendVertices appends a vertex pair and returns the index of v1.
func (s *Store) appendVertices(v1, v2 Vertex) uint32 {
	first := uint32(len(s.vertices)) //nolint:gosec // vertex count fits uint32
	s.vertices = append(s.vertices, v1, v2)
	return first
}

// appendTriangles appends two triangles (i0, i1, i2) and (i3, i4, i5).
func (s *Store) appendTriangles(i0, i1, i2, i3, i4, i5 uint32) {
	s.indices = append(s.indices, i0, i1, i2, i3, i4, i5)
}

// reset empties both buffers, keeping their capacity.
func (s *Store) reset() {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	s.generation++
}
