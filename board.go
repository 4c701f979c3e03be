// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ribbon

import "log/slog"

// PointerID identifies an independent input source, such as one finger of
// a multi-touch gesture or a pen.
type PointerID uint64

// Board keeps one Generator per pointer so that simultaneous pointers draw
// separate ribbons instead of one ribbon zigzagging between them.
//
// Board is not safe for concurrent use.
type Board struct {
	opts  []Option
	gens  map[PointerID]*Generator
	order []PointerID

	vertices []Vertex
	indices  []uint32

	// generation and last track whether the previous Mesh is a prefix of
	// the next one.
	generation uint64
	last       []boardSlice
}

// boardSlice records one pointer's share of a combined mesh.
type boardSlice struct {
	id         PointerID
	generation uint64
	vertices   int
	indices    int
}

// NewBoard creates an empty board. opts configure every generator it creates.
func NewBoard(opts ...Option) *Board {
	return &Board{
		opts: opts,
		gens: make(map[PointerID]*Generator),
	}
}

// Down starts a gesture for pointer id at p. A gesture still open on the
// same pointer is stopped first.
func (b *Board) Down(id PointerID, p KeyPoint) error {
	g := b.generator(id)
	if s := g.State(); s == StateSeeded || s == StateFlowing {
		g.Stop()
	}
	return g.AddKeyVertex(p)
}

// Move adds p to the gesture of pointer id. A move from an unknown pointer
// starts its gesture.
func (b *Board) Move(id PointerID, p KeyPoint) error {
	g, ok := b.gens[id]
	if !ok {
		return b.Down(id, p)
	}
	return g.AddKeyVertex(p)
}

// Up stops the gesture of pointer id. Unknown pointers are ignored.
func (b *Board) Up(id PointerID) {
	if g, ok := b.gens[id]; ok {
		g.Stop()
	}
}

// Generator returns the generator of pointer id, or nil.
func (b *Board) Generator(id PointerID) *Generator {
	return b.gens[id]
}

// Pointers returns the known pointers in the order they were first seen.
func (b *Board) Pointers() []PointerID {
	out := make([]PointerID, len(b.order))
	copy(out, b.order)
	return out
}

// Remove drops pointer id and its ribbon.
func (b *Board) Remove(id PointerID) {
	if _, ok := b.gens[id]; !ok {
		return
	}
	delete(b.gens, id)
	for i, o := range b.order {
		if o == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.invalidate()
}

// Clear drops every pointer and ribbon.
func (b *Board) Clear() {
	clear(b.gens)
	b.order = b.order[:0]
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.invalidate()
}

// Mesh concatenates the meshes of all pointers, in first-seen order, with
// indices rebased into the combined vertex list. The result reuses internal
// buffers and is valid until the next call to Mesh or Clear.
//
// The generation of the result is bumped whenever the combined buffers are
// not an extension of the previous result, for example when a pointer other
// than the last one grows.
func (b *Board) Mesh() Mesh {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	grown := true
	for i, id := range b.order {
		m := b.gens[id].Mesh()
		cur := boardSlice{id: id, generation: m.Generation, vertices: len(m.Vertices), indices: len(m.Indices)}
		if i < len(b.last) && !b.last[i].extendedBy(cur, i == len(b.last)-1) {
			grown = false
		}
		if i < len(b.last) {
			b.last[i] = cur
		} else {
			b.last = append(b.last, cur)
		}

		base := uint32(len(b.vertices)) //nolint:gosec // vertex count fits uint32
		b.vertices = append(b.vertices, m.Vertices...)
		for _, idx := range m.Indices {
			b.indices = append(b.indices, base+idx)
		}
	}
	if len(b.order) < len(b.last) {
		grown = false
		b.last = b.last[:len(b.order)]
	}
	if !grown {
		b.generation++
	}
	return Mesh{Vertices: b.vertices, Indices: b.indices, Generation: b.generation}
}

// extendedBy reports whether cur only appended to s. Only the last slice of
// a combined mesh may grow without shifting the slices after it.
func (s boardSlice) extendedBy(cur boardSlice, last bool) bool {
	if s.id != cur.id || s.generation != cur.generation {
		return false
	}
	if last {
		return cur.vertices >= s.vertices && cur.indices >= s.indices
	}
	return cur.vertices == s.vertices && cur.indices == s.indices
}

// invalidate forces the next Mesh into a new generation.
func (b *Board) invalidate() {
	b.generation++
	b.last = b.last[:0]
}

func (b *Board) generator(id PointerID) *Generator {
	g, ok := b.gens[id]
	if !ok {
		g = NewGenerator(b.opts...)
		b.gens[id] = g
		b.order = append(b.order, id)
		Logger().Debug("ribbon: pointer added", slog.Uint64("pointer", uint64(id)))
	}
	return g
}
