// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ribbon

import (
	"fmt"
	"log/slog"
	"math"
)

// State is the gesture state of a Generator.
type State int

const (
	// StateIdle means no key point has been recorded.
	StateIdle State = iota
	// StateSeeded means exactly one key point has been recorded and no
	// geometry exists yet for the gesture.
	StateSeeded
	// StateFlowing means at least one segment has been emitted.
	StateFlowing
	// StateStopped means the gesture was finalized by Stop.
	StateStopped
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSeeded:
		return "Seeded"
	case StateFlowing:
		return "Flowing"
	case StateStopped:
		return "Stopped"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// end describes one open end of the emitted ribbon.
type end struct {
	center KeyPoint
	normal Vec2    // unit normal of the adjacent segment
	half   float64 // half width at center
	left   uint32  // index of the left vertex; the right vertex is left+1
}

// Generator turns a stream of key points into a ribbon mesh.
//
// Each key point after the first emits a left/right vertex pair offset
// along the segment normal by half the ribbon width, and two triangles
// joining it to the previous pair:
//
//	(prevL, prevR, newL) and (prevR, newR, newL)
//
// Both triangles have positive signed area in a y-up frame, so winding is
// consistent along the ribbon as long as consecutive quads do not fold.
//
// Generator is not safe for concurrent use.
type Generator struct {
	cfg   config
	store *Store
	state State
	path  []KeyPoint

	head end // start of the current gesture's ribbon
	tail end // last emitted pair
}

// NewGenerator creates a generator with an empty path and mesh.
func NewGenerator(opts ...Option) *Generator {
	cfg := newConfig(opts)
	return &Generator{
		cfg:   cfg,
		store: NewStore(cfg.capacity),
		path:  make([]KeyPoint, 0, cfg.capacity/2),
	}
}

// Build feeds points into a new generator and stops it. Invalid samples are
// skipped, exactly as AddKeyVertex skips them.
func Build(points []KeyPoint, opts ...Option) *Generator {
	g := NewGenerator(opts...)
	for _, p := range points {
		_ = g.AddKeyVertex(p)
	}
	g.Stop()
	return g
}

// State returns the current gesture state.
func (g *Generator) State() State {
	return g.state
}

// Store returns the geometry store the generator appends to.
func (g *Generator) Store() *Store {
	return g.store
}

// Vertices returns the accumulated vertex list. See Store.Vertices.
func (g *Generator) Vertices() []Vertex {
	return g.store.Vertices()
}

// Indices returns the accumulated index list. See Store.Indices.
func (g *Generator) Indices() []uint32 {
	return g.store.Indices()
}

// Mesh returns a view of the accumulated mesh.
func (g *Generator) Mesh() Mesh {
	return g.store.Mesh()
}

// Path returns the key points of the current gesture that produced
// geometry (or seeded it). The slice aliases internal state.
func (g *Generator) Path() []KeyPoint {
	return g.path
}

// Width returns the configured default ribbon width.
func (g *Generator) Width() float64 {
	return g.cfg.width
}

// AddKeyVertex appends a key point to the current gesture.
//
// The first point of a gesture only seeds the path. Every later point emits
// two vertices (four for the first segment) and six indices. A point at the
// exact position of the previous one is dropped without error.
//
// Calling AddKeyVertex after Stop begins a new gesture; the previous mesh
// is kept unless WithResetOnNewGesture(true) was given.
//
// A point whose quad would collapse at float32 precision is dropped the same
// way.
//
// Returns an error wrapping ErrInvalidPoint for non-finite input, or when the
// ribbon edges at p would fall outside the float32 range; the sample is
// skipped and the generator state is unchanged.
func (g *Generator) AddKeyVertex(p KeyPoint) error {
	if err := validatePoint(p); err != nil {
		return g.reject(err)
	}

	if g.state == StateStopped {
		g.beginGesture()
	}

	if g.state == StateIdle {
		g.path = append(g.path, p)
		g.state = StateSeeded
		return nil
	}

	prev := g.path[len(g.path)-1]
	if p.SamePosition(prev) {
		return nil
	}
	normal := p.Sub(prev).Normalize().Perp()
	if normal.IsZero() {
		return nil
	}

	// Both pairs are computed before anything is appended so that a
	// rejected or dropped sample leaves the store untouched.
	var pl, pr Vertex
	if g.state == StateSeeded {
		l, r, err := g.offsetPair(prev, normal)
		if err != nil {
			return g.reject(err)
		}
		pl, pr = l, r
	} else {
		v := g.store.Vertices()
		pl, pr = v[g.tail.left], v[g.tail.left+1]
	}
	nl, nr, err := g.offsetPair(p, normal)
	if err != nil {
		return g.reject(err)
	}
	// Points closer than float32 resolution collapse onto the previous pair.
	if area2(pl, pr, nl) == 0 || area2(pr, nr, nl) == 0 {
		Logger().Debug("ribbon: degenerate segment dropped",
			slog.Float64("x", p.X), slog.Float64("y", p.Y))
		return nil
	}

	if g.state == StateSeeded {
		g.head = g.appendPair(prev, normal, pl, pr)
		g.tail = g.head
	}

	next := g.appendPair(p, normal, nl, nr)
	a, b := g.tail.left, next.left
	g.store.appendTriangles(a, a+1, b, a+1, b+1, b)

	g.tail = next
	g.path = append(g.path, p)
	g.state = StateFlowing
	return nil
}

func (g *Generator) reject(err error) error {
	Logger().Debug("ribbon: sample rejected", "error", err, "state", g.state)
	return err
}

// Stop finalizes the current gesture. With WithCapEnds(true) a round cap is
// emitted at both ends of a ribbon that has at least one segment. Stop is
// idempotent.
func (g *Generator) Stop() {
	switch g.state {
	case StateStopped:
		return
	case StateFlowing:
		if g.cfg.capEnds && capFits(g.head) && capFits(g.tail) {
			// The start cap sweeps from the right vertex to the left one
			// around the back of the first point, the end cap from left to
			// right around the front of the last point.
			g.emitCap(g.head, g.head.left+1, g.head.left, g.head.normal.Atan2()-math.Pi)
			g.emitCap(g.tail, g.tail.left, g.tail.left+1, g.tail.normal.Atan2())
		}
	}
	Logger().Debug("ribbon: gesture stopped",
		slog.Int("points", len(g.path)),
		slog.Int("vertices", g.store.VertexCount()),
		slog.Int("indices", g.store.IndexCount()))
	g.state = StateStopped
}

// Reset clears the path and the mesh and returns to StateIdle.
func (g *Generator) Reset() {
	g.path = g.path[:0]
	g.store.reset()
	g.head, g.tail = end{}, end{}
	g.state = StateIdle
}

// beginGesture starts a new path after Stop.
func (g *Generator) beginGesture() {
	g.path = g.path[:0]
	g.head, g.tail = end{}, end{}
	if g.cfg.resetOnNewGesture {
		g.store.reset()
	}
	g.state = StateIdle
	Logger().Debug("ribbon: new gesture", slog.Int("vertices", g.store.VertexCount()))
}

// widthAt returns the ribbon width at p.
func (g *Generator) widthAt(p KeyPoint) float64 {
	if p.Width > 0 {
		return p.Width
	}
	return g.cfg.width
}

// offsetPair returns the left and right vertices of p offset along normal
// by half the ribbon width.
func (g *Generator) offsetPair(p KeyPoint, normal Vec2) (l, r Vertex, err error) {
	w := g.widthAt(p)
	off := normal.Mul(w / 2)
	lp, rp := p.Add(off), p.Add(off.Neg())
	if !finite32(lp.X) || !finite32(lp.Y) || !finite32(rp.X) || !finite32(rp.Y) {
		return Vertex{}, Vertex{}, fmt.Errorf("%w: offset of (%v, %v) at width %v overflows",
			ErrInvalidPoint, p.X, p.Y, w)
	}
	l = Vertex{X: float32(lp.X), Y: float32(lp.Y), Width: float32(w)}
	r = Vertex{X: float32(rp.X), Y: float32(rp.Y), Width: float32(w)}
	return l, r, nil
}

// appendPair stores the pair computed by offsetPair for p.
func (g *Generator) appendPair(p KeyPoint, normal Vec2, l, r Vertex) end {
	left := g.store.appendVertices(l, r)
	return end{center: p, normal: normal, half: g.widthAt(p) / 2, left: left}
}

// capFits reports whether a round cap around e stays within float32 range.
func capFits(e end) bool {
	return finite32(e.center.X-e.half) && finite32(e.center.X+e.half) &&
		finite32(e.center.Y-e.half) && finite32(e.center.Y+e.half)
}

// area2 returns twice the signed area of triangle (a, b, c).
func area2(a, b, c Vertex) float64 {
	return float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
}
