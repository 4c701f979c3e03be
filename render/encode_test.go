package render

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/ribbon"
)

func TestEncodeVertices(t *testing.T) {
	verts := []ribbon.Vertex{
		{X: 1, Y: 2, Width: 3},
		{X: -4.5, Y: 0, Width: 8},
	}
	data := EncodeVertices(nil, verts)

	if len(data) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(data), 2*VertexStride)
	}
	want := []float32{1, 2, 3, -4.5, 0, 8}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if got != w {
			t.Errorf("float[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestEncodeVertices_ReusesBuffer(t *testing.T) {
	staging := make([]byte, 0, 10*VertexStride)
	data := EncodeVertices(staging, []ribbon.Vertex{{X: 1}})
	if &data[:cap(data)][0] != &staging[:cap(staging)][0] {
		t.Error("EncodeVertices reallocated a buffer with enough capacity")
	}

	grown := EncodeVertices(data, make([]ribbon.Vertex, 20))
	if len(grown) != 20*VertexStride {
		t.Errorf("len = %d, want %d", len(grown), 20*VertexStride)
	}
}

func TestEncodeIndices(t *testing.T) {
	data := EncodeIndices(nil, []uint32{0, 1, 2, 1, 3, 2})
	if len(data) != 6*IndexStride {
		t.Fatalf("len = %d, want %d", len(data), 6*IndexStride)
	}
	if got := binary.LittleEndian.Uint32(data[16:]); got != 3 {
		t.Errorf("index[4] = %d, want 3", got)
	}
	if n := len(EncodeIndices(nil, nil)); n != 0 {
		t.Errorf("empty index list encoded to %d bytes, want 0", n)
	}
}

func TestViewportUniform(t *testing.T) {
	buf := ViewportUniform(ribbon.Viewport{Width: 800, Height: 600})
	if len(buf) != UniformSize {
		t.Fatalf("len = %d, want %d", len(buf), UniformSize)
	}
	w := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	h := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	if w != 800 || h != 600 {
		t.Errorf("viewport = (%v, %v), want (800, 600)", w, h)
	}
	for i := 8; i < UniformSize; i++ {
		if buf[i] != 0 {
			t.Errorf("padding byte %d = %d, want 0", i, buf[i])
		}
	}
}
