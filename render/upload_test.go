package render

import (
	"testing"

	"github.com/gogpu/ribbon"
)

func TestUploader_FirstFrameIsFull(t *testing.T) {
	g := ribbon.Build([]ribbon.KeyPoint{ribbon.Pt(0, 0), ribbon.Pt(10, 0)})

	var u Uploader
	up := u.Prepare(g.Mesh())
	if up.Kind != UploadFull {
		t.Errorf("Kind = %v, want Full", up.Kind)
	}
	if len(up.VertexData) != 4*VertexStride || len(up.IndexData) != 6*IndexStride {
		t.Errorf("data sizes = %d, %d, want %d, %d",
			len(up.VertexData), len(up.IndexData), 4*VertexStride, 6*IndexStride)
	}
	if up.IndexCount != 6 {
		t.Errorf("IndexCount = %d, want 6", up.IndexCount)
	}
}

func TestUploader_AppendAndNone(t *testing.T) {
	g := ribbon.NewGenerator()
	_ = g.AddKeyVertex(ribbon.Pt(0, 0))
	_ = g.AddKeyVertex(ribbon.Pt(10, 0))

	var u Uploader
	u.Prepare(g.Mesh())

	if up := u.Prepare(g.Mesh()); up.Kind != UploadNone {
		t.Errorf("unchanged mesh: Kind = %v, want None", up.Kind)
	}

	_ = g.AddKeyVertex(ribbon.Pt(20, 0))
	up := u.Prepare(g.Mesh())
	if up.Kind != UploadAppend {
		t.Fatalf("grown mesh: Kind = %v, want Append", up.Kind)
	}
	if up.VertexOffset != 4*VertexStride || up.IndexOffset != 6*IndexStride {
		t.Errorf("offsets = %d, %d, want %d, %d",
			up.VertexOffset, up.IndexOffset, 4*VertexStride, 6*IndexStride)
	}
	if len(up.VertexData) != 2*VertexStride || len(up.IndexData) != 6*IndexStride {
		t.Errorf("delta sizes = %d, %d, want %d, %d",
			len(up.VertexData), len(up.IndexData), 2*VertexStride, 6*IndexStride)
	}
	if up.IndexCount != 12 {
		t.Errorf("IndexCount = %d, want 12", up.IndexCount)
	}
}

func TestUploader_ShrinkAndInvalidate(t *testing.T) {
	g := ribbon.NewGenerator()
	_ = g.AddKeyVertex(ribbon.Pt(0, 0))
	_ = g.AddKeyVertex(ribbon.Pt(10, 0))

	var u Uploader
	u.Prepare(g.Mesh())

	g.Reset()
	if up := u.Prepare(g.Mesh()); up.Kind != UploadFull {
		t.Errorf("after Reset: Kind = %v, want Full", up.Kind)
	}

	u.Invalidate()
	if up := u.Prepare(g.Mesh()); up.Kind != UploadFull {
		t.Errorf("after Invalidate: Kind = %v, want Full", up.Kind)
	}
}

func TestUploader_RegrownAfterReset(t *testing.T) {
	g := ribbon.NewGenerator()
	_ = g.AddKeyVertex(ribbon.Pt(0, 0))
	_ = g.AddKeyVertex(ribbon.Pt(10, 0))

	var u Uploader
	u.Prepare(g.Mesh())

	// The new mesh outgrows the uploaded one before the next frame.
	g.Reset()
	for x := 0.0; x <= 30; x += 10 {
		_ = g.AddKeyVertex(ribbon.Pt(x, 5))
	}
	up := u.Prepare(g.Mesh())
	if up.Kind != UploadFull {
		t.Fatalf("Kind = %v, want Full", up.Kind)
	}
	if up.VertexOffset != 0 || len(up.VertexData) != 8*VertexStride {
		t.Errorf("vertex upload = offset %d, %d bytes, want 0, %d",
			up.VertexOffset, len(up.VertexData), 8*VertexStride)
	}
}

func TestUploader_Board(t *testing.T) {
	b := ribbon.NewBoard()
	_ = b.Down(1, ribbon.Pt(0, 0))
	_ = b.Move(1, ribbon.Pt(10, 0))
	_ = b.Down(2, ribbon.Pt(0, 20))
	_ = b.Move(2, ribbon.Pt(10, 20))

	var u Uploader
	u.Prepare(b.Mesh())

	_ = b.Move(2, ribbon.Pt(20, 20))
	if up := u.Prepare(b.Mesh()); up.Kind != UploadAppend {
		t.Errorf("last pointer grew: Kind = %v, want Append", up.Kind)
	}

	// Growing pointer 1 shifts pointer 2's vertices.
	_ = b.Move(1, ribbon.Pt(20, 0))
	if up := u.Prepare(b.Mesh()); up.Kind != UploadFull {
		t.Errorf("first pointer grew: Kind = %v, want Full", up.Kind)
	}
}

func TestUploadKind_String(t *testing.T) {
	tests := []struct {
		k    UploadKind
		want string
	}{
		{UploadNone, "None"},
		{UploadAppend, "Append"},
		{UploadFull, "Full"},
		{UploadKind(9), "Unknown(9)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("UploadKind(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}
