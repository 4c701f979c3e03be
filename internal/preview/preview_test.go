package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/ribbon"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(8, 4, white)
	if c.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("Bounds() = %v, want (0,0)-(8,4)", c.Bounds())
	}
	if got := c.RGBAAt(7, 3); got != white {
		t.Errorf("pixel (7,3) = %v, want %v", got, white)
	}
}

func TestRender_HorizontalRibbon(t *testing.T) {
	g := ribbon.Build([]ribbon.KeyPoint{ribbon.Pt(4, 10), ribbon.Pt(36, 10)}, ribbon.WithWidth(8))
	dst := NewCanvas(40, 20, white)
	Render(dst, g.Mesh(), black)

	// Inside the ribbon: y in [6, 14], x in [4, 36]. The quad diagonal runs
	// from (4, 6) to (36, 14); probes stay clear of it.
	for _, p := range []image.Point{{8, 8}, {20, 12}, {30, 8}} {
		if got := dst.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("pixel %v = %v, want %v", p, got, black)
		}
	}
	// Outside the ribbon.
	for _, p := range []image.Point{{20, 2}, {20, 17}, {1, 10}, {38, 10}} {
		if got := dst.RGBAAt(p.X, p.Y); got != white {
			t.Errorf("pixel %v = %v, want %v", p, got, white)
		}
	}
}

func TestRender_CapsCoverEnds(t *testing.T) {
	pts := []ribbon.KeyPoint{ribbon.Pt(10, 10), ribbon.Pt(30, 10)}

	plain := NewCanvas(40, 20, white)
	Render(plain, ribbon.Build(pts, ribbon.WithWidth(8)).Mesh(), black)
	capped := NewCanvas(40, 20, white)
	Render(capped, ribbon.Build(pts, ribbon.WithWidth(8), ribbon.WithCapEnds(true), ribbon.WithCapSegments(8)).Mesh(), black)

	// Two pixels beyond each end lie inside the round caps only.
	for _, p := range []image.Point{{7, 10}, {32, 10}} {
		if got := plain.RGBAAt(p.X, p.Y); got != white {
			t.Errorf("uncapped pixel %v = %v, want %v", p, got, white)
		}
		if got := capped.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("capped pixel %v = %v, want %v", p, got, black)
		}
	}
}

func TestRender_OffsetBounds(t *testing.T) {
	g := ribbon.Build([]ribbon.KeyPoint{ribbon.Pt(100, 100), ribbon.Pt(120, 100)}, ribbon.WithWidth(6))
	full := NewCanvas(200, 200, white)
	sub := full.SubImage(image.Rect(90, 90, 130, 110)).(*image.RGBA)
	Render(sub, g.Mesh(), black)

	if got := full.RGBAAt(105, 101); got != black {
		t.Errorf("pixel (105,101) = %v, want %v", got, black)
	}
	if got := full.RGBAAt(110, 106); got != white {
		t.Errorf("pixel (110,106) = %v, want %v", got, white)
	}
}

func TestRender_EmptyMesh(t *testing.T) {
	dst := NewCanvas(4, 4, white)
	Render(dst, ribbon.Mesh{}, black)
	if got := dst.RGBAAt(2, 2); got != white {
		t.Errorf("pixel (2,2) = %v, want %v", got, white)
	}
}

func TestDownsample(t *testing.T) {
	src := NewCanvas(16, 16, black)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Downsample(dst, src)
	if got := dst.RGBAAt(2, 2); got.R > 2 || got.A < 253 {
		t.Errorf("pixel (2,2) = %v, want about %v", got, black)
	}
}
