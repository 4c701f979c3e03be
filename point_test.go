package ribbon

import (
	"math"
	"testing"
)

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"unit x", Vec2{X: 5}, Vec2{X: 1}},
		{"diagonal", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
		{"zero", Vec2{}, Vec2{}},
		{"infinite", Vec2{X: math.Inf(1)}, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Normalize(); !got.Approx(tt.want, 1e-12) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2_Perp(t *testing.T) {
	v := Vec2{X: 1, Y: 0}
	p := v.Perp()
	if !p.Approx(Vec2{X: 0, Y: 1}, 1e-12) {
		t.Errorf("Perp() = %v, want (0, 1)", p)
	}
	if c := v.Cross(p); c != 1 {
		t.Errorf("Cross(Perp()) = %v, want 1", c)
	}
}

func TestKeyPoint_SubAdd(t *testing.T) {
	p := PtW(3, 4, 2)
	d := p.Sub(Pt(1, 1))
	if d != (Vec2{X: 2, Y: 3}) {
		t.Errorf("Sub() = %v, want (2, 3)", d)
	}
	q := p.Add(Vec2{X: 1, Y: -1})
	if q != PtW(4, 3, 2) {
		t.Errorf("Add() = %v, want (4, 3, w=2)", q)
	}
	if !p.SamePosition(Pt(3, 4)) {
		t.Error("SamePosition ignored width incorrectly")
	}
}

func TestPressureWidth(t *testing.T) {
	if got := PressureWidth(0.5, 20, 8); got != 18 {
		t.Errorf("PressureWidth(0.5, 20, 8) = %v, want 18", got)
	}
	if got := PressureWidth(0, 20, 8); got != 8 {
		t.Errorf("PressureWidth(0, 20, 8) = %v, want 8", got)
	}
}
