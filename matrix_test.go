package brandkit

import (
	"math"
	"testing"
)

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate about center", RotateAbout(math.Pi, 10, 10), Pt(12, 10), Pt(8, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !pointsClose(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotateAboutKeepsCenter(t *testing.T) {
	m := RotateAbout(22*math.Pi/180, 50, 40)
	if got := m.TransformPoint(Pt(50, 40)); !pointsClose(got, Pt(50, 40)) {
		t.Errorf("center moved to %v", got)
	}
	a := 22 * math.Pi / 180
	if got, want := m.TransformPoint(Pt(60, 40)), Pt(50+10*math.Cos(a), 40+10*math.Sin(a)); !pointsClose(got, want) {
		t.Errorf("rotated point = %v, want %v", got, want)
	}
}

func TestPointHelpers(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 {
		t.Errorf("Length() = %v, want 5", p.Length())
	}
	if !pointsClose(p.Normalize(), Pt(0.6, 0.8)) {
		t.Errorf("Normalize() = %v", p.Normalize())
	}
	if !pointsClose(p.Perp(), Pt(-4, 3)) {
		t.Errorf("Perp() = %v", p.Perp())
	}
	if Pt(0, 0).Normalize() != (Point{}) {
		t.Error("Normalize of zero vector should be zero")
	}
}
