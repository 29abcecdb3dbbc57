package pickle

import (
	"math"
	"testing"
)

func ptEq(p, q Point) bool {
	return p.Distance(q) < 1e-9
}

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(1, 1), Pt(11, -1)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(5, 5).Multiply(Scale(2, 2)), Pt(1, 2), Pt(7, 9)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(5, 5)), Pt(1, 2), Pt(12, 14)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !ptEq(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix_Invert(t *testing.T) {
	ms := []Matrix{
		Identity(),
		Translate(3, -7),
		Scale(0.25, 4),
		Rotate(1.2),
		Translate(10, 20).Multiply(Rotate(-0.4)).Multiply(Scale(3, 3)),
	}
	for _, m := range ms {
		inv, ok := m.Invert()
		if !ok {
			t.Fatalf("Invert(%+v) reported singular", m)
		}
		if got := m.Multiply(inv); !got.ApproxEqual(Identity(), 1e-9) {
			t.Errorf("m * inv(m) = %+v, want identity", got)
		}
		p := Pt(1.5, -2.5)
		if got := inv.TransformPoint(m.TransformPoint(p)); !ptEq(got, p) {
			t.Errorf("inverse round trip = %v, want %v", got, p)
		}
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	inv, ok := Scale(0, 1).Invert()
	if ok {
		t.Error("singular matrix reported invertible")
	}
	if !inv.IsIdentity() {
		t.Errorf("singular inverse = %+v, want identity", inv)
	}
}

func TestMatrix_TransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 2))
	if got := m.TransformVector(Pt(1, 1)); !ptEq(got, Pt(2, 2)) {
		t.Errorf("TransformVector = %v, want (2,2)", got)
	}
}

func TestPoint_Floor(t *testing.T) {
	tests := []struct {
		in   Point
		want Loc
	}{
		{Pt(0, 0), L(0, 0)},
		{Pt(1.99, 2.01), L(1, 2)},
		{Pt(-0.5, -1), L(-1, -1)},
	}
	for _, tt := range tests {
		if got := tt.in.Floor(); got != tt.want {
			t.Errorf("%v.Floor() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
