package core

import "testing"

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	got := p.Add(1, -2)
	if got != (Point{X: 4, Y: 2}) {
		t.Errorf("Add(1, -2) = %v", got)
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{9, 9}, true},
		{Point{10, 5}, false},
		{Point{5, 10}, false},
		{Point{-1, 5}, false},
		{Point{5, -1}, false},
	}

	for _, tt := range tests {
		if got := tt.p.In(10, 10); got != tt.want {
			t.Errorf("%v.In(10, 10) = %v, expected %v", tt.p, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("Rect should contain its top-left corner")
	}
	if !r.Contains(5, 7) {
		t.Error("Rect should contain its inner bottom-right cell")
	}
	if r.Contains(6, 3) {
		t.Error("Rect should not contain its right edge")
	}
	if r.Contains(2, 8) {
		t.Error("Rect should not contain its bottom edge")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise low values to min")
	}
	if Clamp(42, 0, 10) != 10 {
		t.Error("Clamp should lower high values to max")
	}
}

func TestClampF(t *testing.T) {
	if ClampF(0.5, 0, 1) != 0.5 {
		t.Error("ClampF should pass through in-range values")
	}
	if ClampF(-0.1, 0, 1) != 0 {
		t.Error("ClampF should raise low values to min")
	}
	if ClampF(1.1, 0, 1) != 1 {
		t.Error("ClampF should lower high values to max")
	}
}
