package utils

import (
	"math"
	"testing"
)

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name                   string
		px, py, x1, y1, x2, y2 float64
		want                   float64
	}{
		{"Above middle", 5, 3, 0, 0, 10, 0, 3},
		{"Past the end", 13, 4, 0, 0, 10, 0, 5},
		{"Before the start", -3, -4, 0, 0, 10, 0, 5},
		{"On the segment", 4, 0, 0, 0, 10, 0, 0},
		{"Degenerate segment", 3, 4, 0, 0, 0, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceToSegment(tt.px, tt.py, tt.x1, tt.y1, tt.x2, tt.y2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"Inside", 400, 400},
		{"On the margin", 850, 850},
		{"Past the right edge", 860, -50},
		{"Past the left edge", -60, 850},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.v, 800, 50); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.25, 0.25},
		{7, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Expected Lerp 15, got %v", got)
	}
	if got := DistanceSq(0, 0, 3, 4); got != 25 {
		t.Errorf("Expected 25, got %v", got)
	}
}

func TestPRNGServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Expected identical sequences for the same seed, diverged at %d", i)
		}
	}
	fa, fb := a.Fork(), b.Fork()
	if fa.Int63() != fb.Int63() {
		t.Error("Expected forks of equal generators to match")
	}
	if a.Seed() != 42 {
		t.Errorf("Expected seed 42, got %d", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("Expected zero seed to be replaced")
	}
}

func TestPRNGServiceRanges(t *testing.T) {
	r := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := r.Range(2, 5); v < 2 || v >= 5 {
			t.Fatalf("Range out of [2, 5): %v", v)
		}
		if v := r.Spread(4); v < -2 || v >= 2 {
			t.Fatalf("Spread out of [-2, 2): %v", v)
		}
		if v := r.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("Intn out of [0, 3): %v", v)
		}
	}
	if r.Intn(0) != 0 || r.Chance(0) || !r.Chance(1) {
		t.Error("Expected degenerate arguments to be handled")
	}
}
