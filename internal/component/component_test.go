package component

import (
	"math"
	"testing"
)

func TestLifecycle(t *testing.T) {
	l := Lifecycle{MaxLife: 10}
	l.Advance(4)
	l.Advance(-1) // возраст не убывает
	if l.Age != 4 || l.Expired() {
		t.Fatalf("Expected age 4 and alive, got %+v", l)
	}
	if got := l.Progress(); got != 0.4 {
		t.Errorf("Expected progress 0.4, got %v", got)
	}
	l.Advance(6)
	if !l.Expired() || l.Progress() != 1 {
		t.Errorf("Expected expiry at max life, got %+v", l)
	}

	forever := Immortal()
	forever.Advance(1e12)
	if forever.Expired() || forever.Progress() != 0 {
		t.Error("Expected immortal lifecycle never to expire")
	}
}

func TestInteractionState(t *testing.T) {
	var s InteractionState
	if !math.IsInf(s.DistanceTo(0, 0), 1) {
		t.Error("Expected infinite distance without a pointer")
	}
	s.MovePointer(500, 200, 800, 600, 0.02)
	if !s.HasPointer || s.ParallaxX != 2 || s.ParallaxY != -2 {
		t.Errorf("Expected parallax (2, -2), got %+v", s)
	}
	if got := s.DistanceTo(503, 204); got != 5 {
		t.Errorf("Expected distance 5, got %v", got)
	}
	s.Reset()
	if s.HasPointer || s.PointerX != 0 {
		t.Errorf("Expected reset state, got %+v", s)
	}
}

func TestElectricPulseAdvance(t *testing.T) {
	p := ElectricPulse{StartX: 0, StartY: 0, TargetX: 100, TargetY: 50, Speed: 0.25}
	if p.Advance(1) {
		t.Fatal("Expected pulse to be in flight")
	}
	if p.X != 25 || p.Y != 12.5 {
		t.Errorf("Expected (25, 12.5), got (%v, %v)", p.X, p.Y)
	}
	p.Advance(2)
	if !p.Advance(2) {
		t.Fatal("Expected pulse to complete")
	}
	if p.Progress != 1 || p.X != 100 || p.Y != 50 {
		t.Errorf("Expected pulse clamped at the target, got %+v", p)
	}

	l := CircuitLine{X1: 0, Y1: 0, X2: 3, Y2: 4}
	if l.Length() != 5 {
		t.Errorf("Expected length 5, got %v", l.Length())
	}
}
