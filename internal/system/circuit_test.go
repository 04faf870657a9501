package system

import (
	"math"
	"testing"

	"go-animated-bg/internal/component"
	"go-animated-bg/internal/config"
	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/utils"
)

func newCircuit(t *testing.T, seed int64) *CircuitSystem {
	t.Helper()
	s, err := NewCircuitSystem(mustSkin(defs.SkinMotherboard), utils.NewPRNGService(seed))
	if err != nil {
		t.Fatalf("NewCircuitSystem: %v", err)
	}
	return s
}

func TestCircuitLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"800x600", 800, 600},
		{"1200x800", 1200, 800},
		{"Odd size", 1023, 517},
		{"Smaller than one cell", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newCircuit(t, 8)
			s.Initialize(tt.width, tt.height)
			nodes := s.Nodes()

			cols := int(math.Ceil((tt.width - math.Mod(tt.width, config.CircuitGridPitch)/2) / config.CircuitGridPitch))
			rows := int(math.Ceil((tt.height - math.Mod(tt.height, config.CircuitGridPitch)/2) / config.CircuitGridPitch))
			if len(nodes) < 1 || len(nodes) > cols*rows+1 {
				t.Fatalf("Expected between 1 and %d nodes, got %d", cols*rows+1, len(nodes))
			}

			cores := 0
			for i, n := range nodes {
				if n.IsCore {
					cores++
					if i != 0 {
						t.Errorf("Expected core at index 0, found at %d", i)
					}
					if n.X != tt.width/2 || n.Y != tt.height/2 {
						t.Errorf("Expected core at centre, got (%v, %v)", n.X, n.Y)
					}
					continue
				}
				// Смещение не больше половины jitter по каждой оси
				minDist := config.CoreExclusionRadius - config.CircuitJitter/2*math.Sqrt2
				if d := utils.Distance(n.X, n.Y, tt.width/2, tt.height/2); d < minDist {
					t.Errorf("Node %d at distance %v inside core exclusion radius", i, d)
				}
				if n.Size < 4 || n.Size > 12 {
					t.Errorf("Node %d size %v outside [4, 12]", i, n.Size)
				}
			}
			if cores != 1 {
				t.Errorf("Expected exactly one core, got %d", cores)
			}
		})
	}
}

func TestCircuitTopology(t *testing.T) {
	s := newCircuit(t, 31)
	s.Initialize(1200, 800)
	nodes := s.Nodes()
	links := s.Links()

	if len(links) != len(s.Lines()) {
		t.Fatalf("Expected one line per link, got %d links and %d lines", len(links), len(s.Lines()))
	}

	seen := make(map[Link]bool)
	coreLinks := 0
	for i, l := range links {
		if l.A >= l.B {
			t.Errorf("Link %d not normalised: %+v", i, l)
		}
		if seen[l] {
			t.Errorf("Duplicate link %+v", l)
		}
		seen[l] = true

		a, b := nodes[l.A], nodes[l.B]
		if a.IsCore {
			coreLinks++
			continue
		}
		if b.IsCore {
			t.Errorf("Link %d: core must only appear as the first endpoint", i)
		}
		if d := utils.Distance(a.X, a.Y, b.X, b.Y); d >= config.NeighborCutoff {
			t.Errorf("Link %d between regular nodes spans %v", i, d)
		}

		line := s.Lines()[i]
		if line.X1 != a.X || line.Y1 != a.Y || line.X2 != b.X || line.Y2 != b.Y {
			t.Errorf("Line %d endpoints do not match its nodes", i)
		}
	}
	if coreLinks != config.CoreLinkCount {
		t.Errorf("Expected core to have %d links, got %d", config.CoreLinkCount, coreLinks)
	}

	// Соседи хранятся копиями позиций
	for i, n := range nodes {
		degree := 0
		for _, l := range links {
			if l.A == i || l.B == i {
				degree++
			}
		}
		if len(n.Connections) != degree {
			t.Errorf("Node %d: expected %d connections, got %d", i, degree, len(n.Connections))
		}
	}
}

func TestPulseCompletes(t *testing.T) {
	p := component.ElectricPulse{StartX: 0, StartY: 0, TargetX: 100, TargetY: 0, Speed: 0.3}
	ticks := 0
	for !p.Advance(1) {
		ticks++
		if ticks > 10 {
			t.Fatal("Pulse never completed")
		}
		if p.Progress < 0 || p.Progress > 1 {
			t.Fatalf("Progress %v out of range", p.Progress)
		}
	}
	// 0.3, 0.6, 0.9, 1.0
	if ticks != 3 {
		t.Errorf("Expected completion on the 4th tick, got after %d", ticks+1)
	}
	if p.X != 100 || p.Progress != 1 {
		t.Errorf("Expected pulse at target with progress 1, got x=%v progress=%v", p.X, p.Progress)
	}
}

func TestCircuitPulsesRemovedOnCompletion(t *testing.T) {
	s := newCircuit(t, 12)
	s.Initialize(800, 600)
	if len(s.Lines()) == 0 {
		t.Fatal("Expected lines")
	}
	line := &s.Lines()[0]
	line.Pulses = append(line.Pulses[:0], component.ElectricPulse{
		StartX: line.X1, StartY: line.Y1, TargetX: line.X2, TargetY: line.Y2,
		Progress: 0.95, Speed: 0.1, Intensity: 1, Size: 4,
	})

	s.Update(&component.InteractionState{}, 1)
	for _, p := range line.Pulses {
		// Новые импульсы за один тик проходят не больше Speed.Max
		if p.Progress >= 1 || p.Progress > 0.03 {
			t.Errorf("Completed pulse still present: %+v", p)
		}
	}

	for tick := 0; tick < 500; tick++ {
		s.Update(&component.InteractionState{}, 1)
		for i, l := range s.Lines() {
			if len(l.Pulses) > config.PulseHardLimit {
				t.Fatalf("Line %d carries %d pulses", i, len(l.Pulses))
			}
			for _, p := range l.Pulses {
				if p.Progress < 0 || p.Progress >= 1 {
					t.Fatalf("Line %d: pulse progress %v", i, p.Progress)
				}
			}
		}
	}
}

func TestPointerSpawnsPulsesNearLines(t *testing.T) {
	s := newCircuit(t, 77)
	s.Initialize(800, 600)
	line := s.Lines()[0]
	mx, my := (line.X1+line.X2)/2, (line.Y1+line.Y2)/2

	in := &component.InteractionState{}
	in.MovePointer(mx, my, 800, 600, config.ParallaxFactor)
	for i := 0; i < 500; i++ {
		s.PointerMoved(in)
	}
	if got := len(s.Lines()[0].Pulses); got != config.PulseHardLimit {
		t.Errorf("Expected pulses to saturate at %d, got %d", config.PulseHardLimit, got)
	}

	for i, l := range s.Lines() {
		d := utils.DistanceToSegment(mx, my, l.X1, l.Y1, l.X2, l.Y2)
		if d >= config.PointerPulseDistance && len(l.Pulses) > 0 {
			t.Errorf("Line %d at distance %v got pulses", i, d)
		}
	}
}

func TestPointerWithoutPositionSpawnsNothing(t *testing.T) {
	s := newCircuit(t, 5)
	s.Initialize(800, 600)
	s.PointerMoved(&component.InteractionState{})
	s.PointerMoved(nil)
	for i, l := range s.Lines() {
		if len(l.Pulses) != 0 {
			t.Errorf("Line %d: expected no pulses, got %d", i, len(l.Pulses))
		}
	}
}

func TestCircuitNodeAnimation(t *testing.T) {
	s := newCircuit(t, 2)
	s.Initialize(800, 600)
	for tick := 0; tick < 300; tick++ {
		s.Update(&component.InteractionState{}, 1)
		for i, n := range s.Nodes() {
			if n.IsCore {
				if n.Glow < 30-1e-9 || n.Glow > 70+1e-9 || n.Energy < 0.6-1e-9 || n.Energy > 1+1e-9 {
					t.Fatalf("Tick %d: core glow %v energy %v out of range", tick, n.Glow, n.Energy)
				}
				continue
			}
			if n.Glow < 7-1e-9 || n.Glow > 23+1e-9 || n.Energy < 0.2-1e-9 || n.Energy > 0.6+1e-9 {
				t.Fatalf("Tick %d node %d: glow %v energy %v out of range", tick, i, n.Glow, n.Energy)
			}
			if n.Expired() {
				t.Fatalf("Tick %d node %d: circuit nodes never expire", tick, i)
			}
		}
	}
}

func TestLayoutGridExclusionUsesGridPoints(t *testing.T) {
	core := component.Point{X: 600, Y: 400}
	// Четыре соседа ядра стоят ровно в 120; смещение может увести их ближе 100,
	// но решение принимается по узлу сетки
	want := len(layoutGrid(1200, 800, 120, 0, 100, core, utils.NewPRNGService(1)))
	if want != 69 {
		t.Fatalf("Expected 69 grid points outside the exclusion, got %d", want)
	}
	for seed := int64(1); seed <= 20; seed++ {
		pts := layoutGrid(1200, 800, 120, 40, 100, core, utils.NewPRNGService(seed))
		if len(pts) != want {
			t.Errorf("Seed %d: expected %d nodes regardless of jitter, got %d", seed, want, len(pts))
		}
		for i, p := range pts {
			gx := math.Round(p.X/120) * 120
			gy := math.Round((p.Y-40)/120)*120 + 40
			if math.Abs(p.X-gx) > 20 || math.Abs(p.Y-gy) > 20 {
				t.Errorf("Seed %d node %d at (%v, %v) further than 20 from its grid point", seed, i, p.X, p.Y)
			}
		}
	}
}
