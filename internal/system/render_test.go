package system

import (
	"reflect"
	"testing"

	"go-animated-bg/internal/component"
	"go-animated-bg/internal/config"
	"go-animated-bg/internal/defs"
	"go-animated-bg/pkg/render"
)

// layerScene записывает порядок вызовов слоёв.
type layerScene struct {
	calls []Layer
}

func (s *layerScene) PaintClear(render.Canvas) { s.calls = append(s.calls, LayerClear) }
func (s *layerScene) PaintBackground(render.Canvas, *component.InteractionState) {
	s.calls = append(s.calls, LayerBackground)
}
func (s *layerScene) PaintStructure(render.Canvas)   { s.calls = append(s.calls, LayerStructure) }
func (s *layerScene) PaintConnections(render.Canvas) { s.calls = append(s.calls, LayerConnections) }
func (s *layerScene) PaintEntities(render.Canvas)    { s.calls = append(s.calls, LayerEntities) }
func (s *layerScene) PaintEmbellishments(render.Canvas) {
	s.calls = append(s.calls, LayerEmbellishments)
}

func TestRendererLayerOrder(t *testing.T) {
	scene := &layerScene{}
	NewRenderer(1).Paint(newRecordCanvas(800, 600), scene, nil)
	if !reflect.DeepEqual(scene.calls, DefaultLayers) {
		t.Errorf("Expected layers %v, got %v", DefaultLayers, scene.calls)
	}
}

func TestRendererSkipsMissingSurface(t *testing.T) {
	tests := []struct {
		name   string
		canvas render.Canvas
	}{
		{"Nil canvas", nil},
		{"Zero width", newRecordCanvas(0, 600)},
		{"Zero height", newRecordCanvas(800, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := &layerScene{}
			NewRenderer(1).Paint(tt.canvas, scene, nil)
			if len(scene.calls) != 0 {
				t.Errorf("Expected no layers painted, got %v", scene.calls)
			}
		})
	}
	// Без сцены просто ничего не происходит
	NewRenderer(1).Paint(newRecordCanvas(800, 600), nil, nil)
}

func TestRendererAppliesSurfaceOpacity(t *testing.T) {
	c := newRecordCanvas(800, 600)
	scene := &alphaScene{}
	NewRenderer(0.9).Paint(c, scene, nil)
	if len(c.alphas) != 1 || c.alphas[0] != 0.9 {
		t.Errorf("Expected one call with alpha 0.9, got %v", c.alphas)
	}
}

type alphaScene struct{ layerScene }

func (s *alphaScene) PaintEntities(c render.Canvas) {
	c.Circle(10, 10, 5, white, 1, render.BlendNormal)
}

func TestPaintDoesNotMutateSimulation(t *testing.T) {
	skins := []defs.SkinID{defs.SkinLiquidGlass, defs.SkinAINetwork, defs.SkinFireLava, defs.SkinMotherboard}
	for _, id := range skins {
		t.Run(string(id), func(t *testing.T) {
			sim := mustSimulation(id, 21)
			sim.Initialize(320, 240)
			in := &component.InteractionState{}
			in.MovePointer(160, 120, 320, 240, config.ParallaxFactor)
			for i := 0; i < 20; i++ {
				sim.Update(in, 1)
			}

			before := snapshot(sim)
			NewRenderer(1).Paint(render.NewRasterCanvas(320, 240, 1), sim, in)
			if after := snapshot(sim); !reflect.DeepEqual(before, after) {
				t.Error("Painting changed simulation state")
			}
		})
	}
}

// snapshot копирует наблюдаемое состояние симуляции.
func snapshot(sim Simulation) any {
	switch s := sim.(type) {
	case *ParticleSystem:
		return struct {
			P []component.Particle
			E []component.Edge
		}{append([]component.Particle(nil), s.Pool().Items()...), append([]component.Edge(nil), s.Edges()...)}
	case *EmberSystem:
		return struct {
			E []component.Ember
			R []component.LavaRiver
		}{append([]component.Ember(nil), s.Embers().Items()...), append([]component.LavaRiver(nil), s.Rivers().Items()...)}
	case *CircuitSystem:
		lines := make([]component.CircuitLine, len(s.Lines()))
		for i, l := range s.Lines() {
			l.Pulses = append([]component.ElectricPulse(nil), l.Pulses...)
			lines[i] = l
		}
		return struct {
			N []component.CircuitNode
			L []component.CircuitLine
		}{append([]component.CircuitNode(nil), s.Nodes()...), lines}
	}
	return nil
}

func TestSkinsPaintEveryLayer(t *testing.T) {
	for _, id := range []defs.SkinID{defs.SkinLiquidGlass, defs.SkinAINetwork, defs.SkinFireLava, defs.SkinMotherboard} {
		t.Run(string(id), func(t *testing.T) {
			sim := mustSimulation(id, 3)
			sim.Initialize(800, 600)
			sim.Update(&component.InteractionState{}, 1)

			c := newRecordCanvas(800, 600)
			NewRenderer(sim.Definition().SurfaceAlpha()).Paint(c, sim, &component.InteractionState{})
			if len(c.ops) == 0 {
				t.Fatal("Expected drawing calls")
			}
			first := c.ops[0]
			if sim.Definition().Clear == defs.ClearTrail && first != "fill" {
				t.Errorf("Expected trail skins to start with a translucent fill, got %q", first)
			}
			if sim.Definition().Clear == defs.ClearFull && first != "clear" {
				t.Errorf("Expected full clear first, got %q", first)
			}
			for i, a := range c.alphas {
				if a < 0 || a > 1 {
					t.Errorf("Call %d (%s): alpha %v out of range", i, c.ops[i], a)
				}
			}
		})
	}
}

func meanAlpha(c *render.RasterCanvas) float64 {
	pix := c.Image().Pix
	sum := 0
	for i := 3; i < len(pix); i += 4 {
		sum += int(pix[i])
	}
	return float64(sum) / float64(len(pix)/4)
}

func TestTrailSkinsNeedPersistentSurface(t *testing.T) {
	for _, id := range []defs.SkinID{defs.SkinLiquidGlass, defs.SkinAINetwork} {
		t.Run(string(id), func(t *testing.T) {
			sim := mustSimulation(id, 4)
			sim.Initialize(200, 150)
			r := NewRenderer(sim.Definition().SurfaceAlpha())
			in := &component.InteractionState{}

			persistent := render.NewRasterCanvas(200, 150, 1)
			var cleared *render.RasterCanvas
			for frame := 0; frame < 60; frame++ {
				sim.Update(in, 1)
				r.Paint(persistent, sim, in)
				cleared = render.NewRasterCanvas(200, 150, 1)
				r.Paint(cleared, sim, in)
			}

			kept, fresh := meanAlpha(persistent), meanAlpha(cleared)
			if kept < 240 {
				t.Errorf("Expected trail fill to build up to an opaque surface, got mean alpha %.1f", kept)
			}
			if fresh > 128 {
				t.Errorf("Expected a single trail frame to stay translucent, got mean alpha %.1f", fresh)
			}
		})
	}
}
