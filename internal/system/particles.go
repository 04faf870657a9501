// internal/system/particles.go
package system

import (
	"image/color"
	"math"

	"go-animated-bg/internal/component"
	"go-animated-bg/internal/config"
	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/entity"
	"go-animated-bg/internal/utils"
	"go-animated-bg/pkg/render"
)

// ParticleSystem — скины liquid-glass и ai-network: частицы, притяжение к
// указателю и связи между близкими частицами.
type ParticleSystem struct {
	def        defs.SkinDefinition
	palette    []color.NRGBA
	background []render.Stop
	blend      render.Blend

	rng      *utils.PRNGService
	paintRng *utils.PRNGService

	width, height float64
	pool          *entity.Pool[component.Particle]
	graph         *ConnectionGraph
	points        []component.Point
	edges         []component.Edge
}

// NewParticleSystem создаёт систему частиц; пул пуст до Initialize.
func NewParticleSystem(def defs.SkinDefinition, rng *utils.PRNGService) (*ParticleSystem, error) {
	palette, err := def.Colors()
	if err != nil {
		return nil, err
	}
	background, err := def.BackgroundStops()
	if err != nil {
		return nil, err
	}
	s := &ParticleSystem{
		def:        def,
		palette:    palette,
		background: background,
		blend:      def.Blend(),
		rng:        rng,
		paintRng:   rng.Fork(),
	}
	s.pool = entity.NewPool(s.newParticle)
	if def.HasConnections() {
		s.graph = NewConnectionGraph(def.ConnectionThreshold, def.ConnectionAlpha, def.SpatialIndex)
	}
	return s, nil
}

func (s *ParticleSystem) Definition() defs.SkinDefinition { return s.def }

func (s *ParticleSystem) EntityCount() int { return s.pool.Len() }

// Pool даёт доступ к пулу для хоста и тестов.
func (s *ParticleSystem) Pool() *entity.Pool[component.Particle] { return s.pool }

// Edges — связи, посчитанные на последнем тике.
func (s *ParticleSystem) Edges() []component.Edge { return s.edges }

func (s *ParticleSystem) Initialize(width, height float64) {
	s.width, s.height = width, height
	s.pool.Initialize(s.def.Entities.Count(width, height))
	s.edges = s.edges[:0]
	s.recomputeEdges()
}

func (s *ParticleSystem) newParticle(int) component.Particle {
	return component.Particle{
		X:        s.rng.Float64() * s.width,
		Y:        s.rng.Float64() * s.height,
		VX:       s.rng.Range(s.def.Speed.Min, s.def.Speed.Max),
		VY:       s.rng.Range(s.def.Speed.Min, s.def.Speed.Max),
		Size:     s.rng.Range(s.def.Size.Min, s.def.Size.Max),
		Color:    s.palette[s.rng.Intn(len(s.palette))],
		Category: component.ParticleCategory(pick(s.rng, s.def.CategoryWeights)),
		Phase:    s.rng.Float64() * 2 * math.Pi,
		Lifecycle: component.Lifecycle{
			MaxLife: math.Max(1, math.Round(s.rng.Range(s.def.Lifetime.Min, s.def.Lifetime.Max))),
		},
	}
}

// Update: интеграция скорости, перенос через край, притяжение, старение,
// прозрачность, замена отживших. Затем пересчёт связей.
func (s *ParticleSystem) Update(in *component.InteractionState, step float64) {
	for i := 0; i < s.pool.Len(); i++ {
		p := s.pool.At(i)

		p.X += p.VX * step
		p.Y += p.VY * step
		p.X = utils.Wrap(p.X, s.width, config.WrapMargin)
		p.Y = utils.Wrap(p.Y, s.height, config.WrapMargin)

		attract(&p.VX, &p.VY, p.X, p.Y, in, s.def.PointerRadius, s.def.PointerGain, step)
		limitSpeed(&p.VX, &p.VY, s.def.MaxSpeed)

		p.Advance(step)
		p.Opacity = opacityFor(s.def.Opacity, p.Lifecycle, p.Phase)
		if p.Expired() {
			s.pool.Replace(i)
		}
	}
	s.recomputeEdges()
}

func (s *ParticleSystem) recomputeEdges() {
	if s.graph == nil {
		return
	}
	s.points = s.points[:0]
	for _, p := range s.pool.Items() {
		s.points = append(s.points, component.Point{X: p.X, Y: p.Y})
	}
	s.edges = s.graph.Compute(s.points, s.edges)
}

// PointerMoved — частицам достаточно состояния указателя, читаемого в Update.
func (s *ParticleSystem) PointerMoved(*component.InteractionState) {}

func (s *ParticleSystem) PaintClear(c render.Canvas) {
	if s.def.Clear == defs.ClearTrail {
		c.Fill(config.TrailColor, config.TrailFadeAlpha)
		return
	}
	c.Clear(s.background[0].Color)
}

func (s *ParticleSystem) PaintBackground(c render.Canvas, in *component.InteractionState) {
	w, h := c.Size()
	// На шлейфе фон полупрозрачный, иначе он стёр бы следы
	alpha := 1.0
	if s.def.Clear == defs.ClearTrail {
		alpha = config.TrailFadeAlpha / 2
	}
	c.LinearGradient(0, 0, w, h, s.background, alpha)
	paintAmbient(c, s.palette, in.ParallaxX, in.ParallaxY, 0.05)
}

func (s *ParticleSystem) PaintStructure(render.Canvas) {}

func (s *ParticleSystem) PaintConnections(c render.Canvas) {
	items := s.pool.Items()
	for _, e := range s.edges {
		if e.A >= len(items) || e.B >= len(items) {
			continue
		}
		a, b := &items[e.A], &items[e.B]
		clr := render.Mix(a.Color, b.Color, 0.5)
		alpha := e.Opacity * math.Min(a.Opacity, b.Opacity)
		c.Line(e.X1, e.Y1, e.X2, e.Y2, 1, clr, alpha, s.blend)
	}
}

func (s *ParticleSystem) PaintEntities(c render.Canvas) {
	for i := range s.pool.Items() {
		p := s.pool.At(i)
		if p.Opacity <= 0 {
			continue
		}
		switch p.Category {
		case component.ParticleGlow:
			c.RadialGradient(p.X, p.Y, p.Size*6, glowStops(p.Color, 0.3), p.Opacity*0.8, s.blend)
			c.Circle(p.X, p.Y, p.Size*0.8, white, p.Opacity, s.blend)
		case component.ParticleChrome:
			c.RadialGradient(p.X, p.Y, p.Size*3, glowStops(p.Color, 0.5), p.Opacity*0.5, s.blend)
			c.Circle(p.X, p.Y, p.Size, render.Mix(p.Color, white, 0.6), p.Opacity, s.blend)
			c.StrokeCircle(p.X, p.Y, p.Size*1.6, 1, white, p.Opacity*0.6, s.blend)
		default:
			c.RadialGradient(p.X, p.Y, p.Size*4, glowStops(p.Color, 0.4), p.Opacity*0.6, s.blend)
			c.Circle(p.X, p.Y, p.Size, p.Color, p.Opacity, s.blend)
		}
	}
}

func (s *ParticleSystem) PaintEmbellishments(c render.Canvas) {
	for _, p := range s.pool.Items() {
		if p.Opacity > 0 && s.paintRng.Chance(config.SparkChance) {
			paintSpark(c, p.X, p.Y, p.Size*3, s.blend)
		}
	}
}
