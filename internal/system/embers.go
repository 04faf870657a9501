// internal/system/embers.go
package system

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"

	"go-animated-bg/internal/component"
	"go-animated-bg/internal/config"
	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/entity"
	"go-animated-bg/internal/utils"
	"go-animated-bg/pkg/render"
)

const (
	emberWobble      = 0.02 // боковое покачивание на тик
	emberBuoyancy    = 0.3  // минимальная доля скорости подъёма
	riverSegments    = 48
	riverNoiseScale  = 0.008
	riverNoiseDrift  = 0.05
	perlinAlpha      = 2.0
	perlinBeta       = 2.0
	perlinIterations = 3
)

// EmberSystem — скин fire-lava: угли поднимаются от нижнего края, по низу
// текут лавовые реки. Смешивание аддитивное, кадр очищается полностью.
type EmberSystem struct {
	def        defs.SkinDefinition
	palette    []color.NRGBA
	background []render.Stop
	blend      render.Blend

	rng      *utils.PRNGService
	paintRng *utils.PRNGService
	noise    *perlin.Perlin

	width, height float64
	seeding       bool // при Initialize угли раскидываются по всей высоте
	embers        *entity.Pool[component.Ember]
	rivers        *entity.Pool[component.LavaRiver]
}

// NewEmberSystem создаёт систему углей и рек.
func NewEmberSystem(def defs.SkinDefinition, rng *utils.PRNGService) (*EmberSystem, error) {
	palette, err := def.Colors()
	if err != nil {
		return nil, err
	}
	background, err := def.BackgroundStops()
	if err != nil {
		return nil, err
	}
	s := &EmberSystem{
		def:        def,
		palette:    palette,
		background: background,
		blend:      def.Blend(),
		rng:        rng,
		paintRng:   rng.Fork(),
		noise:      perlin.NewPerlin(perlinAlpha, perlinBeta, perlinIterations, rng.Int63()),
	}
	s.embers = entity.NewPool(s.newEmber)
	s.rivers = entity.NewPool(s.newRiver)
	return s, nil
}

func (s *EmberSystem) Definition() defs.SkinDefinition { return s.def }

func (s *EmberSystem) EntityCount() int { return s.embers.Len() + s.rivers.Len() }

// Embers — пул углей.
func (s *EmberSystem) Embers() *entity.Pool[component.Ember] { return s.embers }

// Rivers — пул лавовых рек.
func (s *EmberSystem) Rivers() *entity.Pool[component.LavaRiver] { return s.rivers }

func (s *EmberSystem) Initialize(width, height float64) {
	s.width, s.height = width, height
	s.seeding = true
	s.embers.Initialize(s.def.Entities.Count(width, height))
	s.seeding = false
	s.rivers.Initialize(s.def.Secondary.Count(width, height))
}

func (s *EmberSystem) newEmber(int) component.Ember {
	y := s.height + s.rng.Range(0, 20)
	if s.seeding {
		y = s.rng.Float64() * s.height
	}
	size := s.rng.Range(s.def.Size.Min, s.def.Size.Max)
	return component.Ember{
		X:          s.rng.Float64() * s.width,
		Y:          y,
		VX:         s.rng.Spread(0.6),
		VY:         -s.rng.Range(s.def.Speed.Min, s.def.Speed.Max),
		Size:       size,
		GlowRadius: size * s.rng.Range(3, 6),
		Color:      s.palette[s.rng.Intn(len(s.palette))],
		Phase:      s.rng.Float64() * 2 * math.Pi,
		Lifecycle: component.Lifecycle{
			MaxLife: math.Max(1, math.Round(s.rng.Range(s.def.Lifetime.Min, s.def.Lifetime.Max))),
		},
	}
}

func (s *EmberSystem) newRiver(int) component.LavaRiver {
	return component.LavaRiver{
		X:         s.rng.Range(-0.1, 0.5) * s.width,
		Y:         s.height - s.rng.Range(20, 120),
		Width:     s.rng.Range(0.4, 0.9) * s.width,
		Height:    s.rng.Range(8, 20),
		FlowPhase: s.rng.Float64() * 2 * math.Pi,
		FlowSpeed: s.rng.Range(0.02, 0.05),
		Seed:      s.rng.Float64() * 1000,
		Color:     s.palette[s.rng.Intn(len(s.palette))],
		Lifecycle: component.Lifecycle{
			MaxLife: math.Round(s.rng.Range(600, 1200)),
		},
	}
}

func (s *EmberSystem) Update(in *component.InteractionState, step float64) {
	minRise := s.def.Speed.Min * emberBuoyancy
	for i := 0; i < s.embers.Len(); i++ {
		e := s.embers.At(i)

		e.VX += math.Sin(e.Age*breathingRate+e.Phase) * emberWobble * step
		attract(&e.VX, &e.VY, e.X, e.Y, in, s.def.PointerRadius, s.def.PointerGain, step)
		limitSpeed(&e.VX, &e.VY, s.def.MaxSpeed)
		// Угли не тонут: указатель может замедлить подъём, но не развернуть его
		if e.VY > -minRise {
			e.VY = -minRise
		}

		e.X = utils.Wrap(e.X+e.VX*step, s.width, config.WrapMargin)
		e.Y = math.Min(e.Y+e.VY*step, s.height+config.WrapMargin)

		e.Advance(step)
		e.Opacity = opacityFor(s.def.Opacity, e.Lifecycle, e.Phase)
		if e.Expired() || e.Y < -config.WrapMargin {
			s.embers.Replace(i)
		}
	}

	for i := 0; i < s.rivers.Len(); i++ {
		r := s.rivers.At(i)
		r.FlowPhase += r.FlowSpeed * step
		r.Advance(step)
		envelope := math.Sin(math.Pi * r.Progress())
		r.Intensity = utils.Clamp01((0.6 + 0.4*math.Sin(r.FlowPhase)) * envelope)
		if r.Expired() {
			s.rivers.Replace(i)
		}
	}
}

func (s *EmberSystem) PointerMoved(*component.InteractionState) {}

func (s *EmberSystem) PaintClear(c render.Canvas) {
	c.Clear(s.background[0].Color)
}

func (s *EmberSystem) PaintBackground(c render.Canvas, in *component.InteractionState) {
	w, h := c.Size()
	c.LinearGradient(0, 0, 0, h, s.background, 1)
	paintAmbient(c, s.palette, in.ParallaxX, in.ParallaxY, 0.06)
	// Жар снизу
	c.RadialGradient(w/2, h*1.2, math.Max(w, h)*0.6, []render.Stop{
		{Offset: 0, Color: s.palette[0]},
		{Offset: 1, Color: render.Transparent},
	}, 0.25, render.BlendNormal)
}

// PaintStructure рисует лавовые реки: средняя линия колеблется по шуму
// Перлина, поверх широкого тёмного потока идёт яркая сердцевина.
func (s *EmberSystem) PaintStructure(c render.Canvas) {
	pts := make([]render.Point, riverSegments+1)
	for _, r := range s.rivers.Items() {
		if r.Intensity <= 0 || r.Width <= 0 {
			continue
		}
		for k := range pts {
			x := r.X + r.Width*float64(k)/riverSegments
			n := s.noise.Noise2D(x*riverNoiseScale+r.Seed, r.FlowPhase*riverNoiseDrift)
			pts[k] = render.Point{X: x, Y: r.Y + n*r.Height*2}
		}
		c.Polyline(pts, r.Height*2.5, render.Darken(r.Color, 0.5), r.Intensity*0.3, s.blend)
		c.Polyline(pts, r.Height, r.Color, r.Intensity*0.6, s.blend)
		c.Polyline(pts, r.Height*0.3, render.Mix(r.Color, white, 0.5), r.Intensity*0.8, s.blend)
	}
}

func (s *EmberSystem) PaintConnections(render.Canvas) {}

func (s *EmberSystem) PaintEntities(c render.Canvas) {
	for _, e := range s.embers.Items() {
		if e.Opacity <= 0 {
			continue
		}
		c.RadialGradient(e.X, e.Y, e.GlowRadius, glowStops(e.Color, 0.3), e.Opacity*0.7, s.blend)
		c.Circle(e.X, e.Y, e.Size, render.Mix(e.Color, white, 0.4), e.Opacity, s.blend)
	}
}

func (s *EmberSystem) PaintEmbellishments(c render.Canvas) {
	for _, e := range s.embers.Items() {
		if e.Opacity > 0 && s.paintRng.Chance(config.SparkChance) {
			paintSpark(c, e.X, e.Y, e.Size*3, s.blend)
		}
	}
}
