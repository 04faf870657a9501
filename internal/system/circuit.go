// internal/system/circuit.go
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

// Индексы цветов в палитре платы
const (
	toneCyan = iota
	toneBlue
	toneEmber
	toneGold
)

// CircuitSystem — скин motherboard: статичная сеть узлов и дорожек с ядром
// в центре, по дорожкам бегут импульсы.
type CircuitSystem struct {
	def        defs.SkinDefinition
	palette    []color.NRGBA
	background []render.Stop
	blend      render.Blend

	rng      *utils.PRNGService
	paintRng *utils.PRNGService

	width, height float64
	time          float64 // анимационное время узлов, +0.02 за тик
	elapsed       float64 // секунды для фоновых полей
	layout        []component.Point
	nodes         *entity.Pool[component.CircuitNode]
	lines         []component.CircuitLine
	links         []Link
}

// NewCircuitSystem создаёт систему платы; сеть строится в Initialize.
func NewCircuitSystem(def defs.SkinDefinition, rng *utils.PRNGService) (*CircuitSystem, error) {
	palette, err := def.Colors()
	if err != nil {
		return nil, err
	}
	background, err := def.BackgroundStops()
	if err != nil {
		return nil, err
	}
	s := &CircuitSystem{
		def:        def,
		palette:    palette,
		background: background,
		blend:      def.Blend(),
		rng:        rng,
		paintRng:   rng.Fork(),
	}
	s.nodes = entity.NewPool(s.newNode)
	return s, nil
}

func (s *CircuitSystem) Definition() defs.SkinDefinition { return s.def }

func (s *CircuitSystem) EntityCount() int { return s.nodes.Len() }

// Nodes — узлы сети, ядро всегда под индексом 0.
func (s *CircuitSystem) Nodes() []component.CircuitNode { return s.nodes.Items() }

// Lines — дорожки сети вместе с их импульсами.
func (s *CircuitSystem) Lines() []component.CircuitLine { return s.lines }

// Links — пары узлов, соединённые дорожками, в том же порядке, что и Lines.
func (s *CircuitSystem) Links() []Link { return s.links }

func (s *CircuitSystem) tone(i int) color.NRGBA {
	return s.palette[i%len(s.palette)]
}

// Initialize перестраивает сеть целиком: сетка, ядро, дорожки.
func (s *CircuitSystem) Initialize(width, height float64) {
	s.width, s.height = width, height
	s.time, s.elapsed = 0, 0
	s.lines, s.links = nil, nil
	if width <= 0 || height <= 0 {
		s.layout = nil
		s.nodes.Initialize(0)
		return
	}
	core := component.Point{X: width / 2, Y: height / 2}
	s.layout = append([]component.Point{core}, layoutGrid(width, height,
		config.CircuitGridPitch, config.CircuitJitter, config.CoreExclusionRadius, core, s.rng)...)
	s.nodes.Initialize(len(s.layout))

	nodes := s.nodes.Items()
	s.links = linkTopology(nodes, s.rng)
	s.lines = make([]component.CircuitLine, 0, len(s.links))
	for _, l := range s.links {
		from, to := &nodes[l.A], &nodes[l.B]
		from.Connections = append(from.Connections, component.Point{X: to.X, Y: to.Y})
		to.Connections = append(to.Connections, component.Point{X: from.X, Y: from.Y})
		s.lines = append(s.lines, component.CircuitLine{
			X1: from.X, Y1: from.Y,
			X2: to.X, Y2: to.Y,
			Color:  s.palette[s.rng.Intn(len(s.palette))],
			Width:  s.rng.Range(1, 4),
			Energy: s.rng.Range(0.3, 1.1),
		})
	}
}

func (s *CircuitSystem) newNode(index int) component.CircuitNode {
	p := s.layout[index]
	if index == 0 {
		return component.CircuitNode{
			X:          p.X,
			Y:          p.Y,
			Size:       config.CoreNodeSize,
			Glow:       s.rng.Range(20, 50),
			PulsePhase: s.rng.Float64() * 2 * math.Pi,
			Energy:     1,
			IsCore:     true,
			Lifecycle:  component.Immortal(),
		}
	}
	return component.CircuitNode{
		X:          p.X,
		Y:          p.Y,
		Size:       s.rng.Range(s.def.Size.Min, s.def.Size.Max),
		Glow:       s.rng.Range(20, 50),
		PulsePhase: s.rng.Float64() * 2 * math.Pi,
		Energy:     s.rng.Range(0.2, 1.0),
		Lifecycle:  component.Immortal(),
	}
}

func (s *CircuitSystem) newPulse(line *component.CircuitLine) component.ElectricPulse {
	return component.ElectricPulse{
		X:         line.X1,
		Y:         line.Y1,
		StartX:    line.X1,
		StartY:    line.Y1,
		TargetX:   line.X2,
		TargetY:   line.Y2,
		Speed:     s.rng.Range(s.def.Speed.Min, s.def.Speed.Max),
		Color:     s.palette[s.rng.Intn(len(s.palette))],
		Intensity: s.rng.Range(0.4, 1.2),
		Size:      s.rng.Range(3, 9),
	}
}

// Update продвигает импульсы (завершённые удаляются в тот же тик) и
// анимирует свечение узлов.
func (s *CircuitSystem) Update(_ *component.InteractionState, step float64) {
	s.elapsed += step / config.ReferenceTPS
	for i := range s.lines {
		line := &s.lines[i]
		if len(line.Pulses) < config.PulseRandomLimit && s.rng.Chance(config.PulseSpawnChance*step) {
			line.Pulses = append(line.Pulses, s.newPulse(line))
		}
		kept := line.Pulses[:0]
		for _, p := range line.Pulses {
			if !p.Advance(step) {
				kept = append(kept, p)
			}
		}
		clear(line.Pulses[len(kept):])
		line.Pulses = kept
	}

	s.time += config.CircuitTimeStep * step
	for i := 0; i < s.nodes.Len(); i++ {
		n := s.nodes.At(i)
		n.PulsePhase += config.CircuitPhaseStep * step
		n.Advance(step)
		if n.IsCore {
			n.Glow = 50 + math.Sin(s.time*2)*20
			n.Energy = 0.8 + math.Sin(s.time*1.5)*0.2
			continue
		}
		n.Glow = 15 + math.Sin(n.PulsePhase)*8
		n.Energy = 0.4 + math.Sin(n.PulsePhase*0.5)*0.2
	}
}

// PointerMoved запускает импульсы на дорожках рядом с указателем.
func (s *CircuitSystem) PointerMoved(in *component.InteractionState) {
	if in == nil || !in.HasPointer {
		return
	}
	for i := range s.lines {
		line := &s.lines[i]
		if len(line.Pulses) >= config.PulseHardLimit {
			continue
		}
		d := utils.DistanceToSegment(in.PointerX, in.PointerY, line.X1, line.Y1, line.X2, line.Y2)
		if d < config.PointerPulseDistance && s.rng.Chance(config.PointerPulseChance) {
			line.Pulses = append(line.Pulses, s.newPulse(line))
		}
	}
}

func (s *CircuitSystem) PaintClear(c render.Canvas) {
	c.Clear(s.background[0].Color)
}

// energyField — мягкое пульсирующее поле света поверх фона.
type energyField struct {
	x, y, r float64
	stops   []render.Stop
	alpha   float64
	period  float64 // секунды
	reverse bool
}

func (s *CircuitSystem) energyFields(w, h float64) []energyField {
	cyan, blue, ember, gold := s.tone(toneCyan), s.tone(toneBlue), s.tone(toneEmber), s.tone(toneGold)
	return []energyField{
		{
			x: w / 2, y: h / 2, r: 192,
			stops: []render.Stop{
				{Offset: 0, Color: render.WithAlpha(cyan, 0.4)},
				{Offset: 0.3, Color: render.WithAlpha(blue, 0.2)},
				{Offset: 0.7, Color: render.Transparent},
			},
			alpha: 0.1, period: 4,
		},
		{
			x: w*0.9 - 128, y: h*0.1 + 128, r: 128,
			stops: []render.Stop{
				{Offset: 0, Color: render.WithAlpha(gold, 0.3)},
				{Offset: 0.7, Color: render.Transparent},
			},
			alpha: 0.08, period: 6, reverse: true,
		},
		{
			x: w*0.15 + 96, y: h*0.85 - 96, r: 96,
			stops: []render.Stop{
				{Offset: 0, Color: render.WithAlpha(ember, 0.25)},
				{Offset: 0.7, Color: render.Transparent},
			},
			alpha: 0.06, period: 5,
		},
	}
}

func (s *CircuitSystem) PaintBackground(c render.Canvas, in *component.InteractionState) {
	w, h := c.Size()
	c.LinearGradient(0, 0, w, h, s.background, 1)

	for _, f := range s.energyFields(w, h) {
		phase := 2 * math.Pi * s.elapsed / f.period
		if f.reverse {
			phase = -phase
		}
		pulse := 0.75 + 0.25*math.Sin(phase)
		c.RadialGradient(f.x, f.y, f.r, f.stops, f.alpha*pulse, render.BlendNormal)
	}

	// Сетка платы, смещённая параллаксом
	pitch := config.BackgroundGridPitch
	grid := s.tone(toneCyan)
	offsetX := math.Mod(in.ParallaxX*config.BackgroundGridFactor, pitch)
	offsetY := math.Mod(in.ParallaxY*config.BackgroundGridFactor, pitch)
	for x := offsetX; x < w+pitch; x += pitch {
		c.Line(x, 0, x, h, 1, grid, 0.03, render.BlendNormal)
	}
	for y := offsetY; y < h+pitch; y += pitch {
		c.Line(0, y, w, y, 1, grid, 0.03, render.BlendNormal)
	}
}

// PaintStructure рисует дорожки: широкий ореол и сама линия.
func (s *CircuitSystem) PaintStructure(c render.Canvas) {
	for i := range s.lines {
		line := &s.lines[i]
		c.Line(line.X1, line.Y1, line.X2, line.Y2, line.Width*3, line.Color, 0.1*line.Energy, s.blend)
		c.Line(line.X1, line.Y1, line.X2, line.Y2, line.Width, line.Color, utils.Clamp01(0.6*line.Energy), s.blend)
	}
}

// PaintConnections рисует импульсы поверх дорожек.
func (s *CircuitSystem) PaintConnections(c render.Canvas) {
	for i := range s.lines {
		for _, p := range s.lines[i].Pulses {
			intensity := utils.Clamp01(p.Intensity)
			c.RadialGradient(p.X, p.Y, p.Size*2, glowStops(p.Color, 0.5), intensity, s.blend)
			c.Circle(p.X, p.Y, p.Size*0.4, white, intensity*0.8, s.blend)
		}
	}
}

func (s *CircuitSystem) nodeColor(energy float64) color.NRGBA {
	switch {
	case energy > 0.6:
		return s.tone(toneGold)
	case energy > 0.4:
		return s.tone(toneEmber)
	default:
		return s.tone(toneCyan)
	}
}

func (s *CircuitSystem) PaintEntities(c render.Canvas) {
	for _, n := range s.nodes.Items() {
		if n.IsCore {
			s.paintCore(c, n)
			continue
		}
		clr := s.nodeColor(n.Energy)
		energy := utils.Clamp01(n.Energy)
		c.RadialGradient(n.X, n.Y, n.Glow, glowStops(clr, 0.2), 0.15*energy, s.blend)
		c.RadialGradient(n.X, n.Y, n.Size, []render.Stop{
			{Offset: 0, Color: white},
			{Offset: 0.4, Color: clr},
			{Offset: 1, Color: render.Transparent},
		}, energy, s.blend)
	}
}

func (s *CircuitSystem) paintCore(c render.Canvas, n component.CircuitNode) {
	c.RadialGradient(n.X, n.Y, n.Glow*2, glowStops(s.tone(toneCyan), 0.3), 0.2, s.blend)
	c.RadialGradient(n.X, n.Y, n.Size*3, []render.Stop{
		{Offset: 0, Color: white},
		{Offset: 0.2, Color: s.tone(toneCyan)},
		{Offset: 0.5, Color: s.tone(toneBlue)},
		{Offset: 0.8, Color: s.tone(toneEmber)},
		{Offset: 1, Color: render.Transparent},
	}, utils.Clamp01(n.Energy), s.blend)
	c.Circle(n.X, n.Y, n.Size*0.8, white, 1, s.blend)

	ring := n.Size*2 + math.Sin(s.time*2)*5
	c.StrokeCircle(n.X, n.Y, ring, 2, s.tone(toneCyan), utils.Clamp01(0.7+math.Sin(s.time*3)*0.3), s.blend)
}

func (s *CircuitSystem) PaintEmbellishments(c render.Canvas) {
	for _, n := range s.nodes.Items() {
		if !n.IsCore && s.paintRng.Chance(config.SparkChance) {
			paintSpark(c, n.X, n.Y, n.Size*3, s.blend)
		}
	}
}
