// internal/component/circuit.go
package component

import (
	"image/color"
	"math"
)

// CircuitNode — узел материнской платы. Позиция неизменна после генерации.
type CircuitNode struct {
	X, Y        float64
	Size        float64
	Glow        float64
	PulsePhase  float64
	Energy      float64
	IsCore      bool
	Connections []Point // копии позиций соседей, не ссылки
	Lifecycle
}

// CircuitLine — статичная дорожка между двумя узлами
type CircuitLine struct {
	X1, Y1, X2, Y2 float64
	Color          color.NRGBA
	Width          float64
	Energy         float64
	Pulses         []ElectricPulse
}

// Length возвращает длину дорожки.
func (l *CircuitLine) Length() float64 {
	dx, dy := l.X2-l.X1, l.Y2-l.Y1
	return math.Sqrt(dx*dx + dy*dy)
}

// ElectricPulse — бегущий по дорожке сигнал. Удаляется, когда Progress >= 1.
type ElectricPulse struct {
	X, Y             float64
	StartX, StartY   float64
	TargetX, TargetY float64
	Progress         float64
	Speed            float64
	Color            color.NRGBA
	Intensity        float64
	Size             float64
}

// Advance продвигает импульс и пересчитывает его позицию. Возвращает true,
// если импульс дошёл до конца.
func (p *ElectricPulse) Advance(step float64) bool {
	p.Progress += p.Speed * step
	if p.Progress >= 1 {
		p.Progress = 1
	}
	p.X = p.StartX + (p.TargetX-p.StartX)*p.Progress
	p.Y = p.StartY + (p.TargetY-p.StartY)*p.Progress
	return p.Progress >= 1
}
