// internal/component/particle.go
package component

import "image/color"

// ParticleCategory — вид частицы, влияет только на отрисовку
type ParticleCategory int

const (
	ParticleStandard ParticleCategory = iota
	ParticleGlow
	ParticleChrome
)

func (c ParticleCategory) String() string {
	switch c {
	case ParticleGlow:
		return "glow"
	case ParticleChrome:
		return "chrome"
	default:
		return "standard"
	}
}

// Particle — частица для скинов liquid-glass и ai-network
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Color    color.NRGBA
	Category ParticleCategory
	Opacity  float64
	Phase    float64 // сдвиг фазы "дыхания"
	Lifecycle
}
