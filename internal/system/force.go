// internal/system/force.go
package system

import (
	"math"

	"go-animated-bg/internal/component"
	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/utils"
)

// breathingRate — скорость синусоиды "дыхания" на тик
const breathingRate = 0.05

// attract подталкивает скорость к указателю пропорционально
// (radius - distance) / radius, с коэффициентом gain.
func attract(vx, vy *float64, x, y float64, in *component.InteractionState, radius, gain, step float64) bool {
	if in == nil || radius <= 0 {
		return false
	}
	dist := in.DistanceTo(x, y)
	if dist >= radius || dist == 0 {
		return false
	}
	force := (radius - dist) / radius
	*vx += (in.PointerX - x) / dist * force * gain * step
	*vy += (in.PointerY - y) / dist * force * gain * step
	return true
}

// limitSpeed ограничивает модуль скорости.
func limitSpeed(vx, vy *float64, max float64) {
	if max <= 0 {
		return
	}
	speed := math.Hypot(*vx, *vy)
	if speed > max {
		*vx *= max / speed
		*vy *= max / speed
	}
}

// opacityFor вычисляет прозрачность по возрасту.
func opacityFor(curve defs.OpacityCurve, life component.Lifecycle, phase float64) float64 {
	switch curve {
	case defs.OpacityLinear:
		return utils.Clamp01(1 - life.Progress())
	default:
		// Огибающая гасит частицу на рождении и смерти, синус даёт "дыхание"
		envelope := math.Sin(math.Pi * life.Progress())
		breath := 0.65 + 0.35*math.Sin(life.Age*breathingRate+phase)
		return utils.Clamp01(envelope * breath)
	}
}

// pick выбирает индекс по весам; пустые или нулевые веса дают 0.
func pick(rng *utils.PRNGService, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	r := rng.Float64() * total
	upto := 0.0
	for i, w := range weights {
		upto += w
		if r < upto {
			return i
		}
	}
	return len(weights) - 1
}
