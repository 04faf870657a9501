// internal/component/interaction.go
package component

import "math"

// InteractionState — состояние указателя, принадлежит одному экземпляру движка
type InteractionState struct {
	PointerX, PointerY   float64
	ParallaxX, ParallaxY float64
	HasPointer           bool // до первого движения притяжения нет
}

// MovePointer записывает позицию указателя и пересчитывает параллакс
// относительно центра поверхности.
func (s *InteractionState) MovePointer(x, y, width, height, parallaxFactor float64) {
	s.PointerX, s.PointerY = x, y
	s.ParallaxX = (x - width/2) * parallaxFactor
	s.ParallaxY = (y - height/2) * parallaxFactor
	s.HasPointer = true
}

// Reset возвращает состояние к исходному.
func (s *InteractionState) Reset() {
	*s = InteractionState{}
}

// DistanceTo возвращает расстояние от указателя до точки; без указателя +Inf.
func (s *InteractionState) DistanceTo(x, y float64) float64 {
	if !s.HasPointer {
		return math.Inf(1)
	}
	return math.Hypot(x-s.PointerX, y-s.PointerY)
}
