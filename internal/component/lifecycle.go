// internal/component/lifecycle.go
package component

import "math"

// Point — позиция в логических координатах поверхности
type Point struct {
	X, Y float64
}

// Lifecycle — возраст сущности и предел её жизни, в тиках
type Lifecycle struct {
	Age     float64
	MaxLife float64
}

// Immortal возвращает цикл жизни, который никогда не истекает (узлы схемы).
func Immortal() Lifecycle {
	return Lifecycle{MaxLife: math.Inf(1)}
}

// Advance увеличивает возраст; возраст не убывает до замены сущности.
func (l *Lifecycle) Advance(step float64) {
	if step > 0 {
		l.Age += step
	}
}

// Expired сообщает, что сущность отжила своё и должна быть заменена.
func (l Lifecycle) Expired() bool {
	return l.Age >= l.MaxLife
}

// Progress — доля прожитой жизни в [0,1].
func (l Lifecycle) Progress() float64 {
	if l.MaxLife <= 0 || math.IsInf(l.MaxLife, 1) {
		return 0
	}
	return math.Min(1, l.Age/l.MaxLife)
}
