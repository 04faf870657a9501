// internal/component/ember.go
package component

import "image/color"

// Ember — искра, поднимающаяся вверх
type Ember struct {
	X, Y       float64
	VX, VY     float64 // VY отрицательна: угли летят вверх
	Size       float64
	GlowRadius float64
	Color      color.NRGBA
	Opacity    float64
	Phase      float64
	Lifecycle
}

// LavaRiver — горизонтальный поток лавы у нижнего края
type LavaRiver struct {
	X, Y      float64 // левый край средней линии
	Width     float64
	Height    float64 // толщина потока
	FlowPhase float64 // задаёт колебание яркости
	FlowSpeed float64
	Seed      float64 // сдвиг по шуму Перлина, свой у каждой реки
	Color     color.NRGBA
	Intensity float64
	Lifecycle
}
