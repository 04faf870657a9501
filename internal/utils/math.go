// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 — Clamp в [0, 1], NaN превращается в 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Distance — евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistanceSq — квадрат расстояния, без корня
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}

// DistanceToSegment возвращает расстояние от точки (px, py) до отрезка.
// Вырожденный отрезок считается точкой.
func DistanceToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(px, py, x1, y1)
	}
	t := Clamp01(((px-x1)*dx + (py-y1)*dy) / lenSq)
	return Distance(px, py, x1+dx*t, y1+dy*t)
}

// Wrap переносит координату на противоположную сторону, если она вышла
// за [-margin, size+margin].
func Wrap(v, size, margin float64) float64 {
	if v < -margin {
		return size + margin
	}
	if v > size+margin {
		return -margin
	}
	return v
}
