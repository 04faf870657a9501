// internal/app/surface.go
package app

import "math"

// SurfaceManager следит за размером поверхности рисования. Логические
// координаты (единицы CSS) переводятся в пиксели устройства умножением на DPR;
// размер буфера равен ceil(size × dpr).
type SurfaceManager struct {
	width, height      float64
	dpr                float64
	backingW, backingH int
	attached           bool
	initializations    int

	// onReinit вызывается при смене логического размера
	onReinit func(width, height float64)
}

// NewSurfaceManager создаёт неприкреплённую поверхность.
func NewSurfaceManager(onReinit func(width, height float64)) *SurfaceManager {
	return &SurfaceManager{dpr: 1, onReinit: onReinit}
}

// Attach прикрепляет поверхность и сразу применяет размер.
func (s *SurfaceManager) Attach(width, height, dpr float64) bool {
	s.attached = true
	return s.Resize(width, height, dpr)
}

// Detach открепляет поверхность; последующие Resize ничего не делают.
func (s *SurfaceManager) Detach() {
	s.attached = false
	s.width, s.height = 0, 0
	s.backingW, s.backingH = 0, 0
}

// Resize применяет новый размер. Ничего не делает, если поверхность не
// прикреплена или размер вырожден. Повторный вызов с тем же размером не
// пересоздаёт сущности. Возвращает true, если сущности были пересозданы.
func (s *SurfaceManager) Resize(width, height, dpr float64) bool {
	if !s.attached || !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return false
	}
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	s.dpr = dpr
	s.backingW = int(math.Ceil(width * dpr))
	s.backingH = int(math.Ceil(height * dpr))
	if width == s.width && height == s.height {
		return false
	}
	s.width, s.height = width, height
	s.initializations++
	if s.onReinit != nil {
		s.onReinit(width, height)
	}
	return true
}

// Attached — прикреплена ли поверхность.
func (s *SurfaceManager) Attached() bool { return s.attached }

// Ready — прикреплена и имеет ненулевой размер.
func (s *SurfaceManager) Ready() bool {
	return s.attached && s.width > 0 && s.height > 0
}

// Size — логический размер.
func (s *SurfaceManager) Size() (float64, float64) { return s.width, s.height }

// DPR — отношение пикселей устройства.
func (s *SurfaceManager) DPR() float64 { return s.dpr }

// BackingSize — размер буфера в пикселях устройства.
func (s *SurfaceManager) BackingSize() (int, int) { return s.backingW, s.backingH }

// Initializations — сколько раз сущности пересоздавались под новый размер.
func (s *SurfaceManager) Initializations() int { return s.initializations }
