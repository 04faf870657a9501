// internal/defs/types.go
package defs

import (
	"errors"
	"math"
)

// SkinID identifies one of the built-in backgrounds.
type SkinID string

const (
	SkinLiquidGlass SkinID = "liquid-glass"
	SkinAINetwork   SkinID = "ai-network"
	SkinFireLava    SkinID = "fire-lava"
	SkinMotherboard SkinID = "motherboard"
)

// ErrUnknownSkin is returned when a definition is requested by an ID that is
// not in the library.
var ErrUnknownSkin = errors.New("unknown skin")

// SkinKind selects the entity model and force model of a skin.
type SkinKind string

const (
	KindParticles SkinKind = "particles" // частицы со связями
	KindEmbers    SkinKind = "embers"    // угли и лавовые реки
	KindCircuit   SkinKind = "circuit"   // узлы, дорожки и импульсы
)

// CompositeMode defines how entities are composited onto the surface.
type CompositeMode string

const (
	CompositeNormal   CompositeMode = "normal"
	CompositeAdditive CompositeMode = "additive"
)

// ClearMode defines what happens to the previous frame.
type ClearMode string

const (
	ClearFull  ClearMode = "full"  // полная очистка
	ClearTrail ClearMode = "trail" // полупрозрачная заливка, оставляет шлейф
)

// OpacityCurve defines how an entity's opacity follows its age.
type OpacityCurve string

const (
	OpacityLinear    OpacityCurve = "linear"    // 1 - age/maxLife
	OpacityBreathing OpacityCurve = "breathing" // синусоида от возраста
)

// CountFormula derives a pool size from the surface size.
// If WidthPerEntity is set the count is based on width alone, otherwise on area.
type CountFormula struct {
	AreaPerEntity  float64 `json:"area_per_entity,omitempty"`
	WidthPerEntity float64 `json:"width_per_entity,omitempty"`
	Min            int     `json:"min"`
	Max            int     `json:"max"`
}

// Count returns the number of entities for a w×h surface. Degenerate surfaces
// always yield zero.
func (f CountFormula) Count(w, h float64) int {
	if w <= 0 || h <= 0 || math.IsNaN(w) || math.IsNaN(h) {
		return 0
	}
	var n int
	switch {
	case f.WidthPerEntity > 0:
		n = int(math.Floor(w / f.WidthPerEntity))
	case f.AreaPerEntity > 0:
		n = int(math.Floor(w * h / f.AreaPerEntity))
	}
	if n < f.Min {
		n = f.Min
	}
	if f.Max > 0 && n > f.Max {
		n = f.Max
	}
	return n
}

// Range is a closed-open numeric range used for randomised attributes.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
