// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800

	// Шаг симуляции измеряется в кадрах при 60 Гц
	ReferenceTPS = 60.0
	MaxStep      = 3.6 // как MaxDeltaTime = 0.06 с

	WrapMargin     = 50.0 // запас за краем поверхности перед переносом на другую сторону
	ParallaxFactor = 0.02

	// Трейл для частиц: полупрозрачная заливка вместо полной очистки
	TrailFadeAlpha = 0.12

	// Материнская плата
	CircuitGridPitch     = 120.0
	CircuitJitter        = 40.0
	CoreExclusionRadius  = 80.0
	CoreLinkCount        = 8
	NeighborLinkMin      = 2
	NeighborLinkMax      = 4
	NeighborCutoff       = 150.0
	CoreNodeSize         = 20.0
	BackgroundGridPitch  = 60.0
	BackgroundGridFactor = 0.1 // доля параллакса для сетки фона
	PulseSpawnChance     = 0.02
	PulseRandomLimit     = 3
	PulseHardLimit       = 8
	PointerPulseDistance = 50.0
	PointerPulseChance   = 0.1
	CircuitTimeStep      = 0.02
	CircuitPhaseStep     = 0.03

	SparkChance = 0.001
	SparkRays   = 6

	HUDOffsetX = 12
	HUDOffsetY = 20
)

var (
	BackgroundColor = color.NRGBA{10, 10, 10, 255}
	TrailColor      = color.NRGBA{6, 8, 20, 255}
	CoreWhite       = color.NRGBA{255, 255, 255, 255}
	HUDTextColor    = color.NRGBA{240, 240, 240, 255}
	HUDShadowColor  = color.NRGBA{20, 20, 30, 200}
	PauseDimColor   = color.NRGBA{0, 0, 0, 128}
)
