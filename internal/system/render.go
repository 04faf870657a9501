// internal/system/render.go
package system

import (
	"go-animated-bg/internal/component"
	"go-animated-bg/pkg/render"
)

// Layer — слой кадра
type Layer int

const (
	LayerClear Layer = iota
	LayerBackground
	LayerStructure
	LayerConnections
	LayerEntities
	LayerEmbellishments
)

func (l Layer) String() string {
	switch l {
	case LayerClear:
		return "clear"
	case LayerBackground:
		return "background"
	case LayerStructure:
		return "structure"
	case LayerConnections:
		return "connections"
	case LayerEntities:
		return "entities"
	case LayerEmbellishments:
		return "embellishments"
	}
	return "unknown"
}

// DefaultLayers — порядок слоёв: очистка, фон, статичная структура, связи и
// импульсы, сущности, искры.
var DefaultLayers = []Layer{
	LayerClear,
	LayerBackground,
	LayerStructure,
	LayerConnections,
	LayerEntities,
	LayerEmbellishments,
}

// Renderer рисует кадр сцены. Он ничего не меняет в симуляции.
type Renderer struct {
	Opacity float64 // общая прозрачность поверхности
	Layers  []Layer
}

// NewRenderer создаёт рендерер с порядком слоёв по умолчанию и заданной
// прозрачностью поверхности.
func NewRenderer(opacity float64) *Renderer {
	return &Renderer{
		Opacity: opacity,
		Layers:  DefaultLayers,
	}
}

// Paint рисует один кадр. Без поверхности или сцены ничего не делает.
func (r *Renderer) Paint(c render.Canvas, scene Scene, in *component.InteractionState) {
	if c == nil || scene == nil {
		return
	}
	if in == nil {
		in = &component.InteractionState{}
	}
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	surface := render.WithOpacity(c, r.Opacity)
	for _, l := range r.Layers {
		switch l {
		case LayerClear:
			scene.PaintClear(surface)
		case LayerBackground:
			scene.PaintBackground(surface, in)
		case LayerStructure:
			scene.PaintStructure(surface)
		case LayerConnections:
			scene.PaintConnections(surface)
		case LayerEntities:
			scene.PaintEntities(surface)
		case LayerEmbellishments:
			scene.PaintEmbellishments(surface)
		}
	}
}
