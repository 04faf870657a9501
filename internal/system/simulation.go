// internal/system/simulation.go
package system

import (
	"fmt"

	"go-animated-bg/internal/component"
	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/utils"
	"go-animated-bg/pkg/render"
)

// Scene — слои кадра. Renderer вызывает их в фиксированном порядке; методы
// только читают состояние симуляции и никогда его не меняют.
type Scene interface {
	PaintClear(c render.Canvas)
	PaintBackground(c render.Canvas, in *component.InteractionState)
	PaintStructure(c render.Canvas)
	PaintConnections(c render.Canvas)
	PaintEntities(c render.Canvas)
	PaintEmbellishments(c render.Canvas)
}

// Simulation — пул сущностей, модель сил и (если есть) граф связей одного скина.
type Simulation interface {
	Scene
	// Initialize полностью пересоздаёт сущности под новый размер поверхности.
	Initialize(width, height float64)
	// Update продвигает симуляцию на step опорных кадров (60 Гц).
	Update(in *component.InteractionState, step float64)
	// PointerMoved вызывается синхронно на каждое движение указателя.
	PointerMoved(in *component.InteractionState)
	// EntityCount — число сущностей в пуле.
	EntityCount() int
	Definition() defs.SkinDefinition
}

// NewSimulation создаёт симуляцию по определению скина.
func NewSimulation(def defs.SkinDefinition, rng *utils.PRNGService) (Simulation, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	switch def.Kind {
	case defs.KindParticles:
		return wrap(NewParticleSystem(def, rng))
	case defs.KindEmbers:
		return wrap(NewEmberSystem(def, rng))
	case defs.KindCircuit:
		return wrap(NewCircuitSystem(def, rng))
	}
	return nil, fmt.Errorf("skin %s: no simulation for kind %q", def.ID, def.Kind)
}

// wrap не даёт типизированному nil превратиться в ненулевой интерфейс.
func wrap[T Simulation](s T, err error) (Simulation, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
