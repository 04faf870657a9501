// internal/app/engine.go
package app

import (
	"fmt"
	"log"

	"go-animated-bg/internal/component"
	"go-animated-bg/internal/config"
	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/event"
	"go-animated-bg/internal/system"
	"go-animated-bg/internal/utils"
	"go-animated-bg/pkg/render"
)

// Engine — один экземпляр анимированного фона. Владеет своей симуляцией,
// состоянием указателя и поверхностью; ничего из этого не делится между
// экземплярами.
type Engine struct {
	def         defs.SkinDefinition
	sim         system.Simulation
	renderer    *system.Renderer
	surface     *SurfaceManager
	scheduler   *FrameScheduler
	interaction component.InteractionState
	dispatcher  *event.Dispatcher
	target      render.Canvas // если задан, каждый кадр сразу рисуется сюда
}

// NewEngine создаёт движок для скина. Движок не смонтирован.
func NewEngine(def defs.SkinDefinition, rng *utils.PRNGService) (*Engine, error) {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	sim, err := system.NewSimulation(def, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine for %s: %w", def.ID, err)
	}
	e := &Engine{
		def:      def,
		sim:      sim,
		renderer: system.NewRenderer(def.SurfaceAlpha()),
	}
	e.surface = NewSurfaceManager(e.reinitialize)
	e.scheduler = NewFrameScheduler(e.update)
	return e, nil
}

func (e *Engine) reinitialize(width, height float64) {
	e.sim.Initialize(width, height)
	log.Printf("Skin %s initialized for %.0fx%.0f: %d entities", e.def.ID, width, height, e.sim.EntityCount())
}

// Mount прикрепляет поверхность, создаёт сущности, подписывается на события
// указателя и размера и запускает цикл кадров.
func (e *Engine) Mount(d *event.Dispatcher, width, height, dpr float64) error {
	if e.Mounted() {
		return ErrAlreadyMounted
	}
	e.interaction.Reset()
	e.surface.Attach(width, height, dpr)
	if d != nil {
		d.Subscribe(event.PointerMoved, e)
		d.Subscribe(event.SurfaceResized, e)
		e.dispatcher = d
	}
	e.scheduler.Start()
	log.Printf("Mounted skin %s", e.def.ID)
	return nil
}

// Unmount останавливает цикл, отписывается от событий и открепляет
// поверхность. После этого Update и Draw ничего не делают.
func (e *Engine) Unmount() error {
	if !e.Mounted() {
		return ErrNotMounted
	}
	e.scheduler.Stop()
	if e.dispatcher != nil {
		e.dispatcher.Unsubscribe(event.PointerMoved, e)
		e.dispatcher.Unsubscribe(event.SurfaceResized, e)
		e.dispatcher = nil
	}
	e.surface.Detach()
	e.interaction.Reset()
	log.Printf("Unmounted skin %s after %d frames", e.def.ID, e.scheduler.Frames())
	return nil
}

// Mounted — запущен ли цикл кадров.
func (e *Engine) Mounted() bool {
	return e.scheduler.State() == Running
}

// OnEvent обрабатывает движение указателя и изменение размера.
func (e *Engine) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.PointerMoved:
		p, ok := ev.Data.(event.PointerData)
		if !ok {
			return
		}
		e.MovePointer(p.X, p.Y)
	case event.SurfaceResized:
		r, ok := ev.Data.(event.ResizeData)
		if !ok {
			return
		}
		if e.surface.Resize(r.Width, r.Height, r.DPR) {
			log.Printf("Surface resized to %.0fx%.0f @%.2fx", r.Width, r.Height, e.surface.DPR())
		}
	}
}

// MovePointer обновляет состояние указателя; скин платы может сразу
// запустить импульсы рядом с ним.
func (e *Engine) MovePointer(x, y float64) {
	if !e.Mounted() || !e.surface.Ready() {
		return
	}
	w, h := e.surface.Size()
	e.interaction.MovePointer(x, y, w, h, config.ParallaxFactor)
	e.sim.PointerMoved(&e.interaction)
}

// Update выполняет кадр симуляции через планировщик.
func (e *Engine) Update(step float64) bool {
	return e.scheduler.Step(step)
}

func (e *Engine) update(step float64) {
	if !e.surface.Ready() || step <= 0 {
		return
	}
	e.sim.Update(&e.interaction, step)
	if e.target != nil {
		e.renderer.Paint(e.target, e.sim, &e.interaction)
	}
}

// SetTarget задаёт поверхность, на которую планировщик рисует каждый кадр
// сам. Нужна, когда хост не вызывает Draw (headless-режим).
func (e *Engine) SetTarget(c render.Canvas) { e.target = c }

// Draw рисует текущий кадр. Без смонтированной поверхности это пустая операция.
func (e *Engine) Draw(c render.Canvas) bool {
	if !e.Mounted() || !e.surface.Ready() || c == nil {
		return false
	}
	e.renderer.Paint(c, e.sim, &e.interaction)
	return true
}

// Definition — определение скина.
func (e *Engine) Definition() defs.SkinDefinition { return e.def }

// Simulation — симуляция скина.
func (e *Engine) Simulation() system.Simulation { return e.sim }

// Surface — менеджер поверхности.
func (e *Engine) Surface() *SurfaceManager { return e.surface }

// Scheduler — планировщик кадров.
func (e *Engine) Scheduler() *FrameScheduler { return e.scheduler }

// Renderer — рендерер кадра.
func (e *Engine) Renderer() *system.Renderer { return e.renderer }

// Interaction возвращает копию состояния указателя.
func (e *Engine) Interaction() component.InteractionState { return e.interaction }
