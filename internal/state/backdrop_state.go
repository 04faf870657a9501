// internal/state/backdrop_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-animated-bg/internal/app"
	"go-animated-bg/internal/config"
	"go-animated-bg/internal/event"
	"go-animated-bg/internal/gfx"
	"go-animated-bg/internal/ui"
	"go-animated-bg/internal/utils"
)

// Убеждаемся, что BackdropState соответствует интерфейсу State
var _ State = (*BackdropState)(nil)

var skinKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// BackdropState — один смонтированный скин. Вход монтирует движок, выход
// размонтирует его.
type BackdropState struct {
	stateMachine *StateMachine
	host         *Host
	index        int
	engine       *app.Engine
	buffer       gfx.Backbuffer // кадры копятся здесь, экран ebiten очищается
	painted      bool           // в буфере есть кадр движка

	cursorX, cursorY int
	hasCursor        bool
}

// NewBackdropState создаёт состояние для скина с номером index в порядке
// показа хоста.
func NewBackdropState(sm *StateMachine, host *Host, index int) (*BackdropState, error) {
	if index < 0 || index >= len(host.IDs) {
		return nil, fmt.Errorf("skin index %d out of range [0, %d)", index, len(host.IDs))
	}
	def, err := host.Library.Get(host.IDs[index])
	if err != nil {
		return nil, err
	}
	engine, err := app.NewEngine(def, utils.NewPRNGService(host.Seed))
	if err != nil {
		return nil, err
	}
	return &BackdropState{
		stateMachine: sm,
		host:         host,
		index:        index,
		engine:       engine,
	}, nil
}

func (s *BackdropState) Enter() {
	w, h, dpr := s.host.Size()
	if err := s.engine.Mount(s.host.Dispatcher, w, h, dpr); err != nil {
		log.Printf("Failed to mount skin %s: %v", s.engine.Definition().ID, err)
		return
	}
	s.hasCursor = false
	s.host.Dispatcher.Dispatch(event.Event{Type: event.SkinChanged, Data: s.engine.Definition().ID})
}

func (s *BackdropState) Exit() {
	s.buffer.Deallocate()
	s.painted = false
	if err := s.engine.Unmount(); err != nil {
		log.Printf("Failed to unmount skin %s: %v", s.engine.Definition().ID, err)
	}
}

func (s *BackdropState) Update(deltaTime float64) {
	if s.handleKeys() {
		return
	}
	s.pollCursor()
	s.engine.Update(app.StepFor(deltaTime))
}

// handleKeys обрабатывает клавиши; true — состояние сменилось.
func (s *BackdropState) handleKeys() bool {
	keys := s.host.keys
	for i, key := range skinKeys {
		if keys.justPressed(key) && i < len(s.host.IDs) && i != s.index {
			return s.switchTo(i)
		}
	}
	if keys.justPressed(ebiten.KeyTab) {
		delta := 1
		if keys.pressed(ebiten.KeyShift) {
			delta = -1
		}
		return s.switchTo(cycle(s.index, delta, len(s.host.IDs)))
	}
	if keys.justPressed(ebiten.KeyH) {
		s.host.HUD.Toggle()
	}
	if keys.justPressed(ebiten.KeyP) || keys.justPressed(ebiten.KeyEscape) {
		s.stateMachine.Push(NewPauseState(s.stateMachine, s))
		return true
	}
	return false
}

func (s *BackdropState) switchTo(index int) bool {
	if index == s.index {
		return false
	}
	next, err := NewBackdropState(s.stateMachine, s.host, index)
	if err != nil {
		log.Printf("Failed to switch skin: %v", err)
		return false
	}
	s.stateMachine.SetState(next)
	return true
}

// pollCursor превращает позицию курсора в событие указателя. Курсор
// приходит в пикселях буфера, движку нужны логические единицы.
func (s *BackdropState) pollCursor() {
	x, y := ebiten.CursorPosition()
	if s.hasCursor && x == s.cursorX && y == s.cursorY {
		return
	}
	s.cursorX, s.cursorY, s.hasCursor = x, y, true
	_, _, dpr := s.host.Size()
	s.host.MovePointer(float64(x)/dpr, float64(y)/dpr)
}

func (s *BackdropState) Draw(screen *ebiten.Image) {
	s.paint(screen)
	s.present(screen)
}

// paint рисует кадр движка в буфер того же размера, что и экран.
func (s *BackdropState) paint(screen *ebiten.Image) {
	_, _, dpr := s.host.Size()
	size := screen.Bounds().Size()
	canvas, ok := s.buffer.Canvas(size.X, size.Y, dpr)
	s.painted = ok && s.engine.Draw(canvas)
}

// present копирует последний кадр на экран и рисует HUD поверх.
func (s *BackdropState) present(screen *ebiten.Image) {
	if s.painted {
		s.buffer.Present(screen)
	} else {
		screen.Fill(config.BackgroundColor)
	}
	_, _, dpr := s.host.Size()
	s.host.HUD.Draw(screen, s.info(), dpr)
}

func (s *BackdropState) info() ui.HUDInfo {
	return ui.HUDInfo{
		Skin:     s.engine.Definition().Name,
		Entities: s.engine.Simulation().EntityCount(),
		TPS:      ebiten.ActualTPS(),
		Index:    s.index + 1,
		Total:    len(s.host.IDs),
	}
}

// Engine — движок смонтированного скина.
func (s *BackdropState) Engine() *app.Engine {
	return s.engine
}
