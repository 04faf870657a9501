// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	stack   []State // состояния, накрытые через Push
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние. Накрытые состояния тоже
// завершаются.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	for i := len(sm.stack) - 1; i >= 0; i-- {
		if sm.stack[i] != nil {
			sm.stack[i].Exit()
		}
	}
	sm.stack = sm.stack[:0]
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Push накрывает текущее состояние новым без вызова Exit у текущего
func (sm *StateMachine) Push(overlay State) {
	sm.stack = append(sm.stack, sm.current)
	sm.current = overlay
	if overlay != nil {
		overlay.Enter()
	}
}

// Pop завершает верхнее состояние и возвращает накрытое. Enter у
// накрытого не вызывается: оно не выходило.
func (sm *StateMachine) Pop() bool {
	if len(sm.stack) == 0 {
		return false
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	last := len(sm.stack) - 1
	sm.current = sm.stack[last]
	sm.stack = sm.stack[:last]
	return true
}

// Current — активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
