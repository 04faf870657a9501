// internal/state/pause_state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState накрывает скин: симуляция не обновляется, на экран выводится
// последний нарисованный кадр.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *BackdropState
}

func NewPauseState(sm *StateMachine, prevState *BackdropState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	keys := s.previousState.host.keys
	if keys.justPressed(ebiten.KeyP) || keys.justPressed(ebiten.KeyEscape) {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.present(screen)
	_, _, dpr := s.previousState.host.Size()
	s.previousState.host.HUD.DrawBanner(screen, "PAUSED", dpr)
}

func (s *PauseState) Exit() {}
