// internal/state/host.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/event"
	"go-animated-bg/internal/ui"
)

// Host — общее для всех состояний окружение окна: диспетчер событий,
// библиотека скинов и последний известный размер поверхности.
type Host struct {
	Dispatcher *event.Dispatcher
	Library    defs.Library
	IDs        []defs.SkinID
	Seed       int64
	HUD        *ui.HUD

	keys               keyboard
	width, height, dpr float64
}

// keyboard — источник состояния клавиш; в тестах подменяется.
type keyboard struct {
	justPressed func(ebiten.Key) bool
	pressed     func(ebiten.Key) bool
}

var ebitenKeyboard = keyboard{
	justPressed: inpututil.IsKeyJustPressed,
	pressed:     ebiten.IsKeyPressed,
}

func NewHost(lib defs.Library, seed int64) *Host {
	return &Host{
		Dispatcher: event.NewDispatcher(),
		Library:    lib,
		IDs:        lib.IDs(),
		Seed:       seed,
		HUD:        ui.NewHUD(),
		keys:       ebitenKeyboard,
		dpr:        1,
	}
}

// Resize запоминает размер окна и сообщает о нём смонтированному движку.
// Повтор того же размера ничего не рассылает.
func (h *Host) Resize(width, height, dpr float64) bool {
	if dpr <= 0 {
		dpr = 1
	}
	if width == h.width && height == h.height && dpr == h.dpr {
		return false
	}
	h.width, h.height, h.dpr = width, height, dpr
	h.Dispatcher.Dispatch(event.Event{
		Type: event.SurfaceResized,
		Data: event.ResizeData{Width: width, Height: height, DPR: dpr},
	})
	return true
}

// Size — логический размер и DPR.
func (h *Host) Size() (float64, float64, float64) {
	return h.width, h.height, h.dpr
}

// MovePointer рассылает позицию указателя в логических координатах.
func (h *Host) MovePointer(x, y float64) {
	h.Dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerData{X: x, Y: y}})
}

// IndexOf — позиция скина в порядке показа, -1 если его нет.
func (h *Host) IndexOf(id defs.SkinID) int {
	for i, v := range h.IDs {
		if v == id {
			return i
		}
	}
	return -1
}

// cycle сдвигает индекс по кругу.
func cycle(index, delta, total int) int {
	if total <= 0 {
		return 0
	}
	return ((index+delta)%total + total) % total
}
