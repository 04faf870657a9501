// internal/gfx/backbuffer.go
package gfx

import "github.com/hajimehoshi/ebiten/v2"

// Backbuffer — изображение, которое живёт дольше одного кадра. ebiten очищает
// экран перед каждым Draw, а скины со шлейфом рисуют поверх прошлого кадра,
// поэтому кадр рисуется сюда и затем копируется на экран.
type Backbuffer struct {
	image  *ebiten.Image
	canvas *EbitenCanvas
}

// Canvas возвращает холст w×h пикселей. Пока размер не меняется, это одно и
// то же изображение; при новом размере оно пересоздаётся пустым. Для
// вырожденного размера ok == false.
func (b *Backbuffer) Canvas(w, h int, scale float64) (canvas *EbitenCanvas, ok bool) {
	if w <= 0 || h <= 0 {
		return nil, false
	}
	if b.image != nil {
		if s := b.image.Bounds().Size(); s.X != w || s.Y != h {
			b.Deallocate()
		}
	}
	if b.image == nil {
		b.image = ebiten.NewImage(w, h)
		b.canvas = nil
	}
	if b.canvas == nil {
		b.canvas = NewEbitenCanvas(b.image, scale)
	} else {
		b.canvas.Reset(b.image, scale)
	}
	return b.canvas, true
}

// Image — текущее изображение буфера, nil до первого Canvas.
func (b *Backbuffer) Image() *ebiten.Image { return b.image }

// Present копирует буфер на экран.
func (b *Backbuffer) Present(screen *ebiten.Image) {
	if b.image == nil {
		return
	}
	screen.DrawImage(b.image, nil)
}

// Deallocate освобождает изображение.
func (b *Backbuffer) Deallocate() {
	if b.image != nil {
		b.image.Deallocate()
	}
	b.image = nil
	b.canvas = nil
}
