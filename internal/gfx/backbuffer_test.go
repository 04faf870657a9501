package gfx

import "testing"

func TestBackbufferPersistsBetweenFrames(t *testing.T) {
	var b Backbuffer
	if _, ok := b.Canvas(0, 600, 1); ok {
		t.Fatal("Expected no canvas for a degenerate size")
	}
	if b.Image() != nil {
		t.Fatal("Expected no image before the first frame")
	}

	first, ok := b.Canvas(800, 600, 1)
	if !ok {
		t.Fatal("Expected a canvas for 800x600")
	}
	img := b.Image()
	for frame := 0; frame < 3; frame++ {
		c, _ := b.Canvas(800, 600, 1)
		if c != first || b.Image() != img {
			t.Fatalf("Frame %d: expected the same image to be reused", frame)
		}
	}
	if w, h := first.Size(); w != 800 || h != 600 {
		t.Errorf("Expected logical 800x600, got %vx%v", w, h)
	}

	// Смена DPR при том же буфере меняет только логический размер
	c, _ := b.Canvas(800, 600, 2)
	if b.Image() != img {
		t.Error("Expected scale change not to reallocate")
	}
	if w, h := c.Size(); w != 400 || h != 300 {
		t.Errorf("Expected logical 400x300, got %vx%v", w, h)
	}

	b.Canvas(1024, 768, 1)
	if b.Image() == img {
		t.Error("Expected a new image after resize")
	}
	if s := b.Image().Bounds().Size(); s.X != 1024 || s.Y != 768 {
		t.Errorf("Expected 1024x768, got %v", s)
	}

	b.Deallocate()
	if b.Image() != nil {
		t.Error("Expected image to be released")
	}
}
