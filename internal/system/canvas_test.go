package system

import (
	"image/color"

	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/utils"
	"go-animated-bg/pkg/render"
)

// recordCanvas запоминает вызовы рисования вместо растеризации.
type recordCanvas struct {
	w, h   float64
	ops    []string
	blends map[render.Blend]int
	alphas []float64
}

func newRecordCanvas(w, h float64) *recordCanvas {
	return &recordCanvas{w: w, h: h, blends: make(map[render.Blend]int)}
}

func (c *recordCanvas) record(op string, alpha float64, blend render.Blend) {
	c.ops = append(c.ops, op)
	c.alphas = append(c.alphas, alpha)
	c.blends[blend]++
}

func (c *recordCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordCanvas) Clear(color.NRGBA) {
	c.record("clear", 1, render.BlendNormal)
}

func (c *recordCanvas) Fill(_ color.NRGBA, alpha float64) {
	c.record("fill", alpha, render.BlendNormal)
}

func (c *recordCanvas) LinearGradient(_, _, _, _ float64, _ []render.Stop, alpha float64) {
	c.record("linear", alpha, render.BlendNormal)
}

func (c *recordCanvas) RadialGradient(_, _, _ float64, _ []render.Stop, alpha float64, blend render.Blend) {
	c.record("radial", alpha, blend)
}

func (c *recordCanvas) Circle(_, _, _ float64, _ color.NRGBA, alpha float64, blend render.Blend) {
	c.record("circle", alpha, blend)
}

func (c *recordCanvas) StrokeCircle(_, _, _, _ float64, _ color.NRGBA, alpha float64, blend render.Blend) {
	c.record("ring", alpha, blend)
}

func (c *recordCanvas) Line(_, _, _, _, _ float64, _ color.NRGBA, alpha float64, blend render.Blend) {
	c.record("line", alpha, blend)
}

func (c *recordCanvas) Polyline(_ []render.Point, _ float64, _ color.NRGBA, alpha float64, blend render.Blend) {
	c.record("polyline", alpha, blend)
}

func mustSkin(id defs.SkinID) defs.SkinDefinition {
	def, err := defs.DefaultLibrary().Get(id)
	if err != nil {
		panic(err)
	}
	return def
}

func mustSimulation(id defs.SkinID, seed int64) Simulation {
	sim, err := NewSimulation(mustSkin(id), utils.NewPRNGService(seed))
	if err != nil {
		panic(err)
	}
	return sim
}
