// internal/system/paint.go
package system

import (
	"image/color"
	"math"

	"go-animated-bg/internal/config"
	"go-animated-bg/pkg/render"
)

var white = config.CoreWhite

// glowStops — радиальное свечение: яркий центр, цвет, затухание в прозрачность.
func glowStops(c color.NRGBA, mid float64) []render.Stop {
	return []render.Stop{
		{Offset: 0, Color: c},
		{Offset: mid, Color: render.WithAlpha(c, 0.5)},
		{Offset: 1, Color: render.Transparent},
	}
}

// paintSpark рисует вспышку из config.SparkRays лучей.
func paintSpark(c render.Canvas, x, y, length float64, blend render.Blend) {
	for i := 0; i < config.SparkRays; i++ {
		angle := 2 * math.Pi / config.SparkRays * float64(i)
		c.Line(x, y, x+math.Cos(angle)*length, y+math.Sin(angle)*length, 1, white, 1, blend)
	}
}

// paintAmbient рисует мягкие пятна света фона со смещением параллакса.
func paintAmbient(c render.Canvas, palette []color.NRGBA, px, py, alpha float64) {
	if len(palette) == 0 {
		return
	}
	w, h := c.Size()
	r := math.Max(w, h) * 0.45
	spots := [...]struct{ fx, fy float64 }{{0.25, 0.3}, {0.75, 0.7}, {0.6, 0.2}}
	for i, s := range spots {
		clr := palette[i%len(palette)]
		c.RadialGradient(w*s.fx+px, h*s.fy+py, r, []render.Stop{
			{Offset: 0, Color: clr},
			{Offset: 1, Color: render.Transparent},
		}, alpha, render.BlendNormal)
	}
}
