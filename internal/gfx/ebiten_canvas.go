// internal/gfx/ebiten_canvas.go
package gfx

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-animated-bg/pkg/render"
)

// Сегментов на кольцо радиального градиента
const gradientSegments = 48

var whiteSubImage *ebiten.Image

// whiteTexture — белый источник для DrawTriangles; цвет задают вершины.
// Создаётся при первом рисовании, а не при импорте пакета.
func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenCanvas рисует на *ebiten.Image. Координаты логические, масштаб
// (DPR) применяется при построении вершин.
type EbitenCanvas struct {
	dst   *ebiten.Image
	w, h  float64
	scale float64

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenCanvas создаёт холст поверх dst с логическим размером
// dst / scale.
func NewEbitenCanvas(dst *ebiten.Image, scale float64) *EbitenCanvas {
	c := &EbitenCanvas{}
	c.Reset(dst, scale)
	return c
}

// Reset перенацеливает холст на новый кадр, сохраняя буферы вершин.
func (c *EbitenCanvas) Reset(dst *ebiten.Image, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.dst = dst
	c.scale = scale
	b := dst.Bounds()
	c.w = float64(b.Dx()) / scale
	c.h = float64(b.Dy()) / scale
}

func (c *EbitenCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *EbitenCanvas) Clear(clr color.NRGBA) {
	c.dst.Fill(clr)
}

func (c *EbitenCanvas) Fill(clr color.NRGBA, alpha float64) {
	b := c.dst.Bounds()
	vector.DrawFilledRect(c.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), render.WithAlpha(clr, alpha), false)
}

func (c *EbitenCanvas) LinearGradient(x0, y0, x1, y1 float64, stops []render.Stop, alpha float64) {
	if len(stops) == 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.Fill(stops[len(stops)-1].Color, alpha)
		return
	}
	// Полосы перпендикулярно направлению градиента, длиной с диагональ
	// поверхности, чтобы покрыть её целиком при любом угле.
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux
	span := math.Hypot(c.w, c.h) * 2

	c.vertices, c.indices = c.vertices[:0], c.indices[:0]
	band := func(t float64, clr color.NRGBA) {
		px, py := x0+dx*t, y0+dy*t
		c.appendVertex(px+nx*span, py+ny*span, clr, alpha)
		c.appendVertex(px-nx*span, py-ny*span, clr, alpha)
	}
	// Продление до и после крайних стопов их цветами
	band(-span/length, stops[0].Color)
	for _, s := range stops {
		band(s.Offset, s.Color)
	}
	band(1+span/length, stops[len(stops)-1].Color)
	for i := 0; i+3 < len(c.vertices); i += 2 {
		base := uint16(i)
		c.indices = append(c.indices, base, base+1, base+2, base+1, base+3, base+2)
	}
	c.flush(render.BlendNormal, ebiten.FillRuleFillAll, false)
}

func (c *EbitenCanvas) RadialGradient(cx, cy, r float64, stops []render.Stop, alpha float64, blend render.Blend) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	c.vertices, c.indices = c.vertices[:0], c.indices[:0]
	// Центр и кольцо на каждый стоп; между кольцами цвет интерполирует GPU
	c.appendVertex(cx, cy, stops[0].Color, alpha)
	for _, s := range stops {
		radius := r * s.Offset
		for k := 0; k < gradientSegments; k++ {
			a := 2 * math.Pi * float64(k) / gradientSegments
			c.appendVertex(cx+radius*math.Cos(a), cy+radius*math.Sin(a), s.Color, alpha)
		}
	}
	for k := 0; k < gradientSegments; k++ {
		next := (k + 1) % gradientSegments
		c.indices = append(c.indices, 0, uint16(1+k), uint16(1+next))
	}
	for ring := 0; ring+1 < len(stops); ring++ {
		inner := 1 + ring*gradientSegments
		outer := inner + gradientSegments
		for k := 0; k < gradientSegments; k++ {
			next := (k + 1) % gradientSegments
			a, b := uint16(inner+k), uint16(inner+next)
			d, e := uint16(outer+k), uint16(outer+next)
			c.indices = append(c.indices, a, d, e, a, e, b)
		}
	}
	c.flush(blend, ebiten.FillRuleFillAll, false)
}

func (c *EbitenCanvas) Circle(cx, cy, r float64, clr color.NRGBA, alpha float64, blend render.Blend) {
	if r <= 0 {
		return
	}
	c.path.Reset()
	c.path.Arc(c.px(cx), c.px(cy), c.px(r), 0, 2*math.Pi, vector.Clockwise)
	c.path.Close()
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.colorize(clr, alpha)
	c.flush(blend, ebiten.FillRuleNonZero, true)
}

func (c *EbitenCanvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA, alpha float64, blend render.Blend) {
	if r <= 0 || width <= 0 {
		return
	}
	c.path.Reset()
	c.path.Arc(c.px(cx), c.px(cy), c.px(r), 0, 2*math.Pi, vector.Clockwise)
	c.path.Close()
	c.stroke(width, clr, alpha, blend)
}

func (c *EbitenCanvas) Line(x0, y0, x1, y1, width float64, clr color.NRGBA, alpha float64, blend render.Blend) {
	c.path.Reset()
	c.path.MoveTo(c.px(x0), c.px(y0))
	c.path.LineTo(c.px(x1), c.px(y1))
	c.stroke(width, clr, alpha, blend)
}

func (c *EbitenCanvas) Polyline(pts []render.Point, width float64, clr color.NRGBA, alpha float64, blend render.Blend) {
	if len(pts) < 2 {
		return
	}
	c.path.Reset()
	c.path.MoveTo(c.px(pts[0].X), c.px(pts[0].Y))
	for _, p := range pts[1:] {
		c.path.LineTo(c.px(p.X), c.px(p.Y))
	}
	c.stroke(width, clr, alpha, blend)
}

func (c *EbitenCanvas) stroke(width float64, clr color.NRGBA, alpha float64, blend render.Blend) {
	if width <= 0 {
		return
	}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    c.px(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	c.colorize(clr, alpha)
	c.flush(blend, ebiten.FillRuleNonZero, true)
}

func (c *EbitenCanvas) px(v float64) float32 {
	return float32(v * c.scale)
}

func (c *EbitenCanvas) appendVertex(x, y float64, clr color.NRGBA, alpha float64) {
	c.vertices = append(c.vertices, ebiten.Vertex{
		DstX:   c.px(x),
		DstY:   c.px(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 0xff,
		ColorG: float32(clr.G) / 0xff,
		ColorB: float32(clr.B) / 0xff,
		ColorA: float32(float64(clr.A) / 0xff * alpha),
	})
}

func (c *EbitenCanvas) colorize(clr color.NRGBA, alpha float64) {
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(clr.R) / 0xff
		c.vertices[i].ColorG = float32(clr.G) / 0xff
		c.vertices[i].ColorB = float32(clr.B) / 0xff
		c.vertices[i].ColorA = float32(float64(clr.A) / 0xff * alpha)
	}
}

func (c *EbitenCanvas) flush(blend render.Blend, rule ebiten.FillRule, antialias bool) {
	if len(c.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		Blend:     ebitenBlend(blend),
		FillRule:  rule,
		AntiAlias: antialias,
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteTexture(), op)
}

func ebitenBlend(b render.Blend) ebiten.Blend {
	if b == render.BlendAdditive {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}
