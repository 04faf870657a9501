package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// RasterCanvas is a software Canvas backed by an *image.RGBA. It is used for
// headless snapshots and in tests; the backing store is logical size × scale.
type RasterCanvas struct {
	img    *image.RGBA
	w, h   float64
	scale  float64
	z      *vector.Rasterizer
	bounds image.Rectangle
}

// NewRasterCanvas allocates a surface whose backing store is w*scale × h*scale.
func NewRasterCanvas(w, h, scale float64) *RasterCanvas {
	if scale <= 0 {
		scale = 1
	}
	bw := int(math.Ceil(w * scale))
	bh := int(math.Ceil(h * scale))
	if bw < 0 {
		bw = 0
	}
	if bh < 0 {
		bh = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, bw, bh))
	return &RasterCanvas{
		img:    img,
		w:      w,
		h:      h,
		scale:  scale,
		z:      &vector.Rasterizer{},
		bounds: img.Bounds(),
	}
}

// Image returns the backing store.
func (c *RasterCanvas) Image() *image.RGBA { return c.img }

// WritePNG encodes the current frame.
func (c *RasterCanvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

func (c *RasterCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *RasterCanvas) Clear(clr color.NRGBA) {
	draw.Draw(c.img, c.bounds, image.NewUniform(clr), image.Point{}, draw.Src)
}

func (c *RasterCanvas) Fill(clr color.NRGBA, alpha float64) {
	draw.Draw(c.img, c.bounds, image.NewUniform(WithAlpha(clr, alpha)), image.Point{}, draw.Over)
}

func (c *RasterCanvas) LinearGradient(x0, y0, x1, y1 float64, stops []Stop, alpha float64) {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	for py := c.bounds.Min.Y; py < c.bounds.Max.Y; py++ {
		ly := (float64(py) + 0.5) / c.scale
		for px := c.bounds.Min.X; px < c.bounds.Max.X; px++ {
			lx := (float64(px) + 0.5) / c.scale
			t := 0.0
			if lenSq > 0 {
				t = ((lx-x0)*dx + (ly-y0)*dy) / lenSq
			}
			c.blendPixel(px, py, Sample(stops, t), alpha, BlendNormal)
		}
	}
}

func (c *RasterCanvas) RadialGradient(cx, cy, r float64, stops []Stop, alpha float64, blend Blend) {
	if r <= 0 {
		return
	}
	box := c.box(cx-r, cy-r, cx+r, cy+r)
	for py := box.Min.Y; py < box.Max.Y; py++ {
		ly := (float64(py) + 0.5) / c.scale
		for px := box.Min.X; px < box.Max.X; px++ {
			lx := (float64(px) + 0.5) / c.scale
			d := math.Hypot(lx-cx, ly-cy) / r
			if d > 1 {
				continue
			}
			c.blendPixel(px, py, Sample(stops, d), alpha, blend)
		}
	}
}

func (c *RasterCanvas) Circle(cx, cy, r float64, clr color.NRGBA, alpha float64, blend Blend) {
	if r <= 0 {
		return
	}
	box, ok := c.begin(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}
	c.appendCircle(box, cx, cy, r, false)
	c.flush(box, clr, alpha, blend)
}

func (c *RasterCanvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA, alpha float64, blend Blend) {
	if r <= 0 || width <= 0 {
		return
	}
	outer := r + width/2
	inner := r - width/2
	box, ok := c.begin(cx-outer, cy-outer, cx+outer, cy+outer)
	if !ok {
		return
	}
	c.appendCircle(box, cx, cy, outer, false)
	if inner > 0 {
		c.appendCircle(box, cx, cy, inner, true)
	}
	c.flush(box, clr, alpha, blend)
}

func (c *RasterCanvas) Line(x0, y0, x1, y1, width float64, clr color.NRGBA, alpha float64, blend Blend) {
	c.Polyline([]Point{{x0, y0}, {x1, y1}}, width, clr, alpha, blend)
}

func (c *RasterCanvas) Polyline(pts []Point, width float64, clr color.NRGBA, alpha float64, blend Blend) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	half := width / 2
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	box, ok := c.begin(minX-half, minY-half, maxX+half, maxY+half)
	if !ok {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		c.appendSegment(box, pts[i], pts[i+1], half)
	}
	c.flush(box, clr, alpha, blend)
}

// box converts a logical rectangle into a clipped backing-store rectangle.
func (c *RasterCanvas) box(x0, y0, x1, y1 float64) image.Rectangle {
	r := image.Rect(
		int(math.Floor(x0*c.scale)), int(math.Floor(y0*c.scale)),
		int(math.Ceil(x1*c.scale))+1, int(math.Ceil(y1*c.scale))+1,
	)
	return r.Intersect(c.bounds)
}

// begin prepares the rasterizer for a shape whose logical bounds are given.
func (c *RasterCanvas) begin(x0, y0, x1, y1 float64) (image.Rectangle, bool) {
	box := c.box(x0, y0, x1, y1)
	if box.Empty() {
		return box, false
	}
	c.z.Reset(box.Dx(), box.Dy())
	return box, true
}

func (c *RasterCanvas) local(box image.Rectangle, x, y float64) (float32, float32) {
	return float32(x*c.scale - float64(box.Min.X)), float32(y*c.scale - float64(box.Min.Y))
}

func (c *RasterCanvas) appendCircle(box image.Rectangle, cx, cy, r float64, reverse bool) {
	segments := int(math.Max(16, math.Min(128, r*c.scale)))
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		if reverse {
			a = -a
		}
		x, y := c.local(box, cx+r*math.Cos(a), cy+r*math.Sin(a))
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()
}

func (c *RasterCanvas) appendSegment(box image.Rectangle, a, b Point, half float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*half, dx/length*half
	x, y := c.local(box, a.X+nx, a.Y+ny)
	c.z.MoveTo(x, y)
	x, y = c.local(box, b.X+nx, b.Y+ny)
	c.z.LineTo(x, y)
	x, y = c.local(box, b.X-nx, b.Y-ny)
	c.z.LineTo(x, y)
	x, y = c.local(box, a.X-nx, a.Y-ny)
	c.z.LineTo(x, y)
	c.z.ClosePath()
}

// flush rasterizes the accumulated path into a coverage mask and composites
// clr through it.
func (c *RasterCanvas) flush(box image.Rectangle, clr color.NRGBA, alpha float64, blend Blend) {
	local := image.Rect(0, 0, box.Dx(), box.Dy())
	// Маска всегда плотная: быстрый путь растеризатора пишет без учёта Stride
	mask := image.NewAlpha(local)
	c.z.Draw(mask, local, image.Opaque, image.Point{})
	for y := 0; y < local.Dy(); y++ {
		for x := 0; x < local.Dx(); x++ {
			m := mask.Pix[y*mask.Stride+x]
			if m == 0 {
				continue
			}
			c.blendPixel(box.Min.X+x, box.Min.Y+y, clr, alpha*float64(m)/255, blend)
		}
	}
}

func (c *RasterCanvas) blendPixel(x, y int, clr color.NRGBA, alpha float64, blend Blend) {
	a := float64(clr.A) / 255 * clamp01(alpha)
	if a <= 0 {
		return
	}
	i := c.img.PixOffset(x, y)
	pix := c.img.Pix[i : i+4 : i+4]
	sr := float64(clr.R) * a
	sg := float64(clr.G) * a
	sb := float64(clr.B) * a
	switch blend {
	case BlendAdditive:
		pix[0] = addChannel(pix[0], sr)
		pix[1] = addChannel(pix[1], sg)
		pix[2] = addChannel(pix[2], sb)
		pix[3] = addChannel(pix[3], 255*a)
	default:
		inv := 1 - a
		pix[0] = uint8(math.Min(255, sr+float64(pix[0])*inv+0.5))
		pix[1] = uint8(math.Min(255, sg+float64(pix[1])*inv+0.5))
		pix[2] = uint8(math.Min(255, sb+float64(pix[2])*inv+0.5))
		pix[3] = uint8(math.Min(255, 255*a+float64(pix[3])*inv+0.5))
	}
}

func addChannel(dst uint8, src float64) uint8 {
	return uint8(math.Min(255, float64(dst)+src+0.5))
}
