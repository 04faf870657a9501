package render

import "image/color"

// OpacityCanvas multiplies the alpha of every drawing call by Alpha, the way a
// CSS opacity on the host element would. Clear is passed through untouched.
type OpacityCanvas struct {
	Canvas
	Alpha float64
}

// WithOpacity wraps c unless alpha is 1.
func WithOpacity(c Canvas, alpha float64) Canvas {
	if alpha >= 1 {
		return c
	}
	return OpacityCanvas{Canvas: c, Alpha: clamp01(alpha)}
}

func (o OpacityCanvas) Fill(c color.NRGBA, alpha float64) {
	o.Canvas.Fill(c, alpha*o.Alpha)
}

func (o OpacityCanvas) LinearGradient(x0, y0, x1, y1 float64, stops []Stop, alpha float64) {
	o.Canvas.LinearGradient(x0, y0, x1, y1, stops, alpha*o.Alpha)
}

func (o OpacityCanvas) RadialGradient(cx, cy, r float64, stops []Stop, alpha float64, blend Blend) {
	o.Canvas.RadialGradient(cx, cy, r, stops, alpha*o.Alpha, blend)
}

func (o OpacityCanvas) Circle(cx, cy, r float64, c color.NRGBA, alpha float64, blend Blend) {
	o.Canvas.Circle(cx, cy, r, c, alpha*o.Alpha, blend)
}

func (o OpacityCanvas) StrokeCircle(cx, cy, r, width float64, c color.NRGBA, alpha float64, blend Blend) {
	o.Canvas.StrokeCircle(cx, cy, r, width, c, alpha*o.Alpha, blend)
}

func (o OpacityCanvas) Line(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64, blend Blend) {
	o.Canvas.Line(x0, y0, x1, y1, width, c, alpha*o.Alpha, blend)
}

func (o OpacityCanvas) Polyline(pts []Point, width float64, c color.NRGBA, alpha float64, blend Blend) {
	o.Canvas.Polyline(pts, width, c, alpha*o.Alpha, blend)
}
