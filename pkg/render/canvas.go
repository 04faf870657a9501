package render

import (
	"image/color"
	"sort"
)

// Blend selects how a primitive is composited onto the surface.
type Blend int

const (
	// BlendNormal is regular source-over alpha blending.
	BlendNormal Blend = iota
	// BlendAdditive adds source light to the destination ("lighter").
	BlendAdditive
)

func (b Blend) String() string {
	if b == BlendAdditive {
		return "additive"
	}
	return "normal"
}

// Point is a position in logical surface units.
type Point struct {
	X, Y float64
}

// Stop is one colour stop of a gradient, Offset is in [0,1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Canvas is a 2D drawing surface addressed in logical (CSS-pixel-like) units.
// Implementations apply the device pixel ratio themselves.
type Canvas interface {
	// Size returns the logical size of the surface.
	Size() (w, h float64)
	// Clear replaces every pixel with c.
	Clear(c color.NRGBA)
	// Fill paints c over the whole surface with the given opacity.
	Fill(c color.NRGBA, alpha float64)
	// LinearGradient paints the whole surface with a gradient running from
	// (x0,y0) to (x1,y1).
	LinearGradient(x0, y0, x1, y1 float64, stops []Stop, alpha float64)
	// RadialGradient paints a disc of radius r whose colour runs from stops at
	// the centre outwards.
	RadialGradient(cx, cy, r float64, stops []Stop, alpha float64, blend Blend)
	Circle(cx, cy, r float64, c color.NRGBA, alpha float64, blend Blend)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA, alpha float64, blend Blend)
	Line(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64, blend Blend)
	Polyline(pts []Point, width float64, c color.NRGBA, alpha float64, blend Blend)
}

// Sample returns the gradient colour at t. Stops must be sorted by offset.
func Sample(stops []Stop, t float64) color.NRGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	t = clamp01(t)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset >= t })
	lo, hi := stops[i-1], stops[i]
	span := hi.Offset - lo.Offset
	if span <= 0 {
		return hi.Color
	}
	return Mix(lo.Color, hi.Color, (t-lo.Offset)/span)
}
