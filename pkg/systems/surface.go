package systems

import "image/color"

// Surface is the 2D raster target the fireworks are drawn onto.
//
// Implementations keep the previous frame's pixels between ticks: Fade erases
// a fraction of what is there (destination-out), and the stroke calls add
// light on top of it (additive "lighter" blending), which is what produces
// the trailing glow.
type Surface interface {
	// Size returns the surface dimensions captured at start-up.
	Size() (width, height int)
	// Fade erases the existing content with the given opacity in [0, 1].
	Fade(alpha float64)
	// StrokeLine draws a 1px line segment.
	StrokeLine(x0, y0, x1, y1 float64, clr color.Color)
	// StrokeCircle draws a 1px circle outline.
	StrokeCircle(cx, cy, radius float64, clr color.Color)
}

// PointerState is the pointer input sampled once per tick.
type PointerState struct {
	Down bool
	X, Y float64
}
