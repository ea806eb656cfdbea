package systems

import "image/color"

type lineCall struct {
	x0, y0, x1, y1 float64
	clr            color.Color
}

type circleCall struct {
	cx, cy, r float64
	clr       color.Color
}

// recordingSurface is a Surface that records every call.
type recordingSurface struct {
	width, height int
	fades         []float64
	lines         []lineCall
	circles       []circleCall
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{width: w, height: h}
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) Fade(alpha float64) { s.fades = append(s.fades, alpha) }

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	s.lines = append(s.lines, lineCall{x0, y0, x1, y1, clr})
}

func (s *recordingSurface) StrokeCircle(cx, cy, r float64, clr color.Color) {
	s.circles = append(s.circles, circleCall{cx, cy, r, clr})
}
