package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// 每个终端单元格对应的逻辑像素尺寸
// 终端字符大约是 1:2 的长方形，按 8x16 换算可以让模拟参数不变
const (
	CellPixelWidth  = 8
	CellPixelHeight = 16
)

// 亮度低于该值的单元格视为熄灭
const terminalDarkThreshold = 0.04

// glyphRamp 按亮度从暗到亮排列的字符
var glyphRamp = []rune{'.', ':', '+', '*', '#', '@'}

type cellLight struct {
	r, g, b float64
}

func (c cellLight) intensity() float64 {
	return math.Max(c.r, math.Max(c.g, c.b))
}

// TerminalSurface 以终端单元格为像素的绘制面
//
// 每个单元格记录 RGB 光强（0 ~ 1）。Fade 按比例衰减光强，
// 描线时把颜色乘以 alpha 叠加到经过的单元格上（加色混合，截断到 1）。
// Flush 把缓冲写到 tcell.Screen。
type TerminalSurface struct {
	cols, rows int
	cells      []cellLight
}

// NewTerminalSurface 创建 cols x rows 的单元格缓冲
func NewTerminalSurface(cols, rows int) *TerminalSurface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &TerminalSurface{
		cols:  cols,
		rows:  rows,
		cells: make([]cellLight, cols*rows),
	}
}

// Size 返回逻辑像素尺寸
func (s *TerminalSurface) Size() (int, int) {
	return s.cols * CellPixelWidth, s.rows * CellPixelHeight
}

// Grid 返回单元格列数和行数
func (s *TerminalSurface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// CellToPixel 返回单元格中心的逻辑像素坐标（用于把鼠标位置换算成目标点）
func CellToPixel(col, row int) (x, y float64) {
	return float64(col*CellPixelWidth) + CellPixelWidth/2, float64(row*CellPixelHeight) + CellPixelHeight/2
}

// Fade 衰减所有单元格的光强
func (s *TerminalSurface) Fade(alpha float64) {
	keep := 1 - alpha
	for i := range s.cells {
		s.cells[i].r *= keep
		s.cells[i].g *= keep
		s.cells[i].b *= keep
	}
}

// StrokeLine 把线段光栅化到单元格
func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	light := toLight(clr)

	c0, r0 := x0/CellPixelWidth, y0/CellPixelHeight
	c1, r1 := x1/CellPixelWidth, y1/CellPixelHeight
	steps := int(math.Ceil(math.Max(math.Abs(c1-c0), math.Abs(r1-r0))))
	if steps == 0 {
		s.addLight(int(math.Floor(c0)), int(math.Floor(r0)), light)
		return
	}

	lastCol, lastRow := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Floor(c0 + (c1-c0)*t))
		row := int(math.Floor(r0 + (r1-r0)*t))
		if col == lastCol && row == lastRow {
			continue
		}
		s.addLight(col, row, light)
		lastCol, lastRow = col, row
	}
}

// StrokeCircle 沿圆周采样点亮单元格
func (s *TerminalSurface) StrokeCircle(cx, cy, radius float64, clr color.Color) {
	light := toLight(clr)
	samples := int(math.Max(8, 2*math.Pi*radius/2))
	visited := make(map[int]struct{}, samples)
	for i := 0; i < samples; i++ {
		a := 2 * math.Pi * float64(i) / float64(samples)
		col := int(math.Floor((cx + math.Cos(a)*radius) / CellPixelWidth))
		row := int(math.Floor((cy + math.Sin(a)*radius) / CellPixelHeight))
		key := row*s.cols + col
		if _, ok := visited[key]; ok {
			continue
		}
		visited[key] = struct{}{}
		s.addLight(col, row, light)
	}
}

// Intensity 返回单元格的亮度（RGB 最大分量），越界返回 0
func (s *TerminalSurface) Intensity(col, row int) float64 {
	if !s.inBounds(col, row) {
		return 0
	}
	return s.cells[row*s.cols+col].intensity()
}

// Flush 把缓冲写入 screen 并显示
func (s *TerminalSurface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			level := c.intensity()
			if level < terminalDarkThreshold {
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}

			// 颜色归一化到最亮分量，亮度由字符表达
			fg := tcell.NewRGBColor(
				int32(255*c.r/level),
				int32(255*c.g/level),
				int32(255*c.b/level),
			)
			screen.SetContent(col, row, glyphFor(level), nil, tcell.StyleDefault.Foreground(fg))
		}
	}
	screen.Show()
}

func glyphFor(level float64) rune {
	i := int(level * float64(len(glyphRamp)))
	if i >= len(glyphRamp) {
		i = len(glyphRamp) - 1
	}
	return glyphRamp[i]
}

func (s *TerminalSurface) inBounds(col, row int) bool {
	return col >= 0 && col < s.cols && row >= 0 && row < s.rows
}

func (s *TerminalSurface) addLight(col, row int, light cellLight) {
	if !s.inBounds(col, row) {
		return
	}
	c := &s.cells[row*s.cols+col]
	c.r = math.Min(1, c.r+light.r)
	c.g = math.Min(1, c.g+light.g)
	c.b = math.Min(1, c.b+light.b)
}

// toLight 把颜色换算成预乘 alpha 的光强
func toLight(clr color.Color) cellLight {
	r, g, b, _ := clr.RGBA()
	return cellLight{
		r: float64(r) / 0xffff,
		g: float64(g) / 0xffff,
		b: float64(b) / 0xffff,
	}
}
