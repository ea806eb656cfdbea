// Package render 提供 systems.Surface 的具体实现
//
// EbitenSurface 绘制到一张持久的离屏画布上，TerminalSurface 绘制到 tcell 单元格缓冲。
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage 是 whiteImage 中心的 1x1 像素，避免采样到边缘
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenSurface 基于 ebiten.Image 的绘制面
//
// 画布在帧与帧之间保留内容：Fade 以 destination-out 擦淡旧内容，
// StrokeLine / StrokeCircle 以 lighter（加色）混合叠加，重叠处会更亮。
type EbitenSurface struct {
	canvas        *ebiten.Image
	width, height int

	strokeWidth float32
	vertices    []ebiten.Vertex
	indices     []uint16
}

// NewEbitenSurface 创建指定尺寸的画布（尺寸在此之后固定）
func NewEbitenSurface(width, height int) *EbitenSurface {
	return &EbitenSurface{
		canvas:      ebiten.NewImage(width, height),
		width:       width,
		height:      height,
		strokeWidth: 1,
	}
}

// Size 返回画布尺寸
func (s *EbitenSurface) Size() (int, int) {
	return s.width, s.height
}

// Canvas 返回离屏画布，供场景合成到屏幕
func (s *EbitenSurface) Canvas() *ebiten.Image {
	return s.canvas
}

// Fade 以给定不透明度擦除已有内容
func (s *EbitenSurface) Fade(alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.width), float64(s.height))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = ebiten.BlendDestinationOut
	s.canvas.DrawImage(whiteSubImage, op)
}

// StrokeLine 绘制线段
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	s.stroke(&path, clr)
}

// StrokeCircle 绘制圆形轮廓
func (s *EbitenSurface) StrokeCircle(cx, cy, radius float64, clr color.Color) {
	var path vector.Path
	path.Arc(float32(cx), float32(cy), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	s.stroke(&path, clr)
}

// Clear 清空画布
func (s *EbitenSurface) Clear() {
	s.canvas.Clear()
}

func (s *EbitenSurface) stroke(path *vector.Path, clr color.Color) {
	op := &vector.StrokeOptions{
		Width:   s.strokeWidth,
		LineCap: vector.LineCapRound,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)

	r, g, b, a := clr.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 0xffff
		s.vertices[i].ColorG = float32(g) / 0xffff
		s.vertices[i].ColorB = float32(b) / 0xffff
		s.vertices[i].ColorA = float32(a) / 0xffff
	}

	top := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		Blend:          ebiten.BlendLighter,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	s.canvas.DrawTriangles(s.vertices, s.indices, whiteSubImage, top)
}
