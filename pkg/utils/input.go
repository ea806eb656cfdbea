// Package utils 提供通用工具函数
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 存储当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerSample struct {
	// 指针是否处于按下状态（鼠标左键或任意触摸）
	Down bool
	// 本帧是否刚刚按下
	JustPressed bool
	// 指针位置
	X, Y int
}

// SamplePointer 获取当前帧的指针状态
// 优先检测触摸，没有触摸时回退到鼠标
func SamplePointer() PointerSample {
	sample := PointerSample{}

	if justTouched := inpututil.AppendJustPressedTouchIDs(nil); len(justTouched) > 0 {
		sample.Down = true
		sample.JustPressed = true
		sample.X, sample.Y = ebiten.TouchPosition(justTouched[0])
		return sample
	}

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		sample.Down = true
		sample.X, sample.Y = ebiten.TouchPosition(touchIDs[0])
		return sample
	}

	sample.X, sample.Y = ebiten.CursorPosition()
	sample.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	sample.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return sample
}

// PointInRect 判断点是否落在矩形内（含左上边界，不含右下边界）
func PointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
