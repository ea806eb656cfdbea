package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个画面（礼盒拆封 + 烟花）
// 每个场景有自己的更新与绘制逻辑
type Scene interface {
	// Update 按经过的时间更新场景逻辑
	// deltaTime 为距上一次更新的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}
