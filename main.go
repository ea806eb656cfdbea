package main

import (
	"flag"
	"log"

	"github.com/decker502/fireworks/pkg/app"
	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "详细日志")
	configPath = flag.String("config", "", "参数覆盖文件路径（为空使用内置默认值）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	skipReveal = flag.Bool("skip-reveal", false, "跳过礼盒动画，直接开始烟花")
	mute       = flag.Bool("mute", false, "关闭爆炸音效")
	debug      = flag.Bool("debug", false, "显示 TPS 和模拟计数")
	width      = flag.Int("width", config.DefaultWindowWidth, "画布宽度")
	height     = flag.Int("height", config.DefaultWindowHeight, "画布高度")
)

func main() {
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	fireworksApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		SkipReveal: *skipReveal,
		Mute:       *mute,
		Debug:      *debug,
		Width:      *width,
		Height:     *height,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	w, h := fireworksApp.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Fireworks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(fireworksApp); err != nil {
		log.Fatal(err)
	}
}
