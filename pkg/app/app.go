// Package app 提供烟花应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/embedded"
	"github.com/decker502/fireworks/pkg/game"
	"github.com/decker502/fireworks/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 内置默认参数在嵌入资源中的路径
const DefaultConfigPath = "data/fireworks.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 覆盖参数文件路径（磁盘），为空则使用内置 data/fireworks.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// SkipReveal 跳过礼盒动画
	SkipReveal bool
	// Mute 关闭爆炸音效
	Mute bool
	// Debug 显示调试信息
	Debug bool
	// Width / Height 逻辑画布尺寸，<= 0 时使用默认值
	Width, Height int
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	width, height            int
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 读取烟花参数
//
// path 为空时读取内置的 data/fireworks.yaml；否则读取磁盘文件。
func LoadConfig(path string) (*config.FireworksConfig, error) {
	if path != "" {
		return config.LoadFireworksConfigFile(path)
	}
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取内置参数失败: %w", err)
	}
	return config.LoadFireworksConfig(data)
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fwConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("参数加载失败: %w", err)
	}
	log.Printf("[Config] Loaded fireworks config (hue step %.2f, %d sparks per burst)",
		fwConfig.HueStep, fwConfig.Spark.Count)

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = config.DefaultWindowWidth, config.DefaultWindowHeight
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	// 初始化音频上下文
	var sound *game.ExplosionSound
	if fwConfig.SoundEnabled && !cfg.Mute {
		sound = game.NewExplosionSound(audio.NewContext(game.SampleRate), true)
	} else {
		log.Printf("[App] Sound disabled")
	}

	scene, err := scenes.NewGiftScene(scenes.GiftSceneOptions{
		Config:     fwConfig,
		Width:      width,
		Height:     height,
		Rng:        rand.New(rand.NewSource(seed)),
		Resources:  game.NewResourceManager(),
		Sound:      sound,
		SkipReveal: cfg.SkipReveal,
		Debug:      cfg.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		width:        width,
		height:       height,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧 letterbox 填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 尺寸在启动时确定，窗口缩放由 Ebitengine 处理，模拟坐标系不变
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Size 返回逻辑画布尺寸
func (a *App) Size() (int, int) {
	return a.width, a.height
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
