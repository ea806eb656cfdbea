package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/fireworks/pkg/components"
	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/game"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/systems"
	"github.com/decker502/fireworks/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RevealImagePath 揭示图片在嵌入资源中的路径
const RevealImagePath = "assets/images/reveal.jpg"

// 提示文字（移动端显示"轻点"）
const (
	hintTextDesktop = "Click the gift to open it"
	hintTextMobile  = "Tap the gift to open it"
)

// 配色
var (
	backdropColor   = color.NRGBA{R: 0x8e, G: 0x1b, B: 0x2c, A: 0xff}
	boxBodyColor    = color.NRGBA{R: 0xd9, G: 0x2b, B: 0x3a, A: 0xff}
	boxLidColor     = color.NRGBA{R: 0xb8, G: 0x1f, B: 0x2f, A: 0xff}
	boxRibbonColor  = color.NRGBA{R: 0xf5, G: 0xc5, B: 0x42, A: 0xff}
	boxShadeColor   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x30}
	hintTextColor   = color.NRGBA{R: 0xff, G: 0xf4, B: 0xe0, A: 0xff}
	screenBaseColor = color.Black
)

// GiftSceneOptions 礼盒场景的创建参数
type GiftSceneOptions struct {
	Config *config.FireworksConfig
	// Width / Height 画布尺寸，只在创建时读取一次
	Width, Height int
	Rng           *rand.Rand
	// Resources 用于加载揭示图片和提示字体；nil 时不显示图片和文字
	Resources *game.ResourceManager
	// Sound 爆炸音效；nil 时静音
	Sound *game.ExplosionSound
	// SkipReveal 跳过礼盒动画，直接开始烟花
	SkipReveal bool
	// Debug 显示 TPS 和模拟计数
	Debug bool
	// Pointer 指针采样函数，nil 时使用 utils.SamplePointer
	Pointer func() utils.PointerSample
}

// GiftScene 礼盒拆封 + 烟花场景
//
// 盒子点击一次后依次经历摇晃、开盖、下落三个动画步骤，
// 进入第四步时背景变透明、烟花开始、显示揭示图片。
type GiftScene struct {
	cfg           *config.FireworksConfig
	width, height int

	surface *render.EbitenSurface
	driver  *game.FrameDriver
	sound   *game.ExplosionSound

	box    components.GiftBoxComponent
	reveal *systems.RevealSystem

	// 礼盒精灵（创建时绘制一次）
	bodyImage *ebiten.Image
	lidImage  *ebiten.Image
	bodyX     float64
	bodyY     float64

	revealImage  *ebiten.Image
	hintFace     *text.GoTextFace
	hintText     string
	pointer      func() utils.PointerSample
	backdropOn   bool
	imageVisible bool
	debug        bool
	elapsed      float64
}

// NewGiftScene 创建礼盒场景
func NewGiftScene(opts GiftSceneOptions) (*GiftScene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultFireworksConfig()
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = config.DefaultWindowWidth, config.DefaultWindowHeight
	}

	s := &GiftScene{
		cfg:        cfg,
		width:      width,
		height:     height,
		surface:    render.NewEbitenSurface(width, height),
		driver:     game.NewFrameDriver(cfg, opts.Rng),
		sound:      opts.Sound,
		pointer:    opts.Pointer,
		backdropOn: true,
		debug:      opts.Debug,
		hintText:   hintTextDesktop,
	}
	if utils.IsMobile() {
		s.hintText = hintTextMobile
	}
	if s.pointer == nil {
		s.pointer = utils.SamplePointer
	}
	s.driver.OnBurst = s.onBurst

	if opts.Resources != nil {
		img, err := opts.Resources.LoadImage(RevealImagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load reveal image: %w", err)
		}
		s.revealImage = img

		face, err := opts.Resources.LoadFont(config.HintFontSize)
		if err != nil {
			return nil, fmt.Errorf("failed to load hint font: %w", err)
		}
		s.hintFace = face
	}

	s.bodyX, s.bodyY = config.GiftBoxOrigin(width, height)
	s.bodyImage, s.lidImage = buildGiftSprites()

	s.box.StepDelays = append([]float64(nil), cfg.Reveal.StepDelays...)
	s.reveal = systems.NewRevealSystem(&s.box, s.onReveal)

	log.Printf("[GiftScene] Created %dx%d (skipReveal=%v)", width, height, opts.SkipReveal)

	if opts.SkipReveal {
		s.reveal.Skip()
	}
	return s, nil
}

// Update 处理点击、推进拆封动画和烟花模拟
//
// 烟花在 Update 中绘制到离屏画布，Draw 只负责合成，
// 这样模拟速度固定为每秒 60 帧，与显示刷新率无关。
func (s *GiftScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	p := s.pointer()
	if s.box.ClickArmed && p.JustPressed && utils.PointInRect(p.X, p.Y, s.BoxBounds()) {
		s.reveal.Click()
	}

	s.reveal.Update(deltaTime)
	if s.sound != nil {
		s.sound.Update(deltaTime)
	}

	s.driver.Tick(s.surface, systems.PointerState{
		Down: p.Down,
		X:    float64(p.X),
		Y:    float64(p.Y),
	})
}

// Draw 合成画面：黑底、烟花画布、背景幕、礼盒、揭示图片
func (s *GiftScene) Draw(screen *ebiten.Image) {
	screen.Fill(screenBaseColor)
	screen.DrawImage(s.surface.Canvas(), nil)

	if s.backdropOn {
		vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), backdropColor, false)
	}

	s.drawGiftBox(screen)

	if s.box.Step == components.RevealIdle && s.hintFace != nil {
		s.drawHint(screen)
	}

	if s.imageVisible && s.revealImage != nil {
		s.drawRevealImage(screen)
	}

	if s.debug {
		s.drawDebug(screen)
	}
}

// BoxBounds 返回礼盒（含盒盖）的可点击区域
func (s *GiftScene) BoxBounds() image.Rectangle {
	x0 := s.bodyX - config.GiftLidOverhang
	y0 := s.bodyY - config.GiftLidHeight
	x1 := s.bodyX + config.GiftBoxWidth + config.GiftLidOverhang
	y1 := s.bodyY + config.GiftBoxHeight
	return image.Rect(int(x0), int(y0), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

// Step 返回当前拆封步骤
func (s *GiftScene) Step() components.RevealStep {
	return s.reveal.Step()
}

// Driver 返回烟花驱动
func (s *GiftScene) Driver() *game.FrameDriver {
	return s.driver
}

// BackdropVisible 返回背景幕是否仍然显示
func (s *GiftScene) BackdropVisible() bool {
	return s.backdropOn
}

// ImageVisible 返回揭示图片是否已显示
func (s *GiftScene) ImageVisible() bool {
	return s.imageVisible
}

func (s *GiftScene) onReveal() {
	s.backdropOn = false
	s.imageVisible = true
	s.driver.Start()
	log.Printf("[GiftScene] Revealed after %.2fs", s.elapsed)
}

func (s *GiftScene) onBurst(x, y float64) {
	if s.sound != nil {
		s.sound.Play()
	}
}

// giftPose 某一时刻礼盒各部分的变换
type giftPose struct {
	Visible     bool
	Angle       float64 // 整体摇晃角度（弧度），绕盒底中心
	LidOffsetY  float64
	LidAlpha    float64
	BodyOffsetY float64
	BodyAlpha   float64
}

// 摇晃参数
const (
	wiggleCycles    = 6
	wiggleAmplitude = 0.14
)

// computeGiftPose 根据步骤和步骤内进度计算礼盒姿态
func computeGiftPose(step components.RevealStep, progress float64) giftPose {
	progress = utils.Clamp01(progress)
	pose := giftPose{Visible: true, LidAlpha: 1, BodyAlpha: 1}

	switch step {
	case components.RevealShake:
		pose.Angle = utils.Wiggle(progress, wiggleCycles) * wiggleAmplitude
	case components.RevealLidOff:
		pose.LidOffsetY = -utils.EaseOutCubic(progress) * config.GiftLidLiftDistance
		pose.LidAlpha = 1 - progress
	case components.RevealDrop:
		pose.LidAlpha = 0
		pose.BodyOffsetY = utils.EaseInCubic(progress) * config.GiftDropDistance
		pose.BodyAlpha = 1 - progress
	case components.RevealDone:
		pose.Visible = false
	}
	return pose
}

func (s *GiftScene) drawGiftBox(screen *ebiten.Image) {
	pose := computeGiftPose(s.box.Step, s.reveal.Progress())
	if !pose.Visible {
		return
	}

	// 旋转中心：盒底中心
	pivotX := s.bodyX + config.GiftBoxWidth/2
	pivotY := s.bodyY + config.GiftBoxHeight

	if pose.BodyAlpha > 0 {
		drawSprite(screen, s.bodyImage, s.bodyX, s.bodyY+pose.BodyOffsetY, pivotX, pivotY, pose.Angle, pose.BodyAlpha)
	}
	if pose.LidAlpha > 0 {
		lidX := s.bodyX - config.GiftLidOverhang
		lidY := s.bodyY - config.GiftLidHeight + pose.LidOffsetY
		drawSprite(screen, s.lidImage, lidX, lidY, pivotX, pivotY, pose.Angle, pose.LidAlpha)
	}
}

// drawSprite 在 (x, y) 绘制 img，并绕 (pivotX, pivotY) 旋转 angle
func drawSprite(screen, img *ebiten.Image, x, y, pivotX, pivotY, angle, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-pivotX, y-pivotY)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(pivotX, pivotY)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// buildGiftSprites 绘制盒身和盒盖精灵
func buildGiftSprites() (body, lid *ebiten.Image) {
	bw, bh := float32(config.GiftBoxWidth), float32(config.GiftBoxHeight)
	ribbon := float32(config.GiftRibbonWidth)

	body = ebiten.NewImage(int(bw), int(bh))
	vector.DrawFilledRect(body, 0, 0, bw, bh, boxBodyColor, true)
	vector.DrawFilledRect(body, (bw-ribbon)/2, 0, ribbon, bh, boxRibbonColor, true)
	// 盒盖下方的阴影
	vector.DrawFilledRect(body, 0, 0, bw, 8, boxShadeColor, true)

	lw := bw + 2*float32(config.GiftLidOverhang)
	lh := float32(config.GiftLidHeight)
	lid = ebiten.NewImage(int(lw), int(lh))
	vector.DrawFilledRect(lid, 0, 0, lw, lh, boxLidColor, true)
	vector.DrawFilledRect(lid, (lw-ribbon)/2, 0, ribbon, lh, boxRibbonColor, true)
	return body, lid
}

func (s *GiftScene) drawHint(screen *ebiten.Image) {
	// 提示文字缓慢呼吸
	alpha := 0.65 + 0.35*math.Sin(s.elapsed*3)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(s.width)/2, s.bodyY+config.GiftBoxHeight+32)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(hintTextColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s.hintText, s.hintFace, op)
}

// drawRevealImage 居中绘制揭示图片，缩放到布局规定的尺寸
func (s *GiftScene) drawRevealImage(screen *ebiten.Image) {
	w, h := config.RevealImageSize(s.width)
	b := s.revealImage.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.GeoM.Translate(float64(s.width-w)/2, float64(s.height-h)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.revealImage, op)
}

func (s *GiftScene) drawDebug(screen *ebiten.Image) {
	state := s.driver.State()
	info := fmt.Sprintf("TPS: %.1f  step: %s  hue: %.0f\nprojectiles: %d  sparks: %d  launched: %d  bursts: %d",
		ebiten.ActualTPS(), s.box.Step, utils.NormalizeHue(state.Hue),
		len(state.Projectiles), len(state.Sparks), state.Launched, state.Bursts)
	ebitenutil.DebugPrintAt(screen, info, 10, 10)
}
