package game

import (
	"log"
	"math/rand"

	"github.com/decker502/fireworks/pkg/components"
	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/systems"
)

// SimulationState 一次烟花模拟的全部可变状态
//
// 由 FrameDriver 独占；StepSimulation 接收旧状态并返回新状态。
type SimulationState struct {
	// Hue 环境色相，每帧单调增加，不做折回（颜色转换时再折回）
	Hue float64

	Projectiles []*components.Projectile
	Sparks      []*components.Spark

	// Launcher 自动发射计时器和指针限速器
	Launcher systems.LaunchSystem

	// 统计信息
	Ticks    uint64
	Launched int
	Bursts   int
}

// NewSimulationState 创建空状态
func NewSimulationState(cfg *config.FireworksConfig) SimulationState {
	return SimulationState{
		Hue:         cfg.HueStart,
		Projectiles: make([]*components.Projectile, 0, 8),
		Sparks:      make([]*components.Spark, 0, cfg.Spark.Count*4),
		Launcher:    *systems.NewLaunchSystem(cfg.AutoLaunchTicks, cfg.PointerLaunchTicks),
	}
}

// StepEnv 单帧推进所需的只读环境
type StepEnv struct {
	Config  *config.FireworksConfig
	Rng     *rand.Rand
	Surface systems.Surface
	Pointer systems.PointerState
	// OnBurst 可选，每次爆炸时回调
	OnBurst func(x, y float64)
}

// StepSimulation 推进一帧：
//  1. 色相前进
//  2. 以 destination-out 擦淡上一帧
//  3. 绘制并推进所有上升中的烟花，到达目标的烟花在目标处爆炸并移除
//  4. 绘制并推进所有火花（包括本帧刚生成的），淡出的火花移除
//  5. 自动发射 / 指针限速发射
//
// 移除通过过滤保留的方式完成，不在遍历时按下标删除。
func StepSimulation(state SimulationState, env StepEnv) SimulationState {
	cfg := env.Config
	surface := env.Surface
	w, h := surface.Size()
	width, height := float64(w), float64(h)

	state.Ticks++
	state.Hue += cfg.HueStep

	surface.Fade(cfg.FadeAlpha)

	keptProjectiles := state.Projectiles[:0]
	for _, p := range state.Projectiles {
		systems.RenderProjectile(surface, p, state.Hue)
		if systems.AdvanceProjectile(p) {
			state.Sparks = systems.EmitSparks(state.Sparks, env.Rng, cfg.Spark, p.TargetX, p.TargetY, state.Hue)
			state.Bursts++
			if env.OnBurst != nil {
				env.OnBurst(p.TargetX, p.TargetY)
			}
			continue
		}
		keptProjectiles = append(keptProjectiles, p)
	}
	clearTail(state.Projectiles, len(keptProjectiles))
	state.Projectiles = keptProjectiles

	keptSparks := state.Sparks[:0]
	for _, s := range state.Sparks {
		systems.RenderSpark(surface, s)
		if systems.AdvanceSpark(s) {
			continue
		}
		keptSparks = append(keptSparks, s)
	}
	clearTail(state.Sparks, len(keptSparks))
	state.Sparks = keptSparks

	originX, originY := width/2, height
	for _, order := range state.Launcher.Update(env.Rng, env.Pointer, width, height) {
		state.Projectiles = append(state.Projectiles,
			systems.NewProjectile(env.Rng, cfg.Projectile, originX, originY, order.TargetX, order.TargetY))
		state.Launched++
	}

	return state
}

// clearTail 释放过滤后残留在底层数组尾部的指针
func clearTail[T any](s []*T, keep int) {
	for i := keep; i < len(s); i++ {
		s[i] = nil
	}
}

// FrameDriver 烟花模拟的顶层驱动
//
// 持有唯一的 SimulationState，由宿主的逐帧回调调用 Tick。
// 创建后处于停止状态，Start 之后 Tick 才会推进模拟。
type FrameDriver struct {
	cfg     *config.FireworksConfig
	rng     *rand.Rand
	state   SimulationState
	running bool

	// OnBurst 可选，每次爆炸时回调（音效层使用）
	OnBurst func(x, y float64)
}

// NewFrameDriver 创建驱动
//
// 参数：
//   - cfg: 模拟参数，nil 时使用默认值
//   - rng: 随机源，nil 时使用以 1 为种子的随机源
func NewFrameDriver(cfg *config.FireworksConfig, rng *rand.Rand) *FrameDriver {
	if cfg == nil {
		cfg = config.DefaultFireworksConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FrameDriver{
		cfg:   cfg,
		rng:   rng,
		state: NewSimulationState(cfg),
	}
}

// Start 开始推进模拟（重复调用无副作用）
func (fd *FrameDriver) Start() {
	if fd.running {
		return
	}
	fd.running = true
	log.Printf("[FrameDriver] Started (hue=%.1f)", fd.state.Hue)
}

// Stop 暂停推进，状态保留
func (fd *FrameDriver) Stop() {
	if !fd.running {
		return
	}
	fd.running = false
	log.Printf("[FrameDriver] Stopped after %d ticks, %d launched, %d bursts",
		fd.state.Ticks, fd.state.Launched, fd.state.Bursts)
}

// IsRunning 返回驱动是否在运行
func (fd *FrameDriver) IsRunning() bool {
	return fd.running
}

// Tick 推进一帧；未启动时什么都不做
func (fd *FrameDriver) Tick(surface systems.Surface, pointer systems.PointerState) {
	if !fd.running {
		return
	}
	fd.state = StepSimulation(fd.state, StepEnv{
		Config:  fd.cfg,
		Rng:     fd.rng,
		Surface: surface,
		Pointer: pointer,
		OnBurst: fd.OnBurst,
	})
}

// State 返回当前状态（只读使用）
func (fd *FrameDriver) State() *SimulationState {
	return &fd.state
}
