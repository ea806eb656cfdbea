package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FireworksConfig 烟花模拟的全部可调参数
//
// 默认值编译在 DefaultFireworksConfig 中，同时随程序嵌入 data/fireworks.yaml。
// YAML 文档只需写出要覆盖的字段，未出现的字段保持默认值。
//
// 配置文件位置: data/fireworks.yaml
type FireworksConfig struct {
	// HueStart 环境色相初始值（度）
	HueStart float64 `yaml:"hueStart"`
	// HueStep 每帧色相增量（度）
	HueStep float64 `yaml:"hueStep"`
	// FadeAlpha 每帧擦除旧画面的不透明度，越小拖尾越长
	FadeAlpha float64 `yaml:"fadeAlpha"`

	// AutoLaunchTicks 自动发射间隔（帧）
	AutoLaunchTicks int `yaml:"autoLaunchTicks"`
	// PointerLaunchTicks 按住指针时的发射间隔（帧）
	PointerLaunchTicks int `yaml:"pointerLaunchTicks"`

	Projectile ProjectileConfig `yaml:"projectile"`
	Spark      SparkConfig      `yaml:"spark"`
	Reveal     RevealConfig     `yaml:"reveal"`

	// SoundEnabled 是否播放爆炸音效
	SoundEnabled bool `yaml:"soundEnabled"`
}

// ProjectileConfig 上升烟花参数
type ProjectileConfig struct {
	InitialSpeed float64 `yaml:"initialSpeed"`
	// Acceleration 每帧速度乘数
	Acceleration float64    `yaml:"acceleration"`
	Brightness   RangeValue `yaml:"brightness"`
	TrailLength  int        `yaml:"trailLength"`
	// TargetRadiusStep / TargetRadiusMax 目标指示圈的脉动步长与上限
	TargetRadiusStep float64 `yaml:"targetRadiusStep"`
	TargetRadiusMax  float64 `yaml:"targetRadiusMax"`
}

// SparkConfig 爆炸火花参数
type SparkConfig struct {
	// Count 每次爆炸生成的火花数量
	Count       int        `yaml:"count"`
	Speed       RangeValue `yaml:"speed"`
	Friction    float64    `yaml:"friction"`
	Gravity     float64    `yaml:"gravity"`
	HueSpread   float64    `yaml:"hueSpread"`
	Brightness  RangeValue `yaml:"brightness"`
	Decay       RangeValue `yaml:"decay"`
	TrailLength int        `yaml:"trailLength"`
}

// RevealConfig 礼盒拆封序列参数
type RevealConfig struct {
	// StepDelays 每一步之后等待的秒数，共四步
	// 第四个值保留但不会被消耗：第四步直接触发揭示
	StepDelays []float64 `yaml:"stepDelays"`
}

// RangeValue 数值范围 [Min, Max)
type RangeValue struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RevealStepCount 拆封序列的步数
const RevealStepCount = 4

// DefaultFireworksConfig 返回默认配置
func DefaultFireworksConfig() *FireworksConfig {
	return &FireworksConfig{
		HueStart:           120,
		HueStep:            0.5,
		FadeAlpha:          0.5,
		AutoLaunchTicks:    80,
		PointerLaunchTicks: 5,
		Projectile: ProjectileConfig{
			InitialSpeed:     2,
			Acceleration:     1.05,
			Brightness:       RangeValue{Min: 50, Max: 70},
			TrailLength:      3,
			TargetRadiusStep: 0.3,
			TargetRadiusMax:  8,
		},
		Spark: SparkConfig{
			Count:       30,
			Speed:       RangeValue{Min: 1, Max: 10},
			Friction:    0.95,
			Gravity:     1,
			HueSpread:   20,
			Brightness:  RangeValue{Min: 50, Max: 80},
			Decay:       RangeValue{Min: 0.015, Max: 0.03},
			TrailLength: 5,
		},
		Reveal: RevealConfig{
			StepDelays: []float64{2, 2, 1, 1},
		},
		SoundEnabled: true,
	}
}

// LoadFireworksConfig 将 YAML 文档覆盖到默认配置上并验证
//
// 参数:
//   - data: YAML 内容，可以为空（直接返回默认值）
//
// 返回:
//   - *FireworksConfig: 合并后的配置
//   - error: 解析或验证失败时返回错误
func LoadFireworksConfig(data []byte) (*FireworksConfig, error) {
	cfg := DefaultFireworksConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fireworks config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fireworks config: %w", err)
	}

	return cfg, nil
}

// LoadFireworksConfigFile 从磁盘读取覆盖配置
func LoadFireworksConfigFile(path string) (*FireworksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fireworks config %s: %w", path, err)
	}
	return LoadFireworksConfig(data)
}

// Validate 验证配置有效性
func (c *FireworksConfig) Validate() error {
	if c.AutoLaunchTicks <= 0 {
		return fmt.Errorf("autoLaunchTicks must be > 0, got %d", c.AutoLaunchTicks)
	}
	if c.PointerLaunchTicks <= 0 {
		return fmt.Errorf("pointerLaunchTicks must be > 0, got %d", c.PointerLaunchTicks)
	}
	if c.FadeAlpha <= 0 || c.FadeAlpha > 1 {
		return fmt.Errorf("fadeAlpha must be in (0, 1], got %.3f", c.FadeAlpha)
	}

	p := c.Projectile
	if p.InitialSpeed <= 0 {
		return fmt.Errorf("projectile.initialSpeed must be > 0, got %.3f", p.InitialSpeed)
	}
	if p.Acceleration < 1 {
		return fmt.Errorf("projectile.acceleration must be >= 1, got %.3f", p.Acceleration)
	}
	if p.TrailLength < 1 {
		return fmt.Errorf("projectile.trailLength must be >= 1, got %d", p.TrailLength)
	}
	if p.TargetRadiusMax < 1 {
		return fmt.Errorf("projectile.targetRadiusMax must be >= 1, got %.3f", p.TargetRadiusMax)
	}
	if err := p.Brightness.validate("projectile.brightness"); err != nil {
		return err
	}

	s := c.Spark
	if s.Count < 0 {
		return fmt.Errorf("spark.count must be >= 0, got %d", s.Count)
	}
	if s.Friction <= 0 || s.Friction > 1 {
		return fmt.Errorf("spark.friction must be in (0, 1], got %.3f", s.Friction)
	}
	if s.TrailLength < 1 {
		return fmt.Errorf("spark.trailLength must be >= 1, got %d", s.TrailLength)
	}
	if s.Decay.Min <= 0 {
		return fmt.Errorf("spark.decay.min must be > 0, got %.4f", s.Decay.Min)
	}
	for name, r := range map[string]RangeValue{
		"spark.speed":      s.Speed,
		"spark.brightness": s.Brightness,
		"spark.decay":      s.Decay,
	} {
		if err := r.validate(name); err != nil {
			return err
		}
	}

	if len(c.Reveal.StepDelays) != RevealStepCount {
		return fmt.Errorf("reveal.stepDelays must have %d entries, got %d",
			RevealStepCount, len(c.Reveal.StepDelays))
	}
	for i, d := range c.Reveal.StepDelays {
		if d < 0 {
			return fmt.Errorf("reveal.stepDelays[%d] must be >= 0, got %.2f", i, d)
		}
	}

	return nil
}

func (r RangeValue) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s range invalid: min(%.3f) > max(%.3f)", name, r.Min, r.Max)
	}
	return nil
}
