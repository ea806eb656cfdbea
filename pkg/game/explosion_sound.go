package game

import (
	"encoding/binary"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 爆炸音效参数
const (
	// SampleRate 音频采样率（与 audio.NewContext 保持一致）
	SampleRate = 48000

	popDuration = 0.35 // 秒
	popVolume   = 0.35
	// popMinInterval 两次爆炸音效之间的最小间隔（秒），避免同时爆炸时音量叠加
	popMinInterval = 0.05
)

// SynthesizePop 生成一段爆炸"噼啪"声的 PCM 数据
//
// 白噪声乘以指数衰减包络，再叠加一个低频正弦的闷响。
// 输出格式为 16 位有符号小端、双声道，可直接交给 audio.Context.NewPlayerFromBytes。
func SynthesizePop(rng *rand.Rand, sampleRate int, duration float64) []byte {
	frames := int(float64(sampleRate) * duration)
	buf := make([]byte, frames*4)

	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * 14)
		noise := rng.Float64()*2 - 1
		thump := math.Sin(2*math.Pi*70*t) * math.Exp(-t*9)
		v := (noise*0.6 + thump*0.4) * envelope

		sample := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}

	return buf
}

// ExplosionSound 烟花爆炸音效播放器
//
// context 为 nil 时进入静音降级模式，Play 直接返回。
type ExplosionSound struct {
	context  *audio.Context
	pcm      []byte
	enabled  bool
	cooldown float64
}

// NewExplosionSound 创建爆炸音效
//
// 参数：
//   - context: Ebitengine 音频上下文，可为 nil（静音）
//   - enabled: 是否启用音效
func NewExplosionSound(context *audio.Context, enabled bool) *ExplosionSound {
	es := &ExplosionSound{
		context: context,
		enabled: enabled && context != nil,
	}
	if es.enabled {
		es.pcm = SynthesizePop(rand.New(rand.NewSource(7)), SampleRate, popDuration)
		log.Printf("[ExplosionSound] Synthesized %d bytes of PCM", len(es.pcm))
	}
	return es
}

// Update 推进冷却时间
func (es *ExplosionSound) Update(dt float64) {
	if es.cooldown > 0 {
		es.cooldown -= dt
	}
}

// Play 播放一次爆炸音效
//
// 返回：
//   - bool: 是否真的播放了（静音或冷却中返回 false）
func (es *ExplosionSound) Play() bool {
	if !es.enabled || es.cooldown > 0 {
		return false
	}
	es.cooldown = popMinInterval

	player := es.context.NewPlayerFromBytes(es.pcm)
	player.SetVolume(popVolume)
	player.Play()
	return true
}

// IsEnabled 返回音效是否可用
func (es *ExplosionSound) IsEnabled() bool {
	return es.enabled
}
