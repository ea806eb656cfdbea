package utils

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NormalizeHue 将色相折回 [0, 360) 区间
// 与 CSS hsl() 的行为一致：480 与 120 是同一个颜色
func NormalizeHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HSLA 将 CSS 风格的 hsla(h, s%, l%, a) 转换为 color.NRGBA
//
// 参数：
//   - hue: 色相（度），任意实数，内部折回 [0, 360)
//   - saturation, lightness: 百分比 0 ~ 100
//   - alpha: 不透明度 0 ~ 1，超出范围会被截断
func HSLA(hue, saturation, lightness, alpha float64) color.NRGBA {
	c := colorful.Hsl(NormalizeHue(hue), clamp01(saturation/100), clamp01(lightness/100)).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// HSL 等价于 alpha = 1 的 HSLA
func HSL(hue, saturation, lightness float64) color.NRGBA {
	return HSLA(hue, saturation, lightness, 1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
