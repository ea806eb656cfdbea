package utils

import "math"

// Easing Functions (缓动函数)
//
// 用于礼盒拆封动画（盒盖弹起、盒身下落、摇晃）。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
//
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（盒盖弹起）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快（盒身下落）
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// Wiggle 衰减摇晃曲线
// 返回 [-1, 1] 内的摆动值，振幅随 t 线性衰减到 0
// cycles 为 t ∈ [0, 1] 内完整摆动的次数
func Wiggle(t, cycles float64) float64 {
	t = Clamp01(t)
	return math.Sin(t*cycles*2*math.Pi) * (1 - t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return clamp01(t)
}
