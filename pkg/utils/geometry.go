package utils

import (
	"math"
	"math/rand"
)

// Distance 计算两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

// RandomInRange 返回 [min, max) 区间内的均匀随机数
//
// rng 为 nil 时使用全局随机源。min == max 时直接返回 min。
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min == max {
		return min
	}
	if rng == nil {
		return rand.Float64()*(max-min) + min
	}
	return rng.Float64()*(max-min) + min
}
