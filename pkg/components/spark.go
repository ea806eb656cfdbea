package components

// Spark 烟花爆炸后的一颗火花
//
// 速度每帧乘以 Friction 衰减，竖直方向额外叠加 Gravity；
// Alpha 每帧减少 Decay，当 Alpha <= Decay 时被移除。
type Spark struct {
	X, Y float64

	// Angle 运动方向（弧度），[0, 2π) 内随机，创建后不变
	Angle    float64
	Speed    float64
	Friction float64
	Gravity  float64

	// 颜色：Hue 为创建时的环境色相加上随机偏移
	Hue        float64
	Brightness float64

	// Alpha 当前不透明度，单调递减
	Alpha float64
	// Decay 每帧透明度衰减量（每颗火花独立随机）
	Decay float64

	Trail Trail
}
