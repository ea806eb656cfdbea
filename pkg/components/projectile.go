package components

// Projectile 一枚正在上升的烟花
//
// 从发射点直线飞向目标点，速度每帧按 Acceleration 倍增。
// 这是一个纯数据组件，行为由 systems.AdvanceProjectile / RenderProjectile 实现。
type Projectile struct {
	// 当前位置
	X, Y float64
	// 发射点
	OriginX, OriginY float64
	// 目标点（爆炸位置）
	TargetX, TargetY float64

	// DistanceToTarget 发射点到目标点的直线距离（创建时计算）
	DistanceToTarget float64
	// DistanceTraveled 发射点到"下一帧预期位置"的距离，单调不减
	DistanceTraveled float64

	// Angle 飞行方向（弧度），创建后不变
	Angle float64
	// Speed 当前速度（像素/帧）
	Speed float64
	// Acceleration 每帧速度乘数
	Acceleration float64

	// Brightness HSL 亮度百分比
	Brightness float64

	// TargetRadius 目标指示圈的当前半径，在 [1, TargetRadiusMax] 内循环
	TargetRadius     float64
	TargetRadiusStep float64
	TargetRadiusMax  float64

	Trail Trail
}
