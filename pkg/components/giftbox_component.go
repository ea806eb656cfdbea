package components

// RevealStep 礼盒拆封序列的阶段
// 对应原页面上依次切换的 step-1 ~ step-4 样式
type RevealStep int

const (
	// RevealIdle 尚未点击礼盒
	RevealIdle RevealStep = iota
	// RevealShake 第一步：礼盒摇晃
	RevealShake
	// RevealLidOff 第二步：盒盖弹开
	RevealLidOff
	// RevealDrop 第三步：盒身淡出下落
	RevealDrop
	// RevealDone 第四步：礼盒隐藏，开始放烟花并显示图片
	RevealDone
)

// String 返回阶段名称（用于日志）
func (s RevealStep) String() string {
	switch s {
	case RevealIdle:
		return "idle"
	case RevealShake:
		return "step-1"
	case RevealLidOff:
		return "step-2"
	case RevealDrop:
		return "step-3"
	case RevealDone:
		return "step-4"
	default:
		return "unknown"
	}
}

// GiftBoxComponent 礼盒拆封状态
//
// 纯数据组件，由 RevealSystem 推进。
type GiftBoxComponent struct {
	// Step 当前阶段
	Step RevealStep
	// StepElapsed 进入当前阶段后经过的时间（秒）
	StepElapsed float64
	// StepDelays 每个阶段停留的时间（秒），下标 0 对应 step-1
	StepDelays []float64
	// ClickArmed 点击处理是否仍然挂载（第一次点击后摘除）
	ClickArmed bool
	// Revealed 揭示回调是否已经触发
	Revealed bool
}
