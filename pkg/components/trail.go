package components

// TrailPoint 拖尾中记录的一个历史位置
type TrailPoint struct {
	X, Y float64
}

// Trail 固定长度的历史位置队列
//
// 下标 0 是最近的位置，最后一个元素是最旧的位置。
// 每次 Push 会丢弃最旧的位置，长度保持不变。
type Trail struct {
	points []TrailPoint
}

// NewTrail 创建长度为 length 的拖尾，所有位置都初始化为 (x, y)
// length 小于 1 时按 1 处理
func NewTrail(length int, x, y float64) Trail {
	if length < 1 {
		length = 1
	}
	points := make([]TrailPoint, length)
	for i := range points {
		points[i] = TrailPoint{X: x, Y: y}
	}
	return Trail{points: points}
}

// Push 在队首插入新位置并丢弃队尾最旧的位置
func (t *Trail) Push(x, y float64) {
	copy(t.points[1:], t.points[:len(t.points)-1])
	t.points[0] = TrailPoint{X: x, Y: y}
}

// Oldest 返回最旧的位置
func (t *Trail) Oldest() TrailPoint {
	return t.points[len(t.points)-1]
}

// Len 返回拖尾长度
func (t *Trail) Len() int {
	return len(t.points)
}

// At 返回第 i 个位置（0 为最近）
func (t *Trail) At(i int) TrailPoint {
	return t.points[i]
}
