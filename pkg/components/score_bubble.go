package components

import "time"

// ScoreBubbleComponent 得分气泡组件
// 命中靶子后在靶子位置生成，向上漂浮并逐渐变灰，淡出后自动销毁
type ScoreBubbleComponent struct {
	// Value 显示的分值（"+Value"）
	Value int

	// CreatedAt 创建时刻
	CreatedAt time.Time

	// FadeDuration 淡出时长
	FadeDuration time.Duration

	// RiseSpeed 每帧上升的距离
	RiseSpeed float64

	// Radius 气泡圆环半径
	Radius float64

	// Gray 当前灰度（0 = 黑，255 = 与背景一致）
	Gray uint8
}
