package components

import "math"

// PositionComponent 实体在屏幕上的位置
type PositionComponent struct {
	X float64
	Y float64
}

// DistanceTo 计算到点 (x, y) 的欧氏距离
func (p *PositionComponent) DistanceTo(x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}
