package utils

import "math"

// CollisionProbe 点与圆形靶子之间的命中检测
// 命中半径随靶子尺寸线性缩放：radius = RadiusFactor * scale
type CollisionProbe struct {
	RadiusFactor float64
}

// NewCollisionProbe 创建命中检测器
func NewCollisionProbe(radiusFactor float64) CollisionProbe {
	return CollisionProbe{RadiusFactor: radiusFactor}
}

// Radius 返回给定尺寸下的命中半径
func (p CollisionProbe) Radius(scale float64) float64 {
	return p.RadiusFactor * scale
}

// Hits 判断点 (px, py) 是否严格落在以 (cx, cy) 为圆心的命中圆内
func (p CollisionProbe) Hits(px, py, cx, cy, scale float64) bool {
	return math.Hypot(px-cx, py-cy) < p.Radius(scale)
}
