package components

import "time"

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如得分气泡)
type LifetimeComponent struct {
	SpawnedAt   time.Time     // 创建时刻
	MaxLifetime time.Duration // 最大生命周期
	IsExpired   bool          // 是否已过期
}
