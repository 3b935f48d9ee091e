package systems

import (
	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 存在时间超过 MaxLifetime 的实体会被标记删除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	clock         clock.Clock
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, clk clock.Clock) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
		clock:         clk,
	}
}

// Update 检查所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update() {
	now := s.clock.Now()
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 检查是否过期
		if now.Sub(lifetime.SpawnedAt) > lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		// 如果已过期,标记实体待删除
		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
