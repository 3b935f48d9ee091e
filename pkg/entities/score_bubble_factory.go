package entities

import (
	"time"

	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/ecs"
)

// NewScoreBubbleEntity 创建一个得分气泡实体
// 参数:
//   - manager: 共享的活动气泡容器
//   - cfg: 气泡配置（淡出时间、上升速度、半径）
//   - now: 创建时刻
//   - x, y: 起始位置（被击碎靶子的最后位置）
//   - value: 显示的分值
//
// 返回: 创建的实体ID
func NewScoreBubbleEntity(manager *ecs.EntityManager, cfg config.BubbleConfig, now time.Time, x, y float64, value int) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: y,
	})

	manager.AddComponent(id, &components.ScoreBubbleComponent{
		Value:        value,
		CreatedAt:    now,
		FadeDuration: cfg.Fade,
		RiseSpeed:    cfg.RiseSpeed,
		Radius:       cfg.Radius,
	})

	// 淡出结束后由 LifetimeSystem 自动销毁
	manager.AddComponent(id, &components.LifetimeComponent{
		SpawnedAt:   now,
		MaxLifetime: cfg.Fade,
	})

	return id
}
