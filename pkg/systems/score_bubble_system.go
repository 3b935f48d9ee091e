package systems

import (
	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/ecs"
)

// maxBubbleGray 气泡在一个淡出周期结束时达到的灰度
const maxBubbleGray = 200.0

// ScoreBubbleSystem 得分气泡的上升和淡出
type ScoreBubbleSystem struct {
	entityManager *ecs.EntityManager
	clock         clock.Clock
}

// NewScoreBubbleSystem 创建得分气泡系统
func NewScoreBubbleSystem(em *ecs.EntityManager, clk clock.Clock) *ScoreBubbleSystem {
	return &ScoreBubbleSystem{
		entityManager: em,
		clock:         clk,
	}
}

// Update 每帧上移气泡并根据已存在时间计算灰度
func (s *ScoreBubbleSystem) Update() {
	now := s.clock.Now()
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ScoreBubbleComponent](s.entityManager)

	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		bubble, ok := ecs.GetComponent[*components.ScoreBubbleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.Y -= bubble.RiseSpeed
		bubble.Gray = BubbleGray(now.Sub(bubble.CreatedAt).Seconds(), bubble.FadeDuration.Seconds())
	}
}

// BubbleGray 计算气泡灰度：min(255, elapsed/fade*200)
func BubbleGray(elapsed, fade float64) uint8 {
	if fade <= 0 {
		return 255
	}
	gray := elapsed / fade * maxBubbleGray
	if gray > 255 {
		return 255
	}
	if gray < 0 {
		return 0
	}
	return uint8(gray)
}
