package systems

import (
	"testing"
	"time"

	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/ecs"
	"github.com/gonewx/targets/pkg/entities"
)

func TestScoreBubbleRiseAndFade(t *testing.T) {
	clk := clock.NewManualClock(time.Date(2021, 1, 14, 0, 0, 0, 0, time.UTC))
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Bubble
	system := NewScoreBubbleSystem(em, clk)

	id := entities.NewScoreBubbleEntity(em, cfg, clk.Now(), 450, 350, 7)

	for i := 0; i < 10; i++ {
		clk.Advance(10 * time.Millisecond)
		system.Update()
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y != 330 {
		t.Errorf("Y after 10 ticks: got %v, want 330", pos.Y)
	}
	if pos.X != 450 {
		t.Errorf("X should not change, got %v", pos.X)
	}

	clk.Advance(2400 * time.Millisecond) // 共 2.5s，即半个淡出周期
	system.Update()
	bubble, _ := ecs.GetComponent[*components.ScoreBubbleComponent](em, id)
	if bubble.Gray != 100 {
		t.Errorf("Gray at half fade: got %d, want 100", bubble.Gray)
	}
}

func TestBubbleGray(t *testing.T) {
	tests := []struct {
		elapsed, fade float64
		want          uint8
	}{
		{0, 5, 0},
		{2.5, 5, 100},
		{5, 5, 200},
		{10, 5, 255},
		{1, 0, 255},
	}
	for _, tt := range tests {
		if got := BubbleGray(tt.elapsed, tt.fade); got != tt.want {
			t.Errorf("BubbleGray(%v, %v) = %d, want %d", tt.elapsed, tt.fade, got, tt.want)
		}
	}
}

func TestLifetimeSystemExpiresBubble(t *testing.T) {
	clk := clock.NewManualClock(time.Date(2021, 1, 14, 0, 0, 0, 0, time.UTC))
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Bubble
	system := NewLifetimeSystem(em, clk)

	early := entities.NewScoreBubbleEntity(em, cfg, clk.Now(), 0, 0, 10)
	clk.Advance(time.Second)
	late := entities.NewScoreBubbleEntity(em, cfg, clk.Now(), 0, 0, 5)

	// 恰好等于淡出时长时尚未过期
	clk.Advance(4 * time.Second)
	system.Update()
	em.RemoveMarkedEntities()
	if em.EntityCount() != 2 {
		t.Fatalf("no bubble should expire at exactly fade duration, got %d entities", em.EntityCount())
	}

	clk.Advance(time.Millisecond)
	system.Update()
	em.RemoveMarkedEntities()

	if _, ok := ecs.GetComponent[*components.ScoreBubbleComponent](em, early); ok {
		t.Error("early bubble should be removed")
	}
	if _, ok := ecs.GetComponent[*components.ScoreBubbleComponent](em, late); !ok {
		t.Error("late bubble should still exist")
	}

	clk.Advance(time.Second)
	system.Update()
	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("all bubbles should expire, got %d", em.EntityCount())
	}
}
