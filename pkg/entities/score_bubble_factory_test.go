package entities

import (
	"testing"
	"time"

	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/ecs"
)

func TestNewScoreBubbleEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Bubble
	now := time.Date(2021, 1, 14, 0, 0, 0, 0, time.UTC)

	id := NewScoreBubbleEntity(em, cfg, now, 412, 333, 10)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("missing PositionComponent")
	}
	if pos.X != 412 || pos.Y != 333 {
		t.Errorf("position: got (%v, %v), want (412, 333)", pos.X, pos.Y)
	}

	bubble, ok := ecs.GetComponent[*components.ScoreBubbleComponent](em, id)
	if !ok {
		t.Fatal("missing ScoreBubbleComponent")
	}
	if bubble.Value != 10 {
		t.Errorf("Value: got %d, want 10", bubble.Value)
	}
	if bubble.FadeDuration != 5*time.Second || bubble.RiseSpeed != 2 || bubble.Radius != 40 {
		t.Errorf("bubble config not applied: %+v", bubble)
	}
	if !bubble.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt: got %v, want %v", bubble.CreatedAt, now)
	}

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok {
		t.Fatal("missing LifetimeComponent")
	}
	if lifetime.MaxLifetime != cfg.Fade {
		t.Errorf("MaxLifetime: got %v, want %v", lifetime.MaxLifetime, cfg.Fade)
	}
}
