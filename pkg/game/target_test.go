package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/ecs"
)

func newTestTarget() *Target {
	return NewTarget(config.DefaultGameConfig().Target, rand.New(rand.NewSource(7)), NopAudio{}, time.Unix(0, 0))
}

func TestTargetWorth(t *testing.T) {
	tests := []struct {
		scale float64
		want  int
	}{
		{0, 10},
		{0.05, 10},
		{0.079, 10},
		{0.08, 9},
		{0.15, 9},
		{0.25, 7},
		{0.5, 4},
		{0.79, 1},
		{0.81, 0},
	}

	tg := newTestTarget()
	for _, tt := range tests {
		tg.scale = tt.scale
		if got := tg.Worth(); got != tt.want {
			t.Errorf("Worth(scale=%v) = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestTargetWorthNonIncreasing(t *testing.T) {
	tg := newTestTarget()
	prev := math.MaxInt
	for s := 0.0; s <= 0.8+0.0135; s += 0.001 {
		tg.scale = s
		w := tg.Worth()
		if w > prev {
			t.Fatalf("worth increased at scale %v: %d > %d", s, w, prev)
		}
		if w < 0 || w > 10 {
			t.Fatalf("worth %d out of range at scale %v", w, s)
		}
		prev = w
	}
}

func TestTargetHitRadiusBoundary(t *testing.T) {
	const eps = 1e-6
	tg := newTestTarget()
	placeTarget(tg, 450, 350, 0.5)
	radius := 42 * 0.5

	if !tg.IsHit(450+radius-eps, 350) {
		t.Error("point just inside radius should hit")
	}
	if tg.IsHit(450+radius+eps, 350) {
		t.Error("point just outside radius should miss")
	}
	if tg.IsHit(450, 350+radius) {
		t.Error("point exactly on the radius should miss")
	}

	tg.Break(time.Unix(0, 0))
	if tg.IsHit(450, 350) {
		t.Error("breaking target must never be hit")
	}
}

func TestTargetIsOff(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		scale float64
		want  bool
	}{
		{"center", 450, 350, 0.1, false},
		{"left edge open", -80, 350, 0.1, true},
		{"left inside", -79.9, 350, 0.1, false},
		{"right", 980, 350, 0.1, true},
		{"top", 450, -85, 0.1, true},
		{"bottom", 450, 700, 0.1, true},
		{"max scale", 450, 350, 0.8, false},
		{"too large", 450, 350, 0.801, true},
	}

	tg := newTestTarget()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placeTarget(tg, tt.x, tt.y, tt.scale)
			if got := tg.IsOff(); got != tt.want {
				t.Errorf("IsOff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetSpeedCap(t *testing.T) {
	for n := 0; n <= 40; n++ {
		tg := newTestTarget()
		for i := 0; i < n; i++ {
			tg.AddSpeed()
		}
		want := math.Min(5.0, 1.5+0.135*float64(n))
		if math.Abs(tg.Speed()-want) > 1e-9 {
			t.Errorf("after %d hits: speed = %v, want %v", n, tg.Speed(), want)
		}
		if tg.Speed() > 5.0 {
			t.Errorf("after %d hits: speed %v exceeds cap", n, tg.Speed())
		}
	}
}

func TestTargetRandomizeRanges(t *testing.T) {
	tg := newTestTarget()
	now := time.Unix(100, 0)

	for i := 0; i < 500; i++ {
		tg.Randomize(now, 1500*time.Millisecond)

		x, y := tg.Position()
		if x < 400 || x > 500 || x != math.Trunc(x) {
			t.Fatalf("x out of spawn region: %v", x)
		}
		if y < 300 || y > 400 || y != math.Trunc(y) {
			t.Fatalf("y out of spawn region: %v", y)
		}
		if tg.Scale() < 0 || tg.Scale() >= 0.10 {
			t.Fatalf("scale out of range: %v", tg.Scale())
		}
		if tg.Direction() < 0 || tg.Direction() >= 2*math.Pi {
			t.Fatalf("direction out of range: %v", tg.Direction())
		}
		if tg.State() != TargetSpawning {
			t.Fatalf("state after randomize: %v", tg.State())
		}
	}
}

func TestTargetSpawnPhase(t *testing.T) {
	h := newTestHarness(t, DefaultProfileRecord())
	s := h.session
	s.Start()
	tg := s.Target()

	tg.Randomize(s.Now(), 1500*time.Millisecond)
	x0, y0 := tg.Position()

	// 隐藏期间不移动，出现前 200ms 播放出生音效
	h.clock.Advance(1200 * time.Millisecond)
	tg.Update(s)
	if h.audio.plays[CueSpawn] != 0 {
		t.Fatal("spawn cue played too early")
	}
	if x, y := tg.Position(); x != x0 || y != y0 {
		t.Fatal("hidden target moved")
	}

	h.clock.Advance(100 * time.Millisecond)
	tg.Update(s)
	tg.Update(s)
	if h.audio.plays[CueSpawn] != 1 {
		t.Fatalf("spawn cue plays: got %d, want 1", h.audio.plays[CueSpawn])
	}
	if tg.State() != TargetSpawning {
		t.Fatal("target should still be hidden")
	}

	h.clock.Advance(200 * time.Millisecond)
	tg.Update(s)
	if tg.State() != TargetActive {
		t.Fatalf("state after hide delay: %v", tg.State())
	}
	if x, y := tg.Position(); x == x0 && y == y0 {
		t.Error("active target should move on the activating tick")
	}
	if h.audio.plays[CueNoise] != 1 {
		t.Errorf("noise cue plays: got %d, want 1", h.audio.plays[CueNoise])
	}
	wantVolume := tg.Scale()*0.5 + 0.2
	if math.Abs(h.audio.volumes[CueNoise]-wantVolume) > 1e-9 {
		t.Errorf("noise volume: got %v, want %v", h.audio.volumes[CueNoise], wantVolume)
	}
}

func TestTargetZeroDelayActivatesImmediately(t *testing.T) {
	h := newTestHarness(t, DefaultProfileRecord())
	s := h.session
	s.Start()
	tg := s.Target()

	tg.Randomize(s.Now(), 0)
	tg.Update(s)
	if tg.State() != TargetActive {
		t.Errorf("zero delay target state: %v, want Active", tg.State())
	}
}

func TestTargetGrowthAndMovement(t *testing.T) {
	h := newTestHarness(t, DefaultProfileRecord())
	s := h.session
	s.Start()
	tg := s.Target()

	placeTarget(tg, 450, 350, 0.1)
	tg.direction = 0
	tg.Update(s)

	x, y := tg.Position()
	if math.Abs(x-451.5) > 1e-9 || math.Abs(y-350) > 1e-9 {
		t.Errorf("position: got (%v, %v), want (451.5, 350)", x, y)
	}
	wantScale := 0.1 + 0.003*(1.5-0.5)
	if math.Abs(tg.Scale()-wantScale) > 1e-12 {
		t.Errorf("scale: got %v, want %v", tg.Scale(), wantScale)
	}
}

func TestTargetBreakingCycle(t *testing.T) {
	h := newTestHarness(t, DefaultProfileRecord())
	s := h.session
	s.Start()
	tg := s.Target()

	placeTarget(tg, 420, 330, 0.2)
	worth := tg.Worth()
	tg.Break(s.Now())

	tg.Update(s)
	tg.Update(s)
	if h.audio.plays[CueBreak] != 1 {
		t.Fatalf("break cue plays: got %d, want 1", h.audio.plays[CueBreak])
	}

	h.clock.Advance(399 * time.Millisecond)
	tg.Update(s)
	if tg.State() != TargetBreaking {
		t.Fatal("break visual should last 400ms")
	}
	if s.Bubbles().EntityCount() != 0 {
		t.Fatal("bubble spawned before break visual ended")
	}

	h.clock.Advance(time.Millisecond)
	tg.Update(s)
	if tg.State() != TargetSpawning {
		t.Fatalf("state after break: %v", tg.State())
	}
	if tg.hideDelay != 1500*time.Millisecond {
		t.Errorf("hide delay after hit: %v", tg.hideDelay)
	}

	ids := ecs.GetEntitiesWith1[*components.ScoreBubbleComponent](s.Bubbles())
	if len(ids) != 1 {
		t.Fatalf("bubbles: got %d, want 1", len(ids))
	}
	bubble, _ := ecs.GetComponent[*components.ScoreBubbleComponent](s.Bubbles(), ids[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.Bubbles(), ids[0])
	if bubble.Value != worth {
		t.Errorf("bubble value: got %d, want %d", bubble.Value, worth)
	}
	if pos.X != 420 || pos.Y != 330 {
		t.Errorf("bubble position: got (%v, %v), want (420, 330)", pos.X, pos.Y)
	}
}

// TestTargetBreakingExemptFromOffBounds 破碎阶段不检查出界
func TestTargetBreakingExemptFromOffBounds(t *testing.T) {
	h := newTestHarness(t, DefaultProfileRecord())
	s := h.session
	s.Start()
	tg := s.Target()

	placeTarget(tg, 979, 350, 0.85)
	tg.Break(s.Now())
	tg.Update(s)

	if s.Misses() != 0 {
		t.Errorf("breaking target counted as miss")
	}
}

func TestTargetFrozenAfterGameOver(t *testing.T) {
	h := newTestHarness(t, DefaultProfileRecord())
	s := h.session
	s.Start()
	tg := s.Target()

	placeTarget(tg, 450, 350, 0.1)
	s.EndGame()
	tg.Update(s)

	if x, _ := tg.Position(); x != 450 {
		t.Error("target moved after game over")
	}
}
