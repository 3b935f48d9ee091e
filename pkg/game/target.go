package game

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/utils"
)

// TargetState 靶子生命周期状态
type TargetState int

const (
	// TargetSpawning 隐藏中，等待出现
	TargetSpawning TargetState = iota
	// TargetActive 飞行并逐渐变大
	TargetActive
	// TargetBreaking 被击中后的破碎阶段，不可再次命中
	TargetBreaking
)

// String 返回状态名称
func (s TargetState) String() string {
	switch s {
	case TargetSpawning:
		return "Spawning"
	case TargetActive:
		return "Active"
	case TargetBreaking:
		return "Breaking"
	default:
		return "Unknown"
	}
}

// Target 场上唯一的靶子
//
// 状态流转：Spawning -> Active -> Breaking -> Spawning ...
// 飞出有效区域或尺寸过大时（破碎阶段除外）计为一次失误并重新随机。
type Target struct {
	cfg   config.TargetConfig
	rng   *rand.Rand
	audio AudioSystem
	probe utils.CollisionProbe

	x, y      float64
	scale     float64
	direction float64 // 弧度
	speed     float64

	state      TargetState
	phaseStart time.Time     // 当前阶段开始时刻
	hideDelay  time.Duration // Spawning 阶段的隐藏时长
	breakWorth int           // 命中时的分值，用于生成得分气泡

	spawnCue components.CueStatus
	breakCue components.CueStatus
	noiseCue components.CueStatus
}

// NewTarget 创建靶子并立即随机化（隐藏时长为 0）
func NewTarget(cfg config.TargetConfig, rng *rand.Rand, audio AudioSystem, now time.Time) *Target {
	t := &Target{
		cfg:   cfg,
		rng:   rng,
		audio: audio,
		probe: utils.NewCollisionProbe(cfg.HitRadiusFactor),
		speed: cfg.InitialSpeed,
	}
	t.Randomize(now, 0)
	return t
}

// State 返回当前状态
func (t *Target) State() TargetState { return t.state }

// Position 返回当前位置
func (t *Target) Position() (float64, float64) { return t.x, t.y }

// Scale 返回当前尺寸
func (t *Target) Scale() float64 { return t.scale }

// Speed 返回当前速度
func (t *Target) Speed() float64 { return t.speed }

// Direction 返回飞行方向（弧度）
func (t *Target) Direction() float64 { return t.direction }

// IsVisible 靶子是否需要绘制
func (t *Target) IsVisible() bool { return t.state != TargetSpawning }

// Worth 当前分值：MaxWorth - floor(scale / WorthStep)
func (t *Target) Worth() int {
	return t.cfg.MaxWorth - int(math.Floor(t.scale/t.cfg.WorthStep))
}

// HitRadius 当前命中半径
func (t *Target) HitRadius() float64 {
	return t.probe.Radius(t.scale)
}

// IsHit 判断点 (x, y) 是否命中靶子，破碎阶段永远返回 false
func (t *Target) IsHit(x, y float64) bool {
	if t.state == TargetBreaking {
		return false
	}
	return t.probe.Hits(x, y, t.x, t.y, t.scale)
}

// IsOff 靶子是否飞出有效区域或尺寸超限
func (t *Target) IsOff() bool {
	return !t.cfg.BoundsX.ContainsOpen(t.x) ||
		!t.cfg.BoundsY.ContainsOpen(t.y) ||
		t.scale > t.cfg.MaxScale
}

// AddSpeed 命中后加速，不超过上限
func (t *Target) AddSpeed() {
	t.speed = math.Min(t.cfg.MaxSpeed, t.speed+t.cfg.SpeedStep)
}

// Randomize 在出生区域内重新随机位置、尺寸和方向，进入 Spawning 阶段
//
// 参数：
//   - now: 阶段开始时刻
//   - delay: 隐藏时长
func (t *Target) Randomize(now time.Time, delay time.Duration) {
	t.state = TargetSpawning
	t.phaseStart = now
	t.hideDelay = delay

	t.x = randomInRange(t.rng, t.cfg.SpawnX)
	t.y = randomInRange(t.rng, t.cfg.SpawnY)
	t.scale = float64(t.rng.Intn(t.cfg.MaxSpawnScale)) / 100
	t.direction = t.rng.Float64() * 2 * math.Pi

	t.spawnCue.Reset()
	t.noiseCue.Reset()
	t.audio.Stop(CueNoise)
}

// Break 进入破碎阶段并记录当前分值
func (t *Target) Break(now time.Time) {
	t.breakWorth = t.Worth()
	t.state = TargetBreaking
	t.phaseStart = now
	t.breakCue.Reset()
	t.spawnCue.Finish()
	t.noiseCue.Finish()
	t.audio.Stop(CueNoise)
}

// Update 推进靶子一帧
func (t *Target) Update(s *GameSession) {
	if s.IsOver() {
		return
	}

	now := s.Now()
	elapsed := now.Sub(t.phaseStart)

	switch t.state {
	case TargetBreaking:
		if elapsed < t.cfg.BreakCueWindow && t.breakCue.Trigger() {
			t.audio.Play(CueBreak)
		}
		if elapsed >= t.cfg.BreakVisual {
			t.breakCue.Finish()
			s.SpawnBubble(t.x, t.y, t.breakWorth)
			t.Randomize(now, t.cfg.RespawnAfterHit)
		}

	case TargetSpawning:
		if elapsed >= t.hideDelay {
			t.spawnCue.Finish()
			t.state = TargetActive
			t.advance()
		} else if elapsed >= t.hideDelay-t.cfg.SpawnCueLead && t.spawnCue.Trigger() {
			t.audio.Play(CueSpawn)
		}

	case TargetActive:
		t.advance()
	}

	if t.state != TargetBreaking && t.IsOff() {
		t.miss(s, now)
	}
}

// advance 增长并沿方向移动，维持环境音
func (t *Target) advance() {
	t.scale += t.cfg.GrowthRate * (t.speed - 0.5)
	t.x += t.speed * math.Cos(t.direction)
	t.y += t.speed * math.Sin(t.direction)

	if t.noiseCue.Trigger() {
		t.audio.Play(CueNoise)
	}
	t.audio.SetVolume(CueNoise, t.scale*t.cfg.NoiseVolumeFactor+t.cfg.NoiseBaseVolume)
}

// miss 飞出区域：红灯闪烁、重新随机、记一次失误并中断正在进行的射击
func (t *Target) miss(s *GameSession, now time.Time) {
	log.Printf("[Target] Off bounds at (%.1f, %.1f) scale=%.3f", t.x, t.y, t.scale)

	lights := s.Config().Lights
	s.Lights().Flash(components.LightRed, lights.FlashCount, lights.FlashInterval)
	t.Randomize(now, t.cfg.RespawnAfterMiss)
	s.AddMiss()
	t.audio.Play(CueMiss)
	s.Crosshair().StopShooting()
}

// randomInRange 返回 [Min, Max] 内的随机整数值
func randomInRange(rng *rand.Rand, r config.Range) float64 {
	lo, hi := int(r.Min), int(r.Max)
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + rng.Intn(hi-lo+1))
}
