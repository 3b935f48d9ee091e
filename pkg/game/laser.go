package game

import (
	"time"

	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
)

// LaserState 激光生命周期状态
type LaserState int

const (
	// LaserIdle 可以发射
	LaserIdle LaserState = iota
	// LaserCharging 充能中，光束逐渐延伸
	LaserCharging
	// LaserAwaitingResolve 充能完成，下一帧进行命中判定
	LaserAwaitingResolve
	// LaserResolved 已判定，光束停留一段时间后回到 Idle
	LaserResolved
)

// String 返回状态名称
func (s LaserState) String() string {
	switch s {
	case LaserIdle:
		return "Idle"
	case LaserCharging:
		return "Charging"
	case LaserAwaitingResolve:
		return "AwaitingResolve"
	case LaserResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// maxProgress 充能完成时的进度
const maxProgress = 100

// Beam 一条光束线段（炮口 -> 光束前端）
type Beam struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Laser 准星的激光
// 每个发射周期只进行一次命中判定，由 checked 标记保证
type Laser struct {
	cfg   config.LaserConfig
	audio AudioSystem

	state      LaserState
	progress   int
	hit        bool
	checked    bool
	resolvedAt time.Time
	fireCue    components.CueStatus
}

// NewLaser 创建处于 Idle 状态的激光
func NewLaser(cfg config.LaserConfig, audio AudioSystem) *Laser {
	return &Laser{
		cfg:   cfg,
		audio: audio,
	}
}

// State 返回当前状态
func (l *Laser) State() LaserState { return l.state }

// Progress 返回充能进度 [0, 100]
func (l *Laser) Progress() int { return l.progress }

// IsIdle 是否可以发射
func (l *Laser) IsIdle() bool { return l.state == LaserIdle }

// IsHit 本周期的判定结果（仅在 Resolved 阶段有意义）
func (l *Laser) IsHit() bool { return l.hit }

// Fire 开始充能
func (l *Laser) Fire() {
	l.state = LaserCharging
	l.progress = 0
	l.hit = false
	l.checked = false
	l.fireCue.Reset()
}

// StopShooting 立即回到 Idle（失误会中断正在进行的射击）
func (l *Laser) StopShooting() {
	l.state = LaserIdle
	l.progress = 0
	l.hit = false
	l.checked = false
	l.fireCue.Finish()
}

// Update 推进激光一帧
func (l *Laser) Update(c *Crosshair, s *GameSession) {
	switch l.state {
	case LaserCharging:
		if l.progress > l.cfg.CueThreshold && l.fireCue.Trigger() {
			l.audio.Play(CueLaser)
		}
		l.progress += l.cfg.ChargeStep
		if l.progress >= maxProgress {
			l.progress = maxProgress
			l.state = LaserAwaitingResolve
		}

	case LaserAwaitingResolve:
		l.resolve(c, s)

	case LaserResolved:
		linger := l.cfg.LingerOnMiss
		if l.hit {
			linger = l.cfg.LingerOnHit
		}
		if s.Now().Sub(l.resolvedAt) > linger {
			l.StopShooting()
		}
	}
}

// resolve 命中判定，每个发射周期只执行一次
func (l *Laser) resolve(c *Crosshair, s *GameSession) {
	if l.checked {
		return
	}
	l.checked = true
	l.hit = c.checkShot(s)
	l.resolvedAt = s.Now()
	l.state = LaserResolved
	l.fireCue.Finish()
}

// Beams 返回四条光束，长度与充能进度成正比；Idle 时返回 nil
func (l *Laser) Beams(c *Crosshair) []Beam {
	if l.state == LaserIdle {
		return nil
	}

	ratio := float64(l.progress) / maxProgress
	aimX, aimY := c.Position()
	guns := c.GunPositions()
	beams := make([]Beam, 0, len(guns))
	for _, gun := range guns {
		beams = append(beams, Beam{
			X1: gun.X,
			Y1: gun.Y,
			X2: gun.X + (aimX-gun.X)*ratio,
			Y2: gun.Y + (aimY-gun.Y)*ratio,
		})
	}
	return beams
}
