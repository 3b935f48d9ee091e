package game

import (
	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
)

// Direction 准星移动方向
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// valid 是否是四个方向之一
func (d Direction) valid() bool {
	return d >= DirUp && d <= DirRight
}

// delta 返回该方向每帧的位移
func (d Direction) delta(speed float64) (float64, float64) {
	switch d {
	case DirUp:
		return 0, -speed
	case DirDown:
		return 0, speed
	case DirLeft:
		return -speed, 0
	case DirRight:
		return speed, 0
	}
	return 0, 0
}

// Point 屏幕坐标
type Point struct {
	X, Y float64
}

// Crosshair 玩家准星
//
// 持有瞄准位置、按住的方向键集合和激光。
// 激光不处于 Idle 时准星锁定，不响应移动。
type Crosshair struct {
	cfg    config.CrosshairConfig
	x, y   float64
	moving []Direction // 按下顺序，无重复
	laser  *Laser
}

// NewCrosshair 创建位于初始位置的准星
func NewCrosshair(cfg config.CrosshairConfig, laserCfg config.LaserConfig, audio AudioSystem) *Crosshair {
	return &Crosshair{
		cfg:    cfg,
		x:      cfg.StartX,
		y:      cfg.StartY,
		moving: make([]Direction, 0, 4),
		laser:  NewLaser(laserCfg, audio),
	}
}

// Position 返回瞄准点
func (c *Crosshair) Position() (float64, float64) { return c.x, c.y }

// Laser 返回准星的激光
func (c *Crosshair) Laser() *Laser { return c.laser }

// Moving 返回当前按住的方向（副本）
func (c *Crosshair) Moving() []Direction {
	out := make([]Direction, len(c.moving))
	copy(out, c.moving)
	return out
}

// Start 开始向 d 方向移动，重复或无效的方向被忽略
func (c *Crosshair) Start(d Direction) {
	if !d.valid() {
		return
	}
	for _, m := range c.moving {
		if m == d {
			return
		}
	}
	c.moving = append(c.moving, d)
}

// Stop 停止向 d 方向移动
func (c *Crosshair) Stop(d Direction) {
	for i, m := range c.moving {
		if m == d {
			c.moving = append(c.moving[:i], c.moving[i+1:]...)
			return
		}
	}
}

// CanFire 激光是否处于 Idle
func (c *Crosshair) CanFire() bool {
	return c.laser.IsIdle()
}

// Fire 发射激光，游戏结束后无效
func (c *Crosshair) Fire(s *GameSession) {
	if s.IsOver() {
		return
	}
	c.laser.Fire()
}

// StopShooting 中断当前射击
func (c *Crosshair) StopShooting() {
	c.laser.StopShooting()
}

// GunPositions 返回四个炮口的屏幕坐标
func (c *Crosshair) GunPositions() [4]Point {
	o := c.cfg.GunOffset
	return [4]Point{
		{c.x + o, c.y + o},
		{c.x + o, c.y - o},
		{c.x - o, c.y + o},
		{c.x - o, c.y - o},
	}
}

// Update 移动准星并推进激光
func (c *Crosshair) Update(s *GameSession) {
	for _, d := range c.moving {
		if !c.laser.IsIdle() {
			break
		}
		dx, dy := d.delta(c.cfg.MoveSpeed)
		nx, ny := c.x+dx, c.y+dy
		if nx >= c.cfg.MinX && nx <= c.cfg.MaxX && ny > c.cfg.MinY && ny < c.cfg.MaxY {
			c.x, c.y = nx, ny
		}
	}

	c.laser.Update(c, s)
}

// checkShot 判定瞄准点是否命中靶子
// 命中：绿灯闪烁、靶子破碎、加速、加分；未命中：黄灯闪烁
func (c *Crosshair) checkShot(s *GameSession) bool {
	lights := s.Config().Lights
	target := s.Target()

	if target.IsHit(c.x, c.y) {
		s.Lights().Flash(components.LightGreen, lights.FlashCount, lights.FlashInterval)
		target.Break(s.Now())
		target.AddSpeed()
		s.AddHit(target.Worth())
		return true
	}

	s.Lights().Flash(components.LightYellow, lights.FlashCount, lights.FlashInterval)
	return false
}
