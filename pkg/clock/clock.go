// Package clock 提供游戏使用的时钟抽象
//
// 所有计时逻辑都通过 Clock 获取当前时间，再与记录下来的起始时刻比较，
// 因此游戏不依赖固定的 tick 间隔。测试中使用 ManualClock 精确控制时间。
package clock

import "time"

// Clock 提供单调的当前时间
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统时间（time.Now 自带单调时钟读数）
type SystemClock struct{}

// Now 返回当前系统时间
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock 手动推进的时钟，用于测试
type ManualClock struct {
	now time.Time
}

// NewManualClock 创建一个起始于 start 的手动时钟
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回手动时钟的当前时间
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance 将时钟向前推进 d
// 负值会被忽略，保证时间单调
func (c *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.now = c.now.Add(d)
}
