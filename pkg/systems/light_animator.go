package systems

import (
	"time"

	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/components"
)

// lightAnimation 正在播放的灯带动画
type lightAnimation struct {
	id        int
	steps     []components.LightStep
	stepStart time.Time
}

// LightAnimator 状态灯带的顺序闪烁动画引擎
//
// 灯带由固定数量的灯组成。同一时间最多只有一个动画处于活动状态：
// 启动新动画会立即把旧动画标记为完成（不回滚旧动画已经点亮的灯）。
// 调用方可以通过 IsFinished 轮询动画是否结束，但大多数调用都是"发出即忘"。
type LightAnimator struct {
	clock    clock.Clock
	cells    []components.LightColor
	active   *lightAnimation
	finished map[int]struct{}
	lastID   int
}

// NewLightAnimator 创建包含 count 个灯的灯带，初始全部熄灭
func NewLightAnimator(clk clock.Clock, count int) *LightAnimator {
	return &LightAnimator{
		clock:    clk,
		cells:    make([]components.LightColor, count),
		finished: make(map[int]struct{}),
	}
}

// Len 返回灯的数量
func (la *LightAnimator) Len() int {
	return len(la.cells)
}

// Cells 返回当前灯色的副本
func (la *LightAnimator) Cells() []components.LightColor {
	out := make([]components.LightColor, len(la.cells))
	copy(out, la.cells)
	return out
}

// Light 立即把区间 r 内的灯设为 color
func (la *LightAnimator) Light(r components.CellRange, color components.LightColor) {
	start, end := r.Bounds(len(la.cells))
	for i := start; i < end; i++ {
		la.cells[i] = color
	}
}

// Flash 构造 count 步的"颜色/熄灭"交替动画并启动
//
// 参数：
//   - color: 闪烁颜色（偶数步）
//   - count: 总步数
//   - interval: 每步持续时间
//
// 返回：
//   - int: 动画ID
func (la *LightAnimator) Flash(color components.LightColor, count int, interval time.Duration) int {
	steps := make([]components.LightStep, 0, count)
	for i := 0; i < count; i++ {
		c := components.LightBlack
		if i%2 == 0 {
			c = color
		}
		steps = append(steps, components.LightStep{
			Range:    components.AllCells(),
			Color:    c,
			Duration: interval,
		})
	}
	return la.Animate(steps...)
}

// Animate 启动一个新动画并返回其ID
// 如果已有动画在播放，旧动画立即被标记为完成，其剩余步骤不再执行
func (la *LightAnimator) Animate(steps ...components.LightStep) int {
	if la.active != nil {
		la.finished[la.active.id] = struct{}{}
		la.active = nil
	}

	la.lastID++
	id := la.lastID

	if len(steps) == 0 {
		la.finished[id] = struct{}{}
		return id
	}

	queued := make([]components.LightStep, len(steps))
	copy(queued, steps)
	la.active = &lightAnimation{
		id:        id,
		steps:     queued,
		stepStart: la.clock.Now(),
	}
	return id
}

// Update 推进当前动画
// 当前步骤的等待时间到达后应用该步骤并进入下一步；全部步骤执行完毕后动画结束
func (la *LightAnimator) Update() {
	if la.active == nil {
		return
	}

	now := la.clock.Now()
	step := la.active.steps[0]
	if now.Sub(la.active.stepStart) <= step.Duration {
		return
	}

	la.Light(step.Range, step.Color)
	la.active.steps = la.active.steps[1:]
	la.active.stepStart = now

	if len(la.active.steps) == 0 {
		la.finished[la.active.id] = struct{}{}
		la.active = nil
	}
}

// Stop 停止所有动画，clear 为 true 时熄灭全部灯
func (la *LightAnimator) Stop(clear bool) {
	if la.active != nil {
		la.finished[la.active.id] = struct{}{}
		la.active = nil
	}
	if clear {
		la.Light(components.AllCells(), components.LightBlack)
	}
}

// IsFinished 查询动画是否已结束（正常完成或被抢占）
func (la *LightAnimator) IsFinished(id int) bool {
	_, ok := la.finished[id]
	return ok
}

// IsAnimating 是否有动画正在播放
func (la *LightAnimator) IsAnimating() bool {
	return la.active != nil
}

// ActiveID 返回当前动画ID，没有动画时返回 0
func (la *LightAnimator) ActiveID() int {
	if la.active == nil {
		return 0
	}
	return la.active.id
}
