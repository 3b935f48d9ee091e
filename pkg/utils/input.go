// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Rect 整数矩形区域（闭区间）
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsJustClickedIn 检查本帧是否在区域 r 内发生了点击或触摸
// 区域外的点击被忽略
func IsJustClickedIn(r Rect) bool {
	clicked, x, y := IsJustTouchedOrClicked()
	return clicked && r.Contains(x, y)
}
