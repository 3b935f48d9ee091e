package components

import (
	"fmt"
	"time"
)

// LightColor 状态灯颜色
type LightColor int

const (
	LightBlack LightColor = iota
	LightRed
	LightGreen
	LightYellow
)

// String 返回颜色名称
func (c LightColor) String() string {
	switch c {
	case LightBlack:
		return "black"
	case LightRed:
		return "red"
	case LightGreen:
		return "green"
	case LightYellow:
		return "yellow"
	default:
		return fmt.Sprintf("LightColor(%d)", int(c))
	}
}

// CellRangeKind 灯区间类型
type CellRangeKind int

const (
	// RangeAll 全部灯
	RangeAll CellRangeKind = iota
	// RangeSingle 单个灯
	RangeSingle
	// RangeSpan 连续区间 [From, To)
	RangeSpan
)

// CellRange 一段连续的灯
type CellRange struct {
	Kind CellRangeKind
	From int
	To   int
}

// AllCells 返回覆盖全部灯的区间
func AllCells() CellRange {
	return CellRange{Kind: RangeAll}
}

// Cell 返回单个灯 i
func Cell(i int) CellRange {
	return CellRange{Kind: RangeSingle, From: i, To: i + 1}
}

// Span 返回半开区间 [from, to)
func Span(from, to int) CellRange {
	return CellRange{Kind: RangeSpan, From: from, To: to}
}

// Bounds 将区间解析为 [start, end)，并裁剪到 [0, n)
func (r CellRange) Bounds(n int) (int, int) {
	start, end := r.From, r.To
	if r.Kind == RangeAll {
		start, end = 0, n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

// LightStep 灯带动画的一步：等待 Duration 后把 Range 设为 Color
type LightStep struct {
	Range    CellRange
	Color    LightColor
	Duration time.Duration
}
