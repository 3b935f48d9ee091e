package components

// CueStatus 单次音效触发点的状态
// 替代"可播放"布尔标记，避免条件持续成立时每帧重复触发
type CueStatus int

const (
	// CueNotTriggered 尚未触发
	CueNotTriggered CueStatus = iota
	// CuePlaying 已触发，所在阶段尚未结束
	CuePlaying
	// CueDone 所在阶段已结束
	CueDone
)

// String 返回状态名称
func (s CueStatus) String() string {
	switch s {
	case CueNotTriggered:
		return "NotTriggered"
	case CuePlaying:
		return "Playing"
	case CueDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Trigger 如果尚未触发则切换到 CuePlaying 并返回 true
func (s *CueStatus) Trigger() bool {
	if *s != CueNotTriggered {
		return false
	}
	*s = CuePlaying
	return true
}

// Finish 将已触发的音效标记为完成
func (s *CueStatus) Finish() {
	if *s == CuePlaying {
		*s = CueDone
	}
}

// Reset 重置为未触发
func (s *CueStatus) Reset() {
	*s = CueNotTriggered
}
