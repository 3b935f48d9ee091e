package game

import "time"

// CueID 音效标识，与配置文件中 cues[].id 对应
type CueID string

const (
	CueBreak      CueID = "break"      // 靶子破碎
	CueMiss       CueID = "miss"       // 失误
	CueSpawn      CueID = "spawn"      // 靶子即将出现
	CueNoise      CueID = "noise"      // 靶子飞行环境音（循环）
	CueLaser      CueID = "laser"      // 激光发射
	CueBeep       CueID = "beep"       // 分值变化提示
	CueSoundtrack CueID = "soundtrack" // 背景音乐（循环）
)

// AllCues 返回全部音效ID
func AllCues() []CueID {
	return []CueID{CueBreak, CueMiss, CueSpawn, CueNoise, CueLaser, CueBeep, CueSoundtrack}
}

// AudioSystem 游戏核心使用的音频接口
//
// 所有调用都是"发出即忘"：核心自己负责避免每帧重复触发（见 components.CueStatus）。
// 循环与否由音效配置决定。
type AudioSystem interface {
	// Play 从头播放音效
	Play(id CueID)
	// Stop 停止音效
	Stop(id CueID)
	// SetVolume 设置音效的基础音量；静音时只记录，不生效
	SetVolume(id CueID, volume float64)
	// FadeOut 在 d 时间内将音效淡出并停止
	FadeOut(id CueID, d time.Duration)
	// SetMuted 静音时所有音效实际音量为 0，取消静音时恢复基础音量
	SetMuted(muted bool)
}

// NopAudio 不发声的 AudioSystem
type NopAudio struct{}

func (NopAudio) Play(CueID) {}
func (NopAudio) Stop(CueID) {}
func (NopAudio) SetVolume(CueID, float64) {}
func (NopAudio) FadeOut(CueID, time.Duration) {}
func (NopAudio) SetMuted(bool) {}
