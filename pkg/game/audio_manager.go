package game

import (
	"log"
	"time"

	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// cueTrack 单个音效的播放器和音量状态
type cueTrack struct {
	player *audio.Player
	base   float64 // 基础音量（未静音时的实际音量）

	fading    bool
	fadeStart time.Time
	fadeDur   time.Duration
}

// AudioManager 基于 Ebitengine audio 的 AudioSystem 实现
// 职责：
//   - 启动时为配置中的每个音效创建播放器（文件或合成音）
//   - 维护每个音效的基础音量和全局静音状态
//   - 在 Update 中推进淡出
type AudioManager struct {
	clock  clock.Clock
	tracks map[CueID]*cueTrack
	muted  bool
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载或合成音效）
//   - clk: 时钟（用于淡出计时）
//   - cues: 音效配置表
//   - audioDir: 音效文件目录，为空时全部使用合成音
//
// 返回：
//   - *AudioManager: 音频管理器实例；单个音效加载失败只记录日志
func NewAudioManager(rm *ResourceManager, clk clock.Clock, cues []config.CueConfig, audioDir string) *AudioManager {
	am := &AudioManager{
		clock:  clk,
		tracks: make(map[CueID]*cueTrack, len(cues)),
	}

	for _, cue := range cues {
		player, err := rm.LoadCue(audioDir, cue)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to load cue %s: %v", cue.ID, err)
			continue
		}
		track := &cueTrack{player: player, base: cue.Volume}
		player.SetVolume(track.base)
		am.tracks[CueID(cue.ID)] = track
	}

	log.Printf("[AudioManager] Loaded %d cues", len(am.tracks))
	return am
}

// Play 从头播放音效
func (am *AudioManager) Play(id CueID) {
	track := am.tracks[id]
	if track == nil {
		return
	}

	track.fading = false
	track.player.SetVolume(am.effectiveVolume(track))
	if err := track.player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", id, err)
	}
	track.player.Play()
}

// Stop 停止音效
func (am *AudioManager) Stop(id CueID) {
	track := am.tracks[id]
	if track == nil {
		return
	}
	track.fading = false
	track.player.Pause()
}

// SetVolume 设置基础音量，静音或淡出时不立即生效
func (am *AudioManager) SetVolume(id CueID, volume float64) {
	track := am.tracks[id]
	if track == nil {
		return
	}
	track.base = clampVolume(volume)
	if !track.fading {
		track.player.SetVolume(am.effectiveVolume(track))
	}
}

// FadeOut 在 d 内把音效淡出到 0 并暂停
func (am *AudioManager) FadeOut(id CueID, d time.Duration) {
	track := am.tracks[id]
	if track == nil || !track.player.IsPlaying() {
		return
	}
	if d <= 0 {
		am.Stop(id)
		return
	}
	track.fading = true
	track.fadeStart = am.clock.Now()
	track.fadeDur = d
}

// SetMuted 切换全局静音
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	for _, track := range am.tracks {
		if !track.fading {
			track.player.SetVolume(am.effectiveVolume(track))
		}
	}
}

// IsMuted 是否静音
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// Update 推进所有淡出，每帧调用一次
func (am *AudioManager) Update() {
	now := am.clock.Now()
	for _, track := range am.tracks {
		if !track.fading {
			continue
		}
		progress := float64(now.Sub(track.fadeStart)) / float64(track.fadeDur)
		if progress >= 1 {
			track.fading = false
			track.player.Pause()
			track.player.SetVolume(am.effectiveVolume(track))
			continue
		}
		track.player.SetVolume(fadeVolume(am.effectiveVolume(track), progress))
	}
}

// effectiveVolume 静音时为 0，否则为基础音量
func (am *AudioManager) effectiveVolume(track *cueTrack) float64 {
	if am.muted {
		return 0
	}
	return track.base
}

// fadeVolume 淡出进度 progress（0~1）对应的音量
func fadeVolume(base, progress float64) float64 {
	return utils.Lerp(base, 0, utils.EaseLinear(progress))
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
