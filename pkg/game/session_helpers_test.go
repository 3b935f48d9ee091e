package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/config"
)

// recordingAudio 记录所有音频调用的 AudioSystem
type recordingAudio struct {
	plays   map[CueID]int
	stops   map[CueID]int
	volumes map[CueID]float64
	fades   map[CueID]time.Duration
	muted   bool
	history []string
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{
		plays:   make(map[CueID]int),
		stops:   make(map[CueID]int),
		volumes: make(map[CueID]float64),
		fades:   make(map[CueID]time.Duration),
	}
}

func (a *recordingAudio) Play(id CueID) {
	a.plays[id]++
	a.history = append(a.history, "play:"+string(id))
}

func (a *recordingAudio) Stop(id CueID) {
	a.stops[id]++
	a.history = append(a.history, "stop:"+string(id))
}

func (a *recordingAudio) SetVolume(id CueID, volume float64) {
	a.volumes[id] = volume
}

func (a *recordingAudio) FadeOut(id CueID, d time.Duration) {
	a.fades[id] = d
}

func (a *recordingAudio) SetMuted(muted bool) {
	a.muted = muted
}

// memoryStore 计数写入次数的 ProgressStore
type memoryStore struct {
	record         ProfileRecord
	highScoreSaves int
	soundSaves     int
}

func (m *memoryStore) Record() ProfileRecord { return m.record }

func (m *memoryStore) SetHighScore(score int) error {
	m.record.HighScore = score
	m.highScoreSaves++
	return nil
}

func (m *memoryStore) SetSoundEnabled(enabled bool) error {
	m.record.SoundEnabled = enabled
	m.soundSaves++
	return nil
}

// testHarness 一个使用手动时钟和固定随机种子的会话
type testHarness struct {
	session *GameSession
	clock   *clock.ManualClock
	audio   *recordingAudio
	store   *memoryStore
}

func newTestHarness(t *testing.T, record ProfileRecord) *testHarness {
	t.Helper()
	clk := clock.NewManualClock(time.Date(2021, 1, 14, 12, 0, 0, 0, time.UTC))
	audio := newRecordingAudio()
	store := &memoryStore{record: record}
	s := NewGameSession(config.DefaultGameConfig(), clk, rand.New(rand.NewSource(1)), audio, store)
	return &testHarness{session: s, clock: clk, audio: audio, store: store}
}

// tick 推进一帧（10ms）
func (h *testHarness) tick() {
	h.clock.Advance(10 * time.Millisecond)
	h.session.Update()
}

// placeTarget 把靶子放到指定位置并进入 Active 状态
func placeTarget(tg *Target, x, y, scale float64) {
	tg.x, tg.y = x, y
	tg.scale = scale
	tg.state = TargetActive
}

// freezeTarget 让靶子远离准星并停留在 Spawning 阶段，不移动也不增长
func freezeTarget(tg *Target, scale float64) {
	tg.x, tg.y = 100, 100
	tg.scale = scale
	tg.state = TargetSpawning
	tg.hideDelay = time.Hour
}
