package game

import (
	"math"
	"testing"
	"time"

	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/config"
)

func newTestAudioManager(t *testing.T) (*AudioManager, *clock.ManualClock) {
	t.Helper()
	clk := clock.NewManualClock(time.Date(2021, 1, 14, 12, 0, 0, 0, time.UTC))
	rm := NewResourceManager(testAudioContext)
	return NewAudioManager(rm, clk, config.DefaultGameConfig().Cues, ""), clk
}

func TestAudioManagerLoadsAllCues(t *testing.T) {
	am, _ := newTestAudioManager(t)

	for _, id := range AllCues() {
		if am.tracks[id] == nil {
			t.Errorf("cue %s was not loaded", id)
		}
	}
}

func TestAudioManagerMute(t *testing.T) {
	am, _ := newTestAudioManager(t)
	soundtrack := am.tracks[CueSoundtrack]

	if got := soundtrack.player.Volume(); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("initial soundtrack volume = %v, want 0.2", got)
	}

	am.SetMuted(true)
	if !am.IsMuted() {
		t.Error("IsMuted should be true")
	}
	if got := soundtrack.player.Volume(); got != 0 {
		t.Errorf("muted volume = %v, want 0", got)
	}

	// 静音时修改基础音量不应发声
	am.SetVolume(CueSoundtrack, 0.5)
	if got := soundtrack.player.Volume(); got != 0 {
		t.Errorf("muted volume after SetVolume = %v, want 0", got)
	}

	am.SetMuted(false)
	if got := soundtrack.player.Volume(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("unmuted volume = %v, want 0.5", got)
	}
}

func TestAudioManagerSetVolumeClamps(t *testing.T) {
	am, _ := newTestAudioManager(t)

	am.SetVolume(CueNoise, 1.7)
	if got := am.tracks[CueNoise].base; got != 1.0 {
		t.Errorf("base = %v, want 1.0", got)
	}

	am.SetVolume(CueNoise, -0.2)
	if got := am.tracks[CueNoise].base; got != 0 {
		t.Errorf("base = %v, want 0", got)
	}
}

func TestAudioManagerUnknownCue(t *testing.T) {
	am, _ := newTestAudioManager(t)

	// 未加载的音效应被静默忽略
	am.Play(CueID("missing"))
	am.Stop(CueID("missing"))
	am.SetVolume(CueID("missing"), 0.5)
	am.FadeOut(CueID("missing"), time.Second)
	am.Update()
}

func TestFadeVolume(t *testing.T) {
	tests := []struct {
		base     float64
		progress float64
		want     float64
	}{
		{0.2, 0, 0.2},
		{0.2, 0.5, 0.1},
		{0.2, 1, 0},
		{0.2, 2, 0},
		{1.0, 0.25, 0.75},
	}

	for _, tt := range tests {
		if got := fadeVolume(tt.base, tt.progress); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("fadeVolume(%v, %v) = %v, want %v", tt.base, tt.progress, got, tt.want)
		}
	}
}
