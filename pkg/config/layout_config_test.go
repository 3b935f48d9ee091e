package config

import "testing"

// TestSoundToggleBounds 测试声音开关区域位于状态栏内且在画面内
func TestSoundToggleBounds(t *testing.T) {
	minX, minY, maxX, maxY := GetSoundToggleBounds()

	if minX >= maxX || minY >= maxY {
		t.Fatalf("invalid bounds: (%d, %d)-(%d, %d)", minX, minY, maxX, maxY)
	}
	if minY < StatBarY {
		t.Errorf("toggle top %d should be inside the stat bar (y >= %d)", minY, StatBarY)
	}
	if maxX >= GameWindowWidth || maxY >= GameWindowHeight {
		t.Errorf("toggle (%d, %d) outside the window", maxX, maxY)
	}
}

// TestLightRowFitsWindow 测试默认灯带宽度不超出画面
func TestLightRowFitsWindow(t *testing.T) {
	count := DefaultGameConfig().Lights.Count
	width := float64(count) * LightCellSize

	left := float64(LightRowCenterX) - width/2
	right := float64(LightRowCenterX) + width/2
	if left < 0 || right > GameWindowWidth {
		t.Errorf("light row [%.1f, %.1f] outside window width %d", left, right, GameWindowWidth)
	}
}
