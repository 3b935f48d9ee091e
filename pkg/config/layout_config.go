package config

// 布局配置常量
// 本文件定义了游戏画面的布局参数，包括窗口、状态栏、灯带和声音开关位置

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 900

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 700

	// StatBarHeight 底部状态栏高度
	StatBarHeight = 100

	// StatBarY 状态栏顶部的屏幕 Y 坐标
	StatBarY = GameWindowHeight - StatBarHeight

	// LightRowCenterX 灯带中心 X（屏幕坐标）
	LightRowCenterX = GameWindowWidth / 2

	// LightRowY 灯带顶部 Y（相对状态栏顶部）
	LightRowY = 12

	// LightCellSize 单个灯的直径
	LightCellSize = 26.0

	// StatTextY 分数与失误文字的基线中心（相对状态栏顶部）
	StatTextY = 62
)

// 声音开关按钮区域（屏幕坐标，闭区间）
const (
	SoundToggleMinX = 840
	SoundToggleMaxX = 876
	SoundToggleMinY = 627
	SoundToggleMaxY = 650
)

// GetSoundToggleBounds 返回声音开关区域
// 返回值：minX, minY, maxX, maxY
func GetSoundToggleBounds() (int, int, int, int) {
	return SoundToggleMinX, SoundToggleMinY, SoundToggleMaxX, SoundToggleMaxY
}
