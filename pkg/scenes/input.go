package scenes

import (
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/game"
	"github.com/gonewx/targets/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// directionKeys 方向键到准星移动方向的映射
var directionKeys = []struct {
	key ebiten.Key
	dir game.Direction
}{
	{ebiten.KeyArrowUp, game.DirUp},
	{ebiten.KeyArrowDown, game.DirDown},
	{ebiten.KeyArrowLeft, game.DirLeft},
	{ebiten.KeyArrowRight, game.DirRight},
}

// directionForKey 查找按键对应的移动方向
func directionForKey(key ebiten.Key) (game.Direction, bool) {
	for _, dk := range directionKeys {
		if dk.key == key {
			return dk.dir, true
		}
	}
	return 0, false
}

// soundToggleRect 声音开关的点击区域
func soundToggleRect() utils.Rect {
	minX, minY, maxX, maxY := config.GetSoundToggleBounds()
	return utils.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// handleSessionInput 把本帧的键盘和鼠标事件分发给会话
//
// 空格键：开始/开火/重新开始
// 方向键：按下开始移动，松开停止移动
// 点击声音开关：切换静音
func handleSessionInput(session *game.GameSession) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		session.HandleFireKey()
	}

	for _, dk := range directionKeys {
		if inpututil.IsKeyJustPressed(dk.key) {
			session.StartMove(dk.dir)
		}
		if inpututil.IsKeyJustReleased(dk.key) {
			session.StopMove(dk.dir)
		}
	}

	if utils.IsJustClickedIn(soundToggleRect()) {
		session.ToggleSound()
	}
}
