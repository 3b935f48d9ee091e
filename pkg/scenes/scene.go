package scenes

import "github.com/gonewx/targets/pkg/game"

// Scene 是 game.Scene 的别名，场景实现都放在本包中
type Scene = game.Scene

// 场景注册名
const (
	SceneTitle = "title"
	SceneGame  = "game"
)
