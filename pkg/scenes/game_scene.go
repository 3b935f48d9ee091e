package scenes

import (
	"github.com/gonewx/targets/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 游戏主场景
// 游戏结束后停留在本场景，结算完成后按空格重新开始
type GameScene struct {
	session  *game.GameSession
	renderer *Renderer
}

// NewGameScene 创建游戏场景
func NewGameScene(session *game.GameSession, renderer *Renderer) *GameScene {
	return &GameScene{
		session:  session,
		renderer: renderer,
	}
}

// Update 处理输入并推进会话一帧
func (s *GameScene) Update() error {
	handleSessionInput(s.session)
	s.session.Update()
	return nil
}

// Draw 按图层顺序绘制：背景、靶子、气泡、光束、准星、状态栏、结束遮罩
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderer.DrawBackground(screen)
	s.renderer.DrawTarget(screen)
	s.renderer.DrawBubbles(screen)
	s.renderer.DrawBeams(screen)
	s.renderer.DrawCrosshair(screen)
	s.renderer.DrawStatBar(screen, false)

	if s.session.IsOver() {
		s.renderer.DrawGameOver(screen)
	}
}
