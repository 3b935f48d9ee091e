package scenes

import (
	"log"

	"github.com/gonewx/targets/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleScene 标题画面
// 灯带和声音开关在标题画面就已可用，按空格开始游戏并切换到游戏场景
type TitleScene struct {
	session      *game.GameSession
	sceneManager *game.SceneManager
	renderer     *Renderer
}

// NewTitleScene 创建标题场景
func NewTitleScene(session *game.GameSession, sm *game.SceneManager, renderer *Renderer) *TitleScene {
	return &TitleScene{
		session:      session,
		sceneManager: sm,
		renderer:     renderer,
	}
}

// Update 处理输入并推进会话，游戏开始后切换到游戏场景
func (s *TitleScene) Update() error {
	handleSessionInput(s.session)
	s.session.Update()

	if s.session.IsStarted() {
		log.Printf("[TitleScene] 游戏开始，切换到游戏场景 (session=%s)", s.session.ID)
		s.sceneManager.SwitchToNamed(SceneGame)
	}
	return nil
}

// Draw 绘制标题画面
func (s *TitleScene) Draw(screen *ebiten.Image) {
	s.renderer.DrawBackground(screen)
	s.renderer.DrawTitle(screen)
	s.renderer.DrawStatBar(screen, true)
}
