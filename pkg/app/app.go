// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：配置加载、音频、存档、
// 会话和场景的组装都在这里完成，main.go 只负责解析参数和启动循环。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/embedded"
	"github.com/gonewx/targets/pkg/game"
	"github.com/gonewx/targets/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// defaultConfigPath 嵌入的默认调参文件
const defaultConfigPath = "data/targets.yaml"

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部调参文件路径，为空时使用嵌入的 data/targets.yaml
	ConfigPath string
	// AudioDir 音效文件目录，目录中缺少的音效使用合成音
	AudioDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig               *config.GameConfig
	session                  *game.GameSession
	audioManager             *game.AudioManager
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 配置加载完成 (tps=%d, cues=%d)", gameConfig.TicksPerSecond, len(gameConfig.Cues))

	// 初始化音频上下文
	audioContext := audio.NewContext(audioSampleRate)

	// 创建资源管理器和音频管理器
	resourceManager := game.NewResourceManager(audioContext)
	audioManager := game.NewAudioManager(resourceManager, clock.SystemClock{}, gameConfig.Cues, cfg.AudioDir)
	log.Printf("[App] AudioManager initialized")

	// 打开存档，失败时降级为内存模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: "targets"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, high score will not persist: %v", err)
		gdataManager = nil
	}
	saveManager := game.NewSaveManager(gdataManager)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := game.NewGameSession(gameConfig, clock.SystemClock{}, rng, audioManager, saveManager)

	renderer, err := scenes.NewRenderer(resourceManager, session)
	if err != nil {
		return nil, fmt.Errorf("渲染器初始化失败: %w", err)
	}

	// 创建场景管理器，从标题画面开始
	sceneManager := game.NewSceneManager()
	sceneManager.Register(scenes.SceneTitle, scenes.NewTitleScene(session, sceneManager, renderer))
	sceneManager.Register(scenes.SceneGame, scenes.NewGameScene(session, renderer))
	sceneManager.SwitchToNamed(scenes.SceneTitle)

	return &App{
		gameConfig:   gameConfig,
		session:      session,
		audioManager: audioManager,
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 读取外部配置文件，未指定时使用嵌入的默认配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		gameConfig, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] 使用外部配置: %s", path)
		return gameConfig, nil
	}

	if !embedded.Exists(defaultConfigPath) {
		log.Printf("[Config] 未找到 %s，使用内置默认值", defaultConfigPath)
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取嵌入配置失败: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	return gameConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（TPS 由配置决定）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.audioManager.Update()
	return a.sceneManager.Update()
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// Session 返回当前游戏会话
func (a *App) Session() *game.GameSession {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
