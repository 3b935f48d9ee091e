package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/targets/pkg/clock"
	"github.com/gonewx/targets/pkg/components"
	"github.com/gonewx/targets/pkg/config"
	"github.com/gonewx/targets/pkg/ecs"
	"github.com/gonewx/targets/pkg/entities"
	"github.com/gonewx/targets/pkg/systems"
	"github.com/google/uuid"
)

// GameSession 一局游戏的全部状态
//
// 职责：
//   - 按固定顺序推进每帧：得分气泡 -> 靶子 -> 准星（激光）-> 灯带
//   - 记录分数、失误次数、最高分和声音开关
//   - 管理开始、结束、结算和重开
//
// 所有实体都通过 *GameSession 访问共享状态，不使用全局变量。
type GameSession struct {
	ID string

	cfg   *config.GameConfig
	clock clock.Clock
	rng   *rand.Rand
	audio AudioSystem
	store ProgressStore

	// 得分气泡容器和系统
	bubbles        *ecs.EntityManager
	bubbleSystem   *systems.ScoreBubbleSystem
	lifetimeSystem *systems.LifetimeSystem

	lights    *systems.LightAnimator
	target    *Target
	crosshair *Crosshair

	score  int
	misses int

	started      bool
	gameOver     bool
	endedAt      time.Time
	finalized    bool
	newHighScore bool

	highScore    int
	soundEnabled bool
	lastWorth    int
}

// NewGameSession 创建游戏会话
//
// 参数：
//   - cfg: 游戏配置
//   - clk: 时钟
//   - rng: 随机数源（测试时传入固定种子）
//   - audio: 音频系统，nil 时不发声
//   - store: 最高分存储，nil 时只保存在内存中
//
// 创建后处于标题状态（未开始），背景音乐开始播放。
func NewGameSession(cfg *config.GameConfig, clk clock.Clock, rng *rand.Rand, audio AudioSystem, store ProgressStore) *GameSession {
	if audio == nil {
		audio = NopAudio{}
	}
	if store == nil {
		store = NewSaveManager(nil)
	}

	bubbles := ecs.NewEntityManager()
	record := store.Record()

	s := &GameSession{
		ID:             uuid.NewString(),
		cfg:            cfg,
		clock:          clk,
		rng:            rng,
		audio:          audio,
		store:          store,
		bubbles:        bubbles,
		bubbleSystem:   systems.NewScoreBubbleSystem(bubbles, clk),
		lifetimeSystem: systems.NewLifetimeSystem(bubbles, clk),
		highScore:      record.HighScore,
		soundEnabled:   record.SoundEnabled,
	}
	s.reset()

	s.audio.Play(CueSoundtrack)
	s.audio.SetMuted(!s.soundEnabled)

	log.Printf("[GameSession] Session %s created (highScore=%d, sound=%v)", s.ID, s.highScore, s.soundEnabled)
	return s
}

// reset 重建靶子、准星、灯带并清零统计
func (s *GameSession) reset() {
	now := s.clock.Now()
	s.target = NewTarget(s.cfg.Target, s.rng, s.audio, now)
	s.crosshair = NewCrosshair(s.cfg.Crosshair, s.cfg.Laser, s.audio)
	s.lights = systems.NewLightAnimator(s.clock, s.cfg.Lights.Count)
	s.score = 0
	s.misses = 0
	s.lastWorth = s.target.Worth()
}

// Update 推进一帧
func (s *GameSession) Update() {
	now := s.clock.Now()

	if s.started {
		s.bubbleSystem.Update()
		s.lifetimeSystem.Update()
		s.bubbles.RemoveMarkedEntities()

		s.target.Update(s)
		s.crosshair.Update(s)
	}

	s.lights.Update()

	// 游戏结束一段时间后冻结并结算
	if s.gameOver && now.Sub(s.endedAt) > s.cfg.Session.FinalizeDelay {
		s.started = false
		s.lights.Stop(true)
		if !s.finalized {
			s.finalize()
		}
	}

	// 空闲时灯带显示当前分值
	if s.started && !s.gameOver && !s.lights.IsAnimating() {
		s.applyWorthLights()
	}

	worth := s.target.Worth()
	if worth != s.lastWorth {
		s.audio.Play(CueBeep)
	}
	s.lastWorth = worth
}

// applyWorthLights 全部红灯，末尾 worth 个绿灯
func (s *GameSession) applyWorthLights() {
	n := s.lights.Len()
	worth := s.target.Worth()
	if worth < 0 {
		worth = 0
	}
	if worth > n {
		worth = n
	}
	s.lights.Light(components.AllCells(), components.LightRed)
	s.lights.Light(components.Span(n-worth, n), components.LightGreen)
}

// finalize 结算最高分，只执行一次
func (s *GameSession) finalize() {
	s.finalized = true
	if s.score <= s.highScore {
		log.Printf("[GameSession] Final score %d (high score %d)", s.score, s.highScore)
		return
	}

	s.highScore = s.score
	s.newHighScore = true
	if err := s.store.SetHighScore(s.score); err != nil {
		log.Printf("[GameSession] Warning: Failed to save high score: %v", err)
	}
	log.Printf("[GameSession] New high score: %d", s.score)
}

// HandleFireKey 处理发射键
// 未开始时开始游戏（上一局已结束则先重开）；进行中时尝试发射
func (s *GameSession) HandleFireKey() {
	if !s.started {
		s.Start()
		return
	}
	if s.crosshair.CanFire() {
		s.crosshair.Fire(s)
	}
}

// Start 开始游戏，背景音乐从头播放
func (s *GameSession) Start() {
	if s.started {
		return
	}
	s.started = true
	s.audio.Stop(CueSoundtrack)
	s.audio.Play(CueSoundtrack)
	if s.gameOver {
		s.Restart()
	}
	log.Printf("[GameSession] Started")
}

// Restart 恢复到创建时的状态，保留最高分和声音开关
func (s *GameSession) Restart() {
	s.gameOver = false
	s.endedAt = time.Time{}
	s.finalized = false
	s.newHighScore = false
	s.reset()
	s.audio.SetMuted(!s.soundEnabled)
	log.Printf("[GameSession] Restarted")
}

// EndGame 进入游戏结束状态，背景音乐淡出
func (s *GameSession) EndGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.endedAt = s.clock.Now()
	s.audio.FadeOut(CueSoundtrack, s.cfg.Session.SoundtrackFade)
	log.Printf("[GameSession] Game over: score=%d", s.score)
}

// AddHit 命中加分
func (s *GameSession) AddHit(worth int) {
	s.score += worth
}

// AddMiss 记一次失误，达到上限时结束游戏
func (s *GameSession) AddMiss() {
	if s.misses >= s.cfg.Session.MaxMisses {
		return
	}
	s.misses++
	log.Printf("[GameSession] Miss %d/%d", s.misses, s.cfg.Session.MaxMisses)
	if s.misses == s.cfg.Session.MaxMisses {
		s.EndGame()
	}
}

// StartMove 方向键按下，仅在游戏进行中有效
func (s *GameSession) StartMove(d Direction) {
	if s.started {
		s.crosshair.Start(d)
	}
}

// StopMove 方向键松开
func (s *GameSession) StopMove(d Direction) {
	s.crosshair.Stop(d)
}

// ToggleSound 切换声音开关并保存
func (s *GameSession) ToggleSound() {
	s.soundEnabled = !s.soundEnabled
	s.audio.SetMuted(!s.soundEnabled)
	if err := s.store.SetSoundEnabled(s.soundEnabled); err != nil {
		log.Printf("[GameSession] Warning: Failed to save sound setting: %v", err)
	}
	log.Printf("[GameSession] Sound enabled: %v", s.soundEnabled)
}

// SpawnBubble 在 (x, y) 生成得分气泡
func (s *GameSession) SpawnBubble(x, y float64, value int) ecs.EntityID {
	return entities.NewScoreBubbleEntity(s.bubbles, s.cfg.Bubble, s.clock.Now(), x, y, value)
}

// Now 返回会话时钟的当前时间
func (s *GameSession) Now() time.Time { return s.clock.Now() }

// Config 返回游戏配置
func (s *GameSession) Config() *config.GameConfig { return s.cfg }

// Target 返回靶子
func (s *GameSession) Target() *Target { return s.target }

// Crosshair 返回准星
func (s *GameSession) Crosshair() *Crosshair { return s.crosshair }

// Lights 返回状态灯带
func (s *GameSession) Lights() *systems.LightAnimator { return s.lights }

// Bubbles 返回得分气泡容器
func (s *GameSession) Bubbles() *ecs.EntityManager { return s.bubbles }

// Score 当前分数
func (s *GameSession) Score() int { return s.score }

// Misses 当前失误次数
func (s *GameSession) Misses() int { return s.misses }

// HighScore 最高分
func (s *GameSession) HighScore() int { return s.highScore }

// IsStarted 是否处于游戏进行中（结算后为 false）
func (s *GameSession) IsStarted() bool { return s.started }

// IsOver 是否已经结束
func (s *GameSession) IsOver() bool { return s.gameOver }

// IsFinalized 是否已经结算
func (s *GameSession) IsFinalized() bool { return s.finalized }

// IsNewHighScore 本局是否刷新了最高分
func (s *GameSession) IsNewHighScore() bool { return s.newHighScore }

// SoundEnabled 声音是否开启
func (s *GameSession) SoundEnabled() bool { return s.soundEnabled }
