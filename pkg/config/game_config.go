package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏调参配置
//
// 包含靶子、激光、准星、灯带、得分气泡、会话和音效的全部常量。
// 默认值由 DefaultGameConfig 提供，YAML 文件只需写出要覆盖的字段。
//
// 配置文件位置: data/targets.yaml
type GameConfig struct {
	// TicksPerSecond 每秒逻辑帧数（默认 100，即每帧 10ms）
	TicksPerSecond int `yaml:"ticksPerSecond"`

	Target    TargetConfig    `yaml:"target"`
	Laser     LaserConfig     `yaml:"laser"`
	Crosshair CrosshairConfig `yaml:"crosshair"`
	Lights    LightsConfig    `yaml:"lights"`
	Bubble    BubbleConfig    `yaml:"bubble"`
	Session   SessionConfig   `yaml:"session"`

	// Cues 音效表
	Cues []CueConfig `yaml:"cues"`
}

// Range 闭区间 [Min, Max]
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ContainsOpen 判断 v 是否在开区间 (Min, Max) 内
func (r Range) ContainsOpen(v float64) bool {
	return v > r.Min && v < r.Max
}

// TargetConfig 靶子配置
type TargetConfig struct {
	InitialSpeed float64 `yaml:"initialSpeed"` // 初始速度
	MaxSpeed     float64 `yaml:"maxSpeed"`     // 速度上限
	SpeedStep    float64 `yaml:"speedStep"`    // 每次命中增加的速度
	GrowthRate   float64 `yaml:"growthRate"`   // 每帧增长系数，实际增长 = GrowthRate * (speed - 0.5)

	HitRadiusFactor float64 `yaml:"hitRadiusFactor"` // 命中半径 = HitRadiusFactor * scale
	MaxScale        float64 `yaml:"maxScale"`        // 超过此尺寸视为失误
	WorthStep       float64 `yaml:"worthStep"`       // 每增长 WorthStep 分值减 1
	MaxWorth        int     `yaml:"maxWorth"`        // 最小尺寸时的分值

	SpawnX        Range `yaml:"spawnX"`        // 出生点 X 范围（整数）
	SpawnY        Range `yaml:"spawnY"`        // 出生点 Y 范围（整数）
	MaxSpawnScale int   `yaml:"maxSpawnScale"` // 出生尺寸上限（百分比，不含）

	BoundsX Range `yaml:"boundsX"` // 有效区域 X（开区间）
	BoundsY Range `yaml:"boundsY"` // 有效区域 Y（开区间）

	SpawnCueLead      time.Duration `yaml:"spawnCueLead"`      // 出现前多久播放出生音效
	BreakCueWindow    time.Duration `yaml:"breakCueWindow"`    // 破碎后多久内仍可触发破碎音效
	BreakVisual       time.Duration `yaml:"breakVisual"`       // 破碎画面持续时间
	RespawnAfterHit   time.Duration `yaml:"respawnAfterHit"`   // 命中后的隐藏时间
	RespawnAfterMiss  time.Duration `yaml:"respawnAfterMiss"`  // 失误后的隐藏时间
	NoiseBaseVolume   float64       `yaml:"noiseBaseVolume"`   // 环境音基础音量
	NoiseVolumeFactor float64       `yaml:"noiseVolumeFactor"` // 环境音音量随尺寸增长系数
}

// LaserConfig 激光配置
type LaserConfig struct {
	ChargeStep   int           `yaml:"chargeStep"`   // 每帧充能进度
	CueThreshold int           `yaml:"cueThreshold"` // 进度超过此值时播放激光音效
	LingerOnMiss time.Duration `yaml:"lingerOnMiss"` // 未命中时光束停留时间
	LingerOnHit  time.Duration `yaml:"lingerOnHit"`  // 命中时光束停留时间
	BeamWidth    float64       `yaml:"beamWidth"`    // 光束宽度
}

// CrosshairConfig 准星配置
type CrosshairConfig struct {
	StartX    float64 `yaml:"startX"`
	StartY    float64 `yaml:"startY"`
	MoveSpeed float64 `yaml:"moveSpeed"` // 每帧移动距离
	MinX      float64 `yaml:"minX"`      // X 闭区间
	MaxX      float64 `yaml:"maxX"`
	MinY      float64 `yaml:"minY"` // Y 开区间
	MaxY      float64 `yaml:"maxY"`
	GunOffset float64 `yaml:"gunOffset"` // 四个炮口相对准星的偏移量（x、y 分量）
	Radius    float64 `yaml:"radius"`    // 准星圆环半径
}

// LightsConfig 状态灯配置
type LightsConfig struct {
	Count         int           `yaml:"count"`
	FlashCount    int           `yaml:"flashCount"`
	FlashInterval time.Duration `yaml:"flashInterval"`
}

// BubbleConfig 得分气泡配置
type BubbleConfig struct {
	Fade      time.Duration `yaml:"fade"`
	RiseSpeed float64       `yaml:"riseSpeed"`
	Radius    float64       `yaml:"radius"`
}

// SessionConfig 会话配置
type SessionConfig struct {
	MaxMisses      int           `yaml:"maxMisses"`
	FinalizeDelay  time.Duration `yaml:"finalizeDelay"`  // 游戏结束后多久结算最高分
	SoundtrackFade time.Duration `yaml:"soundtrackFade"` // 游戏结束时背景音乐淡出时间
}

// CueConfig 单个音效配置
type CueConfig struct {
	ID     string  `yaml:"id"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		TicksPerSecond: 100,
		Target: TargetConfig{
			InitialSpeed:      1.5,
			MaxSpeed:          5.0,
			SpeedStep:         0.135,
			GrowthRate:        0.003,
			HitRadiusFactor:   42,
			MaxScale:          0.8,
			WorthStep:         0.08,
			MaxWorth:          10,
			SpawnX:            Range{Min: 400, Max: 500},
			SpawnY:            Range{Min: 300, Max: 400},
			MaxSpawnScale:     10,
			BoundsX:           Range{Min: -80, Max: 980},
			BoundsY:           Range{Min: -80, Max: 700},
			SpawnCueLead:      200 * time.Millisecond,
			BreakCueWindow:    200 * time.Millisecond,
			BreakVisual:       400 * time.Millisecond,
			RespawnAfterHit:   1500 * time.Millisecond,
			RespawnAfterMiss:  2000 * time.Millisecond,
			NoiseBaseVolume:   0.2,
			NoiseVolumeFactor: 0.5,
		},
		Laser: LaserConfig{
			ChargeStep:   20,
			CueThreshold: 30,
			LingerOnMiss: time.Second,
			LingerOnHit:  300 * time.Millisecond,
			BeamWidth:    5,
		},
		Crosshair: CrosshairConfig{
			StartX:    450,
			StartY:    350,
			MoveSpeed: 9,
			MinX:      20,
			MaxX:      880,
			MinY:      20,
			MaxY:      605,
			GunOffset: 40 * math.Sqrt2,
			Radius:    80,
		},
		Lights: LightsConfig{
			Count:         10,
			FlashCount:    8,
			FlashInterval: 200 * time.Millisecond,
		},
		Bubble: BubbleConfig{
			Fade:      5 * time.Second,
			RiseSpeed: 2,
			Radius:    40,
		},
		Session: SessionConfig{
			MaxMisses:      3,
			FinalizeDelay:  2 * time.Second,
			SoundtrackFade: 5 * time.Second,
		},
		Cues: []CueConfig{
			{ID: "break", Volume: 0.55},
			{ID: "miss", Volume: 0.4},
			{ID: "spawn", Volume: 0.55},
			{ID: "noise", Volume: 1.0, Loop: true},
			{ID: "laser", Volume: 0.4},
			{ID: "beep", Volume: 0.3},
			{ID: "soundtrack", Volume: 0.2, Loop: true},
		},
	}
}

// ParseGameConfig 将 YAML 数据覆盖到默认配置之上
//
// 参数:
//   - data: YAML 内容，可以只包含部分字段
//
// 返回:
//   - *GameConfig: 合并后的配置
//   - error: 解析或验证失败时返回错误
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从磁盘加载配置文件
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %d", c.TicksPerSecond)
	}

	t := c.Target
	if t.InitialSpeed > t.MaxSpeed {
		return fmt.Errorf("target initialSpeed(%.3f) > maxSpeed(%.3f)", t.InitialSpeed, t.MaxSpeed)
	}
	if t.WorthStep <= 0 {
		return fmt.Errorf("target worthStep must be positive, got %.3f", t.WorthStep)
	}
	if t.SpawnX.Min > t.SpawnX.Max || t.SpawnY.Min > t.SpawnY.Max {
		return fmt.Errorf("target spawn region invalid: x[%.0f, %.0f] y[%.0f, %.0f]",
			t.SpawnX.Min, t.SpawnX.Max, t.SpawnY.Min, t.SpawnY.Max)
	}
	if t.MaxSpawnScale <= 0 {
		return fmt.Errorf("target maxSpawnScale must be positive, got %d", t.MaxSpawnScale)
	}

	if c.Laser.ChargeStep <= 0 {
		return fmt.Errorf("laser chargeStep must be positive, got %d", c.Laser.ChargeStep)
	}
	if c.Crosshair.MinX > c.Crosshair.MaxX || c.Crosshair.MinY > c.Crosshair.MaxY {
		return fmt.Errorf("crosshair bounds invalid")
	}
	if c.Lights.Count <= 0 {
		return fmt.Errorf("lights count must be positive, got %d", c.Lights.Count)
	}
	if c.Session.MaxMisses <= 0 {
		return fmt.Errorf("session maxMisses must be positive, got %d", c.Session.MaxMisses)
	}

	seen := make(map[string]bool, len(c.Cues))
	for _, cue := range c.Cues {
		if cue.ID == "" {
			return fmt.Errorf("cue with empty id")
		}
		if seen[cue.ID] {
			return fmt.Errorf("duplicate cue id: %s", cue.ID)
		}
		if cue.Volume < 0 || cue.Volume > 1 {
			return fmt.Errorf("cue %s volume out of range: %.2f", cue.ID, cue.Volume)
		}
		seen[cue.ID] = true
	}

	return nil
}

// Cue 按 ID 查找音效配置
func (c *GameConfig) Cue(id string) (CueConfig, bool) {
	for _, cue := range c.Cues {
		if cue.ID == id {
			return cue, true
		}
	}
	return CueConfig{}, false
}

// TickInterval 返回一帧的时间间隔
func (c *GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}
