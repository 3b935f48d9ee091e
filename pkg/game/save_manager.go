package game

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ProfileRecord 持久化的玩家记录
type ProfileRecord struct {
	HighScore    int  `yaml:"highScore"`
	SoundEnabled bool `yaml:"soundEnabled"`
}

// DefaultProfileRecord 首次运行时的记录
func DefaultProfileRecord() ProfileRecord {
	return ProfileRecord{
		HighScore:    0,
		SoundEnabled: true,
	}
}

// ProgressStore 最高分与声音开关的存储
// GameSession 在启动时读取一次，并在任一值变化时写回
type ProgressStore interface {
	Record() ProfileRecord
	SetHighScore(score int) error
	SetSoundEnabled(enabled bool) error
}

// 存储路径常量
const (
	profileObject   = "profile"
	profileProperty = "record"
)

// SaveManager 基于 gdata 的 ProgressStore 实现
//
// gdataManager 为 nil 时进入降级模式：记录只保存在内存中。
type SaveManager struct {
	gdataManager *gdata.Manager
	record       ProfileRecord
}

// NewSaveManager 创建保存管理器并加载已有记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *SaveManager: 保存管理器实例；记录损坏时使用默认值
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	sm := &SaveManager{
		gdataManager: gdataManager,
		record:       DefaultProfileRecord(),
	}

	if err := sm.Load(); err != nil {
		// 损坏的记录视为首次运行
		log.Printf("[SaveManager] Warning: Failed to load profile: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 读取记录
//
// 记录不存在时使用默认值；解析失败时使用默认值并返回错误
func (sm *SaveManager) Load() error {
	sm.record = DefaultProfileRecord()

	if sm.gdataManager == nil {
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(profileObject, profileProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	record, err := ParseProfileRecord(data)
	if err != nil {
		return err
	}

	sm.record = record
	log.Printf("[SaveManager] Profile loaded: highScore=%d soundEnabled=%v", record.HighScore, record.SoundEnabled)
	return nil
}

// Save 将当前记录写入 gdata，降级模式下不做任何事
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&sm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(profileObject, profileProperty, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	log.Printf("[SaveManager] Profile saved")
	return nil
}

// Record 返回当前记录
func (sm *SaveManager) Record() ProfileRecord {
	return sm.record
}

// SetHighScore 更新最高分并保存
func (sm *SaveManager) SetHighScore(score int) error {
	sm.record.HighScore = score
	return sm.Save()
}

// SetSoundEnabled 更新声音开关并保存
func (sm *SaveManager) SetSoundEnabled(enabled bool) error {
	sm.record.SoundEnabled = enabled
	return sm.Save()
}

// profileYAML 解析用的结构，缺失字段保持 nil
type profileYAML struct {
	HighScore    *int  `yaml:"highScore"`
	SoundEnabled *bool `yaml:"soundEnabled"`
}

// ParseProfileRecord 解析持久化记录
//
// 支持两种格式：
//   - YAML: highScore / soundEnabled，缺失字段取默认值
//   - 旧版文本: "<score> True|False"，第二项缺失时声音默认开启
func ParseProfileRecord(data []byte) (ProfileRecord, error) {
	record := DefaultProfileRecord()

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return record, nil
	}

	if legacy, ok := parseLegacyRecord(trimmed); ok {
		return legacy, nil
	}

	var raw profileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return DefaultProfileRecord(), fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if raw.HighScore != nil {
		if *raw.HighScore < 0 {
			return DefaultProfileRecord(), fmt.Errorf("negative high score: %d", *raw.HighScore)
		}
		record.HighScore = *raw.HighScore
	}
	if raw.SoundEnabled != nil {
		record.SoundEnabled = *raw.SoundEnabled
	}
	return record, nil
}

// parseLegacyRecord 解析旧版 "<score> True|False" 文本
func parseLegacyRecord(s string) (ProfileRecord, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return ProfileRecord{}, false
	}

	score, err := strconv.Atoi(fields[0])
	if err != nil || score < 0 {
		return ProfileRecord{}, false
	}

	record := DefaultProfileRecord()
	record.HighScore = score
	if len(fields) == 2 {
		record.SoundEnabled = fields[1] == "True"
	}
	return record, true
}
