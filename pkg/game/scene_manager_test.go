package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalls int
	drawCalled  bool
	err         error
}

// Update records that Update was called.
func (m *MockScene) Update() error {
	m.updateCalls++
	return m.err
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	if err := sm.Update(); err != nil {
		t.Errorf("Update with no scene: %v", err)
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerNamedScenes verifies registration and switching by name.
func TestSceneManagerNamedScenes(t *testing.T) {
	sm := NewSceneManager()
	title := &MockScene{}
	play := &MockScene{}
	sm.Register("title", title)
	sm.Register("game", play)

	if !sm.SwitchToNamed("game") || sm.GetCurrentScene() != play {
		t.Fatal("SwitchToNamed(game) did not activate the game scene")
	}
	if sm.SwitchToNamed("missing") {
		t.Error("SwitchToNamed should fail for unknown scenes")
	}
	if sm.GetCurrentScene() != play {
		t.Error("failed switch must keep the current scene")
	}
}

// TestSceneManagerUpdate verifies that Update calls only the current scene and returns its error.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	inactive := &MockScene{}
	active := &MockScene{err: errors.New("quit")}
	sm.Register("inactive", inactive)
	sm.SwitchTo(active)

	if err := sm.Update(); err == nil {
		t.Error("Update should return the scene error")
	}
	if active.updateCalls != 1 || inactive.updateCalls != 0 {
		t.Errorf("update calls: active=%d inactive=%d", active.updateCalls, inactive.updateCalls)
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}
