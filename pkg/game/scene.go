package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (title screen, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// Timing inside scenes uses the session clock, not tick counts.
	Update() error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
