package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point shown at the screen center
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // smoothed horizontal offset in the facing direction
}

// Offset converts the camera center into the translation applied to world
// coordinates for a screen of the given size
func (c *CameraData) Offset(screenW, screenH int) (float64, float64) {
	return float64(screenW)/2 - c.Position.X, float64(screenH)/2 - c.Position.Y
}

var Camera = donburi.NewComponentType[CameraData]()
