package systems

import (
	"math"

	"github.com/XQwart/fkpg-jmp-fix/components"
	"github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead while moving - freeze offset when idle
	if char.Velocity.X != 0 {
		dir := 1.0
		if char.FacingLeft {
			dir = -1
		}
		targetLookAhead := dir * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX, targetY := cameraTarget(char.Position.X+camera.LookAheadX, char.Position.Y,
		float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera on the player without smoothing
func SnapCamera(e *ecs.ECS) {
	UpdateCamera(e)
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok || components.Level.Get(levelEntry).CurrentLevel == nil {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	char := components.Character.Get(playerEntry)
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X, camera.Position.Y = cameraTarget(char.Position.X, char.Position.Y,
		float64(level.Width), float64(level.Height))
}

// cameraTarget clamps a point so the level always fills the screen
func cameraTarget(x, y, levelWidth, levelHeight float64) (float64, float64) {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	minX, maxX := screenWidth/2, levelWidth-screenWidth/2
	minY, maxY := screenHeight/2, levelHeight-screenHeight/2
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}

	return math.Max(minX, math.Min(maxX, x)), math.Max(minY, math.Min(maxY, y))
}
