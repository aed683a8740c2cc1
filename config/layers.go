package config

import "github.com/yohamta/donburi/ecs"

// Render layers. Renderers on the same layer draw in registration order.
const (
	Default ecs.LayerID = iota
	Overlay
)
