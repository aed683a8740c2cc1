package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/lafriks/go-tiled"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// Rect is an axis-aligned box in world pixels
type Rect struct {
	X, Y, Width, Height float64
}

// PlayerSpawn is where the player's feet start
type PlayerSpawn struct {
	X float64
	Y float64
}

type PickupSpawn struct {
	X, Y  float64
	Kind  string // "coin" or "mana"
	Value int    // 0 uses the configured default
}

type Level struct {
	Name         string
	Width        int
	Height       int
	Ground       []Rect
	Spikes       []Rect
	Exits        []Rect
	Pickups      []PickupSpawn
	PlayerSpawns []PlayerSpawn
}

// LoadLevel parses the embedded Tiled map levels/<id>.tmx
func LoadLevel(id string) (*Level, error) {
	levelPath := path.Join("levels", id+".tmx")
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", id, err)
	}

	level := &Level{
		Name:   id,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				level.Ground = append(level.Ground, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "Spikes":
			for _, o := range og.Objects {
				level.Spikes = append(level.Spikes, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "Exit":
			for _, o := range og.Objects {
				level.Exits = append(level.Exits, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
		case "Pickups":
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = "coin"
				}
				level.Pickups = append(level.Pickups, PickupSpawn{
					X:     o.X,
					Y:     o.Y,
					Kind:  kind,
					Value: o.Properties.GetInt("value"),
				})
			}
		}
	}

	if len(level.Ground) == 0 {
		return nil, fmt.Errorf("level %s has no ground", id)
	}
	return level, nil
}
