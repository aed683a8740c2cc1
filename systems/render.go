package systems

import (
	"image/color"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}

	groundColor = color.RGBA{R: 70, G: 62, B: 84, A: 255}
	spikeColor  = color.RGBA{R: 190, G: 60, B: 60, A: 255}
	exitColor   = color.RGBA{R: 90, G: 200, B: 120, A: 120}
	skyColor    = color.RGBA{R: 24, G: 28, B: 44, A: 255}
	hurtFlash   = []float32{1, 0.2, 0.2, 0.6}
)

// DrawLevel renders the level geometry: ground, spikes, pickups and the exit
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)

	ox, oy, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	tags.Ground.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, entry, ox, oy, groundColor)
	})
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, entry, ox, oy, spikeColor)
	})
	tags.Exit.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, entry, ox, oy, exitColor)
	})
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.Pickup.Get(entry)
		o := components.Object.Get(entry)
		c := cfg.UI.CoinColor
		if pickup.Kind == components.PickupMana {
			c = cfg.UI.ManaColor
		}
		vector.DrawFilledCircle(screen,
			float32(o.X+o.W/2+ox), float32(o.Y+o.H/2+oy), float32(o.W/2), c, true)
	})
}

func drawObjectRect(screen *ebiten.Image, entry *donburi.Entry, ox, oy float64, c color.Color) {
	o := components.Object.Get(entry)
	vector.DrawFilledRect(screen, float32(o.X+ox), float32(o.Y+oy), float32(o.W), float32(o.H), c, false)
}

// DrawPlayer renders the player's current animation frame. Missing art is
// drawn as a flat box of the sprite size; invulnerability flashes the sprite.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Removed {
			return
		}
		char := components.Character.Get(entry)
		anim := components.Animation.Get(entry)
		frame := anim.CurrentFrame(char.FacingLeft)

		x, y, w, h := char.Bounds()
		flashing := char.Invulnerable && char.IsAlive()

		if frame.IsPlaceholder() {
			c := cfg.Magenta
			if flashing {
				c = color.RGBA{R: 255, G: 120, B: 120, A: 255}
			}
			vector.DrawFilledRect(screen, float32(x+ox), float32(y+oy), float32(w), float32(h), c, false)
			return
		}

		img := frame.Image
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

		var geoM ebiten.GeoM
		geoM.Scale(w/float64(iw), h/float64(ih))
		if frame.FlipX {
			geoM.Scale(-1, 1)
			geoM.Translate(w, 0)
		}
		geoM.Translate(x+ox, y+oy)

		if flashing && assets.FlashShader != nil {
			shaderOp.GeoM = geoM
			shaderOp.Images[0] = img
			shaderOp.Uniforms = map[string]any{"FlashColor": hurtFlash}
			screen.DrawRectShader(iw, ih, assets.FlashShader, shaderOp)
			return
		}

		drawOp.GeoM = geoM
		drawOp.ColorScale.Reset()
		screen.DrawImage(img, drawOp)
	})
}

// cameraOffset is the translation from world to screen coordinates
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	ox, oy := camera.Offset(screen.Bounds().Dx(), screen.Bounds().Dy())
	return ox, oy, true
}
