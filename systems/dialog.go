package systems

import (
	"strings"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// ImageSource resolves an asset path to an image, nil when it is missing
type ImageSource interface {
	Image(p string) *ebiten.Image
}

var dialogImageOp = &ebiten.DrawImageOptions{}

// StartDialog installs entries as the active dialog and plays the first cue
func StartDialog(e *ecs.ECS, id string, entries []assets.DialogEntry, voice VoicePlayer) *components.DialogData {
	entry, ok := components.Dialog.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Dialog))
	}
	components.Dialog.SetValue(entry, components.DialogData{ID: id, Entries: entries})

	d := components.Dialog.Get(entry)
	if cur, ok := d.Current(); ok && cur.Sound != "" {
		voice.PlayVoice(cur.Sound)
	}
	return d
}

// AdvanceDialog moves to the next entry and plays its cue, cutting off the
// previous one. It returns false once the last entry was already shown.
func AdvanceDialog(d *components.DialogData, voice VoicePlayer) bool {
	if !d.Advance() {
		return false
	}
	voice.StopVoice()
	if cur, ok := d.Current(); ok && cur.Sound != "" {
		voice.PlayVoice(cur.Sound)
	}
	return true
}

// SkipDialog jumps to the last entry without playing anything in between
func SkipDialog(d *components.DialogData, voice VoicePlayer) {
	voice.StopVoice()
	d.SkipToEnd()
}

// NewUpdateDialog creates the dialog system. onClose runs when the sequence
// is done, either advanced past its last entry or skipped.
func NewUpdateDialog(voice VoicePlayer, onClose func()) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Dialog.First(e.World)
		if !ok {
			return
		}
		d := components.Dialog.Get(entry)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionDialogSkip).JustPressed {
			SkipDialog(d, voice)
			onClose()
			return
		}

		if GetAction(input, cfg.ActionDialogAdvance).JustPressed || clicked(input, cfg.Input.LightAttackButton) {
			if !AdvanceDialog(d, voice) {
				voice.StopVoice()
				onClose()
			}
		}
	}
}

func clicked(input *components.InputData, button ebiten.MouseButton) bool {
	for _, c := range input.Clicks {
		if c.Button == button {
			return true
		}
	}
	return false
}

// NewDrawDialog creates the renderer for the dialog screen
func NewDrawDialog(images ImageSource) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		entry, ok := components.Dialog.First(e.World)
		if !ok {
			return
		}
		d := components.Dialog.Get(entry)
		cur, ok := d.Current()
		if !ok {
			return
		}

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		screen.Fill(cfg.Dialog.BackgroundColor)
		if bg := images.Image(cur.Image); bg != nil {
			drawImageFit(screen, bg, 0, 0, width, height)
		}

		margin := cfg.Dialog.Margin
		pad := cfg.Dialog.Padding
		boxH := height * cfg.Dialog.TextBoxRatio
		boxY := height - boxH - margin
		boxW := width - 2*margin
		vector.DrawFilledRect(screen, float32(margin), float32(boxY), float32(boxW), float32(boxH), cfg.Dialog.TextBoxColor, false)

		textX := margin + pad
		if cur.Portrait != "" {
			size := cfg.Dialog.PortraitSize
			px, py := margin+pad, boxY+pad
			if img := images.Image(cur.Portrait); img != nil {
				drawImageFit(screen, img, px, py, size, size)
			} else {
				vector.DrawFilledRect(screen, float32(px), float32(py), float32(size), float32(size), cfg.Dialog.PortraitBoxColor, false)
			}
			textX += size + pad
		}

		speaker := cur.Speaker
		if speaker == "" {
			speaker = cfg.Dialog.DefaultSpeaker
		}
		nameFace := fonts.Bold.Get()
		nameW := float64(fonts.TextWidth(nameFace, speaker)) + 2*pad
		nameH := cfg.Dialog.LineHeight + pad/2
		vector.DrawFilledRect(screen, float32(margin), float32(boxY-nameH), float32(nameW), float32(nameH), cfg.Dialog.NameBoxColor, false)
		text.Draw(screen, speaker, nameFace, int(margin+pad), int(boxY-pad/2), cfg.Dialog.NameColor)

		bodyFace := fonts.Body.Get()
		maxW := margin + boxW - pad - textX
		y := boxY + pad + cfg.Dialog.LineHeight
		for _, line := range wrapText(bodyFace, cur.Text, int(maxW)) {
			if y > boxY+boxH-pad {
				break
			}
			text.Draw(screen, line, bodyFace, int(textX), int(y), cfg.Dialog.TextColor)
			y += cfg.Dialog.LineHeight
		}

		if !d.IsFinished() {
			small := fonts.Small.Get()
			more := cfg.Dialog.MoreIndicator
			mx := margin + boxW - pad - float64(fonts.TextWidth(small, more))
			text.Draw(screen, more, small, int(mx), int(boxY+boxH-pad), cfg.Dialog.HintColor)
		}

		input := getOrCreateInput(e)
		hint := getDialogHint(input.LastInputMethod)
		drawCentered(screen, hint, fonts.Small.Get(), width, height-4, cfg.Dialog.HintColor)
	}
}

// wrapText breaks s into lines no wider than maxWidth. A single word longer
// than maxWidth gets a line of its own.
func wrapText(face font.Face, s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if fonts.TextWidth(face, candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

func drawImageFit(screen, img *ebiten.Image, x, y, w, h float64) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	dialogImageOp.GeoM.Reset()
	dialogImageOp.GeoM.Scale(w/float64(iw), h/float64(ih))
	dialogImageOp.GeoM.Translate(x, y)
	screen.DrawImage(img, dialogImageOp)
}

func getDialogHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "A: Next   Start: Skip"
	}
	return "Space/Click: Next   Esc: Skip"
}
