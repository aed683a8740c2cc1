package systems

import (
	"io/fs"
	"math/rand/v2"
	"os"
	"path"
	"slices"
	"sync"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioFS      fs.FS = os.DirFS("assets")
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalVoicePlayer  *audio.Player
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	globalAudioFailed  = map[string]bool{}
	audioInitOnce      sync.Once
)

// SetAudioSource sets the file system audio files are read from. It must be
// called before the first sound plays.
func SetAudioSource(fsys fs.FS) {
	globalAudioFS = fsys
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, globalAudioFS)
	})
}

// ApplyAudioSettings copies the volumes of c into the audio globals
func ApplyAudioSettings(c *cfg.Config) {
	SetMusicVolume(c.EffectiveMusicVolume())
	SetSFXVolume(c.EffectiveSFXVolume())
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play
func PreloadAllSFX() {
	initGlobalAudio()

	for _, p := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(p); err != nil {
			audioFailed(p, err)
		}
	}
}

// UpdateAudio processes pending SFX and manages music fades
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 && globalMusicPlayer != nil {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer == 0 {
			StopMusic()
		}
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	p, ok := cfg.Sound.SFXPaths[soundID]
	if !ok || globalAudioFailed[p] {
		return
	}

	player, err := globalAudioLoader.LoadSFX(p)
	if err != nil {
		audioFailed(p, err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(min(volume, 1))
	player.Play()
}

// PlayMusic starts a looping track. Asking for the track already playing
// does nothing.
func PlayMusic(musicPath string) {
	initGlobalAudio()

	if globalMusicKey == musicPath && globalFadeTimer == 0 {
		return
	}
	if globalAudioFailed[musicPath] {
		return
	}

	player, err := globalAudioLoader.LoadMusic(musicPath, true)
	if err != nil {
		audioFailed(musicPath, err)
		return
	}

	StopMusic()
	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// PlayRandomMenuMusic keeps a menu track playing. A new track is picked at
// random only when no menu track is running, so menu and settings share it.
func PlayRandomMenuMusic() {
	tracks := cfg.Sound.MenuMusic
	if len(tracks) == 0 {
		return
	}
	if globalMusicPlayer != nil && globalFadeTimer == 0 && slices.Contains(tracks, globalMusicKey) {
		return
	}
	PlayMusic(tracks[rand.IntN(len(tracks))])
}

// PlayLevelMusic plays the track configured for levelID, if any
func PlayLevelMusic(levelID string) {
	if p, ok := cfg.Sound.LevelMusic[levelID]; ok {
		PlayMusic(p)
		return
	}
	FadeOutMusic()
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic() {
	if globalMusicPlayer == nil || globalFadeTimer > 0 {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFadeTimer = 0
}

// PauseMusic pauses the current music playback
func PauseMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	queueSFX(e.World, sound)
}

func queueSFX(w donburi.World, sound cfg.SoundID) {
	audioData := getOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX and voice volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
	if globalVoicePlayer != nil {
		globalVoicePlayer.SetVolume(volume)
	}
}

// VoicePlayer is the dialog voice channel. At most one clip plays at a time.
type VoicePlayer interface {
	PlayVoice(name string)
	StopVoice()
}

// AudioVoice plays dialog clips from the voice directory through the global
// audio context
type AudioVoice struct{}

func (AudioVoice) PlayVoice(name string) {
	initGlobalAudio()

	stopVoice()
	if name == "" || globalSFXVolume <= 0 {
		return
	}
	p := path.Join(cfg.Sound.DialogVoiceDir, name)
	if globalAudioFailed[p] {
		return
	}

	player, err := globalAudioLoader.LoadSFX(p)
	if err != nil {
		audioFailed(p, err)
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
	globalVoicePlayer = player
}

func (AudioVoice) StopVoice() {
	stopVoice()
}

func stopVoice() {
	if globalVoicePlayer != nil {
		_ = globalVoicePlayer.Close()
		globalVoicePlayer = nil
	}
}

// audioFailed logs a missing or broken clip once; the game carries on silent
func audioFailed(p string, err error) {
	if globalAudioFailed[p] {
		return
	}
	globalAudioFailed[p] = true
	zap.L().Warn("could not load audio", zap.String("path", p), zap.Error(err))
}

// getOrCreateAudio returns the singleton Audio component for this world, creating it if needed
func getOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
