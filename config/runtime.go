package config

import (
	"encoding/json"
	"fmt"
)

// SettingsKey is the store item holding the serialized Config.
const SettingsKey = "settings"

// Store is a keyed blob store. LoadItem returns nil data when the key is
// absent; deleting an absent key is not an error.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
	DeleteItem(key string) error
}

// Config is the user-facing runtime configuration. One instance exists per
// process; it is passed to every scene and saved on exit.
type Config struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`

	store Store
}

// NewConfig returns a Config with default values backed by store.
// store may be nil, in which case Save is a no-op.
func NewConfig(store Store) *Config {
	return &Config{
		MusicVolume:     Audio.DefaultMusicVol,
		SFXVolume:       Audio.DefaultSFXVol,
		ResolutionIndex: SettingsMenu.DefaultResolutionIndex,
		store:           store,
	}
}

// LoadConfig reads the settings item from store. A missing item yields
// defaults. A read or parse failure also yields defaults plus the error, so
// callers can log it and carry on.
func LoadConfig(store Store) (*Config, error) {
	c := NewConfig(store)
	if store == nil {
		return c, nil
	}

	data, err := store.LoadItem(SettingsKey)
	if err != nil {
		return c, fmt.Errorf("failed to load settings: %w", err)
	}
	if len(data) == 0 {
		return c, nil
	}

	if err := json.Unmarshal(data, c); err != nil {
		return NewConfig(store), fmt.Errorf("failed to parse settings: %w", err)
	}
	c.clamp()
	return c, nil
}

// Save writes the configuration back to its store
func (c *Config) Save() error {
	if c.store == nil {
		return nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := c.store.SaveItem(SettingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Resolution returns the selected window resolution
func (c *Config) Resolution() Resolution {
	return SettingsMenu.Resolutions[c.ResolutionIndex]
}

// EffectiveMusicVolume is the music volume after mute is applied
func (c *Config) EffectiveMusicVolume() float64 {
	if c.Muted {
		return 0
	}
	return c.MusicVolume
}

// EffectiveSFXVolume is the SFX volume after mute is applied
func (c *Config) EffectiveSFXVolume() float64 {
	if c.Muted {
		return 0
	}
	return c.SFXVolume
}

func (c *Config) clamp() {
	c.MusicVolume = clamp01(c.MusicVolume)
	c.SFXVolume = clamp01(c.SFXVolume)
	if c.ResolutionIndex < 0 || c.ResolutionIndex >= len(SettingsMenu.Resolutions) {
		c.ResolutionIndex = SettingsMenu.DefaultResolutionIndex
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
